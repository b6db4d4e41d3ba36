package cmd

import (
	"fmt"
	"io"

	"bom-checker/feature/distributor"
	"bom-checker/feature/lookup"
	"bom-checker/feature/schematic"
	"bom-checker/feature/taxonomy"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// classifyCmd shows how footprints are classified.
var classifyCmd = &cobra.Command{
	Use:   "classify <footprint>...",
	Short: "Show the package and mount type of schematic footprints",
	Long: `Runs the footprint rules against each argument and prints the resulting
mount type and package, together with the rule that matched.

Example:
  bom-checker classify Package_TO_SOT_SMD:SOT-23-5 Resistor_SMD:R_0805_2012Metric`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		_, l, tax, err := setup()
		if err != nil {
			return err
		}
		defer func() { _ = l.Sync() }()

		return printFootprints(cmd.OutOrStdout(), tax, args)
	},
}

// lookupCmd shows how distributor parts are classified.
var lookupCmd = &cobra.Command{
	Use:   "lookup <part-number>...",
	Short: "Show the package and mount type the distributor reports for parts",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, l, tax, err := setup()
		if err != nil {
			return err
		}
		defer func() { _ = l.Sync() }()

		provider, err := lookup.NewProvider(cfg.Lookup, l)
		if err != nil {
			return fmt.Errorf("failed to create lookup provider: %w", err)
		}

		return printParts(cmd, provider, tax, l, args)
	},
}

func init() {
	RootCmd.AddCommand(classifyCmd)
	RootCmd.AddCommand(lookupCmd)
}

func printFootprints(w io.Writer, tax *taxonomy.Taxonomy, footprints []string) error {
	classifier := schematic.NewClassifier(tax)

	table := tablewriter.NewTable(w)
	table.Header("Footprint", "Mount", "Package", "Rule", "SMT Pad")

	for _, fp := range footprints {
		c, rule, ok := classifier.ClassifyRule(fp)
		pattern := "-"
		if ok {
			pattern = rule.Pattern
		}
		if err := table.Append(fp, c.Mount.String(), tax.PackageName(c.Package), pattern, fmt.Sprint(tax.IsSMTPad(fp))); err != nil {
			return err
		}
	}
	return table.Render()
}

func printParts(cmd *cobra.Command, provider lookup.Provider, tax *taxonomy.Taxonomy, l *zap.Logger, parts []string) error {
	classifier := distributor.NewClassifier(tax)

	table := tablewriter.NewTable(cmd.OutOrStdout())
	table.Header("Part Number", "Mount", "Package", "SMT Part")

	for _, pn := range parts {
		rec, err := provider.Lookup(cmd.Context(), pn)
		if err != nil {
			return fmt.Errorf("lookup of %s failed: %w", pn, err)
		}
		if rec == nil {
			l.Warn("Part not found", zap.String("part_number", pn))
			continue
		}

		c, err := classifier.Classify(rec)
		if err != nil {
			l.Warn("Malformed distributor record", zap.String("part_number", pn), zap.Error(err))
			continue
		}
		if err := table.Append(pn, c.Mount.String(), tax.PackageName(c.Package), fmt.Sprint(classifier.IsSMTPart(rec))); err != nil {
			return err
		}
	}
	return table.Render()
}
