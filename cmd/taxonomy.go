package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// taxonomyCmd prints the active taxonomy.
var taxonomyCmd = &cobra.Command{
	Use:   "taxonomy",
	Short: "Print the active taxonomy as YAML",
	Long: `Prints the taxonomy in use (the built-in tables, or the file given with
--taxonomy) as YAML. The output is a valid taxonomy file and can be edited and
passed back with --taxonomy. Loading a file validates it.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, l, tax, err := setup()
		if err != nil {
			return err
		}
		defer func() { _ = l.Sync() }()

		data, err := tax.Marshal()
		if err != nil {
			return fmt.Errorf("failed to marshal taxonomy: %w", err)
		}

		if cfg.Taxonomy != "" {
			l.Info("Taxonomy file is valid", zap.String("path", cfg.Taxonomy), zap.Int("rules", len(tax.Rules())))
		}

		_, err = cmd.OutOrStdout().Write(data)
		return err
	},
}

func init() {
	RootCmd.AddCommand(taxonomyCmd)
}
