package report

import (
	"fmt"
	"io"
	"os"
	"strings"

	"bom-checker/feature/check"

	"github.com/goccy/go-json"
	"github.com/goccy/go-yaml"
	"github.com/mattn/go-isatty"
	"github.com/olekukonko/tablewriter"
)

// Format types for output.
type Format string

const (
	// FormatText represents plain text warnings.
	FormatText Format = "text"
	// FormatTable represents table output format.
	FormatTable Format = "table"
	// FormatJSON represents JSON output format.
	FormatJSON Format = "json"
	// FormatYAML represents YAML output format.
	FormatYAML Format = "yaml"
)

// Config holds report settings.
type Config struct {
	// Format is the output format; empty auto-detects.
	Format string `mapstructure:"format" default:""`
}

// Formatter renders a check result.
type Formatter interface {
	Format(w io.Writer, result *check.Result) error
}

// FormatterFunc allows functions to implement Formatter.
type FormatterFunc func(io.Writer, *check.Result) error

// Format implements the Formatter interface.
func (f FormatterFunc) Format(w io.Writer, result *check.Result) error {
	return f(w, result)
}

// NewFormatter creates the formatter for a format.
func NewFormatter(format Format) Formatter {
	switch format {
	case FormatJSON:
		return FormatterFunc(formatJSON)
	case FormatYAML:
		return FormatterFunc(formatYAML)
	case FormatTable:
		return FormatterFunc(formatTable)
	default:
		return FormatterFunc(formatText)
	}
}

// ParseFormat converts string to Format with validation.
func ParseFormat(s string) (Format, error) {
	format := Format(strings.ToLower(strings.TrimSpace(s)))
	switch format {
	case FormatText, FormatTable, FormatJSON, FormatYAML, "":
		return format, nil
	default:
		return "", fmt.Errorf("unsupported report format %q (text, table, json, yaml)", s)
	}
}

// DetectFormat returns the explicit format, or table on a terminal and json otherwise.
func DetectFormat(explicit Format) Format {
	if explicit != "" {
		return explicit
	}
	if isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd()) {
		return FormatTable
	}
	return FormatJSON
}

func formatText(w io.Writer, result *check.Result) error {
	var b strings.Builder
	for _, r := range result.Reports {
		fmt.Fprintf(&b, "Possible mismatch for component: [%s] (%s)\n", strings.Join(r.ComponentIDs, " "), r.PartNumber)
		fmt.Fprintf(&b, "\tMount type:\tSchematic: [%s]\tDistributor: [%s]\n", r.SchematicMount, r.DistributorMount)
		fmt.Fprintf(&b, "\tPackage:\tSchematic: [%s]\tDistributor: [%s]\n", r.SchematicPackage, r.DistributorPackage)
		b.WriteString("\n")
	}
	for _, s := range result.Skipped {
		fmt.Fprintf(&b, "Skipped component: [%s] (%s): %s\n", strings.Join(s.ComponentIDs, " "), s.PartNumber, s.Reason)
	}
	writeSummary(&b, result.Summary)

	_, err := io.WriteString(w, b.String())
	return err
}

func writeSummary(b *strings.Builder, s check.Summary) {
	fmt.Fprintf(b, "\nRows: %d  Checked: %d  Mismatches: %d  Not found: %d  Malformed: %d  No part number: %d\n",
		s.Rows, s.Checked, s.Mismatches, s.NotFound, s.Malformed, s.NoPartNumber)
}

func formatTable(w io.Writer, result *check.Result) error {
	table := tablewriter.NewTable(w)
	table.Header("Components", "Part Number", "Schematic Mount", "Distributor Mount", "Schematic Package", "Distributor Package")

	for _, r := range result.Reports {
		if err := table.Append(
			strings.Join(r.ComponentIDs, " "),
			r.PartNumber,
			r.SchematicMount,
			r.DistributorMount,
			r.SchematicPackage,
			r.DistributorPackage,
		); err != nil {
			return err
		}
	}
	if err := table.Render(); err != nil {
		return err
	}

	var b strings.Builder
	writeSummary(&b, result.Summary)
	_, err := io.WriteString(w, b.String())
	return err
}

func formatJSON(w io.Writer, result *check.Result) error {
	data, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}
	data = append(data, '\n')
	_, err = w.Write(data)
	return err
}

func formatYAML(w io.Writer, result *check.Result) error {
	data, err := yaml.MarshalWithOptions(result,
		yaml.Indent(2),
		yaml.IndentSequence(false),
	)
	if err != nil {
		return fmt.Errorf("failed to marshal YAML: %w", err)
	}
	_, err = w.Write(data)
	return err
}
