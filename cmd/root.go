package cmd

import (
	"fmt"
	"os"

	"bom-checker/core/config"
	"bom-checker/core/logger"
	"bom-checker/feature/taxonomy"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	// configDir is where the optional .env file is looked up.
	configDir string
	// taxonomyPath overrides the taxonomy file from the configuration.
	taxonomyPath string
)

// RootCmd represents the base command when called without any subcommands
var RootCmd = &cobra.Command{
	Use:   "bom-checker",
	Short: "Cross-check a BOM against distributor package data",
	Long: `bom-checker reads a bill of materials exported from schematic capture and
compares the footprint of every line with the package and mounting type the
distributor reports for its part number. Lines that disagree are reported.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func Execute() {
	if err := RootCmd.Execute(); err != nil {
		// Console encoding at debug level gives readable timestamps for a CLI
		cfg := &logger.Config{
			Level:  "debug",
			Format: "console",
		}

		l, logErr := logger.New(cfg)
		if logErr == nil {
			l.Error("command failed", zap.Error(err))
			_ = l.Sync()
		} else {
			fmt.Fprintln(os.Stderr, err)
		}
		os.Exit(1)
	}
}

func init() {
	RootCmd.PersistentFlags().StringVar(&configDir, "config-dir", ".", "Directory containing the .env file")
	RootCmd.PersistentFlags().StringVar(&taxonomyPath, "taxonomy", "", "Taxonomy YAML file (default: built-in tables)")
}

// setup loads configuration, the logger and the taxonomy shared by all commands.
func setup() (*config.Config, *zap.Logger, *taxonomy.Taxonomy, error) {
	cfg, err := config.LoadConfig(configDir)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("failed to load config: %w", err)
	}
	if taxonomyPath != "" {
		cfg.Taxonomy = taxonomyPath
	}

	l, err := logger.New(&cfg.Log)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	tax, err := loadTaxonomy(cfg.Taxonomy)
	if err != nil {
		return nil, nil, nil, err
	}

	return cfg, l, tax, nil
}

func loadTaxonomy(path string) (*taxonomy.Taxonomy, error) {
	if path == "" {
		return taxonomy.Default(), nil
	}
	tax, err := taxonomy.Load(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load taxonomy: %w", err)
	}
	return tax, nil
}
