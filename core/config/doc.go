// Package config provides configuration management for the BOM checker.
//
// It utilizes Viper for loading configuration from environment variables and
// an optional .env file.
//
// # Configuration Structure
//
// The Config struct is the central repository for all application settings, divided into subsections:
//   - Log: Logging level and format
//   - Storage: S3/MinIO credentials for BOM sources and report uploads
//   - Lookup: which part lookup provider to use and how to reach it
//   - BOM: separator and column layout of the BOM export
//   - Report: output format
//   - Taxonomy: optional taxonomy file replacing the built-in tables
//
// Defaults come from the `default` struct tags, so every key can be
// overridden by its environment variable (LOOKUP_PROVIDER, BOM_SEPARATOR, ...).
//
// # Usage
//
//	cfg, err := config.LoadConfig(".")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(cfg.Lookup.Provider)
package config
