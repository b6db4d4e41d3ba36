package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"bom-checker/core/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := config.LoadConfig(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "console", cfg.Log.Format)
	assert.Equal(t, "exec", cfg.Lookup.Provider)
	assert.Equal(t, "dkapia.py PART_SEARCH -P {pn} -rmMl -rmPp -rmPd", cfg.Lookup.Command)
	assert.Equal(t, 0, cfg.Lookup.TimeoutSeconds)
	assert.Equal(t, "|", cfg.BOM.Separator)
	assert.True(t, cfg.BOM.SkipHeader)
	assert.Equal(t, 3, cfg.BOM.ColumnIDs)
	assert.Equal(t, 5, cfg.BOM.ColumnFootprint)
	assert.Equal(t, 12, cfg.BOM.ColumnDistributorPN)
	assert.Equal(t, "localhost:9000", cfg.Storage.Endpoint)
	assert.Equal(t, "", cfg.Taxonomy)
}

func TestLoadConfig_Environment(t *testing.T) {
	t.Setenv("LOOKUP_PROVIDER", "file")
	t.Setenv("LOOKUP_DIR", "/var/parts")
	t.Setenv("BOM_COLUMN_DISTRIBUTOR_PN", "11")
	t.Setenv("REPORT_FORMAT", "yaml")

	cfg, err := config.LoadConfig(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, "file", cfg.Lookup.Provider)
	assert.Equal(t, "/var/parts", cfg.Lookup.Dir)
	assert.Equal(t, 11, cfg.BOM.ColumnDistributorPN)
	assert.Equal(t, "yaml", cfg.Report.Format)
}

func TestLoadConfig_DotEnv(t *testing.T) {
	dir := t.TempDir()
	// Registered so the values written by the .env file are restored afterwards.
	t.Setenv("LOG_LEVEL", "")
	t.Setenv("TAXONOMY", "")

	content := "LOG_LEVEL=debug\nTAXONOMY=/etc/bom/taxonomy.yaml\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte(content), 0644))

	cfg, err := config.LoadConfig(dir)
	require.NoError(t, err)

	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "/etc/bom/taxonomy.yaml", cfg.Taxonomy)
}

func TestLoadConfig_InvalidReportFormat(t *testing.T) {
	t.Setenv("REPORT_FORMAT", "xml")

	_, err := config.LoadConfig(t.TempDir())
	assert.ErrorContains(t, err, "unsupported report format")
}
