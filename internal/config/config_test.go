package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/MMY1924/Project-DA601P-Sales-Strategy-Analysis/internal/model"
)

func chTempDir(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	origDir, _ := os.Getwd()
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { os.Chdir(origDir) })
	return dir
}

func TestLoadDefaults(t *testing.T) {
	chTempDir(t)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "product_sales.csv", cfg.Input.Path)
	assert.Equal(t, "", cfg.Input.Format)
	assert.Equal(t, "sales_method_dominance_choropleth.html", cfg.Output.Path)
	assert.Equal(t, 39, cfg.Clean.MaxTenureYears)
	assert.Equal(t, model.CanonicalMethods(), cfg.Clean.Methods)
	assert.Equal(t, model.MethodEmailCall, cfg.Clean.MethodAliases["em + call"])
	assert.Equal(t, model.MethodEmail, cfg.Clean.MethodAliases["email"])
	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "console", cfg.Log.Format)

	assert.NoError(t, cfg.Validate())
}

func TestLoadFromYAML(t *testing.T) {
	dir := chTempDir(t)

	yaml := `
input:
  path: data/sales.xlsx
  format: xlsx
  sheet: Data
clean:
  max_tenure_years: 25
log:
  level: debug
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(yaml), 0644))

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "data/sales.xlsx", cfg.Input.Path)
	assert.Equal(t, "xlsx", cfg.Input.Format)
	assert.Equal(t, "Data", cfg.Input.Sheet)
	assert.Equal(t, 25, cfg.Clean.MaxTenureYears)
	assert.Equal(t, "debug", cfg.Log.Level)
	// Defaults still apply for unset values
	assert.Equal(t, "sales_method_dominance_choropleth.html", cfg.Output.Path)
	assert.Equal(t, model.CanonicalMethods(), cfg.Clean.Methods)
}

func TestLoadEnvOverridesDefaults(t *testing.T) {
	chTempDir(t)

	t.Setenv("SALES_INPUT_PATH", "other.csv")
	t.Setenv("SALES_SERVER_PORT", "3000")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "other.csv", cfg.Input.Path)
	assert.Equal(t, 3000, cfg.Server.Port)
}

func TestValidateRejectsBadConfig(t *testing.T) {
	chTempDir(t)

	cfg, err := Load()
	require.NoError(t, err)

	cfg.Clean.MaxTenureYears = 0
	err = cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "max_tenure_years")
}

func TestValidateRejectsNonCanonicalAlias(t *testing.T) {
	chTempDir(t)

	cfg, err := Load()
	require.NoError(t, err)

	cfg.Clean.MethodAliases["fax"] = "Fax"
	err = cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "non-canonical")
}

func TestInitLoggerConsole(t *testing.T) {
	err := InitLogger(LogConfig{Level: "debug", Format: "console"})
	require.NoError(t, err)
	assert.NotNil(t, zap.L())
}

func TestInitLoggerInvalidLevel(t *testing.T) {
	err := InitLogger(LogConfig{Level: "invalid", Format: "json"})
	assert.Error(t, err)
}
