package configutil

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

type testConfig struct {
	BaseURL string `json:"base_url"`
	Unit    string `json:"unit"`
}

func TestReadConfigMergesLocalOverrides(t *testing.T) {
	dir := t.TempDir()
	name := filepath.Join(dir, "lcr.json5")

	err := os.WriteFile(name, []byte(`{
		// comments are fine, this is json5
		base_url: "https://lcr.churchofjesuschrist.org",
		unit: "12345",
	}`), 0644)
	require.NoError(t, err)
	err = os.WriteFile(filepath.Join(dir, "lcr.local.json5"), []byte(`{
		unit: "99999",
	}`), 0644)
	require.NoError(t, err)

	cfg, err := ReadConfig[testConfig](name)
	require.NoError(t, err)
	require.Equal(t, "https://lcr.churchofjesuschrist.org", cfg.BaseURL)
	require.Equal(t, "99999", cfg.Unit)
}

func TestReadConfigLocalOnly(t *testing.T) {
	dir := t.TempDir()
	err := os.WriteFile(filepath.Join(dir, "lcr.local.json5"), []byte(`{
		unit: "77777",
	}`), 0644)
	require.NoError(t, err)

	cfg, err := ReadConfig[testConfig](filepath.Join(dir, "lcr.json5"))
	require.NoError(t, err)
	require.Equal(t, "77777", cfg.Unit)
}

func TestReadConfigMissing(t *testing.T) {
	_, err := ReadConfig[testConfig](filepath.Join(t.TempDir(), "lcr.json5"))
	require.True(t, errors.Is(err, os.ErrNotExist))
}
