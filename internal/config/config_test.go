package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "bmsearch.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoadDefaults(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	cfg, err := Load(viper.New(), "")
	require.NoError(t, err)
	assert.Equal(t, &Config{
		AlphabetPreset: "lower",
		LogLevel:       "info",
		LogFormat:      "text",
		Output:         "text",
	}, cfg)
	assert.Equal(t, "abcdefghijklmnopqrstuvwxyz ", cfg.ResolveAlphabet())
}

func TestLoadFile(t *testing.T) {
	path := writeConfig(t, `
alphabet_preset: dna
log_level: debug
log_format: json
output: yaml
trace: true
metrics: true
`)
	cfg, err := Load(viper.New(), path)
	require.NoError(t, err)
	assert.Equal(t, "ACGT", cfg.ResolveAlphabet())
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "json", cfg.LogFormat)
	assert.Equal(t, "yaml", cfg.Output)
	assert.True(t, cfg.Trace)
	assert.True(t, cfg.Metrics)
}

func TestLoadEnvOverridesFile(t *testing.T) {
	path := writeConfig(t, "alphabet_preset: dna\n")
	t.Setenv("BMSEARCH_ALPHABET", "xyz")
	t.Setenv("BMSEARCH_OUTPUT", "yaml")

	cfg, err := Load(viper.New(), path)
	require.NoError(t, err)
	assert.Equal(t, "xyz", cfg.ResolveAlphabet())
	assert.Equal(t, "yaml", cfg.Output)
}

func TestLoadMissingExplicitFile(t *testing.T) {
	_, err := Load(viper.New(), filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	valid := Config{AlphabetPreset: "dna", LogFormat: "text", Output: "text"}

	tests := map[string]struct {
		mutate func(*Config)
		errMsg string
	}{
		"valid":          {mutate: func(*Config) {}},
		"unknown preset": {mutate: func(c *Config) { c.AlphabetPreset = "greek" }, errMsg: "binary, dna, lower, upper"},
		"literal wins":   {mutate: func(c *Config) { c.AlphabetPreset, c.Alphabet = "greek", "ab" }},
		"bad output":     {mutate: func(c *Config) { c.Output = "xml" }, errMsg: "output format"},
		"bad log format": {mutate: func(c *Config) { c.LogFormat = "logfmt" }, errMsg: "log format"},
	}
	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			cfg := valid
			tc.mutate(&cfg)
			err := cfg.Validate()
			if tc.errMsg == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tc.errMsg)
		})
	}
}
