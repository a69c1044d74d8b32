// Copyright (c) 2025 Nikita Kamenev
// Licensed under the MIT License. See LICENSE file in the project root for details.
package config

import (
	"errors"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/spf13/viper"
)

// Presets holds the named alphabets accepted by alphabet_preset.
var Presets = map[string]string{
	"dna":    "ACGT",
	"lower":  "abcdefghijklmnopqrstuvwxyz ",
	"upper":  "ABCDEFGHIJKLMNOPQRSTUVWXYZ ",
	"binary": "01",
}

const envPrefix = "BMSEARCH"

// Config is the bmsearch configuration.
type Config struct {
	Alphabet       string `mapstructure:"alphabet"`        // Literal alphabet, overrides the preset.
	AlphabetPreset string `mapstructure:"alphabet_preset"` // Key of Presets.
	LogLevel       string `mapstructure:"log_level"`
	LogFormat      string `mapstructure:"log_format"` // text or json
	Output         string `mapstructure:"output"`     // text or yaml
	Trace          bool   `mapstructure:"trace"`      // Log every alignment.
	Metrics        bool   `mapstructure:"metrics"`    // Print scan metrics after the run.
}

// SetDefaults registers every key with its default value.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("alphabet", "")
	v.SetDefault("alphabet_preset", "lower")
	v.SetDefault("log_level", "info")
	v.SetDefault("log_format", "text")
	v.SetDefault("output", "text")
	v.SetDefault("trace", false)
	v.SetDefault("metrics", false)
}

// Load reads cfgFile, or $HOME/.bmsearch.yaml when cfgFile is empty, then the
// BMSEARCH_* environment, on top of the defaults. A missing default file is not
// an error.
func Load(v *viper.Viper, cfgFile string) (*Config, error) {
	SetDefaults(v)
	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(home)
		}
		v.SetConfigType("yaml")
		v.SetConfigName(".bmsearch")
	}
	v.SetEnvPrefix(envPrefix)
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if cfgFile != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks enumerated values.
func (c *Config) Validate() error {
	if c.Alphabet == "" {
		if _, ok := Presets[c.AlphabetPreset]; !ok {
			return fmt.Errorf("unknown alphabet preset %q, want one of %s", c.AlphabetPreset, presetNames())
		}
	}
	switch c.Output {
	case "text", "yaml":
	default:
		return fmt.Errorf("unknown output format %q, want text or yaml", c.Output)
	}
	switch c.LogFormat {
	case "text", "json":
	default:
		return fmt.Errorf("unknown log format %q, want text or json", c.LogFormat)
	}
	return nil
}

// ResolveAlphabet returns the literal alphabet if set, else the preset's.
func (c *Config) ResolveAlphabet() string {
	if c.Alphabet != "" {
		return c.Alphabet
	}
	return Presets[c.AlphabetPreset]
}

func presetNames() string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return strings.Join(names, ", ")
}
