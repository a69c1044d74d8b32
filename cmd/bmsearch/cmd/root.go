// Copyright (c) 2025 Nikita Kamenev
// Licensed under the MIT License. See LICENSE file in the project root for details.
package cmd

import (
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/nekitakamenev/boyermoore/internal/config"
	"github.com/nekitakamenev/boyermoore/internal/logger"
	"github.com/nekitakamenev/boyermoore/internal/metrics"
)

// app is the state shared by the subcommands of one invocation.
type app struct {
	v       *viper.Viper
	cfgFile string
	cfg     *config.Config
	metrics *metrics.Metrics
}

// NewRootCmd builds the bmsearch command tree.
func NewRootCmd() *cobra.Command {
	a := &app{v: viper.New(), metrics: metrics.New()}

	rootCmd := &cobra.Command{
		Use:           "bmsearch",
		Short:         "Boyer-Moore exact substring search",
		Long:          `bmsearch finds every occurrence of a pattern in a text with the Boyer-Moore algorithm using the strong good suffix rule and a dense bad character table.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(a.v, a.cfgFile)
			if err != nil {
				return err
			}
			a.cfg = cfg
			logger.Initialize(cmd.ErrOrStderr(), cfg.LogLevel, cfg.LogFormat)
			return nil
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&a.cfgFile, "config", "", "config file (default is $HOME/.bmsearch.yaml)")
	flags.String("alphabet", "", "literal alphabet, overrides --alphabet-preset")
	flags.String("alphabet-preset", "lower", "named alphabet: binary, dna, lower, upper")
	flags.String("log-level", "info", "log level: debug, info, warn, error")
	flags.String("log-format", "text", "log format: text or json")
	flags.StringP("output", "o", "text", "output format: text or yaml")

	for key, flag := range map[string]string{
		"alphabet":        "alphabet",
		"alphabet_preset": "alphabet-preset",
		"log_level":       "log-level",
		"log_format":      "log-format",
		"output":          "output",
	} {
		cobra.CheckErr(a.v.BindPFlag(key, flags.Lookup(flag)))
	}

	rootCmd.AddCommand(newSearchCmd(a), newTablesCmd(a))
	return rootCmd
}

// Execute runs the root command and exits non-zero on failure.
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		logger.Error("bmsearch failed", "error", err)
		os.Exit(1)
	}
}
