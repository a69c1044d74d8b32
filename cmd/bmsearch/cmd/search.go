// Copyright (c) 2025 Nikita Kamenev
// Licensed under the MIT License. See LICENSE file in the project root for details.
package cmd

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v2"

	"github.com/nekitakamenev/boyermoore"
	"github.com/nekitakamenev/boyermoore/internal/logger"
)

type searchReport struct {
	TextLength    int   `yaml:"text_length"`
	PatternLength int   `yaml:"pattern_length"`
	Occurrences   []int `yaml:"occurrences"`
	Alignments    int   `yaml:"alignments"`
	Comparisons   int   `yaml:"comparisons"`
}

func newSearchCmd(a *app) *cobra.Command {
	var pattern, text, file string

	cmd := &cobra.Command{
		Use:   "search",
		Short: "Find every occurrence of a pattern in a text",
		Long:  `search reads the text from --text, --file or standard input, trims surrounding whitespace and reports every occurrence of --pattern with the number of alignments and comparisons.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if text != "" && file != "" {
				return errors.New("--text and --file are mutually exclusive")
			}
			input, err := readText(cmd, text, file)
			if err != nil {
				return err
			}
			return a.search(cmd.OutOrStdout(), strings.TrimSpace(pattern), input)
		},
	}
	cmd.Flags().StringVarP(&pattern, "pattern", "p", "", "pattern to search for")
	cmd.Flags().StringVarP(&text, "text", "t", "", "text to search in")
	cmd.Flags().StringVarP(&file, "file", "f", "", "file holding the text")
	cmd.Flags().Bool("trace", false, "log every alignment")
	cmd.Flags().Bool("metrics", false, "print scan metrics after the run")
	cobra.CheckErr(cmd.MarkFlagRequired("pattern"))
	cobra.CheckErr(a.v.BindPFlag("trace", cmd.Flags().Lookup("trace")))
	cobra.CheckErr(a.v.BindPFlag("metrics", cmd.Flags().Lookup("metrics")))
	return cmd
}

func readText(cmd *cobra.Command, text, file string) (string, error) {
	switch {
	case text != "":
		return strings.TrimSpace(text), nil
	case file != "":
		b, err := os.ReadFile(file)
		if err != nil {
			return "", fmt.Errorf("read text: %w", err)
		}
		return strings.TrimSpace(string(b)), nil
	default:
		b, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return "", fmt.Errorf("read text from stdin: %w", err)
		}
		return strings.TrimSpace(string(b)), nil
	}
}

func (a *app) search(w io.Writer, pattern, text string) error {
	log := logger.With("run_id", uuid.NewString())
	alphabet := a.cfg.ResolveAlphabet()

	bm, err := boyermoore.New(pattern, alphabet)
	if err != nil {
		a.metrics.ObserveError(err)
		return fmt.Errorf("build matcher: %w", err)
	}
	log.Debug("matcher built", "pattern", pattern, "alphabet", alphabet, "match_skip", bm.MatchSkip())

	res, err := boyermoore.ScanFunc(bm, pattern, text, func(s boyermoore.Step) {
		a.metrics.ObserveStep(s)
		if !a.cfg.Trace {
			return
		}
		if s.Matched {
			log.Info("alignment", "offset", s.Offset, "matched", true,
				"shift", s.Shift, "comparisons", s.Comparisons)
			return
		}
		log.Info("alignment", "offset", s.Offset, "mismatch", s.MismatchIndex,
			"bad_char_shift", s.BadCharShift, "good_suffix_shift", s.GoodSuffixShift,
			"shift", s.Shift, "comparisons", s.Comparisons)
	})
	a.metrics.ObserveScan(res, err)
	if err != nil {
		return fmt.Errorf("scan: %w", err)
	}
	log.Info("scan finished", "occurrences", len(res.Occurrences),
		"alignments", res.Alignments, "comparisons", res.Comparisons)

	rep := searchReport{
		TextLength:    len(text),
		PatternLength: len(pattern),
		Occurrences:   res.Occurrences,
		Alignments:    res.Alignments,
		Comparisons:   res.Comparisons,
	}
	if err := a.writeReport(w, rep); err != nil {
		return err
	}
	return a.writeMetrics(w)
}

func (a *app) writeReport(w io.Writer, rep searchReport) error {
	if a.cfg.Output == "yaml" {
		return writeYAML(w, rep)
	}
	_, err := fmt.Fprintf(w, "Text length: %d\nPattern length: %d\nOccurrences: %v\nAlignments: %d\nComparisons: %d\n",
		rep.TextLength, rep.PatternLength, rep.Occurrences, rep.Alignments, rep.Comparisons)
	return err
}

func (a *app) writeMetrics(w io.Writer) error {
	if !a.cfg.Metrics {
		return nil
	}
	return a.metrics.WriteText(w)
}

func writeYAML(w io.Writer, v any) error {
	b, err := yaml.Marshal(v)
	if err != nil {
		return fmt.Errorf("encode yaml: %w", err)
	}
	_, err = w.Write(b)
	return err
}
