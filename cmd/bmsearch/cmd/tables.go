// Copyright (c) 2025 Nikita Kamenev
// Licensed under the MIT License. See LICENSE file in the project root for details.
package cmd

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/nekitakamenev/boyermoore"
)

type tablesReport struct {
	Pattern     string  `yaml:"pattern"`
	Alphabet    string  `yaml:"alphabet"`
	N           []int   `yaml:"n"`
	BigLPrime   []int   `yaml:"big_l_prime"`
	BigL        []int   `yaml:"big_l"`
	SmallLPrime []int   `yaml:"small_l_prime"`
	BadChar     [][]int `yaml:"bad_char"`
	MatchSkip   int     `yaml:"match_skip"`
}

func newTablesCmd(a *app) *cobra.Command {
	var pattern string

	cmd := &cobra.Command{
		Use:   "tables",
		Short: "Print the preprocessing tables of a pattern",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.tables(cmd.OutOrStdout(), strings.TrimSpace(pattern))
		},
	}
	cmd.Flags().StringVarP(&pattern, "pattern", "p", "", "pattern to preprocess")
	cobra.CheckErr(cmd.MarkFlagRequired("pattern"))
	return cmd
}

func (a *app) tables(w io.Writer, pattern string) error {
	alphabet := a.cfg.ResolveAlphabet()
	bm, err := boyermoore.New(pattern, alphabet)
	if err != nil {
		a.metrics.ObserveError(err)
		return fmt.Errorf("build matcher: %w", err)
	}
	t := bm.Tables()
	rep := tablesReport{
		Pattern:     pattern,
		Alphabet:    alphabet,
		N:           t.N,
		BigLPrime:   t.BigLPrime,
		BigL:        t.BigL,
		SmallLPrime: t.SmallLPrime,
		BadChar:     t.BadChar,
		MatchSkip:   bm.MatchSkip(),
	}
	if a.cfg.Output == "yaml" {
		return writeYAML(w, rep)
	}
	return writeTablesText(w, rep)
}

// writeTablesText prints one column per pattern offset.
func writeTablesText(w io.Writer, rep tablesReport) error {
	tw := tabwriter.NewWriter(w, 0, 4, 1, ' ', tabwriter.AlignRight)
	row := func(name string, cells []string) {
		fmt.Fprintf(tw, "%s\t%s\t\n", name, strings.Join(cells, "\t"))
	}
	ints := func(v []int) []string {
		s := make([]string, len(v))
		for i, x := range v {
			s[i] = fmt.Sprint(x)
		}
		return s
	}

	offsets := make([]int, len(rep.Pattern))
	symbols := make([]string, len(rep.Pattern))
	for i := range offsets {
		offsets[i] = i
		symbols[i] = fmt.Sprintf("%c", rep.Pattern[i])
	}
	row("i", ints(offsets))
	row("P", symbols)
	row("N", ints(rep.N))
	row("L'", ints(rep.BigLPrime))
	row("L", ints(rep.BigL))
	row("l'", ints(rep.SmallLPrime))
	for col := 0; col < len(rep.Alphabet); col++ {
		cells := make([]int, len(rep.BadChar))
		for i, r := range rep.BadChar {
			cells[i] = r[col]
		}
		row(fmt.Sprintf("R(%q)", rep.Alphabet[col]), ints(cells))
	}
	if err := tw.Flush(); err != nil {
		return err
	}
	_, err := fmt.Fprintf(w, "match skip: %d\n", rep.MatchSkip)
	return err
}
