// Copyright (c) 2025 Nikita Kamenev
// Licensed under the MIT License. See LICENSE file in the project root for details.
package boyermoore

import "fmt"

// Result is the outcome of a scan.
type Result struct {
	Occurrences []int // Text offsets of full matches, ascending.
	Alignments  int   // Number of alignments tried.
	Comparisons int   // Number of symbol comparisons.
}

// Step describes a single alignment of a scan.
type Step struct {
	Offset          int  // Text offset of the alignment.
	Matched         bool // Whole pattern matched.
	MismatchIndex   int  // Pattern index of the mismatch, valid when !Matched.
	BadCharShift    int  // 0 on a full match.
	GoodSuffixShift int  // Match skip on a full match.
	Shift           int  // Shift applied after this alignment.
	Comparisons     int  // Comparisons so far, including this alignment.
}

// Scan finds every occurrence of pattern in text using m, which must have been
// built from pattern.
func Scan(m *Matcher, pattern, text string) (Result, error) {
	return ScanFunc(m, pattern, text, nil)
}

// ScanFunc is like Scan and calls fn, if not nil, after every alignment.
// Any rule error aborts the scan and no partial result is returned.
func ScanFunc(m *Matcher, pattern, text string, fn func(Step)) (Result, error) {
	if len(pattern) != m.Len() {
		return Result{}, fmt.Errorf("pattern of length %d for matcher of length %d: %w",
			len(pattern), m.Len(), ErrInvalidPatternLength)
	}
	if pattern != m.pattern {
		return Result{}, fmt.Errorf("pattern %q for matcher of %q: %w", pattern, m.pattern, ErrPatternMismatch)
	}
	var (
		res  = Result{Occurrences: []int{}}
		plen = len(pattern)
	)
	for i := 0; i <= len(text)-plen; {
		res.Alignments++
		step := Step{Offset: i, Matched: true}
		for j := plen - 1; j >= 0; j-- {
			res.Comparisons++
			if pattern[j] == text[i+j] {
				continue
			}
			bc, err := m.BadCharRule(j, text[i+j])
			if err != nil {
				return Result{}, fmt.Errorf("alignment %d: %w", i, err)
			}
			gs, err := m.GoodSuffixRule(j)
			if err != nil {
				return Result{}, fmt.Errorf("alignment %d: %w", i, err)
			}
			step.Matched, step.MismatchIndex = false, j
			step.BadCharShift, step.GoodSuffixShift = bc, gs
			step.Shift = max(1, bc, gs)
			break
		}
		if step.Matched {
			res.Occurrences = append(res.Occurrences, i)
			step.GoodSuffixShift = m.MatchSkip()
			step.Shift = max(1, step.GoodSuffixShift)
		}
		step.Comparisons = res.Comparisons
		if fn != nil {
			fn(step)
		}
		i += step.Shift
	}
	return res, nil
}

// FindAll returns the offsets of every occurrence of the Matcher's pattern in text.
func (m *Matcher) FindAll(text string) ([]int, error) {
	res, err := Scan(m, m.pattern, text)
	if err != nil {
		return nil, err
	}
	return res.Occurrences, nil
}
