// Copyright (c) 2025 Nikita Kamenev
// Licensed under the MIT License. See LICENSE file in the project root for details.
package boyermoore

import (
	"fmt"
	"slices"
)

// Matcher holds a pattern preprocessed for Boyer-Moore search with the strong
// good suffix rule and a dense bad character table. A Matcher is immutable
// and may be shared by concurrent scans.
type Matcher struct {
	pattern  string
	alphabet string
	alpha    map[byte]int // symbol -> column of badChar
	badChar  [][]int
	bigL     []int
	smallLP  []int
}

// New preprocesses pattern over alphabet. The alphabet is an ordered set of
// distinct single-byte symbols and must contain every symbol of the pattern.
func New(pattern, alphabet string) (*Matcher, error) {
	if len(pattern) <= 1 {
		return nil, fmt.Errorf("pattern %q: %w", pattern, ErrInvalidPatternLength)
	}
	alpha, err := alphabetMap(alphabet)
	if err != nil {
		return nil, err
	}
	badChar, err := denseBadCharTable(pattern, alpha)
	if err != nil {
		return nil, err
	}
	_, l, sl, err := goodSuffixTables(pattern)
	if err != nil {
		return nil, err
	}
	return &Matcher{
		pattern:  pattern,
		alphabet: alphabet,
		alpha:    alpha,
		badChar:  badChar,
		bigL:     l,
		smallLP:  sl,
	}, nil
}

// Len returns the pattern length.
func (m *Matcher) Len() int {
	return len(m.pattern)
}

// Pattern returns the preprocessed pattern.
func (m *Matcher) Pattern() string {
	return m.pattern
}

// Alphabet returns the alphabet the Matcher was built with.
func (m *Matcher) Alphabet() string {
	return m.alphabet
}

func (m *Matcher) checkOffset(offset int) error {
	if offset < 0 || offset >= len(m.pattern) {
		return fmt.Errorf("offset %d for pattern of length %d: %w", offset, len(m.pattern), ErrInvalidOffset)
	}
	return nil
}

// BadCharRule returns the shift that aligns the mismatched text symbol c at
// pattern offset with its rightmost occurrence in the pattern left of offset,
// or moves the pattern past c when there is none.
func (m *Matcher) BadCharRule(offset int, c byte) (int, error) {
	idx, ok := m.alpha[c]
	if !ok {
		return 0, fmt.Errorf("symbol %q: %w", c, ErrSymbolNotInAlphabet)
	}
	if err := m.checkOffset(offset); err != nil {
		return 0, err
	}
	// Row offset only records positions <= offset, so the shift is at least 1.
	return offset - (m.badChar[offset][idx] - 1), nil
}

// GoodSuffixRule returns the shift given by the strong good suffix rule for a
// mismatch at offset, i.e. when pattern[offset+1:] has already matched.
func (m *Matcher) GoodSuffixRule(offset int) (int, error) {
	if err := m.checkOffset(offset); err != nil {
		return 0, err
	}
	n := len(m.pattern)
	if offset == n-1 {
		return 0, nil
	}
	// Leftmost position of the matched suffix.
	offset++
	if m.bigL[offset] > 0 {
		return n - m.bigL[offset], nil
	}
	return n - m.smallLP[offset], nil
}

// MatchSkip returns the shift after a full match of the pattern.
func (m *Matcher) MatchSkip() int {
	return len(m.pattern) - m.smallLP[1]
}

// Tables is a copy of the preprocessing tables of a Matcher.
type Tables struct {
	N           []int
	BigLPrime   []int
	BigL        []int
	SmallLPrime []int
	BadChar     [][]int
}

// Tables recomputes N and L' and returns copies of every table.
func (m *Matcher) Tables() Tables {
	// Construction already validated the pattern, nArray cannot fail here.
	n, _ := nArray(m.pattern)
	badChar := make([][]int, len(m.badChar))
	for i, row := range m.badChar {
		badChar[i] = slices.Clone(row)
	}
	return Tables{
		N:           n,
		BigLPrime:   bigLPrime(n),
		BigL:        slices.Clone(m.bigL),
		SmallLPrime: slices.Clone(m.smallLP),
		BadChar:     badChar,
	}
}
