// Copyright (c) 2025 Nikita Kamenev
// Licensed under the MIT License. See LICENSE file in the project root for details.
package boyermoore

import "fmt"

// alphabetMap maps each symbol of alphabet to its position.
func alphabetMap(alphabet string) (map[byte]int, error) {
	if len(alphabet) == 0 {
		return nil, fmt.Errorf("empty alphabet: %w", ErrInvalidAlphabet)
	}
	am := make(map[byte]int, len(alphabet))
	for i := 0; i < len(alphabet); i++ {
		c := alphabet[i]
		if j, ok := am[c]; ok {
			return nil, fmt.Errorf("symbol %q at %d repeats index %d: %w", c, i, j, ErrInvalidAlphabet)
		}
		am[c] = i
	}
	return am, nil
}

// denseBadCharTable builds a table indexed by pattern offset then alphabet index.
// Row i holds, for every symbol, the 1-based rightmost position of that symbol
// in pattern[:i], or 0 if it does not occur there.
func denseBadCharTable(pattern string, am map[byte]int) ([][]int, error) {
	if len(pattern) <= 1 {
		return nil, fmt.Errorf("bad character table for %q: %w", pattern, ErrInvalidPatternLength)
	}
	// All rows share one backing buffer.
	buf := make([]int, len(pattern)*len(am))
	table := make([][]int, len(pattern))
	next := make([]int, len(am))
	for i := 0; i < len(pattern); i++ {
		c := pattern[i]
		idx, ok := am[c]
		if !ok {
			return nil, fmt.Errorf("pattern symbol %q at %d: %w", c, i, ErrSymbolNotInAlphabet)
		}
		row := buf[i*len(am) : (i+1)*len(am) : (i+1)*len(am)]
		copy(row, next)
		table[i] = row
		next[idx] = i + 1
	}
	return table, nil
}
