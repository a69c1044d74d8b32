// Copyright (c) 2025 Nikita Kamenev
// Licensed under the MIT License. See LICENSE file in the project root for details.
package boyermoore

// bigLPrime builds L': lp[i] is the largest 1-based end position j of a copy of
// pattern[i:] that is preceded by a different symbol, or 0 if there is none.
func bigLPrime(n []int) []int {
	m := len(n)
	lp := make([]int, m)
	for j, nj := range n {
		if i := m - nj; i < m {
			lp[i] = j + 1
		}
	}
	return lp
}

// bigL builds L as the running maximum of L' from index 1. l[0] is unused.
func bigL(lp []int) []int {
	m := len(lp)
	l := make([]int, m)
	l[1] = lp[1]
	for i := 2; i < m; i++ {
		l[i] = max(l[i-1], lp[i])
	}
	return l
}

// smallLPrime builds l': sl[i] is the length of the longest prefix of the pattern
// that is also a suffix of pattern[i:].
func smallLPrime(n []int) []int {
	m := len(n)
	sl := make([]int, m)
	for i, ni := range n {
		// pattern[:i+1] is also a suffix of the pattern.
		if ni == i+1 {
			sl[m-i-1] = i + 1
		}
	}
	// Smear values to the left, carrying the nearest one found on the right.
	carry := sl[m-1]
	for i := m - 2; i >= 0; i-- {
		if sl[i] == 0 {
			sl[i] = carry
		}
		carry = sl[i]
	}
	return sl
}

// goodSuffixTables returns the L', L and l' tables of pattern.
func goodSuffixTables(pattern string) (lp, l, sl []int, err error) {
	n, err := nArray(pattern)
	if err != nil {
		return nil, nil, nil, err
	}
	lp = bigLPrime(n)
	return lp, bigL(lp), smallLPrime(n), nil
}
