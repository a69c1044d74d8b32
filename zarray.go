// Copyright (c) 2025 Nikita Kamenev
// Licensed under the MIT License. See LICENSE file in the project root for details.
package boyermoore

import "fmt"

// zArray computes the Z-array of s: z[i] is the length of the longest substring
// starting at i that matches a prefix of s. z[0] is len(s) by convention.
func zArray(s string) ([]int, error) {
	n := len(s)
	if n <= 1 {
		return nil, fmt.Errorf("z-array of length %d: %w", n, ErrInvalidPatternLength)
	}
	z := make([]int, n)
	z[0] = n

	// Compare s[1:] with the prefix directly.
	for i := 1; i < n && s[i] == s[i-1]; i++ {
		z[1]++
	}

	// [left, right] is the rightmost window known to match a prefix.
	var left, right int
	if z[1] > 0 {
		left, right = 1, z[1]
	}

	for k := 2; k < n; k++ {
		switch {
		case k > right:
			// Outside the window: plain comparison from k.
			for i := k; i < n && s[i] == s[i-k]; i++ {
				z[k]++
			}
			left, right = k, k+z[k]-1
		case right-k+1 > z[k-left]:
			// The mirrored match ends strictly inside the window.
			z[k] = z[k-left]
		default:
			// The mirrored match reaches the window edge, extend past right.
			matches := 0
			for i := right + 1; i < n && s[i] == s[i-k]; i++ {
				matches++
			}
			left = k
			right += matches
			z[k] = right - k + 1
		}
	}
	return z, nil
}

// reverse returns a reversed copy of s.
func reverse[T any](s []T) []T {
	r := make([]T, len(s))
	for i, v := range s {
		r[len(s)-1-i] = v
	}
	return r
}

// nArray computes the N-array of pattern: n[i] is the length of the longest suffix
// of pattern[:i+1] that is also a suffix of pattern. n[len(pattern)-1] is len(pattern).
func nArray(pattern string) ([]int, error) {
	z, err := zArray(string(reverse([]byte(pattern))))
	if err != nil {
		return nil, fmt.Errorf("z-array for pattern %q: %w", pattern, err)
	}
	return reverse(z), nil
}
