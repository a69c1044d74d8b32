// Copyright (c) 2025 Nikita Kamenev
// Licensed under the MIT License. See LICENSE file in the project root for details.
package boyermoore

import "errors"

var (
	// ErrInvalidPatternLength is returned when a pattern is too short to preprocess.
	ErrInvalidPatternLength = errors.New("boyermoore: pattern length must be greater than 1")
	// ErrSymbolNotInAlphabet is returned for a pattern or text symbol missing from the alphabet.
	ErrSymbolNotInAlphabet = errors.New("boyermoore: symbol not found in alphabet")
	// ErrInvalidOffset is returned for an offset outside the pattern.
	ErrInvalidOffset = errors.New("boyermoore: invalid offset")
	// ErrPatternMismatch is returned when a scan is given a pattern other than the Matcher's.
	ErrPatternMismatch = errors.New("boyermoore: pattern differs from the preprocessed pattern")
	// ErrInvalidAlphabet is returned for an empty alphabet or one with repeated symbols.
	ErrInvalidAlphabet = errors.New("boyermoore: invalid alphabet")
)
