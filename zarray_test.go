package boyermoore

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func genRandText(size int, alphabet string) string {
	b := make([]byte, size)
	for i := 0; i < size; i++ {
		b[i] = alphabet[rand.Intn(len(alphabet))]
	}
	return string(b)
}

func makeZ(s string) []int {
	z := make([]int, len(s))
	z[0] = len(s)
	for i := 1; i < len(s); i++ {
		for i+z[i] < len(s) && s[z[i]] == s[i+z[i]] {
			z[i]++
		}
	}
	return z
}

func TestZArray(t *testing.T) {
	tests := map[string]struct {
		input string
		exp   []int
	}{
		"two different": {
			input: "AC",
			exp:   []int{2, 0},
		},
		"same characters": {
			input: "AAAA",
			exp:   []int{4, 3, 2, 1},
		},
		"TCTA": {
			input: "TCTA",
			exp:   []int{4, 0, 1, 0},
		},
		"ACAC": {
			input: "ACAC",
			exp:   []int{4, 0, 2, 0},
		},
		"inside window": {
			input: "aabcaabxaaaz",
			exp:   []int{12, 1, 0, 0, 3, 1, 0, 0, 2, 2, 1, 0},
		},
		"extend past window": {
			input: "aabaabaab",
			exp:   []int{9, 1, 0, 6, 1, 0, 3, 1, 0},
		},
	}
	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			z, err := zArray(tc.input)
			require.NoError(t, err)
			assert.Equal(t, tc.exp, z)
			assert.Equal(t, makeZ(tc.input), z)
		})
	}
}

func TestZArrayRandom(t *testing.T) {
	for _, alphabet := range []string{"a", "ab", "ACGT"} {
		for n := 0; n < 500; n++ {
			s := genRandText(2+rand.Intn(40), alphabet)
			z, err := zArray(s)
			require.NoError(t, err)
			require.Equal(t, makeZ(s), z, s)
		}
	}
}

func TestZArrayShort(t *testing.T) {
	for _, s := range []string{"", "A"} {
		_, err := zArray(s)
		assert.ErrorIs(t, err, ErrInvalidPatternLength)
	}
}

func TestNArray(t *testing.T) {
	tests := map[string]struct {
		pattern string
		exp     []int
	}{
		"TCTA":   {pattern: "TCTA", exp: []int{0, 0, 0, 4}},
		"ACTA":   {pattern: "ACTA", exp: []int{1, 0, 0, 4}},
		"ACTGTC": {pattern: "ACTGTC", exp: []int{0, 1, 0, 0, 0, 6}},
		"AAAA":   {pattern: "AAAA", exp: []int{1, 2, 3, 4}},
	}
	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			n, err := nArray(tc.pattern)
			require.NoError(t, err)
			assert.Equal(t, tc.exp, n)
			assert.Equal(t, len(tc.pattern), n[len(n)-1])
		})
	}
}

func TestNArrayShort(t *testing.T) {
	_, err := nArray("A")
	require.ErrorIs(t, err, ErrInvalidPatternLength)
	assert.Contains(t, err.Error(), `"A"`)
}
