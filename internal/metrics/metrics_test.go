package metrics

import (
	"bytes"
	"errors"
	"fmt"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nekitakamenev/boyermoore"
)

func TestObserveScan(t *testing.T) {
	bm, err := boyermoore.New("TCTA", "ACGT")
	require.NoError(t, err)

	m := New()
	res, err := boyermoore.ScanFunc(bm, "TCTA", "GCTAGCTCTACGAGTCTA", m.ObserveStep)
	m.ObserveScan(res, err)

	assert.Equal(t, 1.0, testutil.ToFloat64(m.scans))
	assert.Equal(t, 5.0, testutil.ToFloat64(m.alignments))
	assert.Equal(t, 14.0, testutil.ToFloat64(m.comparisons))
	assert.Equal(t, 2.0, testutil.ToFloat64(m.occurrences))

	var buf bytes.Buffer
	require.NoError(t, m.WriteText(&buf))
	assert.Contains(t, buf.String(), "bmsearch_alignments_total 5")
	assert.Contains(t, buf.String(), "bmsearch_shift_size_count 5")
}

func TestObserveScanError(t *testing.T) {
	bm, err := boyermoore.New("TCTA", "ACGT")
	require.NoError(t, err)

	m := New()
	m.ObserveScan(boyermoore.Scan(bm, "TCTA", "TCTN"))

	assert.Equal(t, 0.0, testutil.ToFloat64(m.scans))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.errors.WithLabelValues("symbol_not_in_alphabet")))
}

func TestErrorKind(t *testing.T) {
	tests := map[string]struct {
		err error
		exp string
	}{
		"length":   {err: fmt.Errorf("x: %w", boyermoore.ErrInvalidPatternLength), exp: "invalid_pattern_length"},
		"symbol":   {err: boyermoore.ErrSymbolNotInAlphabet, exp: "symbol_not_in_alphabet"},
		"offset":   {err: boyermoore.ErrInvalidOffset, exp: "invalid_offset"},
		"alphabet": {err: boyermoore.ErrInvalidAlphabet, exp: "invalid_alphabet"},
		"mismatch": {err: boyermoore.ErrPatternMismatch, exp: "pattern_mismatch"},
		"other":    {err: errors.New("boom"), exp: "other"},
	}
	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, tc.exp, ErrorKind(tc.err))
		})
	}
}
