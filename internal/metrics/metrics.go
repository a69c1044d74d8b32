// Copyright (c) 2025 Nikita Kamenev
// Licensed under the MIT License. See LICENSE file in the project root for details.
package metrics

import (
	"errors"
	"fmt"
	"io"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/common/expfmt"

	"github.com/nekitakamenev/boyermoore"
)

// Metrics collects scan counters in its own registry.
type Metrics struct {
	registry    *prometheus.Registry
	scans       prometheus.Counter
	alignments  prometheus.Counter
	comparisons prometheus.Counter
	occurrences prometheus.Counter
	errors      *prometheus.CounterVec
	shifts      prometheus.Histogram
}

// New creates a Metrics with a fresh registry.
func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		scans: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "bmsearch_scans_total",
			Help: "Completed scans.",
		}),
		alignments: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "bmsearch_alignments_total",
			Help: "Alignments tried by completed scans.",
		}),
		comparisons: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "bmsearch_comparisons_total",
			Help: "Symbol comparisons made by completed scans.",
		}),
		occurrences: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "bmsearch_occurrences_total",
			Help: "Pattern occurrences found.",
		}),
		errors: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "bmsearch_errors_total",
			Help: "Failed matcher constructions and scans by kind.",
		}, []string{"kind"}),
		shifts: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "bmsearch_shift_size",
			Help:    "Shift applied after each alignment.",
			Buckets: prometheus.ExponentialBuckets(1, 2, 8),
		}),
	}
	m.registry.MustRegister(m.scans, m.alignments, m.comparisons, m.occurrences, m.errors, m.shifts)
	return m
}

// ObserveStep records the shift of one alignment.
func (m *Metrics) ObserveStep(s boyermoore.Step) {
	m.shifts.Observe(float64(s.Shift))
}

// ObserveScan records a finished scan or its error.
func (m *Metrics) ObserveScan(res boyermoore.Result, err error) {
	if err != nil {
		m.ObserveError(err)
		return
	}
	m.scans.Inc()
	m.alignments.Add(float64(res.Alignments))
	m.comparisons.Add(float64(res.Comparisons))
	m.occurrences.Add(float64(len(res.Occurrences)))
}

// ObserveError counts err under its kind.
func (m *Metrics) ObserveError(err error) {
	m.errors.WithLabelValues(ErrorKind(err)).Inc()
}

// ErrorKind maps a boyermoore error to a label value.
func ErrorKind(err error) string {
	switch {
	case errors.Is(err, boyermoore.ErrInvalidPatternLength):
		return "invalid_pattern_length"
	case errors.Is(err, boyermoore.ErrSymbolNotInAlphabet):
		return "symbol_not_in_alphabet"
	case errors.Is(err, boyermoore.ErrInvalidOffset):
		return "invalid_offset"
	case errors.Is(err, boyermoore.ErrInvalidAlphabet):
		return "invalid_alphabet"
	case errors.Is(err, boyermoore.ErrPatternMismatch):
		return "pattern_mismatch"
	default:
		return "other"
	}
}

// WriteText writes every metric in the Prometheus text exposition format.
func (m *Metrics) WriteText(w io.Writer) error {
	families, err := m.registry.Gather()
	if err != nil {
		return fmt.Errorf("gather metrics: %w", err)
	}
	for _, mf := range families {
		if _, err := expfmt.MetricFamilyToText(w, mf); err != nil {
			return fmt.Errorf("write metric %s: %w", mf.GetName(), err)
		}
	}
	return nil
}
