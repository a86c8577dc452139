// Package report accumulates the non-fatal findings of a pipeline stage.
// Local errors never abort a run; each stage collects them and flushes the
// whole list through the logger when it finishes.
package report

import (
	"fmt"

	"github.com/rs/zerolog"
)

// Kind classifies a warning.
type Kind string

const (
	KindMappingMiss     Kind = "mapping-miss"
	KindBalanceMismatch Kind = "balance-mismatch"
	KindUnclassified    Kind = "unclassified-account"
	KindInvalidDate     Kind = "invalid-date"
	KindMalformedRow    Kind = "malformed-row"
	KindMissingParam    Kind = "missing-parameter"
)

// Warning is a single non-fatal finding.
type Warning struct {
	Kind   Kind
	ID     string // offending identifier: account code, entry id, ...
	Detail string
}

func (w Warning) String() string {
	return fmt.Sprintf("%s [%s]: %s", w.Kind, w.ID, w.Detail)
}

// Report collects warnings for one stage. Repeated findings with the same
// kind and identifier are counted, not duplicated.
type Report struct {
	Stage    string
	warnings []Warning
	counts   map[Kind]map[string]int
}

// New creates a Report for a named stage.
func New(stage string) *Report {
	return &Report{
		Stage:  stage,
		counts: make(map[Kind]map[string]int),
	}
}

// Add records a warning. The first occurrence of a (kind, id) pair keeps its
// detail text; later occurrences only bump the count.
func (r *Report) Add(kind Kind, id, format string, args ...any) {
	byID := r.counts[kind]
	if byID == nil {
		byID = make(map[string]int)
		r.counts[kind] = byID
	}
	byID[id]++
	if byID[id] == 1 {
		r.warnings = append(r.warnings, Warning{
			Kind:   kind,
			ID:     id,
			Detail: fmt.Sprintf(format, args...),
		})
	}
}

// Count returns how many times a (kind, id) pair was recorded.
func (r *Report) Count(kind Kind, id string) int {
	return r.counts[kind][id]
}

// Warnings returns the recorded warnings in first-occurrence order.
func (r *Report) Warnings() []Warning {
	return r.warnings
}

// Empty reports whether nothing was recorded.
func (r *Report) Empty() bool {
	return len(r.warnings) == 0
}

// Flush logs every warning in bulk and returns how many were logged.
func (r *Report) Flush(log zerolog.Logger) int {
	for _, w := range r.warnings {
		log.Warn().
			Str("stage", r.Stage).
			Str("kind", string(w.Kind)).
			Str("id", w.ID).
			Int("count", r.counts[w.Kind][w.ID]).
			Msg(w.Detail)
	}
	if len(r.warnings) > 0 {
		log.Info().Str("stage", r.Stage).Int("warnings", len(r.warnings)).Msg("stage finished with warnings")
	}
	return len(r.warnings)
}
