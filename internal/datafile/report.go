package datafile

import (
	"fmt"
	"strings"

	"ssv/internal/log"
)

// Warning is one skipped line.
type Warning struct {
	Line int
	Kind Kind
	Err  error
}

func (w Warning) String() string {
	return w.Err.Error()
}

// Truncation records that a list filled up. FirstLine is the first record
// that did not fit; Dropped counts every record that did not fit.
type Truncation struct {
	Kind      Kind
	FirstLine int
	Dropped   int
	Err       error
}

// Report collects the non-fatal problems of one load for a single summary.
type Report struct {
	Source      string
	Lines       int
	Warnings    []Warning
	Truncations []Truncation
}

func (r *Report) malformed(line int, kind Kind, err error) {
	log.Warn("Skipping malformed line", "line", line, "kind", kind.String(), "error", err)
	r.Warnings = append(r.Warnings, Warning{Line: line, Kind: kind, Err: err})
}

func (r *Report) overflow(line int, kind Kind, err error) {
	for i := range r.Truncations {
		if r.Truncations[i].Kind == kind {
			r.Truncations[i].Dropped++
			return
		}
	}
	log.Warn("List full, dropping records", "line", line, "kind", kind.String(), "error", err)
	r.Truncations = append(r.Truncations, Truncation{Kind: kind, FirstLine: line, Dropped: 1, Err: err})
}

// Clean reports whether nothing was skipped or dropped.
func (r *Report) Clean() bool {
	return len(r.Warnings) == 0 && len(r.Truncations) == 0
}

// Summary renders the report for the user, one problem per line.
func (r *Report) Summary() string {
	var b strings.Builder
	name := r.Source
	if name == "" {
		name = "input"
	}
	fmt.Fprintf(&b, "%s: %d lines, %d skipped, %d list(s) truncated\n",
		name, r.Lines, len(r.Warnings), len(r.Truncations))
	for _, w := range r.Warnings {
		fmt.Fprintf(&b, "  %s\n", w)
	}
	for _, t := range r.Truncations {
		fmt.Fprintf(&b, "  line %d: %v (%d %s record(s) dropped)\n", t.FirstLine, t.Err, t.Dropped, t.Kind)
	}
	return b.String()
}
