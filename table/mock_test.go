package table

import (
	"fmt"
	"unicode/utf8"
)

// Test doubles shared by the package tests.

// doc adapts a string slice to the Document interface, one element per
// line.
type doc []string

func (d doc) LineCount() int    { return len(d) }
func (d doc) Line(i int) string { return d[i] }

func (d doc) LineStart(i int) int {
	q := 0
	for j := 0; j < i; j++ {
		q += utf8.RuneCountInString(d[j]) + 1
	}
	return q
}

// glyphMetrics measures every rune at a fixed pixel width.
type glyphMetrics int

func (g glyphMetrics) StringWidth(s string) (int, error) {
	return int(g) * utf8.RuneCountInString(s), nil
}

// countingMetrics records how often each span is measured.
type countingMetrics struct {
	glyphMetrics
	calls map[string]int
}

func newCountingMetrics(g int) *countingMetrics {
	return &countingMetrics{glyphMetrics: glyphMetrics(g), calls: make(map[string]int)}
}

func (m *countingMetrics) StringWidth(s string) (int, error) {
	m.calls[s]++
	return m.glyphMetrics.StringWidth(s)
}

// failingMetrics fails for one particular span and measures everything
// else at 10px per rune.
type failingMetrics struct {
	bad string
	err error
}

func (m failingMetrics) StringWidth(s string) (int, error) {
	if s == m.bad {
		return 0, m.err
	}
	return 10 * utf8.RuneCountInString(s), nil
}

// verbatimLines is a Classifier double marking a fixed set of lines.
type verbatimLines map[int]bool

func (v verbatimLines) Verbatim(line int) bool { return v[line] }

// recordingApplier records Clear and Apply calls as strings and keeps
// the applied plans.
type recordingApplier struct {
	ops   []string
	plans []*Plan
}

func (a *recordingApplier) Clear(r LineRange) {
	a.ops = append(a.ops, fmt.Sprintf("clear %d-%d", r.Start, r.End))
}

func (a *recordingApplier) Apply(p *Plan) {
	a.ops = append(a.ops, fmt.Sprintf("apply %d-%d (%d directives)", p.Range.Start, p.Range.End, len(p.Directives)))
	a.plans = append(a.plans, p)
}
