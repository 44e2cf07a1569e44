// Package tabligntest contains utility functions that help with
// testing tablign: a fixed-width mock font and a recording applier.
package tabligntest

import (
	"fmt"
	"sync"
	"unicode/utf8"

	"github.com/rjkroege/tablign/draw"
	"github.com/rjkroege/tablign/table"
)

var _ = draw.Font((*mockFont)(nil))
var _ = table.Applier((*RecordingApplier)(nil))

const MockFontName = "/lib/font/bit/lucsans/euro.8.font"

// mockFont implements draw.Font and mocks as a fixed width font.
type mockFont struct {
	width, height int
}

// NewFont returns a draw.Font that mocks a fixed-width font.
func NewFont(width, height int) draw.Font {
	return &mockFont{width: width, height: height}
}

func (f *mockFont) Name() string             { return MockFontName }
func (f *mockFont) Height() int              { return f.height }
func (f *mockFont) BytesWidth(b []byte) int  { return f.width * utf8.RuneCount(b) }
func (f *mockFont) RunesWidth(r []rune) int  { return f.width * len(r) }
func (f *mockFont) StringWidth(s string) int { return f.width * utf8.RuneCountInString(s) }

// A RecordingApplier implements table.Applier and records the calls
// it receives as printable op strings. Safe for concurrent use.
type RecordingApplier struct {
	mu    sync.Mutex
	ops   []string
	plans []*table.Plan
}

func NewRecordingApplier() *RecordingApplier {
	return &RecordingApplier{}
}

func (a *RecordingApplier) Clear(r table.LineRange) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.ops = append(a.ops, fmt.Sprintf("clear %d-%d", r.Start, r.End))
}

func (a *RecordingApplier) Apply(p *table.Plan) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.ops = append(a.ops, fmt.Sprintf("apply %d-%d (%d directives)",
		p.Range.Start, p.Range.End, len(p.Directives)))
	a.plans = append(a.plans, p)
}

// Ops returns the recorded operations in call order.
func (a *RecordingApplier) Ops() []string {
	a.mu.Lock()
	defer a.mu.Unlock()
	return append([]string{}, a.ops...)
}

// Plans returns the applied plans in call order.
func (a *RecordingApplier) Plans() []*table.Plan {
	a.mu.Lock()
	defer a.mu.Unlock()
	return append([]*table.Plan{}, a.plans...)
}

// Reset drops the recorded history.
func (a *RecordingApplier) Reset() {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.ops = nil
	a.plans = nil
}
