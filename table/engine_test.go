package table

import (
	"errors"
	"reflect"
	"testing"

	"github.com/rjkroege/tablign/text"
)

func TestAlignAtInstallsPlan(t *testing.T) {
	d := doc{
		"intro",
		"| a | b |",
		"| c | d |",
		"",
	}
	a := &recordingApplier{}
	e := New(glyphMetrics(10), a, WithPad(16), WithSpaceWidth(10))
	if err := e.AlignAt(d, nil, 2); err != nil {
		t.Fatalf("AlignAt failed: %v", err)
	}
	want := []string{
		"clear 1-3",
		"apply 1-3 (4 directives)",
	}
	if !reflect.DeepEqual(a.ops, want) {
		t.Errorf("ops = %v, want %v", a.ops, want)
	}
	if got := a.plans[0].Range; got != (LineRange{1, 3}) {
		t.Errorf("applied range = %v, want {1 3}", got)
	}
}

func TestAlignAtFailureLeavesDisplayAlone(t *testing.T) {
	a := &recordingApplier{}
	e := New(glyphMetrics(10), a)

	d := doc{"| a |", "| b"}
	if err := e.AlignAt(d, nil, 0); !errors.Is(err, ErrMalformedCell) {
		t.Fatalf("AlignAt error = %v, want ErrMalformedCell", err)
	}
	if len(a.ops) != 0 {
		t.Errorf("applier touched on failure: %v", a.ops)
	}

	if err := e.AlignAt(doc{"prose"}, nil, 0); !errors.Is(err, ErrNotOnTable) {
		t.Fatalf("AlignAt error = %v, want ErrNotOnTable", err)
	}
	if len(a.ops) != 0 {
		t.Errorf("applier touched off-table: %v", a.ops)
	}
}

func TestRealignRangeIsolatesFailures(t *testing.T) {
	d := doc{
		"| a | b |", // 0: aligns
		"",          // 1
		"| e | f",   // 2: malformed, keeps its rendering state
		"",          // 3
		"| g | h |", // 4: still aligns
	}
	a := &recordingApplier{}
	e := New(glyphMetrics(10), a, WithPad(16), WithSpaceWidth(10))

	// Out-of-range bounds clamp to the document.
	err := e.RealignRange(d, nil, -5, 99)
	if !errors.Is(err, ErrMalformedCell) {
		t.Fatalf("RealignRange error = %v, want ErrMalformedCell", err)
	}
	want := []string{
		"clear 0-1",
		"apply 0-1 (2 directives)",
		"clear 4-5",
		"apply 4-5 (2 directives)",
	}
	if !reflect.DeepEqual(a.ops, want) {
		t.Errorf("ops = %v, want %v", a.ops, want)
	}
	if got := a.plans[1].Range; got != (LineRange{4, 5}) {
		t.Errorf("second applied range = %v, want {4 5}", got)
	}
}

func TestRealignRangeSkipsVerbatim(t *testing.T) {
	d := doc{
		"```",
		"| not a table |",
		"```",
	}
	cls := verbatimLines{0: true, 1: true, 2: true}
	a := &recordingApplier{}
	e := New(glyphMetrics(10), a)
	if err := e.RealignRange(d, cls, 0, 3); err != nil {
		t.Fatalf("RealignRange failed: %v", err)
	}
	if len(a.ops) != 0 {
		t.Errorf("verbatim lines were realigned: %v", a.ops)
	}
}

func TestAlignLeavesDocumentUnchanged(t *testing.T) {
	const src = "| a | bb |\n| ccc | d |"
	buf := text.NewBuffer(src)
	a := &recordingApplier{}
	e := New(glyphMetrics(10), a)
	if err := e.AlignAt(buf, nil, 0); err != nil {
		t.Fatalf("AlignAt failed: %v", err)
	}
	if got := buf.String(); got != src {
		t.Errorf("document changed:\ngot  %q\nwant %q", got, src)
	}
	if len(a.plans) != 1 {
		t.Fatalf("got %d plans, want 1", len(a.plans))
	}
}
