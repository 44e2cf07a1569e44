package text

import (
	"fmt"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestLineIndex(t *testing.T) {
	testCases := []struct {
		text   string
		count  int
		lines  []string
		starts []int
	}{
		{"", 1, []string{""}, []int{0}},
		{"a", 1, []string{"a"}, []int{0}},
		{"a\n", 2, []string{"a", ""}, []int{0, 2}},
		{"a\nb", 2, []string{"a", "b"}, []int{0, 2}},
		{"| a |\n| b |\n", 3, []string{"| a |", "| b |", ""}, []int{0, 6, 12}},
		{"\n\n", 3, []string{"", "", ""}, []int{0, 1, 2}},
		{"héllo\n世界", 2, []string{"héllo", "世界"}, []int{0, 6}},
	}
	for _, tc := range testCases {
		b := NewBuffer(tc.text)
		if got, want := b.LineCount(), tc.count; got != want {
			t.Errorf("LineCount of %q is %d; expected %d", tc.text, got, want)
		}
		for i, want := range tc.lines {
			if got := b.Line(i); got != want {
				t.Errorf("Line(%d) of %q is %q; expected %q", i, tc.text, got, want)
			}
		}
		for i, want := range tc.starts {
			if got := b.LineStart(i); got != want {
				t.Errorf("LineStart(%d) of %q is %d; expected %d", i, tc.text, got, want)
			}
		}
	}
}

func TestLineAt(t *testing.T) {
	b := NewBuffer("ab\ncd\n\nef")
	testCases := []struct {
		q    int
		line int
	}{
		{0, 0},
		{1, 0},
		{2, 0},
		{3, 1},
		{5, 1},
		{6, 2},
		{7, 3},
		{8, 3},
		{9, 3},
		{100, 3},
	}
	for _, tc := range testCases {
		if got := b.LineAt(tc.q); got != tc.line {
			t.Errorf("LineAt(%d) is %d; expected %d", tc.q, got, tc.line)
		}
	}
}

func TestInsertDelete(t *testing.T) {
	b := NewBuffer("| a |\n| b |")
	b.InsertAt(6, []rune("| x |\n"))
	if got, want := b.String(), "| a |\n| x |\n| b |"; got != want {
		t.Errorf("after InsertAt buffer is %q; expected %q", got, want)
	}
	if got, want := b.LineCount(), 3; got != want {
		t.Errorf("after InsertAt LineCount is %d; expected %d", got, want)
	}
	b.DeleteAt(0, 6)
	if got, want := b.String(), "| x |\n| b |"; got != want {
		t.Errorf("after DeleteAt buffer is %q; expected %q", got, want)
	}
	if got, want := b.Line(1), "| b |"; got != want {
		t.Errorf("after DeleteAt Line(1) is %q; expected %q", got, want)
	}
}

// recordingObserver records mutation callbacks as strings.
type recordingObserver struct {
	events []string
}

func (o *recordingObserver) Inserted(q0 int, r []rune) {
	o.events = append(o.events, fmt.Sprintf("insert %q at %d", string(r), q0))
}

func (o *recordingObserver) Deleted(q0, q1 int) {
	o.events = append(o.events, fmt.Sprintf("delete %d:%d", q0, q1))
}

func TestObservers(t *testing.T) {
	b := NewBuffer("hello")
	o := &recordingObserver{}
	b.AddObserver(o)
	b.InsertAt(5, []rune(" world"))
	b.DeleteAt(0, 5)

	want := []string{`insert " world" at 5`, "delete 0:5"}
	if diff := cmp.Diff(want, o.events); diff != "" {
		t.Errorf("observer events mismatch (-want +got):\n%s", diff)
	}

	if err := b.DelObserver(o); err != nil {
		t.Errorf("DelObserver of registered observer failed: %v", err)
	}
	b.InsertAt(0, []rune("x"))
	if len(o.events) != 2 {
		t.Errorf("observer notified after DelObserver: %v", o.events)
	}
	if err := b.DelObserver(o); err == nil {
		t.Errorf("DelObserver of unregistered observer did not fail")
	}
}
