// Package text provides a mutable rune buffer with a line index and
// edit observers. It is the document store the alignment engine reads.
package text

import (
	"fmt"
	"sort"
)

// An Observer is notified after every mutation of a Buffer it is
// registered with. The buffer and its line index are consistent by the
// time a callback runs.
type Observer interface {
	// Inserted informs the implementer that runes r were inserted at
	// rune offset q0.
	Inserted(q0 int, r []rune)

	// Deleted informs the implementer that rune range [q0, q1) was
	// deleted.
	Deleted(q0, q1 int)
}

// Buffer is a mutable array of runes. It maintains an index of line
// start offsets, rebuilt lazily after mutations.
type Buffer struct {
	runes     []rune
	starts    []int // rune offset of each line start; starts[0] == 0
	stale     bool
	observers map[Observer]struct{}
}

func NewBuffer(s string) *Buffer {
	b := &Buffer{runes: []rune(s), stale: true}
	return b
}

// Nr returns the number of runes in the buffer.
func (b *Buffer) Nr() int { return len(b.runes) }

// String returns the buffer contents. See fmt.Stringer interface.
func (b *Buffer) String() string { return string(b.runes) }

// View returns the runes in [q0, q1) without copying. The slice is
// valid until the next mutation.
func (b *Buffer) View(q0, q1 int) []rune {
	if q1 > len(b.runes) {
		q1 = len(b.runes)
	}
	return b.runes[q0:q1]
}

func (b *Buffer) ReadC(q int) rune { return b.runes[q] }

// InsertAt inserts runes r at rune offset q0 and notifies observers.
func (b *Buffer) InsertAt(q0 int, r []rune) {
	if q0 > len(b.runes) {
		panic("internal error: Buffer.InsertAt: out of range insertion")
	}
	b.runes = append(b.runes[:q0], append(append([]rune{}, r...), b.runes[q0:]...)...)
	b.stale = true
	for o := range b.observers {
		o.Inserted(q0, r)
	}
}

// DeleteAt deletes the rune range [q0, q1) and notifies observers.
func (b *Buffer) DeleteAt(q0, q1 int) {
	if q0 > len(b.runes) || q1 > len(b.runes) {
		panic("internal error: Buffer.DeleteAt: out of range delete")
	}
	copy(b.runes[q0:], b.runes[q1:])
	b.runes = b.runes[:len(b.runes)-(q1-q0)]
	b.stale = true
	for o := range b.observers {
		o.Deleted(q0, q1)
	}
}

// AddObserver adds o as an observer for edits to this Buffer.
func (b *Buffer) AddObserver(o Observer) {
	if b.observers == nil {
		b.observers = make(map[Observer]struct{})
	}
	b.observers[o] = struct{}{}
}

// DelObserver removes o as an observer for edits to this Buffer.
func (b *Buffer) DelObserver(o Observer) error {
	if _, exists := b.observers[o]; exists {
		delete(b.observers, o)
		return nil
	}
	return fmt.Errorf("can't find observer in Buffer.DelObserver")
}

// index returns the line start offsets, rebuilding them if stale.
// An empty buffer has one empty line.
func (b *Buffer) index() []int {
	if b.stale {
		b.starts = b.starts[:0]
		b.starts = append(b.starts, 0)
		for i, r := range b.runes {
			if r == '\n' {
				b.starts = append(b.starts, i+1)
			}
		}
		b.stale = false
	}
	return b.starts
}

// LineCount returns the number of lines in the buffer.
func (b *Buffer) LineCount() int { return len(b.index()) }

// LineStart returns the rune offset of the first character of line i.
func (b *Buffer) LineStart(i int) int { return b.index()[i] }

// Line returns the content of line i without its trailing newline.
func (b *Buffer) Line(i int) string {
	starts := b.index()
	q0 := starts[i]
	q1 := len(b.runes)
	if i+1 < len(starts) {
		q1 = starts[i+1] - 1 // drop the newline
	}
	return string(b.runes[q0:q1])
}

// LineAt returns the index of the line containing rune offset q.
// Offsets at or past the end of the buffer map to the last line.
func (b *Buffer) LineAt(q int) int {
	starts := b.index()
	// First line starting beyond q, minus one.
	i := sort.Search(len(starts), func(i int) bool { return starts[i] > q })
	return i - 1
}
