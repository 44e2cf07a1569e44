// Package tablign keeps pipe tables visually aligned while their text
// changes. An Aligner watches a text.Buffer and drives the layout
// engine over each edited region; cell widths come from a
// table.Metrics and the computed directives go out through a
// table.Applier. The stored text is never modified: alignment is
// display state only.
package tablign

import (
	"github.com/rjkroege/tablign/block"
	"github.com/rjkroege/tablign/table"
	"github.com/rjkroege/tablign/text"
)

var (
	_ = text.Observer((*Aligner)(nil))
	_ = table.Document((*text.Buffer)(nil))
	_ = block.Document((*text.Buffer)(nil))
	_ = table.Classifier((*block.Index)(nil))
)

// An Aligner binds a buffer to a layout engine. It registers itself
// as a buffer observer at construction and realigns the tables
// touched by every edit; Close deregisters it. Not safe for
// concurrent use, matching the buffer it watches.
type Aligner struct {
	buf    *text.Buffer
	engine *table.Engine
}

// NewAligner returns an Aligner watching buf, measuring through m and
// installing layout through a.
func NewAligner(buf *text.Buffer, m table.Metrics, a table.Applier, opts ...table.Option) *Aligner {
	al := &Aligner{
		buf:    buf,
		engine: table.New(m, a, opts...),
	}
	buf.AddObserver(al)
	return al
}

// Inserted implements text.Observer.
func (al *Aligner) Inserted(q0 int, r []rune) {
	al.realign(q0, q0+len(r))
}

// Deleted implements text.Observer.
func (al *Aligner) Deleted(q0, q1 int) {
	al.realign(q0, q0)
}

// realign lays out every table overlapping the edited rune span.
// Layout failures are logged by the engine and leave the failed
// table's previous rendering in place. Verbatim classification is
// rebuilt from the whole buffer, so an edit inside a fence never
// aligns fenced text; an edit that opens or closes a fence above a
// distant table takes effect there on the next AlignAll or on the
// table's own next edit.
func (al *Aligner) realign(q0, q1 int) {
	start := al.buf.LineAt(q0)
	end := al.buf.LineAt(q1) + 1
	al.engine.RealignRange(al.buf, block.Scan(al.buf), start, end)
}

// AlignAll lays out every table in the buffer. The first table that
// fails is reported after the rest have been processed.
func (al *Aligner) AlignAll() error {
	return al.engine.RealignRange(al.buf, block.Scan(al.buf), 0, al.buf.LineCount())
}

// AlignAt lays out the single table containing line.
func (al *Aligner) AlignAt(line int) error {
	return al.engine.AlignAt(al.buf, block.Scan(al.buf), line)
}

// Plan computes the layout for the table containing line without
// installing it.
func (al *Aligner) Plan(line int) (*table.Plan, error) {
	r, err := table.Locate(al.buf, block.Scan(al.buf), line)
	if err != nil {
		return nil, err
	}
	return al.engine.Plan(al.buf, r)
}

// Close detaches the Aligner from its buffer.
func (al *Aligner) Close() error {
	return al.buf.DelObserver(al)
}
