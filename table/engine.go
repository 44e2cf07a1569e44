package table

import (
	"log"

	"github.com/rjkroege/tablign/util"
)

// Engine computes table layouts and installs them through an Applier.
// Configuration is fixed at construction. Layout passes keep no state
// between invocations; everything is derived from the document each
// time, so an Engine may be re-invoked freely in sequence. It is not
// safe for concurrent use.
type Engine struct {
	metrics Metrics
	applier Applier

	dialect    Dialect
	sepStyle   SeparatorStyle
	pad        int
	spaceWidth int
	fancyRules bool
}

// New returns an Engine measuring through m and installing through a.
// The applier may be nil for an Engine used only via Plan.
func New(m Metrics, a Applier, opts ...Option) *Engine {
	e := &Engine{
		metrics:    m,
		applier:    a,
		dialect:    DialectMarkdown,
		sepStyle:   SeparatorMulti,
		pad:        DefaultPad,
		spaceWidth: DefaultSpaceWidth,
	}
	for _, o := range opts {
		o(e)
	}
	return e
}

// Plan computes the layout plan for the table spanning r without
// touching the applier.
func (e *Engine) Plan(doc Document, r LineRange) (*Plan, error) {
	rows, ncols, err := scanTable(doc, r)
	if err != nil {
		return nil, err
	}
	return buildPlan(doc, r, rows, ncols, newMeasures(e.metrics), e)
}

// AlignAt lays out the table containing line and installs the result,
// clearing the table's previous directives first. When layout fails
// nothing is cleared or installed: the table keeps whatever rendering
// state it had.
func (e *Engine) AlignAt(doc Document, cls Classifier, line int) error {
	r, err := Locate(doc, cls, line)
	if err != nil {
		return err
	}
	return e.align(doc, r)
}

// RealignRange lays out every table overlapping lines [start, end).
// Tables fail independently: one that cannot be laid out keeps its
// previous rendering state and the rest still align. The first
// failure is returned after the whole range has been processed.
func (e *Engine) RealignRange(doc Document, cls Classifier, start, end int) error {
	var first error
	start = util.Max(start, 0)
	end = util.Min(end, doc.LineCount())
	for i := start; i < end; {
		if !isRow(doc, cls, i) {
			i++
			continue
		}
		r, err := Locate(doc, cls, i)
		if err != nil {
			i++
			continue
		}
		if err := e.align(doc, r); err != nil {
			log.Printf("tablign: table at lines %d-%d not aligned: %v", r.Start, r.End, err)
			if first == nil {
				first = err
			}
		}
		i = r.End
	}
	return first
}

func (e *Engine) align(doc Document, r LineRange) error {
	p, err := e.Plan(doc, r)
	if err != nil {
		return err
	}
	e.applier.Clear(r)
	e.applier.Apply(p)
	return nil
}
