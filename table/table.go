// Package table locates pipe-delimited tables in a document and
// computes pixel-accurate layout plans that align their columns
// without modifying the stored text.
//
// The engine measures cell content through a Metrics implementation,
// infers per-column alignment, and emits directives that render
// existing blank spans stretched to computed pixel targets. A display
// layer (the Applier) installs the directives as display-only
// annotations; the character stream itself never changes.
package table

import "errors"

// Layout errors. Wrapped errors carry position context; test with
// errors.Is.
var (
	// ErrNotOnTable reports that the queried line is not part of a
	// table.
	ErrNotOnTable = errors.New("line is not part of a table")

	// ErrMalformedCell reports a table row whose final cell has no
	// closing separator before the end of the line.
	ErrMalformedCell = errors.New("table cell is not terminated")

	// ErrNoMetrics reports that width measurement is unavailable,
	// typically because no rendering context exists.
	ErrNoMetrics = errors.New("no width metrics available")
)

// Document is the read-only view of text the engine works on.
// text.Buffer implements it.
type Document interface {
	// LineCount returns the number of lines in the document.
	LineCount() int

	// Line returns the content of line i without its trailing newline.
	Line(i int) string

	// LineStart returns the rune offset of the first character of
	// line i.
	LineStart(i int) int
}

// Metrics measures the rendered width of a text span in pixels.
// Implementations may fail when no rendering context is available;
// such failures abort the current table's layout.
type Metrics interface {
	StringWidth(s string) (int, error)
}

// A Classifier reports lines inside verbatim regions (fenced or
// indented code) where table-looking text must be ignored. block.Index
// implements it. A nil Classifier treats no line as verbatim.
type Classifier interface {
	Verbatim(line int) bool
}

// An Applier installs computed layout plans on a display. Directives
// are display-only; an Applier never modifies the document.
type Applier interface {
	// Clear drops any directives previously installed for r.
	Clear(r LineRange)

	// Apply installs the directives of a freshly computed plan. The
	// engine clears the plan's range first.
	Apply(p *Plan)
}

// LineRange is a half-open interval of line numbers [Start, End).
type LineRange struct {
	Start, End int
}

// Overlaps reports whether r and s share at least one line.
func (r LineRange) Overlaps(s LineRange) bool {
	return r.Start < s.End && s.Start < r.End
}

// Alignment is the horizontal alignment of a column.
type Alignment int

const (
	AlignLeft Alignment = iota
	AlignRight
)

func (a Alignment) String() string {
	if a == AlignRight {
		return "right"
	}
	return "left"
}

// Dialect selects how column alignment is inferred.
type Dialect int

const (
	// DialectMarkdown reads explicit colon markers from separator
	// rows.
	DialectMarkdown Dialect = iota

	// DialectOrg infers alignment from how each cell's content sits
	// against its padding, by majority vote over the column.
	DialectOrg
)

// SeparatorStyle selects how separator rows are laid out.
type SeparatorStyle int

const (
	// SeparatorMulti stretches each segment of a separator row to its
	// own column edge, preserving the visual column breaks.
	SeparatorMulti SeparatorStyle = iota

	// SeparatorSingle stretches a separator row as one unbroken span
	// across all columns.
	SeparatorSingle
)

// RowKind distinguishes data rows from separator rows.
type RowKind int

const (
	DataRow RowKind = iota
	SeparatorRow
)

// A Cell is one cell of a scanned row. Offsets are line-relative rune
// positions. [Start, End) spans the raw cell text between separators.
// [ContentStart, ContentEnd) excludes a single padding space on each
// side; where a side carries several spaces, one of the extras stays
// in the content span and counts as real content. An all-blank cell
// has an empty content span.
type Cell struct {
	Start, End               int
	ContentStart, ContentEnd int
}

// Empty reports whether the cell has no content.
func (c Cell) Empty() bool { return c.ContentStart == c.ContentEnd }

// A Row is one scanned table row.
type Row struct {
	Line  int // document line number
	Kind  RowKind
	Cells []Cell
	Text  []rune // the raw line
}

// Content returns the content text of cell i.
func (r *Row) Content(i int) string {
	c := r.Cells[i]
	return string(r.Text[c.ContentStart:c.ContentEnd])
}
