package table

import (
	"fmt"

	"github.com/rjkroege/tablign/util"
)

// A RowScanner steps through the rows of a located table, one line per
// row, in the manner of bufio.Scanner:
//
//	sc := NewRowScanner(doc, r)
//	for sc.Scan() {
//		row := sc.Row()
//		...
//	}
//	if err := sc.Err(); err != nil { ... }
//
// Scanning stops at the end of the range or at the first row that
// fails to parse. Each row is parsed from the beginning of its own
// line; the scanner cannot restart mid-row.
type RowScanner struct {
	doc  Document
	r    LineRange
	next int
	row  Row
	err  error
}

func NewRowScanner(doc Document, r LineRange) *RowScanner {
	return &RowScanner{doc: doc, r: r, next: r.Start}
}

// Scan advances to the next row. It returns false when the table is
// exhausted or a row fails to parse.
func (s *RowScanner) Scan() bool {
	if s.err != nil || s.next >= s.r.End {
		return false
	}
	row, err := scanRow(s.doc.Line(s.next), s.next)
	if err != nil {
		s.err = err
		return false
	}
	s.row = row
	s.next++
	return true
}

// Row returns the row read by the last successful call to Scan.
func (s *RowScanner) Row() Row { return s.row }

// Err returns the first error encountered while scanning.
func (s *RowScanner) Err() error { return s.err }

// scanRow splits one line into cells on unescaped separators.
func scanRow(line string, lineno int) (Row, error) {
	text := []rune(line)
	row := Row{Line: lineno, Text: text}

	i := 0
	for i < len(text) && (text[i] == ' ' || text[i] == '\t') {
		i++
	}
	if i >= len(text) || text[i] != '|' {
		return Row{}, fmt.Errorf("line %d: %w", lineno, ErrNotOnTable)
	}
	i++

	start := i
	for ; i < len(text); i++ {
		if text[i] == '|' && !escaped(text, i) {
			row.Cells = append(row.Cells, makeCell(text, start, i))
			start = i + 1
		}
	}
	// Text after the last separator. A terminal separator leaves
	// nothing, or blanks, behind: the discardable trailing empty cell.
	// Anything else means the final cell never closed.
	if !allBlank(text[start:]) {
		return Row{}, fmt.Errorf("line %d cell %d: %w", lineno, len(row.Cells), ErrMalformedCell)
	}
	if isSeparator(&row) {
		row.Kind = SeparatorRow
	}
	return row, nil
}

// makeCell computes the content span within the raw span [start, end).
// One space on each side is padding; when a side carries several, one
// of the extras stays with the content.
func makeCell(text []rune, start, end int) Cell {
	cs, ce := start, end
	for cs < ce && text[cs] == ' ' {
		cs++
	}
	for ce > cs && text[ce-1] == ' ' {
		ce--
	}
	if cs == ce {
		return Cell{Start: start, End: end, ContentStart: start, ContentEnd: start}
	}
	if cs-start > 1 {
		cs--
	}
	if end-ce > 1 {
		ce++
	}
	return Cell{Start: start, End: end, ContentStart: cs, ContentEnd: ce}
}

// escaped reports whether text[i] is preceded by an odd run of
// backslashes.
func escaped(text []rune, i int) bool {
	n := 0
	for j := i - 1; j >= 0 && text[j] == '\\'; j-- {
		n++
	}
	return n%2 == 1
}

func allBlank(text []rune) bool {
	for _, r := range text {
		if r != ' ' && r != '\t' {
			return false
		}
	}
	return true
}

// isSeparator reports whether every cell consists only of alignment
// markers: dashes, colons, junction pluses, with at least one dash.
// One nonconforming cell makes the whole row a data row.
func isSeparator(r *Row) bool {
	if len(r.Cells) == 0 {
		return false
	}
	for i := range r.Cells {
		if !markerCell(r.Content(i)) {
			return false
		}
	}
	return true
}

func markerCell(s string) bool {
	if s == "" {
		return false
	}
	dashes := 0
	for _, c := range s {
		switch c {
		case '-':
			dashes++
		case ':', '+':
		default:
			return false
		}
	}
	return dashes > 0
}

// A segment is a junction-delimited piece of a separator cell; a cell
// without '+' junctions is a single segment. Offsets are line-relative
// rune positions, including any edge colons.
type segment struct {
	start, end int
}

// segments splits separator cell c of row r on its '+' junctions.
func segments(r *Row, c Cell) []segment {
	var segs []segment
	start := c.ContentStart
	for i := c.ContentStart; i < c.ContentEnd; i++ {
		if r.Text[i] == '+' {
			segs = append(segs, segment{start, i})
			start = i + 1
		}
	}
	return append(segs, segment{start, c.ContentEnd})
}

// scanTable reads all rows of the table at r and computes the column
// count: the maximum cell count over the rows, counting separator
// cells one column per junction segment.
func scanTable(doc Document, r LineRange) ([]Row, int, error) {
	var rows []Row
	sc := NewRowScanner(doc, r)
	for sc.Scan() {
		rows = append(rows, sc.Row())
	}
	if err := sc.Err(); err != nil {
		return nil, 0, err
	}
	ncols := 0
	for i := range rows {
		n := 0
		for _, c := range rows[i].Cells {
			if rows[i].Kind == SeparatorRow {
				n += len(segments(&rows[i], c))
			} else {
				n++
			}
		}
		ncols = util.Max(ncols, n)
	}
	return rows, ncols, nil
}
