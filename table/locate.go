package table

import (
	"fmt"
	"strings"
)

// isRow reports whether document line i looks like a table row:
// optional leading blanks, then the column separator, and not inside a
// verbatim region.
func isRow(doc Document, cls Classifier, i int) bool {
	if i < 0 || i >= doc.LineCount() {
		return false
	}
	if cls != nil && cls.Verbatim(i) {
		return false
	}
	return strings.HasPrefix(strings.TrimLeft(doc.Line(i), " \t"), "|")
}

// Locate returns the maximal run of contiguous table rows containing
// line. It fails with ErrNotOnTable when line itself is not a table
// row.
func Locate(doc Document, cls Classifier, line int) (LineRange, error) {
	if !isRow(doc, cls, line) {
		return LineRange{}, fmt.Errorf("line %d: %w", line, ErrNotOnTable)
	}
	start := line
	for isRow(doc, cls, start-1) {
		start--
	}
	end := line + 1
	for isRow(doc, cls, end) {
		end++
	}
	return LineRange{start, end}, nil
}
