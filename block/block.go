// Package block classifies document lines that the table locator must
// ignore: fenced code blocks and indented code, where table-looking
// text is verbatim content rather than a table.
package block

import "strings"

// Document is the minimal read-only view needed to scan a document.
// text.Buffer implements it.
type Document interface {
	LineCount() int
	Line(i int) string
}

// Index records which lines of a document are verbatim. It answers
// queries for the document state it was built from; rebuild after the
// document changes.
type Index struct {
	verbatim []bool
}

// Scan walks doc once and builds the verbatim index. A fence delimiter
// line opens a fenced region and the next delimiter closes it; both
// delimiter lines and everything between them are verbatim. An
// unclosed fence runs to the end of the document. Outside fences,
// indented code lines are verbatim unless their first non-blank rune
// is '|': indented tables are still tables.
func Scan(doc Document) *Index {
	n := doc.LineCount()
	ix := &Index{verbatim: make([]bool, n)}
	inFence := false
	for i := 0; i < n; i++ {
		line := doc.Line(i)
		if isFenceDelimiter(line) {
			inFence = !inFence
			ix.verbatim[i] = true
			continue
		}
		if inFence {
			ix.verbatim[i] = true
			continue
		}
		if isIndentedCodeLine(line) && !startsTableRow(line) {
			ix.verbatim[i] = true
		}
	}
	return ix
}

// Verbatim reports whether line i sits inside a verbatim region.
// Out-of-range lines are not verbatim.
func (ix *Index) Verbatim(i int) bool {
	if i < 0 || i >= len(ix.verbatim) {
		return false
	}
	return ix.verbatim[i]
}

// isFenceDelimiter reports whether line is a code fence delimiter: up
// to three spaces of indent, then a run of at least three backticks or
// tildes.
func isFenceDelimiter(line string) bool {
	i := 0
	for i < len(line) && i < 3 && line[i] == ' ' {
		i++
	}
	if i >= len(line) {
		return false
	}
	c := line[i]
	if c != '`' && c != '~' {
		return false
	}
	n := 0
	for i < len(line) && line[i] == c {
		n++
		i++
	}
	return n >= 3
}

// isIndentedCodeLine reports whether line opens with the four spaces
// (or a tab) of indented code.
func isIndentedCodeLine(line string) bool {
	if line == "" {
		return false
	}
	return line[0] == '\t' || strings.HasPrefix(line, "    ")
}

func startsTableRow(line string) bool {
	return strings.HasPrefix(strings.TrimLeft(line, " \t"), "|")
}
