package measure

import "github.com/mattn/go-runewidth"

// Runes measures spans by display cell count, at a fixed pixel width
// per cell. East Asian wide characters count two cells, so CJK table
// content lines up under monospace rendering. It satisfies
// table.Metrics and never fails.
type Runes struct {
	CellWidth int
}

func NewRunes(cellWidth int) Runes {
	return Runes{CellWidth: cellWidth}
}

func (r Runes) StringWidth(s string) (int, error) {
	return r.CellWidth * runewidth.StringWidth(s), nil
}
