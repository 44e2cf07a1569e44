package table

import "fmt"

// A Directive instructs the display layer to render the document rune
// span [Q0, Q1) as blank space stretched so that its right edge lands
// Target pixels from the row's content origin. The content origin of
// a row sits one space width past its opening separator; targets are
// comparable across all rows of a table, which is what lines the
// columns up. Decoration marks separator-row material that an applier
// may render as a horizontal rule or full-height bar.
type Directive struct {
	Q0, Q1     int
	Target     int
	Decoration bool
}

// A Plan carries everything an Applier needs to lay out one table.
// Plans are deterministic: laying out the same text against the same
// metrics yields identical directives.
type Plan struct {
	Range      LineRange
	Widths     []int
	Aligns     []Alignment
	SepWidth   int // measured width of the separator glyph
	SpaceWidth int // configured width of the inter-column space unit
	FancyRules bool
	Directives []Directive
}

// buildPlan lays out scanned rows against the engine configuration.
// Directives come out in row order, left to right.
func buildPlan(doc Document, r LineRange, rows []Row, ncols int, ms *measures, e *Engine) (*Plan, error) {
	widths, err := columnWidths(rows, ncols, ms, e.pad)
	if err != nil {
		return nil, err
	}
	sepW, err := ms.width("|")
	if err != nil {
		return nil, err
	}
	p := &Plan{
		Range:      r,
		Widths:     widths,
		Aligns:     inferAlignments(rows, ncols, e.dialect),
		SepWidth:   sepW,
		SpaceWidth: e.spaceWidth,
		FancyRules: e.fancyRules,
	}

	// Right edge of every column. The separator glyph after column j
	// occupies [edges[j], edges[j]+SepWidth); one space unit follows
	// before the next column's content.
	edges := make([]int, ncols)
	x := 0
	for j, w := range widths {
		edges[j] = x + w
		x = edges[j] + sepW + e.spaceWidth
	}

	for i := range rows {
		row := &rows[i]
		q := doc.LineStart(row.Line)
		switch row.Kind {
		case DataRow:
			if err := p.dataDirectives(row, q, edges, ms); err != nil {
				return nil, err
			}
		case SeparatorRow:
			if err := p.separatorDirectives(row, q, edges, ms, e.sepStyle); err != nil {
				return nil, err
			}
		}
	}
	return p, nil
}

// dataDirectives emits the padding stretch for each cell of a data
// row. The padding on the side opposite the cell's alignment absorbs
// the stretch; the conventional single padding space on the content
// side renders naturally. A cell with no padding on the stretch side
// gets no directive.
func (p *Plan) dataDirectives(row *Row, q int, edges []int, ms *measures) error {
	for j, c := range row.Cells {
		offset := edges[j] - p.Widths[j]
		if c.Empty() {
			p.emptyCell(c, q, offset, p.Widths[j])
			continue
		}
		switch p.Aligns[j] {
		case AlignLeft:
			if c.ContentEnd < c.End {
				p.Directives = append(p.Directives, Directive{
					Q0:     q + c.ContentEnd,
					Q1:     q + c.End,
					Target: edges[j],
				})
			}
		case AlignRight:
			if c.Start < c.ContentStart {
				w, err := ms.width(row.Content(j))
				if err != nil {
					return fmt.Errorf("line %d cell %d: %w", row.Line, j, err)
				}
				// Whatever padding trails the content renders
				// naturally against the separator.
				target := edges[j] - w - p.SpaceWidth*(c.End-c.ContentEnd)
				p.Directives = append(p.Directives, Directive{
					Q0:     q + c.Start,
					Q1:     q + c.ContentStart,
					Target: target,
				})
			}
		}
	}
	return nil
}

// emptyCell splits an all-blank cell into two stretch halves so a
// caret can land mid-cell. A one-rune cell takes a single stretch;
// a zero-rune cell has nothing to stretch.
func (p *Plan) emptyCell(c Cell, q, offset, width int) {
	n := c.End - c.Start
	switch {
	case n >= 2:
		mid := c.Start + n/2
		p.Directives = append(p.Directives,
			Directive{Q0: q + c.Start, Q1: q + mid, Target: offset + width/2},
			Directive{Q0: q + mid, Q1: q + c.End, Target: offset + width})
	case n == 1:
		p.Directives = append(p.Directives,
			Directive{Q0: q + c.Start, Q1: q + c.End, Target: offset + width})
	}
}

// separatorDirectives lays out a separator row in the configured
// style.
func (p *Plan) separatorDirectives(row *Row, q int, edges []int, ms *measures, style SeparatorStyle) error {
	if len(row.Cells) == 0 || len(edges) == 0 {
		return nil
	}
	switch style {
	case SeparatorSingle:
		// One unbroken span between the row's outer separators,
		// reaching the last column's edge. Inner markers and
		// junctions disappear into the stretch; the closing
		// separator glyph survives as the boundary marker.
		first, last := row.Cells[0], row.Cells[len(row.Cells)-1]
		if first.Start < last.End {
			p.Directives = append(p.Directives, Directive{
				Q0:         q + first.Start,
				Q1:         q + last.End,
				Target:     edges[len(edges)-1],
				Decoration: true,
			})
		}
		return nil
	case SeparatorMulti:
		return p.segmentDirectives(row, q, edges, ms)
	}
	panic("unknown separator style")
}

// segmentDirectives stretches each junction segment of a separator
// row to its own column edge, keeping the visual column breaks. Edge
// colons stay outside the stretched span so the alignment markers
// remain visible against the separator.
func (p *Plan) segmentDirectives(row *Row, q int, edges []int, ms *measures) error {
	col := 0
	for _, c := range row.Cells {
		for _, seg := range segments(row, c) {
			s, e := seg.start, seg.end
			target := edges[col]
			if e > s && row.Text[s] == ':' {
				s++
			}
			if e > s && row.Text[e-1] == ':' {
				e--
				w, err := ms.width(":")
				if err != nil {
					return fmt.Errorf("line %d: %w", row.Line, err)
				}
				target -= w
			}
			if seg.end == c.ContentEnd {
				// The cell's trailing padding renders naturally
				// before the separator.
				target -= p.SpaceWidth * (c.End - c.ContentEnd)
			}
			if e > s {
				p.Directives = append(p.Directives, Directive{
					Q0:         q + s,
					Q1:         q + e,
					Target:     target,
					Decoration: true,
				})
			}
			col++
		}
	}
	return nil
}
