package table

// inferAlignments computes each column's alignment under the given
// dialect. Columns that no classifiable row covers are left-aligned.
func inferAlignments(rows []Row, ncols int, d Dialect) []Alignment {
	switch d {
	case DialectMarkdown:
		return markerAlignments(rows, ncols)
	case DialectOrg:
		return majorityAlignments(rows, ncols)
	}
	panic("unknown dialect")
}

// markerAlignments reads explicit colon markers from separator rows.
// A leading colon means left (this covers the centered marker too); a
// trailing colon alone means right; bare dashes mean left. A later
// separator row overrides an earlier one for the columns it covers.
func markerAlignments(rows []Row, ncols int) []Alignment {
	aligns := make([]Alignment, ncols)
	for i := range rows {
		r := &rows[i]
		if r.Kind != SeparatorRow {
			continue
		}
		col := 0
		for _, c := range r.Cells {
			for _, seg := range segments(r, c) {
				aligns[col] = markerAlignment(r.Text[seg.start:seg.end])
				col++
			}
		}
	}
	return aligns
}

func markerAlignment(seg []rune) Alignment {
	if len(seg) == 0 || seg[0] == ':' {
		return AlignLeft
	}
	if seg[len(seg)-1] == ':' {
		return AlignRight
	}
	return AlignLeft
}

// majorityAlignments gives every data cell a vote on its column's
// alignment, taken from how the content sits against the cell
// padding. Strict majority wins. A nonzero tie resolves to right;
// zero votes default to left.
func majorityAlignments(rows []Row, ncols int) []Alignment {
	left := make([]int, ncols)
	right := make([]int, ncols)
	for i := range rows {
		r := &rows[i]
		if r.Kind != DataRow {
			continue
		}
		for j := range r.Cells {
			a, ok := leaning(r.Text, r.Cells[j])
			if !ok {
				continue
			}
			if a == AlignLeft {
				left[j]++
			} else {
				right[j]++
			}
		}
	}
	aligns := make([]Alignment, ncols)
	for j := range aligns {
		if right[j] > 0 && right[j] >= left[j] {
			aligns[j] = AlignRight
		}
	}
	return aligns
}

// leaning classifies one data cell. A cell opening with exactly one
// space and then content carries the conventional left padding and
// leans left, with no further scanning. Otherwise content sitting
// within one space of the closing separator leans right. Anything
// else leans left. ok is false for cells with nothing to classify.
func leaning(text []rune, c Cell) (Alignment, bool) {
	if c.Empty() {
		return AlignLeft, false
	}
	raw := text[c.Start:c.End]
	lead := 0
	for lead < len(raw) && raw[lead] == ' ' {
		lead++
	}
	if lead == 1 {
		return AlignLeft, true
	}
	trail := 0
	for trail < len(raw) && raw[len(raw)-1-trail] == ' ' {
		trail++
	}
	if trail <= 1 {
		return AlignRight, true
	}
	return AlignLeft, true
}
