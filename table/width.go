package table

import (
	"fmt"

	"github.com/rjkroege/tablign/util"
)

// measures memoizes Metrics calls for the duration of one layout
// pass: each distinct span is measured at most once. The engine keeps
// no measurement state across passes.
type measures struct {
	m     Metrics
	cache map[string]int
}

func newMeasures(m Metrics) *measures {
	return &measures{m: m, cache: make(map[string]int)}
}

func (ms *measures) width(s string) (int, error) {
	if w, ok := ms.cache[s]; ok {
		return w, nil
	}
	if ms.m == nil {
		return 0, ErrNoMetrics
	}
	w, err := ms.m.StringWidth(s)
	if err != nil {
		return 0, err
	}
	ms.cache[s] = w
	return w, nil
}

// columnWidths computes each column's pixel width: the maximum
// measured content width over the column's data cells, plus pad.
// A column that no data row reaches keeps width 0. Separator rows
// never contribute.
func columnWidths(rows []Row, ncols int, ms *measures, pad int) ([]int, error) {
	widths := make([]int, ncols)
	reached := make([]bool, ncols)
	for i := range rows {
		r := &rows[i]
		if r.Kind != DataRow {
			continue
		}
		for j := range r.Cells {
			w, err := ms.width(r.Content(j))
			if err != nil {
				return nil, fmt.Errorf("line %d cell %d: %w", r.Line, j, err)
			}
			reached[j] = true
			widths[j] = util.Max(widths[j], w)
		}
	}
	for j := range widths {
		if reached[j] {
			widths[j] += pad
		}
	}
	return widths, nil
}
