package table

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func scan(t *testing.T, d doc) ([]Row, int) {
	t.Helper()
	rows, ncols, err := scanTable(d, LineRange{0, d.LineCount()})
	if err != nil {
		t.Fatalf("scanTable failed: %v", err)
	}
	return rows, ncols
}

func TestInferAlignments(t *testing.T) {
	tt := []struct {
		name    string
		d       doc
		dialect Dialect
		want    []Alignment
	}{
		{
			name: "colon markers",
			d: doc{
				"| a | b | c | d |",
				"|:---|---:|---|:---:|",
			},
			dialect: DialectMarkdown,
			want:    []Alignment{AlignLeft, AlignRight, AlignLeft, AlignLeft},
		},
		{
			name: "later separator overrides",
			d: doc{
				"|:---:|---:|",
				"| a | b |",
				"|---:|:---|",
			},
			dialect: DialectMarkdown,
			want:    []Alignment{AlignRight, AlignLeft},
		},
		{
			name:    "markers per junction segment",
			d:       doc{"|:--+--:|"},
			dialect: DialectMarkdown,
			want:    []Alignment{AlignLeft, AlignRight},
		},
		{
			name:    "no separator row defaults left",
			d:       doc{"|  42 |"},
			dialect: DialectMarkdown,
			want:    []Alignment{AlignLeft},
		},
		{
			name:    "single leading space leans left",
			d:       doc{"| x |"},
			dialect: DialectOrg,
			want:    []Alignment{AlignLeft},
		},
		{
			name: "content against closing separator leans right",
			d: doc{
				"|  42 |",
				"|  7 |",
			},
			dialect: DialectOrg,
			want:    []Alignment{AlignRight},
		},
		{
			name: "nonzero tie resolves right",
			d: doc{
				"|  42 |",
				"| x |",
			},
			dialect: DialectOrg,
			want:    []Alignment{AlignRight},
		},
		{
			name: "majority wins",
			d: doc{
				"| x |",
				"| y |",
				"|  9 |",
			},
			dialect: DialectOrg,
			want:    []Alignment{AlignLeft},
		},
		{
			name:    "empty cells cast no vote",
			d:       doc{"|  |"},
			dialect: DialectOrg,
			want:    []Alignment{AlignLeft},
		},
		{
			name:    "unpadded content with trailing space leans right",
			d:       doc{"|x |"},
			dialect: DialectOrg,
			want:    []Alignment{AlignRight},
		},
		{
			name:    "wide padding both sides leans left",
			d:       doc{"|   x   |"},
			dialect: DialectOrg,
			want:    []Alignment{AlignLeft},
		},
		{
			name: "markers ignored under majority vote",
			d: doc{
				"| x |",
				"|---:|",
			},
			dialect: DialectOrg,
			want:    []Alignment{AlignLeft},
		},
		{
			name: "columns vote independently",
			d: doc{
				"| a |  1 |",
				"| b |  2 |",
			},
			dialect: DialectOrg,
			want:    []Alignment{AlignLeft, AlignRight},
		},
	}
	for _, tc := range tt {
		t.Run(tc.name, func(t *testing.T) {
			rows, ncols := scan(t, tc.d)
			got := inferAlignments(rows, ncols, tc.dialect)
			if diff := cmp.Diff(tc.want, got); diff != "" {
				t.Errorf("alignments mismatch (-want +got):\n%s", diff)
			}
		})
	}
}
