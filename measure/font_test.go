package measure

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/rjkroege/tablign/table"
	"github.com/rjkroege/tablign/tabligntest"
)

func TestFontStringWidth(t *testing.T) {
	m := NewFont(tabligntest.NewFont(10, 14))
	w, err := m.StringWidth("| a |")
	if err != nil {
		t.Fatalf("StringWidth failed: %v", err)
	}
	if w != 50 {
		t.Errorf("StringWidth = %d, want 50", w)
	}
}

func TestFontWithoutFont(t *testing.T) {
	m := NewFont(nil)
	if _, err := m.StringWidth("x"); !errors.Is(err, table.ErrNoMetrics) {
		t.Errorf("error = %v, want ErrNoMetrics", err)
	}
}

func TestSplitImage(t *testing.T) {
	tt := []struct {
		name string
		s    string
		pre  string
		ref  imageRef
		rest string
	}{
		{
			name: "no reference",
			s:    "plain cell text",
			pre:  "plain cell text",
		},
		{
			name: "reference mid-text",
			s:    "a ![x](p.png) b",
			pre:  "a ",
			ref:  imageRef{alt: "x", url: "p.png", src: "![x](p.png)"},
			rest: " b",
		},
		{
			name: "title after path",
			s:    `![x](p.png "slide")`,
			ref:  imageRef{alt: "x", url: "p.png", src: `![x](p.png "slide")`},
		},
		{
			name: "empty alt",
			s:    "x ![](i.png)",
			pre:  "x ",
			ref:  imageRef{alt: "", url: "i.png", src: "![](i.png)"},
		},
		{
			name: "unclosed alt",
			s:    "![unclosed(p",
			pre:  "![unclosed(p",
		},
		{
			name: "bracket without parens",
			s:    "![a] (x)",
			pre:  "![a] (x)",
		},
	}
	for _, tc := range tt {
		t.Run(tc.name, func(t *testing.T) {
			pre, ref, rest := splitImage(tc.s)
			if pre != tc.pre || rest != tc.rest {
				t.Errorf("splitImage(%q) = %q, _, %q; want %q, _, %q",
					tc.s, pre, rest, tc.pre, tc.rest)
			}
			if diff := cmp.Diff(tc.ref, ref, cmp.AllowUnexported(imageRef{})); diff != "" {
				t.Errorf("ref mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestFontImageWidth(t *testing.T) {
	dir := t.TempDir()
	createTestPNG(t, dir, "img.png", 20, 15)

	m := NewFont(tabligntest.NewFont(10, 14))
	m.SetImageCache(NewImageCache(8), dir)

	w, err := m.StringWidth("a ![pic](img.png) b")
	if err != nil {
		t.Fatalf("StringWidth failed: %v", err)
	}
	// "a " and " b" measure 20 each; the image contributes its own 20.
	if w != 60 {
		t.Errorf("StringWidth = %d, want 60", w)
	}
}

func TestFontImageMissing(t *testing.T) {
	m := NewFont(tabligntest.NewFont(10, 14))
	m.SetImageCache(NewImageCache(8), t.TempDir())

	// The reference text measures literally when the file is gone.
	w, err := m.StringWidth("![gone](none.png)")
	if err != nil {
		t.Fatalf("StringWidth failed: %v", err)
	}
	if w != 170 {
		t.Errorf("StringWidth = %d, want 170", w)
	}
}

func TestFontImageScaled(t *testing.T) {
	dir := t.TempDir()
	createTestPNG(t, dir, "img.png", 20, 15)

	cache := NewImageCache(8)
	cache.SetDisplayWidth(8)
	m := NewFont(tabligntest.NewFont(10, 14))
	m.SetImageCache(cache, dir)

	w, err := m.StringWidth("![pic](img.png)")
	if err != nil {
		t.Fatalf("StringWidth failed: %v", err)
	}
	if w != 8 {
		t.Errorf("StringWidth = %d, want 8", w)
	}
}
