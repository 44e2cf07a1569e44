// Package measure provides width metrics for the table layout
// engine: real display fonts, with optional inline image support, and
// a fixed-cell fallback for environments without a display.
package measure

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/rjkroege/tablign/draw"
	"github.com/rjkroege/tablign/table"
)

// Font measures spans against a display font. It satisfies
// table.Metrics. With an image cache attached, inline image
// references measure at the width of the loaded image rather than
// their source text.
type Font struct {
	font   draw.Font
	images *ImageCache
	base   string
}

func NewFont(f draw.Font) *Font {
	return &Font{font: f}
}

// SetImageCache turns on image measurement. Relative reference paths
// resolve against basePath.
func (m *Font) SetImageCache(c *ImageCache, basePath string) {
	m.images = c
	m.base = basePath
}

func (m *Font) StringWidth(s string) (int, error) {
	if m.font == nil {
		return 0, fmt.Errorf("measuring %q: %w", s, table.ErrNoMetrics)
	}
	if m.images == nil {
		return m.font.StringWidth(s), nil
	}
	total := 0
	rest := s
	for {
		pre, ref, tail := splitImage(rest)
		total += m.font.StringWidth(pre)
		if ref.src == "" {
			return total, nil
		}
		total += m.imageWidth(ref)
		rest = tail
	}
}

func (m *Font) imageWidth(ref imageRef) int {
	path := ref.url
	if m.base != "" && !filepath.IsAbs(path) {
		path = filepath.Join(m.base, path)
	}
	ci, err := m.images.Load(path)
	if err != nil {
		// An unloadable image renders as its literal source text.
		return m.font.StringWidth(ref.src)
	}
	return ci.Width
}

// imageRef is one inline image reference. src is the full source
// text, kept for fallback measurement.
type imageRef struct {
	alt, url, src string
}

// splitImage splits s at its first image reference of the form
// ![alt](path). pre holds the text before the reference and rest the
// text after it. When s has no complete reference, pre is all of s
// and ref.src is empty.
func splitImage(s string) (pre string, ref imageRef, rest string) {
	i := 0
	for i < len(s) {
		j := strings.Index(s[i:], "![")
		if j < 0 {
			break
		}
		j += i
		altEnd := strings.Index(s[j+2:], "]")
		if altEnd < 0 {
			break
		}
		closeBracket := j + 2 + altEnd
		if closeBracket+1 >= len(s) || s[closeBracket+1] != '(' {
			i = j + 2
			continue
		}
		urlEnd := strings.Index(s[closeBracket+2:], ")")
		if urlEnd < 0 {
			break
		}
		urlEnd += closeBracket + 2
		url := s[closeBracket+2 : urlEnd]
		if k := strings.IndexByte(url, ' '); k >= 0 {
			// An optional title follows the path.
			url = url[:k]
		}
		ref = imageRef{
			alt: s[j+2 : closeBracket],
			url: url,
			src: s[j : urlEnd+1],
		}
		return s[:j], ref, s[urlEnd+1:]
	}
	return s, imageRef{}, ""
}
