// Command tabdemo renders a document in a window and keeps its pipe
// tables visually aligned through the layout engine. The document
// text itself is never modified; only its rendering changes.
//
// Keys: q quits, d toggles the alignment dialect, s toggles the
// separator style, f toggles fancy rules. Arrow and page keys
// scroll.
package main

import (
	"flag"
	"fmt"
	"image"
	"log"
	"os"
	"path/filepath"

	"github.com/rjkroege/tablign"
	"github.com/rjkroege/tablign/draw"
	"github.com/rjkroege/tablign/measure"
	"github.com/rjkroege/tablign/table"
	"github.com/rjkroege/tablign/text"
	"github.com/rjkroege/tablign/util"
)

var fontflag = flag.String("f", "", "Display font")
var winsize = flag.String("W", "1024x768", "Window Size (WidthxHeight)")
var dialectflag = flag.String("dialect", "markdown", "Alignment dialect: markdown or org")
var sepflag = flag.String("sep", "multi", "Separator row style: multi or single")
var padflag = flag.Int("pad", table.DefaultPad, "Column padding in pixels")
var spaceflag = flag.Int("space", 0, "Space unit in pixels; 0 takes the font's space width")
var fancyflag = flag.Bool("fancy", false, "Draw separator rows as rules")

const defaultFont = "/lib/font/bit/lucsans/euro.8.font"

const margin = 8

const sample = `Quarterly throughput, stored exactly as typed:

| service | p50 | p99 |
|:--- | ---:| ---:|
| ingest | 12 | 340 |
| compactor | 7 | 1202 |
| 索引 | 44 | 90 |

Indented tables align too:

  | a | b |
  | a longer cell | x |

Fenced content never moves:

` + "```" + `
| this | stays | put |
` + "```" + `

Escaped bars stay inside their cells:

| name | note |
| pipe | a \| b |
| empty | |
`

func main() {
	flag.Parse()
	draw.Main(run)
}

func run(dev *draw.Device) {
	contents := sample
	base := ""
	if flag.NArg() > 0 {
		b, err := os.ReadFile(flag.Arg(0))
		if err != nil {
			log.Fatalf("can't read %s: %v", flag.Arg(0), err)
		}
		contents = string(b)
		base = filepath.Dir(flag.Arg(0))
	}

	display, err := dev.NewDisplay(nil, *fontflag, "tabdemo", *winsize)
	if err != nil {
		log.Fatalf("can't open display: %v", err)
	}
	if err := display.Attach(draw.Refnone); err != nil {
		log.Fatalf("can't attach to window: %v", err)
	}

	fontname := *fontflag
	if fontname == "" {
		fontname = os.Getenv("font")
	}
	if fontname == "" {
		fontname = defaultFont
	}
	font, err := display.OpenFont(fontname)
	if err != nil {
		log.Fatalf("can't open font %s: %v", fontname, err)
	}

	space := *spaceflag
	if space <= 0 {
		space = font.StringWidth(" ")
	}

	screen := display.ScreenImage()
	metrics := measure.NewFont(font)
	cache := measure.NewImageCache(32)
	cache.SetDisplayWidth(screen.R().Dx() - 2*margin)
	metrics.SetImageCache(cache, base)

	st := &state{
		display: display,
		font:    font,
		buf:     text.NewBuffer(contents),
		applier: &planApplier{},
		metrics: metrics,
		dialect: parseDialect(*dialectflag),
		style:   parseSeparatorStyle(*sepflag),
		pad:     *padflag,
		space:   space,
		fancy:   *fancyflag,
	}
	st.reconfigure()
	st.render()

	kbd := display.InitKeyboard()
	mousectl := display.InitMouse()
	for {
		display.Flush()
		select {
		case <-mousectl.Resize:
			if err := display.Attach(draw.Refnone); err != nil {
				log.Fatalf("can't reattach to window: %v", err)
			}
			st.render()
		case <-mousectl.C:
			// Mouse input is ignored.
		case r := <-kbd.C:
			if !st.key(r) {
				return
			}
		}
	}
}

func parseDialect(s string) table.Dialect {
	switch s {
	case "markdown":
		return table.DialectMarkdown
	case "org":
		return table.DialectOrg
	}
	log.Fatalf("unknown dialect %q", s)
	return 0
}

func parseSeparatorStyle(s string) table.SeparatorStyle {
	switch s {
	case "multi":
		return table.SeparatorMulti
	case "single":
		return table.SeparatorSingle
	}
	log.Fatalf("unknown separator style %q", s)
	return 0
}

// planApplier implements table.Applier by retaining the latest plan
// for each table; the renderer reads directives back from it.
type planApplier struct {
	plans []*table.Plan
}

func (a *planApplier) Clear(r table.LineRange) {
	kept := a.plans[:0]
	for _, p := range a.plans {
		if !p.Range.Overlaps(r) {
			kept = append(kept, p)
		}
	}
	a.plans = kept
}

func (a *planApplier) Apply(p *table.Plan) {
	a.plans = append(a.plans, p)
}

func (a *planApplier) reset() {
	a.plans = nil
}

// planAt returns the plan covering line, or nil.
func (a *planApplier) planAt(line int) *table.Plan {
	for _, p := range a.plans {
		if line >= p.Range.Start && line < p.Range.End {
			return p
		}
	}
	return nil
}

// state is the demo's display state.
type state struct {
	display draw.Display
	font    draw.Font
	buf     *text.Buffer
	applier *planApplier
	aligner *tablign.Aligner
	metrics *measure.Font

	top     int // first visible line
	dialect table.Dialect
	style   table.SeparatorStyle
	pad     int
	space   int
	fancy   bool
}

// reconfigure rebuilds the aligner with the current settings and lays
// out every table afresh. Engine configuration is fixed at
// construction, so a toggle means a new engine.
func (st *state) reconfigure() {
	if st.aligner != nil {
		st.aligner.Close()
	}
	st.applier.reset()
	st.aligner = tablign.NewAligner(st.buf, st.metrics, st.applier,
		table.WithDialect(st.dialect),
		table.WithSeparatorStyle(st.style),
		table.WithPad(st.pad),
		table.WithSpaceWidth(st.space),
		table.WithFancyRules(st.fancy))
	if err := st.aligner.AlignAll(); err != nil {
		log.Printf("tabdemo: %v", err)
	}
}

func (st *state) key(r rune) bool {
	switch r {
	case 'q':
		return false
	case 'd':
		if st.dialect == table.DialectMarkdown {
			st.dialect = table.DialectOrg
		} else {
			st.dialect = table.DialectMarkdown
		}
		st.reconfigure()
		st.render()
	case 's':
		if st.style == table.SeparatorMulti {
			st.style = table.SeparatorSingle
		} else {
			st.style = table.SeparatorMulti
		}
		st.reconfigure()
		st.render()
	case 'f':
		st.fancy = !st.fancy
		st.reconfigure()
		st.render()
	case draw.KeyUp:
		st.scroll(-1)
	case draw.KeyDown:
		st.scroll(1)
	case draw.KeyPageUp:
		st.scroll(-st.visibleLines())
	case draw.KeyPageDown:
		st.scroll(st.visibleLines())
	case draw.KeyHome:
		st.top = 0
		st.render()
	case draw.KeyEnd:
		st.top = st.buf.LineCount() - 1
		st.render()
	}
	return true
}

func (st *state) scroll(lines int) {
	top := util.Max(0, util.Min(st.top+lines, st.buf.LineCount()-1))
	if top != st.top {
		st.top = top
		st.render()
	}
}

func (st *state) visibleLines() int {
	screen := st.display.ScreenImage()
	n := (screen.R().Dy()-2*margin)/st.font.Height() - 1
	return util.Max(n, 1)
}

func (st *state) render() {
	screen := st.display.ScreenImage()
	screen.Draw(screen.R(), st.display.White(), nil, image.ZP)

	x0 := screen.R().Min.X + margin
	y := screen.R().Min.Y + margin
	y = st.drawString(x0, y, st.status())
	for line := st.top; line < st.buf.LineCount(); line++ {
		if y+st.font.Height() > screen.R().Max.Y-margin {
			break
		}
		if p := st.applier.planAt(line); p != nil {
			st.drawTableLine(x0, y, line, p)
		} else {
			st.drawString(x0, y, st.buf.Line(line))
		}
		y += st.font.Height()
	}
}

func (st *state) status() string {
	d := "markdown"
	if st.dialect == table.DialectOrg {
		d = "org"
	}
	s := "multi"
	if st.style == table.SeparatorSingle {
		s = "single"
	}
	return fmt.Sprintf("[q]uit [d]ialect=%s [s]ep=%s [f]ancy=%v", d, s, st.fancy)
}

// drawString draws s and returns the y coordinate below it.
func (st *state) drawString(x, y int, s string) int {
	screen := st.display.ScreenImage()
	screen.Bytes(image.Pt(x, y), st.display.Black(), image.ZP, st.font, []byte(s))
	return y + st.font.Height()
}

// drawTableLine renders one table row, honoring the plan's stretch
// directives. Natural text advances by its measured width; a
// directive span becomes blank space (or a rule) ending at the
// directive's target, measured from the row's content origin.
func (st *state) drawTableLine(x0, y, line int, p *table.Plan) {
	screen := st.display.ScreenImage()
	q := st.buf.LineStart(line)
	runes := []rune(st.buf.Line(line))
	ds := lineDirectives(p, q, q+len(runes))

	x := x0
	origin := -1
	i := 0
	di := 0
	for i < len(runes) {
		if di < len(ds) && q+i == ds[di].Q0 {
			d := ds[di]
			right := x
			if origin >= 0 {
				right = util.Max(right, origin+d.Target)
			}
			if st.fancy && d.Decoration && right > x {
				h := st.display.ScaleSize(1)
				mid := y + st.font.Height()/2
				screen.Draw(image.Rect(x, mid, right, mid+h), st.display.Black(), nil, image.ZP)
			}
			x = right
			i += d.Q1 - d.Q0
			di++
			continue
		}
		end := len(runes)
		if di < len(ds) && ds[di].Q0-q < end {
			end = ds[di].Q0 - q
		}
		seg := runes[i:end]
		if origin < 0 {
			if k := indexRune(seg, '|'); k >= 0 {
				s := string(seg[:k+1])
				screen.Bytes(image.Pt(x, y), st.display.Black(), image.ZP, st.font, []byte(s))
				x += st.font.StringWidth(s)
				// The row's content origin sits one space unit past
				// the opening separator.
				origin = x + p.SpaceWidth
				i += k + 1
				continue
			}
		}
		s := string(seg)
		screen.Bytes(image.Pt(x, y), st.display.Black(), image.ZP, st.font, []byte(s))
		x += st.font.StringWidth(s)
		i = end
	}
}

// lineDirectives returns the plan's directives for rune span [q0, q1)
// in document order. Directives never cross a line boundary.
func lineDirectives(p *table.Plan, q0, q1 int) []table.Directive {
	var ds []table.Directive
	for _, d := range p.Directives {
		if d.Q0 >= q0 && d.Q0 < q1 {
			ds = append(ds, d)
		}
	}
	return ds
}

func indexRune(r []rune, c rune) int {
	for i, x := range r {
		if x == c {
			return i
		}
	}
	return -1
}
