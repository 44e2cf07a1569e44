package table

// Engine defaults, tuned for mid-size UI fonts. Hosts with unusual
// fonts set their own values through the options.
const (
	DefaultPad        = 16
	DefaultSpaceWidth = 8
)

// An Option configures an Engine at construction.
type Option func(*Engine)

// WithDialect is an Option that selects the alignment-inference
// dialect.
func WithDialect(d Dialect) Option {
	return func(e *Engine) {
		e.dialect = d
	}
}

// WithSeparatorStyle is an Option that selects how separator rows are
// laid out.
func WithSeparatorStyle(s SeparatorStyle) Option {
	return func(e *Engine) {
		e.sepStyle = s
	}
}

// WithPad is an Option that sets the pixel padding added to each
// column's widest measured cell.
func WithPad(px int) Option {
	return func(e *Engine) {
		e.pad = px
	}
}

// WithSpaceWidth is an Option that sets the pixel width of the
// single-space unit between a column edge and the next column's
// content.
func WithSpaceWidth(px int) Option {
	return func(e *Engine) {
		e.spaceWidth = px
	}
}

// WithFancyRules is an Option that asks appliers to render separator
// spans as drawn rules instead of blanks. Purely cosmetic; the width
// and alignment math is unaffected.
func WithFancyRules(on bool) Option {
	return func(e *Engine) {
		e.fancyRules = on
	}
}
