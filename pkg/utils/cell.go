package utils

import (
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-runewidth"
)

// Span is a run of text sharing one set of color attributes
type Span struct {
	Text       string
	Attributes []color.Attribute
}

// Cell is a piece of display text kept apart from its styling, so that widths
// are always measured on what the terminal actually shows. A Cell is never
// mutated: Append returns a new one.
type Cell struct {
	spans []Span
}

// NewCell returns a cell holding a single span
func NewCell(text string, attributes ...color.Attribute) Cell {
	return Cell{}.Append(text, attributes...)
}

// Append returns a copy of the cell with another span on the end
func (c Cell) Append(text string, attributes ...color.Attribute) Cell {
	spans := make([]Span, len(c.spans), len(c.spans)+1)
	copy(spans, c.spans)
	spans = append(spans, Span{Text: text, Attributes: attributes})
	return Cell{spans: spans}
}

// Concat returns a copy of the cell followed by all of other's spans
func (c Cell) Concat(other Cell) Cell {
	spans := make([]Span, 0, len(c.spans)+len(other.spans))
	spans = append(spans, c.spans...)
	spans = append(spans, other.spans...)
	return Cell{spans: spans}
}

// Spans returns the cell's spans in display order
func (c Cell) Spans() []Span {
	return c.spans
}

// Plain returns the cell's text without any styling
func (c Cell) Plain() string {
	var builder strings.Builder
	for _, span := range c.spans {
		builder.WriteString(span.Text)
	}
	return builder.String()
}

// Width is the number of terminal columns the cell occupies
func (c Cell) Width() int {
	return runewidth.StringWidth(c.Plain())
}

// String renders the cell with its color attributes applied
func (c Cell) String() string {
	var builder strings.Builder
	for _, span := range c.spans {
		builder.WriteString(MultiColoredString(span.Text, span.Attributes...))
	}
	return builder.String()
}

// PadRight renders the cell left-aligned within the given width
func (c Cell) PadRight(width int) string {
	return WithPadding(c.String(), width)
}

// PadLeft renders the cell right-aligned within the given width
func (c Cell) PadLeft(width int) string {
	return WithLeftPadding(c.String(), width)
}
