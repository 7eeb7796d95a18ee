package utils

import (
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
)

func TestCellWidthIgnoresStyling(t *testing.T) {
	defer func(noColor bool) { color.NoColor = noColor }(color.NoColor)
	color.NoColor = false

	cell := NewCell("link", color.FgCyan).Append(" -> ", color.FgRed).Append("gone", color.FgRed)

	assert.Equal(t, "link -> gone", cell.Plain())
	assert.Equal(t, 12, cell.Width())
	assert.NotEqual(t, cell.Plain(), cell.String())
	assert.Equal(t, "link -> gone", Decolorise(cell.String()))
}

func TestCellWidthWideRunes(t *testing.T) {
	cell := NewCell("日本語", color.FgBlue).Append("/")

	assert.Equal(t, 7, cell.Width())
}

func TestCellAppendDoesNotMutate(t *testing.T) {
	base := NewCell("b", color.FgBlue)
	withSlash := base.Append("/")
	withAt := base.Append("@")

	assert.Equal(t, "b", base.Plain())
	assert.Equal(t, "b/", withSlash.Plain())
	assert.Equal(t, "b@", withAt.Plain())
	assert.Len(t, base.Spans(), 1)
}

func TestCellConcat(t *testing.T) {
	cell := NewCell("2024-01-02", color.FgMagenta).Concat(NewCell(" ").Append("10:30", color.FgHiMagenta))

	assert.Equal(t, "2024-01-02 10:30", cell.Plain())
	assert.Len(t, cell.Spans(), 3)
	assert.Equal(t, []color.Attribute{color.FgHiMagenta}, cell.Spans()[2].Attributes)
}

func TestCellPadding(t *testing.T) {
	type scenario struct {
		cell  Cell
		width int
		left  string
		right string
	}

	scenarios := []scenario{
		{NewCell("100"), 5, "  100", "100  "},
		{NewCell("10485760"), 3, "10485760", "10485760"},
		{Cell{}, 2, "  ", "  "},
	}

	for _, s := range scenarios {
		assert.Equal(t, s.left, s.cell.PadLeft(s.width))
		assert.Equal(t, s.right, s.cell.PadRight(s.width))
	}
}
