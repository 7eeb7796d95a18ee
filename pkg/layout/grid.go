package layout

import (
	"strings"

	"github.com/jesseduffield/lazyls/pkg/config"
	"github.com/jesseduffield/lazyls/pkg/utils"
	"github.com/samber/lo"
)

// Gutter is the number of spaces between two grid columns
const Gutter = 2

// Grid is a set of cells packed into as many columns as fit in a given width
type Grid struct {
	cells     []utils.Cell
	direction config.Direction
	width     int

	columns int
	rows    int
	widths  []int
}

// NewGrid packs the cells into the densest arrangement whose lines fit
// within width. A single column is used when nothing denser fits.
func NewGrid(cells []utils.Cell, direction config.Direction, width int) *Grid {
	grid := &Grid{cells: cells, direction: direction, width: width}
	grid.fit()
	return grid
}

// Columns is the number of columns chosen
func (g *Grid) Columns() int {
	return g.columns
}

// Rows is the number of rows chosen
func (g *Grid) Rows() int {
	return g.rows
}

// ColumnWidths is the display width of each column, gutter excluded
func (g *Grid) ColumnWidths() []int {
	return g.widths
}

func (g *Grid) fit() {
	n := len(g.cells)
	if n == 0 {
		return
	}

	cellWidths := lo.Map(g.cells, func(cell utils.Cell, _ int) int {
		return cell.Width()
	})

	// no grid can have more columns than cells, or more than fit if every cell were one wide
	maxColumns := min(n, (g.width+Gutter)/(1+Gutter))
	for columns := maxColumns; columns > 1; columns-- {
		rows := ceilDiv(n, columns)
		// a count that leaves trailing columns empty lays out the same as a smaller count
		if g.columnCount(n, rows, columns) != columns {
			continue
		}
		widths := g.columnWidths(cellWidths, rows, columns)
		if sum(widths)+Gutter*(columns-1) <= g.width {
			g.columns, g.rows, g.widths = columns, rows, widths
			return
		}
	}

	g.columns, g.rows = 1, n
	g.widths = []int{lo.Max(cellWidths)}
}

// columnCount is how many columns actually receive a cell
func (g *Grid) columnCount(n, rows, columns int) int {
	if g.direction == config.DirectionAcross {
		if n < columns {
			return n
		}
		return columns
	}
	return ceilDiv(n, rows)
}

func (g *Grid) columnWidths(cellWidths []int, rows, columns int) []int {
	widths := make([]int, columns)
	for i, width := range cellWidths {
		_, column := g.position(i, rows, columns)
		widths[column] = utils.Max(widths[column], width)
	}
	return widths
}

// position returns the row and column of the i'th cell
func (g *Grid) position(i, rows, columns int) (int, int) {
	if g.direction == config.DirectionAcross {
		return i / columns, i % columns
	}
	return i % rows, i / rows
}

// Lines renders the grid one line per row. The last cell of each line is
// not padded.
func (g *Grid) Lines() []string {
	if len(g.cells) == 0 {
		return []string{}
	}

	table := make([][]*utils.Cell, g.rows)
	for row := range table {
		table[row] = make([]*utils.Cell, g.columns)
	}
	for i := range g.cells {
		row, column := g.position(i, g.rows, g.columns)
		table[row][column] = &g.cells[i]
	}

	lines := make([]string, g.rows)
	for row, cells := range table {
		last := lastFilled(cells)
		var builder strings.Builder
		for column := 0; column <= last; column++ {
			cell := cells[column]
			if column == last {
				builder.WriteString(cell.String())
				break
			}
			padded := strings.Repeat(" ", g.widths[column])
			if cell != nil {
				padded = cell.PadRight(g.widths[column])
			}
			builder.WriteString(padded + strings.Repeat(" ", Gutter))
		}
		lines[row] = builder.String()
	}
	return lines
}

// Render returns the grid as a single string with a newline after each row
func (g *Grid) Render() string {
	lines := g.Lines()
	if len(lines) == 0 {
		return ""
	}
	return strings.Join(lines, "\n") + "\n"
}

func lastFilled(cells []*utils.Cell) int {
	for i := len(cells) - 1; i >= 0; i-- {
		if cells[i] != nil {
			return i
		}
	}
	return -1
}

func sum(values []int) int {
	return lo.Reduce(values, func(total int, value int, _ int) int {
		return total + value
	}, 0)
}

func ceilDiv(a, b int) int {
	return (a + b - 1) / b
}
