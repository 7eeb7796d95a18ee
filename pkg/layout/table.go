package layout

import (
	"strings"

	"github.com/go-errors/errors"
	"github.com/jesseduffield/lazyls/pkg/utils"
)

// Alignment is how a cell sits within its column
type Alignment int

const (
	AlignLeft Alignment = iota
	AlignRight
)

const (
	branchConnector = "├── "
	lastConnector   = "└── "
)

// Table lays rows of cells out in aligned columns separated by a single
// space. Every column is as wide as its widest cell; the last column is
// never padded.
type Table struct {
	alignments []Alignment
	rows       [][]utils.Cell
}

// NewTable returns an empty table with one column per alignment
func NewTable(alignments ...Alignment) *Table {
	return &Table{alignments: alignments}
}

// AddRow appends a row. It must have exactly one cell per column.
func (t *Table) AddRow(cells ...utils.Cell) error {
	if len(cells) != len(t.alignments) {
		return errors.New("Each item must return the same number of strings to display")
	}
	t.rows = append(t.rows, cells)
	return nil
}

// AddAttributeRows appends one row per name, blank except for the last
// column which holds the name behind a tree connector. The rows keep the
// order of names.
func (t *Table) AddAttributeRows(names []string) {
	for i, name := range names {
		connector := branchConnector
		if i == len(names)-1 {
			connector = lastConnector
		}
		row := make([]utils.Cell, len(t.alignments))
		row[len(row)-1] = utils.NewCell(connector + name)
		t.rows = append(t.rows, row)
	}
}

func (t *Table) getPadWidths() []int {
	if len(t.alignments) <= 1 {
		return []int{}
	}
	padWidths := make([]int, len(t.alignments)-1)
	for i := range padWidths {
		for _, row := range t.rows {
			padWidths[i] = utils.Max(padWidths[i], row[i].Width())
		}
	}
	return padWidths
}

// Lines renders each row as a line
func (t *Table) Lines() []string {
	padWidths := t.getPadWidths()
	lines := make([]string, len(t.rows))
	for i, row := range t.rows {
		if len(row) == 0 {
			continue
		}
		var builder strings.Builder
		for j, padWidth := range padWidths {
			if t.alignments[j] == AlignRight {
				builder.WriteString(row[j].PadLeft(padWidth))
			} else {
				builder.WriteString(row[j].PadRight(padWidth))
			}
			builder.WriteString(" ")
		}
		builder.WriteString(row[len(padWidths)].String())
		lines[i] = builder.String()
	}
	return lines
}

// Render returns the table as a single string with a newline after each row
func (t *Table) Render() string {
	if len(t.rows) == 0 {
		return ""
	}
	return strings.Join(t.Lines(), "\n") + "\n"
}
