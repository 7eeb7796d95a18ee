package presentation

import (
	"strings"

	"github.com/jesseduffield/lazyls/pkg/commands"
	"github.com/jesseduffield/lazyls/pkg/config"
	"github.com/jesseduffield/lazyls/pkg/layout"
	"github.com/jesseduffield/lazyls/pkg/utils"
	"github.com/samber/lo"
)

// Lister renders a group of entries with one of the layout strategies
type Lister struct {
	Renderer *Renderer
	// TerminalWidth is only asked for when there is a grid to lay out
	TerminalWidth func() (int, error)
}

// NewLister returns a lister around the given renderer
func NewLister(renderer *Renderer, terminalWidth func() (int, error)) *Lister {
	return &Lister{
		Renderer:      renderer,
		TerminalWidth: terminalWidth,
	}
}

// Render lays out the entries with the given strategy. The result ends in a
// newline unless it is empty.
func (l *Lister) Render(strategy config.Strategy, entries []Entry) (string, error) {
	switch strategy {
	case config.StrategyOneline:
		return l.renderOneline(entries)
	case config.StrategyLong:
		return l.renderLong(entries)
	default:
		return l.renderGrid(entries)
	}
}

func (l *Lister) renderOneline(entries []Entry) (string, error) {
	lines := lo.Map(entries, func(entry Entry, _ int) string {
		return l.Renderer.FileName(entry, true).String()
	})
	var builder strings.Builder
	if err := utils.WriteLines(&builder, lines); err != nil {
		return "", err
	}
	return builder.String(), nil
}

func (l *Lister) renderGrid(entries []Entry) (string, error) {
	if len(entries) == 0 {
		return "", nil
	}

	width, err := l.TerminalWidth()
	if err != nil {
		return "", commands.NewComplexError(commands.TerminalWidthUnavailable, "", err.Error())
	}
	l.Renderer.Log.Debugf("laying out %d entries in %d columns of terminal", len(entries), width)

	cells := lo.Map(entries, func(entry Entry, _ int) utils.Cell {
		return l.Renderer.FileName(entry, false)
	})

	return layout.NewGrid(cells, l.Renderer.Config.Direction, width).Render(), nil
}

// column is one column of the long listing
type column struct {
	alignment layout.Alignment
	render    func(entry Entry, metadata *commands.Metadata, attributes []string) utils.Cell
}

// columns returns the long listing's columns in display order. Columns
// switched off in the config are left out altogether.
func (l *Lister) columns() []column {
	r := l.Renderer
	c := r.Config
	columns := []column{}

	if c.Inode {
		columns = append(columns, column{layout.AlignRight, func(_ Entry, m *commands.Metadata, _ []string) utils.Cell {
			return r.Inode(m)
		}})
	}
	if !c.NoPermissions {
		columns = append(columns, column{layout.AlignLeft, func(_ Entry, m *commands.Metadata, attributes []string) utils.Cell {
			return r.Mode(m, len(attributes) > 0)
		}})
	}
	if c.Links {
		columns = append(columns, column{layout.AlignRight, func(_ Entry, m *commands.Metadata, _ []string) utils.Cell {
			return r.Links(m)
		}})
	}
	columns = append(columns, column{layout.AlignLeft, func(_ Entry, m *commands.Metadata, _ []string) utils.Cell {
		return r.User(m)
	}})
	if c.Group {
		columns = append(columns, column{layout.AlignLeft, func(_ Entry, m *commands.Metadata, _ []string) utils.Cell {
			return r.Group(m)
		}})
	}
	columns = append(columns,
		column{layout.AlignRight, func(_ Entry, m *commands.Metadata, _ []string) utils.Cell {
			return r.Size(m)
		}},
		column{layout.AlignLeft, func(_ Entry, m *commands.Metadata, _ []string) utils.Cell {
			return r.Time(m)
		}},
		column{layout.AlignLeft, func(entry Entry, _ *commands.Metadata, _ []string) utils.Cell {
			return r.FileName(entry, true)
		}},
	)

	return columns
}

// renderLong builds the table. A failure to read any entry's metadata fails
// the whole listing.
func (l *Lister) renderLong(entries []Entry) (string, error) {
	c := l.Renderer.Config
	columns := l.columns()
	table := layout.NewTable(lo.Map(columns, func(col column, _ int) layout.Alignment {
		return col.alignment
	})...)

	for _, entry := range entries {
		metadata, err := l.Renderer.Source.Metadata(entry.Path)
		if err != nil {
			return "", commands.WrapError(err)
		}

		attributes := []string{}
		if !c.NoPermissions || c.Extended {
			attributes = l.Renderer.Source.ListAttributes(entry.Path)
		}

		cells := lo.Map(columns, func(col column, _ int) utils.Cell {
			return col.render(entry, metadata, attributes)
		})
		if err := table.AddRow(cells...); err != nil {
			return "", err
		}

		if c.Extended {
			table.AddAttributeRows(attributes)
		}
	}

	return table.Render(), nil
}
