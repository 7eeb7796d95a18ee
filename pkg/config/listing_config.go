package config

import (
	"fmt"
	"strings"

	"github.com/gobwas/glob"
)

// TimeStyle is how timestamps are written in long listings
type TimeStyle int

const (
	TimeStyleDefault TimeStyle = iota
	TimeStyleISO
	TimeStyleRelative
)

var timeStyleNames = []string{"default", "iso", "relative"}

func (s TimeStyle) String() string {
	return timeStyleNames[s]
}

// ParseTimeStyle maps a style name to its TimeStyle, ignoring case
func ParseTimeStyle(name string) (TimeStyle, error) {
	index, err := parseName("time style", timeStyleNames, name)
	return TimeStyle(index), err
}

// TimeField picks which of an entry's timestamps is shown
type TimeField int

const (
	TimeFieldModified TimeField = iota
	TimeFieldAccessed
	TimeFieldChanged
	TimeFieldCreated
)

var timeFieldNames = []string{"modified", "accessed", "changed", "created"}

func (f TimeField) String() string {
	return timeFieldNames[f]
}

// ParseTimeField maps a field name to its TimeField, ignoring case
func ParseTimeField(name string) (TimeField, error) {
	index, err := parseName("time field", timeFieldNames, name)
	return TimeField(index), err
}

// Direction is the order in which the grid is filled
type Direction int

const (
	// DirectionDown fills each column before moving to the next one
	DirectionDown Direction = iota
	// DirectionAcross fills each row before moving to the next one
	DirectionAcross
)

var directionNames = []string{"down", "across"}

func (d Direction) String() string {
	return directionNames[d]
}

// ParseDirection maps a direction name to its Direction, ignoring case
func ParseDirection(name string) (Direction, error) {
	index, err := parseName("direction", directionNames, name)
	return Direction(index), err
}

func parseName(kind string, names []string, name string) (int, error) {
	lowered := strings.ToLower(strings.TrimSpace(name))
	for i, candidate := range names {
		if candidate == lowered {
			return i, nil
		}
	}
	return 0, fmt.Errorf("Unrecognized %s '%s'. Permitted values: %s", kind, name, strings.Join(names, ", "))
}

// Strategy is the way a group of entries is laid out
type Strategy int

const (
	StrategyGrid Strategy = iota
	StrategyLong
	StrategyOneline
)

func (s Strategy) String() string {
	switch s {
	case StrategyLong:
		return "long"
	case StrategyOneline:
		return "oneline"
	default:
		return "grid"
	}
}

const (
	// ShowAllNone hides entries starting with a dot
	ShowAllNone = 0
	// ShowAllHidden includes entries starting with a dot
	ShowAllHidden = 1
	// ShowAllDotEntries also includes the "." and ".." pseudo-entries
	ShowAllDotEntries = 2
)

// ListingConfig describes one run of the program. It is built once from the
// command line and the user config and is never changed afterwards.
type ListingConfig struct {
	Paths         []string
	ShowAll       int
	OnlyDirs      bool
	OnlyFiles     bool
	Group         bool
	Inode         bool
	Links         bool
	NoPermissions bool
	Bytes         bool
	Oneline       bool
	Long          bool
	Extended      bool
	TimeStyle     TimeStyle
	TimeField     TimeField
	Direction     Direction
	Ignore        []string
}

// NewListingConfig returns a listing config seeded from the user's listing defaults
func NewListingConfig(defaults ListingDefaults) (*ListingConfig, error) {
	timeStyle, err := ParseTimeStyle(defaults.TimeStyle)
	if err != nil {
		return nil, err
	}
	timeField, err := ParseTimeField(defaults.TimeField)
	if err != nil {
		return nil, err
	}
	direction, err := ParseDirection(defaults.Direction)
	if err != nil {
		return nil, err
	}

	return &ListingConfig{
		Paths:     []string{"."},
		TimeStyle: timeStyle,
		TimeField: timeField,
		Direction: direction,
		Ignore:    append([]string{}, defaults.Ignore...),
	}, nil
}

// Strategy picks the layout. One-per-line wins over long, long wins over the grid.
func (c *ListingConfig) Strategy() Strategy {
	if c.Oneline {
		return StrategyOneline
	}
	if c.Long {
		return StrategyLong
	}
	return StrategyGrid
}

// ShowHidden tells us whether entries starting with a dot are listed
func (c *ListingConfig) ShowHidden() bool {
	return c.ShowAll >= ShowAllHidden
}

// ShowDotEntries tells us whether "." and ".." are injected into directory listings
func (c *ListingConfig) ShowDotEntries() bool {
	return c.ShowAll >= ShowAllDotEntries
}

// OnlyDirectories is true when directories alone are asked for. Asking for
// both only-dirs and only-files cancels the two out.
func (c *ListingConfig) OnlyDirectories() bool {
	return c.OnlyDirs && !c.OnlyFiles
}

// OnlyRegularFiles is the counterpart of OnlyDirectories
func (c *ListingConfig) OnlyRegularFiles() bool {
	return c.OnlyFiles && !c.OnlyDirs
}

// IgnoreMatchers compiles the ignore patterns
func (c *ListingConfig) IgnoreMatchers() ([]glob.Glob, error) {
	return compileGlobs(c.Ignore)
}

// Validate checks the values that the type system can't
func (c *ListingConfig) Validate() error {
	if c.ShowAll < ShowAllNone || c.ShowAll > ShowAllDotEntries {
		return fmt.Errorf("Show-all level must be between %d and %d, got %d", ShowAllNone, ShowAllDotEntries, c.ShowAll)
	}
	if len(c.Paths) == 0 {
		return fmt.Errorf("At least one path must be given")
	}
	_, err := c.IgnoreMatchers()
	return err
}

func compileGlobs(patterns []string) ([]glob.Glob, error) {
	globs := make([]glob.Glob, 0, len(patterns))
	for _, pattern := range patterns {
		g, err := glob.Compile(pattern)
		if err != nil {
			return nil, fmt.Errorf("Invalid ignore pattern '%s': %v", pattern, err)
		}
		globs = append(globs, g)
	}
	return globs, nil
}
