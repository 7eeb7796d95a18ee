package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTimeStyle(t *testing.T) {
	type scenario struct {
		input    string
		expected TimeStyle
		hasError bool
	}

	scenarios := []scenario{
		{"default", TimeStyleDefault, false},
		{"ISO", TimeStyleISO, false},
		{"Relative", TimeStyleRelative, false},
		{" iso ", TimeStyleISO, false},
		{"full-iso", TimeStyleDefault, true},
	}

	for _, s := range scenarios {
		style, err := ParseTimeStyle(s.input)
		if s.hasError {
			assert.Error(t, err)
			continue
		}
		assert.NoError(t, err)
		assert.Equal(t, s.expected, style)
		assert.Equal(t, timeStyleNames[s.expected], style.String())
	}
}

func TestParseTimeFieldAndDirection(t *testing.T) {
	field, err := ParseTimeField("Created")
	assert.NoError(t, err)
	assert.Equal(t, TimeFieldCreated, field)

	_, err = ParseTimeField("born")
	assert.Error(t, err)

	direction, err := ParseDirection("ACROSS")
	assert.NoError(t, err)
	assert.Equal(t, DirectionAcross, direction)
	assert.Equal(t, "across", direction.String())
}

func TestStrategy(t *testing.T) {
	tests := []struct {
		name     string
		config   ListingConfig
		expected Strategy
	}{
		{"nothing set", ListingConfig{}, StrategyGrid},
		{"long", ListingConfig{Long: true}, StrategyLong},
		{"oneline", ListingConfig{Oneline: true}, StrategyOneline},
		{"oneline beats long", ListingConfig{Oneline: true, Long: true}, StrategyOneline},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.config.Strategy())
		})
	}
}

func TestShowAllLevels(t *testing.T) {
	levels := []struct {
		level      int
		hidden     bool
		dotEntries bool
	}{
		{ShowAllNone, false, false},
		{ShowAllHidden, true, false},
		{ShowAllDotEntries, true, true},
	}

	for _, l := range levels {
		c := ListingConfig{ShowAll: l.level}
		assert.Equal(t, l.hidden, c.ShowHidden())
		assert.Equal(t, l.dotEntries, c.ShowDotEntries())
	}
}

func TestOnlyDirsAndOnlyFilesCancelOut(t *testing.T) {
	assert.True(t, (&ListingConfig{OnlyDirs: true}).OnlyDirectories())
	assert.False(t, (&ListingConfig{OnlyDirs: true}).OnlyRegularFiles())
	assert.True(t, (&ListingConfig{OnlyFiles: true}).OnlyRegularFiles())

	both := &ListingConfig{OnlyDirs: true, OnlyFiles: true}
	assert.False(t, both.OnlyDirectories())
	assert.False(t, both.OnlyRegularFiles())
}

func TestNewListingConfig(t *testing.T) {
	defaults := GetDefaultConfig().Listing
	defaults.TimeStyle = "relative"
	defaults.Ignore = []string{"*.tmp"}

	c, err := NewListingConfig(defaults)
	require.NoError(t, err)

	assert.Equal(t, []string{"."}, c.Paths)
	assert.Equal(t, TimeStyleRelative, c.TimeStyle)
	assert.Equal(t, TimeFieldModified, c.TimeField)
	assert.Equal(t, DirectionDown, c.Direction)
	assert.NoError(t, c.Validate())

	matchers, err := c.IgnoreMatchers()
	require.NoError(t, err)
	require.Len(t, matchers, 1)
	assert.True(t, matchers[0].Match("build.tmp"))
	assert.False(t, matchers[0].Match("build.go"))
}

func TestListingConfigValidate(t *testing.T) {
	assert.Error(t, (&ListingConfig{Paths: []string{"."}, ShowAll: 3}).Validate())
	assert.Error(t, (&ListingConfig{}).Validate())
	assert.Error(t, (&ListingConfig{Paths: []string{"."}, Ignore: []string{"[a"}}).Validate())
	assert.NoError(t, (&ListingConfig{Paths: []string{"."}, ShowAll: 2}).Validate())
}
