package presentation

import (
	"errors"
	"strings"
	"testing"

	"github.com/jesseduffield/lazyls/pkg/commands"
	"github.com/jesseduffield/lazyls/pkg/config"
	"github.com/jesseduffield/lazyls/pkg/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fixedWidth(width int) func() (int, error) {
	return func() (int, error) {
		return width, nil
	}
}

func entries(names ...string) []Entry {
	result := make([]Entry, len(names))
	for i, name := range names {
		result[i] = NewEntry(name)
	}
	return result
}

func sampleSource() *fakeSource {
	source := newFakeSource()
	source.addFile("a.txt", 100, 0o644)
	source.addDir("b")
	source.addLink("c", "a.txt", true)
	return source
}

// TestListerOneline is a function.
func TestListerOneline(t *testing.T) {
	lister := NewLister(newTestRenderer(&config.ListingConfig{}, sampleSource()), fixedWidth(80))

	output, err := lister.Render(config.StrategyOneline, entries("a.txt", "b", "c"))
	require.NoError(t, err)
	assert.Equal(t, "a.txt\nb/\nc -> a.txt\n", utils.Decolorise(output))
}

func TestListerGrid(t *testing.T) {
	lister := NewLister(newTestRenderer(&config.ListingConfig{}, sampleSource()), fixedWidth(80))

	output, err := lister.Render(config.StrategyGrid, entries("a.txt", "b", "c"))
	require.NoError(t, err)
	assert.Equal(t, "a.txt  b/  c@\n", utils.Decolorise(output))
}

func TestListerGridNarrowTerminal(t *testing.T) {
	lister := NewLister(newTestRenderer(&config.ListingConfig{}, sampleSource()), fixedWidth(6))

	output, err := lister.Render(config.StrategyGrid, entries("a.txt", "b", "c"))
	require.NoError(t, err)
	assert.Equal(t, "a.txt\nb/\nc@\n", utils.Decolorise(output))
}

func TestListerGridWidthError(t *testing.T) {
	lister := NewLister(newTestRenderer(&config.ListingConfig{}, sampleSource()), func() (int, error) {
		return 0, errors.New("not a terminal")
	})

	_, err := lister.Render(config.StrategyGrid, entries("a.txt"))
	assert.True(t, commands.HasErrorCode(err, commands.TerminalWidthUnavailable))
}

func TestListerEmptyGridSkipsTerminal(t *testing.T) {
	called := false
	lister := NewLister(newTestRenderer(&config.ListingConfig{}, sampleSource()), func() (int, error) {
		called = true
		return 80, nil
	})

	output, err := lister.Render(config.StrategyGrid, []Entry{})
	require.NoError(t, err)
	assert.Equal(t, "", output)
	assert.False(t, called)
}

func TestListerLong(t *testing.T) {
	source := sampleSource()
	source.metadata["a.txt"].Size = 10 * 1024 * 1024
	lister := NewLister(newTestRenderer(&config.ListingConfig{}, source), fixedWidth(80))

	output, err := lister.Render(config.StrategyLong, entries("a.txt", "b"))
	require.NoError(t, err)

	expected := "" +
		"-rw-r--r-- jesse 10.0M  5 Jun 12:00 a.txt\n" +
		"drwxr-xr-x jesse     -  5 Jun 12:00 b/\n"
	assert.Equal(t, expected, utils.Decolorise(output))
}

func TestListerLongExtendedAttributes(t *testing.T) {
	source := sampleSource()
	source.attributes["a.txt"] = []string{"user.a", "user.b"}
	lister := NewLister(newTestRenderer(&config.ListingConfig{Extended: true}, source), fixedWidth(80))

	output, err := lister.Render(config.StrategyLong, entries("a.txt"))
	require.NoError(t, err)

	expected := "" +
		"-rw-r--r--@ jesse 100  5 Jun 12:00 a.txt\n" +
		strings.Repeat(" ", 35) + "├── user.a\n" +
		strings.Repeat(" ", 35) + "└── user.b\n"
	assert.Equal(t, expected, utils.Decolorise(output))
}

func TestListerLongMarksAttributesWithoutListingThem(t *testing.T) {
	source := sampleSource()
	source.attributes["a.txt"] = []string{"user.a"}
	lister := NewLister(newTestRenderer(&config.ListingConfig{}, source), fixedWidth(80))

	output, err := lister.Render(config.StrategyLong, entries("a.txt"))
	require.NoError(t, err)
	assert.Equal(t, "-rw-r--r--@ jesse 100  5 Jun 12:00 a.txt\n", utils.Decolorise(output))
}

func TestListerLongOptionalColumns(t *testing.T) {
	listingConfig := &config.ListingConfig{
		Inode:         true,
		Links:         true,
		Group:         true,
		NoPermissions: true,
		TimeStyle:     config.TimeStyleISO,
	}
	lister := NewLister(newTestRenderer(listingConfig, sampleSource()), fixedWidth(80))

	output, err := lister.Render(config.StrategyLong, entries("a.txt", "c"))
	require.NoError(t, err)

	expected := "" +
		"42 1 jesse users 100 2024-06-05 12:00 a.txt\n" +
		" 0 1 jesse users   - 2024-06-05 12:00 c -> a.txt\n"
	assert.Equal(t, expected, utils.Decolorise(output))
}

func TestListerLongMetadataErrorIsFatal(t *testing.T) {
	lister := NewLister(newTestRenderer(&config.ListingConfig{}, sampleSource()), fixedWidth(80))

	output, err := lister.Render(config.StrategyLong, entries("a.txt", "missing"))
	assert.Equal(t, "", output)
	assert.True(t, commands.HasErrorCode(err, commands.NotFound))
}
