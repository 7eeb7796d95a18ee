package cheatsheet

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/jesseduffield/lazyls/pkg/cli"
	"github.com/jesseduffield/lazyls/pkg/i18n"
	lslog "github.com/jesseduffield/lazyls/pkg/log"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func englishCommand() (*i18n.TranslationSet, *cobra.Command) {
	tr := i18n.NewTranslationSet(lslog.NewSilentLogger(), i18n.EN)
	cmd := cli.NewRootCommand(tr, "", func(*cobra.Command, *cli.Flags, []string) error { return nil })
	return tr, cmd
}

// TestFormatFlag is a function.
func TestFormatFlag(t *testing.T) {
	_, cmd := englishCommand()

	type scenario struct {
		name     string
		expected string
	}

	scenarios := []scenario{
		{"long", "  <kbd>-l, --long</kbd>: show a table with permissions, owner, size and time\n"},
		{"no-permissions", "  <kbd>--no-permissions</kbd>: hide the permissions column in the long listing\n"},
		{"time-style", "  <kbd>--time-style <string></kbd>: how to show times: default, iso or relative\n"},
		{"all", "  <kbd>-a, --all</kbd>: show hidden entries; pass twice to also show '.' and '..'\n"},
		{"ignore", "  <kbd>-I, --ignore <stringArray></kbd>: do not list entries whose name matches this glob (repeatable)\n"},
	}

	for _, s := range scenarios {
		flag := cmd.Flags().Lookup(s.name)
		require.NotNil(t, flag, s.name)
		assert.Equal(t, s.expected, formatFlag(flag))
	}
}

func TestGetFlagSections(t *testing.T) {
	tr, cmd := englishCommand()
	sections := getFlagSections(tr, cmd)

	require.Len(t, sections, len(cli.Sections))
	assert.Equal(t, "Layout", sections[0].title)
	assert.Equal(t, "Global", sections[3].title)

	names := func(section *flagSection) []string {
		result := []string{}
		for _, flag := range section.flags {
			result = append(result, flag.Name)
		}
		return result
	}
	assert.Equal(t, []string{"long", "oneline", "across", "direction"}, names(sections[0]))
	assert.Equal(t, []string{"all", "only-dirs", "only-files", "ignore"}, names(sections[1]))
	assert.Equal(t, []string{"color", "config", "debug"}, names(sections[3]))
}

func TestGenerateAtDir(t *testing.T) {
	dir := t.TempDir()
	generateAtDir(dir)

	for lang := range i18n.GetTranslationSets() {
		content, err := os.ReadFile(filepath.Join(dir, "Flags_"+lang+".md"))
		require.NoError(t, err, lang)
		assert.True(t, strings.HasPrefix(string(content), "_This file is auto-generated."), lang)
		assert.Contains(t, string(content), "<kbd>-l, --long</kbd>", lang)
	}

	english, err := os.ReadFile(filepath.Join(dir, "Flags_en.md"))
	require.NoError(t, err)
	assert.Contains(t, string(english), "# Lazyls Flags\n")
	assert.Contains(t, string(english), "\n## Long listing columns\n\n<pre>\n")

	polish, err := os.ReadFile(filepath.Join(dir, "Flags_pl.md"))
	require.NoError(t, err)
	assert.Contains(t, string(polish), "# Lazyls Flagi\n")
	assert.Contains(t, string(polish), "listuj tylko katalogi")
}

func TestCheckDirUpToDate(t *testing.T) {
	dir := t.TempDir()
	generateAtDir(dir)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.md"), []byte("ignored"), 0o644))

	drifts, err := checkDir(dir)
	require.NoError(t, err)
	assert.Empty(t, drifts)
}

func TestCheckDirReportsDrift(t *testing.T) {
	dir := t.TempDir()
	generateAtDir(dir)

	english := filepath.Join(dir, "Flags_en.md")
	content, err := os.ReadFile(english)
	require.NoError(t, err)
	edited := strings.Replace(string(content), "show sizes in bytes instead of k/M/G", "show sizes in bytes", 1)
	require.NotEqual(t, string(content), edited)
	require.NoError(t, os.WriteFile(english, []byte(edited), 0o644))

	require.NoError(t, os.Remove(filepath.Join(dir, "Flags_pl.md")))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "Flags_xx.md"), []byte("# Lazyls\n"), 0o644))

	drifts, err := checkDir(dir)
	require.NoError(t, err)
	require.Len(t, drifts, 3)

	assert.Equal(t, "Flags_en.md", drifts[0].file)
	assert.Equal(t, "Long listing columns", drifts[0].section)
	assert.Contains(t, drifts[0].diff, "-  <kbd>-B, --bytes</kbd>: show sizes in bytes instead of k/M/G\n")
	assert.Contains(t, drifts[0].diff, "+  <kbd>-B, --bytes</kbd>: show sizes in bytes\n")

	assert.Equal(t, drift{file: "Flags_pl.md", diff: "missing\n"}, drifts[1])
	assert.Equal(t, drift{file: "Flags_xx.md", diff: "no translation set for this language\n"}, drifts[2])
}

func TestCompareSectionsReportsExtraSection(t *testing.T) {
	expected := "# Lazyls Flags\n\n## Layout\n\n<pre>\n</pre>\n"
	actual := expected + "\n## Stale\n\n<pre>\n</pre>\n"

	drifts, err := compareSections("Flags_en.md", expected, actual)
	require.NoError(t, err)
	require.Len(t, drifts, 1)
	assert.Equal(t, "Stale", drifts[0].section)
	assert.Contains(t, drifts[0].diff, "+## Stale\n")
}

func TestSplitSections(t *testing.T) {
	sections := splitSections("intro\n# Title\n\n## One\n\na\n\n## Two\n\nb\n")

	assert.Equal(t, []section{
		{title: headerSection, body: "intro\n# Title\n"},
		{title: "One", body: "## One\n\na\n"},
		{title: "Two", body: "## Two\n\nb\n"},
	}, sections)
}
