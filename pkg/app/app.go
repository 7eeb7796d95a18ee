package app

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/gobwas/glob"
	"github.com/jesseduffield/lazyls/pkg/commands"
	"github.com/jesseduffield/lazyls/pkg/config"
	"github.com/jesseduffield/lazyls/pkg/i18n"
	"github.com/jesseduffield/lazyls/pkg/log"
	"github.com/jesseduffield/lazyls/pkg/presentation"
	"github.com/samber/lo"
	"github.com/sirupsen/logrus"
	"golang.org/x/term"
)

// App struct
type App struct {
	Config       *config.AppConfig
	Log          *logrus.Entry
	OSCommand    *commands.OSCommand
	NameResolver *commands.NameResolver
	Tr           *i18n.TranslationSet
	Theme        presentation.Theme

	Stdout io.Writer
	Stderr io.Writer
	// TerminalWidth is the number of columns the grid is laid out against
	TerminalWidth func() (int, error)
}

// NewApp bootstrap a new application
func NewApp(config *config.AppConfig) (*App, error) {
	app := &App{
		Config:        config,
		Theme:         presentation.NewTheme(config.UserConfig.Theme),
		Stdout:        os.Stdout,
		Stderr:        os.Stderr,
		TerminalWidth: stdoutWidth,
	}
	var err error
	app.Log = log.NewLogger(config)
	app.Tr, err = i18n.NewTranslationSetFromConfig(app.Log, config.UserConfig.Language)
	if err != nil {
		return app, err
	}
	app.OSCommand = commands.NewOSCommand(app.Log, config)
	app.NameResolver = commands.NewNameResolver(app.Log)
	return app, nil
}

func stdoutWidth() (int, error) {
	width, _, err := term.GetSize(int(os.Stdout.Fd()))
	return width, err
}

// Run lists the requested paths. Plain files come first as one group, then
// each directory's contents in turn.
func (app *App) Run(listingConfig *config.ListingConfig) error {
	globs, err := listingConfig.IgnoreMatchers()
	if err != nil {
		return err
	}

	renderer := presentation.NewRenderer(app.Log, listingConfig, app.Theme, app.OSCommand, app.NameResolver)
	lister := presentation.NewLister(renderer, app.TerminalWidth)
	strategy := listingConfig.Strategy()
	app.Log.Debugf("listing %v with the %s strategy", listingConfig.Paths, strategy)

	paths := lo.Filter(listingConfig.Paths, func(path string, _ int) bool {
		if app.OSCommand.Exists(path) {
			return true
		}
		name := renderer.FileName(presentation.NewEntry(path), false)
		fmt.Fprintf(app.Stderr, "%s: %s\n", name, app.Tr.NoSuchFileOrDirectory)
		return false
	})
	app.sortArguments(paths)

	files := lo.Reject(paths, func(path string, _ int) bool { return app.OSCommand.IsDir(path) })
	directories := lo.Filter(paths, func(path string, _ int) bool { return app.OSCommand.IsDir(path) })

	output, err := lister.Render(strategy, lo.Map(files, func(path string, _ int) presentation.Entry {
		return presentation.NewEntry(path)
	}))
	if err != nil {
		return err
	}
	fmt.Fprint(app.Stdout, output)

	for _, directory := range directories {
		entries, err := app.listDirectory(directory, listingConfig, globs)
		if err != nil {
			return err
		}
		if len(directories) > 1 {
			fmt.Fprintf(app.Stdout, "\n%s:\n", renderer.FileName(presentation.NewEntry(directory), false))
		}
		output, err := lister.Render(strategy, entries)
		if err != nil {
			return err
		}
		fmt.Fprint(app.Stdout, output)
	}

	return nil
}

// sortArguments puts directories after everything else and orders paths by
// their components, so "a/b" comes before "a.txt"
func (app *App) sortArguments(paths []string) {
	isDir := map[string]bool{}
	for _, path := range paths {
		isDir[path] = app.OSCommand.IsDir(path)
	}
	sort.SliceStable(paths, func(i, j int) bool {
		if isDir[paths[i]] != isDir[paths[j]] {
			return !isDir[paths[i]]
		}
		return comparePaths(paths[i], paths[j]) < 0
	})
}

// listDirectory returns the directory's children that pass the configured
// filters, files first and then by name. The "." and ".." pseudo-entries lead
// the list when asked for.
func (app *App) listDirectory(directory string, listingConfig *config.ListingConfig, globs []glob.Glob) ([]presentation.Entry, error) {
	dirEntries, err := app.OSCommand.ReadDir(directory)
	if err != nil {
		return nil, err
	}

	entries := []presentation.Entry{}
	isDir := map[string]bool{}
	for _, dirEntry := range dirEntries {
		name := dirEntry.Name()
		path := filepath.Join(directory, name)

		if !listingConfig.ShowHidden() && strings.HasPrefix(name, ".") {
			continue
		}
		if listingConfig.OnlyDirectories() && app.OSCommand.IsFile(path) {
			continue
		}
		if listingConfig.OnlyRegularFiles() && app.OSCommand.IsDir(path) {
			continue
		}
		if isIgnored(name, globs) {
			app.Log.Debugf("ignoring %s", path)
			continue
		}

		isDir[name] = app.OSCommand.IsDir(path)
		entries = append(entries, presentation.Entry{Name: name, Path: path})
	}

	sort.SliceStable(entries, func(i, j int) bool {
		if isDir[entries[i].Name] != isDir[entries[j].Name] {
			return !isDir[entries[i].Name]
		}
		return entries[i].Name < entries[j].Name
	})

	if listingConfig.ShowDotEntries() {
		separator := string(filepath.Separator)
		entries = append([]presentation.Entry{
			{Name: ".", Path: directory + separator + "."},
			{Name: "..", Path: directory + separator + ".."},
		}, entries...)
	}

	return entries, nil
}

func isIgnored(name string, globs []glob.Glob) bool {
	for _, g := range globs {
		if g.Match(name) {
			return true
		}
	}
	return false
}

// comparePaths compares two paths component by component. A leading root or
// "." counts as a component; empty and inner "." components are skipped.
func comparePaths(a, b string) int {
	aParts, bParts := pathComponents(a), pathComponents(b)
	for i := 0; i < len(aParts) && i < len(bParts); i++ {
		if c := strings.Compare(aParts[i], bParts[i]); c != 0 {
			return c
		}
	}
	return len(aParts) - len(bParts)
}

func pathComponents(path string) []string {
	return lo.Filter(strings.Split(filepath.ToSlash(path), "/"), func(part string, i int) bool {
		if i == 0 {
			return true
		}
		return part != "" && part != "."
	})
}

// KnownError takes an error and tells us whether it's an error that we know about where we can print a nicely formatted version of it rather than panicking with a stack trace
func (app *App) KnownError(err error) (string, bool) {
	complexErr, ok := commands.AsComplexError(err)
	if !ok {
		return "", false
	}

	switch complexErr.Code {
	case commands.NotFound:
		return fmt.Sprintf("%s: %s", complexErr.Path, app.Tr.NoSuchFileOrDirectory), true
	case commands.MetadataUnavailable:
		return fmt.Sprintf("%s %s", app.Tr.MetadataUnavailable, complexErr.Path), true
	case commands.DirectoryUnreadable:
		return fmt.Sprintf("%s %s", app.Tr.DirectoryUnreadable, complexErr.Path), true
	case commands.TerminalWidthUnavailable:
		return app.Tr.TerminalWidthUnavailable, true
	}

	return "", false
}
