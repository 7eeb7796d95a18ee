package cheatsheet

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strings"

	"github.com/jesseduffield/lazycore/pkg/utils"
	"github.com/jesseduffield/lazyls/pkg/i18n"
	"github.com/pmezard/go-difflib/difflib"
	"github.com/samber/lo"
)

// headerSection names the part of a flag reference above its first section
const headerSection = "header"

var flagsFileRegexp = regexp.MustCompile(`^Flags_(\w+)\.md$`)

// drift is a part of a flag reference on disk that no longer matches what
// would be generated for it
type drift struct {
	file    string
	section string
	diff    string
}

type section struct {
	title string
	body  string
}

func Check() {
	drifts, err := checkDir(GetFlagsDir())
	if err != nil {
		log.Fatalf("Error occurred while checking if flag references are up to date: %v", err)
	}

	if len(drifts) == 0 {
		fmt.Println("\nFlag references are up to date")
		return
	}

	for _, d := range drifts {
		if d.section == "" {
			fmt.Printf("\n%s: %s", d.file, d.diff)
			continue
		}
		fmt.Printf("\n%s, section '%s':\n%s", d.file, d.section, d.diff)
	}
	fmt.Printf(
		"\nFlag references are out of date. Please run `%s` at the project root and commit the changes.\n",
		generateCheatsheetCmd,
	)
	os.Exit(1)
}

func GetFlagsDir() string {
	return utils.GetLazyRootDirectory() + "/docs/flags"
}

// checkDir compares every language's flag reference in dir against freshly
// generated content, section by section. Files for languages we don't have
// are reported too.
func checkDir(dir string) ([]drift, error) {
	translationSets := i18n.GetTranslationSets()
	languages := lo.Keys(translationSets)
	sort.Strings(languages)

	drifts := []drift{}
	for _, lang := range languages {
		path := flagsFile(dir, lang)
		actual, err := os.ReadFile(path)
		if os.IsNotExist(err) {
			drifts = append(drifts, drift{file: filepath.Base(path), diff: "missing\n"})
			continue
		}
		if err != nil {
			return nil, err
		}

		fileDrifts, err := compareSections(filepath.Base(path), generateContent(lang), string(actual))
		if err != nil {
			return nil, err
		}
		drifts = append(drifts, fileDrifts...)
	}

	dirEntries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}
	for _, dirEntry := range dirEntries {
		match := flagsFileRegexp.FindStringSubmatch(dirEntry.Name())
		if match == nil {
			continue
		}
		if _, ok := translationSets[match[1]]; !ok {
			drifts = append(drifts, drift{file: dirEntry.Name(), diff: "no translation set for this language\n"})
		}
	}

	return drifts, nil
}

func compareSections(file string, expected string, actual string) ([]drift, error) {
	expectedSections := splitSections(expected)
	actualSections := splitSections(actual)

	actualBodies := map[string]string{}
	for _, s := range actualSections {
		actualBodies[s.title] = s.body
	}
	expectedTitles := map[string]bool{}

	drifts := []drift{}
	for _, s := range expectedSections {
		expectedTitles[s.title] = true
		body, ok := actualBodies[s.title]
		if ok && body == s.body {
			continue
		}
		diff, err := unifiedDiff(s.body, body)
		if err != nil {
			return nil, err
		}
		drifts = append(drifts, drift{file: file, section: s.title, diff: diff})
	}

	for _, s := range actualSections {
		if expectedTitles[s.title] {
			continue
		}
		diff, err := unifiedDiff("", s.body)
		if err != nil {
			return nil, err
		}
		drifts = append(drifts, drift{file: file, section: s.title, diff: diff})
	}

	return drifts, nil
}

// splitSections cuts a flag reference at its "## " headings
func splitSections(content string) []section {
	parts := strings.Split(content, "\n## ")
	sections := []section{{title: headerSection, body: parts[0]}}
	for _, part := range parts[1:] {
		title, _, _ := strings.Cut(part, "\n")
		sections = append(sections, section{title: title, body: "## " + part})
	}
	return sections
}

func unifiedDiff(expected string, actual string) (string, error) {
	return difflib.GetUnifiedDiffString(difflib.UnifiedDiff{
		A:        difflib.SplitLines(expected),
		B:        difflib.SplitLines(actual),
		FromFile: "Expected",
		ToFile:   "Actual",
		Context:  1,
	})
}
