// This "script" generates a file called Flags_{{.LANG}}.md
// in the docs/flags directory.
//
// The content of this generated file is a flag reference.
//
// To generate the reference for every language run:
//   go run scripts/cheatsheet/main.go generate

package cheatsheet

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/jesseduffield/lazyls/pkg/cli"
	"github.com/jesseduffield/lazyls/pkg/i18n"
	lslog "github.com/jesseduffield/lazyls/pkg/log"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

const (
	generateCheatsheetCmd = "go run scripts/cheatsheet/main.go generate"
)

type flagSection struct {
	title string
	flags []*pflag.Flag
}

func Generate() {
	generateAtDir(GetFlagsDir())
}

func generateAtDir(dir string) {
	for lang := range i18n.GetTranslationSets() {
		if err := os.WriteFile(flagsFile(dir, lang), []byte(generateContent(lang)), 0o644); err != nil {
			log.Fatal(err)
		}
	}
}

func flagsFile(dir string, lang string) string {
	return filepath.Join(dir, "Flags_"+lang+".md")
}

// generateContent is the flag reference for one language, as it should read on disk
func generateContent(lang string) string {
	tr := i18n.NewTranslationSet(lslog.NewSilentLogger(), lang)
	cmd := cli.NewRootCommand(tr, "", func(*cobra.Command, *cli.Flags, []string) error { return nil })

	return fmt.Sprintf(
		"_This file is auto-generated. To update, make the changes in the "+
			"pkg/i18n directory and then run `%s` from the project root._\n\n%s",
		generateCheatsheetCmd,
		formatSections(tr, getFlagSections(tr, cmd)),
	)
}

func formatTitle(title string) string {
	return fmt.Sprintf("\n## %s\n\n", title)
}

func formatFlag(flag *pflag.Flag) string {
	names := "--" + flag.Name
	if flag.Shorthand != "" {
		names = "-" + flag.Shorthand + ", " + names
	}
	if flag.Value.Type() != "bool" && flag.Value.Type() != "count" {
		names += " <" + flag.Value.Type() + ">"
	}
	return fmt.Sprintf("  <kbd>%s</kbd>: %s\n", names, flag.Usage)
}

func getFlagSections(tr *i18n.TranslationSet, cmd *cobra.Command) []*flagSection {
	titleMap := map[string]string{
		cli.SectionLayout:    tr.LayoutTitle,
		cli.SectionFiltering: tr.FilteringTitle,
		cli.SectionColumns:   tr.ColumnsTitle,
		cli.SectionGlobal:    tr.GlobalTitle,
	}

	flagSections := []*flagSection{}
	for _, section := range cli.Sections {
		flagSections = append(flagSections, &flagSection{title: titleMap[section]})
	}

	cmd.Flags().VisitAll(func(flag *pflag.Flag) {
		sections := flag.Annotations[cli.SectionAnnotation]
		if len(sections) == 0 {
			return
		}
		for i, section := range cli.Sections {
			if section == sections[0] {
				flagSections[i].flags = append(flagSections[i].flags, flag)
			}
		}
	})

	return flagSections
}

func formatSections(tr *i18n.TranslationSet, flagSections []*flagSection) string {
	var builder strings.Builder
	builder.WriteString(fmt.Sprintf("# Lazyls %s\n", tr.FlagsTitle))

	for _, section := range flagSections {
		if len(section.flags) == 0 {
			continue
		}
		builder.WriteString(formatTitle(section.title))
		builder.WriteString("<pre>\n")
		for _, flag := range section.flags {
			builder.WriteString(formatFlag(flag))
		}
		builder.WriteString("</pre>\n")
	}

	return builder.String()
}
