// Prints, for every language other than english, the translation set fields
// that still fall back to the english text.
//
//   go run scripts/translations/get_required_translations.go

package main

import (
	"fmt"
	"reflect"
	"sort"
	"strings"

	"github.com/jesseduffield/lazyls/pkg/i18n"
	"github.com/samber/lo"
)

func main() {
	fmt.Print(getOutstandingTranslations())
}

// adapted from https://github.com/a8m/reflect-examples#read-struct-tags
func getOutstandingTranslations() string {
	translationSets := i18n.GetTranslationSets()
	languageCodes := lo.Filter(lo.Keys(translationSets), func(code string, _ int) bool {
		return code != i18n.EN
	})
	sort.Strings(languageCodes)

	var builder strings.Builder
	for _, languageCode := range languageCodes {
		v := reflect.ValueOf(translationSets[languageCode])
		missing := []string{}
		for i := 0; i < v.NumField(); i++ {
			if v.Field(i).String() == "" {
				missing = append(missing, v.Type().Field(i).Name)
			}
		}

		builder.WriteString(fmt.Sprintf("%s (%d missing):\n", languageCode, len(missing)))
		for _, name := range missing {
			builder.WriteString("  " + name + "\n")
		}
		builder.WriteString("\n")
	}
	return builder.String()
}
