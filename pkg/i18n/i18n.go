package i18n

import (
	"strings"

	"github.com/cloudfoundry/jibber_jabber"
	"github.com/go-errors/errors"
	"github.com/imdario/mergo"
	"github.com/samber/lo"
	"github.com/sirupsen/logrus"
)

// ISO 639-1 supported language codes.
const (
	// Polish
	PL = "pl"
	// English
	EN = "en"
)

func NewTranslationSetFromConfig(log *logrus.Entry, configLanguage string) (*TranslationSet, error) {
	if configLanguage == "auto" {
		language := detectLanguage(jibber_jabber.DetectLanguage)

		return NewTranslationSet(log, language), nil
	}

	if lo.Contains(getSupportedLanguages(), configLanguage) {
		return NewTranslationSet(log, configLanguage), nil
	}

	return NewTranslationSet(log, EN), errors.New("Language not found: " + configLanguage)
}

func NewTranslationSet(log *logrus.Entry, language string) *TranslationSet {
	log.Info("language: " + language)

	baseSet := englishSet()
	otherSet := getTranslationSet(language)

	_ = mergo.Merge(&baseSet, otherSet, mergo.WithOverride)

	return &baseSet
}

// GetTranslationSets gets all the translation sets, keyed by language code
func GetTranslationSets() map[string]TranslationSet {
	return map[string]TranslationSet{
		PL: polishSet(),
		EN: englishSet(),
	}
}

// getTranslationSet returns the translation set that matches the given language.
//
// It returns an english translation set if not found.
func getTranslationSet(languageCode string) TranslationSet {
	switch strings.ToLower(languageCode) {
	case PL:
		return polishSet()
	case EN:
		return englishSet()
	}

	return englishSet()
}

// getSupportedLanguages returns all the supported languages.
func getSupportedLanguages() []string {
	return []string{
		PL,
		EN,
	}
}

// detectLanguage extracts user language from environment
func detectLanguage(langDetector func() (string, error)) string {
	if userLang, err := langDetector(); err == nil {
		return userLang
	}

	return "C"
}
