package domain

import "strings"

// Language is a two-letter dataset language code.
type Language string

const (
	LanguageFR Language = "fr"
	LanguageEN Language = "en"
)

// cacheKeyPrefix matches the key layout of previously cached datasets,
// so entries written by earlier deployments stay readable.
const cacheKeyPrefix = "placesData_"

// ParseLanguage maps a locale tag to a supported language.
// Anything that does not start with "fr" falls back to English.
func ParseLanguage(tag string) Language {
	if strings.HasPrefix(strings.ToLower(strings.TrimSpace(tag)), "fr") {
		return LanguageFR
	}
	return LanguageEN
}

// IsValid reports whether l is one of the recognized codes.
func (l Language) IsValid() bool {
	return l == LanguageFR || l == LanguageEN
}

// CacheKey returns the language-scoped key under which the dataset is persisted.
func (l Language) CacheKey() string {
	return cacheKeyPrefix + string(l)
}

func (l Language) String() string {
	return string(l)
}
