package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Takahiruma/lejapong/internal/domain"
)

func TestParseLanguage(t *testing.T) {
	tests := []struct {
		name string
		tag  string
		want domain.Language
	}{
		{name: "plain fr", tag: "fr", want: domain.LanguageFR},
		{name: "french locale tag", tag: "fr-FR,fr;q=0.9", want: domain.LanguageFR},
		{name: "canadian french", tag: "fr-CA", want: domain.LanguageFR},
		{name: "uppercase", tag: "FR", want: domain.LanguageFR},
		{name: "english", tag: "en-US", want: domain.LanguageEN},
		{name: "unrelated locale", tag: "de-DE", want: domain.LanguageEN},
		{name: "empty", tag: "", want: domain.LanguageEN},
		{name: "whitespace", tag: "  fr ", want: domain.LanguageFR},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, domain.ParseLanguage(tt.tag))
		})
	}
}

func TestLanguageCacheKey(t *testing.T) {
	assert.Equal(t, "placesData_fr", domain.LanguageFR.CacheKey())
	assert.Equal(t, "placesData_en", domain.LanguageEN.CacheKey())
}

func TestLanguageIsValid(t *testing.T) {
	assert.True(t, domain.LanguageFR.IsValid())
	assert.True(t, domain.LanguageEN.IsValid())
	assert.False(t, domain.Language("de").IsValid())
	assert.False(t, domain.Language("").IsValid())
}
