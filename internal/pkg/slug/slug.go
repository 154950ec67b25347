// Package slug derives routable identifiers from place display names.
package slug

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var stripAccents = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// Make turns a display name into its slug: accents stripped, lowercased,
// trimmed, runs of whitespace collapsed to single hyphens.
//
// The same function is applied at ingestion (to compute the stored ID) and to
// the URL-decoded route segment at lookup; the two sides must stay identical
// or lookups silently miss.
func Make(name string) string {
	stripped, _, err := transform.String(stripAccents, name)
	if err != nil {
		// Invalid UTF-8 passes through untransformed rather than breaking
		// ingestion; both sides of a lookup degrade the same way.
		stripped = name
	}
	return strings.Join(strings.Fields(strings.ToLower(stripped)), "-")
}
