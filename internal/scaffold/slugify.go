package scaffold

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var nonSlugRe = regexp.MustCompile(`[^a-z0-9]+`)

// Slugify turns a title into a folder slug: "Sécurité réseau" becomes
// "securite-reseau".
func Slugify(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	stripped, _, err := transform.String(t, strings.ToLower(s))
	if err != nil {
		stripped = strings.ToLower(s)
	}
	return strings.Trim(nonSlugRe.ReplaceAllString(stripped, "-"), "-")
}
