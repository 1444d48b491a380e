// file: internals/features/catalog/search/normalize.go
package search

import (
	"regexp"
	"strings"

	"golang.org/x/text/unicode/norm"
)

var (
	reSeparators = regexp.MustCompile(`[.,\-()&]`)
	reSpaces     = regexp.MustCompile(`\s+`)
)

// Normalize: lowercase, ". , - ( ) &" jadi spasi, spasi beruntun dipadatkan, trim.
func Normalize(s string) string {
	s = strings.ToLower(norm.NFC.String(s))
	s = reSeparators.ReplaceAllString(s, " ")
	s = reSpaces.ReplaceAllString(s, " ")
	return strings.TrimSpace(s)
}

// Tokenize query ter-normalisasi jadi token non-kosong.
func Tokenize(query string) []string {
	return strings.Fields(Normalize(query))
}
