// file: internals/helpers/slug.go
package helper

import (
	"regexp"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/unicode/norm"
)

var (
	reNonAlnum = regexp.MustCompile(`[^a-z0-9]+`)
	reHyphen   = regexp.MustCompile(`-+`)
)

// Slugify teks bebas -> [a-z0-9-]. Diakritik dibuang, "-" dikompres,
// panjang dibatasi maxLen (default 64 jika <=0). Hasil kosong -> fallback.
func Slugify(s string, maxLen int, fallback string) string {
	if maxLen <= 0 {
		maxLen = 64
	}
	s = strings.ToLower(strings.TrimSpace(s))

	// é -> e
	var b strings.Builder
	for _, r := range norm.NFD.String(s) {
		if unicode.Is(unicode.Mn, r) {
			continue
		}
		b.WriteRune(r)
	}
	s = reNonAlnum.ReplaceAllString(b.String(), "-")
	s = reHyphen.ReplaceAllString(s, "-")
	s = strings.Trim(s, "-")

	if utf8.RuneCountInString(s) > maxLen {
		s = strings.Trim(string([]rune(s)[:maxLen]), "-")
	}
	if s == "" {
		return fallback
	}
	return s
}

// UniqueSlug tambah suffix -2, -3, ... sampai tidak bentrok dengan taken.
func UniqueSlug(base string, taken map[string]struct{}) string {
	if _, ok := taken[base]; !ok {
		return base
	}
	for i := 2; ; i++ {
		cand := base + "-" + strconv.Itoa(i)
		if _, ok := taken[cand]; !ok {
			return cand
		}
	}
}
