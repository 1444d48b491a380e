// file: internals/features/catalog/search/matcher.go
package search

import (
	"strings"

	"studyfee_backend/internals/features/catalog/model"
)

// StreamClassifier sumber nama stream turunan course.
type StreamClassifier interface {
	Stream(course model.Course) string
}

// Matcher mencocokkan query bebas ke course.
//
// Tiap token harus cocok (AND), lewat salah satu strategi (OR, berhenti di
// yang pertama berhasil):
//  1. substring di title / id / kode group / nama school / stream
//  2. tabel singkatan
//  3. partial word (prefix dua arah atau substring) di kata title, lalu kata id
type Matcher struct {
	schools       map[string]string
	streams       StreamClassifier
	abbreviations map[string][]string
}

func NewMatcher(schools map[string]string, streams StreamClassifier) *Matcher {
	return &Matcher{
		schools:       schools,
		streams:       streams,
		abbreviations: Abbreviations,
	}
}

// WithAbbreviations ganti tabel singkatan (mis. dari config).
func (m *Matcher) WithAbbreviations(table map[string][]string) *Matcher {
	cp := *m
	cp.abbreviations = table
	return &cp
}

type courseFields struct {
	title  string
	id     string
	group  string
	school string
	stream string
}

func (m *Matcher) fields(course model.Course) courseFields {
	f := courseFields{
		title:  Normalize(course.Title),
		id:     Normalize(course.ID),
		group:  strings.ToLower(course.Group),
		school: Normalize(m.schools[course.Group]),
	}
	if m.streams != nil {
		f.stream = Normalize(m.streams.Stream(course))
	}
	return f
}

// MatchesQuery query kosong/spasi doang = cocok semua.
func (m *Matcher) MatchesQuery(course model.Course, rawQuery string) bool {
	tokens := Tokenize(rawQuery)
	if len(tokens) == 0 {
		return true
	}
	return m.matchTokens(m.fields(course), tokens)
}

// SearchCourses filter dengan urutan catalog tetap.
func (m *Matcher) SearchCourses(courses []model.Course, rawQuery string) []model.Course {
	tokens := Tokenize(rawQuery)
	out := make([]model.Course, 0, len(courses))
	for _, c := range courses {
		if len(tokens) == 0 || m.matchTokens(m.fields(c), tokens) {
			out = append(out, c)
		}
	}
	return out
}

func (m *Matcher) matchTokens(f courseFields, tokens []string) bool {
	for _, tok := range tokens {
		if !m.matchToken(f, tok) {
			return false
		}
	}
	return true
}

func (m *Matcher) matchToken(f courseFields, tok string) bool {
	if strings.Contains(f.title, tok) ||
		strings.Contains(f.id, tok) ||
		strings.Contains(f.group, tok) ||
		strings.Contains(f.school, tok) ||
		strings.Contains(f.stream, tok) {
		return true
	}

	if m.matchAbbreviation(f, tok) {
		return true
	}

	return matchPartial(strings.Fields(f.title), tok) || matchPartial(strings.Fields(f.id), tok)
}

func (m *Matcher) matchAbbreviation(f courseFields, tok string) bool {
	for abbr, expansions := range m.abbreviations {
		if tok != abbr && !strings.Contains(tok, abbr) && !strings.Contains(abbr, tok) {
			continue
		}
		for _, phrase := range expansions {
			if strings.Contains(f.title, phrase) || strings.Contains(f.id, phrase) {
				return true
			}
		}
	}
	return false
}

func matchPartial(words []string, tok string) bool {
	for _, w := range words {
		if strings.HasPrefix(w, tok) || strings.HasPrefix(tok, w) || strings.Contains(w, tok) {
			return true
		}
	}
	return false
}
