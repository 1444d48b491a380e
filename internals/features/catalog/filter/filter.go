// file: internals/features/catalog/filter/filter.go
package filter

import (
	"sort"
	"strings"

	"studyfee_backend/internals/features/catalog/model"
)

// Classifier = sumber programme level & stream.
type Classifier interface {
	ProgrammeLevel(course model.Course) model.ProgrammeLevel
	Stream(course model.Course) string
}

// QueryMatcher = matching engine untuk query bebas.
type QueryMatcher interface {
	SearchCourses(courses []model.Course, rawQuery string) []model.Course
}

type Criteria struct {
	Query     string
	Programme model.ProgrammeLevel
	Stream    string
}

// Group satu blok hasil per kode school.
type Group struct {
	Code       string         `json:"code"`
	SchoolName string         `json:"school_name"`
	Courses    []model.Course `json:"courses"`
}

// Result grup terurut sesuai kode school yang pertama kali muncul.
type Result struct {
	Groups []Group `json:"groups"`
}

func (r Result) Empty() bool { return len(r.Groups) == 0 }

// Flatten urutan navigasi keyboard (grup demi grup).
func (r Result) Flatten() []model.Course {
	var out []model.Course
	for _, g := range r.Groups {
		out = append(out, g.Courses...)
	}
	return out
}

// Get course di satu grup; nil kalau grup tidak ada.
func (r Result) Get(code string) []model.Course {
	for _, g := range r.Groups {
		if g.Code == code {
			return g.Courses
		}
	}
	return nil
}

// ProgrammeOption pilihan dropdown programme.
type ProgrammeOption struct {
	Value model.ProgrammeLevel `json:"value"`
	Label string               `json:"label"`
}

// ProgrammeOptions diploma sengaja tidak ada (selalu disembunyikan).
func ProgrammeOptions() []ProgrammeOption {
	return []ProgrammeOption{
		{Value: model.ProgrammeAll, Label: "Select Programme"},
		{Value: model.ProgrammeCertificate, Label: "Certificate"},
		{Value: model.ProgrammeGraduate, Label: "Graduate"},
		{Value: model.ProgrammePostGraduate, Label: "Post Graduate"},
		{Value: model.ProgrammeIntegrated, Label: "Integrated"},
	}
}

// Filter komposisi: diploma out -> programme -> stream -> query -> group.
type Filter struct {
	classifier Classifier
	matcher    QueryMatcher
	schools    map[string]string
}

func New(classifier Classifier, matcher QueryMatcher, schools map[string]string) *Filter {
	return &Filter{classifier: classifier, matcher: matcher, schools: schools}
}

// visible: non-diploma + filter programme (kalau bukan "all").
func (f *Filter) visible(courses []model.Course, programme model.ProgrammeLevel) []model.Course {
	out := make([]model.Course, 0, len(courses))
	for _, c := range courses {
		level := f.classifier.ProgrammeLevel(c)
		if level == model.ProgrammeDiploma {
			continue
		}
		if programme != "" && programme != model.ProgrammeAll && level != programme {
			continue
		}
		out = append(out, c)
	}
	return out
}

func (f *Filter) Apply(courses []model.Course, crit Criteria) Result {
	filtered := f.visible(courses, crit.Programme)

	if crit.Stream != "" && crit.Stream != model.StreamAll {
		kept := filtered[:0:0]
		for _, c := range filtered {
			if f.classifier.Stream(c) == crit.Stream {
				kept = append(kept, c)
			}
		}
		filtered = kept
	}

	if strings.TrimSpace(crit.Query) != "" {
		filtered = f.matcher.SearchCourses(filtered, crit.Query)
	}

	return f.group(filtered)
}

func (f *Filter) group(courses []model.Course) Result {
	var res Result
	index := map[string]int{}
	for _, c := range courses {
		i, ok := index[c.Group]
		if !ok {
			i = len(res.Groups)
			index[c.Group] = i
			name := f.schools[c.Group]
			if name == "" {
				name = c.Group
			}
			res.Groups = append(res.Groups, Group{Code: c.Group, SchoolName: name})
		}
		res.Groups[i].Courses = append(res.Groups[i].Courses, c)
	}
	return res
}

// StreamOptions "all" + stream unik (urut leksikografis) dari course
// non-diploma yang lolos filter programme.
func (f *Filter) StreamOptions(courses []model.Course, programme model.ProgrammeLevel) []string {
	seen := map[string]struct{}{}
	var streams []string
	for _, c := range f.visible(courses, programme) {
		s := f.classifier.Stream(c)
		if _, ok := seen[s]; ok {
			continue
		}
		seen[s] = struct{}{}
		streams = append(streams, s)
	}
	sort.Strings(streams)
	return append([]string{model.StreamAll}, streams...)
}
