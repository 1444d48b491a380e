package search

import (
	"testing"

	"github.com/davecgh/go-spew/spew"

	"studyfee_backend/internals/features/catalog/classifier"
	"studyfee_backend/internals/features/catalog/model"
)

var testSchools = map[string]string{
	"SSET": "Sharda School of Engineering & Technology",
	"SBS":  "Sharda School of Business Studies",
	"SMSR": "Sharda School of Medical Sciences & Research",
}

func newTestMatcher() *Matcher {
	return NewMatcher(testSchools, classifier.Default())
}

func TestNormalize(t *testing.T) {
	cases := map[string]string{
		"B.Tech. CSE (AI & ML)":  "b tech cse ai ml",
		"  M.Sc.,  Physics  ":    "m sc physics",
		"LL.B.-Hons":             "ll b hons",
		"":                       "",
		"Design, Architecture &": "design architecture",
	}
	for in, want := range cases {
		if got := Normalize(in); got != want {
			t.Errorf("Normalize(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestMatchesQuery(t *testing.T) {
	m := newTestMatcher()

	btech := model.Course{ID: "btech-cse", Title: "B.Tech CSE", Group: "SSET"}
	bba := model.Course{ID: "bachelor-business", Title: "Bachelor of Business Administration", Group: "SBS"}
	aiCourse := model.Course{ID: "btech-x1", Title: "B.Tech. CSE (Artificial Intelligence)", Group: "SSET"}
	computer := model.Course{ID: "btech-cs", Title: "Computer Science", Group: "SSET"}
	bds := model.Course{ID: "dent-1", Title: "BDS", Group: "SMSR"}
	mbbs := model.Course{ID: "mbbs", Title: "MBBS", Group: "SMSR"}

	cases := []struct {
		name   string
		course model.Course
		query  string
		want   bool
	}{
		{"empty query", mbbs, "", true},
		{"whitespace query", mbbs, "   ", true},
		{"direct title", btech, "cse", true},
		{"case and punctuation", btech, "B.TECH", true},
		{"abbreviation bba", bba, "bba", true},
		{"abbreviation ml to artificial intelligence", aiCourse, "ml", true},
		{"partial token longer than word", computer, "computers", true},
		{"stream name", bds, "dental", true},
		{"school full name", mbbs, "sciences research", true},
		{"group code", mbbs, "smsr", true},
		{"all tokens must match", mbbs, "mbbs xyzq", false},
		{"no match", mbbs, "xyzq", false},
		// single-letter title words make any token with that initial match
		{"permissive prefix", btech, "biology", true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := m.MatchesQuery(tc.course, tc.query); got != tc.want {
				t.Errorf("MatchesQuery(%s, %q) = %v, want %v", spew.Sdump(tc.course), tc.query, got, tc.want)
			}
		})
	}
}

func TestSearchCoursesKeepsCatalogOrder(t *testing.T) {
	m := newTestMatcher()
	courses := []model.Course{
		{ID: "mba", Title: "MBA", Group: "SBS"},
		{ID: "mbbs", Title: "MBBS", Group: "SMSR"},
		{ID: "bba", Title: "BBA", Group: "SBS"},
	}

	got := m.SearchCourses(courses, "business")
	if len(got) != 2 || got[0].ID != "mba" || got[1].ID != "bba" {
		t.Fatalf("unexpected result:\n%s", spew.Sdump(got))
	}

	if all := m.SearchCourses(courses, ""); len(all) != len(courses) {
		t.Fatalf("empty query should return all, got %d", len(all))
	}
}

func TestWithAbbreviations(t *testing.T) {
	m := NewMatcher(nil, nil).WithAbbreviations(map[string][]string{
		"qq": {"quantum"},
	})
	c := model.Course{ID: "x1", Title: "Quantum Physics", Group: "SBSR"}

	if !m.MatchesQuery(c, "qq") {
		t.Error("custom abbreviation should match")
	}
	if m.MatchesQuery(model.Course{ID: "x2", Title: "Zoology", Group: "SBSR"}, "qq") {
		t.Error("custom abbreviation should not match unrelated title")
	}
}
