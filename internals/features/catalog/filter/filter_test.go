package filter

import (
	"slices"
	"testing"

	"github.com/davecgh/go-spew/spew"

	"studyfee_backend/internals/features/catalog/classifier"
	"studyfee_backend/internals/features/catalog/model"
	"studyfee_backend/internals/features/catalog/search"
)

var fixtureSchools = map[string]string{
	"SSET":     "Sharda School of Engineering & Technology",
	"SBS":      "Sharda School of Business Studies",
	"SMSR":     "Sharda School of Medical Sciences & Research",
	"SOL":      "Sharda School of Law",
	"Pharmacy": "School of Pharmacy",
}

func fixtureCourses() []model.Course {
	return []model.Course{
		{ID: "btech-cse", Title: "B.Tech CSE", Group: "SSET"},
		{ID: "mba", Title: "MBA", Group: "SBS"},
		{ID: "mtech-ds", Title: "M.Tech Data Science", Group: "SSET"},
		{ID: "bba", Title: "BBA", Group: "SBS"},
		{ID: "mbbs", Title: "MBBS", Group: "SMSR"},
		{ID: "bds", Title: "BDS", Group: "SMSR"},
		{ID: "md-gm", Title: "M.D. General Medicine", Group: "SMSR"},
		{ID: "dpharm", Title: "D.Pharm", Group: "Pharmacy"},
		{ID: "bpharm", Title: "B.Pharm", Group: "Pharmacy"},
		{ID: "ballb", Title: "B.A. LL.B.", Group: "SOL"},
		{ID: "llm", Title: "LL.M.", Group: "SOL"},
		{ID: "cert-cyber", Title: "Certificate in Cyber Security", Group: "SSET"},
	}
}

func newFixtureFilter() *Filter {
	cls := classifier.Default()
	return New(cls, search.NewMatcher(fixtureSchools, cls), fixtureSchools)
}

func ids(courses []model.Course) []string {
	out := make([]string, 0, len(courses))
	for _, c := range courses {
		out = append(out, c.ID)
	}
	return out
}

func TestApplyGroupsInFirstSeenOrder(t *testing.T) {
	f := newFixtureFilter()
	res := f.Apply(fixtureCourses(), Criteria{Programme: model.ProgrammeAll, Stream: model.StreamAll})

	var codes []string
	for _, g := range res.Groups {
		codes = append(codes, g.Code)
	}
	wantCodes := []string{"SSET", "SBS", "SMSR", "Pharmacy", "SOL"}
	if !slices.Equal(codes, wantCodes) {
		t.Fatalf("group order = %v, want %v", codes, wantCodes)
	}

	if got := ids(res.Get("SSET")); !slices.Equal(got, []string{"btech-cse", "mtech-ds", "cert-cyber"}) {
		t.Errorf("SSET courses = %v", got)
	}
	if got := ids(res.Get("Pharmacy")); !slices.Equal(got, []string{"bpharm"}) {
		t.Errorf("Pharmacy courses = %v (diploma must be excluded)", got)
	}
	if res.Groups[0].SchoolName != fixtureSchools["SSET"] {
		t.Errorf("school name = %q", res.Groups[0].SchoolName)
	}
	if len(res.Flatten()) != 11 {
		t.Errorf("flatten len = %d, want 11", len(res.Flatten()))
	}
}

func TestApplyProgrammeStreamQuery(t *testing.T) {
	f := newFixtureFilter()
	courses := fixtureCourses()

	cases := []struct {
		name string
		crit Criteria
		want []string
	}{
		{"post graduate", Criteria{Programme: model.ProgrammePostGraduate, Stream: model.StreamAll}, []string{"mba", "mtech-ds", "md-gm", "llm"}},
		{"graduate medical", Criteria{Programme: model.ProgrammeGraduate, Stream: "Medical"}, []string{"mbbs"}},
		{"stream only", Criteria{Programme: model.ProgrammeAll, Stream: "Dental"}, []string{"bds"}},
		{"integrated", Criteria{Programme: model.ProgrammeIntegrated}, []string{"ballb"}},
		{"certificate", Criteria{Programme: model.ProgrammeCertificate}, []string{"cert-cyber"}},
		{"query on filtered set", Criteria{Query: "data", Programme: model.ProgrammePostGraduate, Stream: "Engineering"}, []string{"mtech-ds"}},
		{"query no hits", Criteria{Query: "xyzq"}, nil},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			res := f.Apply(courses, tc.crit)
			got := ids(res.Flatten())
			a := slices.Clone(got)
			b := slices.Clone(tc.want)
			slices.Sort(a)
			slices.Sort(b)
			if !slices.Equal(a, b) {
				t.Errorf("got %v, want %v\n%s", got, tc.want, spew.Sdump(res))
			}
		})
	}
}

func TestDiplomaNeverVisible(t *testing.T) {
	f := newFixtureFilter()
	courses := fixtureCourses()

	programmes := []model.ProgrammeLevel{model.ProgrammeDiploma}
	for _, opt := range ProgrammeOptions() {
		programmes = append(programmes, opt.Value)
	}
	streams := append(f.StreamOptions(courses, model.ProgrammeAll), "Pharmacy")
	queries := []string{"", "pharm", "d pharm", "dpharm", "diploma"}

	for _, p := range programmes {
		for _, s := range streams {
			for _, q := range queries {
				res := f.Apply(courses, Criteria{Query: q, Programme: p, Stream: s})
				if slices.Contains(ids(res.Flatten()), "dpharm") {
					t.Fatalf("diploma course visible for programme=%s stream=%s query=%q", p, s, q)
				}
			}
		}
	}
}

func TestStreamOptions(t *testing.T) {
	f := newFixtureFilter()
	courses := fixtureCourses()

	cases := []struct {
		programme model.ProgrammeLevel
		want      []string
	}{
		{model.ProgrammeAll, []string{"all", "Dental", "Engineering", "Law", "Management", "Medical", "Pharmacy"}},
		{model.ProgrammePostGraduate, []string{"all", "Engineering", "Law", "Management", "Medical"}},
		{model.ProgrammeGraduate, []string{"all", "Dental", "Engineering", "Management", "Medical", "Pharmacy"}},
		{model.ProgrammeDiploma, []string{"all"}},
	}
	for _, tc := range cases {
		if got := f.StreamOptions(courses, tc.programme); !slices.Equal(got, tc.want) {
			t.Errorf("StreamOptions(%s) = %v, want %v", tc.programme, got, tc.want)
		}
	}
}

func TestStateResetsStreamOnProgrammeChange(t *testing.T) {
	f := newFixtureFilter()
	st := NewState(f, fixtureCourses())

	st.SetProgramme(model.ProgrammePostGraduate)
	if !st.SetStream("Law") {
		t.Fatal("Law should be selectable for post_graduate")
	}

	if reset := st.SetProgramme(model.ProgrammeGraduate); !reset {
		t.Error("expected stream reset")
	}
	if st.Stream() != model.StreamAll {
		t.Errorf("stream = %q, want all", st.Stream())
	}

	// stream yang masih tersedia tidak di-reset
	st.SetProgramme(model.ProgrammePostGraduate)
	st.SetStream("Engineering")
	if reset := st.SetProgramme(model.ProgrammeGraduate); reset {
		t.Error("Engineering exists for graduate, should not reset")
	}
	if st.Stream() != "Engineering" {
		t.Errorf("stream = %q, want Engineering", st.Stream())
	}
}

func TestStateSetProgrammeClearsQuery(t *testing.T) {
	st := NewState(newFixtureFilter(), fixtureCourses())
	st.SetQuery("pharm")
	if got := ids(st.Results().Flatten()); !slices.Equal(got, []string{"bpharm"}) {
		t.Fatalf("results = %v", got)
	}

	st.SetProgramme(model.ProgrammeCertificate)
	if st.Query() != "" {
		t.Errorf("query = %q, want empty", st.Query())
	}
	if got := ids(st.Results().Flatten()); !slices.Equal(got, []string{"cert-cyber"}) {
		t.Errorf("results = %v", got)
	}
}

func TestStateRejectsUnknownStream(t *testing.T) {
	st := NewState(newFixtureFilter(), fixtureCourses())
	if st.SetStream("Astrology") {
		t.Error("unknown stream accepted")
	}
	if st.Stream() != model.StreamAll {
		t.Errorf("stream = %q, want all", st.Stream())
	}
}
