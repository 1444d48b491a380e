// file: internals/features/catalog/filter/state.go
package filter

import (
	"slices"

	"studyfee_backend/internals/features/catalog/model"
)

// State pilihan filter aktif satu user.
// Invariant: stream yang dipilih selalu ada di StreamOptions().
type State struct {
	filter  *Filter
	courses []model.Course

	query         string
	programme     model.ProgrammeLevel
	stream        string
	streamOptions []string
}

func NewState(f *Filter, courses []model.Course) *State {
	s := &State{
		filter:    f,
		courses:   courses,
		programme: model.ProgrammeAll,
		stream:    model.StreamAll,
	}
	s.streamOptions = f.StreamOptions(courses, s.programme)
	return s
}

func (s *State) Query() string                   { return s.query }
func (s *State) Programme() model.ProgrammeLevel { return s.programme }
func (s *State) Stream() string                  { return s.stream }
func (s *State) StreamOptions() []string         { return slices.Clone(s.streamOptions) }

func (s *State) SetQuery(q string) { s.query = q }

// SetProgramme hitung ulang opsi stream, kosongkan query, dan reset stream
// ke "all" kalau sudah tidak tersedia. Return true kalau stream di-reset.
func (s *State) SetProgramme(p model.ProgrammeLevel) bool {
	if p == "" {
		p = model.ProgrammeAll
	}
	s.programme = p
	s.query = ""
	s.streamOptions = s.filter.StreamOptions(s.courses, p)

	if !slices.Contains(s.streamOptions, s.stream) {
		s.stream = model.StreamAll
		return true
	}
	return false
}

// SetStream nilai di luar opsi jatuh ke "all". Return false kalau ditolak.
func (s *State) SetStream(stream string) bool {
	if !slices.Contains(s.streamOptions, stream) {
		s.stream = model.StreamAll
		return false
	}
	s.stream = stream
	return true
}

func (s *State) Criteria() Criteria {
	return Criteria{Query: s.query, Programme: s.programme, Stream: s.stream}
}

func (s *State) Results() Result {
	return s.filter.Apply(s.courses, s.Criteria())
}
