// file: internals/features/catalog/model/course_model.go
package model

// --- ENUM programme_level ----------------------------------------------------
type ProgrammeLevel string

const (
	ProgrammeCertificate  ProgrammeLevel = "certificate"
	ProgrammeGraduate     ProgrammeLevel = "graduate"
	ProgrammePostGraduate ProgrammeLevel = "post_graduate"
	ProgrammeDiploma      ProgrammeLevel = "diploma"
	ProgrammeIntegrated   ProgrammeLevel = "integrated"

	// sentinel filter, bukan level milik course
	ProgrammeAll ProgrammeLevel = "all"
)

// StreamAll sentinel untuk filter stream.
const StreamAll = "all"

// Valid true kalau level termasuk enum tertutup (tanpa sentinel "all").
func (p ProgrammeLevel) Valid() bool {
	switch p {
	case ProgrammeCertificate, ProgrammeGraduate, ProgrammePostGraduate,
		ProgrammeDiploma, ProgrammeIntegrated:
		return true
	}
	return false
}

// --- MODEL course ------------------------------------------------------------
// Immutable setelah catalog di-load.
type Course struct {
	ID            string    `json:"id" yaml:"id" validate:"required"`
	Title         string    `json:"title" yaml:"title" validate:"required"`
	Group         string    `json:"group" yaml:"group" validate:"required"`
	DurationYears int       `json:"duration_years" yaml:"duration_years" validate:"min=1"`
	Years         []float64 `json:"years" yaml:"years" validate:"required,dive,min=0"`
	Scholarships  []int     `json:"scholarships" yaml:"scholarships" validate:"omitempty,dive,gt=0,lte=100"`
	Notes         string    `json:"notes,omitempty" yaml:"notes,omitempty"`
}

// MandatoryFees biaya flat per tahun, tidak kena scholarship.
type MandatoryFees struct {
	FirstYear       float64 `json:"first_year" yaml:"first_year" validate:"min=0"`
	SubsequentYears float64 `json:"subsequent_years" yaml:"subsequent_years" validate:"min=0"`
}

// ForYear: year 1-based.
func (m MandatoryFees) ForYear(year int) float64 {
	if year == 1 {
		return m.FirstYear
	}
	return m.SubsequentYears
}

// Catalog = snapshot statis: courses + fees + tabel nama school.
type Catalog struct {
	MandatoryFees MandatoryFees     `json:"mandatory_fees" yaml:"mandatory_fees"`
	Schools       map[string]string `json:"schools" yaml:"schools"`
	Courses       []Course          `json:"courses" yaml:"courses"`
}

// SchoolName fallback ke kode group kalau tidak ada di tabel.
func (c *Catalog) SchoolName(group string) string {
	if name, ok := c.Schools[group]; ok && name != "" {
		return name
	}
	return group
}

// FindByID linear scan; ukuran catalog kecil.
func (c *Catalog) FindByID(id string) (Course, bool) {
	for _, course := range c.Courses {
		if course.ID == id {
			return course, true
		}
	}
	return Course{}, false
}
