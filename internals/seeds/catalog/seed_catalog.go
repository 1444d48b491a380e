// file: internals/seeds/catalog/seed_catalog.go
package catalog

import (
	_ "embed"
	"errors"
	"fmt"
	"log"
	"os"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"studyfee_backend/internals/features/catalog/model"
	helper "studyfee_backend/internals/helpers"
)

//go:embed data_catalog.yaml
var defaultCatalogYAML []byte

var (
	ErrEmptyCatalog      = errors.New("catalog has no courses")
	ErrDuplicateCourseID = errors.New("duplicate course id")
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterStructValidation(func(sl validator.StructLevel) {
		c := sl.Current().Interface().(model.Course)
		if len(c.Years) != c.DurationYears {
			sl.ReportError(c.Years, "Years", "years", "len_eq_duration", fmt.Sprint(c.DurationYears))
		}
	}, model.Course{})
	return v
}

// Load decode YAML catalog lalu validasi. Semua pelanggaran dikumpulkan
// supaya satu kali load langsung kelihatan semua course yang rusak.
func Load(data []byte) (*model.Catalog, error) {
	var cat model.Catalog
	if err := yaml.Unmarshal(data, &cat); err != nil {
		return nil, fmt.Errorf("failed to decode catalog: %w", err)
	}
	if len(cat.Courses) == 0 {
		return nil, ErrEmptyCatalog
	}

	var errs []error
	if err := validate.Struct(cat.MandatoryFees); err != nil {
		errs = append(errs, fmt.Errorf("mandatory_fees: %w", err))
	}

	seen := make(map[string]struct{}, len(cat.Courses))
	for i := range cat.Courses {
		// id kosong diturunkan dari title
		if cat.Courses[i].ID == "" && cat.Courses[i].Title != "" {
			cat.Courses[i].ID = helper.UniqueSlug(helper.Slugify(cat.Courses[i].Title, 64, "course"), seen)
		}
		c := cat.Courses[i]
		if err := validate.Struct(c); err != nil {
			errs = append(errs, fmt.Errorf("course[%d] %q: %w", i, c.ID, err))
		}
		if _, dup := seen[c.ID]; dup && c.ID != "" {
			errs = append(errs, fmt.Errorf("course[%d] %q: %w", i, c.ID, ErrDuplicateCourseID))
		}
		seen[c.ID] = struct{}{}

		if _, ok := cat.Schools[c.Group]; !ok {
			log.Printf("[WARN] ⚠️ course %q: school %q tidak ada di tabel schools", c.ID, c.Group)
		}
	}
	if len(errs) > 0 {
		return nil, errors.Join(errs...)
	}

	log.Printf("[INFO] ✅ Catalog dimuat: %d course, %d school", len(cat.Courses), len(cat.Schools))
	return &cat, nil
}

// LoadFile path kosong = catalog bawaan (embed).
func LoadFile(path string) (*model.Catalog, error) {
	if path == "" {
		return Default()
	}
	log.Println("📥 Membaca file catalog:", path)
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog file: %w", err)
	}
	return Load(data)
}

func Default() (*model.Catalog, error) {
	return Load(defaultCatalogYAML)
}
