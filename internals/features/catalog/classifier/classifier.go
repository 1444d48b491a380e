// file: internals/features/catalog/classifier/classifier.go
package classifier

import (
	_ "embed"
	"fmt"
	"os"
	"strings"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"studyfee_backend/internals/features/catalog/model"
)

//go:embed rules.yaml
var defaultRulesYAML []byte

// Rule: cocok kalau Group (jika diisi) sama dan salah satu pola ketemu
// di judul lowercase. Rule tanpa pola = cocok untuk semua judul di group itu.
type Rule struct {
	Group    string   `yaml:"group,omitempty"`
	Contains []string `yaml:"contains,omitempty"`
	Prefixes []string `yaml:"prefixes,omitempty"`
	Value    string   `yaml:"value" validate:"required"`
}

func (r Rule) matches(group, lowerTitle string) bool {
	if r.Group != "" && r.Group != group {
		return false
	}
	if len(r.Contains) == 0 && len(r.Prefixes) == 0 {
		return true
	}
	for _, p := range r.Prefixes {
		if strings.HasPrefix(lowerTitle, p) {
			return true
		}
	}
	for _, s := range r.Contains {
		if strings.Contains(lowerTitle, s) {
			return true
		}
	}
	return false
}

// Rules tabel klasifikasi, urut prioritas.
type Rules struct {
	ProgrammeLevels       []Rule `yaml:"programme_levels" validate:"dive"`
	DefaultProgrammeLevel string `yaml:"default_programme_level" validate:"required"`
	Streams               []Rule `yaml:"streams" validate:"dive"`
	DefaultStream         string `yaml:"default_stream" validate:"required"`
}

// ParseRules decode + validasi tabel rule dari YAML.
func ParseRules(data []byte) (*Rules, error) {
	var rules Rules
	if err := yaml.Unmarshal(data, &rules); err != nil {
		return nil, fmt.Errorf("failed to parse rules: %w", err)
	}
	if err := validator.New().Struct(rules); err != nil {
		return nil, fmt.Errorf("invalid rules: %w", err)
	}
	if !model.ProgrammeLevel(rules.DefaultProgrammeLevel).Valid() {
		return nil, fmt.Errorf("invalid rules: unknown default programme level %q", rules.DefaultProgrammeLevel)
	}
	for i, r := range rules.ProgrammeLevels {
		if !model.ProgrammeLevel(r.Value).Valid() {
			return nil, fmt.Errorf("invalid rules: programme_levels[%d] has unknown level %q", i, r.Value)
		}
	}
	return &rules, nil
}

// LoadRulesFile baca rule dari file; path kosong = tabel bawaan.
func LoadRulesFile(path string) (*Rules, error) {
	if path == "" {
		return ParseRules(defaultRulesYAML)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read rules file: %w", err)
	}
	return ParseRules(data)
}

// Classifier turunan programme level & stream dari course.
type Classifier struct {
	rules *Rules
}

func New(rules *Rules) *Classifier {
	return &Classifier{rules: rules}
}

// Default pakai rules.yaml yang di-embed. Panic kalau file bawaan rusak.
func Default() *Classifier {
	rules, err := ParseRules(defaultRulesYAML)
	if err != nil {
		panic(err)
	}
	return New(rules)
}

func (c *Classifier) ProgrammeLevel(course model.Course) model.ProgrammeLevel {
	t := strings.ToLower(course.Title)
	for _, r := range c.rules.ProgrammeLevels {
		if r.matches(course.Group, t) {
			return model.ProgrammeLevel(r.Value)
		}
	}
	return model.ProgrammeLevel(c.rules.DefaultProgrammeLevel)
}

func (c *Classifier) Stream(course model.Course) string {
	t := strings.ToLower(course.Title)
	for _, r := range c.rules.Streams {
		if r.matches(course.Group, t) {
			return r.Value
		}
	}
	return c.rules.DefaultStream
}
