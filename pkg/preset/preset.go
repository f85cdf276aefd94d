package preset

import (
	"bytes"
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"sort"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"

	"github.com/dmitrymomot/numberfield/pkg/locale"
	"github.com/dmitrymomot/numberfield/pkg/numberfield"
)

var (
	// ErrUnknownPreset is returned when a preset name is not defined.
	ErrUnknownPreset = errors.New("unknown preset")
	// ErrInvalidPreset is returned when a preset document cannot be used.
	ErrInvalidPreset = errors.New("invalid preset")
)

// Preset is a named number field policy. Unset fields keep the defaults of
// the preset's locale; numeric settings follow the Config setter rules, so a
// decimal_precision outside [1,16] is ignored.
type Preset struct {
	Locale                      string   `yaml:"locale" json:"locale,omitempty"`
	DecimalSeparator            string   `yaml:"decimal_separator" json:"decimal_separator,omitempty"`
	GroupingSeparator           string   `yaml:"grouping_separator" json:"grouping_separator,omitempty"`
	DecimalPrecision            *int     `yaml:"decimal_precision" json:"decimal_precision,omitempty"`
	GroupingSize                *int     `yaml:"grouping_size" json:"grouping_size,omitempty"`
	MinimumFractionDigits       *int     `yaml:"minimum_fraction_digits" json:"minimum_fraction_digits,omitempty"`
	DecimalSeparatorAlwaysShown *bool    `yaml:"decimal_separator_always_shown" json:"decimal_separator_always_shown,omitempty"`
	NegativesAllowed            *bool    `yaml:"negatives_allowed" json:"negatives_allowed,omitempty"`
	DecimalsAllowed             *bool    `yaml:"decimals_allowed" json:"decimals_allowed,omitempty"`
	GroupingUsed                *bool    `yaml:"grouping_used" json:"grouping_used,omitempty"`
	MinValue                    *float64 `yaml:"min_value" json:"min_value,omitempty"`
	MaxValue                    *float64 `yaml:"max_value" json:"max_value,omitempty"`
}

type document struct {
	Presets map[string]Preset `yaml:"presets"`
}

// Tag returns the preset locale, or locale.DefaultTag when unset.
func (p Preset) Tag() language.Tag {
	if p.Locale == "" {
		return locale.DefaultTag
	}
	tag, err := language.Parse(p.Locale)
	if err != nil {
		return locale.DefaultTag
	}
	return tag
}

// Config builds the field policy described by the preset.
func (p Preset) Config() numberfield.Config {
	cfg := numberfield.ConfigFor(p.Tag())
	if r, ok := singleRune(p.DecimalSeparator); ok {
		cfg.DecimalSeparator = r
	}
	if r, ok := singleRune(p.GroupingSeparator); ok {
		cfg.GroupingSeparator = r
	}
	if p.NegativesAllowed != nil {
		cfg.NegativesAllowed = *p.NegativesAllowed
	}
	if p.GroupingUsed != nil {
		cfg.GroupingUsed = *p.GroupingUsed
	}
	if p.DecimalSeparatorAlwaysShown != nil {
		cfg.DecimalSeparatorAlwaysShown = *p.DecimalSeparatorAlwaysShown
	}
	if p.DecimalPrecision != nil {
		cfg.SetDecimalPrecision(*p.DecimalPrecision)
	}
	if p.GroupingSize != nil {
		cfg.SetGroupingSize(*p.GroupingSize)
	}
	// order matters: disallowing decimals resets the minimum fraction digits
	if p.DecimalsAllowed != nil {
		cfg.SetDecimalsAllowed(*p.DecimalsAllowed)
	}
	if p.MinimumFractionDigits != nil {
		cfg.SetMinimumFractionDigits(*p.MinimumFractionDigits)
	}
	if p.MinValue != nil {
		cfg.MinValue = *p.MinValue
	}
	if p.MaxValue != nil {
		cfg.MaxValue = *p.MaxValue
	}
	return cfg
}

// Validate reports whether the preset can build a usable policy: a parsable
// locale and single-character separators that differ from each other and
// from digits and the minus sign.
func (p Preset) Validate() error {
	if p.Locale != "" {
		if _, err := language.Parse(p.Locale); err != nil {
			return fmt.Errorf("locale %q: %w", p.Locale, err)
		}
	}
	for name, sep := range map[string]string{
		"decimal_separator":  p.DecimalSeparator,
		"grouping_separator": p.GroupingSeparator,
	} {
		if sep == "" {
			continue
		}
		r, ok := singleRune(sep)
		if !ok {
			return fmt.Errorf("%s %q must be a single character", name, sep)
		}
		if r == '-' || (r >= '0' && r <= '9') {
			return fmt.Errorf("%s %q cannot be a digit or the minus sign", name, sep)
		}
	}
	cfg := p.Config()
	if cfg.DecimalSeparator == cfg.GroupingSeparator {
		return fmt.Errorf("decimal and grouping separators are both %q", cfg.DecimalSeparator)
	}
	return nil
}

func singleRune(s string) (rune, bool) {
	if utf8.RuneCountInString(s) != 1 {
		return 0, false
	}
	r, _ := utf8.DecodeRuneInString(s)
	return r, r != utf8.RuneError
}

// Set is an immutable collection of named presets.
type Set struct {
	presets map[string]Preset
}

//go:embed presets.yaml
var embedded embed.FS

var defaultSet = mustLoadEmbedded()

func mustLoadEmbedded() *Set {
	s, err := LoadFromFS(embedded, "presets.yaml")
	if err != nil {
		panic(fmt.Sprintf("preset: embedded presets: %v", err))
	}
	return s
}

// Default returns the presets built into the package.
func Default() *Set {
	return defaultSet
}

// Parse reads a presets document. Unknown keys are rejected.
func Parse(data []byte) (*Set, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var doc document
	if err := dec.Decode(&doc); err != nil {
		return nil, errors.Join(ErrInvalidPreset, err)
	}
	if len(doc.Presets) == 0 {
		return nil, fmt.Errorf("%w: no presets defined", ErrInvalidPreset)
	}

	set := &Set{presets: make(map[string]Preset, len(doc.Presets))}
	for name, p := range doc.Presets {
		key := strings.TrimSpace(name)
		if key == "" {
			return nil, fmt.Errorf("%w: preset name cannot be blank", ErrInvalidPreset)
		}
		if err := p.Validate(); err != nil {
			return nil, fmt.Errorf("%w: preset %q: %w", ErrInvalidPreset, key, err)
		}
		set.presets[key] = p
	}
	return set, nil
}

// LoadFile reads a presets document from path.
func LoadFile(path string) (*Set, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read presets %s: %w", path, err)
	}
	return Parse(data)
}

// LoadFromFS reads a presets document from fsys.
func LoadFromFS(fsys fs.FS, path string) (*Set, error) {
	data, err := fs.ReadFile(fsys, path)
	if err != nil {
		return nil, fmt.Errorf("read presets %s: %w", path, err)
	}
	return Parse(data)
}

// Names returns the preset names in sorted order.
func (s *Set) Names() []string {
	if s == nil {
		return nil
	}
	names := make([]string, 0, len(s.presets))
	for name := range s.presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Get returns the preset called name.
func (s *Set) Get(name string) (Preset, bool) {
	if s == nil {
		return Preset{}, false
	}
	p, ok := s.presets[name]
	return p, ok
}

// Config returns the field policy of the preset called name.
func (s *Set) Config(name string) (numberfield.Config, error) {
	p, ok := s.Get(name)
	if !ok {
		return numberfield.Config{}, fmt.Errorf("%w: %q", ErrUnknownPreset, name)
	}
	return p.Config(), nil
}

// Merge returns a set with the presets of s overlaid by those of other.
func (s *Set) Merge(other *Set) *Set {
	merged := &Set{presets: make(map[string]Preset)}
	for _, src := range []*Set{s, other} {
		if src == nil {
			continue
		}
		for name, p := range src.presets {
			merged.presets[name] = p
		}
	}
	return merged
}
