package numberfield

import (
	"math"

	"golang.org/x/text/language"

	"github.com/dmitrymomot/numberfield/pkg/locale"
)

// Settings are process-wide field defaults read from the environment with
// config.Load.
type Settings struct {
	Locale                      string  `env:"NUMBERFIELD_LOCALE"`
	NegativesAllowed            bool    `env:"NUMBERFIELD_NEGATIVES_ALLOWED" envDefault:"true"`
	DecimalsAllowed             bool    `env:"NUMBERFIELD_DECIMALS_ALLOWED" envDefault:"true"`
	GroupingUsed                bool    `env:"NUMBERFIELD_GROUPING_USED" envDefault:"true"`
	DecimalPrecision            int     `env:"NUMBERFIELD_DECIMAL_PRECISION" envDefault:"2"`
	GroupingSize                int     `env:"NUMBERFIELD_GROUPING_SIZE" envDefault:"3"`
	MinimumFractionDigits       int     `env:"NUMBERFIELD_MIN_FRACTION_DIGITS" envDefault:"0"`
	DecimalSeparatorAlwaysShown bool    `env:"NUMBERFIELD_DECIMAL_SEPARATOR_ALWAYS_SHOWN" envDefault:"false"`
	MinValue                    float64 `env:"NUMBERFIELD_MIN_VALUE" envDefault:"-Inf"`
	MaxValue                    float64 `env:"NUMBERFIELD_MAX_VALUE" envDefault:"+Inf"`
	ErrorText                   string  `env:"NUMBERFIELD_ERROR_TEXT" envDefault:"Invalid number"`
}

// Tag returns the configured locale, or the host locale when unset or
// unparsable.
func (s Settings) Tag() language.Tag {
	if s.Locale == "" {
		return locale.Host()
	}
	tag, err := language.Parse(s.Locale)
	if err != nil {
		return locale.Host()
	}
	return tag
}

// Config builds a policy from the settings. Out-of-range values follow the
// setter rules and keep the defaults.
func (s Settings) Config() Config {
	cfg := ConfigFor(s.Tag())
	cfg.NegativesAllowed = s.NegativesAllowed
	cfg.GroupingUsed = s.GroupingUsed
	cfg.DecimalSeparatorAlwaysShown = s.DecimalSeparatorAlwaysShown
	cfg.SetDecimalsAllowed(s.DecimalsAllowed)
	cfg.SetDecimalPrecision(s.DecimalPrecision)
	cfg.SetGroupingSize(s.GroupingSize)
	cfg.SetMinimumFractionDigits(s.MinimumFractionDigits)
	if !math.IsNaN(s.MinValue) {
		cfg.MinValue = s.MinValue
	}
	if !math.IsNaN(s.MaxValue) {
		cfg.MaxValue = s.MaxValue
	}
	return cfg
}

// FieldOptions returns the options that apply the settings to a new Field.
func (s Settings) FieldOptions() []Option {
	opts := []Option{WithConfig(s.Config())}
	if s.ErrorText != "" {
		opts = append(opts, WithErrorText(s.ErrorText))
	}
	return opts
}
