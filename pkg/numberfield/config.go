package numberfield

import (
	"math"

	"golang.org/x/text/language"

	"github.com/dmitrymomot/numberfield/pkg/locale"
)

const (
	// MinDecimalPrecision and MaxDecimalPrecision bound DecimalPrecision.
	MinDecimalPrecision = 1
	MaxDecimalPrecision = 16

	DefaultDecimalPrecision = 2
	DefaultGroupingSize     = 3

	negativePrefix   = '-'
	canonicalDecimal = '.'
)

// Config is the format policy of a single number field.
//
// A Config is a plain value: validators and formatters receive a copy, so a
// check that needs to bend a setting (for example relaxing MinValue while the
// user is typing) works on its own copy and never touches the field's policy.
// The zero value has no separators; start from DefaultConfig or ConfigFor.
type Config struct {
	NegativesAllowed            bool
	DecimalsAllowed             bool
	GroupingUsed                bool
	DecimalSeparator            rune
	GroupingSeparator           rune
	DecimalPrecision            int
	GroupingSize                int
	MinimumFractionDigits       int
	DecimalSeparatorAlwaysShown bool
	MinValue                    float64
	MaxValue                    float64
}

// DefaultConfig returns the default policy with the separators of the host
// locale.
func DefaultConfig() Config {
	return ConfigFor(locale.Host())
}

// ConfigFor returns the default policy with the separators of tag.
func ConfigFor(tag language.Tag) Config {
	symbols := locale.SymbolsFor(tag)
	return Config{
		NegativesAllowed:  true,
		DecimalsAllowed:   true,
		GroupingUsed:      true,
		DecimalSeparator:  symbols.Decimal,
		GroupingSeparator: symbols.Grouping,
		DecimalPrecision:  DefaultDecimalPrecision,
		GroupingSize:      DefaultGroupingSize,
		MinValue:          math.Inf(-1),
		MaxValue:          math.Inf(1),
	}
}

// SetDecimalPrecision sets the maximum number of fraction digits accepted
// while typing. Values outside [MinDecimalPrecision, MaxDecimalPrecision] are
// ignored.
func (c *Config) SetDecimalPrecision(precision int) {
	if precision >= MinDecimalPrecision && precision <= MaxDecimalPrecision {
		c.DecimalPrecision = precision
	}
}

// SetDecimalsAllowed toggles decimal input. Disallowing decimals also resets
// MinimumFractionDigits to 0.
func (c *Config) SetDecimalsAllowed(allowed bool) {
	c.DecimalsAllowed = allowed
	if !allowed {
		c.MinimumFractionDigits = 0
	}
}

// SetMinimumFractionDigits sets the number of fraction digits always
// rendered. Negative values are ignored, and the value stays 0 while decimals
// are not allowed.
func (c *Config) SetMinimumFractionDigits(digits int) {
	if digits < 0 {
		return
	}
	if !c.DecimalsAllowed {
		digits = 0
	}
	c.MinimumFractionDigits = digits
}

// SetGroupingSize sets the number of integer digits between grouping
// separators. Non-positive sizes are ignored.
func (c *Config) SetGroupingSize(size int) {
	if size > 0 {
		c.GroupingSize = size
	}
}

// SetBounds sets MinValue and MaxValue. The order is not checked: with
// min > max no value validates.
func (c *Config) SetBounds(min, max float64) {
	c.MinValue = min
	c.MaxValue = max
}

// IntegerOnly reports whether the policy accepts integers only.
func (c Config) IntegerOnly() bool {
	return !c.DecimalsAllowed
}

// minFractionDigits is the effective minimum honouring DecimalsAllowed.
func (c Config) minFractionDigits() int {
	if !c.DecimalsAllowed || c.MinimumFractionDigits < 0 {
		return 0
	}
	return c.MinimumFractionDigits
}

// maxFractionDigits is the number of fraction digits rendered at most.
func (c Config) maxFractionDigits() int {
	if !c.DecimalsAllowed {
		return 0
	}
	return max(c.DecimalPrecision, c.minFractionDigits())
}

// relaxedMin is the policy used for in-progress input: range is enforced at
// commit, so a partial value below MinValue must still be typeable.
func (c Config) relaxedMin() Config {
	c.MinValue = math.Inf(-1)
	return c
}

// canonical rewrites the separators to the canonical form: '.' as decimal
// point and no grouping.
func (c Config) canonical() Config {
	c.DecimalSeparator = canonicalDecimal
	c.GroupingUsed = false
	return c
}
