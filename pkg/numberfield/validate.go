package numberfield

import (
	"strconv"
	"strings"
)

// IsValidDecimal reports whether candidate is an acceptable decimal number
// under cfg. With localeFormatted the candidate uses cfg's separators (display
// text); otherwise it is a canonical string with '.' as decimal point.
func IsValidDecimal(candidate string, cfg Config, localeFormatted bool) bool {
	return check(candidate, cfg, localeFormatted, false) == nil
}

// IsValidInteger is IsValidDecimal for integer-only input.
func IsValidInteger(candidate string, cfg Config, localeFormatted bool) bool {
	return check(candidate, cfg, localeFormatted, true) == nil
}

// IsValid dispatches to IsValidDecimal or IsValidInteger depending on
// cfg.DecimalsAllowed.
func IsValid(candidate string, cfg Config, localeFormatted bool) bool {
	return Check(candidate, cfg, localeFormatted) == nil
}

// Check is IsValid returning the reason of a rejection: ErrUnparseable,
// ErrOutOfRange or ErrPatternMismatch.
func Check(candidate string, cfg Config, localeFormatted bool) error {
	return check(candidate, cfg, localeFormatted, cfg.IntegerOnly())
}

func check(candidate string, cfg Config, localeFormatted, integerOnly bool) error {
	// "-" -> "-0": a lone sign is a valid start of a negative number
	normalized := candidate
	if normalized == string(negativePrefix) {
		normalized += "0"
	}

	patternCfg := cfg
	if localeFormatted {
		normalized = NonLocalized(normalized, cfg)
	} else {
		patternCfg = cfg.canonical()
	}

	if _, err := CheckBounds(normalized, cfg); err != nil {
		return err
	}
	if !BuildPattern(patternCfg, integerOnly).MatchString(candidate) {
		return ErrPatternMismatch
	}
	return nil
}

// CheckBounds parses a canonical number and checks it against
// [cfg.MinValue, cfg.MaxValue]. Comparisons use float64 semantics, so NaN
// is never within bounds.
func CheckBounds(canonical string, cfg Config) (float64, error) {
	v, err := strconv.ParseFloat(canonical, 64)
	if err != nil {
		return 0, ErrUnparseable
	}
	if !WithinBounds(v, cfg) {
		return v, ErrOutOfRange
	}
	return v, nil
}

// WithinBounds reports whether v lies in [cfg.MinValue, cfg.MaxValue].
func WithinBounds(v float64, cfg Config) bool {
	return v >= cfg.MinValue && v <= cfg.MaxValue
}

// NonLocalized strips grouping separators from display text and replaces
// the decimal separator with '.', e.g. "2.546,99" -> "2546.99" for a German
// policy.
func NonLocalized(display string, cfg Config) string {
	if cfg.GroupingSeparator != 0 {
		display = strings.ReplaceAll(display, string(cfg.GroupingSeparator), "")
	}
	if cfg.DecimalSeparator != 0 && cfg.DecimalSeparator != canonicalDecimal {
		display = strings.ReplaceAll(display, string(cfg.DecimalSeparator), string(canonicalDecimal))
	}
	return display
}

// Localized is the inverse of NonLocalized for the decimal point only: it
// replaces '.' with cfg.DecimalSeparator and adds no grouping.
func Localized(canonical string, cfg Config) string {
	if cfg.DecimalSeparator == 0 || cfg.DecimalSeparator == canonicalDecimal {
		return canonical
	}
	return strings.ReplaceAll(canonical, string(canonicalDecimal), string(cfg.DecimalSeparator))
}
