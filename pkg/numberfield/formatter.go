package numberfield

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
	"sync"

	"github.com/govalues/decimal"
)

// decimalFormat renders and parses numbers for one set of format settings.
// It is mutable and not safe for concurrent use on its own; Formatter owns
// one and serialises access to it.
type decimalFormat struct {
	groupingUsed         bool
	groupingSize         int
	minFractionDigits    int
	maxFractionDigits    int
	separatorAlwaysShown bool
	decimalSeparator     rune
	groupingSeparator    rune
}

func (f *decimalFormat) configure(cfg Config) {
	f.groupingUsed = cfg.GroupingUsed && cfg.GroupingSize > 0
	f.groupingSize = cfg.GroupingSize
	f.minFractionDigits = cfg.minFractionDigits()
	f.maxFractionDigits = cfg.maxFractionDigits()
	f.separatorAlwaysShown = cfg.DecimalSeparatorAlwaysShown
	f.decimalSeparator = cfg.DecimalSeparator
	f.groupingSeparator = cfg.GroupingSeparator
}

// format renders d rounded half-to-even to maxFractionDigits, with trailing
// fraction zeros trimmed down to minFractionDigits.
func (f *decimalFormat) format(d decimal.Decimal) string {
	plain := d.Round(f.maxFractionDigits).String()

	negative := strings.HasPrefix(plain, "-")
	plain = strings.TrimPrefix(plain, "-")

	intPart, fracPart, _ := strings.Cut(plain, ".")
	fracPart = strings.TrimRight(fracPart, "0")
	if len(fracPart) < f.minFractionDigits {
		fracPart += strings.Repeat("0", f.minFractionDigits-len(fracPart))
	}

	var b strings.Builder
	if negative && (strings.Trim(intPart, "0") != "" || strings.Trim(fracPart, "0") != "") {
		b.WriteRune(negativePrefix)
	}
	f.writeGrouped(&b, intPart)
	if fracPart != "" || f.separatorAlwaysShown {
		b.WriteRune(f.decimalSeparator)
		b.WriteString(fracPart)
	}
	return b.String()
}

func (f *decimalFormat) writeGrouped(b *strings.Builder, digits string) {
	if !f.groupingUsed || len(digits) <= f.groupingSize {
		b.WriteString(digits)
		return
	}
	lead := len(digits) % f.groupingSize
	if lead > 0 {
		b.WriteString(digits[:lead])
	}
	for i := lead; i < len(digits); i += f.groupingSize {
		if i > 0 {
			b.WriteRune(f.groupingSeparator)
		}
		b.WriteString(digits[i : i+f.groupingSize])
	}
}

// parse reads display text strictly: an optional leading sign, digits with
// grouping separators in the integer part, at most one decimal separator
// and fraction digits. Anything else is ErrUnparseable. The result is a
// canonical string.
func (f *decimalFormat) parse(display string) (string, error) {
	runes := []rune(display)

	var b strings.Builder
	i := 0
	if len(runes) > 0 && runes[0] == negativePrefix {
		b.WriteRune(negativePrefix)
		i++
	}

	digits := 0
	seenDecimal := false
	for ; i < len(runes); i++ {
		r := runes[i]
		switch {
		case r >= '0' && r <= '9':
			b.WriteRune(r)
			digits++
		case r == f.decimalSeparator && !seenDecimal:
			seenDecimal = true
			b.WriteRune(canonicalDecimal)
		case r == f.groupingSeparator && f.groupingUsed && !seenDecimal:
		default:
			return "", fmt.Errorf("%w: unexpected %q at position %d", ErrUnparseable, r, i)
		}
	}
	if digits == 0 {
		return "", fmt.Errorf("%w: no digits in %q", ErrUnparseable, display)
	}

	return canonicalize(b.String())
}

// canonicalize normalises a plain decimal numeral: leading zeros and
// trailing fraction zeros go, "-0" becomes "0". Numerals beyond the 19
// significant digits of decimal.Decimal go through float64, keeping the
// plain notation.
func canonicalize(numeral string) (string, error) {
	if strings.HasSuffix(numeral, ".") {
		numeral = strings.TrimSuffix(numeral, ".")
	}
	if strings.HasPrefix(numeral, ".") {
		numeral = "0" + numeral
	} else if strings.HasPrefix(numeral, "-.") {
		numeral = "-0" + numeral[1:]
	}

	var plain string
	if d, err := decimal.Parse(numeral); err == nil {
		plain = d.String()
	} else {
		v, ferr := strconv.ParseFloat(numeral, 64)
		if ferr != nil || math.IsInf(v, 0) {
			return "", errors.Join(ErrUnparseable, err)
		}
		plain = strconv.FormatFloat(v, 'f', -1, 64)
	}

	if strings.Contains(plain, ".") {
		plain = strings.TrimRight(plain, "0")
		plain = strings.TrimSuffix(plain, ".")
	}
	if plain == "-0" {
		plain = "0"
	}
	return plain, nil
}

// toDecimal reads a canonical numeral. Exponent forms and values that do
// not fit decimal.Decimal exactly are taken through float64.
func toDecimal(canonical string) (decimal.Decimal, error) {
	numeral := strings.TrimSuffix(canonical, ".")
	if d, err := decimal.Parse(numeral); err == nil {
		return d, nil
	}
	v, err := strconv.ParseFloat(numeral, 64)
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("%w: %q", ErrFormat, canonical)
	}
	d, err := decimal.NewFromFloat64(v)
	if err != nil {
		return decimal.Decimal{}, errors.Join(ErrFormat, err)
	}
	return d, nil
}

// Formatter is the process-wide formatting resource shared by all fields.
// Each call reconfigures the underlying format for the caller's Config and
// uses it inside one critical section, so a caller never observes settings
// written by another field.
type Formatter struct {
	mu sync.Mutex
	df decimalFormat
}

// NewFormatter returns a Formatter with its own format state. Most callers
// use Shared.
func NewFormatter() *Formatter {
	return &Formatter{}
}

var shared = NewFormatter()

// Shared returns the process-wide Formatter.
func Shared() *Formatter {
	return shared
}

// with reconfigures the format for cfg and runs fn while holding the lock.
// Nothing inside fn blocks or calls back into the Formatter.
func (f *Formatter) with(cfg Config, fn func(df *decimalFormat) error) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.df.configure(cfg)
	return fn(&f.df)
}

// Format renders a canonical value as display text under cfg. An empty
// canonical value renders as "". On error the caller decides on a fallback;
// Field falls back to the raw canonical string.
func (f *Formatter) Format(canonical string, cfg Config) (string, error) {
	canonical = strings.TrimSpace(canonical)
	if canonical == "" {
		return "", nil
	}
	d, err := toDecimal(canonical)
	if err != nil {
		return "", err
	}

	var out string
	err = f.with(cfg, func(df *decimalFormat) error {
		out = df.format(d)
		return nil
	})
	return out, err
}

// Parse converts display text to a canonical value under cfg. Blank text
// parses to "". The canonical value never uses exponent notation.
func (f *Formatter) Parse(display string, cfg Config) (string, error) {
	display = strings.TrimSpace(display)
	if display == "" {
		return "", nil
	}

	var out string
	err := f.with(cfg, func(df *decimalFormat) error {
		var perr error
		out, perr = df.parse(display)
		return perr
	})
	if err != nil {
		return "", err
	}
	return out, nil
}

// PlainDecimal renders v as a canonical numeral without exponent, using the
// shortest representation that round-trips: 1.2e9 -> "1200000000",
// 1e-7 -> "0.0000001".
func PlainDecimal(v float64) (string, error) {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return "", ErrNotFinite
	}
	s := strconv.FormatFloat(v, 'f', -1, 64)
	if s == "-0" {
		s = "0"
	}
	return s, nil
}
