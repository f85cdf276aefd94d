package numberfield

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"sync"
	"unicode"
)

// Pattern matches the strings that are a valid prefix of a number under a
// Config: a lone sign, a trailing decimal separator and an empty fraction are
// all accepted. Whether the text is a complete number is decided by the
// bounds check, not by the pattern.
type Pattern struct {
	re *regexp.Regexp
}

type patternKey struct {
	negatives   bool
	grouping    rune
	decimal     rune
	precision   int
	integerOnly bool
}

// patterns caches compiled expressions; a field builds one per keystroke.
var patterns sync.Map // patternKey -> Pattern

// BuildPattern returns the prefix pattern for cfg. With integerOnly the
// decimal separator and fraction are not part of the pattern.
func BuildPattern(cfg Config, integerOnly bool) Pattern {
	key := patternKey{
		negatives:   cfg.NegativesAllowed,
		decimal:     cfg.DecimalSeparator,
		precision:   max(cfg.DecimalPrecision, 0),
		integerOnly: integerOnly,
	}
	if cfg.GroupingUsed {
		key.grouping = cfg.GroupingSeparator
	}

	if cached, ok := patterns.Load(key); ok {
		return cached.(Pattern)
	}

	p, _ := patterns.LoadOrStore(key, Pattern{re: regexp.MustCompile(key.source())})
	return p.(Pattern)
}

// source produces an expression such as ^-?[0-9\.]*\,?[0-9\.]{0,2}$.
func (k patternKey) source() string {
	var b strings.Builder
	b.WriteByte('^')
	if k.negatives {
		b.WriteString(escapeRune(negativePrefix))
		b.WriteByte('?')
	}

	class := "[0-9]"
	if k.grouping != 0 {
		class = "[0-9" + escapeRune(k.grouping) + "]"
	}
	b.WriteString(class)
	b.WriteByte('*')

	if !k.integerOnly {
		b.WriteString(escapeRune(k.decimal))
		b.WriteByte('?')
		b.WriteString(class)
		b.WriteString("{0,")
		b.WriteString(strconv.Itoa(k.precision))
		b.WriteByte('}')
	}
	b.WriteByte('$')
	return b.String()
}

// escapeRune makes r literal both inside and outside a character class.
func escapeRune(r rune) string {
	switch {
	case r < 0x80 && unicode.IsPunct(r), r < 0x80 && unicode.IsSymbol(r):
		return `\` + string(r)
	case !unicode.IsPrint(r) || unicode.IsSpace(r):
		return fmt.Sprintf(`\x{%x}`, r)
	default:
		return string(r)
	}
}

// MatchString reports whether s is a valid number prefix.
func (p Pattern) MatchString(s string) bool {
	return p.re.MatchString(s)
}

// Regexp exposes the compiled expression.
func (p Pattern) Regexp() *regexp.Regexp {
	return p.re
}

func (p Pattern) String() string {
	return p.re.String()
}
