package locale

import (
	"os"
	"strings"
	"sync"
	"unicode"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// DefaultTag is used when no locale can be determined.
var DefaultTag = language.English

// Symbols holds the number formatting characters of a locale.
type Symbols struct {
	Decimal  rune
	Grouping rune
}

// fallbackSymbols mirror the en locale and are returned when a locale
// renders numbers in a shape we cannot decompose.
var fallbackSymbols = Symbols{Decimal: '.', Grouping: ','}

// probe has a grouped integer part and exactly one fraction digit so both
// separators show up in the rendered output.
const probe = 1234567.5

var symbolCache sync.Map // language.Tag -> Symbols

// SymbolsFor returns the decimal and grouping separators CLDR defines for tag.
// Results are cached per tag and the function is safe for concurrent use.
func SymbolsFor(tag language.Tag) Symbols {
	if cached, ok := symbolCache.Load(tag); ok {
		return cached.(Symbols)
	}

	p := message.NewPrinter(tag)
	rendered := p.Sprint(number.Decimal(probe, number.MinFractionDigits(1), number.MaxFractionDigits(1)))
	symbols := extractSymbols(rendered)

	symbolCache.Store(tag, symbols)
	return symbols
}

// extractSymbols picks the separators out of a rendered probe value.
// The last non-digit is the decimal separator, the first non-digit between
// two digits is the grouping separator.
func extractSymbols(rendered string) Symbols {
	runes := []rune(strings.TrimSpace(rendered))

	decimalIdx := -1
	for i := len(runes) - 1; i >= 0; i-- {
		if !unicode.IsDigit(runes[i]) {
			decimalIdx = i
			break
		}
	}
	if decimalIdx <= 0 || decimalIdx == len(runes)-1 {
		return fallbackSymbols
	}

	symbols := Symbols{Decimal: runes[decimalIdx], Grouping: fallbackSymbols.Grouping}
	for i := 1; i < decimalIdx; i++ {
		if !unicode.IsDigit(runes[i]) && unicode.IsDigit(runes[i-1]) {
			symbols.Grouping = runes[i]
			break
		}
	}

	// A locale whose grouping collides with the decimal separator cannot be
	// edited unambiguously.
	if symbols.Grouping == symbols.Decimal {
		return fallbackSymbols
	}
	return symbols
}

// Host returns the locale of the running process derived from the POSIX
// environment (LC_ALL, LC_NUMERIC, LANG in that order). The C and POSIX
// locales, as well as unparsable values, resolve to DefaultTag.
func Host() language.Tag {
	for _, key := range []string{"LC_ALL", "LC_NUMERIC", "LANG"} {
		if v := os.Getenv(key); v != "" {
			return ParsePOSIX(v)
		}
	}
	return DefaultTag
}

// ParsePOSIX converts a POSIX locale name such as "de_DE.UTF-8@euro" to a
// language tag.
func ParsePOSIX(name string) language.Tag {
	if i := strings.IndexAny(name, ".@"); i >= 0 {
		name = name[:i]
	}
	if name == "" || name == "C" || name == "POSIX" {
		return DefaultTag
	}

	tag, err := language.Parse(strings.ReplaceAll(name, "_", "-"))
	if err != nil {
		return DefaultTag
	}
	return tag
}

// HostSymbols is shorthand for SymbolsFor(Host()).
func HostSymbols() Symbols {
	return SymbolsFor(Host())
}
