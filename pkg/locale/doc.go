// Package locale resolves the number formatting symbols of a locale and the
// locale of the current process or request.
//
// Separators are taken from CLDR data through golang.org/x/text: a probe value
// is rendered with a message.Printer for the requested tag and the decimal and
// grouping characters are read back from the output. Results are cached per
// tag.
//
// # Usage
//
//	import (
//		"golang.org/x/text/language"
//
//		"github.com/dmitrymomot/numberfield/pkg/locale"
//	)
//
//	s := locale.SymbolsFor(language.German)
//	// s.Decimal == ',' and s.Grouping == '.'
//
//	host := locale.Host() // from LC_ALL, LC_NUMERIC or LANG
//
// # HTTP
//
// Middleware negotiates the Accept-Language header (or an explicit "locale"
// query parameter) against a list of supported tags and stores the result in
// the request context, where FromContext picks it up.
//
// # Error Handling
//
// Nothing in this package returns errors. Unknown or malformed locales fall
// back to DefaultTag, and locales whose rendering cannot be decomposed fall
// back to '.' and ',' separators.
package locale
