package locale

import (
	"net/http"

	"golang.org/x/text/language"
)

// maxAcceptLanguageLength bounds the header we hand to the parser.
const maxAcceptLanguageLength = 4096

// Match negotiates an Accept-Language header against the supported locales.
// It returns the first supported tag when the header is empty, malformed or
// matches nothing, and DefaultTag when supported is empty.
func Match(header string, supported []language.Tag) language.Tag {
	if len(supported) == 0 {
		return DefaultTag
	}
	if header == "" {
		return supported[0]
	}
	if len(header) > maxAcceptLanguageLength {
		header = header[:maxAcceptLanguageLength]
	}

	desired, _, err := language.ParseAcceptLanguage(header)
	if err != nil || len(desired) == 0 {
		return supported[0]
	}

	_, idx, confidence := language.NewMatcher(supported).Match(desired...)
	if confidence == language.No {
		return supported[0]
	}
	return supported[idx]
}

// Middleware resolves the request locale from an explicit "locale" query
// parameter or the Accept-Language header and stores it in the request
// context.
func Middleware(supported []language.Tag) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			tag := Match(r.Header.Get("Accept-Language"), supported)
			if q := r.URL.Query().Get("locale"); q != "" {
				if parsed, err := language.Parse(q); err == nil {
					tag = parsed
				}
			}
			next.ServeHTTP(w, r.WithContext(WithContext(r.Context(), tag)))
		})
	}
}
