package locale

import (
	"context"

	"golang.org/x/text/language"
)

// localeContextKey is the key for storing the locale in context
type localeContextKey struct{}

// WithContext stores the locale in the context.
func WithContext(ctx context.Context, tag language.Tag) context.Context {
	return context.WithValue(ctx, localeContextKey{}, tag)
}

// FromContext returns the locale from the context.
// If no locale is set, DefaultTag is returned.
func FromContext(ctx context.Context) language.Tag {
	if ctx == nil {
		return DefaultTag
	}
	tag, ok := ctx.Value(localeContextKey{}).(language.Tag)
	if !ok || tag == language.Und {
		return DefaultTag
	}
	return tag
}
