package logger

import (
	"log/slog"
	"time"
)

// Error creates an attribute for a single error under the key "error".
// If err is nil, it returns an empty Attr.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.Any("error", err)
}

// Component records the component name under the key "component".
func Component(name string) slog.Attr {
	return slog.String("component", name)
}

// FieldName records the number field name under the key "field".
func FieldName(name string) slog.Attr {
	return slog.String("field", name)
}

// Input records user-supplied text under the key "input".
func Input(text string) slog.Attr {
	return slog.String("input", text)
}

// Locale records a BCP 47 locale under the key "locale".
func Locale(tag string) slog.Attr {
	return slog.String("locale", tag)
}

// RequestID records the request identifier under the key "request_id".
// If id is empty, it returns an empty Attr.
func RequestID(id string) slog.Attr {
	if id == "" {
		return slog.Attr{}
	}
	return slog.String("request_id", id)
}

// Duration records a duration under the key "duration".
func Duration(d time.Duration) slog.Attr {
	return slog.Duration("duration", d)
}
