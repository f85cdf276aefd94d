package numberfield

import "errors"

var (
	// ErrUnparseable is returned when text is not a number under the field policy.
	ErrUnparseable = errors.New("number is not parseable")

	// ErrOutOfRange is returned when a number lies outside [MinValue, MaxValue].
	ErrOutOfRange = errors.New("number out of range")

	// ErrPatternMismatch is returned when text does not match the policy pattern
	// (wrong separators, disallowed sign or too many fraction digits).
	ErrPatternMismatch = errors.New("number does not match format")

	// ErrFormat is returned when a canonical value cannot be rendered.
	ErrFormat = errors.New("number cannot be formatted")

	// ErrNotFinite is returned when NaN or an infinity is assigned to a field.
	ErrNotFinite = errors.New("number is not finite")

	// ErrReadOnly is returned when a read-only field is modified.
	ErrReadOnly = errors.New("field is read-only")
)
