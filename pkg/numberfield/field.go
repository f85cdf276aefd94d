package numberfield

import (
	"errors"
	"log/slog"
	"strconv"
	"strings"

	"golang.org/x/text/language"

	"github.com/dmitrymomot/numberfield/pkg/logger"
	"github.com/dmitrymomot/numberfield/pkg/validator"
)

// DefaultErrorText is reported for invalid committed values.
const DefaultErrorText = "Invalid number"

// Field is the numeric policy attached to one editable text box. It holds the
// display text and the field's Config; the surface owning the text box feeds
// it keystrokes and commits.
//
// A Field is owned by a single control and is not safe for concurrent use.
// The shared Formatter it formats with is.
type Field struct {
	name             string
	cfg              Config
	text             string
	required         bool
	readOnly         bool
	serverValidation bool
	errorText        string
	formatter        *Formatter
	logger           *slog.Logger
	listeners        []func(text string)
}

// Option configures a Field.
type Option func(*Field)

// WithName sets the field name used in logs and validation errors.
func WithName(name string) Option {
	return func(f *Field) { f.name = name }
}

// WithConfig replaces the whole format policy.
func WithConfig(cfg Config) Option {
	return func(f *Field) { f.cfg = cfg }
}

// WithLocale takes the separators of tag.
func WithLocale(tag language.Tag) Option {
	return func(f *Field) {
		base := ConfigFor(tag)
		f.cfg.DecimalSeparator = base.DecimalSeparator
		f.cfg.GroupingSeparator = base.GroupingSeparator
	}
}

// WithFormatter replaces the process-wide Formatter. Nil is ignored.
func WithFormatter(fm *Formatter) Option {
	return func(f *Field) {
		if fm != nil {
			f.formatter = fm
		}
	}
}

// WithLogger sets the logger for recoverable failures. Nil is ignored.
func WithLogger(l *slog.Logger) Option {
	return func(f *Field) {
		if l != nil {
			f.logger = l
		}
	}
}

// WithErrorText sets the message reported for invalid values.
func WithErrorText(text string) Option {
	return func(f *Field) { f.errorText = text }
}

// WithRequired makes an empty value invalid.
func WithRequired(required bool) Option {
	return func(f *Field) { f.required = required }
}

// WithReadOnly makes the field reject edits.
func WithReadOnly(readOnly bool) Option {
	return func(f *Field) { f.readOnly = readOnly }
}

// NewField returns an empty field with the default policy of the host locale
// and server-side validation enabled.
func NewField(opts ...Option) *Field {
	f := &Field{
		name:             "value",
		cfg:              DefaultConfig(),
		serverValidation: true,
		errorText:        DefaultErrorText,
		formatter:        Shared(),
		logger:           logger.Discard(),
	}
	for _, opt := range opts {
		opt(f)
	}
	f.logger = f.logger.With(logger.Component("numberfield"), logger.FieldName(f.name))
	return f
}

// Name returns the field name.
func (f *Field) Name() string { return f.name }

// Config returns a copy of the field policy.
func (f *Field) Config() Config { return f.cfg }

// SetConfig replaces the field policy.
func (f *Field) SetConfig(cfg Config) { f.cfg = cfg }

// Value returns the display text.
func (f *Field) Value() string { return f.text }

// SetValue assigns display text. Read-only fields return ErrReadOnly.
func (f *Field) SetValue(text string) error {
	if f.readOnly {
		return ErrReadOnly
	}
	f.setText(text)
	return nil
}

// SetValueIgnoreReadOnly assigns display text regardless of read-only mode.
func (f *Field) SetValueIgnoreReadOnly(text string) {
	f.setText(text)
}

// SetFloat assigns a number. The value is expanded to plain decimal digits
// with the field's decimal separator; no exponent form ever reaches the
// display text.
func (f *Field) SetFloat(v float64) error {
	if f.readOnly {
		return ErrReadOnly
	}
	return f.SetFloatIgnoreReadOnly(v)
}

// SetFloatIgnoreReadOnly is SetFloat regardless of read-only mode.
func (f *Field) SetFloatIgnoreReadOnly(v float64) error {
	plain, err := PlainDecimal(v)
	if err != nil {
		return err
	}
	f.setText(Localized(plain, f.cfg))
	return nil
}

// Clear empties the field.
func (f *Field) Clear() error {
	return f.SetValue("")
}

func (f *Field) setText(text string) {
	if text == f.text {
		return
	}
	f.text = text
	for _, fn := range f.listeners {
		fn(text)
	}
}

// OnChange registers fn to run after every change of the display text.
func (f *Field) OnChange(fn func(text string)) {
	if fn != nil {
		f.listeners = append(f.listeners, fn)
	}
}

// IsRequired reports whether an empty value is invalid.
func (f *Field) IsRequired() bool { return f.required }

// SetRequired sets whether an empty value is invalid.
func (f *Field) SetRequired(required bool) { f.required = required }

// IsReadOnly reports whether edits are rejected.
func (f *Field) IsReadOnly() bool { return f.readOnly }

// SetReadOnly sets whether edits are rejected.
func (f *Field) SetReadOnly(readOnly bool) { f.readOnly = readOnly }

// ErrorText returns the message reported for invalid values.
func (f *Field) ErrorText() string { return f.errorText }

// SetErrorText sets the message reported for invalid values. An empty text
// makes validation failures carry no message.
func (f *Field) SetErrorText(text string) { f.errorText = text }

// AddServerSideValidation enables the format and range checks of committed
// values. It is enabled by default.
func (f *Field) AddServerSideValidation() { f.serverValidation = true }

// RemoveServerSideValidation disables the format and range checks of
// committed values; only the required check remains.
func (f *Field) RemoveServerSideValidation() { f.serverValidation = false }

// NegativesAllowed reports whether negative numbers are accepted.
func (f *Field) NegativesAllowed() bool { return f.cfg.NegativesAllowed }

// SetNegativesAllowed sets whether negative numbers are accepted.
func (f *Field) SetNegativesAllowed(allowed bool) { f.cfg.NegativesAllowed = allowed }

// DecimalsAllowed reports whether decimal numbers are accepted.
func (f *Field) DecimalsAllowed() bool { return f.cfg.DecimalsAllowed }

// SetDecimalsAllowed sets whether decimal numbers are accepted. Disallowing
// decimals resets MinimumFractionDigits to 0.
func (f *Field) SetDecimalsAllowed(allowed bool) { f.cfg.SetDecimalsAllowed(allowed) }

// GroupingUsed reports whether the integer part is grouped.
func (f *Field) GroupingUsed() bool { return f.cfg.GroupingUsed }

// SetGroupingUsed sets whether the integer part is grouped.
func (f *Field) SetGroupingUsed(used bool) { f.cfg.GroupingUsed = used }

// GroupingSize returns the number of digits between grouping separators.
func (f *Field) GroupingSize() int { return f.cfg.GroupingSize }

// SetGroupingSize sets the number of digits between grouping separators.
func (f *Field) SetGroupingSize(size int) { f.cfg.SetGroupingSize(size) }

// DecimalPrecision returns the maximum number of fraction digits.
func (f *Field) DecimalPrecision() int { return f.cfg.DecimalPrecision }

// SetDecimalPrecision sets the maximum number of fraction digits; values
// outside [1,16] are ignored.
func (f *Field) SetDecimalPrecision(digits int) { f.cfg.SetDecimalPrecision(digits) }

// MinimumFractionDigits returns the number of fraction digits always rendered.
func (f *Field) MinimumFractionDigits() int { return f.cfg.MinimumFractionDigits }

// SetMinimumFractionDigits sets the number of fraction digits always
// rendered; negative values are ignored and decimals-disallowed fields keep 0.
func (f *Field) SetMinimumFractionDigits(digits int) { f.cfg.SetMinimumFractionDigits(digits) }

// DecimalSeparatorAlwaysShown reports whether formatted integers end with
// the decimal separator.
func (f *Field) DecimalSeparatorAlwaysShown() bool { return f.cfg.DecimalSeparatorAlwaysShown }

// SetDecimalSeparatorAlwaysShown sets whether formatted integers end with
// the decimal separator.
func (f *Field) SetDecimalSeparatorAlwaysShown(shown bool) {
	f.cfg.DecimalSeparatorAlwaysShown = shown
}

// MinValue returns the lower bound of committed values.
func (f *Field) MinValue() float64 { return f.cfg.MinValue }

// SetMinValue sets the lower bound of committed values. It is not checked
// against MaxValue.
func (f *Field) SetMinValue(v float64) { f.cfg.MinValue = v }

// MaxValue returns the upper bound of committed values.
func (f *Field) MaxValue() float64 { return f.cfg.MaxValue }

// SetMaxValue sets the upper bound of committed values.
func (f *Field) SetMaxValue(v float64) { f.cfg.MaxValue = v }

// DecimalSeparator returns the character separating the fraction.
func (f *Field) DecimalSeparator() rune { return f.cfg.DecimalSeparator }

// GroupingSeparator returns the character grouping integer digits.
func (f *Field) GroupingSeparator() rune { return f.cfg.GroupingSeparator }

// SetDecimalSeparator changes the decimal separator and rewrites it in the
// current text.
func (f *Field) SetDecimalSeparator(sep rune) {
	f.replaceInText(f.cfg.DecimalSeparator, sep)
	f.cfg.DecimalSeparator = sep
}

// SetGroupingSeparator changes the grouping separator and rewrites it in the
// current text.
func (f *Field) SetGroupingSeparator(sep rune) {
	f.replaceInText(f.cfg.GroupingSeparator, sep)
	f.cfg.GroupingSeparator = sep
}

func (f *Field) replaceInText(old, sep rune) {
	if f.text == "" || old == 0 || old == sep {
		return
	}
	f.setText(strings.ReplaceAll(f.text, string(old), string(sep)))
}

// OnKeyPress runs the incremental validator for ev. Accepted keystrokes and
// seeded skeletons update the field's text. Read-only fields reject every
// character.
func (f *Field) OnKeyPress(ev KeyPress) Decision {
	if f.readOnly && ev.Key == KeyRune {
		runes := []rune(ev.Text)
		cursor, selection := clampSelection(len(runes), ev.Cursor, ev.SelectionLength)
		return Decision{
			Action:          ActionReject,
			Reason:          ReasonReadOnly,
			Text:            ev.Text,
			Cursor:          cursor,
			SelectionLength: selection,
		}
	}

	d := OnProposedEdit(ev, f.cfg)
	if d.Action != ActionPassThrough {
		f.setText(d.Text)
	}
	return d
}

// CommitResult describes an applied commit.
type CommitResult struct {
	// Canonical is the committed value in canonical form ("" when empty).
	Canonical string
	// Text is the display text after the commit.
	Text string
	// Valid reports the authoritative validity of the committed value.
	Valid bool
	// Err carries validator.ValidationErrors when Valid is false.
	Err error
}

// Commit applies the text the user committed (e.g. on blur). The text is
// parsed authoritatively; a valid value is replaced by its formatted form,
// an invalid one is kept as typed so it can be corrected.
//
// If the text cannot be parsed the commit is a no-op: the previous text is
// retained, the failure is logged and returned wrapping ErrUnparseable.
// Read-only fields return ErrReadOnly.
func (f *Field) Commit(display string) (CommitResult, error) {
	if f.readOnly {
		return CommitResult{}, ErrReadOnly
	}

	canonical, err := f.formatter.Parse(display, f.cfg)
	if err != nil {
		f.logger.Warn("commit ignored: unparseable number",
			logger.Input(display),
			logger.Error(err),
		)
		return CommitResult{Canonical: f.canonical(), Text: f.text, Valid: f.IsValid()}, err
	}

	if canonical == "" {
		f.setText("")
		verr := f.Validate()
		return CommitResult{Valid: verr == nil, Err: verr}, nil
	}

	if verr := f.validateCanonical(canonical); verr != nil {
		f.setText(display)
		return CommitResult{Canonical: canonical, Text: display, Err: verr}, nil
	}

	f.setText(f.format(canonical))
	return CommitResult{Canonical: canonical, Text: f.text, Valid: true}, nil
}

// IsValid reports whether the current value passes authoritative
// validation.
func (f *Field) IsValid() bool {
	return f.Validate() == nil
}

// Validate checks the current value. It returns nil or
// validator.ValidationErrors carrying the field's error text.
func (f *Field) Validate() error {
	if f.text == "" {
		if !f.required {
			return nil
		}
		return validator.Apply(validator.RequiredText(f.name, f.text).WithMessage(f.errorText))
	}
	return f.validateCanonical(f.committed())
}

// committed is the canonical value of the current text as Commit reads it,
// so characters added by formatting (padded fraction zeros, an always-shown
// separator) are not validated as typed input. Text that does not parse is
// checked as typed.
func (f *Field) committed() string {
	if canonical, err := f.formatter.Parse(f.text, f.cfg); err == nil {
		return canonical
	}
	return f.canonical()
}

func (f *Field) validateCanonical(canonical string) error {
	if !f.serverValidation {
		return nil
	}

	err := Check(canonical, f.cfg, false)
	if err == nil {
		return nil
	}

	v, _ := strconv.ParseFloat(canonical, 64)
	switch {
	case errors.Is(err, ErrOutOfRange):
		return validator.Apply(validator.NumberInRange(f.name, v, f.cfg.MinValue, f.cfg.MaxValue).WithMessage(f.errorText))
	case errors.Is(err, ErrPatternMismatch):
		pattern := BuildPattern(f.cfg.canonical(), f.cfg.IntegerOnly())
		return validator.Apply(validator.MatchesPattern(f.name, canonical, pattern.Regexp(), "number").WithMessage(f.errorText))
	default:
		return validator.Apply(validator.ParsableNumber(f.name, canonical).WithMessage(f.errorText))
	}
}

// canonical is the current text with grouping stripped and '.' as decimal
// point, "" when empty.
func (f *Field) canonical() string {
	return NonLocalized(f.text, f.cfg)
}

// ValidNonLocalizedValue returns the value with grouping separators removed
// and '.' as decimal point, e.g. "2.546,99" -> "2546.99". An empty field
// yields "0".
func (f *Field) ValidNonLocalizedValue() string {
	if f.text == "" {
		return "0"
	}
	return f.canonical()
}

// Float64 returns the value as a float64, or 0 when the field holds no
// parseable number.
func (f *Field) Float64() float64 {
	v, err := strconv.ParseFloat(f.ValidNonLocalizedValue(), 64)
	if err != nil {
		return 0
	}
	return v
}

// FormattedValue returns the authoritative display form of the current value.
// It is derived on every call, so it always reflects the latest policy.
func (f *Field) FormattedValue() string {
	if f.text == "" {
		return ""
	}
	return f.format(f.canonical())
}

// format renders canonical under the field policy, falling back to the raw
// canonical string if formatting fails.
func (f *Field) format(canonical string) string {
	out, err := f.formatter.Format(canonical, f.cfg)
	if err != nil {
		f.logger.Warn("format failed, using raw value",
			logger.Input(canonical),
			logger.Error(err),
		)
		return canonical
	}
	return out
}

// ReplacePointWithDecimalSeparator rewrites '.' in a canonical value with the
// field's decimal separator.
func (f *Field) ReplacePointWithDecimalSeparator(canonical string) string {
	return Localized(canonical, f.cfg)
}
