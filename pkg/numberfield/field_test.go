package numberfield_test

import (
	"bytes"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"

	"github.com/dmitrymomot/numberfield/pkg/logger"
	"github.com/dmitrymomot/numberfield/pkg/numberfield"
	"github.com/dmitrymomot/numberfield/pkg/validator"
)

func TestNewField_Defaults(t *testing.T) {
	t.Parallel()

	f := numberfield.NewField(numberfield.WithLocale(language.German))
	assert.Equal(t, "value", f.Name())
	assert.Empty(t, f.Value())
	assert.Equal(t, ',', f.DecimalSeparator())
	assert.Equal(t, '.', f.GroupingSeparator())
	assert.True(t, f.NegativesAllowed())
	assert.True(t, f.DecimalsAllowed())
	assert.True(t, f.GroupingUsed())
	assert.Equal(t, 2, f.DecimalPrecision())
	assert.Equal(t, 3, f.GroupingSize())
	assert.Equal(t, numberfield.DefaultErrorText, f.ErrorText())
	assert.False(t, f.IsRequired())
	assert.False(t, f.IsReadOnly())
	assert.True(t, f.IsValid())
}

func TestField_TypingAndCommit(t *testing.T) {
	t.Parallel()

	f := numberfield.NewField(numberfield.WithName("price"), numberfield.WithLocale(language.German))
	f.SetMinValue(5)
	f.SetMaxValue(1000)

	d := f.OnKeyPress(numberfield.KeyPress{Rune: '1', Text: f.Value()})
	require.True(t, d.Accepted())
	assert.Equal(t, "1", f.Value())

	res, err := f.Commit("1")
	require.NoError(t, err)
	assert.False(t, res.Valid)
	assert.Equal(t, "1", res.Text)
	assert.Equal(t, "1", f.Value(), "invalid value stays as typed")
	assert.ErrorIs(t, res.Err, validator.ErrValidationFailed)
	assert.Equal(t, []string{numberfield.DefaultErrorText}, validator.ExtractValidationErrors(res.Err).Get("price"))
	assert.False(t, f.IsValid())

	res, err = f.Commit("123,45")
	require.NoError(t, err)
	assert.True(t, res.Valid)
	assert.Equal(t, "123.45", res.Canonical)
	assert.Equal(t, "123,45", f.Value())
	assert.True(t, f.IsValid())
	assert.Equal(t, "123.45", f.ValidNonLocalizedValue())
	assert.InDelta(t, 123.45, f.Float64(), 1e-9)
}

func TestField_CommitFormats(t *testing.T) {
	t.Parallel()

	f := numberfield.NewField(numberfield.WithLocale(language.German))
	f.SetMinimumFractionDigits(2)

	res, err := f.Commit("2546,9")
	require.NoError(t, err)
	assert.True(t, res.Valid)
	assert.Equal(t, "2.546,90", f.Value())
	assert.Equal(t, "2546.90", f.ValidNonLocalizedValue())
}

func TestField_ValidAfterFormattedCommit(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		setup func(f *numberfield.Field)
		input string
		text  string
	}{
		{
			name:  "fraction padding beyond precision",
			setup: func(f *numberfield.Field) { f.SetMinimumFractionDigits(4) },
			input: "12",
			text:  "12,0000",
		},
		{
			name: "separator shown on integer field",
			setup: func(f *numberfield.Field) {
				f.SetDecimalsAllowed(false)
				f.SetDecimalSeparatorAlwaysShown(true)
			},
			input: "5",
			text:  "5,",
		},
		{
			name: "padding with grouping",
			setup: func(f *numberfield.Field) {
				f.SetDecimalPrecision(1)
				f.SetMinimumFractionDigits(3)
			},
			input: "2546",
			text:  "2.546,000",
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			f := numberfield.NewField(numberfield.WithLocale(language.German))
			tt.setup(f)

			res, err := f.Commit(tt.input)
			require.NoError(t, err)
			require.True(t, res.Valid)
			assert.Equal(t, tt.text, f.Value())
			assert.True(t, f.IsValid())
			assert.NoError(t, f.Validate())
		})
	}
}

func TestField_CommitUnparseableIsNoop(t *testing.T) {
	t.Parallel()

	buf := &bytes.Buffer{}
	f := numberfield.NewField(
		numberfield.WithName("amount"),
		numberfield.WithLocale(language.English),
		numberfield.WithLogger(logger.New(logger.WithOutput(buf))),
	)
	require.NoError(t, f.SetValue("12"))

	res, err := f.Commit("12a")
	assert.ErrorIs(t, err, numberfield.ErrUnparseable)
	assert.Equal(t, "12", f.Value())
	assert.Equal(t, "12", res.Text)
	assert.True(t, res.Valid)

	out := buf.String()
	assert.Contains(t, out, "commit ignored")
	assert.Contains(t, out, `"field":"amount"`)
	assert.Contains(t, out, `"input":"12a"`)
}

func TestField_CommitEmpty(t *testing.T) {
	t.Parallel()

	f := numberfield.NewField(numberfield.WithLocale(language.English))
	require.NoError(t, f.SetValue("5"))

	res, err := f.Commit("  ")
	require.NoError(t, err)
	assert.True(t, res.Valid)
	assert.Empty(t, f.Value())
	assert.Equal(t, "0", f.ValidNonLocalizedValue())

	f.SetRequired(true)
	res, err = f.Commit("")
	require.NoError(t, err)
	assert.False(t, res.Valid)
	assert.True(t, validator.ExtractValidationErrors(res.Err).Has("value"))
}

func TestField_Validate(t *testing.T) {
	t.Parallel()

	f := numberfield.NewField(numberfield.WithLocale(language.English), numberfield.WithErrorText("Bad number"))
	f.SetValueIgnoreReadOnly("1.999")

	err := f.Validate()
	require.Error(t, err)
	verrs := validator.ExtractValidationErrors(err)
	assert.Equal(t, []string{"Bad number"}, verrs.Get("value"))
	assert.Equal(t, []string{"validation.regex_pattern"}, verrs.Keys("value"))

	f.SetMaxValue(1)
	verrs = validator.ExtractValidationErrors(f.Validate())
	assert.Equal(t, []string{"validation.range"}, verrs.Keys("value"))

	f.RemoveServerSideValidation()
	assert.NoError(t, f.Validate())

	f.AddServerSideValidation()
	assert.Error(t, f.Validate())
}

func TestField_ReadOnly(t *testing.T) {
	t.Parallel()

	f := numberfield.NewField(numberfield.WithLocale(language.English), numberfield.WithReadOnly(true))
	assert.ErrorIs(t, f.SetValue("1"), numberfield.ErrReadOnly)
	assert.ErrorIs(t, f.SetFloat(1), numberfield.ErrReadOnly)
	assert.ErrorIs(t, f.Clear(), numberfield.ErrReadOnly)

	_, err := f.Commit("1")
	assert.ErrorIs(t, err, numberfield.ErrReadOnly)

	d := f.OnKeyPress(numberfield.KeyPress{Rune: '1'})
	assert.Equal(t, numberfield.ActionReject, d.Action)
	assert.Equal(t, numberfield.ReasonReadOnly, d.Reason)

	d = f.OnKeyPress(numberfield.KeyPress{Key: numberfield.KeyLeft})
	assert.Equal(t, numberfield.ActionPassThrough, d.Action)

	require.NoError(t, f.SetFloatIgnoreReadOnly(7))
	assert.Equal(t, "7", f.Value())
}

func TestField_SetFloat(t *testing.T) {
	t.Parallel()

	f := numberfield.NewField(numberfield.WithLocale(language.German))
	require.NoError(t, f.SetFloat(1.2e9))
	assert.Equal(t, "1200000000", f.Value())
	assert.Equal(t, "1.200.000.000", f.FormattedValue())

	require.NoError(t, f.SetFloat(2.5))
	assert.Equal(t, "2,5", f.Value())

	require.NoError(t, f.SetFloat(1e-7))
	assert.Equal(t, "0,0000001", f.Value())

	assert.ErrorIs(t, f.SetFloat(math.NaN()), numberfield.ErrNotFinite)
	assert.Equal(t, "0,0000001", f.Value())
}

func TestField_OnChange(t *testing.T) {
	t.Parallel()

	f := numberfield.NewField(numberfield.WithLocale(language.English))
	var seen []string
	f.OnChange(func(text string) { seen = append(seen, text) })

	require.NoError(t, f.SetValue("1"))
	require.NoError(t, f.SetValue("1"))
	f.OnKeyPress(numberfield.KeyPress{Rune: '2', Text: f.Value(), Cursor: 1})
	f.OnKeyPress(numberfield.KeyPress{Rune: 'x', Text: f.Value(), Cursor: 2})
	require.NoError(t, f.Clear())

	assert.Equal(t, []string{"1", "12", ""}, seen)
}

func TestField_SetSeparators(t *testing.T) {
	t.Parallel()

	f := numberfield.NewField(numberfield.WithLocale(language.English))
	require.NoError(t, f.SetValue("1,234.5"))

	f.SetGroupingSeparator(' ')
	assert.Equal(t, "1 234.5", f.Value())

	f.SetDecimalSeparator(',')
	assert.Equal(t, "1 234,5", f.Value())
	assert.Equal(t, "1234.5", f.ValidNonLocalizedValue())
	assert.Equal(t, "9,75", f.ReplacePointWithDecimalSeparator("9.75"))
}

func TestField_FormattedValueFollowsPolicy(t *testing.T) {
	t.Parallel()

	f := numberfield.NewField(numberfield.WithLocale(language.English))
	require.NoError(t, f.SetValue("1234.5"))
	assert.Equal(t, "1,234.5", f.FormattedValue())

	f.SetGroupingUsed(false)
	f.SetDecimalSeparatorAlwaysShown(true)
	f.SetMinimumFractionDigits(3)
	assert.Equal(t, "1234.500", f.FormattedValue())

	f.SetDecimalsAllowed(false)
	assert.Equal(t, 0, f.MinimumFractionDigits())
	assert.Equal(t, "1234.", f.FormattedValue())
}

func TestField_FormatFallback(t *testing.T) {
	t.Parallel()

	f := numberfield.NewField(numberfield.WithLocale(language.English))
	f.SetValueIgnoreReadOnly("1e400")
	assert.Equal(t, "1e400", f.FormattedValue())
}
