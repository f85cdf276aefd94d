package validator_test

import (
	"math"
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/numberfield/pkg/validator"
)

func TestRequiredText(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		value string
		want  bool
	}{
		{name: "value", value: "12", want: true},
		{name: "empty", value: "", want: false},
		{name: "blank", value: "  \t", want: false},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, validator.RequiredText("price", tt.value).Check())
		})
	}
}

func TestParsableNumber(t *testing.T) {
	t.Parallel()

	tests := []struct {
		value string
		want  bool
	}{
		{value: "2546.99", want: true},
		{value: "-0", want: true},
		{value: "12", want: true},
		{value: "2.546,99", want: false},
		{value: "", want: false},
		{value: "abc", want: false},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.value, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, validator.ParsableNumber("price", tt.value).Check())
		})
	}
}

func TestNumberInRange(t *testing.T) {
	t.Parallel()

	assert.True(t, validator.NumberInRange("price", 5.0, 0, 999.9).Check())
	assert.True(t, validator.NumberInRange("price", 0.0, 0, 999.9).Check())
	assert.True(t, validator.NumberInRange("price", 999.9, 0, 999.9).Check())
	assert.False(t, validator.NumberInRange("price", 1000.0, 0, 999.9).Check())
	assert.False(t, validator.NumberInRange("price", math.NaN(), 0, 999.9).Check())
	assert.True(t, validator.NumberInRange("price", -1e300, math.Inf(-1), math.Inf(1)).Check())
	assert.True(t, validator.NumberInRange("count", 3, 1, 10).Check())

	rule := validator.NumberInRange("price", 1000.0, 0, 999.9)
	assert.Equal(t, "validation.range", rule.Error.TranslationKey)
	assert.Equal(t, "must be between 0 and 999.9", rule.Error.Message)
}

func TestMatchesPattern(t *testing.T) {
	t.Parallel()

	re := regexp.MustCompile(`^-?[0-9]*$`)
	assert.True(t, validator.MatchesPattern("qty", "-12", re, "integer").Check())
	assert.False(t, validator.MatchesPattern("qty", "1.5", re, "integer").Check())
	assert.False(t, validator.MatchesPattern("qty", "1", nil, "integer").Check())
	assert.Equal(t, "must match integer pattern", validator.MatchesPattern("qty", "", re, "integer").Error.Message)
}
