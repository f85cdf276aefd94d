package validator

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// RequiredText validates that a text value is not blank.
func RequiredText(field, value string) Rule {
	return Rule{
		Check: func() bool {
			return strings.TrimSpace(value) != ""
		},
		Error: ValidationError{
			Field:          field,
			Message:        "field is required",
			TranslationKey: "validation.required",
			TranslationValues: map[string]any{
				"field": field,
			},
		},
	}
}

// ParsableNumber validates that value is a plain decimal numeral.
func ParsableNumber(field, value string) Rule {
	return Rule{
		Check: func() bool {
			_, err := strconv.ParseFloat(value, 64)
			return err == nil
		},
		Error: ValidationError{
			Field:          field,
			Message:        "must be a number",
			TranslationKey: "validation.number",
			TranslationValues: map[string]any{
				"field": field,
				"value": value,
			},
		},
	}
}

// NumberInRange validates that min <= value <= max. NaN never passes.
func NumberInRange[T Numeric](field string, value, min, max T) Rule {
	return Rule{
		Check: func() bool {
			return value >= min && value <= max
		},
		Error: ValidationError{
			Field:          field,
			Message:        fmt.Sprintf("must be between %v and %v", min, max),
			TranslationKey: "validation.range",
			TranslationValues: map[string]any{
				"field": field,
				"min":   min,
				"max":   max,
			},
		},
	}
}

// MatchesPattern validates value against a precompiled expression.
func MatchesPattern(field, value string, re *regexp.Regexp, description string) Rule {
	return Rule{
		Check: func() bool {
			return re != nil && re.MatchString(value)
		},
		Error: ValidationError{
			Field:          field,
			Message:        fmt.Sprintf("must match %s pattern", description),
			TranslationKey: "validation.regex_pattern",
			TranslationValues: map[string]any{
				"field":       field,
				"description": description,
			},
		},
	}
}
