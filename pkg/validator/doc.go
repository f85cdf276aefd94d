// Package validator provides declarative validation rules with
// translation-friendly error metadata.
//
// A Rule couples a boolean Check with the ValidationError reported when the
// check fails. Apply evaluates rules in order and aggregates failures into
// ValidationErrors, which implements error and matches ErrValidationFailed
// through errors.Is.
//
// The rules in this package cover the checks a number field performs before
// accepting a committed value: presence, numeral syntax, bounds and pattern
// conformance.
//
// # Usage
//
//	err := validator.Apply(
//	    validator.RequiredText("price", text),
//	    validator.ParsableNumber("price", canonical),
//	    validator.NumberInRange("price", value, 0, 999.9),
//	)
//	if verrs := validator.ExtractValidationErrors(err); verrs != nil {
//	    for _, msg := range verrs.Get("price") {
//	        // render msg next to the field
//	    }
//	}
//
// Rule.WithMessage replaces the default message while keeping the
// translation key, so a field can show its own error text.
package validator
