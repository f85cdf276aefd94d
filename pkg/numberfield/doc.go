// Package numberfield validates and formats numeric text for interactive
// input controls.
//
// The package decides on every keystroke whether an edit keeps the text a
// valid number under a configurable locale policy, and produces the canonical
// and the locale-formatted representation of a committed value. The same
// rules apply when they run predictively (before a character is accepted)
// and authoritatively (once the value is committed, e.g. on blur).
//
// # Architecture
//
//   - Config               – per-field format policy: separators, sign, grouping,
//     precision and bounds
//   - BuildPattern         – regular expression matching valid number prefixes
//   - IsValid / Check      – pattern plus bounds validation of a candidate string
//   - OnProposedEdit       – keystroke validator with cursor and selection handling
//   - Formatter            – parse (display -> canonical) and format
//     (canonical -> display) on a process-wide format guarded by a mutex
//   - Field                – composition of display text, policy and formatter
//     used by the control that owns the text box
//
// Values travel in two forms. Display text uses the field's separators and may
// be incomplete while typing ("-", "12,"). Canonical text uses '.' as decimal
// point, has no grouping and never uses exponent notation; it is the form for
// comparisons and exchange.
//
// # Usage
//
//	f := numberfield.NewField(
//		numberfield.WithLocale(language.German),
//		numberfield.WithName("price"),
//	)
//	f.SetMinValue(0)
//	f.SetMaxValue(999.9)
//
//	d := f.OnKeyPress(numberfield.KeyPress{Rune: '5', Text: "12,", Cursor: 3})
//	// d.Action == numberfield.ActionInsert, d.Text == "12,5"
//
//	res, err := f.Commit("12,5")
//	// res.Valid == true, res.Canonical == "12.5", f.Value() == "12,5"
//
// # Concurrency
//
// Config, Field and the package functions hold no shared state, except the
// Formatter: every Format and Parse call reconfigures the shared format and
// uses it inside one critical section. Field itself is owned by one control
// and must not be shared between goroutines.
//
// # Error Handling
//
// Rejected keystrokes are reported through Decision, never as errors. Parse
// failures on commit leave the field unchanged and return an error wrapping
// ErrUnparseable; invalid committed values are reported as
// validator.ValidationErrors carrying the field's error text. Invalid setter
// arguments, such as a decimal precision outside [1,16], are ignored.
package numberfield
