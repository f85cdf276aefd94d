package numberfield

import (
	"strings"
	"unicode"
)

// Key identifies the key of a KeyPress. Character input uses KeyRune with
// the character in KeyPress.Rune; every other key is navigation or editing
// the surface handles natively.
type Key uint8

const (
	KeyRune Key = iota
	KeyLeft
	KeyRight
	KeyUp
	KeyDown
	KeyHome
	KeyEnd
	KeyBackspace
	KeyDelete
	KeyTab
	KeyEnter
	KeyEscape
)

var keyNames = map[Key]string{
	KeyRune:      "rune",
	KeyLeft:      "left",
	KeyRight:     "right",
	KeyUp:        "up",
	KeyDown:      "down",
	KeyHome:      "home",
	KeyEnd:       "end",
	KeyBackspace: "backspace",
	KeyDelete:    "delete",
	KeyTab:       "tab",
	KeyEnter:     "enter",
	KeyEscape:    "escape",
}

func (k Key) String() string {
	if name, ok := keyNames[k]; ok {
		return name
	}
	return "unknown"
}

// ParseKey is the inverse of Key.String.
func ParseKey(name string) (Key, bool) {
	name = strings.ToLower(name)
	if name == "" {
		return KeyRune, true
	}
	for k, n := range keyNames {
		if n == name {
			return k, true
		}
	}
	return 0, false
}

// Modifier is a set of held modifier keys.
type Modifier uint8

const (
	ModNone  Modifier = 0
	ModShift Modifier = 1 << (iota - 1)
	ModCtrl
	ModAlt
	ModMeta
)

// Has reports whether m contains mod.
func (m Modifier) Has(mod Modifier) bool {
	return m&mod != 0
}

// KeyPress is a raw keystroke as reported by the surface that owns the text
// box, together with the edit state at the time of the event. Cursor and
// SelectionLength count runes.
type KeyPress struct {
	Key             Key
	Rune            rune
	Modifiers       Modifier
	Text            string
	Cursor          int
	SelectionLength int
}

// Action tells the surface what to do with a KeyPress.
type Action uint8

const (
	// ActionInsert applies the keystroke: show Decision.Text.
	ActionInsert Action = iota
	// ActionReject suppresses the keystroke. Decision.Text and Cursor may
	// still differ from the input (seeded skeleton, cursor jump).
	ActionReject
	// ActionPassThrough leaves the event to the surface untouched.
	ActionPassThrough
)

func (a Action) String() string {
	switch a {
	case ActionInsert:
		return "insert"
	case ActionReject:
		return "reject"
	case ActionPassThrough:
		return "pass_through"
	default:
		return "unknown"
	}
}

// Reason explains a Decision.
type Reason uint8

const (
	ReasonNone Reason = iota
	ReasonNavigation
	ReasonControl
	ReasonModifier
	ReasonJump
	ReasonInvalid
	ReasonReadOnly
)

func (r Reason) String() string {
	switch r {
	case ReasonNone:
		return ""
	case ReasonNavigation:
		return "navigation"
	case ReasonControl:
		return "control"
	case ReasonModifier:
		return "modifier"
	case ReasonJump:
		return "jump"
	case ReasonInvalid:
		return "invalid"
	case ReasonReadOnly:
		return "read_only"
	default:
		return "unknown"
	}
}

// Decision is the outcome of a keystroke. Text, Cursor and SelectionLength
// describe the state the surface shows after the event.
type Decision struct {
	Action          Action
	Reason          Reason
	Text            string
	Cursor          int
	SelectionLength int
}

// Accepted reports whether the keystroke was applied.
func (d Decision) Accepted() bool {
	return d.Action == ActionInsert
}

// OnProposedEdit decides whether a single-character keystroke keeps the
// text a valid number prefix under cfg.
//
// Navigation and edit keys pass through. On an empty field with
// MinimumFractionDigits > 0 the text is first seeded with a fraction
// skeleton. Typing the decimal separator right before an existing one moves
// the cursor past it instead of inserting. Any held modifier rejects the
// insertion. The candidate text is checked with MinValue relaxed, since
// range applies to committed values only.
func OnProposedEdit(ev KeyPress, cfg Config) Decision {
	runes := []rune(ev.Text)
	cursor, selection := clampSelection(len(runes), ev.Cursor, ev.SelectionLength)
	d := Decision{
		Action:          ActionReject,
		Text:            ev.Text,
		Cursor:          cursor,
		SelectionLength: selection,
	}

	if ev.Key != KeyRune {
		d.Action, d.Reason = ActionPassThrough, ReasonNavigation
		return d
	}
	if !unicode.IsPrint(ev.Rune) {
		d.Reason = ReasonControl
		return d
	}

	if text, seededCursor, ok := Seed(ev.Text, cfg); ok {
		runes = []rune(text)
		d.Text, d.Cursor, d.SelectionLength = text, seededCursor, 0
	}

	if ev.Modifiers != ModNone {
		d.Reason = ReasonModifier
		return d
	}

	if ev.Rune == cfg.DecimalSeparator && d.Cursor < len(runes) && runes[d.Cursor] == cfg.DecimalSeparator {
		d.Cursor++
		d.SelectionLength = 0
		d.Reason = ReasonJump
		return d
	}

	candidate := ResultingText(d.Text, d.Cursor, d.SelectionLength, ev.Rune)
	if !IsValid(candidate, cfg.relaxedMin(), true) {
		d.Reason = ReasonInvalid
		return d
	}

	d.Action = ActionInsert
	d.Text = candidate
	d.Cursor++
	d.SelectionLength = 0
	return d
}

// Seed returns the skeleton an empty field starts from when cfg requires
// fraction digits: the decimal separator followed by MinimumFractionDigits
// zeros, with the cursor before the separator. ok is false when no seeding
// applies.
func Seed(text string, cfg Config) (seeded string, cursor int, ok bool) {
	digits := cfg.minFractionDigits()
	if text != "" || digits == 0 {
		return text, 0, false
	}
	return string(cfg.DecimalSeparator) + strings.Repeat("0", digits), 0, true
}

// ResultingText is text with the runes in [cursor, cursor+selection)
// replaced by r. Out-of-range positions are clamped.
func ResultingText(text string, cursor, selection int, r rune) string {
	runes := []rune(text)
	cursor, selection = clampSelection(len(runes), cursor, selection)

	var b strings.Builder
	b.Grow(len(text) + 4)
	b.WriteString(string(runes[:cursor]))
	b.WriteRune(r)
	b.WriteString(string(runes[cursor+selection:]))
	return b.String()
}

func clampSelection(length, cursor, selection int) (int, int) {
	cursor = min(max(cursor, 0), length)
	selection = min(max(selection, 0), length-cursor)
	return cursor, selection
}
