package fieldapi

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/dmitrymomot/numberfield/pkg/numberfield"
	"github.com/dmitrymomot/numberfield/pkg/preset"
)

// policy selects the field policy of a request: a named preset, an inline
// config, or the server defaults with the separators of the request locale.
type policy struct {
	Preset string         `json:"preset,omitempty"`
	Config *preset.Preset `json:"config,omitempty"`
}

type keypressRequest struct {
	policy
	Text      string   `json:"text"`
	Cursor    int      `json:"cursor"`
	Selection int      `json:"selection"`
	Key       string   `json:"key,omitempty"`
	Rune      string   `json:"rune,omitempty"`
	Modifiers []string `json:"modifiers,omitempty"`
}

var modifierNames = map[string]numberfield.Modifier{
	"shift": numberfield.ModShift,
	"ctrl":  numberfield.ModCtrl,
	"alt":   numberfield.ModAlt,
	"meta":  numberfield.ModMeta,
}

func (req keypressRequest) keyPress() (numberfield.KeyPress, error) {
	key, ok := numberfield.ParseKey(req.Key)
	if !ok {
		return numberfield.KeyPress{}, fmt.Errorf("%w: unknown key %q", ErrInvalidKey, req.Key)
	}

	ev := numberfield.KeyPress{
		Key:             key,
		Text:            req.Text,
		Cursor:          req.Cursor,
		SelectionLength: req.Selection,
	}
	if key == numberfield.KeyRune {
		if utf8.RuneCountInString(req.Rune) != 1 {
			return numberfield.KeyPress{}, fmt.Errorf("%w: rune must be a single character", ErrInvalidKey)
		}
		ev.Rune, _ = utf8.DecodeRuneInString(req.Rune)
	}
	for _, name := range req.Modifiers {
		mod, ok := modifierNames[strings.ToLower(name)]
		if !ok {
			return numberfield.KeyPress{}, fmt.Errorf("%w: unknown modifier %q", ErrInvalidKey, name)
		}
		ev.Modifiers |= mod
	}
	return ev, nil
}

type decisionResponse struct {
	Action          string `json:"action"`
	Reason          string `json:"reason,omitempty"`
	Accepted        bool   `json:"accepted"`
	Text            string `json:"text"`
	Cursor          int    `json:"cursor"`
	SelectionLength int    `json:"selection_length"`
}

func newDecisionResponse(d numberfield.Decision) decisionResponse {
	return decisionResponse{
		Action:          d.Action.String(),
		Reason:          d.Reason.String(),
		Accepted:        d.Accepted(),
		Text:            d.Text,
		Cursor:          d.Cursor,
		SelectionLength: d.SelectionLength,
	}
}

type commitRequest struct {
	policy
	Text     string `json:"text"`
	Previous string `json:"previous,omitempty"`
	Required bool   `json:"required,omitempty"`
}

type commitResponse struct {
	Applied   bool                `json:"applied"`
	Valid     bool                `json:"valid"`
	Canonical string              `json:"canonical"`
	Text      string              `json:"text"`
	Formatted string              `json:"formatted"`
	Errors    map[string][]string `json:"errors,omitempty"`
}

type formatRequest struct {
	policy
	Value string `json:"value"`
}

type formatResponse struct {
	Formatted string `json:"formatted"`
}

type symbolsResponse struct {
	Locale   string `json:"locale"`
	Decimal  string `json:"decimal"`
	Grouping string `json:"grouping"`
}

type presetsResponse struct {
	Presets []string `json:"presets"`
}
