package numberfield_test

import (
	"golang.org/x/text/language"

	"github.com/dmitrymomot/numberfield/pkg/numberfield"
)

func enConfig() numberfield.Config {
	return numberfield.ConfigFor(language.English)
}

func deConfig() numberfield.Config {
	return numberfield.ConfigFor(language.German)
}
