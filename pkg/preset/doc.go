// Package preset loads named number field policies from YAML.
//
// A document maps preset names to the settings of numberfield.Config:
//
//	presets:
//	  price_de:
//	    locale: de
//	    decimal_precision: 2
//	    minimum_fraction_digits: 2
//	    min_value: 0
//
// Unset settings keep the defaults of the preset's locale. Default returns
// the presets shipped with the package; LoadFile reads a document from disk
// and Merge overlays it on the defaults.
package preset
