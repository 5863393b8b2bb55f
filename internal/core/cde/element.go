// Package cde interprets d10 pools for "Hong Kong : Chroniques de l'étrange".
//
// Each face of a d10 belongs to one of the five elements. Read against the
// element being rolled, a face is a success (same element), lucky (the
// element it generates), ill (the element generating it), loksyu (the element
// it dominates, split by polarity) or tin ji (the element dominating it).
package cde

import (
	"strings"

	apperrors "github.com/louisbranch/dicetrace/internal/platform/errors"
)

// Element is one of the five phases.
type Element int

const (
	Fire Element = iota
	Earth
	Metal
	Water
	Wood

	elementCount = 5
)

// Elements lists every element in generation order.
var Elements = [elementCount]Element{Fire, Earth, Metal, Water, Wood}

var elementNames = [elementCount]string{"fire", "earth", "metal", "water", "wood"}

var elementGlyphs = [elementCount]string{"㊋", "㊏", "㊎", "㊌", "㊍"}

// elementAliases maps lowercase English and French names to elements.
var elementAliases = map[string]Element{
	"fire":  Fire,
	"feu":   Fire,
	"earth": Earth,
	"terre": Earth,
	"metal": Metal,
	"métal": Metal,
	"water": Water,
	"eau":   Water,
	"wood":  Wood,
	"bois":  Wood,
}

// ParseElement resolves an English or French element name, ignoring case.
func ParseElement(name string) (Element, error) {
	if e, ok := elementAliases[strings.ToLower(strings.TrimSpace(name))]; ok {
		return e, nil
	}
	return 0, apperrors.WithMetadata(
		apperrors.CodeCdeUnknownElement,
		"Element must be one of `fire`, `earth`, `metal`, `water` or `wood`",
		map[string]string{"Element": name},
	)
}

// Valid reports whether e is one of the five elements.
func (e Element) Valid() bool {
	return e >= Fire && e < elementCount
}

// String returns the English name.
func (e Element) String() string {
	if !e.Valid() {
		return "unknown"
	}
	return elementNames[e]
}

// Glyph returns the circled ideograph of the element.
func (e Element) Glyph() string {
	if !e.Valid() {
		return "?"
	}
	return elementGlyphs[e]
}

// Label returns the glyph followed by the English name, e.g. "㊋ fire".
func (e Element) Label() string {
	return e.Glyph() + " " + e.String()
}

// Generates returns the element e gives birth to.
func (e Element) Generates() Element { return (e + 1) % elementCount }

// GeneratedBy returns the element giving birth to e.
func (e Element) GeneratedBy() Element { return (e + elementCount - 1) % elementCount }

// Dominates returns the element e controls.
func (e Element) Dominates() Element { return (e + 2) % elementCount }

// DominatedBy returns the element controlling e.
func (e Element) DominatedBy() Element { return (e + 3) % elementCount }

// Relatives returns e followed by the element it generates, the one
// generating it, the one it dominates and the one dominating it.
func (e Element) Relatives() [5]Element {
	return [5]Element{e, e.Generates(), e.GeneratedBy(), e.Dominates(), e.DominatedBy()}
}
