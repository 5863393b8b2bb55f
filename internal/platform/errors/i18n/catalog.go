// Package i18n renders localized user messages for dice domain errors.
//
// Message templates live in the "errors" namespace of the embedded locale
// catalogs and are keyed by error code. Metadata attached to an error fills
// the template fields, so MODIFIER_OUT_OF_RANGE can say which term asked for
// how many dice.
package i18n

import (
	"strings"
	"sync"
	"text/template"

	i18ncatalog "github.com/louisbranch/dicetrace/internal/platform/i18n/catalog"
)

// Code is a machine-readable error code (duplicated from errors package to avoid cycle).
type Code = string

const errorsNamespace = "errors"

// Catalog holds the parsed error templates of one locale.
type Catalog struct {
	locale    string
	raw       map[Code]string
	templates map[Code]*template.Template
}

// catalogs caches one Catalog per resolved locale.
var catalogs sync.Map

// GetCatalog returns the catalog for the given locale.
// The locale is negotiated against the embedded catalogs, so "fr" resolves
// to fr-FR; anything unmatched falls back to en-US.
func GetCatalog(locale string) *Catalog {
	bundle := i18ncatalog.Default()
	resolved := bundle.Resolve(locale)
	if cached, ok := catalogs.Load(resolved); ok {
		return cached.(*Catalog)
	}

	source, messages := bundle.NamespaceMessagesWithFallback(resolved, errorsNamespace)
	built := NewCatalog(source, messages)
	actual, _ := catalogs.LoadOrStore(resolved, built)
	return actual.(*Catalog)
}

// NewCatalog parses messages into a catalog for locale. Templates that fail
// to parse are kept verbatim and rendered as-is.
func NewCatalog(locale string, messages map[Code]string) *Catalog {
	c := &Catalog{
		locale:    locale,
		raw:       make(map[Code]string, len(messages)),
		templates: make(map[Code]*template.Template, len(messages)),
	}
	for code, text := range messages {
		c.raw[code] = text
		if t, err := template.New(code).Parse(text); err == nil {
			c.templates[code] = t
		}
	}
	return c
}

// Locale returns the locale of this catalog.
func (c *Catalog) Locale() string {
	return c.locale
}

// Format renders the message for code with metadata.
//
// An unknown code renders as the code itself. Missing metadata fields render
// as "<no value>". A template that cannot be parsed or executed renders as
// its raw text.
func (c *Catalog) Format(code Code, metadata map[string]string) string {
	text, ok := c.raw[code]
	if !ok {
		return code
	}
	t, ok := c.templates[code]
	if !ok {
		return text
	}
	if metadata == nil {
		metadata = map[string]string{}
	}
	var b strings.Builder
	if err := t.Execute(&b, metadata); err != nil {
		return text
	}
	return b.String()
}
