// Package catalog loads the embedded locale message catalogs.
//
// Catalogs live under locales/<locale>/<namespace>.yaml. Every file names its
// locale and namespace, and both must match the path. Keys are unique per
// locale across namespaces, so a message can be looked up by key alone.
package catalog

import (
	"embed"
	"fmt"
	"io/fs"
	"maps"
	"path"
	"slices"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"gopkg.in/yaml.v3"
)

// BaseLocale is the canonical source locale for catalogs.
const BaseLocale = "en-US"

const catalogGlob = "locales/*/*.yaml"

type catalogFile struct {
	Locale    string            `yaml:"locale"`
	Namespace string            `yaml:"namespace"`
	Messages  map[string]string `yaml:"messages"`
}

// LocaleCatalog stores all messages for one locale, grouped by namespace.
type LocaleCatalog struct {
	Locale     string
	Namespaces map[string]map[string]string
	Messages   map[string]string
}

// Bundle contains all locale catalogs loaded from disk.
type Bundle struct {
	locales map[string]*LocaleCatalog
	tags    []language.Tag
	matcher language.Matcher
}

//go:embed locales/*/*.yaml
var embeddedCatalogFS embed.FS

var defaultBundle = mustLoadAndRegisterEmbedded()

// Default returns the process-wide embedded catalog bundle.
func Default() *Bundle {
	return defaultBundle
}

// LoadEmbedded loads catalog files embedded in this package.
func LoadEmbedded() (*Bundle, error) {
	return LoadFromFS(embeddedCatalogFS)
}

// LoadFromFS loads catalog files from the provided filesystem.
func LoadFromFS(catalogFS fs.FS) (*Bundle, error) {
	paths, err := fs.Glob(catalogFS, catalogGlob)
	if err != nil {
		return nil, fmt.Errorf("glob locale catalogs: %w", err)
	}
	if len(paths) == 0 {
		return nil, fmt.Errorf("no catalog files found")
	}
	slices.Sort(paths)

	bundle := &Bundle{locales: map[string]*LocaleCatalog{}}
	for _, p := range paths {
		file, err := readCatalogFile(catalogFS, p)
		if err != nil {
			return nil, err
		}
		if err := bundle.add(file); err != nil {
			return nil, fmt.Errorf("catalog %s: %w", p, err)
		}
	}

	if !bundle.HasLocale(BaseLocale) {
		return nil, fmt.Errorf("base locale %s is not defined in catalogs", BaseLocale)
	}
	if err := bundle.buildMatcher(); err != nil {
		return nil, err
	}
	return bundle, nil
}

// readCatalogFile decodes one file and checks it against its path.
func readCatalogFile(catalogFS fs.FS, p string) (catalogFile, error) {
	data, err := fs.ReadFile(catalogFS, p)
	if err != nil {
		return catalogFile{}, fmt.Errorf("read catalog %s: %w", p, err)
	}
	var file catalogFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return catalogFile{}, fmt.Errorf("parse catalog %s: %w", p, err)
	}
	file.Locale = strings.TrimSpace(file.Locale)
	file.Namespace = strings.TrimSpace(file.Namespace)

	wantLocale := path.Base(path.Dir(p))
	wantNamespace := strings.TrimSuffix(path.Base(p), path.Ext(p))
	switch {
	case file.Locale == "":
		return catalogFile{}, fmt.Errorf("catalog %s: locale is required", p)
	case file.Locale != wantLocale:
		return catalogFile{}, fmt.Errorf("catalog %s: locale %q must match path locale %q", p, file.Locale, wantLocale)
	case file.Namespace == "":
		return catalogFile{}, fmt.Errorf("catalog %s: namespace is required", p)
	case file.Namespace != wantNamespace:
		return catalogFile{}, fmt.Errorf("catalog %s: namespace %q must match filename namespace %q", p, file.Namespace, wantNamespace)
	case len(file.Messages) == 0:
		return catalogFile{}, fmt.Errorf("catalog %s: messages map is required", p)
	}
	return file, nil
}

func (b *Bundle) add(file catalogFile) error {
	lc, ok := b.locales[file.Locale]
	if !ok {
		lc = &LocaleCatalog{
			Locale:     file.Locale,
			Namespaces: map[string]map[string]string{},
			Messages:   map[string]string{},
		}
		b.locales[file.Locale] = lc
	}
	if _, exists := lc.Namespaces[file.Namespace]; exists {
		return fmt.Errorf("namespace %q already defined for locale %q", file.Namespace, file.Locale)
	}

	ns := make(map[string]string, len(file.Messages))
	for key, value := range file.Messages {
		key = strings.TrimSpace(key)
		if key == "" {
			return fmt.Errorf("message key cannot be blank")
		}
		if _, exists := lc.Messages[key]; exists {
			return fmt.Errorf("duplicate key %q in locale %q", key, file.Locale)
		}
		lc.Messages[key] = value
		ns[key] = value
	}
	lc.Namespaces[file.Namespace] = ns
	return nil
}

// buildMatcher prepares locale negotiation with the base locale first so it
// wins when nothing else matches.
func (b *Bundle) buildMatcher() error {
	ordered := []string{BaseLocale}
	for _, locale := range b.Locales() {
		if locale != BaseLocale {
			ordered = append(ordered, locale)
		}
	}
	b.tags = make([]language.Tag, 0, len(ordered))
	for _, locale := range ordered {
		tag, err := language.Parse(locale)
		if err != nil {
			return fmt.Errorf("parse locale tag %q: %w", locale, err)
		}
		b.tags = append(b.tags, tag)
	}
	b.matcher = language.NewMatcher(b.tags)
	return nil
}

// Resolve negotiates the closest catalog locale for a requested language
// tag or Accept-Language list, falling back to the base locale.
func (b *Bundle) Resolve(requested string) string {
	requested = strings.TrimSpace(requested)
	if b == nil || b.matcher == nil || requested == "" {
		return BaseLocale
	}
	if b.HasLocale(requested) {
		return requested
	}
	desired, _, err := language.ParseAcceptLanguage(requested)
	if err != nil || len(desired) == 0 {
		return BaseLocale
	}
	_, index, confidence := b.matcher.Match(desired...)
	if confidence == language.No {
		return BaseLocale
	}
	return b.tags[index].String()
}

// Register registers all catalog messages with x/text/message under each
// locale tag and its base language, so "fr" finds fr-FR messages.
func (b *Bundle) Register() error {
	if b == nil {
		return nil
	}
	for _, locale := range b.Locales() {
		tag, err := language.Parse(locale)
		if err != nil {
			return fmt.Errorf("parse locale tag %q: %w", locale, err)
		}
		tags := []language.Tag{tag}
		if base, conf := tag.Base(); conf != language.No {
			if baseTag, err := language.Parse(base.String()); err == nil && baseTag.String() != tag.String() {
				tags = append(tags, baseTag)
			}
		}
		messages := b.locales[locale].Messages
		for _, key := range slices.Sorted(maps.Keys(messages)) {
			for _, t := range tags {
				if err := message.SetString(t, key, messages[key]); err != nil {
					return fmt.Errorf("register %s/%s: %w", locale, key, err)
				}
			}
		}
	}
	return nil
}

// Printer returns an x/text printer for the resolved locale.
func (b *Bundle) Printer(locale string) *message.Printer {
	return message.NewPrinter(language.Make(b.Resolve(locale)))
}

// HasLocale reports whether the locale exists in this bundle.
func (b *Bundle) HasLocale(locale string) bool {
	if b == nil {
		return false
	}
	_, ok := b.locales[strings.TrimSpace(locale)]
	return ok
}

// Locales returns all available locale identifiers, sorted.
func (b *Bundle) Locales() []string {
	if b == nil {
		return nil
	}
	return slices.Sorted(maps.Keys(b.locales))
}

// LocaleMessages returns a copy of every message of an exact locale.
func (b *Bundle) LocaleMessages(locale string) map[string]string {
	if lc := b.locale(locale); lc != nil {
		return maps.Clone(lc.Messages)
	}
	return map[string]string{}
}

// NamespaceMessages returns a copy of one namespace of an exact locale.
func (b *Bundle) NamespaceMessages(locale string, namespace string) map[string]string {
	if lc := b.locale(locale); lc != nil {
		if ns, ok := lc.Namespaces[strings.TrimSpace(namespace)]; ok {
			return maps.Clone(ns)
		}
	}
	return map[string]string{}
}

// NamespaceMessagesWithFallback returns namespace messages and the locale that satisfied the lookup.
func (b *Bundle) NamespaceMessagesWithFallback(locale string, namespace string) (string, map[string]string) {
	locale = strings.TrimSpace(locale)
	if messages := b.NamespaceMessages(locale, namespace); len(messages) > 0 {
		return locale, messages
	}
	return BaseLocale, b.NamespaceMessages(BaseLocale, namespace)
}

// Message returns one message value with base-locale fallback.
func (b *Bundle) Message(locale string, key string) (string, bool) {
	key = strings.TrimSpace(key)
	if key == "" {
		return "", false
	}
	if lc := b.locale(locale); lc != nil {
		if value, ok := lc.Messages[key]; ok {
			return value, true
		}
	}
	if lc := b.locale(BaseLocale); lc != nil {
		value, ok := lc.Messages[key]
		return value, ok
	}
	return "", false
}

// Lookup binds Message to the locale negotiated for requested.
func (b *Bundle) Lookup(requested string) func(key string) (string, bool) {
	locale := b.Resolve(requested)
	return func(key string) (string, bool) {
		return b.Message(locale, key)
	}
}

func (b *Bundle) locale(locale string) *LocaleCatalog {
	if b == nil {
		return nil
	}
	return b.locales[strings.TrimSpace(locale)]
}

func mustLoadAndRegisterEmbedded() *Bundle {
	bundle, err := LoadEmbedded()
	if err != nil {
		panic(err)
	}
	if err := bundle.Register(); err != nil {
		panic(err)
	}
	return bundle
}
