// Package i18n holds the widget's translation tables and language helpers.
package i18n

import (
	"embed"
	"fmt"
	"io/fs"
	"math/rand"
	"path"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

// DefaultLanguage is used when detection finds no matching table.
const DefaultLanguage = "en"

//go:embed locales/*.yaml
var localesFS embed.FS

// Quote is an attributed saying shown under the catalog.
type Quote struct {
	Text   string `yaml:"text" json:"text"`
	Author string `yaml:"author" json:"author"`
}

// Table is one language's translations.
type Table struct {
	Labels map[string]string `yaml:"labels"`
	Items  map[string]string `yaml:"items"`
	Quotes []Quote           `yaml:"quotes"`
}

// Bundle maps a language code to its table.
type Bundle struct {
	tables map[string]*Table
}

// Load parses the embedded locale files.
func Load() (*Bundle, error) {
	return LoadFS(localesFS, "locales")
}

// LoadFS parses every <lang>.yaml under dir.
func LoadFS(fsys fs.FS, dir string) (*Bundle, error) {
	entries, err := fs.ReadDir(fsys, dir)
	if err != nil {
		return nil, fmt.Errorf("read locales: %w", err)
	}
	b := &Bundle{tables: make(map[string]*Table)}
	for _, e := range entries {
		if e.IsDir() || path.Ext(e.Name()) != ".yaml" {
			continue
		}
		data, err := fs.ReadFile(fsys, path.Join(dir, e.Name()))
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", e.Name(), err)
		}
		var t Table
		if err := yaml.Unmarshal(data, &t); err != nil {
			return nil, fmt.Errorf("parse %s: %w", e.Name(), err)
		}
		b.tables[strings.TrimSuffix(e.Name(), ".yaml")] = &t
	}
	return b, nil
}

// NewBundle builds a bundle from in-memory tables.
func NewBundle(tables map[string]*Table) *Bundle {
	return &Bundle{tables: tables}
}

// Has reports whether lang has a table.
func (b *Bundle) Has(lang string) bool {
	_, ok := b.tables[lang]
	return ok
}

// Languages returns the available codes, sorted.
func (b *Bundle) Languages() []string {
	out := make([]string, 0, len(b.tables))
	for k := range b.tables {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

// Label looks up a UI string. ok is false when either the language or the
// key is missing; callers keep whatever they displayed before.
func (b *Bundle) Label(lang, key string) (string, bool) {
	t, ok := b.tables[lang]
	if !ok {
		return "", false
	}
	v, ok := t.Labels[key]
	if !ok || v == "" {
		return "", false
	}
	return v, true
}

// ItemName looks up a catalog item's display name.
func (b *Bundle) ItemName(lang, id string) (string, bool) {
	t, ok := b.tables[lang]
	if !ok {
		return "", false
	}
	v, ok := t.Items[id]
	if !ok || v == "" {
		return "", false
	}
	return v, true
}

// Quotes returns lang's quote list, nil if the language is unknown.
func (b *Bundle) Quotes(lang string) []Quote {
	if t, ok := b.tables[lang]; ok {
		return t.Quotes
	}
	return nil
}

// Detect picks the table for a runtime locale such as "fr-FR" or
// "fr_FR.UTF-8" by its primary subtag, defaulting to English.
func (b *Bundle) Detect(locale string) string {
	primary := strings.ToLower(strings.TrimSpace(locale))
	if i := strings.IndexAny(primary, "-_."); i >= 0 {
		primary = primary[:i]
	}
	if b.Has(primary) {
		return primary
	}
	return DefaultLanguage
}

// Direction returns the text direction for lang.
func Direction(lang string) string {
	if lang == "ar" {
		return "rtl"
	}
	return "ltr"
}

// PickQuote selects one quote uniformly at random. ok is false for an empty
// list.
func PickQuote(quotes []Quote, rnd *rand.Rand) (Quote, bool) {
	if len(quotes) == 0 {
		return Quote{}, false
	}
	return quotes[rnd.Intn(len(quotes))], true
}
