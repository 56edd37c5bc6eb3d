// Package prompts exposes the built-in prompt templates listed in the
// navigation panel. Picking one seeds the chat input with its text.
package prompts

import (
	_ "embed"
	"encoding/json"
	"sort"
	"strings"

	"github.com/zhubert/chatgate/internal/errors"
)

//go:embed prompts.json
var catalogue []byte

// DefaultLanguage is used when the requested language has no templates.
const DefaultLanguage = "cn"

// Template is a titled prompt.
type Template struct {
	Title  string
	Prompt string
}

// Catalogue maps a language code to its templates.
type Catalogue map[string][]Template

// Load parses the embedded catalogue.
func Load() (Catalogue, error) {
	return Parse(catalogue)
}

// Parse decodes a catalogue of the form {"lang": [[title, prompt], ...]}.
// Entries that are not a non-empty [title, prompt] pair are skipped.
func Parse(data []byte) (Catalogue, error) {
	var raw map[string][]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, errors.E(errors.Op("prompts.Parse"), errors.KindInvalid, "malformed prompt catalogue", err)
	}

	c := make(Catalogue, len(raw))
	for lang, entries := range raw {
		var list []Template
		for _, e := range entries {
			var pair []string
			if err := json.Unmarshal(e, &pair); err != nil || len(pair) != 2 {
				continue
			}
			title := strings.TrimSpace(pair[0])
			if title == "" || strings.TrimSpace(pair[1]) == "" {
				continue
			}
			list = append(list, Template{Title: title, Prompt: strings.TrimRight(pair[1], "\n")})
		}
		c[lang] = list
	}
	return c, nil
}

// For returns the templates for lang, falling back to DefaultLanguage.
func (c Catalogue) For(lang string) []Template {
	if list := c[strings.ToLower(lang)]; len(list) > 0 {
		return list
	}
	return c[DefaultLanguage]
}

// Languages returns the languages that carry at least one template.
func (c Catalogue) Languages() []string {
	var langs []string
	for lang, list := range c {
		if len(list) > 0 {
			langs = append(langs, lang)
		}
	}
	sort.Strings(langs)
	return langs
}

// LanguageFromEnv picks a catalogue language from a locale string such as
// "en_US.UTF-8". Anything that is not Chinese maps to "en".
func LanguageFromEnv(locale string) string {
	locale = strings.ToLower(locale)
	if locale == "" || strings.HasPrefix(locale, "zh") {
		return "cn"
	}
	return "en"
}
