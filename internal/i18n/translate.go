// Package i18n resolves dotted translation keys for the supported languages
// and formats numbers for the active locale.
package i18n

import (
	"embed"
	"encoding/json"
	"fmt"
	"path"
	"sort"
	"strings"
)

// Supported languages.
const (
	English = "en"
	Arabic  = "ar"

	DefaultLanguage = English
)

// Supported lists every language with a bundled table.
var Supported = []string{English, Arabic}

//go:embed locales/*.json
var bundled embed.FS

// Tables maps a language to its nested translation table.
type Tables map[string]map[string]interface{}

// IsSupported reports whether lang has a bundled table.
func IsSupported(lang string) bool {
	for _, l := range Supported {
		if l == lang {
			return true
		}
	}
	return false
}

// IsRTL reports whether lang is written right to left.
func IsRTL(lang string) bool {
	return lang == Arabic
}

// Direction returns "rtl" or "ltr" for lang.
func Direction(lang string) string {
	if IsRTL(lang) {
		return "rtl"
	}
	return "ltr"
}

// LoadTables parses the bundled translation tables.
func LoadTables() (Tables, error) {
	tables := make(Tables, len(Supported))
	for _, lang := range Supported {
		raw, err := bundled.ReadFile(path.Join("locales", lang+".json"))
		if err != nil {
			return nil, fmt.Errorf("read %s table: %w", lang, err)
		}
		var table map[string]interface{}
		if err := json.Unmarshal(raw, &table); err != nil {
			return nil, fmt.Errorf("parse %s table: %w", lang, err)
		}
		tables[lang] = table
	}
	return tables, nil
}

// Translate resolves key in lang, then in the default language. A key missing
// from both comes back unchanged. Each {name} in the text is replaced with
// params[name]; placeholders without a param are left as they are.
func Translate(tables Tables, key, lang string, params map[string]string) string {
	text, ok := lookup(tables[lang], key)
	if !ok && lang != DefaultLanguage {
		text, ok = lookup(tables[DefaultLanguage], key)
	}
	if !ok {
		return key
	}
	return interpolate(text, params)
}

func lookup(table map[string]interface{}, key string) (string, bool) {
	if table == nil || key == "" {
		return "", false
	}
	var node interface{} = table
	for _, part := range strings.Split(key, ".") {
		m, ok := node.(map[string]interface{})
		if !ok {
			return "", false
		}
		if node, ok = m[part]; !ok {
			return "", false
		}
	}
	text, ok := node.(string)
	return text, ok
}

func interpolate(text string, params map[string]string) string {
	if len(params) == 0 {
		return text
	}
	names := make([]string, 0, len(params))
	for name := range params {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		text = strings.ReplaceAll(text, "{"+name+"}", params[name])
	}
	return text
}
