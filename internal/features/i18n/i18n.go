package i18n

import (
	"maps"
	"slices"
	"strings"
)

const DefaultLanguage = "en"

// Bundle is the string table of one language.
type Bundle struct {
	Language string            `json:"language"`
	RTL      bool              `json:"rtl"`
	Strings  map[string]string `json:"strings"`
}

// Resolve maps a requested language to a supported one, falling back to en.
// Region subtags are ignored: ar-EG resolves to ar.
func Resolve(lang string) string {
	lang = strings.ToLower(strings.TrimSpace(lang))
	if i := strings.IndexAny(lang, "-_"); i > 0 {
		lang = lang[:i]
	}
	if _, ok := tables[lang]; ok {
		return lang
	}
	return DefaultLanguage
}

func IsRTL(lang string) bool {
	return Resolve(lang) == "ar"
}

// T translates key, returning the key itself when it has no translation.
func T(lang, key string) string {
	if v, ok := tables[Resolve(lang)][key]; ok {
		return v
	}
	return key
}

func Languages() []string {
	return slices.Sorted(maps.Keys(tables))
}

// Load returns a copy of the table for lang.
func Load(lang string) Bundle {
	resolved := Resolve(lang)
	return Bundle{
		Language: resolved,
		RTL:      resolved == "ar",
		Strings:  maps.Clone(tables[resolved]),
	}
}
