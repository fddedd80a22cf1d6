package i18n

import (
	"encoding/json"
	"os"
)

// Translator resolves UI strings per language. A missing key or language
// falls back to the key itself, so lookups never fail.
type Translator struct {
	tables map[string]map[string]string
}

// Load reads a translations file shaped {"en": {"key": "text"}, ...}.
func Load(path string) (*Translator, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var tables map[string]map[string]string
	if err := json.Unmarshal(raw, &tables); err != nil {
		return nil, err
	}
	return &Translator{tables: tables}, nil
}

// Empty returns a translator with no tables; every lookup echoes its key.
func Empty() *Translator {
	return &Translator{tables: map[string]map[string]string{}}
}

func (tr *Translator) T(key, lang string) string {
	if table, ok := tr.tables[lang]; ok {
		if text, ok := table[key]; ok {
			return text
		}
	}
	return key
}
