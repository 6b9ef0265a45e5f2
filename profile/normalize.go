// Package profile flattens heterogeneous LLM profile fields into
// display-ready strings.
package profile

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Recognized structured keys, in emission order
var structuredKeys = []struct {
	key   string
	label string
}{
	{"traits", "Traits"},
	{"working_style", "Working Style"},
	{"expertise", "Expertise"},
	{"approach", "Approach"},
}

const characterFallback = "A cheerful and curious teammate who loves adventures and always looks out for friends."

// NormalizeDescription flattens a description field. When the value is
// unusable it falls back to a truncated slice of the user's original input.
func NormalizeDescription(value any, fullDescription string) string {
	if flat, ok := normalize(value); ok {
		return flat
	}
	return descriptionFallback(fullDescription)
}

// NormalizeCharacter flattens a character field, substituting a fixed
// boilerplate sentence when the value is unusable.
func NormalizeCharacter(value any) string {
	if flat, ok := normalize(value); ok {
		return flat
	}
	return characterFallback
}

func normalize(value any) (string, bool) {
	switch v := value.(type) {
	case nil:
		return "", false
	case map[string]any:
		flat := flattenMap(v)
		return flat, flat != ""
	case []any:
		flat := joinList(v)
		return flat, flat != ""
	case string:
		s := strings.TrimSpace(v)
		if s == "" {
			return "", false
		}
		// A string that opens with a brace or quote is usually a
		// serialized map literal; reparse it instead of displaying it.
		if s[0] == '{' || s[0] == '\'' {
			if m, ok := reparseMapLiteral(s); ok {
				flat := flattenMap(m)
				return flat, flat != ""
			}
			return "", false
		}
		return s, true
	default:
		return fmt.Sprintf("%v", v), true
	}
}

func flattenMap(m map[string]any) string {
	var parts []string
	for _, k := range structuredKeys {
		raw, ok := m[k.key]
		if !ok {
			continue
		}
		var text string
		if list, isList := raw.([]any); isList {
			text = joinListWith(list, ", ")
		} else {
			text = strings.TrimSpace(fmt.Sprintf("%v", raw))
		}
		if text == "" {
			continue
		}
		parts = append(parts, k.label+": "+text)
	}
	return strings.Join(parts, ". ")
}

func joinList(list []any) string {
	return joinListWith(list, " ")
}

func joinListWith(list []any, sep string) string {
	var parts []string
	for _, item := range list {
		s := strings.TrimSpace(fmt.Sprintf("%v", item))
		if s != "" {
			parts = append(parts, s)
		}
	}
	return strings.Join(parts, sep)
}

// reparseMapLiteral best-effort parses a stringified map back into a map,
// tolerating single-quoted pseudo-JSON.
func reparseMapLiteral(s string) (map[string]any, bool) {
	var m map[string]any
	if err := json.Unmarshal([]byte(s), &m); err == nil {
		return m, true
	}
	requoted := strings.ReplaceAll(s, "'", `"`)
	if err := json.Unmarshal([]byte(requoted), &m); err == nil {
		return m, true
	}
	return nil, false
}

func descriptionFallback(fullDescription string) string {
	s := strings.TrimSpace(fullDescription)
	if s == "" {
		return characterFallback
	}
	if len(s) > 100 {
		s = s[:100]
	}
	return s
}
