package validation

import "strings"

var unsafeChars = strings.NewReplacer("'", "", `"`, "", ";", "", "-", "")

// SanitizeInput strips quote, semicolon and hyphen characters from strings.
// Other values are returned unchanged.
func SanitizeInput(v any) any {
	s, ok := v.(string)
	if !ok {
		return v
	}
	return unsafeChars.Replace(s)
}

// SanitizeBody keeps only the fields schema knows and runs SanitizeInput
// over the free-text ones. UUID and date fields are left alone since they
// already passed a strict format check and legitimately contain hyphens.
func SanitizeBody(schema Schema, body map[string]any) map[string]any {
	out := make(map[string]any, len(schema))
	for _, f := range schema {
		v, ok := body[f.Name]
		if !ok {
			continue
		}
		if f.Rule.Type == TypeString {
			v = SanitizeInput(v)
		}
		out[f.Name] = v
	}
	return out
}
