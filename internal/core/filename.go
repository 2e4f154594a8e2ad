package core

import "strings"

const maxFilenameBase = 50

// FilenameBase turns a free-form query into a safe filename stem shared
// by every artifact writer and the chart renderer. Only letters, digits,
// spaces, hyphens and underscores survive; spaces become underscores.
// The stem is capped at 50 characters and never empty.
func FilenameBase(query string) string {
	var b strings.Builder
	for _, r := range query {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			b.WriteRune(r)
		case r == ' ', r == '-', r == '_':
			b.WriteRune(r)
		}
	}
	base := strings.TrimRight(b.String(), " ")
	base = strings.ReplaceAll(base, " ", "_")
	if len(base) > maxFilenameBase {
		base = base[:maxFilenameBase]
	}
	if base == "" {
		base = "untitled"
	}
	return base
}
