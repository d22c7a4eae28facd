package service

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// cleanLine prepares a single-line form field for storage: invalid UTF-8 and control characters
// are dropped and whitespace runs collapse to one space.
func cleanLine(s string) string {
	return strings.Join(strings.Fields(stripInvalid(s, false)), " ")
}

// cleanNotes keeps line breaks, which sellers use to list items.
func cleanNotes(s string) string {
	lines := strings.Split(stripInvalid(s, true), "\n")
	for i, line := range lines {
		lines[i] = strings.Join(strings.Fields(line), " ")
	}
	return strings.TrimSpace(strings.Join(lines, "\n"))
}

// stripInvalid removes bytes postgres rejects in text columns along with control characters.
func stripInvalid(s string, keepNewlines bool) string {
	var b strings.Builder
	b.Grow(len(s))

	for len(s) > 0 {
		r, size := utf8.DecodeRuneInString(s)
		s = s[size:]
		switch {
		case r == utf8.RuneError && size == 1:
			continue
		case r == '\n' && keepNewlines:
			b.WriteRune(r)
		case r == '\t' || r == '\n' || r == '\r':
			b.WriteRune(' ')
		case unicode.IsControl(r):
			continue
		default:
			b.WriteRune(r)
		}
	}

	return b.String()
}
