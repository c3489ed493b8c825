package valueobject

import (
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

// OnlyDigits strips every non-digit rune from s.
func OnlyDigits(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// CleanText trims s, folds internal whitespace runs into a single space and
// returns the NFC form, so "São  Paulo" and "São Paulo" compare equal.
func CleanText(s string) string {
	fields := strings.FieldsFunc(s, unicode.IsSpace)
	return norm.NFC.String(strings.Join(fields, " "))
}

// OptionalText returns nil for blank input and a cleaned copy otherwise.
func OptionalText(s *string) *string {
	if s == nil {
		return nil
	}
	cleaned := CleanText(*s)
	if cleaned == "" {
		return nil
	}
	return &cleaned
}
