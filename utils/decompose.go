package utils

import (
	"strings"
	"time"
	"unicode"
)

// DecomposeFullName splits a full name into given/middle/surname parts for
// records that never captured them separately: last token is the surname,
// first token the given name, anything between becomes the middle name.
// This is a heuristic and gets multi-word surnames wrong; explicit name
// parts always win over it.
func DecomposeFullName(fullName string) (first, middle, last string) {
	parts := strings.Fields(fullName)
	if len(parts) == 0 {
		return "", "", ""
	}

	first = parts[0]
	last = parts[len(parts)-1]
	if len(parts) > 2 {
		middle = strings.Join(parts[1:len(parts)-1], " ")
	}
	return first, middle, last
}

// DecomposeISODate splits an ISO calendar date (YYYY-MM-DD) into its
// components. ok is false unless the input has exactly three non-empty
// components; callers leave the date fields blank in that case.
func DecomposeISODate(date string) (day, month, year string, ok bool) {
	parts := strings.Split(date, "-")
	if len(parts) != 3 {
		return "", "", "", false
	}
	for _, p := range parts {
		if p == "" {
			return "", "", "", false
		}
	}
	return parts[2], parts[1], parts[0], true
}

// NormalizeAadhaar strips all whitespace from an Aadhaar number so the
// visual grouping allowed at data entry ("1234 5678 9012") never reaches
// the character cells.
func NormalizeAadhaar(number string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, number)
}

// FormatDDMMYYYY renders a time in the DD/MM/YYYY style used on the
// declaration line.
func FormatDDMMYYYY(t time.Time) string {
	return t.Format("02/01/2006")
}

// DeclarationDate turns a record-store timestamp into the declaration date.
// Returns "" on anything unparseable.
func DeclarationDate(createdAt string) string {
	for _, layout := range []string{time.RFC3339, "2006-01-02T15:04:05", "2006-01-02"} {
		if t, err := time.Parse(layout, createdAt); err == nil {
			return FormatDDMMYYYY(t)
		}
	}
	return ""
}
