// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package textutil provides accent- and case-insensitive string helpers for
// matching the Spanish labels found in plan and transcript spreadsheets.
package textutil

import (
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Fold strips diacritics and lower-cases s, so "MÓDULO: 1er. Año" and
// "modulo: 1er. ano" compare equal.
func Fold(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	out, _, err := transform.String(t, s)
	if err != nil {
		out = s
	}
	return Lower(out)
}

// Lower lower-cases s with Spanish casing rules.
func Lower(s string) string {
	return cases.Lower(language.Spanish).String(s)
}

// Upper upper-cases s with Spanish casing rules.
func Upper(s string) string {
	return cases.Upper(language.Spanish).String(s)
}

// ContainsFold reports whether sub occurs in s, ignoring case and accents.
func ContainsFold(s, sub string) bool {
	return strings.Contains(Fold(s), Fold(sub))
}

// IsBlank reports whether s is empty after trimming, or holds the "nan"
// placeholder some exporters write for missing cells.
func IsBlank(s string) bool {
	s = strings.TrimSpace(s)
	return s == "" || s == "nan" || s == "NaN"
}
