package utils

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// DisplayName turns a snake_case key into a title-cased label.
func DisplayName(key string) string {
	return cases.Title(language.English).String(strings.ReplaceAll(key, "_", " "))
}

// Capitalize upper-cases the first word only.
func Capitalize(s string) string {
	if s == "" {
		return s
	}
	first, rest, _ := strings.Cut(s, " ")
	out := cases.Title(language.English).String(first)
	if rest != "" {
		out += " " + rest
	}
	return out
}
