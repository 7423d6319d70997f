package project

import (
	"regexp"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Slugs are lowercase alphanumeric words joined by single hyphens.
var slugPattern = regexp.MustCompile(`^[a-z0-9]+(?:-[a-z0-9]+)*$`)

var titleCaser = cases.Title(language.English)

// ValidSlug reports whether s is a well-formed project slug.
func ValidSlug(s string) bool {
	return slugPattern.MatchString(s)
}

// TitleFromSlug derives a display title from a slug when the project config
// does not provide one: hyphens become spaces and each word is title-cased.
func TitleFromSlug(slug string) string {
	return titleCaser.String(strings.ReplaceAll(slug, "-", " "))
}
