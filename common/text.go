package common

import (
	"errors"
	"regexp"
	"strings"
	"unicode"
)

var (
	ErrEmptySlug = errors.New("slug cannot be empty")
	nonSlugChars = regexp.MustCompile(`[^a-z0-9]+`)
)

// Slugify lowercases input and collapses everything that is not [a-z0-9]
// into single hyphens. fallback is used when input slugs to nothing.
func Slugify(input, fallback string) (string, error) {
	slug := slugify(input)
	if slug == "" {
		slug = slugify(fallback)
	}
	if slug == "" {
		return "", ErrEmptySlug
	}
	return slug, nil
}

func slugify(s string) string {
	lower := strings.ToLower(strings.TrimSpace(s))
	slug := nonSlugChars.ReplaceAllString(lower, "-")
	return strings.Trim(slug, "-")
}

// Filename builds a download name like "customer-management-system-prd-1a2b.xlsx".
func Filename(name, suffix, ext string) string {
	slug, err := Slugify(name, "document")
	if err != nil {
		slug = "document"
	}
	if s := slugify(suffix); s != "" {
		slug += "-" + s
	}
	return slug + "." + strings.TrimPrefix(ext, ".")
}

// Title upper-cases the first letter of every word and lower-cases the rest.
// Any non-letter starts a new word, so "sales_process" becomes "Sales_Process".
func Title(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	prevLetter := false
	for _, r := range s {
		if unicode.IsLetter(r) {
			if prevLetter {
				b.WriteRune(unicode.ToLower(r))
			} else {
				b.WriteRune(unicode.ToUpper(r))
			}
			prevLetter = true
			continue
		}
		b.WriteRune(r)
		prevLetter = false
	}
	return b.String()
}

// Humanize turns a snake_case key into title-cased words: "hr_process" -> "Hr Process".
func Humanize(key string) string {
	return Title(strings.ReplaceAll(key, "_", " "))
}
