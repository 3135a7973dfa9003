package app

import (
	"regexp"
	"strconv"
	"strings"
)

var (
	whitespaceRe = regexp.MustCompile(`\s+`)
	nonDigitRe   = regexp.MustCompile(`\D`)
	leadJunkRe   = regexp.MustCompile(`^[^a-zA-Z0-9]+`)
)

// encoding debris Google Maps leaves in extracted text
var textArtifacts = []string{"Óóä", "¬†", " ", "", "", ""}

// CleanText strips known artifacts and collapses runs of whitespace
// (including newlines) into single spaces.
func CleanText(text string) string {
	for _, a := range textArtifacts {
		text = strings.ReplaceAll(text, a, "")
	}
	return strings.TrimSpace(whitespaceRe.ReplaceAllString(text, " "))
}

// CleanAttributes normalizes attribute fragments and joins them with
// commas. Leading non-alphanumeric characters (icons, bullets) are
// stripped per fragment; empty fragments are dropped.
func CleanAttributes(attrs []string) string {
	items := make([]string, 0, len(attrs))
	for _, a := range attrs {
		cleaned := strings.TrimSpace(leadJunkRe.ReplaceAllString(CleanText(a), ""))
		if cleaned != "" {
			items = append(items, cleaned)
		}
	}
	return strings.Join(items, ", ")
}

// ParseIntFromText extracts an integer by discarding every non-digit
// rune, so "1.234 ulasan" parses as 1234. Returns 0 when no digits.
func ParseIntFromText(text string) int {
	nums := nonDigitRe.ReplaceAllString(text, "")
	if nums == "" {
		return 0
	}
	n, err := strconv.Atoi(nums)
	if err != nil {
		return 0
	}
	return n
}

// ParseDecimal parses a locale-flexible decimal ("4,5" or "4.5").
// Returns 0 when unparseable.
func ParseDecimal(text string) float64 {
	s := strings.TrimSpace(strings.ReplaceAll(text, ",", "."))
	if s == "" {
		return 0
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}
	return f
}
