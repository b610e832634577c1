package security

import (
	"fmt"
	"html"
	"strings"
	"unicode/utf8"

	"github.com/microcosm-cc/bluemonday"
)

var htmlPolicy = bluemonday.StrictPolicy()

// InputSanitizer cleans free text (CLI arguments, spreadsheet cells) before
// it reaches the number parser.
type InputSanitizer struct {
	maxLength int
}

// NewInputSanitizer returns a sanitizer rejecting inputs above maxLength runes.
func NewInputSanitizer(maxLength int) *InputSanitizer {
	return &InputSanitizer{maxLength: maxLength}
}

// Clean strips HTML markup and null bytes and trims whitespace. The policy
// escapes quotes and ampersands on the way out; those are unescaped again so
// entity digits never leak into the number. Inputs longer than the configured
// limit, counted in runes after cleaning, are rejected.
func (s *InputSanitizer) Clean(input string) (string, error) {
	input = strings.ReplaceAll(input, "\x00", "")
	input = html.UnescapeString(htmlPolicy.Sanitize(input))
	input = strings.TrimSpace(input)

	if n := utf8.RuneCountInString(input); n > s.maxLength {
		return "", fmt.Errorf("input is %d characters, limit is %d", n, s.maxLength)
	}
	return input, nil
}
