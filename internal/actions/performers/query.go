package performers

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/performer-tools/cli/internal/usage"
)

// maxQueryLen caps query length to keep prompt rendering and scoring sane.
const maxQueryLen = 100

// allowedQueryRune reports whether r may appear in a query. The set mirrors
// what performer directory names are made of: letters, digits, spaces and
// a small amount of punctuation.
func allowedQueryRune(r rune) bool {
	if unicode.IsLetter(r) || unicode.IsDigit(r) {
		return true
	}
	return strings.ContainsRune(" .()_[]-", r)
}

// validateQuery checks a non-interactive query argument before scoring.
func validateQuery(query string) error {
	if strings.TrimSpace(query) == "" {
		return usage.InvalidQuery("query is empty")
	}
	if utf8.RuneCountInString(query) > maxQueryLen {
		return usage.InvalidQuery("query is too long")
	}
	for _, r := range query {
		if !allowedQueryRune(r) {
			return usage.InvalidQuery("character " + string(r) + " is not allowed")
		}
	}
	return nil
}
