package document

import (
	"regexp"
	"strings"
)

var whitespaceRun = regexp.MustCompile(`\s+`)

// Normalize collapses every run of whitespace (spaces, tabs, newlines) into a
// single space and trims leading and trailing whitespace. The result carries
// no information about the original line structure.
//
// Normalize is idempotent: Normalize(Normalize(s)) == Normalize(s).
func Normalize(raw string) string {
	return strings.TrimSpace(whitespaceRun.ReplaceAllString(raw, " "))
}
