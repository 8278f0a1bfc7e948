// Package glob provides anchored glob matching for string search terms. A
// pattern matches the whole value, never a substring: "mill*" matches
// "millipede" but "ill*" does not.
package glob

import (
	"regexp"
	"strings"
)

// HasWildcard reports whether a pattern contains glob metacharacters.
func HasWildcard(pattern string) bool {
	return strings.ContainsAny(pattern, "*?")
}

// Translate converts a glob pattern into an anchored regular expression.
// '*' matches any run of characters, '?' matches a single character, all
// other characters match literally.
func Translate(pattern string) string {
	var sb strings.Builder
	sb.WriteString("^")
	for _, r := range pattern {
		switch r {
		case '*':
			sb.WriteString(".*")
		case '?':
			sb.WriteString(".")
		default:
			sb.WriteString(regexp.QuoteMeta(string(r)))
		}
	}
	sb.WriteString("$")
	return sb.String()
}

// Compile translates a glob pattern and compiles it.
func Compile(pattern string) (*regexp.Regexp, error) {
	return regexp.Compile(Translate(pattern))
}

// Match reports whether value matches the glob pattern in full.
func Match(pattern, value string) (bool, error) {
	re, err := Compile(pattern)
	if err != nil {
		return false, err
	}
	return re.MatchString(value), nil
}
