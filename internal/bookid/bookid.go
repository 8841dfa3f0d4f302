package bookid

import (
	"errors"
	"regexp"
	"strings"
)

// ErrMalformedIdentifier is returned when an identifier does not split into
// an author and a title.
var ErrMalformedIdentifier = errors.New("book identifier not in the correct format")

var delimiter = regexp.MustCompile(`\s*-\s*`)

// Split breaks an "Author - Title" identifier into its author and title
// parts. The delimiter is a hyphen with optional surrounding whitespace.
func Split(identifier string) (author, title string, err error) {
	parts := delimiter.Split(identifier, -1)
	if len(parts) != 2 {
		return "", "", ErrMalformedIdentifier
	}
	author = strings.TrimSpace(parts[0])
	title = strings.TrimSpace(parts[1])
	if author == "" || title == "" {
		return "", "", ErrMalformedIdentifier
	}
	return author, title, nil
}

// Normalize lowercases and trims a natural key. Every store lookup goes
// through this so import-side and basket-side comparisons cannot drift.
func Normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
