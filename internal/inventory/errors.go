package inventory

import (
	"errors"
	"fmt"
	"strings"
)

// ErrNotFound is returned when a catalog entry is not in the store.
var ErrNotFound = errors.New("catalog entry not found")

// ErrBadPayload is returned when an import payload cannot be decomposed into
// its category and catalog collections. Nothing is committed in that case.
var ErrBadPayload = errors.New("book inventory payload not in the correct format")

// ShortfallItem describes one basket line that cannot be fulfilled.
type ShortfallItem struct {
	Title   string `json:"title"`
	Author  string `json:"author"`
	Missing int    `json:"missing"`
}

// ShortfallError reports every requested book that is missing or
// under-stocked. The resolver evaluates the whole basket before returning
// it, so the list is always complete.
type ShortfallError struct {
	Items []ShortfallItem
}

func (e *ShortfallError) Error() string {
	lines := make([]string, len(e.Items))
	for i, item := range e.Items {
		lines[i] = fmt.Sprintf("%s by %s: missing %d", item.Title, item.Author, item.Missing)
	}
	return "not enough inventory: " + strings.Join(lines, "; ")
}
