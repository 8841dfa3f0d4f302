package store

import (
	"context"
	"sync"

	"storeapp/internal/bookid"
	"storeapp/internal/inventory"
)

// Memory implements inventory.Store in process. A unit of work stages its
// writes on copies of the catalog maps and publishes them on Commit, so a
// rolled-back batch leaves no trace. Begin serializes units of work; the
// core runs one logical import or resolution at a time anyway.
type Memory struct {
	mu         sync.Mutex
	nextID     int64
	categories map[int64]inventory.Category
	authors    map[int64]inventory.Author
	entries    map[int64]inventory.CatalogEntry
}

func NewMemory() *Memory {
	return &Memory{
		nextID:     1,
		categories: make(map[int64]inventory.Category),
		authors:    make(map[int64]inventory.Author),
		entries:    make(map[int64]inventory.CatalogEntry),
	}
}

func (s *Memory) Begin(ctx context.Context) (inventory.Tx, error) {
	s.mu.Lock()
	return &memTx{
		store:      s,
		nextID:     s.nextID,
		categories: copyMap(s.categories),
		authors:    copyMap(s.authors),
		entries:    copyMap(s.entries),
	}, nil
}

func copyMap[V any](src map[int64]V) map[int64]V {
	dst := make(map[int64]V, len(src))
	for k, v := range src {
		dst[k] = v
	}
	return dst
}

type memTx struct {
	store      *Memory
	nextID     int64
	categories map[int64]inventory.Category
	authors    map[int64]inventory.Author
	entries    map[int64]inventory.CatalogEntry
	done       bool
}

func (t *memTx) id() int64 {
	id := t.nextID
	t.nextID++
	return id
}

func (t *memTx) FindCategoryByName(ctx context.Context, name string) (*inventory.Category, error) {
	for _, c := range t.categories {
		if bookid.Normalize(c.Name) == name {
			match := c
			return &match, nil
		}
	}
	return nil, nil
}

func (t *memTx) UpsertCategory(ctx context.Context, c *inventory.Category) error {
	if c.ID == 0 {
		c.ID = t.id()
	}
	t.categories[c.ID] = *c
	return nil
}

func (t *memTx) FindAuthorByName(ctx context.Context, fullName string) (*inventory.Author, error) {
	for _, a := range t.authors {
		if bookid.Normalize(a.FullName) == fullName {
			match := a
			return &match, nil
		}
	}
	return nil, nil
}

func (t *memTx) InsertAuthor(ctx context.Context, a *inventory.Author) error {
	a.ID = t.id()
	t.authors[a.ID] = *a
	return nil
}

func (t *memTx) FindEntryByTitleAuthor(ctx context.Context, title string, authorID int64) (*inventory.CatalogEntry, error) {
	for _, e := range t.entries {
		if e.AuthorID == authorID && bookid.Normalize(e.Title) == title {
			match := e
			return &match, nil
		}
	}
	return nil, nil
}

func (t *memTx) FindEntryByAuthorTitle(ctx context.Context, author, title string) (*inventory.CatalogEntry, error) {
	for _, e := range t.entries {
		if bookid.Normalize(e.Title) != title {
			continue
		}
		a, ok := t.authors[e.AuthorID]
		if ok && bookid.Normalize(a.FullName) == author {
			match := e
			return &match, nil
		}
	}
	return nil, nil
}

func (t *memTx) InsertEntry(ctx context.Context, e *inventory.CatalogEntry) error {
	e.ID = t.id()
	t.entries[e.ID] = *e
	return nil
}

func (t *memTx) UpdateEntry(ctx context.Context, e *inventory.CatalogEntry) error {
	t.entries[e.ID] = *e
	return nil
}

func (t *memTx) CategoriesByIDs(ctx context.Context, ids []int64) (map[int64]inventory.Category, error) {
	out := make(map[int64]inventory.Category, len(ids))
	for _, id := range ids {
		if c, ok := t.categories[id]; ok {
			out[id] = c
		}
	}
	return out, nil
}

func (t *memTx) Commit(ctx context.Context) error {
	if t.done {
		return nil
	}
	t.done = true
	t.store.nextID = t.nextID
	t.store.categories = t.categories
	t.store.authors = t.authors
	t.store.entries = t.entries
	t.store.mu.Unlock()
	return nil
}

func (t *memTx) Rollback(ctx context.Context) error {
	if t.done {
		return nil
	}
	t.done = true
	t.store.mu.Unlock()
	return nil
}
