package inventory

import (
	"context"
)

//go:generate mockgen -source=ports.go -destination=mock_store.go -package=inventory

// Store opens unit-of-work transactions against the catalog store. Each
// reconciliation pass and each basket resolution runs inside its own Tx.
type Store interface {
	Begin(ctx context.Context) (Tx, error)
}

// Tx is one unit of work. Name and title lookups take keys already passed
// through bookid.Normalize; nothing is durable until Commit. Find methods
// return (nil, nil) on a clean miss.
type Tx interface {
	FindCategoryByName(ctx context.Context, name string) (*Category, error)
	UpsertCategory(ctx context.Context, c *Category) error

	FindAuthorByName(ctx context.Context, fullName string) (*Author, error)
	InsertAuthor(ctx context.Context, a *Author) error

	FindEntryByTitleAuthor(ctx context.Context, title string, authorID int64) (*CatalogEntry, error)
	FindEntryByAuthorTitle(ctx context.Context, author, title string) (*CatalogEntry, error)
	InsertEntry(ctx context.Context, e *CatalogEntry) error
	UpdateEntry(ctx context.Context, e *CatalogEntry) error
	CategoriesByIDs(ctx context.Context, ids []int64) (map[int64]Category, error)

	Commit(ctx context.Context) error
	Rollback(ctx context.Context) error
}
