package store

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"storeapp/internal/inventory"
)

func TestMemoryCommitPublishesWrites(t *testing.T) {
	ctx := context.Background()
	s := NewMemory()

	tx, err := s.Begin(ctx)
	require.NoError(t, err)

	c := &inventory.Category{Name: "Fantasy", Discount: decimal.RequireFromString("0.1")}
	require.NoError(t, tx.UpsertCategory(ctx, c))
	assert.NotZero(t, c.ID)

	a := &inventory.Author{FullName: "J.K Rowling"}
	require.NoError(t, tx.InsertAuthor(ctx, a))

	e := &inventory.CatalogEntry{Title: "Goblet Of fire", AuthorID: a.ID, CategoryID: c.ID, Price: decimal.NewFromInt(8), Quantity: 2}
	require.NoError(t, tx.InsertEntry(ctx, e))

	// Staged writes are visible inside the transaction.
	found, err := tx.FindEntryByAuthorTitle(ctx, "j.k rowling", "goblet of fire")
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, e.ID, found.ID)

	require.NoError(t, tx.Commit(ctx))
	require.NoError(t, tx.Rollback(ctx)) // no-op after commit

	tx2, err := s.Begin(ctx)
	require.NoError(t, err)
	defer tx2.Rollback(ctx)

	found, err = tx2.FindEntryByTitleAuthor(ctx, "goblet of fire", a.ID)
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, 2, found.Quantity)

	categories, err := tx2.CategoriesByIDs(ctx, []int64{c.ID})
	require.NoError(t, err)
	assert.True(t, categories[c.ID].Discount.Equal(decimal.RequireFromString("0.1")))
}

func TestMemoryRollbackDiscardsWrites(t *testing.T) {
	ctx := context.Background()
	s := NewMemory()

	tx, err := s.Begin(ctx)
	require.NoError(t, err)
	require.NoError(t, tx.UpsertCategory(ctx, &inventory.Category{Name: "Fantasy"}))
	require.NoError(t, tx.Rollback(ctx))

	tx2, err := s.Begin(ctx)
	require.NoError(t, err)
	defer tx2.Rollback(ctx)

	found, err := tx2.FindCategoryByName(ctx, "fantasy")
	require.NoError(t, err)
	assert.Nil(t, found)
}

func TestMemoryLookupsAreCaseInsensitive(t *testing.T) {
	ctx := context.Background()
	s := NewMemory()

	tx, err := s.Begin(ctx)
	require.NoError(t, err)
	require.NoError(t, tx.InsertAuthor(ctx, &inventory.Author{FullName: "Isaac Asimov"}))
	require.NoError(t, tx.Commit(ctx))

	tx2, err := s.Begin(ctx)
	require.NoError(t, err)
	defer tx2.Rollback(ctx)

	found, err := tx2.FindAuthorByName(ctx, "isaac asimov")
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, "Isaac Asimov", found.FullName)
}
