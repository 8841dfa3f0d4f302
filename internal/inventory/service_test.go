package inventory_test

import (
	"context"
	"io"
	"testing"

	"github.com/shopspring/decimal"
	log "github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"storeapp/internal/bookid"
	"storeapp/internal/inventory"
	"storeapp/internal/store"
)

const importPayload = `{
	"Category": [
		{"Name": "Fantasy", "Discount": 0.1},
		{"Name": "Science Fiction", "Discount": 0},
		{"Name": "Philosophy", "Discount": 0}
	],
	"Catalog": [
		{"Name": "J.K Rowling - Goblet Of fire", "Category": "Fantasy", "Price": 8, "Quantity": 2},
		{"Name": "Robin Hobb - Assassin Apprentice", "Category": "Fantasy", "Price": 12, "Quantity": 8},
		{"Name": "Ayn Rand - FountainHead", "Category": "Philosophy", "Price": 18.5, "Quantity": 10},
		{"Name": "Isaac Asimov - Foundation", "Category": "Science Fiction", "Price": 8.2, "Quantity": 1},
		{"Name": "Isaac Asimov - Robot series", "Category": "Science Fiction", "Price": 5.25, "Quantity": 1}
	]
}`

func newTestService(t *testing.T) *inventory.Service {
	t.Helper()
	logger := log.New()
	logger.SetOutput(io.Discard)
	svc := inventory.NewService(store.NewMemory(), logger)
	require.NoError(t, svc.ImportPayload(context.Background(), []byte(importPayload)))
	return svc
}

func assertTotal(t *testing.T, want string, got decimal.Decimal) {
	t.Helper()
	assert.True(t, got.Equal(decimal.RequireFromString(want)), "want %s, got %s", want, got)
}

func TestQuantityOf(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	for _, tc := range []struct {
		title, author string
		want          int
	}{
		{"Goblet Of fire", "J.K Rowling", 2},
		{"FountainHead", "Ayn Rand", 10},
		{"Foundation", "Isaac Asimov", 1},
		{"Robot series", "Isaac Asimov", 1},
		{"Assassin Apprentice", "Robin Hobb", 8},
	} {
		got, err := svc.QuantityOf(ctx, tc.title, tc.author)
		require.NoError(t, err, tc.title)
		assert.Equal(t, tc.want, got, tc.title)
	}

	t.Run("lookup is case-insensitive", func(t *testing.T) {
		got, err := svc.QuantityOf(ctx, "GOBLET OF FIRE", "j.k rowling")
		require.NoError(t, err)
		assert.Equal(t, 2, got)
	})

	t.Run("unknown book", func(t *testing.T) {
		_, err := svc.QuantityOf(ctx, "Mort", "Terry Pratchett")
		assert.ErrorIs(t, err, inventory.ErrNotFound)
	})
}

func TestPriceBasket(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	t.Run("single title", func(t *testing.T) {
		total, err := svc.PriceBasket(ctx, []string{"J.K Rowling - Goblet Of fire"})
		require.NoError(t, err)
		assertTotal(t, "8", total)
	})

	t.Run("two copies of one title stay undiscounted", func(t *testing.T) {
		total, err := svc.PriceBasket(ctx, []string{
			"J.K Rowling - Goblet Of fire",
			"J.K Rowling - Goblet Of fire",
		})
		require.NoError(t, err)
		assertTotal(t, "16", total)
	})

	t.Run("two distinct fantasy titles trigger the discount once per line", func(t *testing.T) {
		total, err := svc.PriceBasket(ctx, []string{
			"J.K Rowling - Goblet Of fire",
			"J.K Rowling - Goblet Of fire",
			"Robin Hobb - Assassin Apprentice",
		})
		require.NoError(t, err)
		assertTotal(t, "26", total)
	})

	t.Run("discount does not scale with quantity", func(t *testing.T) {
		total, err := svc.PriceBasket(ctx, []string{
			"J.K Rowling - Goblet Of fire",
			"Robin Hobb - Assassin Apprentice",
			"Robin Hobb - Assassin Apprentice",
		})
		require.NoError(t, err)
		assertTotal(t, "30", total)
	})

	t.Run("mixed categories", func(t *testing.T) {
		total, err := svc.PriceBasket(ctx, []string{
			"Ayn Rand - FountainHead",
			"Isaac Asimov - Foundation",
			"Isaac Asimov - Robot series",
			"J.K Rowling - Goblet Of fire",
			"J.K Rowling - Goblet Of fire",
			"Robin Hobb - Assassin Apprentice",
			"Robin Hobb - Assassin Apprentice",
		})
		require.NoError(t, err)
		assertTotal(t, "69.95", total)
	})

	t.Run("total is invariant under basket ordering", func(t *testing.T) {
		total, err := svc.PriceBasket(ctx, []string{
			"Robin Hobb - Assassin Apprentice",
			"J.K Rowling - Goblet Of fire",
			"Isaac Asimov - Robot series",
			"Robin Hobb - Assassin Apprentice",
			"Ayn Rand - FountainHead",
			"J.K Rowling - Goblet Of fire",
			"Isaac Asimov - Foundation",
		})
		require.NoError(t, err)
		assertTotal(t, "69.95", total)
	})

	t.Run("case differences merge into one group", func(t *testing.T) {
		total, err := svc.PriceBasket(ctx, []string{
			"J.K ROWLING - GOBLET OF FIRE",
			"j.k rowling - goblet of fire",
		})
		require.NoError(t, err)
		assertTotal(t, "16", total)
	})

	t.Run("understocked book fails the whole basket", func(t *testing.T) {
		_, err := svc.PriceBasket(ctx, []string{
			"Isaac Asimov - Robot series",
			"Isaac Asimov - Robot series",
		})
		var shortfall *inventory.ShortfallError
		require.ErrorAs(t, err, &shortfall)
		require.Len(t, shortfall.Items, 1)
		assert.Equal(t, "robot series", shortfall.Items[0].Title)
		assert.Equal(t, "isaac asimov", shortfall.Items[0].Author)
		assert.Equal(t, 1, shortfall.Items[0].Missing)
	})

	t.Run("shortfall report is complete, not first-failure", func(t *testing.T) {
		_, err := svc.PriceBasket(ctx, []string{
			"Isaac Asimov - Robot series",
			"Isaac Asimov - Robot series",
			"Terry Pratchett - Mort",
			"J.K Rowling - Goblet Of fire",
		})
		var shortfall *inventory.ShortfallError
		require.ErrorAs(t, err, &shortfall)
		require.Len(t, shortfall.Items, 2)
		assert.Equal(t, 1, shortfall.Items[0].Missing)
		assert.Equal(t, "mort", shortfall.Items[1].Title)
		assert.Equal(t, 1, shortfall.Items[1].Missing)
	})

	t.Run("malformed entry", func(t *testing.T) {
		_, err := svc.PriceBasket(ctx, []string{"Goblet Of fire"})
		assert.ErrorIs(t, err, bookid.ErrMalformedIdentifier)
	})
}

func TestImportInventory(t *testing.T) {
	ctx := context.Background()

	t.Run("re-import of an identical payload changes nothing", func(t *testing.T) {
		svc := newTestService(t)
		require.NoError(t, svc.ImportPayload(ctx, []byte(importPayload)))

		got, err := svc.QuantityOf(ctx, "Goblet Of fire", "J.K Rowling")
		require.NoError(t, err)
		assert.Equal(t, 2, got)

		total, err := svc.PriceBasket(ctx, []string{"J.K Rowling - Goblet Of fire"})
		require.NoError(t, err)
		assertTotal(t, "8", total)
	})

	t.Run("later import updates changed fields only", func(t *testing.T) {
		svc := newTestService(t)
		update := `{
			"Category": [{"Name": "fantasy", "Discount": 0.5}],
			"Catalog": [{"Name": "J.K ROWLING - Goblet Of fire", "Category": "Fantasy", "Price": 10, "Quantity": 5}]
		}`
		require.NoError(t, svc.ImportPayload(ctx, []byte(update)))

		got, err := svc.QuantityOf(ctx, "Goblet Of fire", "J.K Rowling")
		require.NoError(t, err)
		assert.Equal(t, 5, got)

		// New discount 0.5 applies across the two fantasy titles.
		// 10*1 - 10*0.5 + 12*1 - 12*0.5 = 5 + 6
		total, err := svc.PriceBasket(ctx, []string{
			"J.K Rowling - Goblet Of fire",
			"Robin Hobb - Assassin Apprentice",
		})
		require.NoError(t, err)
		assertTotal(t, "11", total)
	})

	t.Run("category first seen on a catalog record starts with zero discount", func(t *testing.T) {
		svc := newTestService(t)
		update := `{
			"Category": [],
			"Catalog": [
				{"Name": "Frank Herbert - Dune", "Category": "Epics", "Price": 6, "Quantity": 3},
				{"Name": "Homer - Odyssey", "Category": "Epics", "Price": 4, "Quantity": 3}
			]
		}`
		require.NoError(t, svc.ImportPayload(ctx, []byte(update)))

		total, err := svc.PriceBasket(ctx, []string{
			"Frank Herbert - Dune",
			"Homer - Odyssey",
		})
		require.NoError(t, err)
		assertTotal(t, "10", total)
	})

	t.Run("malformed catalog name aborts the import", func(t *testing.T) {
		svc := newTestService(t)
		bad := `{
			"Category": [],
			"Catalog": [{"Name": "No Delimiter Here", "Category": "Fantasy", "Price": 1, "Quantity": 1}]
		}`
		err := svc.ImportPayload(ctx, []byte(bad))
		assert.ErrorIs(t, err, bookid.ErrMalformedIdentifier)

		// The failed batch must not have created the entry.
		_, err = svc.QuantityOf(ctx, "No Delimiter Here", "anyone")
		assert.ErrorIs(t, err, inventory.ErrNotFound)
	})

	t.Run("bad payload rejects the whole import", func(t *testing.T) {
		svc := newTestService(t)
		err := svc.ImportPayload(ctx, []byte(`{"Catalog": []}`))
		assert.ErrorIs(t, err, inventory.ErrBadPayload)
	})
}
