package inventory

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParsePayload(t *testing.T) {
	t.Run("valid payload", func(t *testing.T) {
		raw := []byte(`{
			"Category": [{"Name": "Fantasy", "Discount": 0.1}],
			"Catalog": [{"Name": "J.K Rowling - Goblet Of fire", "Category": "Fantasy", "Price": 8, "Quantity": 2}]
		}`)

		p, err := ParsePayload(raw)
		require.NoError(t, err)
		require.Len(t, p.Categories, 1)
		require.Len(t, p.Catalog, 1)
		assert.Equal(t, "Fantasy", p.Categories[0].Name)
		assert.True(t, p.Categories[0].Discount.Equal(dec("0.1")))
		assert.Equal(t, "J.K Rowling - Goblet Of fire", p.Catalog[0].Name)
		assert.True(t, p.Catalog[0].Price.Equal(dec("8")))
		assert.Equal(t, 2, p.Catalog[0].Quantity)
	})

	t.Run("not json", func(t *testing.T) {
		_, err := ParsePayload([]byte("not json at all"))
		assert.ErrorIs(t, err, ErrBadPayload)
	})

	t.Run("missing category collection", func(t *testing.T) {
		_, err := ParsePayload([]byte(`{"Catalog": []}`))
		assert.ErrorIs(t, err, ErrBadPayload)
	})

	t.Run("missing catalog collection", func(t *testing.T) {
		_, err := ParsePayload([]byte(`{"Category": []}`))
		assert.ErrorIs(t, err, ErrBadPayload)
	})

	t.Run("collection of wrong shape", func(t *testing.T) {
		_, err := ParsePayload([]byte(`{"Category": {"Name": "Fantasy"}, "Catalog": []}`))
		assert.ErrorIs(t, err, ErrBadPayload)
	})

	t.Run("negative quantity", func(t *testing.T) {
		raw := []byte(`{
			"Category": [],
			"Catalog": [{"Name": "a - b", "Category": "c", "Price": 1, "Quantity": -1}]
		}`)
		_, err := ParsePayload(raw)
		assert.ErrorIs(t, err, ErrBadPayload)
	})

	t.Run("catalog record without category", func(t *testing.T) {
		raw := []byte(`{
			"Category": [],
			"Catalog": [{"Name": "a - b", "Price": 1, "Quantity": 1}]
		}`)
		_, err := ParsePayload(raw)
		assert.ErrorIs(t, err, ErrBadPayload)
	})
}
