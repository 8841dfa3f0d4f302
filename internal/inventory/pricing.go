package inventory

import (
	"github.com/shopspring/decimal"
)

// priceOrder computes the basket total. A category's discount applies only
// when the basket holds more than one distinct title from that category, and
// the discount amount is one unit price's worth per book line, not scaled by
// the requested quantity. Pure function: no store access, no mutation.
func priceOrder(entries map[int64]CatalogEntry, categories map[int64]Category, quantities OrderQuantities) decimal.Decimal {
	byCategory := make(map[int64][]CatalogEntry)
	for id := range quantities {
		entry := entries[id]
		byCategory[entry.CategoryID] = append(byCategory[entry.CategoryID], entry)
	}

	total := decimal.Zero
	for categoryID, group := range byCategory {
		discount := decimal.Zero
		if len(group) > 1 {
			discount = categories[categoryID].Discount
		}
		for _, entry := range group {
			qty := decimal.NewFromInt(int64(quantities[entry.ID]))
			total = total.Add(entry.Price.Mul(qty).Sub(entry.Price.Mul(discount)))
		}
	}
	return total
}
