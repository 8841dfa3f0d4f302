package inventory

import (
	"context"

	"storeapp/internal/bookid"
)

// resolveBasket turns raw basket entries into an order-quantity map. Entries
// are trimmed and lowercased first, then grouped by exact string, so case
// differences merge into one count while distinct spellings stay separate
// groups. Every group is evaluated before the outcome is decided: either a
// complete order map or the complete shortfall list.
func resolveBasket(ctx context.Context, tx Tx, rawEntries []string) (OrderQuantities, map[int64]CatalogEntry, error) {
	counts := make(map[string]int)
	var order []string
	for _, raw := range rawEntries {
		key := bookid.Normalize(raw)
		if _, seen := counts[key]; !seen {
			order = append(order, key)
		}
		counts[key]++
	}

	var shortfall []ShortfallItem
	quantities := make(OrderQuantities)
	resolved := make(map[int64]CatalogEntry)

	for _, key := range order {
		requested := counts[key]
		author, title, err := bookid.Split(key)
		if err != nil {
			return nil, nil, err
		}

		entry, err := tx.FindEntryByAuthorTitle(ctx, author, title)
		if err != nil {
			return nil, nil, err
		}

		switch {
		case entry == nil:
			shortfall = append(shortfall, ShortfallItem{Title: title, Author: author, Missing: requested})
		case entry.Quantity < requested:
			shortfall = append(shortfall, ShortfallItem{Title: title, Author: author, Missing: requested - entry.Quantity})
		default:
			// Two groups can resolve to the same entry (spacing variants of
			// one identifier); the first group's count wins.
			if _, dup := quantities[entry.ID]; !dup {
				quantities[entry.ID] = requested
				resolved[entry.ID] = *entry
			}
		}
	}

	if len(shortfall) > 0 {
		return nil, nil, &ShortfallError{Items: shortfall}
	}
	return quantities, resolved, nil
}
