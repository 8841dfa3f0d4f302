package inventory

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"
	log "github.com/sirupsen/logrus"

	"storeapp/internal/bookid"
)

// Service implements inventory reconciliation and basket pricing on top of
// the catalog store.
type Service struct {
	store  Store
	logger *log.Logger
}

func NewService(store Store, logger *log.Logger) *Service {
	return &Service{store: store, logger: logger}
}

// ImportPayload decodes a raw inventory payload and reconciles it into the
// store.
func (s *Service) ImportPayload(ctx context.Context, raw []byte) error {
	payload, err := ParsePayload(raw)
	if err != nil {
		return err
	}
	return s.ImportInventory(ctx, payload.Categories, payload.Catalog)
}

// ImportInventory merges an import batch into the catalog. The category pass
// commits on its own before the catalog pass begins, and each pass runs
// sequentially against a single unit of work because catalog mutation order
// matters for identity keys.
func (s *Service) ImportInventory(ctx context.Context, categories []CategoryImport, entries []CatalogImport) error {
	if err := s.reconcileCategories(ctx, categories); err != nil {
		return err
	}
	return s.reconcileCatalog(ctx, entries)
}

func (s *Service) reconcileCategories(ctx context.Context, categories []CategoryImport) error {
	tx, err := s.store.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin category batch: %w", err)
	}
	defer tx.Rollback(ctx)

	for _, record := range categories {
		if _, err := upsertCategory(ctx, tx, record.Name, record.Discount, true); err != nil {
			return fmt.Errorf("category %q: %w", record.Name, err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit category batch: %w", err)
	}
	s.logger.WithField("categories", len(categories)).Info("category batch reconciled")
	return nil
}

func (s *Service) reconcileCatalog(ctx context.Context, entries []CatalogImport) error {
	tx, err := s.store.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin catalog batch: %w", err)
	}
	defer tx.Rollback(ctx)

	var created, updated int
	for _, record := range entries {
		author, title, err := bookid.Split(record.Name)
		if err != nil {
			return fmt.Errorf("catalog record %q: %w", record.Name, err)
		}

		authorID, err := resolveAuthor(ctx, tx, author)
		if err != nil {
			return fmt.Errorf("author %q: %w", author, err)
		}

		// A category first seen on a catalog record starts with zero
		// discount; only the category pass may change a stored discount.
		category, err := upsertCategory(ctx, tx, record.Category, decimal.Zero, false)
		if err != nil {
			return fmt.Errorf("category %q: %w", record.Category, err)
		}

		existing, err := tx.FindEntryByTitleAuthor(ctx, bookid.Normalize(title), authorID)
		if err != nil {
			return fmt.Errorf("lookup %q: %w", title, err)
		}

		if existing == nil {
			entry := &CatalogEntry{
				Title:      title,
				AuthorID:   authorID,
				CategoryID: category.ID,
				Price:      record.Price,
				Quantity:   record.Quantity,
			}
			if err := tx.InsertEntry(ctx, entry); err != nil {
				return fmt.Errorf("insert %q: %w", title, err)
			}
			created++
			continue
		}

		changed := false
		if existing.CategoryID != category.ID {
			existing.CategoryID = category.ID
			changed = true
		}
		if !existing.Price.Equal(record.Price) {
			existing.Price = record.Price
			changed = true
		}
		if existing.Quantity != record.Quantity {
			existing.Quantity = record.Quantity
			changed = true
		}
		if changed {
			if err := tx.UpdateEntry(ctx, existing); err != nil {
				return fmt.Errorf("update %q: %w", title, err)
			}
			updated++
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit catalog batch: %w", err)
	}
	s.logger.WithFields(log.Fields{
		"records": len(entries),
		"created": created,
		"updated": updated,
	}).Info("catalog batch reconciled")
	return nil
}

// upsertCategory looks a category up by normalized name and creates it on a
// miss. An existing category's discount is overwritten only when allowUpdate
// is set and the value actually differs.
func upsertCategory(ctx context.Context, tx Tx, name string, discount decimal.Decimal, allowUpdate bool) (*Category, error) {
	existing, err := tx.FindCategoryByName(ctx, bookid.Normalize(name))
	if err != nil {
		return nil, err
	}
	if existing == nil {
		c := &Category{Name: name, Discount: discount}
		if err := tx.UpsertCategory(ctx, c); err != nil {
			return nil, err
		}
		return c, nil
	}
	if allowUpdate && !existing.Discount.Equal(discount) {
		existing.Discount = discount
		if err := tx.UpsertCategory(ctx, existing); err != nil {
			return nil, err
		}
	}
	return existing, nil
}

func resolveAuthor(ctx context.Context, tx Tx, fullName string) (int64, error) {
	existing, err := tx.FindAuthorByName(ctx, bookid.Normalize(fullName))
	if err != nil {
		return 0, err
	}
	if existing != nil {
		return existing.ID, nil
	}
	a := &Author{FullName: fullName}
	if err := tx.InsertAuthor(ctx, a); err != nil {
		return 0, err
	}
	return a.ID, nil
}

// QuantityOf reports the on-hand quantity for one book. The lookup is
// case-insensitive on both title and author name.
func (s *Service) QuantityOf(ctx context.Context, title, author string) (int, error) {
	tx, err := s.store.Begin(ctx)
	if err != nil {
		return 0, err
	}
	defer tx.Rollback(ctx)

	entry, err := tx.FindEntryByAuthorTitle(ctx, bookid.Normalize(author), bookid.Normalize(title))
	if err != nil {
		return 0, err
	}
	if entry == nil {
		return 0, fmt.Errorf("%q by %q: %w", title, author, ErrNotFound)
	}
	return entry.Quantity, nil
}

// PriceBasket resolves a basket of raw "Author - Title" entries against
// current stock and prices it. Resolution is all-or-nothing: a single
// unavailable book fails the whole basket with the complete shortfall list.
// Stock is reported, never decremented.
func (s *Service) PriceBasket(ctx context.Context, rawEntries []string) (decimal.Decimal, error) {
	tx, err := s.store.Begin(ctx)
	if err != nil {
		return decimal.Zero, err
	}
	defer tx.Rollback(ctx)

	quantities, entries, err := resolveBasket(ctx, tx, rawEntries)
	if err != nil {
		return decimal.Zero, err
	}

	categoryIDs := make([]int64, 0, len(entries))
	seen := make(map[int64]bool)
	for _, e := range entries {
		if !seen[e.CategoryID] {
			seen[e.CategoryID] = true
			categoryIDs = append(categoryIDs, e.CategoryID)
		}
	}
	categories, err := tx.CategoriesByIDs(ctx, categoryIDs)
	if err != nil {
		return decimal.Zero, err
	}

	return priceOrder(entries, categories, quantities), nil
}
