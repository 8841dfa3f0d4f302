package inventory

import (
	"github.com/shopspring/decimal"
)

// Category groups catalog entries and carries the discount applied when a
// basket holds more than one distinct title from it.
type Category struct {
	ID       int64
	Name     string
	Discount decimal.Decimal
}

// Author is identified by its full name, case-insensitively unique. The name
// is immutable once created.
type Author struct {
	ID       int64
	FullName string
}

// CatalogEntry is one priced, stocked book title. The title is globally
// unique and so is the (title, author) pair.
type CatalogEntry struct {
	ID         int64
	Title      string
	AuthorID   int64
	CategoryID int64
	Price      decimal.Decimal
	Quantity   int
}

// CategoryImport is one category record from an import payload.
type CategoryImport struct {
	Name     string          `json:"Name" validate:"required"`
	Discount decimal.Decimal `json:"Discount"`
}

// CatalogImport is one catalog record from an import payload. Name carries
// the "Author - Title" identifier.
type CatalogImport struct {
	Name     string          `json:"Name" validate:"required"`
	Category string          `json:"Category" validate:"required"`
	Price    decimal.Decimal `json:"Price"`
	Quantity int             `json:"Quantity" validate:"min=0"`
}

// Payload is one decoded import batch: the category and catalog collections
// of a single inventory file.
type Payload struct {
	Categories []CategoryImport
	Catalog    []CatalogImport
}

// OrderQuantities maps a catalog entry ID to the number of requested copies.
type OrderQuantities map[int64]int
