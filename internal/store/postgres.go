package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"storeapp/internal/inventory"
)

// Postgres implements inventory.Store on a pgx pool. Each unit of work is
// one database transaction.
type Postgres struct {
	db *pgxpool.Pool
}

func NewPostgres(db *pgxpool.Pool) *Postgres {
	return &Postgres{db: db}
}

func (s *Postgres) Begin(ctx context.Context) (inventory.Tx, error) {
	tx, err := s.db.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("begin: %w", err)
	}
	return &pgTx{tx: tx}, nil
}

type pgTx struct {
	tx pgx.Tx
}

func (t *pgTx) FindCategoryByName(ctx context.Context, name string) (*inventory.Category, error) {
	const query = `
		SELECT id, name, discount::text
		FROM categories
		WHERE lower(name) = $1`

	var c inventory.Category
	var discount string
	err := t.tx.QueryRow(ctx, query, name).Scan(&c.ID, &c.Name, &discount)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	c.Discount, err = decimal.NewFromString(discount)
	if err != nil {
		return nil, fmt.Errorf("category %d discount: %w", c.ID, err)
	}
	return &c, nil
}

func (t *pgTx) UpsertCategory(ctx context.Context, c *inventory.Category) error {
	if c.ID == 0 {
		const query = `
			INSERT INTO categories (name, discount)
			VALUES ($1, $2::numeric)
			RETURNING id`
		return t.tx.QueryRow(ctx, query, c.Name, c.Discount.String()).Scan(&c.ID)
	}

	const query = `UPDATE categories SET discount = $2::numeric WHERE id = $1`
	_, err := t.tx.Exec(ctx, query, c.ID, c.Discount.String())
	return err
}

func (t *pgTx) FindAuthorByName(ctx context.Context, fullName string) (*inventory.Author, error) {
	const query = `
		SELECT id, full_name
		FROM authors
		WHERE lower(full_name) = $1`

	var a inventory.Author
	err := t.tx.QueryRow(ctx, query, fullName).Scan(&a.ID, &a.FullName)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &a, nil
}

func (t *pgTx) InsertAuthor(ctx context.Context, a *inventory.Author) error {
	const query = `
		INSERT INTO authors (full_name)
		VALUES ($1)
		RETURNING id`
	return t.tx.QueryRow(ctx, query, a.FullName).Scan(&a.ID)
}

func (t *pgTx) FindEntryByTitleAuthor(ctx context.Context, title string, authorID int64) (*inventory.CatalogEntry, error) {
	const query = `
		SELECT id, title, author_id, category_id, price::text, quantity
		FROM book_catalog
		WHERE lower(title) = $1 AND author_id = $2`

	return t.scanEntry(t.tx.QueryRow(ctx, query, title, authorID))
}

func (t *pgTx) FindEntryByAuthorTitle(ctx context.Context, author, title string) (*inventory.CatalogEntry, error) {
	const query = `
		SELECT bc.id, bc.title, bc.author_id, bc.category_id, bc.price::text, bc.quantity
		FROM book_catalog bc
		JOIN authors a ON a.id = bc.author_id
		WHERE lower(a.full_name) = $1 AND lower(bc.title) = $2`

	return t.scanEntry(t.tx.QueryRow(ctx, query, author, title))
}

func (t *pgTx) scanEntry(row pgx.Row) (*inventory.CatalogEntry, error) {
	var e inventory.CatalogEntry
	var price string
	err := row.Scan(&e.ID, &e.Title, &e.AuthorID, &e.CategoryID, &price, &e.Quantity)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	e.Price, err = decimal.NewFromString(price)
	if err != nil {
		return nil, fmt.Errorf("entry %d price: %w", e.ID, err)
	}
	return &e, nil
}

func (t *pgTx) InsertEntry(ctx context.Context, e *inventory.CatalogEntry) error {
	const query = `
		INSERT INTO book_catalog (title, author_id, category_id, price, quantity)
		VALUES ($1, $2, $3, $4::numeric, $5)
		RETURNING id`
	return t.tx.QueryRow(ctx, query, e.Title, e.AuthorID, e.CategoryID, e.Price.String(), e.Quantity).Scan(&e.ID)
}

func (t *pgTx) UpdateEntry(ctx context.Context, e *inventory.CatalogEntry) error {
	const query = `
		UPDATE book_catalog
		SET category_id = $2, price = $3::numeric, quantity = $4
		WHERE id = $1`
	_, err := t.tx.Exec(ctx, query, e.ID, e.CategoryID, e.Price.String(), e.Quantity)
	return err
}

func (t *pgTx) CategoriesByIDs(ctx context.Context, ids []int64) (map[int64]inventory.Category, error) {
	const query = `
		SELECT id, name, discount::text
		FROM categories
		WHERE id = ANY($1)`

	rows, err := t.tx.Query(ctx, query, ids)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make(map[int64]inventory.Category, len(ids))
	for rows.Next() {
		var c inventory.Category
		var discount string
		if err := rows.Scan(&c.ID, &c.Name, &discount); err != nil {
			return nil, err
		}
		c.Discount, err = decimal.NewFromString(discount)
		if err != nil {
			return nil, fmt.Errorf("category %d discount: %w", c.ID, err)
		}
		out[c.ID] = c
	}
	return out, rows.Err()
}

func (t *pgTx) Commit(ctx context.Context) error {
	return t.tx.Commit(ctx)
}

func (t *pgTx) Rollback(ctx context.Context) error {
	return t.tx.Rollback(ctx)
}
