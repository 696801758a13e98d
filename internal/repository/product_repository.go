package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/minhvu/tech-store-backend/internal/model"
)

type ProductRepo struct{ DB *sql.DB }

func NewProductRepo(db *sql.DB) *ProductRepo { return &ProductRepo{DB: db} }

const productColumns = "id,name,image,price,description,category"

// ListAll returns every product ordered by id ascending. An empty table
// yields an empty slice, not an error.
func (r *ProductRepo) ListAll(ctx context.Context) ([]model.Product, error) {
	rows, err := r.DB.QueryContext(ctx,
		"SELECT "+productColumns+" FROM products ORDER BY id ASC")
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanProducts(rows)
}

// GetByID fetches a single product or ErrProductNotFound.
func (r *ProductRepo) GetByID(ctx context.Context, id uint64) (model.Product, error) {
	var p model.Product
	err := r.DB.QueryRowContext(ctx,
		"SELECT "+productColumns+" FROM products WHERE id=? LIMIT 1", id).
		Scan(&p.ID, &p.Name, &p.Image, &p.Price, &p.Description, &p.Category)
	if errors.Is(err, sql.ErrNoRows) {
		return model.Product{}, ErrProductNotFound
	}
	return p, err
}

// ListByCategory returns products whose category matches exactly, ordered by
// id ascending. No normalization is applied; the column's utf8mb4_bin
// collation keeps the comparison byte-for-byte, so "Laptop" and "laptop"
// are different categories. An unknown category yields an empty slice.
func (r *ProductRepo) ListByCategory(ctx context.Context, category string) ([]model.Product, error) {
	rows, err := r.DB.QueryContext(ctx,
		"SELECT "+productColumns+" FROM products WHERE category=? ORDER BY id ASC", category)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanProducts(rows)
}

func scanProducts(rows *sql.Rows) ([]model.Product, error) {
	out := make([]model.Product, 0, 8)
	for rows.Next() {
		var p model.Product
		if err := rows.Scan(&p.ID, &p.Name, &p.Image, &p.Price, &p.Description, &p.Category); err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}
