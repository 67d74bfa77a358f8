package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"marketplace-api/internal/model"
)

const productColumns = `id, owner_id, title, description, price, image_url, category, created_at`

type ProductRepository struct {
	db DBTX
}

func NewProductRepository(db DBTX) *ProductRepository {
	return &ProductRepository{db: db}
}

func (r *ProductRepository) List(ctx context.Context) ([]model.Product, error) {
	rows, err := r.db.Query(ctx,
		`SELECT `+productColumns+` FROM products ORDER BY created_at DESC, id DESC`)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	return collectProducts(rows)
}

func (r *ProductRepository) ListByOwner(ctx context.Context, ownerID int64) ([]model.Product, error) {
	rows, err := r.db.Query(ctx,
		`SELECT `+productColumns+` FROM products WHERE owner_id = $1 ORDER BY created_at DESC, id DESC`,
		ownerID)
	if err != nil {
		return nil, fmt.Errorf("list products by owner: %w", err)
	}
	return collectProducts(rows)
}

func (r *ProductRepository) Create(ctx context.Context, p model.Product) (model.Product, error) {
	err := r.db.QueryRow(ctx,
		`INSERT INTO products (owner_id, title, description, price, image_url, category)
		 VALUES ($1, $2, $3, $4, $5, $6)
		 RETURNING id, created_at`,
		p.OwnerID, p.Title, p.Description, p.Price, p.ImageURL, p.Category).Scan(&p.ID, &p.CreatedAt)
	if err != nil {
		return model.Product{}, fmt.Errorf("create product: %w", err)
	}
	return p, nil
}

func collectProducts(rows pgx.Rows) ([]model.Product, error) {
	defer rows.Close()

	products := make([]model.Product, 0)
	for rows.Next() {
		var p model.Product
		if err := rows.Scan(&p.ID, &p.OwnerID, &p.Title, &p.Description, &p.Price,
			&p.ImageURL, &p.Category, &p.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan product: %w", err)
		}
		products = append(products, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate products: %w", err)
	}
	return products, nil
}
