// Package product provides the repository interface and PostgreSQL implementation for managing products.
package product

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/MikeMC777/cornerstore/internal/database"
	"github.com/MikeMC777/cornerstore/internal/model"
)

var (
	ErrNotFound = errors.New("product not found")
)

type Repository interface {
	List(ctx context.Context) ([]model.Product, error)
	Create(ctx context.Context, p *model.Product) error
	Update(ctx context.Context, id int, p *model.Product) error
	Popular(ctx context.Context) ([]model.PopularProduct, error)
}

type PGRepo struct{ db *pgxpool.Pool }

func NewPGRepo(db *pgxpool.Pool) *PGRepo { return &PGRepo{db: db} }

// List loads every product with its category, in id order.
func (r *PGRepo) List(ctx context.Context) ([]model.Product, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	rows, err := r.db.Query(ctx, `
		SELECT p.id, p.product_name, p.price::text, p.brand, p.category_id, c.category_name
		FROM products p
		JOIN categories c ON c.id = p.category_id
		ORDER BY p.id
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []model.Product{}
	for rows.Next() {
		var (
			p     model.Product
			c     model.Category
			price string
		)
		if err := rows.Scan(&p.ID, &p.ProductName, &price, &p.Brand, &p.CategoryID, &c.CategoryName); err != nil {
			return nil, err
		}
		if p.Price, err = decimal.NewFromString(price); err != nil {
			return nil, err
		}
		c.ID = p.CategoryID
		p.Category = &c
		out = append(out, p)
	}
	return out, rows.Err()
}

// Create ignores p.ID and sets it to the identity the store assigned.
func (r *PGRepo) Create(ctx context.Context, p *model.Product) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	err := r.db.QueryRow(ctx, `
		INSERT INTO products (product_name, price, brand, category_id)
		VALUES ($1,$2,$3,$4)
		RETURNING id
	`, p.ProductName, p.Price.String(), p.Brand, p.CategoryID).Scan(&p.ID)
	return database.Translate(err)
}

// Update replaces every column of the row whose id equals both id and p.ID.
// No such row means ErrNotFound.
func (r *PGRepo) Update(ctx context.Context, id int, p *model.Product) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	tag, err := r.db.Exec(ctx, `
		UPDATE products
		SET product_name = $3,
		    price = $4,
		    brand = $5,
		    category_id = $6
		WHERE id = $1 AND id = $2
	`, id, p.ID, p.ProductName, p.Price.String(), p.Brand, p.CategoryID)
	if err != nil {
		return database.Translate(err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// Popular sums order line quantities per product, enumerated by product id.
func (r *PGRepo) Popular(ctx context.Context) ([]model.PopularProduct, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	rows, err := r.db.Query(ctx, `
		SELECT op.product_id, p.product_name, SUM(op.quantity)::int
		FROM order_products op
		JOIN products p ON p.id = op.product_id
		GROUP BY op.product_id, p.product_name
		ORDER BY op.product_id
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []model.PopularProduct{}
	for rows.Next() {
		var pp model.PopularProduct
		if err := rows.Scan(&pp.ProductID, &pp.ProductName, &pp.TotalQuantity); err != nil {
			return nil, err
		}
		out = append(out, pp)
	}
	return out, rows.Err()
}
