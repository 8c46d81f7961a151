package cashier

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/MikeMC777/cornerstore/internal/model"
)

type Repository interface {
	List(ctx context.Context) ([]model.Cashier, error)
	Create(ctx context.Context, c *model.Cashier) error
}

type PGRepo struct{ db *pgxpool.Pool }

func NewPGRepo(db *pgxpool.Pool) *PGRepo { return &PGRepo{db: db} }

// List returns cashiers without their orders, in id order.
func (r *PGRepo) List(ctx context.Context) ([]model.Cashier, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	rows, err := r.db.Query(ctx, `
		SELECT id, first_name, last_name
		FROM cashiers
		ORDER BY id
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []model.Cashier{}
	for rows.Next() {
		var c model.Cashier
		if err := rows.Scan(&c.ID, &c.FirstName, &c.LastName); err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

// Create ignores c.ID and sets it to the identity the store assigned.
func (r *PGRepo) Create(ctx context.Context, c *model.Cashier) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	return r.db.QueryRow(ctx, `
		INSERT INTO cashiers (first_name, last_name)
		VALUES ($1,$2)
		RETURNING id
	`, c.FirstName, c.LastName).Scan(&c.ID)
}
