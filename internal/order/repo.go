package order

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/MikeMC777/cornerstore/internal/database"
	"github.com/MikeMC777/cornerstore/internal/model"
)

var (
	ErrNotFound = errors.New("order not found")
)

type Repository interface {
	List(ctx context.Context) ([]model.Order, error)
	GetByID(ctx context.Context, id int) (*model.Order, error)
	Create(ctx context.Context, o *model.Order) error
	Delete(ctx context.Context, id int) error
}

type PGRepo struct{ db *pgxpool.Pool }

func NewPGRepo(db *pgxpool.Pool) *PGRepo { return &PGRepo{db: db} }

// List loads every order with its cashier and its lines, each line carrying
// its product and category.
func (r *PGRepo) List(ctx context.Context) ([]model.Order, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	rows, err := r.db.Query(ctx, `
    SELECT o.id, o.cashier_id, o.paid_on_date, c.first_name, c.last_name
    FROM orders o
    JOIN cashiers c ON c.id = o.cashier_id
    ORDER BY o.id
  `)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []model.Order{}
	for rows.Next() {
		o, err := scanOrder(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, o)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	lines, err := r.lines(ctx, nil)
	if err != nil {
		return nil, err
	}
	for i := range out {
		out[i].OrderProducts = lines[out[i].ID]
	}
	return out, nil
}

// GetByID is exact-one-or-error: a missing id is ErrNotFound.
func (r *PGRepo) GetByID(ctx context.Context, id int) (*model.Order, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	o, err := scanOrder(r.db.QueryRow(ctx, `
    SELECT o.id, o.cashier_id, o.paid_on_date, c.first_name, c.last_name
    FROM orders o
    JOIN cashiers c ON c.id = o.cashier_id
    WHERE o.id = $1
  `, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	lines, err := r.lines(ctx, []int{id})
	if err != nil {
		return nil, err
	}
	o.OrderProducts = lines[o.ID]
	return &o, nil
}

// Create inserts the order and its lines in one transaction and sets o.ID
// (and every line's OrderID) to the assigned identity.
func (r *PGRepo) Create(ctx context.Context, o *model.Order) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	tx, err := r.db.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if err := tx.QueryRow(ctx, `
    INSERT INTO orders (cashier_id, paid_on_date)
    VALUES ($1,$2)
    RETURNING id
  `, o.CashierID, o.PaidOnDate).Scan(&o.ID); err != nil {
		return database.Translate(err)
	}

	for i := range o.OrderProducts {
		op := &o.OrderProducts[i]
		op.OrderID = o.ID
		if _, err := tx.Exec(ctx, `
      INSERT INTO order_products (order_id, product_id, quantity)
      VALUES ($1,$2,$3)
    `, op.OrderID, op.ProductID, op.Quantity); err != nil {
			return database.Translate(err)
		}
	}
	return tx.Commit(ctx)
}

// Delete removes the order; its lines go with it through ON DELETE CASCADE.
func (r *PGRepo) Delete(ctx context.Context, id int) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	tag, err := r.db.Exec(ctx, `DELETE FROM orders WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// lines loads order lines grouped by order id; nil ids means every order.
func (r *PGRepo) lines(ctx context.Context, orderIDs []int) (map[int][]model.OrderProduct, error) {
	rows, err := r.db.Query(ctx, `
    SELECT op.order_id, op.product_id, op.quantity,
           p.product_name, p.price::text, p.brand, p.category_id, c.category_name
    FROM order_products op
    JOIN products p ON p.id = op.product_id
    JOIN categories c ON c.id = p.category_id
    WHERE $1::int[] IS NULL OR op.order_id = ANY($1)
    ORDER BY op.order_id, op.product_id
  `, orderIDs)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make(map[int][]model.OrderProduct)
	for rows.Next() {
		var (
			op    model.OrderProduct
			p     model.Product
			c     model.Category
			price string
		)
		if err := rows.Scan(&op.OrderID, &op.ProductID, &op.Quantity,
			&p.ProductName, &price, &p.Brand, &p.CategoryID, &c.CategoryName); err != nil {
			return nil, err
		}
		if p.Price, err = decimal.NewFromString(price); err != nil {
			return nil, err
		}
		p.ID = op.ProductID
		c.ID = p.CategoryID
		p.Category = &c
		op.Product = &p
		out[op.OrderID] = append(out[op.OrderID], op)
	}
	return out, rows.Err()
}

func scanOrder(row pgx.Row) (model.Order, error) {
	var (
		o model.Order
		c model.Cashier
	)
	if err := row.Scan(&o.ID, &o.CashierID, &o.PaidOnDate, &c.FirstName, &c.LastName); err != nil {
		return model.Order{}, err
	}
	c.ID = o.CashierID
	o.Cashier = &c
	o.OrderProducts = []model.OrderProduct{}
	return o, nil
}
