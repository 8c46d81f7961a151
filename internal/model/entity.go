// Package model holds the POS entity graph and the read projections built from it.
package model

import (
	"time"

	"github.com/shopspring/decimal"
)

type Cashier struct {
	ID        int     `json:"id"`
	FirstName string  `json:"firstName"`
	LastName  string  `json:"lastName"`
	Orders    []Order `json:"orders,omitempty"`
}

type Category struct {
	ID           int    `json:"id"`
	CategoryName string `json:"categoryName"`
}

type Product struct {
	ID          int    `json:"id"`
	ProductName string `json:"productName"`
	// NUMERIC(10,2) in Postgres
	Price      decimal.Decimal `json:"price"`
	Brand      string          `json:"brand"`
	CategoryID int             `json:"categoryId"`
	Category   *Category       `json:"category,omitempty"`
}

type Order struct {
	ID            int            `json:"id"`
	CashierID     int            `json:"cashierId"`
	Cashier       *Cashier       `json:"cashier,omitempty"`
	PaidOnDate    *time.Time     `json:"paidOnDate"`
	OrderProducts []OrderProduct `json:"orderProducts"`
}

// OrderProduct is an order line, keyed by (OrderID, ProductID).
type OrderProduct struct {
	OrderID   int      `json:"orderId"`
	ProductID int      `json:"productId"`
	Quantity  int      `json:"quantity"`
	Product   *Product `json:"product,omitempty"`
}

// LineTotal is quantity times the current price of the linked product.
// A line without a loaded product contributes zero.
func (op OrderProduct) LineTotal() decimal.Decimal {
	if op.Product == nil {
		return decimal.Zero
	}
	return op.Product.Price.Mul(decimal.NewFromInt(int64(op.Quantity)))
}

// Total is recomputed from live product prices on every call; it is never stored.
func (o Order) Total() decimal.Decimal {
	total := decimal.Zero
	for _, op := range o.OrderProducts {
		total = total.Add(op.LineTotal())
	}
	return total
}

// PopularProduct is one group of order lines summed per product.
type PopularProduct struct {
	ProductID     int
	ProductName   string
	TotalQuantity int
}
