package order

import (
	"time"

	"github.com/MikeMC777/cornerstore/internal/model"
)

// CreateOrderProduct payload of a line.
// swagger:model CreateOrderProduct
type CreateOrderProduct struct {
	ProductID int `json:"productId" example:"1"`
	Quantity  int `json:"quantity"  example:"2"`
}

// CreateOrderRequest payload of order creation. The lines are inserted with the order.
// swagger:model CreateOrderRequest
type CreateOrderRequest struct {
	CashierID     int                  `json:"cashierId"     example:"1"`
	PaidOnDate    *time.Time           `json:"paidOnDate"    example:"2024-03-01T10:30:00Z"`
	OrderProducts []CreateOrderProduct `json:"orderProducts"`
}

func (r CreateOrderRequest) Order() model.Order {
	o := model.Order{
		CashierID:     r.CashierID,
		PaidOnDate:    r.PaidOnDate,
		OrderProducts: make([]model.OrderProduct, 0, len(r.OrderProducts)),
	}
	for _, it := range r.OrderProducts {
		o.OrderProducts = append(o.OrderProducts, model.OrderProduct{
			ProductID: it.ProductID,
			Quantity:  it.Quantity,
		})
	}
	return o
}
