package cashier

import "github.com/MikeMC777/cornerstore/internal/model"

// CreateCashierRequest payload of creation. Any id sent is ignored.
// swagger:model CreateCashierRequest
type CreateCashierRequest struct {
	ID        int    `json:"id"`
	FirstName string `json:"firstName" example:"Fay"`
	LastName  string `json:"lastName"  example:"Lee"`
}

func (r CreateCashierRequest) Cashier() model.Cashier {
	return model.Cashier{FirstName: r.FirstName, LastName: r.LastName}
}
