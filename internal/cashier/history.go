package cashier

import "github.com/MikeMC777/cornerstore/internal/model"

// AttachOrders distributes orders to their cashiers, keeping the order of
// both slices. Orders of unknown cashiers are dropped.
func AttachOrders(cashiers []model.Cashier, orders []model.Order) []model.Cashier {
	byID := make(map[int]int, len(cashiers))
	for i := range cashiers {
		byID[cashiers[i].ID] = i
		cashiers[i].Orders = nil
	}
	for _, o := range orders {
		if i, ok := byID[o.CashierID]; ok {
			cashiers[i].Orders = append(cashiers[i].Orders, o)
		}
	}
	return cashiers
}
