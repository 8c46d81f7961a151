package order

import "github.com/MikeMC777/cornerstore/internal/model"

// DateLayout is the orderDate query format.
const DateLayout = "2006-01-02"

// PaidOn keeps orders whose PaidOnDate is set and whose date portion,
// formatted as YYYY-MM-DD, equals date. A malformed date matches nothing.
// Filtering happens after the whole table is loaded.
func PaidOn(orders []model.Order, date string) []model.Order {
	out := make([]model.Order, 0, len(orders))
	for _, o := range orders {
		if o.PaidOnDate != nil && o.PaidOnDate.Format(DateLayout) == date {
			out = append(out, o)
		}
	}
	return out
}
