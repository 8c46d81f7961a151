package product

import (
	"strings"

	"github.com/MikeMC777/cornerstore/internal/model"
)

// Search keeps products whose name or category name equals term, ignoring
// case. It is an exact comparison: "book" does not match "Books".
// The whole table is loaded before filtering.
func Search(products []model.Product, term string) []model.Product {
	out := make([]model.Product, 0, len(products))
	for _, p := range products {
		if strings.EqualFold(p.ProductName, term) {
			out = append(out, p)
			continue
		}
		if p.Category != nil && strings.EqualFold(p.Category.CategoryName, term) {
			out = append(out, p)
		}
	}
	return out
}

// Take returns the first n groups as enumerated by the store. It does not
// rank by quantity. A negative n yields an empty slice.
func Take(groups []model.PopularProduct, n int) []model.PopularProduct {
	if n < 0 {
		n = 0
	}
	if n > len(groups) {
		n = len(groups)
	}
	return groups[:n]
}
