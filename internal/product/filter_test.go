package product

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/MikeMC777/cornerstore/internal/model"
)

func catalog() []model.Product {
	books := &model.Category{ID: 3, CategoryName: "Books"}
	toys := &model.Category{ID: 4, CategoryName: "Toys"}
	return []model.Product{
		{ID: 1, ProductName: "Novel", Price: decimal.RequireFromString("14.99"), Brand: "Penguin", CategoryID: 3, Category: books},
		{ID: 2, ProductName: "Toy Car", Price: decimal.RequireFromString("9.99"), Brand: "Hot Wheels", CategoryID: 4, Category: toys},
		{ID: 3, ProductName: "Books", Price: decimal.RequireFromString("1.00"), Brand: "Misc", CategoryID: 4, Category: toys},
	}
}

func ids(ps []model.Product) []int {
	out := []int{}
	for _, p := range ps {
		out = append(out, p.ID)
	}
	return out
}

func TestSearch_ExactCaseInsensitive(t *testing.T) {
	cases := []struct {
		term string
		want []int
	}{
		{"novel", []int{1}},
		{"TOY CAR", []int{2}},
		{"toys", []int{2, 3}},
		{"books", []int{1, 3}},
		{"book", []int{}},
		{"Toy", []int{}},
		{"", []int{}},
	}
	for _, tc := range cases {
		t.Run(tc.term, func(t *testing.T) {
			assert.Equal(t, tc.want, ids(Search(catalog(), tc.term)))
		})
	}
}

func TestSearch_ProductWithoutCategory(t *testing.T) {
	ps := []model.Product{{ID: 8, ProductName: "Loose"}}
	assert.Equal(t, []int{8}, ids(Search(ps, "loose")))
	assert.Empty(t, Search(ps, "toys"))
}

func TestTake_TruncatesWithoutRanking(t *testing.T) {
	groups := []model.PopularProduct{
		{ProductID: 1, TotalQuantity: 1},
		{ProductID: 2, TotalQuantity: 5},
		{ProductID: 3, TotalQuantity: 3},
	}
	got := Take(groups, 2)
	assert.Len(t, got, 2)
	assert.Equal(t, 1, got[0].ProductID)
	assert.Equal(t, 2, got[1].ProductID)

	assert.Len(t, Take(groups, 10), 3)
	assert.Empty(t, Take(groups, 0))
	assert.Empty(t, Take(groups, -1))
}
