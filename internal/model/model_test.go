package model

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func price(t *testing.T, s string) decimal.Decimal {
	t.Helper()
	d, err := decimal.NewFromString(s)
	require.NoError(t, err)
	return d
}

func sampleOrder(t *testing.T) Order {
	electronics := &Category{ID: 1, CategoryName: "Electronics"}
	clothing := &Category{ID: 2, CategoryName: "Clothing"}
	return Order{
		ID:        1,
		CashierID: 1,
		Cashier:   &Cashier{ID: 1, FirstName: "Alice", LastName: "Johnson"},
		OrderProducts: []OrderProduct{
			{OrderID: 1, ProductID: 1, Quantity: 2, Product: &Product{ID: 1, ProductName: "Laptop", Price: price(t, "999.99"), Brand: "Dell", CategoryID: 1, Category: electronics}},
			{OrderID: 1, ProductID: 2, Quantity: 1, Product: &Product{ID: 2, ProductName: "T-Shirt", Price: price(t, "19.99"), Brand: "Nike", CategoryID: 2, Category: clothing}},
		},
	}
}

func TestOrderTotal_SumsQuantityTimesPrice(t *testing.T) {
	o := sampleOrder(t)
	assert.True(t, o.Total().Equal(price(t, "2019.97")), "total=%s", o.Total())

	empty := Order{ID: 9}
	assert.True(t, empty.Total().IsZero())
}

func TestOrderTotal_FollowsLivePrice(t *testing.T) {
	o := sampleOrder(t)
	o.OrderProducts[1].Product.Price = price(t, "29.99")
	assert.True(t, o.Total().Equal(price(t, "2029.97")), "total=%s", o.Total())
}

func TestOrderTotal_LineWithoutProductIsZero(t *testing.T) {
	o := Order{OrderProducts: []OrderProduct{{ProductID: 7, Quantity: 3}}}
	assert.True(t, o.Total().IsZero())
}

func TestNewOrderDTO_TotalMatchesEntity(t *testing.T) {
	o := sampleOrder(t)
	for name, view := range map[string]ProductView{
		"full":    NewProductDTO,
		"summary": NewProductSummaryDTO,
		"detail":  NewProductDetailDTO,
	} {
		t.Run(name, func(t *testing.T) {
			dto := NewOrderDTO(o, view)
			assert.True(t, dto.Total.Equal(o.Total()), "dto=%s entity=%s", dto.Total, o.Total())
			assert.True(t, dto.ComputeTotal().Equal(dto.Total))
		})
	}
}

func TestNewOrderDTO_Shapes(t *testing.T) {
	o := sampleOrder(t)

	summary := NewOrderDTO(o, NewProductSummaryDTO)
	require.Len(t, summary.OrderProducts, 2)
	p := summary.OrderProducts[0].Product
	require.NotNil(t, p)
	assert.Equal(t, "Laptop", p.ProductName)
	assert.Empty(t, p.Brand)
	assert.Zero(t, p.CategoryID)
	assert.Nil(t, p.Category)
	require.NotNil(t, summary.Cashier)
	assert.Equal(t, "Alice", summary.Cashier.FirstName)
	assert.Nil(t, summary.Cashier.Orders)

	detail := NewOrderDTO(o, NewProductDetailDTO)
	p = detail.OrderProducts[1].Product
	require.NotNil(t, p.Category)
	assert.Equal(t, "Clothing", p.Category.CategoryName)
	assert.Equal(t, 2, p.CategoryID)
	assert.Empty(t, p.Brand)
}

func TestNewCashierDTO_NestedOrdersDropCashier(t *testing.T) {
	o := sampleOrder(t)
	c := Cashier{ID: 1, FirstName: "Alice", LastName: "Johnson", Orders: []Order{o}}

	dto := NewCashierDTO(c)
	require.Len(t, dto.Orders, 1)
	assert.Nil(t, dto.Orders[0].Cashier)
	assert.Equal(t, "Dell", dto.Orders[0].OrderProducts[0].Product.Brand)
	assert.Equal(t, "Electronics", dto.Orders[0].OrderProducts[0].Product.Category.CategoryName)

	// the entity keeps its cashier
	assert.NotNil(t, c.Orders[0].Cashier)
}

func TestNewCashierDTO_NoOrdersSerializesEmptyList(t *testing.T) {
	dto := NewCashierDTO(Cashier{ID: 6, FirstName: "Fay", LastName: "Lee"})
	b, err := json.Marshal(dto)
	require.NoError(t, err)
	assert.JSONEq(t, `{"id":6,"firstName":"Fay","lastName":"Lee","orders":[]}`, string(b))
}

func TestOrderDTO_JSONShape(t *testing.T) {
	paid := time.Date(2024, 3, 1, 10, 30, 0, 0, time.UTC)
	o := sampleOrder(t)
	o.PaidOnDate = &paid
	o.OrderProducts = o.OrderProducts[:1]

	b, err := json.Marshal(NewOrderDTO(o, NewProductSummaryDTO))
	require.NoError(t, err)
	assert.JSONEq(t, `{
		"id":1,"cashierId":1,
		"cashier":{"id":1,"firstName":"Alice","lastName":"Johnson","orders":null},
		"paidOnDate":"2024-03-01T10:30:00Z",
		"orderProducts":[{"orderId":1,"productId":1,"quantity":2,"product":{"id":1,"productName":"Laptop","price":"999.99"}}],
		"total":"1999.98"
	}`, string(b))
}
