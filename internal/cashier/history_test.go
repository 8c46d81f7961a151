package cashier

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MikeMC777/cornerstore/internal/model"
)

func TestAttachOrders(t *testing.T) {
	cashiers := []model.Cashier{{ID: 1, FirstName: "Alice"}, {ID: 2, FirstName: "Bob"}, {ID: 3, FirstName: "Charlie"}}
	orders := []model.Order{
		{ID: 10, CashierID: 2},
		{ID: 11, CashierID: 1},
		{ID: 12, CashierID: 2},
		{ID: 13, CashierID: 99},
	}

	got := AttachOrders(cashiers, orders)
	require.Len(t, got, 3)
	require.Len(t, got[0].Orders, 1)
	assert.Equal(t, 11, got[0].Orders[0].ID)
	require.Len(t, got[1].Orders, 2)
	assert.Equal(t, 10, got[1].Orders[0].ID)
	assert.Equal(t, 12, got[1].Orders[1].ID)
	assert.Empty(t, got[2].Orders)
}

func TestCreateCashierRequest_IgnoresID(t *testing.T) {
	c := CreateCashierRequest{ID: 42, FirstName: "Fay", LastName: "Lee"}.Cashier()
	assert.Zero(t, c.ID)
	assert.Equal(t, "Fay", c.FirstName)
	assert.Equal(t, "Lee", c.LastName)
}
