package main

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/MikeMC777/cornerstore/internal/cashier"
	"github.com/MikeMC777/cornerstore/internal/httpx"
	"github.com/MikeMC777/cornerstore/internal/model"
	"github.com/MikeMC777/cornerstore/internal/order"
)

// listCashiersHandler godoc
// @Summary List cashiers with their order history
// @Tags    cashiers
// @Produce json
// @Success 200 {array}  model.CashierDTO
// @Failure 500 {object} httpx.HTTPError
// @Router  /cashiers [get]
func listCashiersHandler(cashiers cashier.Repository, orders order.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		cs, err := cashiers.List(c.Request.Context())
		if err != nil {
			httpx.Fail(c, http.StatusInternalServerError, "list cashiers error", err)
			return
		}
		ords, err := orders.List(c.Request.Context())
		if err != nil {
			httpx.Fail(c, http.StatusInternalServerError, "list orders error", err)
			return
		}

		cs = cashier.AttachOrders(cs, ords)
		out := make([]model.CashierDTO, 0, len(cs))
		for _, ca := range cs {
			out = append(out, model.NewCashierDTO(ca))
		}
		c.JSON(http.StatusOK, out)
	}
}

// createCashierHandler godoc
// @Summary Create a cashier
// @Tags    cashiers
// @Accept  json
// @Produce json
// @Param   cashier body     cashier.CreateCashierRequest true "cashier"
// @Success 201     {object} model.CashierDTO
// @Failure 400     {object} httpx.HTTPError
// @Failure 500     {object} httpx.HTTPError
// @Router  /cashiers [post]
func createCashierHandler(repo cashier.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req cashier.CreateCashierRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			httpx.Fail(c, http.StatusBadRequest, "invalid json", err)
			return
		}
		ca := req.Cashier()
		if err := repo.Create(c.Request.Context(), &ca); err != nil {
			httpx.Fail(c, http.StatusInternalServerError, "create cashier error", err)
			return
		}
		c.Header("Location", fmt.Sprintf("/cashiers/%d", ca.ID))
		c.JSON(http.StatusCreated, model.NewCashierDTO(ca))
	}
}
