package main

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/MikeMC777/cornerstore/internal/database"
	"github.com/MikeMC777/cornerstore/internal/httpx"
	"github.com/MikeMC777/cornerstore/internal/model"
	"github.com/MikeMC777/cornerstore/internal/order"
)

// listOrdersHandler godoc
// @Summary List orders, optionally paid on a date
// @Tags    orders
// @Produce json
// @Param   orderDate query    string false "YYYY-MM-DD"
// @Success 200       {array}  model.OrderDTO
// @Failure 500       {object} httpx.HTTPError
// @Router  /orders [get]
func listOrdersHandler(repo order.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		ords, err := repo.List(c.Request.Context())
		if err != nil {
			httpx.Fail(c, http.StatusInternalServerError, "list orders error", err)
			return
		}
		if date, ok := c.GetQuery("orderDate"); ok {
			ords = order.PaidOn(ords, date)
		}

		out := make([]model.OrderDTO, 0, len(ords))
		for _, o := range ords {
			out = append(out, model.NewOrderDTO(o, model.NewProductSummaryDTO))
		}
		c.JSON(http.StatusOK, out)
	}
}

// getOrderHandler godoc
// @Summary Get an order with full detail
// @Tags    orders
// @Produce json
// @Param   id  path     int true "order id"
// @Success 200 {object} model.OrderDTO
// @Failure 400 {object} httpx.HTTPError
// @Failure 404 {object} httpx.HTTPError
// @Failure 500 {object} httpx.HTTPError
// @Router  /orders/{id} [get]
func getOrderHandler(repo order.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			httpx.Fail(c, http.StatusBadRequest, "invalid id", err)
			return
		}
		o, err := repo.GetByID(c.Request.Context(), id)
		switch {
		case errors.Is(err, order.ErrNotFound):
			httpx.Fail(c, http.StatusNotFound, "order not found", nil)
		case err != nil:
			httpx.Fail(c, http.StatusInternalServerError, "get order error", err)
		default:
			c.JSON(http.StatusOK, model.NewOrderDTO(*o, model.NewProductDetailDTO))
		}
	}
}

// createOrderHandler godoc
// @Summary Create an order with its lines
// @Tags    orders
// @Accept  json
// @Param   order body order.CreateOrderRequest true "order"
// @Success 200
// @Failure 400 {object} httpx.HTTPError
// @Failure 500 {object} httpx.HTTPError
// @Router  /orders [post]
func createOrderHandler(repo order.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req order.CreateOrderRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			httpx.Fail(c, http.StatusBadRequest, "invalid json", err)
			return
		}
		o := req.Order()
		err := repo.Create(c.Request.Context(), &o)
		switch {
		case errors.Is(err, database.ErrInvalidReference):
			httpx.Fail(c, http.StatusBadRequest, "cashier or product not found", err)
		case err != nil:
			httpx.Fail(c, http.StatusInternalServerError, "create order error", err)
		default:
			c.Status(http.StatusOK)
		}
	}
}

// deleteOrderHandler godoc
// @Summary Delete an order and its lines
// @Tags    orders
// @Param   id  path int true "order id"
// @Success 200
// @Failure 400 {object} httpx.HTTPError
// @Failure 404 {object} httpx.HTTPError
// @Failure 500 {object} httpx.HTTPError
// @Router  /orders/{id} [delete]
func deleteOrderHandler(repo order.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			httpx.Fail(c, http.StatusBadRequest, "invalid id", err)
			return
		}
		err = repo.Delete(c.Request.Context(), id)
		switch {
		case errors.Is(err, order.ErrNotFound):
			httpx.Fail(c, http.StatusNotFound, "order not found", nil)
		case err != nil:
			httpx.Fail(c, http.StatusInternalServerError, "delete order error", err)
		default:
			c.Status(http.StatusOK)
		}
	}
}
