package main

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/MikeMC777/cornerstore/internal/database"
	"github.com/MikeMC777/cornerstore/internal/httpx"
	"github.com/MikeMC777/cornerstore/internal/model"
	"github.com/MikeMC777/cornerstore/internal/product"
)

// listProductsHandler godoc
// @Summary List products, optionally by exact name or category name
// @Tags    products
// @Produce json
// @Param   search query    string false "case-insensitive exact product or category name"
// @Success 200    {array}  model.ProductDTO
// @Failure 500    {object} httpx.HTTPError
// @Router  /products [get]
func listProductsHandler(repo product.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		ps, err := repo.List(c.Request.Context())
		if err != nil {
			httpx.Fail(c, http.StatusInternalServerError, "list products error", err)
			return
		}
		if term, ok := c.GetQuery("search"); ok {
			ps = product.Search(ps, term)
		}

		out := make([]model.ProductDTO, 0, len(ps))
		for _, p := range ps {
			out = append(out, model.NewProductDTO(p))
		}
		c.JSON(http.StatusOK, out)
	}
}

// createProductHandler godoc
// @Summary Create a product
// @Tags    products
// @Accept  json
// @Param   product body product.ProductRequest true "product"
// @Success 200
// @Failure 400 {object} httpx.HTTPError
// @Failure 500 {object} httpx.HTTPError
// @Router  /products [post]
func createProductHandler(repo product.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req product.ProductRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			httpx.Fail(c, http.StatusBadRequest, "invalid json", err)
			return
		}
		p := req.Product()
		p.ID = 0
		err := repo.Create(c.Request.Context(), &p)
		switch {
		case errors.Is(err, database.ErrInvalidReference):
			httpx.Fail(c, http.StatusBadRequest, "category not found", err)
		case err != nil:
			httpx.Fail(c, http.StatusInternalServerError, "create product error", err)
		default:
			c.Status(http.StatusOK)
		}
	}
}

// updateProductHandler godoc
// @Summary Replace a product; body id must equal path id
// @Tags    products
// @Accept  json
// @Param   id      path int                    true "product id"
// @Param   product body product.ProductRequest true "product"
// @Success 202
// @Failure 400 {object} httpx.HTTPError
// @Failure 500 {object} httpx.HTTPError
// @Router  /products/{id} [put]
func updateProductHandler(repo product.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			httpx.Fail(c, http.StatusBadRequest, "invalid id", err)
			return
		}
		var req product.ProductRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			httpx.Fail(c, http.StatusBadRequest, "invalid json", err)
			return
		}
		p := req.Product()
		err = repo.Update(c.Request.Context(), id, &p)
		switch {
		case errors.Is(err, product.ErrNotFound), errors.Is(err, database.ErrInvalidReference):
			httpx.Fail(c, http.StatusBadRequest, "bad request", err)
		case err != nil:
			httpx.Fail(c, http.StatusInternalServerError, "update product error", err)
		default:
			c.Status(http.StatusAccepted)
		}
	}
}

// popularProductsHandler godoc
// @Summary Quantities sold per product
// @Tags    products
// @Produce json
// @Param   amount query    int false "keep the first N groups"
// @Success 200    {array}  model.PopularProductDTO
// @Failure 400    {object} httpx.HTTPError
// @Failure 500    {object} httpx.HTTPError
// @Router  /products/popular [get]
func popularProductsHandler(repo product.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		raw, limited := c.GetQuery("amount")
		amount, err := strconv.Atoi(raw)
		if limited && err != nil {
			httpx.Fail(c, http.StatusBadRequest, "invalid amount", err)
			return
		}

		groups, err := repo.Popular(c.Request.Context())
		if err != nil {
			httpx.Fail(c, http.StatusInternalServerError, "popular products error", err)
			return
		}
		if limited {
			groups = product.Take(groups, amount)
		}

		out := make([]model.PopularProductDTO, 0, len(groups))
		for _, g := range groups {
			out = append(out, model.NewPopularProductDTO(g))
		}
		c.JSON(http.StatusOK, out)
	}
}
