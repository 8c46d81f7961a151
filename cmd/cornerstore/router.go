package main

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "github.com/MikeMC777/cornerstore/docs"
	"github.com/MikeMC777/cornerstore/internal/cashier"
	"github.com/MikeMC777/cornerstore/internal/httpx"
	"github.com/MikeMC777/cornerstore/internal/order"
	"github.com/MikeMC777/cornerstore/internal/product"
)

// repos are built once over the pool and handed to every handler.
type repos struct {
	Cashiers cashier.Repository
	Products product.Repository
	Orders   order.Repository
}

func newRouter(rp repos, log zerolog.Logger, swagger bool) *gin.Engine {
	r := gin.New()
	r.Use(httpx.RequestID(), httpx.Logger(log), httpx.Recovery(log))

	r.GET("/healthz", func(c *gin.Context) { c.String(http.StatusOK, "ok") })
	if swagger {
		r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	r.GET("/cashiers", listCashiersHandler(rp.Cashiers, rp.Orders))
	r.POST("/cashiers", createCashierHandler(rp.Cashiers))

	r.GET("/products", listProductsHandler(rp.Products))
	r.POST("/products", createProductHandler(rp.Products))
	r.PUT("/products/:id", updateProductHandler(rp.Products))
	r.GET("/products/popular", popularProductsHandler(rp.Products))

	r.GET("/orders", listOrdersHandler(rp.Orders))
	r.GET("/orders/:id", getOrderHandler(rp.Orders))
	r.POST("/orders", createOrderHandler(rp.Orders))
	r.DELETE("/orders/:id", deleteOrderHandler(rp.Orders))
	return r
}
