package product

import (
	"github.com/shopspring/decimal"

	"github.com/MikeMC777/cornerstore/internal/model"
)

// ProductRequest payload of creation and of wholesale replacement.
// On creation the id is ignored; on replacement it must equal the path id.
// swagger:model ProductRequest
type ProductRequest struct {
	ID          int             `json:"id"          example:"4"`
	ProductName string          `json:"productName" example:"Toy Car"`
	Price       decimal.Decimal `json:"price"       swaggertype:"string" example:"9.99"`
	Brand       string          `json:"brand"       example:"Hot Wheels"`
	CategoryID  int             `json:"categoryId"  example:"4"`
}

func (r ProductRequest) Product() model.Product {
	return model.Product{
		ID:          r.ID,
		ProductName: r.ProductName,
		Price:       r.Price,
		Brand:       r.Brand,
		CategoryID:  r.CategoryID,
	}
}
