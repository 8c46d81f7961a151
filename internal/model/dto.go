package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// DTOs never point back to their parent, so they serialize without cycles.

// CashierDTO
// swagger:model CashierDTO
type CashierDTO struct {
	ID        int    `json:"id"        example:"1"`
	FirstName string `json:"firstName" example:"Alice"`
	LastName  string `json:"lastName"  example:"Johnson"`
	// nil when the cashier is nested inside an order
	Orders []OrderDTO `json:"orders"`
}

// CategoryDTO
// swagger:model CategoryDTO
type CategoryDTO struct {
	ID           int    `json:"id"           example:"1"`
	CategoryName string `json:"categoryName" example:"Electronics"`
}

// ProductDTO carries as many fields as the endpoint exposes; the rest are omitted.
// swagger:model ProductDTO
type ProductDTO struct {
	ID          int             `json:"id"                    example:"1"`
	ProductName string          `json:"productName,omitempty" example:"Laptop"`
	Price       decimal.Decimal `json:"price"                 swaggertype:"string" example:"999.99"`
	Brand       string          `json:"brand,omitempty"       example:"Dell"`
	CategoryID  int             `json:"categoryId,omitempty"  example:"1"`
	Category    *CategoryDTO    `json:"category,omitempty"`
}

// OrderProductDTO
// swagger:model OrderProductDTO
type OrderProductDTO struct {
	OrderID   int         `json:"orderId"   example:"1"`
	ProductID int         `json:"productId" example:"1"`
	Quantity  int         `json:"quantity"  example:"2"`
	Product   *ProductDTO `json:"product,omitempty"`
}

// OrderDTO
// swagger:model OrderDTO
type OrderDTO struct {
	ID            int               `json:"id"        example:"1"`
	CashierID     int               `json:"cashierId" example:"1"`
	Cashier       *CashierDTO       `json:"cashier,omitempty"`
	PaidOnDate    *time.Time        `json:"paidOnDate"`
	OrderProducts []OrderProductDTO `json:"orderProducts"`
	Total         decimal.Decimal   `json:"total" swaggertype:"string" example:"2019.97"`
}

// ComputeTotal sums quantity times price over the nested lines, the same
// rule as Order.Total.
func (d OrderDTO) ComputeTotal() decimal.Decimal {
	total := decimal.Zero
	for _, op := range d.OrderProducts {
		if op.Product == nil {
			continue
		}
		total = total.Add(op.Product.Price.Mul(decimal.NewFromInt(int64(op.Quantity))))
	}
	return total
}

// PopularProductDTO
// swagger:model PopularProductDTO
type PopularProductDTO struct {
	ProductName   string `json:"productName"   example:"Toy Car"`
	ProductID     int    `json:"productId"     example:"4"`
	TotalQuantity int    `json:"totalQuantity" example:"5"`
}

// ProductView selects which product fields an order projection exposes.
type ProductView func(Product) ProductDTO

func NewCategoryDTO(c Category) CategoryDTO {
	return CategoryDTO{ID: c.ID, CategoryName: c.CategoryName}
}

// NewProductDTO is the full product shape, category included when loaded.
func NewProductDTO(p Product) ProductDTO {
	out := ProductDTO{
		ID:          p.ID,
		ProductName: p.ProductName,
		Price:       p.Price,
		Brand:       p.Brand,
		CategoryID:  p.CategoryID,
	}
	if p.Category != nil {
		c := NewCategoryDTO(*p.Category)
		out.Category = &c
	}
	return out
}

// NewProductSummaryDTO keeps id, name and price only.
func NewProductSummaryDTO(p Product) ProductDTO {
	return ProductDTO{ID: p.ID, ProductName: p.ProductName, Price: p.Price}
}

// NewProductDetailDTO is the summary plus category, without brand.
func NewProductDetailDTO(p Product) ProductDTO {
	out := NewProductSummaryDTO(p)
	out.CategoryID = p.CategoryID
	if p.Category != nil {
		c := NewCategoryDTO(*p.Category)
		out.Category = &c
	}
	return out
}

// NewOrderDTO projects an order and recomputes its total from the projected lines.
func NewOrderDTO(o Order, view ProductView) OrderDTO {
	out := OrderDTO{
		ID:            o.ID,
		CashierID:     o.CashierID,
		PaidOnDate:    o.PaidOnDate,
		OrderProducts: make([]OrderProductDTO, 0, len(o.OrderProducts)),
	}
	if o.Cashier != nil {
		out.Cashier = &CashierDTO{
			ID:        o.Cashier.ID,
			FirstName: o.Cashier.FirstName,
			LastName:  o.Cashier.LastName,
		}
	}
	for _, op := range o.OrderProducts {
		line := OrderProductDTO{
			OrderID:   op.OrderID,
			ProductID: op.ProductID,
			Quantity:  op.Quantity,
		}
		if op.Product != nil {
			p := view(*op.Product)
			line.Product = &p
		}
		out.OrderProducts = append(out.OrderProducts, line)
	}
	out.Total = out.ComputeTotal()
	return out
}

// NewCashierDTO projects a cashier with its order history. Nested orders
// do not repeat the cashier. Orders is always non-nil.
func NewCashierDTO(c Cashier) CashierDTO {
	out := CashierDTO{
		ID:        c.ID,
		FirstName: c.FirstName,
		LastName:  c.LastName,
		Orders:    make([]OrderDTO, 0, len(c.Orders)),
	}
	for _, o := range c.Orders {
		o.Cashier = nil
		out.Orders = append(out.Orders, NewOrderDTO(o, NewProductDTO))
	}
	return out
}

func NewPopularProductDTO(p PopularProduct) PopularProductDTO {
	return PopularProductDTO{
		ProductName:   p.ProductName,
		ProductID:     p.ProductID,
		TotalQuantity: p.TotalQuantity,
	}
}
