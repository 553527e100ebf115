package dto

import "github.com/shopspring/decimal"

// CreateProductRequest alta de producto (formularios admin y almacén).
type CreateProductRequest struct {
	Name     string          `form:"name" json:"name"`
	SKU      string          `form:"sku" json:"sku"`
	Price    decimal.Decimal `form:"price" json:"price"`
	Stock    int             `form:"stock" json:"stock"`
	Category string          `form:"category" json:"category"`
	MinStock int             `form:"min_stock" json:"min_stock"`
}

// RestockRequest reposición de stock desde el almacén.
type RestockRequest struct {
	ProductID string `form:"id" json:"id"`
	Quantity  int    `form:"quantity" json:"quantity"`
}

// CreatePaymentMethodRequest alta de método de pago (admin).
type CreatePaymentMethodRequest struct {
	Name             string          `form:"name" json:"name"`
	SurchargePercent decimal.Decimal `form:"surcharge_percent" json:"surcharge_percent"`
}
