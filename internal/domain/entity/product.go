package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product representa un producto del inventario.
// Stock se muta solo con operaciones condicionales en la DB (ver ProductRepository),
// nunca con read-then-write, para que stock >= 0 se cumpla con ventas concurrentes.
type Product struct {
	ID        string
	Name      string
	SKU       string
	Price     decimal.Decimal // precio de venta por unidad
	Stock     int
	Category  string
	MinStock  int // umbral de alerta de stock bajo
	CreatedAt time.Time
}

// LowStock indica si el producto está en o bajo su umbral mínimo.
func (p *Product) LowStock() bool {
	return p.Stock <= p.MinStock
}
