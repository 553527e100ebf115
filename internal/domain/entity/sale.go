package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Sale cabecera de una venta. TotalBase es la suma de las líneas antes de
// recargos; TotalSurcharge se completa al final de la misma transacción.
// Las ventas son append-only: no existe camino de edición ni borrado.
type Sale struct {
	ID             string
	UserID         string
	TotalBase      decimal.Decimal
	TotalSurcharge decimal.Decimal
	CreatedAt      time.Time
}

// Total devuelve base + recargos.
func (s *Sale) Total() decimal.Decimal {
	return s.TotalBase.Add(s.TotalSurcharge)
}

// SaleItem línea de venta. PriceAtSale es el precio capturado al momento de
// vender: cambios posteriores del producto no alteran ventas históricas.
type SaleItem struct {
	ID          string
	SaleID      string
	ProductID   string
	Quantity    int
	PriceAtSale decimal.Decimal
}

// Subtotal cantidad por precio capturado.
func (i *SaleItem) Subtotal() decimal.Decimal {
	return i.PriceAtSale.Mul(decimal.NewFromInt(int64(i.Quantity)))
}

// SalePayment asignación de pago de una venta a un método, con su recargo.
type SalePayment struct {
	ID              string
	SaleID          string
	PaymentMethodID string
	Amount          decimal.Decimal
	SurchargeAmount decimal.Decimal
}
