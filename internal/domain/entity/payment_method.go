package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// PaymentMethod método de pago ofrecido en el checkout.
// Solo los métodos activos se ofrecen al cajero.
type PaymentMethod struct {
	ID               string
	Name             string
	SurchargePercent decimal.Decimal // recargo % aplicado al monto pagado con este método
	Active           bool
	CreatedAt        time.Time
}

// Surcharge calcula el recargo para un monto: amount * percent / 100.
func (m *PaymentMethod) Surcharge(amount decimal.Decimal) decimal.Decimal {
	return amount.Mul(m.SurchargePercent).Div(decimal.NewFromInt(100))
}
