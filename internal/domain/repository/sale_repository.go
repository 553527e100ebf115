package repository

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/tu-usuario/retail-pos/internal/domain/entity"
)

// TicketItemRow línea de venta con el nombre del producto (join para el ticket).
type TicketItemRow struct {
	ProductID   string
	ProductName string
	Quantity    int
	PriceAtSale decimal.Decimal
}

// TicketPaymentRow pago de una venta con el nombre del método (join para el ticket).
type TicketPaymentRow struct {
	MethodName       string
	SurchargePercent decimal.Decimal
	Amount           decimal.Decimal
	SurchargeAmount  decimal.Decimal
}

// SaleRepository puerto de persistencia para ventas (cabecera, líneas y pagos).
// Create/CreateItem/CreatePayment/UpdateSurcharge se invocan dentro de la
// transacción de checkout; el resto son lecturas.
type SaleRepository interface {
	Create(sale *entity.Sale) error
	CreateItem(item *entity.SaleItem) error
	CreatePayment(payment *entity.SalePayment) error
	// UpdateSurcharge completa el total de recargos de la cabecera.
	UpdateSurcharge(saleID string, totalSurcharge decimal.Decimal) error

	// GetByID devuelve nil, nil si no existe.
	GetByID(id string) (*entity.Sale, error)
	// SellerUsername devuelve el username del vendedor de la venta.
	SellerUsername(saleID string) (string, error)
	ListItems(saleID string) ([]TicketItemRow, error)
	ListPayments(saleID string) ([]TicketPaymentRow, error)
}

// SaleSummary venta con vendedor y conteo de líneas (listados admin).
type SaleSummary struct {
	ID             string
	Username       string
	TotalBase      decimal.Decimal
	TotalSurcharge decimal.Decimal
	ItemCount      int
	CreatedAt      time.Time
}

// SaleItemRow línea usada por la agregación de analítica.
type SaleItemRow struct {
	ProductID   string
	ProductName string
	Quantity    int
	PriceAtSale decimal.Decimal
}

// SaleWithItems venta con sus líneas, materia prima del fold de analítica.
type SaleWithItems struct {
	ID             string
	TotalBase      decimal.Decimal
	TotalSurcharge decimal.Decimal
	CreatedAt      time.Time
	Items          []SaleItemRow
}
