package entity

import "time"

// Tipos de movimiento de stock.
const (
	MovementSale    = "sale"
	MovementRestock = "restock"
)

// StockMovement registro de auditoría de cada mutación de stock.
// ChangeAmount es negativo para ventas y positivo para reposiciones.
type StockMovement struct {
	ID           string
	ProductID    string
	ChangeAmount int
	ChangeType   string // sale | restock
	UserID       string
	SaleID       string // vacío si el movimiento no proviene de una venta
	CreatedAt    time.Time
}
