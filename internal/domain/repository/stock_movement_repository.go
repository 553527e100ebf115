package repository

import "github.com/tu-usuario/retail-pos/internal/domain/entity"

// StockMovementRepository puerto de persistencia para el log de movimientos de stock.
type StockMovementRepository interface {
	Create(movement *entity.StockMovement) error
	// ListByProduct devuelve los movimientos de un producto, más recientes primero.
	ListByProduct(productID string, limit int) ([]*entity.StockMovement, error)
}
