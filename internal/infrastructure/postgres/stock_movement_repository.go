package postgres

import (
	"context"
	"fmt"

	"github.com/tu-usuario/retail-pos/internal/domain/entity"
	"github.com/tu-usuario/retail-pos/internal/domain/repository"
)

var _ repository.StockMovementRepository = (*StockMovementRepo)(nil)

// StockMovementRepo implementación sobre PostgreSQL (usable con pool o tx).
type StockMovementRepo struct {
	q Querier
}

// NewStockMovementRepository construye el adaptador. Pasar pool o tx (Querier).
func NewStockMovementRepository(q Querier) *StockMovementRepo {
	return &StockMovementRepo{q: q}
}

// Create persiste un movimiento de stock.
func (r *StockMovementRepo) Create(movement *entity.StockMovement) error {
	query := `
		INSERT INTO stock_movements (id, product_id, change_amount, change_type, user_id, sale_id, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	saleID := (*string)(nil)
	if movement.SaleID != "" {
		saleID = &movement.SaleID
	}
	_, err := r.q.Exec(context.Background(), query,
		movement.ID, movement.ProductID, movement.ChangeAmount, movement.ChangeType,
		movement.UserID, saleID, movement.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert stock movement: %w", err)
	}
	return nil
}

// ListByProduct devuelve los movimientos de un producto, más recientes primero.
func (r *StockMovementRepo) ListByProduct(productID string, limit int) ([]*entity.StockMovement, error) {
	query := `
		SELECT id, product_id, change_amount, change_type, user_id, COALESCE(sale_id::text, ''), created_at
		FROM stock_movements WHERE product_id = $1
		ORDER BY created_at DESC LIMIT $2`
	rows, err := r.q.Query(context.Background(), query, productID, limit)
	if err != nil {
		return nil, fmt.Errorf("list stock movements: %w", err)
	}
	defer rows.Close()
	var list []*entity.StockMovement
	for rows.Next() {
		var m entity.StockMovement
		if err := rows.Scan(&m.ID, &m.ProductID, &m.ChangeAmount, &m.ChangeType, &m.UserID, &m.SaleID, &m.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan stock movement: %w", err)
		}
		list = append(list, &m)
	}
	return list, rows.Err()
}
