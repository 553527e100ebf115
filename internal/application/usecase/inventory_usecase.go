package usecase

import (
	"time"

	"github.com/google/uuid"
	"github.com/tu-usuario/retail-pos/internal/application/auth"
	"github.com/tu-usuario/retail-pos/internal/domain"
	"github.com/tu-usuario/retail-pos/internal/domain/entity"
	"github.com/tu-usuario/retail-pos/internal/domain/repository"
)

// InventoryUseCase operaciones de almacén: reposición y alertas de stock bajo.
type InventoryUseCase struct {
	productRepo  repository.ProductRepository
	movementRepo repository.StockMovementRepository
}

// NewInventoryUseCase construye el caso de uso.
func NewInventoryUseCase(productRepo repository.ProductRepository, movementRepo repository.StockMovementRepository) *InventoryUseCase {
	return &InventoryUseCase{productRepo: productRepo, movementRepo: movementRepo}
}

// Restock suma qty al stock del producto y registra el movimiento.
// Cantidades no positivas se rechazan sin tocar nada.
func (uc *InventoryUseCase) Restock(ident auth.Identity, productID string, qty int) error {
	if productID == "" || qty <= 0 {
		return domain.ErrInvalidInput
	}
	if err := uc.productRepo.IncrementStock(productID, qty); err != nil {
		return err
	}
	movement := &entity.StockMovement{
		ID:           uuid.New().String(),
		ProductID:    productID,
		ChangeAmount: qty,
		ChangeType:   entity.MovementRestock,
		UserID:       ident.ID,
		CreatedAt:    time.Now(),
	}
	return uc.movementRepo.Create(movement)
}

// LowStockAlerts productos en o bajo su umbral mínimo, más críticos primero.
func (uc *InventoryUseCase) LowStockAlerts() ([]*entity.Product, error) {
	return uc.productRepo.ListLowStock()
}
