package checkout

import (
	"context"

	"github.com/tu-usuario/retail-pos/internal/domain/repository"
)

// TxRunner ejecuta fn dentro de una transacción con los repos atados a ella.
// Si fn retorna error se hace rollback completo: la venta, sus líneas, sus
// pagos y los descuentos de stock se confirman todos o ninguno.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		saleRepo repository.SaleRepository,
		productRepo repository.ProductRepository,
		methodRepo repository.PaymentMethodRepository,
		movementRepo repository.StockMovementRepository,
	) error) error
}
