package checkout

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/tu-usuario/retail-pos/internal/application/auth"
	"github.com/tu-usuario/retail-pos/internal/application/dto"
	"github.com/tu-usuario/retail-pos/internal/domain"
	"github.com/tu-usuario/retail-pos/internal/domain/entity"
	"github.com/tu-usuario/retail-pos/internal/domain/repository"
	"github.com/tu-usuario/retail-pos/pkg/logger"
)

// ValidationError regla de negocio incumplida por la entrada del cajero.
// Se responde 400 con el mensaje tal cual (incluye las cifras en disputa).
type ValidationError struct {
	Msg string
}

func (e *ValidationError) Error() string { return e.Msg }

// paymentTolerance tolerancia absoluta entre el total del carrito y la suma
// de pagos (redondeos de la caja).
var paymentTolerance = decimal.RequireFromString("0.1")

// CheckoutUseCase registra una venta: cabecera, líneas, pagos con recargo y
// descuento de stock, todo dentro de una sola transacción.
type CheckoutUseCase struct {
	tx       TxRunner
	saleRepo repository.SaleRepository
	log      *logger.Logger
}

// NewCheckoutUseCase construye el caso de uso. saleRepo se usa solo para
// lecturas fuera de transacción (ticket).
func NewCheckoutUseCase(tx TxRunner, saleRepo repository.SaleRepository, log *logger.Logger) *CheckoutUseCase {
	return &CheckoutUseCase{tx: tx, saleRepo: saleRepo, log: log}
}

// ProcessSale valida el carrito y los pagos, y persiste la venta completa.
//
// Validaciones (antes de cualquier escritura):
//   - carrito vacío o pagos vacíos
//   - línea con cantidad <= 0 o precio negativo, pago con monto negativo
//   - suma de pagos distinta del total base por más de la tolerancia
//
// Dentro de la transacción, en orden de entrada:
//   - cabecera con total_surcharge = 0 (se completa al final)
//   - por línea: sale_item con el precio recibido (no se re-consulta),
//     descuento condicional de stock (stock >= qty) y movimiento de auditoría
//   - por pago: recargo = monto × % del método / 100, sale_payment
//   - update de la cabecera con el recargo acumulado
//
// Un método de pago inexistente o inactivo invalida toda la venta.
func (uc *CheckoutUseCase) ProcessSale(ctx context.Context, ident auth.Identity, in dto.CheckoutRequest) (*dto.CheckoutResponse, error) {
	if len(in.Cart) == 0 {
		return nil, &ValidationError{Msg: "carrito vacío"}
	}
	if len(in.Payments) == 0 {
		return nil, &ValidationError{Msg: "falta método de pago"}
	}

	totalBase := decimal.Zero
	for _, line := range in.Cart {
		if line.ProductID == "" || line.Quantity <= 0 || line.Price.IsNegative() {
			return nil, &ValidationError{Msg: "línea de carrito inválida"}
		}
		totalBase = totalBase.Add(line.Price.Mul(decimal.NewFromInt(int64(line.Quantity))))
	}

	totalCovered := decimal.Zero
	for _, p := range in.Payments {
		if p.MethodID == "" || p.Amount.IsNegative() {
			return nil, &ValidationError{Msg: "pago inválido"}
		}
		totalCovered = totalCovered.Add(p.Amount)
	}
	if totalCovered.Sub(totalBase).Abs().GreaterThan(paymentTolerance) {
		return nil, &ValidationError{
			Msg: fmt.Sprintf("el pago (%s) no cubre el total (%s)", totalCovered, totalBase),
		}
	}

	now := time.Now()
	sale := &entity.Sale{
		ID:             uuid.New().String(),
		UserID:         ident.ID,
		TotalBase:      totalBase,
		TotalSurcharge: decimal.Zero,
		CreatedAt:      now,
	}

	err := uc.tx.Run(ctx, func(
		saleRepo repository.SaleRepository,
		productRepo repository.ProductRepository,
		methodRepo repository.PaymentMethodRepository,
		movementRepo repository.StockMovementRepository,
	) error {
		if err := saleRepo.Create(sale); err != nil {
			return err
		}

		for _, line := range in.Cart {
			item := &entity.SaleItem{
				ID:          uuid.New().String(),
				SaleID:      sale.ID,
				ProductID:   line.ProductID,
				Quantity:    line.Quantity,
				PriceAtSale: line.Price,
			}
			if err := saleRepo.CreateItem(item); err != nil {
				return err
			}
			ok, err := productRepo.DecrementStock(line.ProductID, line.Quantity)
			if err != nil {
				return err
			}
			if !ok {
				return fmt.Errorf("%w: producto %s", domain.ErrInsufficientStock, line.ProductID)
			}
			movement := &entity.StockMovement{
				ID:           uuid.New().String(),
				ProductID:    line.ProductID,
				ChangeAmount: -line.Quantity,
				ChangeType:   entity.MovementSale,
				UserID:       ident.ID,
				SaleID:       sale.ID,
				CreatedAt:    now,
			}
			if err := movementRepo.Create(movement); err != nil {
				return err
			}
		}

		totalSurcharge := decimal.Zero
		for _, p := range in.Payments {
			method, err := methodRepo.GetByID(p.MethodID)
			if err != nil {
				return err
			}
			if method == nil || !method.Active {
				return &ValidationError{Msg: "método de pago no disponible"}
			}
			surcharge := method.Surcharge(p.Amount)
			payment := &entity.SalePayment{
				ID:              uuid.New().String(),
				SaleID:          sale.ID,
				PaymentMethodID: p.MethodID,
				Amount:          p.Amount,
				SurchargeAmount: surcharge,
			}
			if err := saleRepo.CreatePayment(payment); err != nil {
				return err
			}
			totalSurcharge = totalSurcharge.Add(surcharge)
		}

		sale.TotalSurcharge = totalSurcharge
		return saleRepo.UpdateSurcharge(sale.ID, totalSurcharge)
	})
	if err != nil {
		return nil, err
	}

	uc.log.Info().
		Str("sale_id", sale.ID).
		Str("user", ident.Username).
		Str("total_base", totalBase.String()).
		Str("total_surcharge", sale.TotalSurcharge.String()).
		Int("lines", len(in.Cart)).
		Msg("venta registrada")

	return &dto.CheckoutResponse{Success: true, SaleID: sale.ID}, nil
}

// GetTicket arma el ticket completo de una venta: líneas con nombre de
// producto, pagos con nombre de método y vendedor.
func (uc *CheckoutUseCase) GetTicket(ctx context.Context, saleID string) (*dto.TicketResponse, error) {
	sale, err := uc.saleRepo.GetByID(saleID)
	if err != nil {
		return nil, err
	}
	if sale == nil {
		return nil, domain.ErrNotFound
	}
	seller, err := uc.saleRepo.SellerUsername(saleID)
	if err != nil {
		return nil, err
	}
	items, err := uc.saleRepo.ListItems(saleID)
	if err != nil {
		return nil, err
	}
	payments, err := uc.saleRepo.ListPayments(saleID)
	if err != nil {
		return nil, err
	}

	resp := &dto.TicketResponse{
		SaleID:         sale.ID,
		Seller:         seller,
		CreatedAt:      sale.CreatedAt.Format("02/01/2006 15:04"),
		TotalBase:      sale.TotalBase,
		TotalSurcharge: sale.TotalSurcharge,
		Total:          sale.Total(),
	}
	for _, it := range items {
		resp.Items = append(resp.Items, dto.TicketItem{
			ProductName: it.ProductName,
			Quantity:    it.Quantity,
			PriceAtSale: it.PriceAtSale,
			Subtotal:    it.PriceAtSale.Mul(decimal.NewFromInt(int64(it.Quantity))),
		})
	}
	for _, p := range payments {
		resp.Payments = append(resp.Payments, dto.TicketPayment{
			MethodName:       p.MethodName,
			SurchargePercent: p.SurchargePercent,
			Amount:           p.Amount,
			SurchargeAmount:  p.SurchargeAmount,
		})
	}
	return resp, nil
}
