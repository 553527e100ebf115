package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
	"github.com/tu-usuario/retail-pos/internal/domain/entity"
	"github.com/tu-usuario/retail-pos/internal/domain/repository"
)

var _ repository.SaleRepository = (*SaleRepo)(nil)

// SaleRepo implementación del puerto SaleRepository sobre PostgreSQL (usable con pool o tx).
type SaleRepo struct {
	q Querier
}

// NewSaleRepository construye el adaptador de persistencia para ventas. Pasar pool o tx (Querier).
func NewSaleRepository(q Querier) *SaleRepo {
	return &SaleRepo{q: q}
}

// Create persiste la cabecera de la venta.
func (r *SaleRepo) Create(sale *entity.Sale) error {
	query := `
		INSERT INTO sales (id, user_id, total_base, total_surcharge, created_at)
		VALUES ($1, $2, $3, $4, $5)`
	_, err := r.q.Exec(context.Background(), query,
		sale.ID, sale.UserID, sale.TotalBase, sale.TotalSurcharge, sale.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert sale: %w", err)
	}
	return nil
}

// CreateItem persiste una línea de venta.
func (r *SaleRepo) CreateItem(item *entity.SaleItem) error {
	query := `
		INSERT INTO sale_items (id, sale_id, product_id, quantity, price_at_sale)
		VALUES ($1, $2, $3, $4, $5)`
	_, err := r.q.Exec(context.Background(), query,
		item.ID, item.SaleID, item.ProductID, item.Quantity, item.PriceAtSale,
	)
	if err != nil {
		return fmt.Errorf("insert sale item: %w", err)
	}
	return nil
}

// CreatePayment persiste una asignación de pago con su recargo.
func (r *SaleRepo) CreatePayment(payment *entity.SalePayment) error {
	query := `
		INSERT INTO sale_payments (id, sale_id, payment_method_id, amount, surcharge_amount)
		VALUES ($1, $2, $3, $4, $5)`
	_, err := r.q.Exec(context.Background(), query,
		payment.ID, payment.SaleID, payment.PaymentMethodID, payment.Amount, payment.SurchargeAmount,
	)
	if err != nil {
		return fmt.Errorf("insert sale payment: %w", err)
	}
	return nil
}

// UpdateSurcharge completa el total de recargos de la cabecera.
func (r *SaleRepo) UpdateSurcharge(saleID string, totalSurcharge decimal.Decimal) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE sales SET total_surcharge = $2 WHERE id = $1`,
		saleID, totalSurcharge,
	)
	if err != nil {
		return fmt.Errorf("update sale surcharge: %w", err)
	}
	return nil
}

// GetByID obtiene la cabecera de una venta. Devuelve nil, nil si no existe.
func (r *SaleRepo) GetByID(id string) (*entity.Sale, error) {
	query := `
		SELECT id, user_id, total_base, total_surcharge, created_at
		FROM sales WHERE id = $1`
	var s entity.Sale
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&s.ID, &s.UserID, &s.TotalBase, &s.TotalSurcharge, &s.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get sale: %w", err)
	}
	return &s, nil
}

// SellerUsername devuelve el username del vendedor de la venta.
func (r *SaleRepo) SellerUsername(saleID string) (string, error) {
	query := `
		SELECT u.username
		FROM sales s JOIN users u ON u.id = s.user_id
		WHERE s.id = $1`
	var username string
	err := r.q.QueryRow(context.Background(), query, saleID).Scan(&username)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", nil
		}
		return "", fmt.Errorf("get sale seller: %w", err)
	}
	return username, nil
}

// ListItems devuelve las líneas de una venta con el nombre del producto.
func (r *SaleRepo) ListItems(saleID string) ([]repository.TicketItemRow, error) {
	query := `
		SELECT i.product_id, p.name, i.quantity, i.price_at_sale
		FROM sale_items i JOIN products p ON p.id = i.product_id
		WHERE i.sale_id = $1`
	rows, err := r.q.Query(context.Background(), query, saleID)
	if err != nil {
		return nil, fmt.Errorf("list sale items: %w", err)
	}
	defer rows.Close()
	var list []repository.TicketItemRow
	for rows.Next() {
		var it repository.TicketItemRow
		if err := rows.Scan(&it.ProductID, &it.ProductName, &it.Quantity, &it.PriceAtSale); err != nil {
			return nil, fmt.Errorf("scan sale item: %w", err)
		}
		list = append(list, it)
	}
	return list, rows.Err()
}

// ListPayments devuelve los pagos de una venta con el método asociado.
func (r *SaleRepo) ListPayments(saleID string) ([]repository.TicketPaymentRow, error) {
	query := `
		SELECT m.name, m.surcharge_percent, sp.amount, sp.surcharge_amount
		FROM sale_payments sp JOIN payment_methods m ON m.id = sp.payment_method_id
		WHERE sp.sale_id = $1`
	rows, err := r.q.Query(context.Background(), query, saleID)
	if err != nil {
		return nil, fmt.Errorf("list sale payments: %w", err)
	}
	defer rows.Close()
	var list []repository.TicketPaymentRow
	for rows.Next() {
		var p repository.TicketPaymentRow
		if err := rows.Scan(&p.MethodName, &p.SurchargePercent, &p.Amount, &p.SurchargeAmount); err != nil {
			return nil, fmt.Errorf("scan sale payment: %w", err)
		}
		list = append(list, p)
	}
	return list, rows.Err()
}
