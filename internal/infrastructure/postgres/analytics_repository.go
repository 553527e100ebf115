package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"github.com/tu-usuario/retail-pos/internal/domain/repository"
)

var _ repository.AnalyticsRepository = (*AnalyticsRepo)(nil)

// AnalyticsRepo consultas de solo lectura para dashboard y analítica.
type AnalyticsRepo struct {
	q Querier
}

// NewAnalyticsRepository construye el adaptador de lectura.
func NewAnalyticsRepository(q Querier) *AnalyticsRepo {
	return &AnalyticsRepo{q: q}
}

// CountProducts número total de productos.
func (r *AnalyticsRepo) CountProducts(ctx context.Context) (int, error) {
	var n int
	if err := r.q.QueryRow(ctx, `SELECT count(*) FROM products`).Scan(&n); err != nil {
		return 0, fmt.Errorf("count products: %w", err)
	}
	return n, nil
}

// CountUsers número total de usuarios.
func (r *AnalyticsRepo) CountUsers(ctx context.Context) (int, error) {
	var n int
	if err := r.q.QueryRow(ctx, `SELECT count(*) FROM users`).Scan(&n); err != nil {
		return 0, fmt.Errorf("count users: %w", err)
	}
	return n, nil
}

// RevenueSince suma base + recargo de las ventas creadas desde `since`.
func (r *AnalyticsRepo) RevenueSince(ctx context.Context, since time.Time) (decimal.Decimal, error) {
	var total decimal.Decimal
	err := r.q.QueryRow(ctx,
		`SELECT COALESCE(SUM(total_base + total_surcharge), 0) FROM sales WHERE created_at >= $1`,
		since,
	).Scan(&total)
	if err != nil {
		return decimal.Zero, fmt.Errorf("revenue since: %w", err)
	}
	return total, nil
}

// ListRecentSales últimas `limit` ventas con vendedor y conteo de líneas.
func (r *AnalyticsRepo) ListRecentSales(ctx context.Context, limit int) ([]repository.SaleSummary, error) {
	query := `
		SELECT s.id, u.username, s.total_base, s.total_surcharge, count(i.id), s.created_at
		FROM sales s
		JOIN users u ON u.id = s.user_id
		LEFT JOIN sale_items i ON i.sale_id = s.id
		GROUP BY s.id, u.username
		ORDER BY s.created_at DESC
		LIMIT $1`
	rows, err := r.q.Query(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("list recent sales: %w", err)
	}
	defer rows.Close()
	var list []repository.SaleSummary
	for rows.Next() {
		var s repository.SaleSummary
		if err := rows.Scan(&s.ID, &s.Username, &s.TotalBase, &s.TotalSurcharge, &s.ItemCount, &s.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan sale summary: %w", err)
		}
		list = append(list, s)
	}
	return list, rows.Err()
}

// ListSalesWithItemsSince ventas con sus líneas desde `since`, más recientes
// primero. Una sola consulta con join; el reagrupado por venta se hace aquí.
func (r *AnalyticsRepo) ListSalesWithItemsSince(ctx context.Context, since time.Time) ([]repository.SaleWithItems, error) {
	query := `
		SELECT s.id, s.total_base, s.total_surcharge, s.created_at,
		       i.product_id, p.name, i.quantity, i.price_at_sale
		FROM sales s
		LEFT JOIN sale_items i ON i.sale_id = s.id
		LEFT JOIN products p ON p.id = i.product_id
		WHERE s.created_at >= $1
		ORDER BY s.created_at DESC, s.id`
	rows, err := r.q.Query(ctx, query, since)
	if err != nil {
		return nil, fmt.Errorf("list sales with items: %w", err)
	}
	defer rows.Close()

	var list []repository.SaleWithItems
	index := make(map[string]int)
	for rows.Next() {
		var (
			saleID         string
			totalBase      decimal.Decimal
			totalSurcharge decimal.Decimal
			createdAt      time.Time
			productID      *string
			productName    *string
			quantity       *int
			priceAtSale    *decimal.Decimal
		)
		if err := rows.Scan(&saleID, &totalBase, &totalSurcharge, &createdAt,
			&productID, &productName, &quantity, &priceAtSale); err != nil {
			return nil, fmt.Errorf("scan sale with items: %w", err)
		}
		i, ok := index[saleID]
		if !ok {
			list = append(list, repository.SaleWithItems{
				ID:             saleID,
				TotalBase:      totalBase,
				TotalSurcharge: totalSurcharge,
				CreatedAt:      createdAt,
			})
			i = len(list) - 1
			index[saleID] = i
		}
		// Venta sin líneas (join izquierdo): fila con columnas de ítem en NULL.
		if productID == nil {
			continue
		}
		item := repository.SaleItemRow{
			ProductID:   *productID,
			Quantity:    *quantity,
			PriceAtSale: *priceAtSale,
		}
		if productName != nil {
			item.ProductName = *productName
		}
		list[i].Items = append(list[i].Items, item)
	}
	return list, rows.Err()
}
