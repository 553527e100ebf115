package repository

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// AnalyticsRepository consultas de solo lectura para dashboard y analítica.
// La agregación por buckets y el top-N se hacen client-side en el use case;
// aquí solo se trae el row set acotado o filtrado por tiempo.
type AnalyticsRepository interface {
	CountProducts(ctx context.Context) (int, error)
	CountUsers(ctx context.Context) (int, error)
	// RevenueSince suma base + recargo de las ventas creadas desde `since`.
	RevenueSince(ctx context.Context, since time.Time) (decimal.Decimal, error)
	// ListRecentSales devuelve las últimas `limit` ventas con vendedor y conteo de líneas.
	ListRecentSales(ctx context.Context, limit int) ([]SaleSummary, error)
	// ListSalesWithItemsSince devuelve ventas (con líneas y nombre de producto)
	// creadas desde `since`, más recientes primero.
	ListSalesWithItemsSince(ctx context.Context, since time.Time) ([]SaleWithItems, error)
}
