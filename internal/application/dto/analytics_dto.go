package dto

import (
	"github.com/shopspring/decimal"
	"github.com/tu-usuario/retail-pos/internal/domain/repository"
)

// DashboardStats métricas del panel de administración.
type DashboardStats struct {
	Products    int
	Users       int
	SalesToday  decimal.Decimal // base + recargos de las ventas de hoy
	RecentSales []repository.SaleSummary
}

// PeriodMetrics acumulado de un bucket temporal (hoy/semana/mes/año).
type PeriodMetrics struct {
	Revenue decimal.Decimal
	Orders  int
	Items   int
}

// SalesMetrics los cuatro buckets calculados sobre un snapshot de "ahora".
type SalesMetrics struct {
	Today PeriodMetrics
	Week  PeriodMetrics
	Month PeriodMetrics
	Year  PeriodMetrics
}

// TopProduct entrada del ranking de productos más vendidos.
// Revenue es la aproximación cantidad × precio capturado en cada línea.
type TopProduct struct {
	ProductID string
	Name      string
	Sold      int
	Revenue   decimal.Decimal
}

// AnalyticsReport reporte completo de la vista de analítica.
type AnalyticsReport struct {
	Metrics  SalesMetrics
	TopToday []TopProduct
	TopYear  []TopProduct
}
