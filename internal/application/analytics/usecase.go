package analytics

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/shopspring/decimal"
	"github.com/tu-usuario/retail-pos/internal/application/dto"
	"github.com/tu-usuario/retail-pos/internal/domain/repository"
)

const topN = 10

// AnalyticsUseCase agregaciones de lectura: estadísticas del dashboard,
// métricas por período y ranking de productos. El patrón es el mismo en
// todas: traer un row set acotado y plegarlo client-side.
type AnalyticsUseCase struct {
	repo repository.AnalyticsRepository
}

// NewAnalyticsUseCase construye el caso de uso.
func NewAnalyticsUseCase(repo repository.AnalyticsRepository) *AnalyticsUseCase {
	return &AnalyticsUseCase{repo: repo}
}

// DashboardStats conteos, ventas de hoy (base + recargo) y últimas 5 ventas.
func (uc *AnalyticsUseCase) DashboardStats(ctx context.Context) (*dto.DashboardStats, error) {
	products, err := uc.repo.CountProducts(ctx)
	if err != nil {
		return nil, fmt.Errorf("dashboard: productos: %w", err)
	}
	users, err := uc.repo.CountUsers(ctx)
	if err != nil {
		return nil, fmt.Errorf("dashboard: usuarios: %w", err)
	}
	now := time.Now()
	startOfDay := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	salesToday, err := uc.repo.RevenueSince(ctx, startOfDay)
	if err != nil {
		return nil, fmt.Errorf("dashboard: ventas de hoy: %w", err)
	}
	recent, err := uc.repo.ListRecentSales(ctx, 5)
	if err != nil {
		return nil, fmt.Errorf("dashboard: ventas recientes: %w", err)
	}
	return &dto.DashboardStats{
		Products:    products,
		Users:       users,
		SalesToday:  salesToday,
		RecentSales: recent,
	}, nil
}

// Report métricas hoy/semana/mes/año y top de productos (hoy y año).
// El snapshot de "ahora" se toma una sola vez por petición.
func (uc *AnalyticsUseCase) Report(ctx context.Context) (*dto.AnalyticsReport, error) {
	now := time.Now()
	startOfYear := time.Date(now.Year(), 1, 1, 0, 0, 0, 0, now.Location())

	sales, err := uc.repo.ListSalesWithItemsSince(ctx, startOfYear)
	if err != nil {
		return nil, fmt.Errorf("analytics: ventas del año: %w", err)
	}

	return &dto.AnalyticsReport{
		Metrics:  buildMetrics(now, sales),
		TopToday: topProducts(sales, func(t time.Time) bool { return sameDay(t, now) }),
		TopYear:  topProducts(sales, func(time.Time) bool { return true }),
	}, nil
}

// buildMetrics pliega las ventas en los cuatro buckets temporales.
// Una venta del año siempre cuenta en "year"; mes, semana y día son subconjuntos.
func buildMetrics(now time.Time, sales []repository.SaleWithItems) dto.SalesMetrics {
	var m dto.SalesMetrics
	for _, sale := range sales {
		total := sale.TotalBase.Add(sale.TotalSurcharge)
		itemCount := 0
		for _, it := range sale.Items {
			itemCount += it.Quantity
		}

		accumulate(&m.Year, total, itemCount)
		if sameMonth(sale.CreatedAt, now) {
			accumulate(&m.Month, total, itemCount)
		}
		if sameWeek(sale.CreatedAt, now) {
			accumulate(&m.Week, total, itemCount)
		}
		if sameDay(sale.CreatedAt, now) {
			accumulate(&m.Today, total, itemCount)
		}
	}
	return m
}

func accumulate(p *dto.PeriodMetrics, revenue decimal.Decimal, items int) {
	p.Revenue = p.Revenue.Add(revenue)
	p.Orders++
	p.Items += items
}

// topProducts agrupa por producto las líneas de las ventas que pasan el
// filtro, suma cantidades y aproxima el ingreso como qty × precio capturado.
// Orden: cantidad descendente; el empate conserva el orden de primera
// aparición (sort estable sobre el orden de encuentro).
func topProducts(sales []repository.SaleWithItems, include func(time.Time) bool) []dto.TopProduct {
	byProduct := make(map[string]*dto.TopProduct)
	var order []string

	for _, sale := range sales {
		if !include(sale.CreatedAt) {
			continue
		}
		for _, it := range sale.Items {
			entry, ok := byProduct[it.ProductID]
			if !ok {
				entry = &dto.TopProduct{ProductID: it.ProductID, Name: it.ProductName}
				byProduct[it.ProductID] = entry
				order = append(order, it.ProductID)
			}
			entry.Sold += it.Quantity
			entry.Revenue = entry.Revenue.Add(it.PriceAtSale.Mul(decimal.NewFromInt(int64(it.Quantity))))
		}
	}

	ranked := make([]dto.TopProduct, 0, len(order))
	for _, id := range order {
		ranked = append(ranked, *byProduct[id])
	}
	sort.SliceStable(ranked, func(i, j int) bool { return ranked[i].Sold > ranked[j].Sold })
	if len(ranked) > topN {
		ranked = ranked[:topN]
	}
	return ranked
}

func sameDay(a, b time.Time) bool {
	ya, ma, da := a.Date()
	yb, mb, db := b.Date()
	return ya == yb && ma == mb && da == db
}

// sameWeek compara número de semana ISO y año ISO.
func sameWeek(a, b time.Time) bool {
	ya, wa := a.ISOWeek()
	yb, wb := b.ISOWeek()
	return ya == yb && wa == wb
}

func sameMonth(a, b time.Time) bool {
	return a.Year() == b.Year() && a.Month() == b.Month()
}
