package analytics

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/retail-pos/internal/domain/repository"
)

// fakeAnalyticsRepo devuelve rows fijados por el test.
type fakeAnalyticsRepo struct {
	products int
	users    int
	revenue  decimal.Decimal
	recent   []repository.SaleSummary
	sales    []repository.SaleWithItems
}

func (r *fakeAnalyticsRepo) CountProducts(context.Context) (int, error) { return r.products, nil }
func (r *fakeAnalyticsRepo) CountUsers(context.Context) (int, error)    { return r.users, nil }
func (r *fakeAnalyticsRepo) RevenueSince(context.Context, time.Time) (decimal.Decimal, error) {
	return r.revenue, nil
}
func (r *fakeAnalyticsRepo) ListRecentSales(context.Context, int) ([]repository.SaleSummary, error) {
	return r.recent, nil
}
func (r *fakeAnalyticsRepo) ListSalesWithItemsSince(context.Context, time.Time) ([]repository.SaleWithItems, error) {
	return r.sales, nil
}

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func saleAt(t time.Time, base string, items ...repository.SaleItemRow) repository.SaleWithItems {
	return repository.SaleWithItems{
		ID:             "s-" + t.Format("20060102150405"),
		TotalBase:      dec(base),
		TotalSurcharge: decimal.Zero,
		CreatedAt:      t,
		Items:          items,
	}
}

func item(productID, name string, qty int, price string) repository.SaleItemRow {
	return repository.SaleItemRow{
		ProductID: productID, ProductName: name,
		Quantity: qty, PriceAtSale: dec(price),
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// topProducts
// ──────────────────────────────────────────────────────────────────────────────

func TestTopProducts_EmpateConservaOrdenDePrimeraAparicion(t *testing.T) {
	now := time.Now()
	sales := []repository.SaleWithItems{
		saleAt(now, "30",
			item("P1", "Uno", 3, "10"),
			item("P2", "Dos", 5, "10"),
		),
		saleAt(now, "20",
			item("P1", "Uno", 2, "10"),
		),
	}

	top := topProducts(sales, func(time.Time) bool { return true })

	// P1 y P2 terminan empatados en 5; P1 apareció primero y conserva el puesto
	require.Len(t, top, 2)
	assert.Equal(t, "P1", top[0].ProductID)
	assert.Equal(t, 5, top[0].Sold)
	assert.Equal(t, "P2", top[1].ProductID)
	assert.Equal(t, 5, top[1].Sold)
}

func TestTopProducts_SumaCantidadesEIngresoAproximado(t *testing.T) {
	now := time.Now()
	sales := []repository.SaleWithItems{
		saleAt(now, "50", item("P1", "Uno", 3, "10.00")),
		saleAt(now, "40", item("P1", "Uno", 2, "12.00")),
	}

	top := topProducts(sales, func(time.Time) bool { return true })

	require.Len(t, top, 1)
	assert.Equal(t, 5, top[0].Sold)
	assert.True(t, top[0].Revenue.Equal(dec("54")), "3×10 + 2×12 = 54, fue %s", top[0].Revenue)
}

func TestTopProducts_RecortaADiez(t *testing.T) {
	now := time.Now()
	var items []repository.SaleItemRow
	for i := 0; i < 15; i++ {
		items = append(items, item(string(rune('A'+i)), "Prod", 15-i, "1"))
	}
	sales := []repository.SaleWithItems{saleAt(now, "100", items...)}

	top := topProducts(sales, func(time.Time) bool { return true })

	assert.Len(t, top, 10)
	assert.Equal(t, 15, top[0].Sold, "el más vendido encabeza la lista")
}

func TestTopProducts_FiltroPorFecha(t *testing.T) {
	now := time.Now()
	yesterday := now.AddDate(0, 0, -1)
	sales := []repository.SaleWithItems{
		saleAt(now, "10", item("HOY", "Hoy", 1, "10")),
		saleAt(yesterday, "10", item("AYER", "Ayer", 9, "10")),
	}

	top := topProducts(sales, func(ts time.Time) bool { return sameDay(ts, now) })

	require.Len(t, top, 1)
	assert.Equal(t, "HOY", top[0].ProductID)
}

// ──────────────────────────────────────────────────────────────────────────────
// buildMetrics — buckets temporales
// ──────────────────────────────────────────────────────────────────────────────

func TestBuildMetrics_BucketsAnidados(t *testing.T) {
	// Jueves 15 de mayo: fecha fija para que los buckets sean deterministas.
	now := time.Date(2025, 5, 15, 12, 0, 0, 0, time.UTC)

	sales := []repository.SaleWithItems{
		// hoy: cuenta en los cuatro buckets
		saleAt(now.Add(-2*time.Hour), "100", item("P1", "Uno", 2, "50")),
		// mismo lunes de esa semana, otro día: semana, mes y año
		saleAt(time.Date(2025, 5, 12, 9, 0, 0, 0, time.UTC), "40", item("P1", "Uno", 1, "40")),
		// mismo mes, semana anterior: mes y año
		saleAt(time.Date(2025, 5, 2, 9, 0, 0, 0, time.UTC), "30", item("P1", "Uno", 1, "30")),
		// enero: solo año
		saleAt(time.Date(2025, 1, 10, 9, 0, 0, 0, time.UTC), "20", item("P1", "Uno", 1, "20")),
	}

	m := buildMetrics(now, sales)

	assert.True(t, m.Today.Revenue.Equal(dec("100")))
	assert.Equal(t, 1, m.Today.Orders)
	assert.Equal(t, 2, m.Today.Items)

	assert.True(t, m.Week.Revenue.Equal(dec("140")))
	assert.Equal(t, 2, m.Week.Orders)

	assert.True(t, m.Month.Revenue.Equal(dec("170")))
	assert.Equal(t, 3, m.Month.Orders)

	assert.True(t, m.Year.Revenue.Equal(dec("190")))
	assert.Equal(t, 4, m.Year.Orders)
	assert.Equal(t, 5, m.Year.Items)
}

func TestSameWeek_CruceDeAnioISO(t *testing.T) {
	// El 29/12/2025 (lunes) y el 01/01/2026 (jueves) caen en la semana ISO 1 de 2026.
	a := time.Date(2025, 12, 29, 0, 0, 0, 0, time.UTC)
	b := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	assert.True(t, sameWeek(a, b))

	// Pero el 28/12/2025 (domingo) cierra la semana 52 de 2025.
	c := time.Date(2025, 12, 28, 0, 0, 0, 0, time.UTC)
	assert.False(t, sameWeek(a, c))
}

// ──────────────────────────────────────────────────────────────────────────────
// DashboardStats
// ──────────────────────────────────────────────────────────────────────────────

func TestDashboardStats_ReuneConteosEIngresos(t *testing.T) {
	repo := &fakeAnalyticsRepo{
		products: 12,
		users:    3,
		revenue:  dec("450.50"),
		recent: []repository.SaleSummary{
			{ID: "s1", Username: "cajero1", TotalBase: dec("100"), ItemCount: 2, CreatedAt: time.Now()},
		},
	}
	uc := NewAnalyticsUseCase(repo)

	stats, err := uc.DashboardStats(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 12, stats.Products)
	assert.Equal(t, 3, stats.Users)
	assert.True(t, stats.SalesToday.Equal(dec("450.50")))
	require.Len(t, stats.RecentSales, 1)
	assert.Equal(t, "cajero1", stats.RecentSales[0].Username)
}

func TestReport_TopTodaySoloVentasDeHoy(t *testing.T) {
	now := time.Now()
	repo := &fakeAnalyticsRepo{
		sales: []repository.SaleWithItems{
			saleAt(now, "10", item("HOY", "Hoy", 1, "10")),
			saleAt(now.AddDate(0, -1, 0), "10", item("VIEJO", "Viejo", 4, "10")),
		},
	}
	uc := NewAnalyticsUseCase(repo)

	report, err := uc.Report(context.Background())
	require.NoError(t, err)

	require.Len(t, report.TopToday, 1)
	assert.Equal(t, "HOY", report.TopToday[0].ProductID)
	assert.Len(t, report.TopYear, 2)
}
