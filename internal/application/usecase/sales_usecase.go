package usecase

import (
	"context"

	"github.com/tu-usuario/retail-pos/internal/domain/repository"
)

const salesHistoryLimit = 50

// SalesUseCase historial de ventas para el panel admin.
type SalesUseCase struct {
	repo repository.AnalyticsRepository
}

// NewSalesUseCase construye el caso de uso.
func NewSalesUseCase(repo repository.AnalyticsRepository) *SalesUseCase {
	return &SalesUseCase{repo: repo}
}

// History últimas 50 ventas con vendedor y conteo de líneas.
func (uc *SalesUseCase) History(ctx context.Context) ([]repository.SaleSummary, error) {
	return uc.repo.ListRecentSales(ctx, salesHistoryLimit)
}
