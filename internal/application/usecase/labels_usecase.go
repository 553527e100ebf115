package usecase

import (
	"context"

	"github.com/tu-usuario/retail-pos/internal/domain"
	"github.com/tu-usuario/retail-pos/internal/domain/entity"
	"github.com/tu-usuario/retail-pos/internal/domain/repository"
)

// LabelPDFGenerator puerto de salida para la hoja de etiquetas imprimibles.
// La implementación vive en infrastructure/pdf.
type LabelPDFGenerator interface {
	GenerateLabelSheet(ctx context.Context, products []*entity.Product) ([]byte, error)
}

// LabelsUseCase genera hojas de etiquetas de precio con código de barras.
type LabelsUseCase struct {
	productRepo repository.ProductRepository
	generator   LabelPDFGenerator
}

// NewLabelsUseCase construye el caso de uso.
func NewLabelsUseCase(productRepo repository.ProductRepository, generator LabelPDFGenerator) *LabelsUseCase {
	return &LabelsUseCase{productRepo: productRepo, generator: generator}
}

// SheetForAll genera la hoja con una etiqueta por producto del catálogo.
func (uc *LabelsUseCase) SheetForAll(ctx context.Context) ([]byte, error) {
	products, err := uc.productRepo.List()
	if err != nil {
		return nil, err
	}
	if len(products) == 0 {
		return nil, domain.ErrNotFound
	}
	return uc.generator.GenerateLabelSheet(ctx, products)
}
