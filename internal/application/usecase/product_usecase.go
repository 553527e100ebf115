package usecase

import (
	"time"

	"github.com/google/uuid"
	"github.com/tu-usuario/retail-pos/internal/application/dto"
	"github.com/tu-usuario/retail-pos/internal/domain"
	"github.com/tu-usuario/retail-pos/internal/domain/entity"
	"github.com/tu-usuario/retail-pos/internal/domain/repository"
)

// ProductUseCase reglas de negocio para productos.
type ProductUseCase struct {
	repo repository.ProductRepository
}

// NewProductUseCase construye el caso de uso con el puerto de persistencia.
func NewProductUseCase(repo repository.ProductRepository) *ProductUseCase {
	return &ProductUseCase{repo: repo}
}

// Create da de alta un producto nuevo.
func (uc *ProductUseCase) Create(in dto.CreateProductRequest) (*entity.Product, error) {
	if in.Name == "" || in.SKU == "" {
		return nil, domain.ErrInvalidInput
	}
	if in.Price.IsNegative() || in.Stock < 0 || in.MinStock < 0 {
		return nil, domain.ErrInvalidInput
	}
	product := &entity.Product{
		ID:        uuid.New().String(),
		Name:      in.Name,
		SKU:       in.SKU,
		Price:     in.Price,
		Stock:     in.Stock,
		Category:  in.Category,
		MinStock:  in.MinStock,
		CreatedAt: time.Now(),
	}
	if err := uc.repo.Create(product); err != nil {
		return nil, err
	}
	return product, nil
}

// List todos los productos ordenados por nombre.
func (uc *ProductUseCase) List() ([]*entity.Product, error) {
	return uc.repo.List()
}

// ListInStock productos con existencias, para la vista de venta.
func (uc *ProductUseCase) ListInStock() ([]*entity.Product, error) {
	return uc.repo.ListInStock()
}

// Delete elimina un producto por ID.
func (uc *ProductUseCase) Delete(id string) error {
	if id == "" {
		return domain.ErrInvalidInput
	}
	return uc.repo.Delete(id)
}
