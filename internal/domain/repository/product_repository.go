package repository

import "github.com/tu-usuario/retail-pos/internal/domain/entity"

// ProductRepository puerto de persistencia para productos.
type ProductRepository interface {
	Create(product *entity.Product) error
	GetByID(id string) (*entity.Product, error)
	// List devuelve todos los productos ordenados por nombre.
	List() ([]*entity.Product, error)
	// ListInStock devuelve productos con stock > 0 ordenados por nombre (vista POS).
	ListInStock() ([]*entity.Product, error)
	// ListLowStock devuelve productos con stock <= min_stock ordenados por stock ascendente.
	ListLowStock() ([]*entity.Product, error)
	// DecrementStock descuenta qty de forma condicional (stock >= qty) y
	// devuelve true si la fila fue afectada. false significa stock insuficiente
	// o producto inexistente; el caller decide el error.
	DecrementStock(id string, qty int) (bool, error)
	// IncrementStock suma qty al stock (reposición).
	IncrementStock(id string, qty int) error
	Delete(id string) error
	Count() (int, error)
}
