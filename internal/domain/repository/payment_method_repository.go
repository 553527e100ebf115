package repository

import "github.com/tu-usuario/retail-pos/internal/domain/entity"

// PaymentMethodRepository puerto de persistencia para métodos de pago.
type PaymentMethodRepository interface {
	Create(method *entity.PaymentMethod) error
	// GetByID devuelve nil, nil si no existe.
	GetByID(id string) (*entity.PaymentMethod, error)
	// List devuelve todos los métodos ordenados por fecha de creación.
	List() ([]*entity.PaymentMethod, error)
	// ListActive devuelve solo los métodos activos (los ofrecidos en checkout).
	ListActive() ([]*entity.PaymentMethod, error)
	// SetActive fija el flag activo del método.
	SetActive(id string, active bool) error
}
