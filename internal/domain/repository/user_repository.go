package repository

import "github.com/tu-usuario/retail-pos/internal/domain/entity"

// UserRepository puerto de persistencia para usuarios.
type UserRepository interface {
	// Create persiste un usuario nuevo. Devuelve domain.ErrUsernameTaken
	// si el username ya existe.
	Create(user *entity.User) error
	GetByID(id string) (*entity.User, error)
	// FindByUsername busca por username exacto (case-sensitive, primer match).
	// Devuelve nil, nil si no existe.
	FindByUsername(username string) (*entity.User, error)
	List() ([]*entity.User, error)
	Delete(id string) error
	Count() (int, error)
}
