package usecase

import (
	"time"

	"github.com/google/uuid"
	"github.com/tu-usuario/retail-pos/internal/application/dto"
	"github.com/tu-usuario/retail-pos/internal/domain"
	"github.com/tu-usuario/retail-pos/internal/domain/entity"
	"github.com/tu-usuario/retail-pos/internal/domain/repository"
	"golang.org/x/crypto/bcrypt"
)

// UserUseCase altas y bajas de usuarios (solo admin llega aquí).
type UserUseCase struct {
	repo repository.UserRepository
}

// NewUserUseCase construye el caso de uso con el puerto de persistencia.
func NewUserUseCase(repo repository.UserRepository) *UserUseCase {
	return &UserUseCase{repo: repo}
}

// Create da de alta un usuario con el password hasheado con bcrypt.
// Un username repetido devuelve domain.ErrUsernameTaken (constraint único en DB).
func (uc *UserUseCase) Create(in dto.CreateUserRequest) (*entity.User, error) {
	if in.Username == "" || in.Password == "" {
		return nil, domain.ErrInvalidInput
	}
	if !entity.ValidRole(in.Role) {
		return nil, domain.ErrInvalidInput
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	user := &entity.User{
		ID:           uuid.New().String(),
		Username:     in.Username,
		PasswordHash: string(hash),
		Role:         in.Role,
		CreatedAt:    time.Now(),
	}
	if err := uc.repo.Create(user); err != nil {
		return nil, err
	}
	return user, nil
}

// List todos los usuarios ordenados por rol.
func (uc *UserUseCase) List() ([]*entity.User, error) {
	return uc.repo.List()
}

// Delete elimina un usuario por ID.
func (uc *UserUseCase) Delete(id string) error {
	if id == "" {
		return domain.ErrInvalidInput
	}
	return uc.repo.Delete(id)
}
