package auth

import (
	"time"

	"github.com/google/uuid"
	"github.com/tu-usuario/retail-pos/internal/domain"
	"github.com/tu-usuario/retail-pos/internal/domain/entity"
	"github.com/tu-usuario/retail-pos/internal/domain/repository"
	"github.com/tu-usuario/retail-pos/pkg/logger"
	"golang.org/x/crypto/bcrypt"
)

// Identity identidad autenticada de la petición. Se resuelve una vez en la
// capa HTTP (sesión) y se pasa explícitamente a los casos de uso: ningún
// código por debajo de los handlers consulta la sesión.
type Identity struct {
	ID       string
	Username string
	Role     string
}

// AuthUseCase login contra los hashes almacenados y seeding del admin inicial.
type AuthUseCase struct {
	userRepo repository.UserRepository
	log      *logger.Logger
}

// NewAuthUseCase construye el caso de uso de auth.
func NewAuthUseCase(userRepo repository.UserRepository, log *logger.Logger) *AuthUseCase {
	return &AuthUseCase{userRepo: userRepo, log: log}
}

// Login verifica username/password y devuelve la identidad de sesión.
// Usuario inexistente y contraseña incorrecta devuelven el mismo
// domain.ErrUnauthorized: la vista no debe permitir enumerar usuarios.
func (uc *AuthUseCase) Login(username, password string) (*Identity, error) {
	user, err := uc.userRepo.FindByUsername(username)
	if err != nil {
		return nil, err
	}
	if user == nil {
		// Comparación dummy para igualar el costo con el caso de hash real.
		_ = bcrypt.CompareHashAndPassword(dummyHash, []byte(password))
		return nil, domain.ErrUnauthorized
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		uc.log.Warn().Str("username", username).Msg("login fallido")
		return nil, domain.ErrUnauthorized
	}
	return &Identity{ID: user.ID, Username: user.Username, Role: user.Role}, nil
}

// dummyHash hash de una cadena arbitraria; solo para igualar tiempos de respuesta.
var dummyHash = []byte("$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy")

// SeedAdmin crea el admin por defecto si la tabla de usuarios está vacía
// (bootstrap de primer arranque).
func (uc *AuthUseCase) SeedAdmin(username, password string) error {
	count, err := uc.userRepo.Count()
	if err != nil {
		return err
	}
	if count > 0 {
		return nil
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	user := &entity.User{
		ID:           uuid.New().String(),
		Username:     username,
		PasswordHash: string(hash),
		Role:         entity.RoleAdmin,
		CreatedAt:    time.Now(),
	}
	if err := uc.userRepo.Create(user); err != nil {
		return err
	}
	uc.log.Info().Str("username", username).Msg("admin inicial creado")
	return nil
}
