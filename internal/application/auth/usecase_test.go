package auth_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/tu-usuario/retail-pos/internal/application/auth"
	"github.com/tu-usuario/retail-pos/internal/domain"
	"github.com/tu-usuario/retail-pos/internal/domain/entity"
	"github.com/tu-usuario/retail-pos/pkg/logger"
)

// fakeUserRepo usuarios en memoria indexados por username.
type fakeUserRepo struct {
	users map[string]*entity.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: map[string]*entity.User{}}
}

func (r *fakeUserRepo) Create(u *entity.User) error {
	if _, ok := r.users[u.Username]; ok {
		return domain.ErrUsernameTaken
	}
	cp := *u
	r.users[u.Username] = &cp
	return nil
}
func (r *fakeUserRepo) GetByID(id string) (*entity.User, error) {
	for _, u := range r.users {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, nil
}
func (r *fakeUserRepo) FindByUsername(username string) (*entity.User, error) {
	return r.users[username], nil
}
func (r *fakeUserRepo) List() ([]*entity.User, error) {
	var list []*entity.User
	for _, u := range r.users {
		list = append(list, u)
	}
	return list, nil
}
func (r *fakeUserRepo) Delete(id string) error {
	for name, u := range r.users {
		if u.ID == id {
			delete(r.users, name)
		}
	}
	return nil
}
func (r *fakeUserRepo) Count() (int, error) { return len(r.users), nil }

func seedUser(t *testing.T, repo *fakeUserRepo, username, password, role string) {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	require.NoError(t, repo.Create(&entity.User{
		ID: "id-" + username, Username: username,
		PasswordHash: string(hash), Role: role, CreatedAt: time.Now(),
	}))
}

// ──────────────────────────────────────────────────────────────────────────────
// Login
// ──────────────────────────────────────────────────────────────────────────────

func TestLogin_CredencialesCorrectas(t *testing.T) {
	repo := newFakeUserRepo()
	seedUser(t, repo, "cajero1", "secreta123", entity.RoleEmployee)
	uc := auth.NewAuthUseCase(repo, logger.Nop())

	ident, err := uc.Login("cajero1", "secreta123")
	require.NoError(t, err)

	assert.Equal(t, "id-cajero1", ident.ID)
	assert.Equal(t, "cajero1", ident.Username)
	assert.Equal(t, entity.RoleEmployee, ident.Role)
}

// Usuario inexistente y contraseña incorrecta deben producir exactamente el
// mismo error: la pantalla de login no puede servir para enumerar usuarios.
func TestLogin_FallosIndistinguibles(t *testing.T) {
	repo := newFakeUserRepo()
	seedUser(t, repo, "cajero1", "secreta123", entity.RoleEmployee)
	uc := auth.NewAuthUseCase(repo, logger.Nop())

	_, errWrongPass := uc.Login("cajero1", "incorrecta")
	_, errNoUser := uc.Login("fantasma", "incorrecta")

	require.Error(t, errWrongPass)
	require.Error(t, errNoUser)
	assert.Equal(t, errWrongPass.Error(), errNoUser.Error(),
		"ambos fallos deben mostrar el mismo mensaje")
	assert.ErrorIs(t, errWrongPass, domain.ErrUnauthorized)
	assert.ErrorIs(t, errNoUser, domain.ErrUnauthorized)
}

func TestLogin_UsernameEsCaseSensitive(t *testing.T) {
	repo := newFakeUserRepo()
	seedUser(t, repo, "cajero1", "secreta123", entity.RoleEmployee)
	uc := auth.NewAuthUseCase(repo, logger.Nop())

	_, err := uc.Login("Cajero1", "secreta123")
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

// ──────────────────────────────────────────────────────────────────────────────
// SeedAdmin
// ──────────────────────────────────────────────────────────────────────────────

func TestSeedAdmin_CreaAdminConTablaVacia(t *testing.T) {
	repo := newFakeUserRepo()
	uc := auth.NewAuthUseCase(repo, logger.Nop())

	require.NoError(t, uc.SeedAdmin("admin", "admin123"))

	u, err := repo.FindByUsername("admin")
	require.NoError(t, err)
	require.NotNil(t, u)
	assert.Equal(t, entity.RoleAdmin, u.Role)

	// y las credenciales sembradas permiten iniciar sesión
	ident, err := uc.Login("admin", "admin123")
	require.NoError(t, err)
	assert.Equal(t, entity.RoleAdmin, ident.Role)
}

func TestSeedAdmin_NoTocaUnaTablaPoblada(t *testing.T) {
	repo := newFakeUserRepo()
	seedUser(t, repo, "cajero1", "secreta123", entity.RoleEmployee)
	uc := auth.NewAuthUseCase(repo, logger.Nop())

	require.NoError(t, uc.SeedAdmin("admin", "admin123"))

	u, err := repo.FindByUsername("admin")
	require.NoError(t, err)
	assert.Nil(t, u, "con usuarios existentes no se siembra nada")
}
