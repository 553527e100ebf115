package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/session"
	"github.com/tu-usuario/retail-pos/internal/application/auth"
	"github.com/tu-usuario/retail-pos/internal/application/dto"
	"github.com/tu-usuario/retail-pos/internal/domain"
	"github.com/tu-usuario/retail-pos/internal/domain/entity"
)

// AuthHandler maneja login, logout y la redirección raíz por rol.
type AuthHandler struct {
	uc    *auth.AuthUseCase
	store *session.Store
}

// NewAuthHandler construye el handler de auth.
func NewAuthHandler(uc *auth.AuthUseCase, store *session.Store) *AuthHandler {
	return &AuthHandler{uc: uc, store: store}
}

// LoginForm muestra el formulario; un usuario ya autenticado va directo a /.
// GET /auth/login
func (h *AuthHandler) LoginForm(c *fiber.Ctx) error {
	if _, ok := CurrentUser(h.store, c); ok {
		return c.Redirect("/", fiber.StatusFound)
	}
	return c.Render("login", fiber.Map{"Title": "Iniciar sesión"})
}

// Login procesa las credenciales del formulario. Usuario desconocido y
// contraseña incorrecta muestran el mismo mensaje genérico.
// POST /auth/login
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var in dto.LoginRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).Render("login", fiber.Map{
			"Title": "Iniciar sesión",
			"Error": "formulario inválido",
		})
	}
	if in.Username == "" || in.Password == "" {
		return c.Status(fiber.StatusBadRequest).Render("login", fiber.Map{
			"Title": "Iniciar sesión",
			"Error": "usuario y contraseña son requeridos",
		})
	}
	ident, err := h.uc.Login(in.Username, in.Password)
	if err != nil {
		status := fiber.StatusUnauthorized
		msg := "credenciales inválidas"
		if !errors.Is(err, domain.ErrUnauthorized) {
			status = fiber.StatusInternalServerError
			msg = "error interno, intenta de nuevo"
		}
		return c.Status(status).Render("login", fiber.Map{
			"Title": "Iniciar sesión",
			"Error": msg,
		})
	}
	if err := saveIdentity(h.store, c, ident); err != nil {
		return c.Status(fiber.StatusInternalServerError).Render("login", fiber.Map{
			"Title": "Iniciar sesión",
			"Error": "no se pudo iniciar la sesión",
		})
	}
	return c.Redirect("/", fiber.StatusFound)
}

// Logout destruye la sesión incondicionalmente.
// GET /auth/logout
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	destroySession(h.store, c)
	return c.Redirect("/auth/login", fiber.StatusFound)
}

// Home redirige a la pantalla del rol de la sesión.
// GET /
func (h *AuthHandler) Home(c *fiber.Ctx) error {
	ident, ok := CurrentUser(h.store, c)
	if !ok {
		return c.Redirect("/auth/login", fiber.StatusFound)
	}
	switch ident.Role {
	case entity.RoleAdmin:
		return c.Redirect("/admin", fiber.StatusFound)
	case entity.RoleWarehouse:
		return c.Redirect("/warehouse", fiber.StatusFound)
	default:
		return c.Redirect("/pos", fiber.StatusFound)
	}
}
