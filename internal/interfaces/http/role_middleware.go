package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/session"
	"github.com/tu-usuario/retail-pos/internal/application/auth"
	"github.com/tu-usuario/retail-pos/internal/domain/entity"
)

// Locals key para la identidad resuelta por RequireRole.
const localIdentity = "identity"

// RequireRole resuelve la identidad de la sesión y exige el rol dado.
// Sin sesión redirige al login; admin pasa cualquier puerta; cualquier otro
// rol necesita igualdad exacta (sin jerarquía) y si no, recibe 403.
func RequireRole(store *session.Store, role string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		ident, ok := CurrentUser(store, c)
		if !ok {
			return c.Redirect("/auth/login", fiber.StatusFound)
		}
		if ident.Role != entity.RoleAdmin && ident.Role != role {
			return c.Status(fiber.StatusForbidden).Render("error", fiber.Map{
				"Title":   "Acceso denegado",
				"Message": "tu rol no tiene acceso a esta sección",
				"User":    ident,
			})
		}
		c.Locals(localIdentity, ident)
		return c.Next()
	}
}

// GetIdentity devuelve la identidad del contexto (después de RequireRole).
func GetIdentity(c *fiber.Ctx) auth.Identity {
	v := c.Locals(localIdentity)
	if v == nil {
		return auth.Identity{}
	}
	ident, _ := v.(auth.Identity)
	return ident
}
