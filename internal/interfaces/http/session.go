package http

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/session"
	"github.com/tu-usuario/retail-pos/internal/application/auth"
	"github.com/tu-usuario/retail-pos/pkg/config"
)

// Claves del registro de sesión server-side. La cookie solo lleva el id de
// sesión; la identidad vive en el storage.
const (
	sessionKeyUserID   = "user_id"
	sessionKeyUsername = "username"
	sessionKeyRole     = "role"
)

// NewSessionStore construye el store de sesiones de Fiber. Con storage nil
// Fiber usa su almacenamiento en memoria.
func NewSessionStore(cfg config.SessionConfig, storage fiber.Storage) *session.Store {
	return session.New(session.Config{
		Storage:        storage,
		KeyLookup:      "cookie:" + cfg.CookieName,
		Expiration:     time.Duration(cfg.TTLHours) * time.Hour,
		CookieHTTPOnly: true,
		CookieSecure:   cfg.Secure,
		CookieSameSite: "Lax",
	})
}

// CurrentUser devuelve la identidad de la sesión, o ok=false si no hay
// sesión autenticada.
func CurrentUser(store *session.Store, c *fiber.Ctx) (auth.Identity, bool) {
	sess, err := store.Get(c)
	if err != nil {
		return auth.Identity{}, false
	}
	id, _ := sess.Get(sessionKeyUserID).(string)
	if id == "" {
		return auth.Identity{}, false
	}
	username, _ := sess.Get(sessionKeyUsername).(string)
	role, _ := sess.Get(sessionKeyRole).(string)
	return auth.Identity{ID: id, Username: username, Role: role}, true
}

// saveIdentity escribe la identidad en una sesión nueva tras el login.
func saveIdentity(store *session.Store, c *fiber.Ctx, ident *auth.Identity) error {
	sess, err := store.Get(c)
	if err != nil {
		return err
	}
	// Regenerar evita fijación de sesión con el id pre-login.
	if err := sess.Regenerate(); err != nil {
		return err
	}
	sess.Set(sessionKeyUserID, ident.ID)
	sess.Set(sessionKeyUsername, ident.Username)
	sess.Set(sessionKeyRole, ident.Role)
	return sess.Save()
}

// destroySession elimina la sesión; sin sesión previa no hace nada.
func destroySession(store *session.Store, c *fiber.Ctx) {
	sess, err := store.Get(c)
	if err != nil {
		return
	}
	_ = sess.Destroy()
}
