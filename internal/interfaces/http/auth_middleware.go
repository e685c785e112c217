package http

import (
	"slices"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/PetShop-api/internal/application/auth"
	"github.com/jhoicas/PetShop-api/internal/application/dto"
	"github.com/jhoicas/PetShop-api/internal/domain/access"
	"github.com/jhoicas/PetShop-api/internal/domain/entity"
	"github.com/jhoicas/PetShop-api/pkg/config"
	"github.com/jhoicas/PetShop-api/pkg/jwt"
)

const (
	localSessionID = "session_id"
	localSession   = "session"
)

// SessionMiddleware lee el Bearer token (opcional), rehidrata la sesión persistida y la deja en Locals.
// Sin token, o con un token inválido o expirado, la petición sigue con la sesión desconectada.
func SessionMiddleware(jwtSecret string, guard *auth.SessionGuard) fiber.Handler {
	return func(c *fiber.Ctx) error {
		sid := ""
		if token := bearerToken(c); token != "" {
			if claims, err := jwt.Parse(jwtSecret, token); err == nil {
				sid = claims.SessionID
			} else {
				requestLogger(c).Debug().Err(err).Msg("token descartado")
			}
		}
		s, err := guard.Current(c.UserContext(), sid)
		if err != nil {
			return writeError(c, err)
		}
		c.Locals(localSessionID, sid)
		c.Locals(localSession, s)
		return c.Next()
	}
}

func bearerToken(c *fiber.Ctx) string {
	h := c.Get(fiber.HeaderAuthorization)
	const prefix = "Bearer "
	if len(h) < len(prefix) || !strings.EqualFold(h[:len(prefix)], prefix) {
		return ""
	}
	return strings.TrimSpace(h[len(prefix):])
}

// RequireView aplica el guard de la vista: sin sesión redirige al login,
// con rol fuera de la lista responde 204 sin cuerpo, y si no continúa.
func RequireView(view access.View, ui config.UIConfig, m *Metrics) fiber.Handler {
	return func(c *fiber.Ctx) error {
		d := access.AuthorizeView(GetSession(c), view)
		m.guard(view, d)
		switch d {
		case access.RedirectLogin:
			return c.Redirect(ui.LoginPath, fiber.StatusFound)
		case access.Deny:
			c.Status(fiber.StatusNoContent)
			return nil
		}
		return c.Next()
	}
}

// RequireSession exige una sesión iniciada, sin importar el rol. Responde 401 si no la hay.
func RequireSession() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if !GetSession(c).IsAuthenticated {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
				Code:    "UNAUTHENTICATED",
				Message: "sesión requerida",
			})
		}
		return c.Next()
	}
}

// RequireRole restringe una acción dentro de una vista ya autorizada. Responde 403 si el rol no está en la lista.
func RequireRole(roles ...entity.Role) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if !slices.Contains(roles, GetSession(c).Role()) {
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{
				Code:    "FORBIDDEN",
				Message: "el rol no tiene permiso para esta acción",
			})
		}
		return c.Next()
	}
}

// GetSession obtiene la sesión del contexto (puesta por SessionMiddleware).
func GetSession(c *fiber.Ctx) entity.Session {
	s, _ := c.Locals(localSession).(entity.Session)
	return s
}

// GetSessionID obtiene la clave de sesión del token, "" si no hubo token válido.
func GetSessionID(c *fiber.Ctx) string {
	sid, _ := c.Locals(localSessionID).(string)
	return sid
}

// GetUser usuario autenticado o nil.
func GetUser(c *fiber.Ctx) *entity.User {
	s := GetSession(c)
	if !s.IsAuthenticated {
		return nil
	}
	return s.User
}
