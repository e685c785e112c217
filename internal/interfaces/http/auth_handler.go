package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/jhoicas/PetShop-api/internal/application/auth"
	"github.com/jhoicas/PetShop-api/internal/application/dto"
	"github.com/jhoicas/PetShop-api/internal/domain"
	"github.com/jhoicas/PetShop-api/internal/domain/access"
	"github.com/jhoicas/PetShop-api/pkg/config"
	"github.com/jhoicas/PetShop-api/pkg/jwt"
	"github.com/jhoicas/PetShop-api/pkg/validator"
)

// AuthHandler login, logout, estado de sesión y menú.
type AuthHandler struct {
	guard   *auth.SessionGuard
	jwtCfg  config.JWTConfig
	ui      config.UIConfig
	v       *validator.Validator
	metrics *Metrics
}

// NewAuthHandler construye el handler.
func NewAuthHandler(guard *auth.SessionGuard, jwtCfg config.JWTConfig, ui config.UIConfig, v *validator.Validator, m *Metrics) *AuthHandler {
	return &AuthHandler{guard: guard, jwtCfg: jwtCfg, ui: ui, v: v, metrics: m}
}

// Login godoc
// @Summary      Iniciar sesión
// @Description  Acepta username, email o nombre visible (sin distinguir mayúsculas). Si la petición trae un token válido se reutiliza su sesión.
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body  dto.LoginRequest  true  "Credenciales"
// @Success      200   {object}  dto.LoginResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      401   {object}  dto.ErrorResponse
// @Failure      429   {object}  dto.ErrorResponse
// @Router       /api/auth/login [post]
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var in dto.LoginRequest
	if err := parseBody(c, h.v, &in); err != nil {
		return writeError(c, err)
	}
	sid := GetSessionID(c)
	if sid == "" {
		sid = uuid.NewString()
	}
	s, err := h.guard.Authenticate(c.UserContext(), sid, in.Identifier, in.Password)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidCredentials) {
			h.metrics.login("invalid")
		} else {
			h.metrics.login("error")
		}
		return writeError(c, err)
	}
	token, err := jwt.Generate(h.jwtCfg.Secret, sid, s.User.ID, h.jwtCfg.Issuer, h.jwtCfg.Expiration)
	if err != nil {
		h.metrics.login("error")
		return writeError(c, err)
	}
	h.metrics.login("success")
	return c.JSON(dto.LoginResponse{Token: token, Session: s})
}

// Logout godoc
// @Summary      Cerrar sesión
// @Tags         auth
// @Security     Bearer
// @Success      204
// @Router       /api/auth/logout [post]
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	if err := h.guard.EndSession(c.UserContext(), GetSessionID(c)); err != nil {
		return writeError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// Session godoc
// @Summary      Estado de la sesión actual
// @Tags         auth
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  entity.Session
// @Router       /api/auth/session [get]
func (h *AuthHandler) Session(c *fiber.Ctx) error {
	return c.JSON(GetSession(c))
}

// Menu godoc
// @Summary      Menú lateral según el rol
// @Tags         auth
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.MenuResponse
// @Failure      302
// @Router       /api/menu [get]
func (h *AuthHandler) Menu(c *fiber.Ctx) error {
	s := GetSession(c)
	if access.Authorize(s, nil) == access.RedirectLogin {
		return c.Redirect(h.ui.LoginPath, fiber.StatusFound)
	}
	entries := access.Menu(s)
	items := make([]dto.MenuEntryDTO, 0, len(entries))
	for _, e := range entries {
		items = append(items, dto.MenuEntryDTO{View: string(e.View), Label: e.Label, Path: e.Path})
	}
	return c.JSON(dto.MenuResponse{Role: string(s.Role()), RoleLabel: s.Role().Label(), Items: items})
}

// LoginPage godoc
// @Summary      Pantalla de login
// @Description  Con sesión activa redirige al inicio de la consola.
// @Tags         auth
// @Produce      json
// @Success      200
// @Failure      302
// @Router       /login [get]
func (h *AuthHandler) LoginPage(c *fiber.Ctx) error {
	if GetUser(c) != nil {
		return c.Redirect(h.ui.HomePath, fiber.StatusFound)
	}
	return c.JSON(fiber.Map{"view": "login"})
}
