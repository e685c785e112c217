// Package auth implementa el Session Guard: login contra el catálogo de credenciales,
// estado de sesión persistido por cliente y autorización de vistas por rol.
package auth

import (
	"context"
	"fmt"
	"time"

	"github.com/jhoicas/PetShop-api/internal/domain"
	"github.com/jhoicas/PetShop-api/internal/domain/access"
	"github.com/jhoicas/PetShop-api/internal/domain/entity"
	"github.com/jhoicas/PetShop-api/internal/domain/repository"
	"github.com/jhoicas/PetShop-api/pkg/logger"
)

// CredentialChecker contrato del catálogo de credenciales. Lo implementa *CredentialTable.
type CredentialChecker interface {
	Match(identifier, password string) (entity.User, bool)
}

// GuardConfig parámetros del guard.
type GuardConfig struct {
	// LoginDelay retardo fijo antes de validar credenciales.
	LoginDelay time.Duration
}

// SessionGuard dueño del estado de sesión. Es el único que escribe en el SessionStore.
type SessionGuard struct {
	store repository.SessionStore
	creds CredentialChecker
	cfg   GuardConfig
	log   *logger.Logger
}

// NewSessionGuard construye el guard.
func NewSessionGuard(store repository.SessionStore, creds CredentialChecker, cfg GuardConfig, log *logger.Logger) *SessionGuard {
	if log == nil {
		log = logger.Nop()
	}
	return &SessionGuard{store: store, creds: creds, cfg: cfg, log: log.Component("session_guard")}
}

// Authenticate valida las credenciales y, si coinciden, persiste la sesión autenticada
// bajo sessionID. Si no coinciden devuelve domain.ErrInvalidCredentials sin tocar la sesión.
func (g *SessionGuard) Authenticate(ctx context.Context, sessionID, identifier, password string) (entity.Session, error) {
	if sessionID == "" {
		return entity.Session{}, fmt.Errorf("authenticate: %w: session id vacío", domain.ErrInvalidInput)
	}
	if g.cfg.LoginDelay > 0 {
		t := time.NewTimer(g.cfg.LoginDelay)
		select {
		case <-ctx.Done():
			t.Stop()
			return entity.Session{}, ctx.Err()
		case <-t.C:
		}
	}

	user, ok := g.creds.Match(identifier, password)
	if !ok {
		g.log.Warn().Str("identifier", identifier).Msg("login rechazado")
		return entity.Session{}, domain.ErrInvalidCredentials
	}

	s := entity.Session{User: &user, IsAuthenticated: true}
	if err := g.store.Save(ctx, sessionID, s); err != nil {
		return entity.Session{}, fmt.Errorf("authenticate: guardar sesión: %w", err)
	}
	g.log.Info().Int64("user_id", user.ID).Str("role", string(user.Role)).Msg("sesión iniciada")
	return s, nil
}

// EndSession deja la sesión desconectada y persiste ese estado.
func (g *SessionGuard) EndSession(ctx context.Context, sessionID string) error {
	if sessionID == "" {
		return nil
	}
	if err := g.store.Save(ctx, sessionID, entity.LoggedOut()); err != nil {
		return fmt.Errorf("end session: %w", err)
	}
	g.log.Info().Msg("sesión cerrada")
	return nil
}

// Current rehidrata la sesión persistida. Sin sessionID devuelve la sesión desconectada.
func (g *SessionGuard) Current(ctx context.Context, sessionID string) (entity.Session, error) {
	if sessionID == "" {
		return entity.LoggedOut(), nil
	}
	s, err := g.store.Load(ctx, sessionID)
	if err != nil {
		return entity.Session{}, fmt.Errorf("cargar sesión: %w", err)
	}
	return s, nil
}

// Authorize rehidrata la sesión y evalúa el acceso a la vista según la tabla de acceso.
func (g *SessionGuard) Authorize(ctx context.Context, sessionID string, view access.View) (access.Decision, entity.Session, error) {
	s, err := g.Current(ctx, sessionID)
	if err != nil {
		return access.RedirectLogin, entity.Session{}, err
	}
	return access.AuthorizeView(s, view), s, nil
}

// Menu entradas del menú visibles para la sesión.
func (g *SessionGuard) Menu(ctx context.Context, sessionID string) ([]access.Entry, entity.Session, error) {
	s, err := g.Current(ctx, sessionID)
	if err != nil {
		return nil, entity.Session{}, err
	}
	return access.Menu(s), s, nil
}
