package repository

import (
	"context"

	"github.com/jhoicas/PetShop-api/internal/domain/entity"
)

// SessionStore persiste el estado de sesión de cada cliente bajo una única clave.
// Load de una clave inexistente devuelve la sesión desconectada sin error.
type SessionStore interface {
	Load(ctx context.Context, sessionID string) (entity.Session, error)
	Save(ctx context.Context, sessionID string, s entity.Session) error
}
