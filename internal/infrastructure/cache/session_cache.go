// Package cache agrega una caché LRU con expiración delante de un SessionStore remoto.
package cache

import (
	"context"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"github.com/jhoicas/PetShop-api/internal/domain/entity"
	"github.com/jhoicas/PetShop-api/internal/domain/repository"
)

var _ repository.SessionStore = (*SessionCache)(nil)

// SessionCache lecturas desde la caché; escrituras van primero al store y luego a la caché.
// Si Save falla en el store se descarta la entrada en caché.
type SessionCache struct {
	next repository.SessionStore
	lru  *expirable.LRU[string, entity.Session]
}

// NewSessionCache envuelve next con una LRU de size entradas que expiran a los ttl.
func NewSessionCache(next repository.SessionStore, size int, ttl time.Duration) *SessionCache {
	return &SessionCache{next: next, lru: expirable.NewLRU[string, entity.Session](size, nil, ttl)}
}

func (c *SessionCache) Load(ctx context.Context, sessionID string) (entity.Session, error) {
	if s, ok := c.lru.Get(sessionID); ok {
		return s, nil
	}
	s, err := c.next.Load(ctx, sessionID)
	if err != nil {
		return entity.Session{}, err
	}
	c.lru.Add(sessionID, s)
	return s, nil
}

func (c *SessionCache) Save(ctx context.Context, sessionID string, s entity.Session) error {
	if err := c.next.Save(ctx, sessionID, s); err != nil {
		c.lru.Remove(sessionID)
		return err
	}
	c.lru.Add(sessionID, s)
	return nil
}

// Len entradas vivas en caché.
func (c *SessionCache) Len() int {
	return c.lru.Len()
}
