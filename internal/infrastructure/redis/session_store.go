// Package redis persiste el estado de sesión en Redis para compartirlo entre réplicas.
package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	goredis "github.com/redis/go-redis/v9"

	"github.com/jhoicas/PetShop-api/internal/domain/entity"
	"github.com/jhoicas/PetShop-api/internal/domain/repository"
)

var _ repository.SessionStore = (*SessionStore)(nil)

// SessionStore guarda cada sesión como JSON en la clave <prefix>:<session id>.
type SessionStore struct {
	rdb    goredis.UniversalClient
	prefix string
	ttl    time.Duration
}

// NewClient abre un cliente a partir de una URL redis://[:password@]host:port/db y verifica la conexión.
func NewClient(ctx context.Context, url string) (*goredis.Client, error) {
	opts, err := goredis.ParseURL(url)
	if err != nil {
		return nil, fmt.Errorf("redis url: %w", err)
	}
	rdb := goredis.NewClient(opts)
	if err := rdb.Ping(ctx).Err(); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("redis ping: %w", err)
	}
	return rdb, nil
}

// NewSessionStore construye el store. ttl 0 = las claves no expiran.
func NewSessionStore(rdb goredis.UniversalClient, prefix string, ttl time.Duration) *SessionStore {
	return &SessionStore{rdb: rdb, prefix: prefix, ttl: ttl}
}

func (s *SessionStore) key(id string) string {
	return s.prefix + ":" + id
}

// Load rehidrata la sesión. Clave inexistente (o expirada) = sesión desconectada.
func (s *SessionStore) Load(ctx context.Context, sessionID string) (entity.Session, error) {
	raw, err := s.rdb.Get(ctx, s.key(sessionID)).Bytes()
	if errors.Is(err, goredis.Nil) {
		return entity.LoggedOut(), nil
	}
	if err != nil {
		return entity.Session{}, fmt.Errorf("redis get: %w", err)
	}
	var out entity.Session
	if err := json.Unmarshal(raw, &out); err != nil {
		return entity.Session{}, fmt.Errorf("decodificar sesión: %w", err)
	}
	return out, nil
}

// Save persiste la sesión y renueva el TTL.
func (s *SessionStore) Save(ctx context.Context, sessionID string, sess entity.Session) error {
	raw, err := json.Marshal(sess)
	if err != nil {
		return fmt.Errorf("codificar sesión: %w", err)
	}
	if err := s.rdb.Set(ctx, s.key(sessionID), raw, s.ttl).Err(); err != nil {
		return fmt.Errorf("redis set: %w", err)
	}
	return nil
}
