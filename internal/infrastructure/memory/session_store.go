package memory

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/jhoicas/PetShop-api/internal/domain/entity"
	"github.com/jhoicas/PetShop-api/internal/domain/repository"
)

var _ repository.SessionStore = (*SessionStore)(nil)

// SessionStore guarda cada sesión serializada en JSON bajo <prefix>:<session id>.
type SessionStore struct {
	mu     sync.RWMutex
	prefix string
	data   map[string][]byte
}

// NewSessionStore construye el store en memoria.
func NewSessionStore(prefix string) *SessionStore {
	return &SessionStore{prefix: prefix, data: make(map[string][]byte)}
}

func (s *SessionStore) key(id string) string {
	return s.prefix + ":" + id
}

// Load rehidrata la sesión; si la clave no existe devuelve la sesión desconectada.
func (s *SessionStore) Load(_ context.Context, sessionID string) (entity.Session, error) {
	s.mu.RLock()
	raw, ok := s.data[s.key(sessionID)]
	s.mu.RUnlock()
	if !ok {
		return entity.LoggedOut(), nil
	}
	var out entity.Session
	if err := json.Unmarshal(raw, &out); err != nil {
		return entity.Session{}, fmt.Errorf("decodificar sesión: %w", err)
	}
	return out, nil
}

// Save persiste la sesión tal cual.
func (s *SessionStore) Save(_ context.Context, sessionID string, sess entity.Session) error {
	raw, err := json.Marshal(sess)
	if err != nil {
		return fmt.Errorf("codificar sesión: %w", err)
	}
	s.mu.Lock()
	s.data[s.key(sessionID)] = raw
	s.mu.Unlock()
	return nil
}

// Raw devuelve el valor persistido bajo la clave (nil si no existe).
func (s *SessionStore) Raw(sessionID string) []byte {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.data[s.key(sessionID)]
}
