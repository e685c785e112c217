package memory

import (
	"context"
	"sync"

	"github.com/jhoicas/PetShop-api/internal/domain/entity"
	"github.com/jhoicas/PetShop-api/internal/domain/repository"
)

var _ repository.SettingsRepository = (*SettingsRepo)(nil)

// SettingsRepo registro único de configuración.
type SettingsRepo struct {
	mu sync.RWMutex
	s  *entity.StoreSettings
}

// NewSettingsRepository construye el repositorio sin configuración.
func NewSettingsRepository() *SettingsRepo {
	return &SettingsRepo{}
}

// Get devuelve la configuración guardada o nil.
func (r *SettingsRepo) Get(_ context.Context) (*entity.StoreSettings, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if r.s == nil {
		return nil, nil
	}
	cp := *r.s
	return &cp, nil
}

func (r *SettingsRepo) Save(_ context.Context, s *entity.StoreSettings) error {
	cp := *s
	r.mu.Lock()
	r.s = &cp
	r.mu.Unlock()
	return nil
}
