package repository

import (
	"context"

	"github.com/jhoicas/PetShop-api/internal/domain/entity"
)

// SettingsRepository registro único de configuración de la tienda.
type SettingsRepository interface {
	Get(ctx context.Context) (*entity.StoreSettings, error)
	Save(ctx context.Context, s *entity.StoreSettings) error
}
