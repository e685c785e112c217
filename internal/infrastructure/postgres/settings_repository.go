package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/PetShop-api/internal/domain/entity"
	"github.com/jhoicas/PetShop-api/internal/domain/repository"
)

var _ repository.SettingsRepository = (*SettingsRepo)(nil)

// SettingsRepo fila única (id = 1) de configuración. Las preferencias van en JSONB.
type SettingsRepo struct {
	q Querier
}

func NewSettingsRepository(q Querier) *SettingsRepo {
	return &SettingsRepo{q: q}
}

// Get devuelve nil si la tienda aún no tiene configuración.
func (r *SettingsRepo) Get(ctx context.Context) (*entity.StoreSettings, error) {
	var s entity.StoreSettings
	err := r.q.QueryRow(ctx, `
		SELECT store_name, address, phone, email, tax_id, notifications, system, updated_at
		FROM store_settings WHERE id = 1`).Scan(
		&s.StoreName, &s.Address, &s.Phone, &s.Email, &s.TaxID, &s.Notifications, &s.System, &s.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get settings: %w", err)
	}
	return &s, nil
}

// Save inserta o reemplaza la configuración.
func (r *SettingsRepo) Save(ctx context.Context, s *entity.StoreSettings) error {
	_, err := r.q.Exec(ctx, `
		INSERT INTO store_settings (id, store_name, address, phone, email, tax_id, notifications, system, updated_at)
		VALUES (1, $1, $2, $3, $4, $5, $6, $7, $8)
		ON CONFLICT (id) DO UPDATE SET
			store_name = EXCLUDED.store_name, address = EXCLUDED.address, phone = EXCLUDED.phone,
			email = EXCLUDED.email, tax_id = EXCLUDED.tax_id, notifications = EXCLUDED.notifications,
			system = EXCLUDED.system, updated_at = EXCLUDED.updated_at`,
		s.StoreName, s.Address, s.Phone, s.Email, s.TaxID, s.Notifications, s.System, s.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("save settings: %w", err)
	}
	return nil
}
