package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/jhoicas/PetShop-api/internal/application/dto"
	"github.com/jhoicas/PetShop-api/internal/domain/entity"
	"github.com/jhoicas/PetShop-api/internal/domain/repository"
)

// SettingsUseCase lectura y escritura de la configuración única de la tienda.
type SettingsUseCase struct {
	repo     repository.SettingsRepository
	defaults entity.StoreSettings
}

// NewSettingsUseCase construye el caso de uso. defaults se devuelve mientras no haya nada guardado.
func NewSettingsUseCase(repo repository.SettingsRepository, defaults entity.StoreSettings) *SettingsUseCase {
	return &SettingsUseCase{repo: repo, defaults: defaults}
}

// Get devuelve la configuración vigente.
func (uc *SettingsUseCase) Get(ctx context.Context) (*dto.SettingsResponse, error) {
	s, err := uc.repo.Get(ctx)
	if err != nil {
		return nil, err
	}
	if s == nil {
		d := uc.defaults
		s = &d
	}
	return toSettingsResponse(s), nil
}

// Update reemplaza la configuración completa.
func (uc *SettingsUseCase) Update(ctx context.Context, in dto.SettingsRequest) (*dto.SettingsResponse, error) {
	s := &entity.StoreSettings{
		StoreName: strings.TrimSpace(in.StoreName),
		Address:   strings.TrimSpace(in.Address),
		Phone:     strings.TrimSpace(in.Phone),
		Email:     strings.TrimSpace(in.Email),
		TaxID:     strings.TrimSpace(in.TaxID),
		Notifications: entity.NotificationSettings{
			SalesEmail:     in.Notifications.SalesEmail,
			StockEmail:     in.Notifications.StockEmail,
			CustomerSMS:    in.Notifications.CustomerSMS,
			LowStockAlerts: in.Notifications.LowStockAlerts,
		},
		System: entity.SystemSettings{
			Theme:    in.System.Theme,
			Language: in.System.Language,
			Currency: strings.ToUpper(in.System.Currency),
			Timezone: in.System.Timezone,
		},
		UpdatedAt: time.Now(),
	}
	if err := uc.repo.Save(ctx, s); err != nil {
		return nil, err
	}
	return toSettingsResponse(s), nil
}

func toSettingsResponse(s *entity.StoreSettings) *dto.SettingsResponse {
	return &dto.SettingsResponse{
		StoreName: s.StoreName,
		Address:   s.Address,
		Phone:     s.Phone,
		Email:     s.Email,
		TaxID:     s.TaxID,
		Notifications: dto.NotificationsDTO{
			SalesEmail:     s.Notifications.SalesEmail,
			StockEmail:     s.Notifications.StockEmail,
			CustomerSMS:    s.Notifications.CustomerSMS,
			LowStockAlerts: s.Notifications.LowStockAlerts,
		},
		System: dto.SystemDTO{
			Theme:    s.System.Theme,
			Language: s.System.Language,
			Currency: s.System.Currency,
			Timezone: s.System.Timezone,
		},
		UpdatedAt: s.UpdatedAt,
	}
}
