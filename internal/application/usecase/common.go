package usecase

import (
	"fmt"
	"strings"
	"time"

	"github.com/jhoicas/PetShop-api/internal/application/dto"
	"github.com/jhoicas/PetShop-api/internal/domain"
)

// normalizePage aplica los límites de paginación: limit 1..100 (20 por defecto), offset >= 0.
func normalizePage(limit, offset int) (int, int) {
	p := dto.PageRequest{Limit: limit, Offset: offset}
	p.DefaultPage()
	return p.Limit, p.Offset
}

// parseOptionalDate interpreta YYYY-MM-DD; vacío devuelve nil.
func parseOptionalDate(field, s string) (*time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}
	t, err := time.ParseInLocation(dto.DateLayout, s, time.Local)
	if err != nil {
		return nil, fmt.Errorf("%w: %s debe tener formato YYYY-MM-DD", domain.ErrInvalidInput, field)
	}
	return &t, nil
}

func formatOptionalDate(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.Format(dto.DateLayout)
}
