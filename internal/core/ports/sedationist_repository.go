package ports

import (
	"context"

	"github.com/calmora/portal-system/internal/core/domain"
)

// ListSedationistsFilter carries query parameters for listing sedationists.
type ListSedationistsFilter struct {
	Search    string // optional: partial match on name, email or license number
	Specialty string // optional: filter by specialty
	Active    *bool  // optional: filter by active flag
	Page      int    // 1-based
	Limit     int    // max rows per page (capped at 100 by service)
}

// SedationistRepository defines persistence operations for sedationists.
type SedationistRepository interface {
	Create(ctx context.Context, s *domain.Sedationist) (*domain.Sedationist, error)
	FindByID(ctx context.Context, id string) (*domain.Sedationist, error)
	FindByLicense(ctx context.Context, licenseNumber string) (*domain.Sedationist, error)
	Update(ctx context.Context, s *domain.Sedationist) (*domain.Sedationist, error)
	List(ctx context.Context, filter ListSedationistsFilter) ([]*domain.Sedationist, int64, error)
	SetActive(ctx context.Context, id string, active bool) error
}
