package ports

import (
	"context"

	"github.com/calmora/portal-system/internal/core/domain"
)

// CreateSedationistInput carries all data needed to register a new sedationist.
type CreateSedationistInput struct {
	FirstName     string
	LastName      string
	Email         string
	Phone         string
	LicenseNumber string
	Specialty     string
}

// UpdateSedationistInput carries the mutable sedationist fields.
type UpdateSedationistInput struct {
	FirstName string
	LastName  string
	Email     string
	Phone     string
	Specialty string
}

// ListSedationistsInput carries all parameters for the sedationist list endpoint.
type ListSedationistsInput struct {
	Search    string
	Specialty string
	Active    *bool
	Page      int
	Limit     int
}

// ListSedationistsResult is returned by ListSedationists.
type ListSedationistsResult struct {
	Items      []*domain.Sedationist
	Total      int64
	Page       int
	Limit      int
	TotalPages int
}

// SedationistService defines use-case operations for sedationist administration.
type SedationistService interface {
	CreateSedationist(ctx context.Context, input CreateSedationistInput) (*domain.Sedationist, error)
	GetSedationist(ctx context.Context, id string) (*domain.Sedationist, error)
	UpdateSedationist(ctx context.Context, id string, input UpdateSedationistInput) (*domain.Sedationist, error)
	ListSedationists(ctx context.Context, input ListSedationistsInput) (*ListSedationistsResult, error)
	// DeactivateSedationist marks the sedationist inactive. Idempotent.
	DeactivateSedationist(ctx context.Context, id string) error
}
