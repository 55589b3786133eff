package ports

import (
	"context"

	"github.com/calmora/portal-system/internal/core/domain"
)

// ListPatientsFilter carries query parameters for listing patients.
type ListPatientsFilter struct {
	Search     string // optional: partial match on name, email or MRN
	ClinicName string // optional: filter by clinic
	Active     *bool  // optional: filter by active flag
	Page       int    // 1-based
	Limit      int    // max rows per page (capped at 100 by service)
}

// PatientRepository defines persistence operations for patients.
type PatientRepository interface {
	Create(ctx context.Context, p *domain.Patient) (*domain.Patient, error)
	FindByID(ctx context.Context, id string) (*domain.Patient, error)
	FindByMRN(ctx context.Context, mrn string) (*domain.Patient, error)
	Update(ctx context.Context, p *domain.Patient) (*domain.Patient, error)
	List(ctx context.Context, filter ListPatientsFilter) ([]*domain.Patient, int64, error)
	SetActive(ctx context.Context, id string, active bool) error
}
