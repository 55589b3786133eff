package ports

import (
	"context"
	"time"

	"github.com/calmora/portal-system/internal/core/domain"
)

// CreatePatientInput carries all data needed to register a new patient.
type CreatePatientInput struct {
	FirstName           string
	LastName            string
	Email               string
	Phone               string
	DateOfBirth         time.Time
	MedicalRecordNumber string
	ClinicName          string
}

// UpdatePatientInput carries the mutable patient fields.
type UpdatePatientInput struct {
	FirstName  string
	LastName   string
	Email      string
	Phone      string
	ClinicName string
}

// ListPatientsInput carries all parameters for the patient list endpoint.
type ListPatientsInput struct {
	Search     string
	ClinicName string
	Active     *bool
	Page       int
	Limit      int
}

// ListPatientsResult is returned by ListPatients.
type ListPatientsResult struct {
	Items      []*domain.Patient
	Total      int64
	Page       int
	Limit      int
	TotalPages int
}

// PatientService defines use-case operations for patient administration.
type PatientService interface {
	CreatePatient(ctx context.Context, input CreatePatientInput) (*domain.Patient, error)
	GetPatient(ctx context.Context, id string) (*domain.Patient, error)
	UpdatePatient(ctx context.Context, id string, input UpdatePatientInput) (*domain.Patient, error)
	ListPatients(ctx context.Context, input ListPatientsInput) (*ListPatientsResult, error)
	// DeactivatePatient marks the patient inactive. Idempotent.
	DeactivatePatient(ctx context.Context, id string) error
}
