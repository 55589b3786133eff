package service

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"

	"github.com/calmora/portal-system/internal/core/domain"
	"github.com/calmora/portal-system/internal/core/ports"
)

const (
	defaultPageLimit = 20
	maxPageLimit     = 100
)

// normalizePage clamps pagination parameters to sane values.
func normalizePage(page, limit int) (int, int) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = defaultPageLimit
	}
	if limit > maxPageLimit {
		limit = maxPageLimit
	}
	return page, limit
}

// totalPages computes the page count for a list result.
func totalPages(total int64, limit int) int {
	if total == 0 {
		return 0
	}
	return int((total + int64(limit) - 1) / int64(limit))
}

// PatientService implements patient administration use-cases.
type PatientService struct {
	repo ports.PatientRepository
	log  zerolog.Logger
}

func NewPatientService(repo ports.PatientRepository, log zerolog.Logger) *PatientService {
	return &PatientService{repo: repo, log: log}
}

func (s *PatientService) CreatePatient(ctx context.Context, input ports.CreatePatientInput) (*domain.Patient, error) {
	// Fast duplicate check for a clear error; the unique MRN index still
	// guards against races.
	if _, err := s.repo.FindByMRN(ctx, input.MedicalRecordNumber); err == nil {
		return nil, domain.ErrPatientExists
	} else if !errors.Is(err, domain.ErrPatientNotFound) {
		return nil, err
	}

	now := time.Now().UTC()
	patient := &domain.Patient{
		FirstName:           input.FirstName,
		LastName:            input.LastName,
		Email:               input.Email,
		Phone:               input.Phone,
		DateOfBirth:         input.DateOfBirth,
		MedicalRecordNumber: input.MedicalRecordNumber,
		ClinicName:          input.ClinicName,
		Active:              true,
		CreatedAt:           now,
		UpdatedAt:           now,
	}

	created, err := s.repo.Create(ctx, patient)
	if err != nil {
		s.log.Error().Err(err).Str("mrn", input.MedicalRecordNumber).Msg("failed to create patient")
		return nil, err
	}

	s.log.Info().Str("patient_id", created.ID).Str("mrn", created.MedicalRecordNumber).Msg("patient created")
	return created, nil
}

func (s *PatientService) GetPatient(ctx context.Context, id string) (*domain.Patient, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *PatientService) UpdatePatient(ctx context.Context, id string, input ports.UpdatePatientInput) (*domain.Patient, error) {
	patient, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	patient.FirstName = input.FirstName
	patient.LastName = input.LastName
	patient.Email = input.Email
	patient.Phone = input.Phone
	patient.ClinicName = input.ClinicName
	patient.UpdatedAt = time.Now().UTC()

	updated, err := s.repo.Update(ctx, patient)
	if err != nil {
		s.log.Error().Err(err).Str("patient_id", id).Msg("failed to update patient")
		return nil, err
	}
	return updated, nil
}

func (s *PatientService) ListPatients(ctx context.Context, input ports.ListPatientsInput) (*ports.ListPatientsResult, error) {
	page, limit := normalizePage(input.Page, input.Limit)

	items, total, err := s.repo.List(ctx, ports.ListPatientsFilter{
		Search:     input.Search,
		ClinicName: input.ClinicName,
		Active:     input.Active,
		Page:       page,
		Limit:      limit,
	})
	if err != nil {
		return nil, err
	}

	return &ports.ListPatientsResult{
		Items:      items,
		Total:      total,
		Page:       page,
		Limit:      limit,
		TotalPages: totalPages(total, limit),
	}, nil
}

func (s *PatientService) DeactivatePatient(ctx context.Context, id string) error {
	if err := s.repo.SetActive(ctx, id, false); err != nil {
		return err
	}
	s.log.Info().Str("patient_id", id).Msg("patient deactivated")
	return nil
}
