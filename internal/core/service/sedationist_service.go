package service

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"

	"github.com/calmora/portal-system/internal/core/domain"
	"github.com/calmora/portal-system/internal/core/ports"
)

// SedationistService implements sedationist administration use-cases.
type SedationistService struct {
	repo ports.SedationistRepository
	log  zerolog.Logger
}

func NewSedationistService(repo ports.SedationistRepository, log zerolog.Logger) *SedationistService {
	return &SedationistService{repo: repo, log: log}
}

func (s *SedationistService) CreateSedationist(ctx context.Context, input ports.CreateSedationistInput) (*domain.Sedationist, error) {
	// Fast duplicate check for a clear error; the unique license index still
	// guards against races.
	if _, err := s.repo.FindByLicense(ctx, input.LicenseNumber); err == nil {
		return nil, domain.ErrSedationistExists
	} else if !errors.Is(err, domain.ErrSedationistNotFound) {
		return nil, err
	}

	now := time.Now().UTC()
	sedationist := &domain.Sedationist{
		FirstName:     input.FirstName,
		LastName:      input.LastName,
		Email:         input.Email,
		Phone:         input.Phone,
		LicenseNumber: input.LicenseNumber,
		Specialty:     input.Specialty,
		Active:        true,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	created, err := s.repo.Create(ctx, sedationist)
	if err != nil {
		s.log.Error().Err(err).Str("license_number", input.LicenseNumber).Msg("failed to create sedationist")
		return nil, err
	}

	s.log.Info().Str("sedationist_id", created.ID).Str("license_number", created.LicenseNumber).Msg("sedationist created")
	return created, nil
}

func (s *SedationistService) GetSedationist(ctx context.Context, id string) (*domain.Sedationist, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *SedationistService) UpdateSedationist(ctx context.Context, id string, input ports.UpdateSedationistInput) (*domain.Sedationist, error) {
	sedationist, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	sedationist.FirstName = input.FirstName
	sedationist.LastName = input.LastName
	sedationist.Email = input.Email
	sedationist.Phone = input.Phone
	sedationist.Specialty = input.Specialty
	sedationist.UpdatedAt = time.Now().UTC()

	updated, err := s.repo.Update(ctx, sedationist)
	if err != nil {
		s.log.Error().Err(err).Str("sedationist_id", id).Msg("failed to update sedationist")
		return nil, err
	}
	return updated, nil
}

func (s *SedationistService) ListSedationists(ctx context.Context, input ports.ListSedationistsInput) (*ports.ListSedationistsResult, error) {
	page, limit := normalizePage(input.Page, input.Limit)

	items, total, err := s.repo.List(ctx, ports.ListSedationistsFilter{
		Search:    input.Search,
		Specialty: input.Specialty,
		Active:    input.Active,
		Page:      page,
		Limit:     limit,
	})
	if err != nil {
		return nil, err
	}

	return &ports.ListSedationistsResult{
		Items:      items,
		Total:      total,
		Page:       page,
		Limit:      limit,
		TotalPages: totalPages(total, limit),
	}, nil
}

func (s *SedationistService) DeactivateSedationist(ctx context.Context, id string) error {
	if err := s.repo.SetActive(ctx, id, false); err != nil {
		return err
	}
	s.log.Info().Str("sedationist_id", id).Msg("sedationist deactivated")
	return nil
}
