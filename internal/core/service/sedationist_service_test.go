package service

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/rs/zerolog"

	"github.com/calmora/portal-system/internal/core/domain"
	"github.com/calmora/portal-system/internal/core/ports"
)

type stubSedationistRepo struct {
	byID      map[string]*domain.Sedationist
	byLicense map[string]*domain.Sedationist
	creates   int
	next      int
}

func newStubSedationistRepo() *stubSedationistRepo {
	return &stubSedationistRepo{
		byID:      make(map[string]*domain.Sedationist),
		byLicense: make(map[string]*domain.Sedationist),
	}
}

func cloneSedationist(s *domain.Sedationist) *domain.Sedationist {
	if s == nil {
		return nil
	}
	clone := *s
	return &clone
}

func (r *stubSedationistRepo) Create(_ context.Context, s *domain.Sedationist) (*domain.Sedationist, error) {
	r.creates++
	if _, exists := r.byLicense[s.LicenseNumber]; exists {
		return nil, domain.ErrSedationistExists
	}
	copy := cloneSedationist(s)
	r.next++
	copy.ID = fmt.Sprintf("s%d", r.next)
	r.byID[copy.ID] = cloneSedationist(copy)
	r.byLicense[copy.LicenseNumber] = cloneSedationist(copy)
	return cloneSedationist(copy), nil
}

func (r *stubSedationistRepo) FindByID(_ context.Context, id string) (*domain.Sedationist, error) {
	if s, ok := r.byID[id]; ok {
		return cloneSedationist(s), nil
	}
	return nil, domain.ErrSedationistNotFound
}

func (r *stubSedationistRepo) FindByLicense(_ context.Context, licenseNumber string) (*domain.Sedationist, error) {
	if s, ok := r.byLicense[licenseNumber]; ok {
		return cloneSedationist(s), nil
	}
	return nil, domain.ErrSedationistNotFound
}

func (r *stubSedationistRepo) Update(_ context.Context, s *domain.Sedationist) (*domain.Sedationist, error) {
	if _, ok := r.byID[s.ID]; !ok {
		return nil, domain.ErrSedationistNotFound
	}
	r.byID[s.ID] = cloneSedationist(s)
	r.byLicense[s.LicenseNumber] = cloneSedationist(s)
	return cloneSedationist(s), nil
}

func (r *stubSedationistRepo) List(_ context.Context, filter ports.ListSedationistsFilter) ([]*domain.Sedationist, int64, error) {
	var sedationists []*domain.Sedationist
	for _, s := range r.byID {
		if filter.Specialty != "" && s.Specialty != filter.Specialty {
			continue
		}
		if filter.Active != nil && s.Active != *filter.Active {
			continue
		}
		sedationists = append(sedationists, cloneSedationist(s))
	}
	return sedationists, int64(len(sedationists)), nil
}

func (r *stubSedationistRepo) SetActive(_ context.Context, id string, active bool) error {
	s, ok := r.byID[id]
	if !ok {
		return domain.ErrSedationistNotFound
	}
	s.Active = active
	r.byLicense[s.LicenseNumber].Active = active
	return nil
}

func newTestSedationistService(repo *stubSedationistRepo) *SedationistService {
	return NewSedationistService(repo, zerolog.Nop())
}

func sedationistInput(license string) ports.CreateSedationistInput {
	return ports.CreateSedationistInput{
		FirstName:     "Lena",
		LastName:      "Reyes",
		Email:         "lena@example.com",
		Phone:         "555-0102",
		LicenseNumber: license,
		Specialty:     "pediatric",
	}
}

func TestSedationistService_CreateSedationist(t *testing.T) {
	svc := newTestSedationistService(newStubSedationistRepo())

	created, err := svc.CreateSedationist(context.Background(), sedationistInput("LIC-100"))
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if created.ID == "" {
		t.Fatalf("expected assigned id")
	}
	if !created.Active {
		t.Fatalf("new sedationists must start active")
	}
	if created.CreatedAt.IsZero() || created.UpdatedAt.IsZero() {
		t.Fatalf("timestamps not set")
	}
}

func TestSedationistService_CreateSedationist_DuplicateLicense(t *testing.T) {
	repo := newStubSedationistRepo()
	svc := newTestSedationistService(repo)

	if _, err := svc.CreateSedationist(context.Background(), sedationistInput("LIC-100")); err != nil {
		t.Fatalf("first create failed: %v", err)
	}
	if _, err := svc.CreateSedationist(context.Background(), sedationistInput("LIC-100")); !errors.Is(err, domain.ErrSedationistExists) {
		t.Fatalf("expected ErrSedationistExists, got %v", err)
	}
	// The license lookup rejects the duplicate before an insert is attempted.
	if repo.creates != 1 {
		t.Fatalf("expected 1 insert attempt, got %d", repo.creates)
	}
}

func TestSedationistService_UpdateSedationist(t *testing.T) {
	repo := newStubSedationistRepo()
	svc := newTestSedationistService(repo)
	created, _ := svc.CreateSedationist(context.Background(), sedationistInput("LIC-100"))

	updated, err := svc.UpdateSedationist(context.Background(), created.ID, ports.UpdateSedationistInput{
		FirstName: "Lena Marie",
		LastName:  created.LastName,
		Email:     created.Email,
		Phone:     created.Phone,
		Specialty: "cardiac",
	})
	if err != nil {
		t.Fatalf("update failed: %v", err)
	}
	if updated.FirstName != "Lena Marie" || updated.Specialty != "cardiac" {
		t.Fatalf("update not applied: %+v", updated)
	}
	// The license number is immutable through updates.
	if updated.LicenseNumber != "LIC-100" {
		t.Fatalf("license changed: %s", updated.LicenseNumber)
	}
}

func TestSedationistService_UpdateSedationist_NotFound(t *testing.T) {
	svc := newTestSedationistService(newStubSedationistRepo())

	if _, err := svc.UpdateSedationist(context.Background(), "missing", ports.UpdateSedationistInput{}); !errors.Is(err, domain.ErrSedationistNotFound) {
		t.Fatalf("expected ErrSedationistNotFound, got %v", err)
	}
}

func TestSedationistService_ListSedationists_Filters(t *testing.T) {
	repo := newStubSedationistRepo()
	svc := newTestSedationistService(repo)

	a, _ := svc.CreateSedationist(context.Background(), sedationistInput("LIC-100"))
	other := sedationistInput("LIC-200")
	other.Specialty = "cardiac"
	svc.CreateSedationist(context.Background(), other)
	svc.DeactivateSedationist(context.Background(), a.ID)

	result, err := svc.ListSedationists(context.Background(), ports.ListSedationistsInput{Specialty: "pediatric"})
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if result.Total != 1 {
		t.Fatalf("expected 1 sedationist for specialty, got %d", result.Total)
	}

	active := true
	result, err = svc.ListSedationists(context.Background(), ports.ListSedationistsInput{Active: &active})
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if result.Total != 1 || result.Items[0].LicenseNumber != "LIC-200" {
		t.Fatalf("expected only the active sedationist, got %d", result.Total)
	}
}

func TestSedationistService_ListSedationists_PaginationNormalized(t *testing.T) {
	svc := newTestSedationistService(newStubSedationistRepo())

	result, err := svc.ListSedationists(context.Background(), ports.ListSedationistsInput{Page: -1, Limit: 500})
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if result.Page != 1 {
		t.Fatalf("expected page clamped to 1, got %d", result.Page)
	}
	if result.Limit != maxPageLimit {
		t.Fatalf("expected limit capped at %d, got %d", maxPageLimit, result.Limit)
	}
	if result.TotalPages != 0 {
		t.Fatalf("empty list should have 0 pages, got %d", result.TotalPages)
	}
}

func TestSedationistService_DeactivateSedationist(t *testing.T) {
	repo := newStubSedationistRepo()
	svc := newTestSedationistService(repo)
	created, _ := svc.CreateSedationist(context.Background(), sedationistInput("LIC-100"))

	if err := svc.DeactivateSedationist(context.Background(), created.ID); err != nil {
		t.Fatalf("deactivate failed: %v", err)
	}
	stored, _ := repo.FindByID(context.Background(), created.ID)
	if stored.Active {
		t.Fatalf("sedationist still active")
	}

	// Second call is a no-op, not an error.
	if err := svc.DeactivateSedationist(context.Background(), created.ID); err != nil {
		t.Fatalf("repeat deactivate failed: %v", err)
	}

	if err := svc.DeactivateSedationist(context.Background(), "missing"); !errors.Is(err, domain.ErrSedationistNotFound) {
		t.Fatalf("expected ErrSedationistNotFound, got %v", err)
	}
}
