package service

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"

	"github.com/calmora/portal-system/internal/core/domain"
)

// recordingStateStore tracks every mutation so tests can prove the
// check-then-act ordering.
type recordingStateStore struct {
	values  map[string]domain.Portal
	sets    int
	removes int
}

func newRecordingStateStore() *recordingStateStore {
	return &recordingStateStore{values: make(map[string]domain.Portal)}
}

func (s *recordingStateStore) Get(_ context.Context, userID string) (domain.Portal, error) {
	return s.values[userID], nil
}

func (s *recordingStateStore) Set(_ context.Context, userID string, portal domain.Portal) error {
	s.sets++
	s.values[userID] = portal
	return nil
}

func (s *recordingStateStore) Remove(_ context.Context, userID string) error {
	s.removes++
	delete(s.values, userID)
	return nil
}

func portalUser(perms domain.PortalPermissions, def domain.Portal) *domain.User {
	return &domain.User{
		ID:            "u1",
		Email:         "u1@example.com",
		Role:          domain.RoleStaff,
		Permissions:   perms,
		DefaultPortal: def,
		Active:        true,
	}
}

func TestPortalService_Switch_Allowed(t *testing.T) {
	state := newRecordingStateStore()
	svc := NewPortalService(state, zerolog.Nop())
	u := portalUser(domain.PortalPermissions{Internal: true, Clinic: true}, domain.PortalInternal)

	target, err := svc.Switch(context.Background(), u, domain.PortalClinic)
	if err != nil {
		t.Fatalf("switch failed: %v", err)
	}
	if target.Portal != domain.PortalClinic {
		t.Fatalf("expected clinic, got %s", target.Portal)
	}
	if target.Route != "/clinic/overview" {
		t.Fatalf("unexpected route: %s", target.Route)
	}
	if state.values["u1"] != domain.PortalClinic {
		t.Fatalf("current portal not remembered")
	}
}

func TestPortalService_Switch_DeniedMutatesNothing(t *testing.T) {
	state := newRecordingStateStore()
	svc := NewPortalService(state, zerolog.Nop())
	u := portalUser(domain.PortalPermissions{Internal: true}, domain.PortalInternal)

	_, err := svc.Switch(context.Background(), u, domain.PortalSedationist)
	if !errors.Is(err, domain.ErrAccessDenied) {
		t.Fatalf("expected ErrAccessDenied, got %v", err)
	}
	if state.sets != 0 {
		t.Fatalf("denied switch must not write state")
	}

	// A second identical request is rejected identically.
	if _, err := svc.Switch(context.Background(), u, domain.PortalSedationist); !errors.Is(err, domain.ErrAccessDenied) {
		t.Fatalf("expected ErrAccessDenied, got %v", err)
	}
	if state.sets != 0 {
		t.Fatalf("repeated denial must not write state")
	}
}

func TestPortalService_Switch_UnknownPortal(t *testing.T) {
	state := newRecordingStateStore()
	svc := NewPortalService(state, zerolog.Nop())
	u := portalUser(domain.PortalPermissions{Internal: true}, domain.PortalInternal)

	if _, err := svc.Switch(context.Background(), u, domain.Portal("billing")); !errors.Is(err, domain.ErrInvalidPortal) {
		t.Fatalf("expected ErrInvalidPortal, got %v", err)
	}
	if state.sets != 0 {
		t.Fatalf("invalid portal must not write state")
	}
}

func TestPortalService_Landing_RemembersLastPortal(t *testing.T) {
	state := newRecordingStateStore()
	state.values["u1"] = domain.PortalClinic
	svc := NewPortalService(state, zerolog.Nop())
	u := portalUser(domain.PortalPermissions{Internal: true, Clinic: true}, domain.PortalInternal)

	target, ok := svc.Landing(context.Background(), u)
	if !ok {
		t.Fatalf("expected a landing target")
	}
	if target.Portal != domain.PortalClinic {
		t.Fatalf("expected remembered clinic, got %s", target.Portal)
	}
}

func TestPortalService_Landing_StalePreferenceCleared(t *testing.T) {
	// Clinic access was revoked since the preference was written: the stale
	// value is dropped and the default applies.
	state := newRecordingStateStore()
	state.values["u1"] = domain.PortalClinic
	svc := NewPortalService(state, zerolog.Nop())
	u := portalUser(domain.PortalPermissions{Internal: true}, domain.PortalInternal)

	target, ok := svc.Landing(context.Background(), u)
	if !ok {
		t.Fatalf("expected a landing target")
	}
	if target.Portal != domain.PortalInternal {
		t.Fatalf("expected internal default, got %s", target.Portal)
	}
	if state.removes != 1 {
		t.Fatalf("stale preference should be removed, removes=%d", state.removes)
	}
}

func TestPortalService_Landing_FallbackFromInconsistentDefault(t *testing.T) {
	state := newRecordingStateStore()
	svc := NewPortalService(state, zerolog.Nop())
	u := portalUser(domain.PortalPermissions{Internal: true, Patient: true}, domain.PortalSedationist)

	target, ok := svc.Landing(context.Background(), u)
	if !ok {
		t.Fatalf("expected a landing target")
	}
	if target.Portal != domain.PortalInternal {
		t.Fatalf("expected internal fallback, got %s", target.Portal)
	}
}

func TestPortalService_Landing_NoPortals(t *testing.T) {
	state := newRecordingStateStore()
	svc := NewPortalService(state, zerolog.Nop())
	u := portalUser(domain.PortalPermissions{}, domain.PortalInternal)

	target, ok := svc.Landing(context.Background(), u)
	if ok {
		t.Fatalf("expected no landing target")
	}
	if target.Route != domain.RouteAccessDenied {
		t.Fatalf("expected access denied route, got %s", target.Route)
	}
}

func TestPortalService_Available(t *testing.T) {
	svc := NewPortalService(newRecordingStateStore(), zerolog.Nop())
	u := portalUser(domain.PortalPermissions{Patient: true, Sedationist: true}, domain.PortalPatient)

	got := svc.Available(u)
	if len(got) != 2 || got[0] != domain.PortalPatient || got[1] != domain.PortalSedationist {
		t.Fatalf("unexpected portals: %v", got)
	}
}
