package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/calmora/portal-system/internal/core/domain"
	"github.com/calmora/portal-system/internal/core/ports"
)

type stubPortalService struct {
	available []domain.Portal
	landing   ports.NavigationTarget
	landingOK bool
	target    ports.NavigationTarget
	switchErr error
}

func (s *stubPortalService) Available(_ *domain.User) []domain.Portal {
	return s.available
}

func (s *stubPortalService) Landing(_ context.Context, _ *domain.User) (ports.NavigationTarget, bool) {
	return s.landing, s.landingOK
}

func (s *stubPortalService) Switch(_ context.Context, _ *domain.User, _ domain.Portal) (ports.NavigationTarget, error) {
	if s.switchErr != nil {
		return ports.NavigationTarget{}, s.switchErr
	}
	return s.target, nil
}

func portalContext(e *echo.Echo, req *http.Request) (*httptest.ResponseRecorder, echo.Context) {
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set("token", "tok123")
	return rec, c
}

func TestPortalHandler_List(t *testing.T) {
	portals := &stubPortalService{
		available: []domain.Portal{domain.PortalInternal, domain.PortalClinic},
		landing:   ports.NavigationTarget{Portal: domain.PortalInternal, Route: "/internal/dashboard"},
		landingOK: true,
	}
	h := NewPortalHandler(&stubAuthService{user: demoUser()}, portals)

	e := newEcho()
	rec, c := portalContext(e, httptest.NewRequest(http.MethodGet, "/v1/portals", nil))

	if err := h.List(c); err != nil {
		t.Fatalf("list failed: %v", err)
	}
	var resp portalsResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode failed: %v", err)
	}
	if len(resp.Available) != 2 {
		t.Fatalf("expected 2 portals, got %v", resp.Available)
	}
	if resp.Landing.Route != "/internal/dashboard" {
		t.Fatalf("unexpected landing: %+v", resp.Landing)
	}
}

func TestPortalHandler_List_NoPortals(t *testing.T) {
	portals := &stubPortalService{
		available: nil,
		landing:   ports.NavigationTarget{Route: domain.RouteAccessDenied},
		landingOK: false,
	}
	h := NewPortalHandler(&stubAuthService{user: demoUser()}, portals)

	e := newEcho()
	rec, c := portalContext(e, httptest.NewRequest(http.MethodGet, "/v1/portals", nil))

	if err := h.List(c); err != nil {
		t.Fatalf("list failed: %v", err)
	}
	var resp portalsResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode failed: %v", err)
	}
	if resp.Landing.Route != domain.RouteAccessDenied {
		t.Fatalf("expected access denied route, got %+v", resp.Landing)
	}
	if resp.Landing.Portal != "" {
		t.Fatalf("expected empty landing portal, got %s", resp.Landing.Portal)
	}
}

func TestPortalHandler_Switch(t *testing.T) {
	portals := &stubPortalService{
		target: ports.NavigationTarget{Portal: domain.PortalClinic, Route: "/clinic/overview"},
	}
	h := NewPortalHandler(&stubAuthService{user: demoUser()}, portals)

	e := newEcho()
	rec, c := portalContext(e, jsonRequest(http.MethodPost, "/v1/portals/switch", `{"portal":"clinic"}`))

	if err := h.Switch(c); err != nil {
		t.Fatalf("switch failed: %v", err)
	}
	var resp navigationResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode failed: %v", err)
	}
	if resp.Portal != "clinic" || resp.Route != "/clinic/overview" {
		t.Fatalf("unexpected navigation: %+v", resp)
	}
}

func TestPortalHandler_Switch_Denied(t *testing.T) {
	portals := &stubPortalService{switchErr: domain.ErrAccessDenied}
	h := NewPortalHandler(&stubAuthService{user: demoUser()}, portals)

	e := newEcho()
	_, c := portalContext(e, jsonRequest(http.MethodPost, "/v1/portals/switch", `{"portal":"sedationist"}`))

	if err := h.Switch(c); err != domain.ErrAccessDenied {
		t.Fatalf("expected ErrAccessDenied to propagate, got %v", err)
	}
}

func TestPortalHandler_Switch_RejectsUnknownPortal(t *testing.T) {
	// The oneof validation fails before the service is consulted.
	h := NewPortalHandler(&stubAuthService{user: demoUser()}, &stubPortalService{})

	e := newEcho()
	_, c := portalContext(e, jsonRequest(http.MethodPost, "/v1/portals/switch", `{"portal":"billing"}`))

	err := h.Switch(c)
	httpErr, ok := err.(*echo.HTTPError)
	if !ok || httpErr.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %v", err)
	}
}
