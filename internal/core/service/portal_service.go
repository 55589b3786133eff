package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/calmora/portal-system/internal/api/metrics"
	"github.com/calmora/portal-system/internal/core/domain"
	"github.com/calmora/portal-system/internal/core/ports"
)

// PortalStateStore abstracts the remember-last-portal key-value store (Redis).
type PortalStateStore interface {
	// Get returns the user's last portal, or "" when none is remembered.
	Get(ctx context.Context, userID string) (domain.Portal, error)
	Set(ctx context.Context, userID string, portal domain.Portal) error
	Remove(ctx context.Context, userID string) error
}

// PortalService coordinates portal access checks and portal switching.
type PortalService struct {
	state PortalStateStore
	log   zerolog.Logger
}

func NewPortalService(state PortalStateStore, log zerolog.Logger) *PortalService {
	return &PortalService{state: state, log: log}
}

// Available lists the portals the user may enter, in canonical order.
func (s *PortalService) Available(user *domain.User) []domain.Portal {
	return domain.AvailablePortals(user)
}

// Landing resolves where the user should be sent right now. A remembered last
// portal wins while the user still has access to it; otherwise the default
// portal with its deterministic fallback applies.
func (s *PortalService) Landing(ctx context.Context, user *domain.User) (ports.NavigationTarget, bool) {
	last, err := s.state.Get(ctx, user.ID)
	if err != nil {
		s.log.Warn().Err(err).Str("user_id", user.ID).Msg("last portal lookup failed, using default")
	} else if last != "" {
		if domain.CanAccessPortal(user, last) {
			return ports.NavigationTarget{Portal: last, Route: domain.RouteFor(last)}, true
		}
		// Stale preference: access was revoked since it was remembered.
		if err := s.state.Remove(ctx, user.ID); err != nil {
			s.log.Warn().Err(err).Str("user_id", user.ID).Msg("failed to clear stale last portal")
		}
	}

	portal, ok := domain.LandingPortal(user)
	if !ok {
		return ports.NavigationTarget{Route: domain.RouteAccessDenied}, false
	}
	return ports.NavigationTarget{Portal: portal, Route: domain.RouteFor(portal)}, true
}

// Switch moves the user to target. The permission check strictly precedes any
// side effect: a denied request mutates nothing.
func (s *PortalService) Switch(ctx context.Context, user *domain.User, target domain.Portal) (ports.NavigationTarget, error) {
	if !target.Valid() {
		return ports.NavigationTarget{}, domain.ErrInvalidPortal
	}

	if !domain.CanAccessPortal(user, target) {
		metrics.PortalSwitchDeniedTotal.WithLabelValues(string(target)).Inc()
		s.log.Info().
			Str("user_id", user.ID).
			Str("portal", string(target)).
			Msg("portal switch denied")
		return ports.NavigationTarget{}, domain.ErrAccessDenied
	}

	if err := s.state.Set(ctx, user.ID, target); err != nil {
		s.log.Warn().Err(err).Str("user_id", user.ID).Msg("failed to remember portal")
	}
	metrics.PortalSwitchesTotal.WithLabelValues(string(target)).Inc()

	return ports.NavigationTarget{Portal: target, Route: domain.RouteFor(target)}, nil
}
