package ports

import (
	"context"

	"github.com/calmora/portal-system/internal/core/domain"
)

// NavigationTarget is the outcome of a portal resolution or switch: the portal
// entered and the route the client should navigate to.
type NavigationTarget struct {
	Portal domain.Portal
	Route  string
}

// PortalService coordinates portal access checks and portal switching.
type PortalService interface {
	// Available lists the portals the user may enter, in canonical order.
	Available(user *domain.User) []domain.Portal
	// Landing resolves where the user should be sent right now: the
	// remembered last portal if still permitted, otherwise the default-portal
	// chain with its deterministic fallback. ok is false when the user can
	// reach no portal.
	Landing(ctx context.Context, user *domain.User) (NavigationTarget, bool)
	// Switch moves the user to target. Fails with domain.ErrAccessDenied and
	// performs no state mutation when the user lacks access.
	Switch(ctx context.Context, user *domain.User, target domain.Portal) (NavigationTarget, error)
}
