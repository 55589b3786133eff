package ports

import (
	"context"

	"github.com/calmora/portal-system/internal/core/domain"
)

// LoginResult is returned on successful authentication.
type LoginResult struct {
	Token string
	User  *domain.User
	// LandingPortal is where the user lands after login, with the
	// inconsistent-default fallback already applied. Empty when the user can
	// reach no portal; LandingRoute then points at the access-denied state.
	LandingPortal domain.Portal
	LandingRoute  string
}

// AuthService is the session/auth gateway: it resolves credentials to a user
// and owns the session lifecycle.
type AuthService interface {
	Login(ctx context.Context, email, password string) (*LoginResult, error)
	// CurrentUser resolves the bearer token to the authenticated user, or
	// fails when the token is invalid, the session was logged out, or the
	// account has since been deactivated.
	CurrentUser(ctx context.Context, token string) (*domain.User, error)
	// Logout clears the session. Idempotent: logging out an already-ended
	// session is a no-op, not an error.
	Logout(ctx context.Context, token string) error
}
