package ports

import (
	"context"

	"github.com/calmora/portal-system/internal/core/domain"
)

// ListUsersFilter carries query parameters for listing users.
type ListUsersFilter struct {
	Role   string // optional: filter by role
	Search string // optional: partial match on name or email
	Page   int    // 1-based
	Limit  int    // max rows per page (capped at 100 by service)
}

// UserRepository defines persistence operations for user accounts.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	FindByID(ctx context.Context, id string) (*domain.User, error)
	Update(ctx context.Context, user *domain.User) (*domain.User, error)
	// List returns a page of users matching filter and the total count.
	List(ctx context.Context, filter ListUsersFilter) ([]*domain.User, int64, error)
	// SetActive flips the active flag. Used for deactivation; records are
	// never hard-deleted.
	SetActive(ctx context.Context, id string, active bool) error
}
