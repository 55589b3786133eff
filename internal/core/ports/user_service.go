package ports

import (
	"context"

	"github.com/calmora/portal-system/internal/core/domain"
)

// CreateUserInput carries all data needed to create a user account.
type CreateUserInput struct {
	Email         string
	FirstName     string
	LastName      string
	Password      string
	Role          string
	Permissions   domain.PortalPermissions
	DefaultPortal domain.Portal
}

// UpdateUserInput carries the mutable account fields. Password is optional;
// empty means keep the current hash.
type UpdateUserInput struct {
	FirstName     string
	LastName      string
	Password      string
	Role          string
	Permissions   domain.PortalPermissions
	DefaultPortal domain.Portal
}

// ListUsersInput carries all parameters for the user list endpoint.
type ListUsersInput struct {
	Role   string
	Search string
	Page   int
	Limit  int
}

// ListUsersResult is returned by ListUsers.
type ListUsersResult struct {
	Items      []*domain.User
	Total      int64
	Page       int
	Limit      int
	TotalPages int
}

// UserService defines the admin use-cases for account management.
type UserService interface {
	CreateUser(ctx context.Context, input CreateUserInput) (*domain.User, error)
	GetUser(ctx context.Context, id string) (*domain.User, error)
	UpdateUser(ctx context.Context, id string, input UpdateUserInput) (*domain.User, error)
	ListUsers(ctx context.Context, input ListUsersInput) (*ListUsersResult, error)
	// DeactivateUser marks the account inactive. Idempotent. The user's
	// session dies on its next use because CurrentUser re-checks the flag.
	DeactivateUser(ctx context.Context, id string) error
}
