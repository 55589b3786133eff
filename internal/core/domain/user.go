package domain

import "time"

const (
	RoleAdmin       = "admin"
	RoleStaff       = "staff"
	RoleSedationist = "sedationist"
	RolePatient     = "patient"
)

// ValidRole reports whether role is one of the closed role set.
func ValidRole(role string) bool {
	switch role {
	case RoleAdmin, RoleStaff, RoleSedationist, RolePatient:
		return true
	}
	return false
}

// User models an authenticated actor in the system.
type User struct {
	ID            string            `json:"id"`
	Email         string            `json:"email"`
	FirstName     string            `json:"first_name"`
	LastName      string            `json:"last_name"`
	PasswordHash  string            `json:"-"`
	Role          string            `json:"role"`
	Permissions   PortalPermissions `json:"permissions"`
	DefaultPortal Portal            `json:"default_portal"`
	Active        bool              `json:"active"`
	CreatedAt     time.Time         `json:"created_at"`
	UpdatedAt     time.Time         `json:"updated_at"`
}

// IsActive reports whether the user account is enabled.
func (u *User) IsActive() bool {
	return u.Active
}

// HasPortalAccess returns the user's permission flag for p.
func (u *User) HasPortalAccess(p Portal) bool {
	return u.Permissions.Allows(p)
}
