package handler

import "github.com/calmora/portal-system/internal/core/domain"

type portalPermissionsRequest struct {
	Internal    bool `json:"internal"`
	Patient     bool `json:"patient"`
	Sedationist bool `json:"sedationist"`
	Clinic      bool `json:"clinic"`
}

func (r portalPermissionsRequest) toDomain() domain.PortalPermissions {
	return domain.PortalPermissions{
		Internal:    r.Internal,
		Patient:     r.Patient,
		Sedationist: r.Sedationist,
		Clinic:      r.Clinic,
	}
}

type createUserRequest struct {
	Email         string                   `json:"email"          validate:"required,email"`
	FirstName     string                   `json:"first_name"     validate:"required"`
	LastName      string                   `json:"last_name"      validate:"required"`
	Password      string                   `json:"password"       validate:"required,min=8"`
	Role          string                   `json:"role"           validate:"required,oneof=admin staff sedationist patient"`
	Permissions   portalPermissionsRequest `json:"permissions"`
	DefaultPortal string                   `json:"default_portal" validate:"required,oneof=internal patient sedationist clinic"`
}

type updateUserRequest struct {
	FirstName     string                   `json:"first_name"     validate:"required"`
	LastName      string                   `json:"last_name"      validate:"required"`
	Password      string                   `json:"password"       validate:"omitempty,min=8"`
	Role          string                   `json:"role"           validate:"required,oneof=admin staff sedationist patient"`
	Permissions   portalPermissionsRequest `json:"permissions"`
	DefaultPortal string                   `json:"default_portal" validate:"required,oneof=internal patient sedationist clinic"`
}

type listUsersResponse struct {
	Items []*domain.User `json:"items"`
	pageMeta
}
