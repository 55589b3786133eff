package handler

import "github.com/calmora/portal-system/internal/core/domain"

type createSedationistRequest struct {
	FirstName     string `json:"first_name"     validate:"required"`
	LastName      string `json:"last_name"      validate:"required"`
	Email         string `json:"email"          validate:"required,email"`
	Phone         string `json:"phone"          validate:"required"`
	LicenseNumber string `json:"license_number" validate:"required"`
	Specialty     string `json:"specialty"`
}

type updateSedationistRequest struct {
	FirstName string `json:"first_name" validate:"required"`
	LastName  string `json:"last_name"  validate:"required"`
	Email     string `json:"email"      validate:"required,email"`
	Phone     string `json:"phone"      validate:"required"`
	Specialty string `json:"specialty"`
}

type listSedationistsResponse struct {
	Items []*domain.Sedationist `json:"items"`
	pageMeta
}
