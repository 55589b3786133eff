package handler

import (
	"time"

	"github.com/calmora/portal-system/internal/core/domain"
)

// errorResponse is the standard error envelope returned on all 4xx/5xx responses.
type errorResponse struct {
	Error string `json:"error"`
}

// pageMeta is the pagination block shared by all list responses.
type pageMeta struct {
	Total      int64 `json:"total"`
	Page       int   `json:"page"`
	Limit      int   `json:"limit"`
	TotalPages int   `json:"total_pages"`
}

type createPatientRequest struct {
	FirstName           string    `json:"first_name"            validate:"required"`
	LastName            string    `json:"last_name"             validate:"required"`
	Email               string    `json:"email"                 validate:"required,email"`
	Phone               string    `json:"phone"                 validate:"required"`
	DateOfBirth         time.Time `json:"date_of_birth"         validate:"required"`
	MedicalRecordNumber string    `json:"medical_record_number" validate:"required"`
	ClinicName          string    `json:"clinic_name"           validate:"required"`
}

type updatePatientRequest struct {
	FirstName  string `json:"first_name"  validate:"required"`
	LastName   string `json:"last_name"   validate:"required"`
	Email      string `json:"email"       validate:"required,email"`
	Phone      string `json:"phone"       validate:"required"`
	ClinicName string `json:"clinic_name" validate:"required"`
}

type listPatientsResponse struct {
	Items []*domain.Patient `json:"items"`
	pageMeta
}
