package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/calmora/portal-system/internal/core/ports"
)

// PatientHandler handles HTTP requests for patient administration.
type PatientHandler struct {
	service ports.PatientService
}

func NewPatientHandler(service ports.PatientService) *PatientHandler {
	return &PatientHandler{service: service}
}

// Create handles POST /v1/patients.
//
// @Summary      Register a new patient
// @Tags         patients
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createPatientRequest  true  "Patient details"
// @Success      201   {object}  domain.Patient
// @Failure      400   {object}  errorResponse
// @Failure      409   {object}  errorResponse
// @Router       /v1/patients [post]
func (h *PatientHandler) Create(c echo.Context) error {
	var req createPatientRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	patient, err := h.service.CreatePatient(c.Request().Context(), ports.CreatePatientInput{
		FirstName:           req.FirstName,
		LastName:            req.LastName,
		Email:               req.Email,
		Phone:               req.Phone,
		DateOfBirth:         req.DateOfBirth,
		MedicalRecordNumber: req.MedicalRecordNumber,
		ClinicName:          req.ClinicName,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, patient)
}

// Get handles GET /v1/patients/:id.
//
// @Summary      Get a patient
// @Tags         patients
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Patient id"
// @Success      200  {object}  domain.Patient
// @Failure      404  {object}  errorResponse
// @Router       /v1/patients/{id} [get]
func (h *PatientHandler) Get(c echo.Context) error {
	patient, err := h.service.GetPatient(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, patient)
}

// Update handles PUT /v1/patients/:id.
//
// @Summary      Update a patient
// @Tags         patients
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string                true  "Patient id"
// @Param        body  body      updatePatientRequest  true  "Patient details"
// @Success      200   {object}  domain.Patient
// @Failure      400   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /v1/patients/{id} [put]
func (h *PatientHandler) Update(c echo.Context) error {
	var req updatePatientRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	patient, err := h.service.UpdatePatient(c.Request().Context(), c.Param("id"), ports.UpdatePatientInput{
		FirstName:  req.FirstName,
		LastName:   req.LastName,
		Email:      req.Email,
		Phone:      req.Phone,
		ClinicName: req.ClinicName,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, patient)
}

// List handles GET /v1/patients.
//
// @Summary      List patients
// @Tags         patients
// @Produce      json
// @Security     BearerAuth
// @Param        search  query     string  false  "Partial match on name, email or MRN"
// @Param        clinic  query     string  false  "Filter by clinic name"
// @Param        active  query     bool    false  "Filter by active flag"
// @Param        page    query     int     false  "1-based page"
// @Param        limit   query     int     false  "Rows per page (max 100)"
// @Success      200     {object}  listPatientsResponse
// @Router       /v1/patients [get]
func (h *PatientHandler) List(c echo.Context) error {
	input := ports.ListPatientsInput{
		Search:     c.QueryParam("search"),
		ClinicName: c.QueryParam("clinic"),
		Page:       queryInt(c, "page"),
		Limit:      queryInt(c, "limit"),
	}
	if raw := c.QueryParam("active"); raw != "" {
		active, err := strconv.ParseBool(raw)
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "active must be a boolean")
		}
		input.Active = &active
	}

	result, err := h.service.ListPatients(c.Request().Context(), input)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, listPatientsResponse{
		Items: result.Items,
		pageMeta: pageMeta{
			Total:      result.Total,
			Page:       result.Page,
			Limit:      result.Limit,
			TotalPages: result.TotalPages,
		},
	})
}

// Deactivate handles DELETE /v1/patients/:id. Records are never hard-deleted.
//
// @Summary      Deactivate a patient
// @Tags         patients
// @Security     BearerAuth
// @Param        id  path  string  true  "Patient id"
// @Success      204  "patient deactivated"
// @Failure      404  {object}  errorResponse
// @Router       /v1/patients/{id} [delete]
func (h *PatientHandler) Deactivate(c echo.Context) error {
	if err := h.service.DeactivatePatient(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

// queryInt parses an integer query parameter, returning 0 when absent or invalid.
func queryInt(c echo.Context, name string) int {
	n, err := strconv.Atoi(c.QueryParam(name))
	if err != nil {
		return 0
	}
	return n
}
