package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/calmora/portal-system/internal/core/ports"
)

// SedationistHandler handles HTTP requests for sedationist administration.
type SedationistHandler struct {
	service ports.SedationistService
}

func NewSedationistHandler(service ports.SedationistService) *SedationistHandler {
	return &SedationistHandler{service: service}
}

// Create handles POST /v1/sedationists.
//
// @Summary      Register a new sedationist
// @Tags         sedationists
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createSedationistRequest  true  "Sedationist details"
// @Success      201   {object}  domain.Sedationist
// @Failure      400   {object}  errorResponse
// @Failure      409   {object}  errorResponse
// @Router       /v1/sedationists [post]
func (h *SedationistHandler) Create(c echo.Context) error {
	var req createSedationistRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	sedationist, err := h.service.CreateSedationist(c.Request().Context(), ports.CreateSedationistInput{
		FirstName:     req.FirstName,
		LastName:      req.LastName,
		Email:         req.Email,
		Phone:         req.Phone,
		LicenseNumber: req.LicenseNumber,
		Specialty:     req.Specialty,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, sedationist)
}

// Get handles GET /v1/sedationists/:id.
//
// @Summary      Get a sedationist
// @Tags         sedationists
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Sedationist id"
// @Success      200  {object}  domain.Sedationist
// @Failure      404  {object}  errorResponse
// @Router       /v1/sedationists/{id} [get]
func (h *SedationistHandler) Get(c echo.Context) error {
	sedationist, err := h.service.GetSedationist(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, sedationist)
}

// Update handles PUT /v1/sedationists/:id.
//
// @Summary      Update a sedationist
// @Tags         sedationists
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string                    true  "Sedationist id"
// @Param        body  body      updateSedationistRequest  true  "Sedationist details"
// @Success      200   {object}  domain.Sedationist
// @Failure      400   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /v1/sedationists/{id} [put]
func (h *SedationistHandler) Update(c echo.Context) error {
	var req updateSedationistRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	sedationist, err := h.service.UpdateSedationist(c.Request().Context(), c.Param("id"), ports.UpdateSedationistInput{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		Phone:     req.Phone,
		Specialty: req.Specialty,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, sedationist)
}

// List handles GET /v1/sedationists.
//
// @Summary      List sedationists
// @Tags         sedationists
// @Produce      json
// @Security     BearerAuth
// @Param        search     query     string  false  "Partial match on name, email or license number"
// @Param        specialty  query     string  false  "Filter by specialty"
// @Param        active     query     bool    false  "Filter by active flag"
// @Param        page       query     int     false  "1-based page"
// @Param        limit      query     int     false  "Rows per page (max 100)"
// @Success      200        {object}  listSedationistsResponse
// @Router       /v1/sedationists [get]
func (h *SedationistHandler) List(c echo.Context) error {
	input := ports.ListSedationistsInput{
		Search:    c.QueryParam("search"),
		Specialty: c.QueryParam("specialty"),
		Page:      queryInt(c, "page"),
		Limit:     queryInt(c, "limit"),
	}
	if raw := c.QueryParam("active"); raw != "" {
		active, err := strconv.ParseBool(raw)
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "active must be a boolean")
		}
		input.Active = &active
	}

	result, err := h.service.ListSedationists(c.Request().Context(), input)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, listSedationistsResponse{
		Items: result.Items,
		pageMeta: pageMeta{
			Total:      result.Total,
			Page:       result.Page,
			Limit:      result.Limit,
			TotalPages: result.TotalPages,
		},
	})
}

// Deactivate handles DELETE /v1/sedationists/:id.
//
// @Summary      Deactivate a sedationist
// @Tags         sedationists
// @Security     BearerAuth
// @Param        id  path  string  true  "Sedationist id"
// @Success      204  "sedationist deactivated"
// @Failure      404  {object}  errorResponse
// @Router       /v1/sedationists/{id} [delete]
func (h *SedationistHandler) Deactivate(c echo.Context) error {
	if err := h.service.DeactivateSedationist(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
