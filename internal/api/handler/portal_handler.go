package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/calmora/portal-system/internal/core/domain"
	"github.com/calmora/portal-system/internal/core/ports"
)

// PortalHandler serves portal listing and switching for the portal switcher UI.
type PortalHandler struct {
	authService   ports.AuthService
	portalService ports.PortalService
}

func NewPortalHandler(authService ports.AuthService, portalService ports.PortalService) *PortalHandler {
	return &PortalHandler{authService: authService, portalService: portalService}
}

type switchPortalRequest struct {
	Portal string `json:"portal" validate:"required,oneof=internal patient sedationist clinic"`
}

type navigationResponse struct {
	Portal string `json:"portal,omitempty"`
	Route  string `json:"route"`
}

type portalsResponse struct {
	Available []domain.Portal    `json:"available"`
	Landing   navigationResponse `json:"landing"`
}

// List returns the portals the current user may enter plus the resolved
// landing target.
//
// @Summary      List available portals
// @Tags         portals
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  portalsResponse
// @Failure      401  {object}  errorResponse
// @Router       /v1/portals [get]
func (h *PortalHandler) List(c echo.Context) error {
	user, err := h.currentUser(c)
	if err != nil {
		return err
	}

	landing, _ := h.portalService.Landing(c.Request().Context(), user)

	return c.JSON(http.StatusOK, portalsResponse{
		Available: h.portalService.Available(user),
		Landing: navigationResponse{
			Portal: string(landing.Portal),
			Route:  landing.Route,
		},
	})
}

// Switch moves the current user to the requested portal.
//
// @Summary      Switch portal
// @Tags         portals
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      switchPortalRequest  true  "Target portal"
// @Success      200   {object}  navigationResponse
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Failure      403   {object}  errorResponse
// @Router       /v1/portals/switch [post]
func (h *PortalHandler) Switch(c echo.Context) error {
	var req switchPortalRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	user, err := h.currentUser(c)
	if err != nil {
		return err
	}

	target, err := h.portalService.Switch(c.Request().Context(), user, domain.Portal(req.Portal))
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, navigationResponse{
		Portal: string(target.Portal),
		Route:  target.Route,
	})
}

// currentUser resolves the request's bearer token to the full user record;
// portal decisions need the permission flags, not just the claims.
func (h *PortalHandler) currentUser(c echo.Context) (*domain.User, error) {
	token, err := ctxToken(c)
	if err != nil {
		return nil, err
	}
	return h.authService.CurrentUser(c.Request().Context(), token)
}
