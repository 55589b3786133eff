package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// ctxToken extracts the bearer token injected by the Auth middleware and
// performs a fast-fail check before any service call: presence proves the
// middleware ran.
func ctxToken(c echo.Context) (string, error) {
	token, _ := c.Get("token").(string)
	if token == "" {
		return "", echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}
	return token, nil
}
