package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
)

// SessionChecker is the slice of the session store the middleware needs.
type SessionChecker interface {
	Get(ctx context.Context, sessionID string) (string, error)
}

// Auth validates the bearer JWT, verifies its session is still live, and
// injects the claims into context. Tokens outlive logout cryptographically, so
// the session check is what makes logout effective.
func Auth(jwtSecret string, sessions SessionChecker) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "missing authorization header")
			}

			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid authorization header")
			}

			claims := jwt.MapClaims{}
			tkn, err := jwt.ParseWithClaims(parts[1], claims, func(token *jwt.Token) (interface{}, error) {
				if token.Method.Alg() != jwt.SigningMethodHS256.Alg() {
					return nil, jwt.ErrTokenSignatureInvalid
				}
				return []byte(jwtSecret), nil
			})
			if err != nil || !tkn.Valid {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
			}

			sessionID, _ := claims["sid"].(string)
			userID, _ := claims["sub"].(string)
			if sessionID == "" || userID == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
			}

			boundUserID, err := sessions.Get(c.Request().Context(), sessionID)
			if err != nil || boundUserID != userID {
				return echo.NewHTTPError(http.StatusUnauthorized, "session expired")
			}

			c.Set("user_id", userID)
			c.Set("email", claims["email"])
			c.Set("role", claims["role"])
			c.Set("session_id", sessionID)
			c.Set("token", parts[1])

			return next(c)
		}
	}
}
