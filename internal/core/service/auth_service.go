package service

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/calmora/portal-system/internal/api/metrics"
	"github.com/calmora/portal-system/internal/core/domain"
	"github.com/calmora/portal-system/internal/core/ports"
)

// SessionStore abstracts the server-side session records (Redis).
// A session exists from login until logout or TTL expiry; deleting an absent
// session is a no-op.
type SessionStore interface {
	Create(ctx context.Context, sessionID, userID string, ttl time.Duration) error
	// Get returns the user id bound to sessionID, or domain.ErrSessionNotFound.
	Get(ctx context.Context, sessionID string) (string, error)
	Delete(ctx context.Context, sessionID string) error
}

// AuthService is the session/auth gateway: credential resolution, session
// lifecycle, and the post-login landing portal.
type AuthService struct {
	users      ports.UserRepository
	sessions   SessionStore
	jwtSecret  string
	sessionTTL time.Duration

	// verifyPasswords controls whether Login compares the submitted password
	// against the stored bcrypt hash. The portals historically authenticate
	// against a seeded demo directory without a password check; the switch
	// keeps that behavior explicit instead of hard-coded.
	verifyPasswords bool

	log zerolog.Logger
}

func NewAuthService(
	users ports.UserRepository,
	sessions SessionStore,
	jwtSecret string,
	sessionTTL time.Duration,
	verifyPasswords bool,
	log zerolog.Logger,
) *AuthService {
	if sessionTTL <= 0 {
		sessionTTL = 24 * time.Hour
	}
	return &AuthService{
		users:           users,
		sessions:        sessions,
		jwtSecret:       jwtSecret,
		sessionTTL:      sessionTTL,
		verifyPasswords: verifyPasswords,
		log:             log,
	}
}

// Login resolves credentials to a user, opens a session, and computes the
// landing portal. Inactive accounts are rejected before any credential check,
// so deactivation wins regardless of password correctness.
func (s *AuthService) Login(ctx context.Context, email, password string) (*ports.LoginResult, error) {
	if email == "" {
		metrics.LoginFailuresTotal.WithLabelValues("invalid_credentials").Inc()
		return nil, domain.ErrInvalidCredentials
	}

	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			metrics.LoginFailuresTotal.WithLabelValues("not_found").Inc()
		}
		return nil, err
	}

	if !user.IsActive() {
		metrics.LoginFailuresTotal.WithLabelValues("inactive").Inc()
		return nil, domain.ErrUserInactive
	}

	if s.verifyPasswords {
		if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
			metrics.LoginFailuresTotal.WithLabelValues("invalid_credentials").Inc()
			return nil, domain.ErrInvalidCredentials
		}
	}

	landing, route := s.landing(user)

	sessionID := newSessionID()
	if err := s.sessions.Create(ctx, sessionID, user.ID, s.sessionTTL); err != nil {
		return nil, fmt.Errorf("create session: %w", err)
	}

	token, err := s.generateToken(user, sessionID)
	if err != nil {
		return nil, err
	}

	s.log.Info().
		Str("user_id", user.ID).
		Str("role", user.Role).
		Str("landing_portal", string(landing)).
		Msg("user logged in")
	metrics.LoginsTotal.WithLabelValues(user.Role).Inc()

	return &ports.LoginResult{
		Token:         token,
		User:          user,
		LandingPortal: landing,
		LandingRoute:  route,
	}, nil
}

// CurrentUser resolves a bearer token to the authenticated user. The token's
// session must still exist server-side and the account must still be active.
func (s *AuthService) CurrentUser(ctx context.Context, token string) (*domain.User, error) {
	sessionID, userID, err := s.parseToken(token)
	if err != nil {
		return nil, domain.ErrSessionNotFound
	}

	boundUserID, err := s.sessions.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if boundUserID != userID {
		return nil, domain.ErrSessionNotFound
	}

	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if !user.IsActive() {
		return nil, domain.ErrUserInactive
	}
	return user, nil
}

// Logout ends the token's session. Idempotent: an invalid token or an already
// ended session is a no-op.
func (s *AuthService) Logout(ctx context.Context, token string) error {
	sessionID, _, err := s.parseToken(token)
	if err != nil {
		return nil
	}
	return s.sessions.Delete(ctx, sessionID)
}

// landing applies the default-portal invariant and its deterministic
// fallback: the default portal when permitted, otherwise the first available
// portal, otherwise the access-denied route. An inconsistent default is a
// data-integrity problem in the user record and is logged, never surfaced to
// the end user.
func (s *AuthService) landing(user *domain.User) (domain.Portal, string) {
	portal, err := domain.ResolveDefaultPortal(user)
	if err != nil {
		s.log.Warn().
			Str("user_id", user.ID).
			Str("default_portal", string(user.DefaultPortal)).
			Msg("data integrity: default portal not permitted, applying fallback")
		metrics.DefaultPortalFallbacksTotal.Inc()

		available := domain.AvailablePortals(user)
		if len(available) == 0 {
			return "", domain.RouteAccessDenied
		}
		portal = available[0]
	}
	return portal, domain.RouteFor(portal)
}

func (s *AuthService) generateToken(user *domain.User, sessionID string) (string, error) {
	claims := jwt.MapClaims{
		"sub":   user.ID,
		"email": user.Email,
		"role":  user.Role,
		"sid":   sessionID,
		"exp":   time.Now().Add(s.sessionTTL).Unix(),
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString([]byte(s.jwtSecret))
}

// parseToken verifies the token signature and extracts the session id and
// user id claims.
func (s *AuthService) parseToken(token string) (sessionID, userID string, err error) {
	claims := jwt.MapClaims{}
	tkn, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return []byte(s.jwtSecret), nil
	})
	if err != nil || !tkn.Valid {
		return "", "", jwt.ErrTokenSignatureInvalid
	}

	sessionID, _ = claims["sid"].(string)
	userID, _ = claims["sub"].(string)
	if sessionID == "" || userID == "" {
		return "", "", jwt.ErrTokenInvalidClaims
	}
	return sessionID, userID, nil
}

// newSessionID returns a random 128-bit session identifier.
func newSessionID() string {
	b := make([]byte, 16)
	if _, err := rand.Read(b); err != nil {
		// fallback: derive from the clock
		return fmt.Sprintf("%032X", time.Now().UnixNano())
	}
	return hex.EncodeToString(b)
}
