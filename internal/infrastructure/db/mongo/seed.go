package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/calmora/portal-system/internal/core/domain"
	"github.com/calmora/portal-system/internal/core/ports"
)

// demoUsers is the mock login directory used by the demo portals. One record
// per role, plus a deactivated account for exercising the inactive path.
var demoUsers = []struct {
	email         string
	firstName     string
	lastName      string
	role          string
	permissions   domain.PortalPermissions
	defaultPortal domain.Portal
	active        bool
}{
	{
		email:     "admin@example.com",
		firstName: "Ada", lastName: "Admin",
		role:          domain.RoleAdmin,
		permissions:   domain.PortalPermissions{Internal: true, Patient: true, Sedationist: true, Clinic: true},
		defaultPortal: domain.PortalInternal,
		active:        true,
	},
	{
		email:     "staff@example.com",
		firstName: "Sam", lastName: "Staff",
		role:          domain.RoleStaff,
		permissions:   domain.PortalPermissions{Internal: true, Clinic: true},
		defaultPortal: domain.PortalInternal,
		active:        true,
	},
	{
		email:     "sedationist@example.com",
		firstName: "Seda", lastName: "Nist",
		role:          domain.RoleSedationist,
		permissions:   domain.PortalPermissions{Sedationist: true},
		defaultPortal: domain.PortalSedationist,
		active:        true,
	},
	{
		email:     "patient@example.com",
		firstName: "Pat", lastName: "Ient",
		role:          domain.RolePatient,
		permissions:   domain.PortalPermissions{Patient: true},
		defaultPortal: domain.PortalPatient,
		active:        true,
	},
	{
		email:     "inactive@example.com",
		firstName: "Dora", lastName: "Mant",
		role:          domain.RoleStaff,
		permissions:   domain.PortalPermissions{Internal: true},
		defaultPortal: domain.PortalInternal,
		active:        false,
	},
}

const demoPassword = "password"

// SeedDemoUsers inserts the demo login directory. Idempotent: records that
// already exist are left untouched.
func SeedDemoUsers(ctx context.Context, repo ports.UserRepository, log zerolog.Logger) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(demoPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("seed users: %w", err)
	}

	now := time.Now().UTC()
	for _, du := range demoUsers {
		if _, err := repo.FindByEmail(ctx, du.email); err == nil {
			continue
		} else if !errors.Is(err, domain.ErrUserNotFound) {
			return fmt.Errorf("seed users: %w", err)
		}

		user := &domain.User{
			Email:         du.email,
			FirstName:     du.firstName,
			LastName:      du.lastName,
			PasswordHash:  string(hash),
			Role:          du.role,
			Permissions:   du.permissions,
			DefaultPortal: du.defaultPortal,
			Active:        du.active,
			CreatedAt:     now,
			UpdatedAt:     now,
		}
		if _, err := repo.Create(ctx, user); err != nil && !errors.Is(err, domain.ErrUserExists) {
			return fmt.Errorf("seed users: %w", err)
		}
		log.Info().Str("email", du.email).Str("role", du.role).Msg("seeded demo user")
	}
	return nil
}
