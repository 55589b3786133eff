package service

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/calmora/portal-system/internal/core/domain"
	"github.com/calmora/portal-system/internal/core/ports"
)

func newTestUserService(repo *stubUserRepo) *UserService {
	return NewUserService(repo, zerolog.Nop())
}

func TestUserService_CreateUser(t *testing.T) {
	repo := newStubUserRepo()
	svc := newTestUserService(repo)

	created, err := svc.CreateUser(context.Background(), ports.CreateUserInput{
		Email:         "new@example.com",
		FirstName:     "Nina",
		LastName:      "Alvarez",
		Password:      "supersecret",
		Role:          domain.RoleStaff,
		Permissions:   domain.PortalPermissions{Internal: true, Clinic: true},
		DefaultPortal: domain.PortalInternal,
	})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if !created.Active {
		t.Fatalf("new users must start active")
	}
	if created.PasswordHash == "supersecret" {
		t.Fatalf("password stored in clear")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(created.PasswordHash), []byte("supersecret")); err != nil {
		t.Fatalf("stored hash does not match password: %v", err)
	}
}

func TestUserService_CreateUser_InconsistentDefault(t *testing.T) {
	repo := newStubUserRepo()
	svc := newTestUserService(repo)

	_, err := svc.CreateUser(context.Background(), ports.CreateUserInput{
		Email:         "new@example.com",
		Password:      "supersecret",
		Role:          domain.RoleStaff,
		Permissions:   domain.PortalPermissions{Internal: true},
		DefaultPortal: domain.PortalClinic,
	})
	if !errors.Is(err, domain.ErrInconsistentDefault) {
		t.Fatalf("expected ErrInconsistentDefault, got %v", err)
	}
	if len(repo.byEmail) != 0 {
		t.Fatalf("rejected user must not be stored")
	}
}

func TestUserService_CreateUser_InvalidRole(t *testing.T) {
	svc := newTestUserService(newStubUserRepo())

	_, err := svc.CreateUser(context.Background(), ports.CreateUserInput{
		Email:         "new@example.com",
		Password:      "supersecret",
		Role:          "superuser",
		Permissions:   domain.PortalPermissions{Internal: true},
		DefaultPortal: domain.PortalInternal,
	})
	if err == nil {
		t.Fatalf("expected error for unknown role")
	}
}

func TestUserService_CreateUser_Duplicate(t *testing.T) {
	existing := testUser(t, "u1", "dup@example.com", true,
		domain.PortalPermissions{Internal: true}, domain.PortalInternal)
	svc := newTestUserService(newStubUserRepo(existing))

	_, err := svc.CreateUser(context.Background(), ports.CreateUserInput{
		Email:         "dup@example.com",
		Password:      "supersecret",
		Role:          domain.RoleStaff,
		Permissions:   domain.PortalPermissions{Internal: true},
		DefaultPortal: domain.PortalInternal,
	})
	if !errors.Is(err, domain.ErrUserExists) {
		t.Fatalf("expected ErrUserExists, got %v", err)
	}
}

func TestUserService_UpdateUser_KeepsPasswordWhenEmpty(t *testing.T) {
	existing := testUser(t, "u1", "staff@example.com", true,
		domain.PortalPermissions{Internal: true}, domain.PortalInternal)
	originalHash := existing.PasswordHash
	repo := newStubUserRepo(existing)
	svc := newTestUserService(repo)

	updated, err := svc.UpdateUser(context.Background(), existing.ID, ports.UpdateUserInput{
		FirstName:     "Renamed",
		LastName:      existing.LastName,
		Role:          existing.Role,
		Permissions:   existing.Permissions,
		DefaultPortal: existing.DefaultPortal,
	})
	if err != nil {
		t.Fatalf("update failed: %v", err)
	}
	if updated.FirstName != "Renamed" {
		t.Fatalf("name not updated")
	}
	if updated.PasswordHash != originalHash {
		t.Fatalf("empty password must keep the current hash")
	}
}

func TestUserService_UpdateUser_RehashesNewPassword(t *testing.T) {
	existing := testUser(t, "u1", "staff@example.com", true,
		domain.PortalPermissions{Internal: true}, domain.PortalInternal)
	repo := newStubUserRepo(existing)
	svc := newTestUserService(repo)

	updated, err := svc.UpdateUser(context.Background(), existing.ID, ports.UpdateUserInput{
		FirstName:     existing.FirstName,
		LastName:      existing.LastName,
		Password:      "changed-password",
		Role:          existing.Role,
		Permissions:   existing.Permissions,
		DefaultPortal: existing.DefaultPortal,
	})
	if err != nil {
		t.Fatalf("update failed: %v", err)
	}
	if err := bcrypt.CompareHashAndPassword([]byte(updated.PasswordHash), []byte("changed-password")); err != nil {
		t.Fatalf("hash does not match new password: %v", err)
	}
}

func TestUserService_UpdateUser_InconsistentDefault(t *testing.T) {
	existing := testUser(t, "u1", "staff@example.com", true,
		domain.PortalPermissions{Internal: true}, domain.PortalInternal)
	repo := newStubUserRepo(existing)
	svc := newTestUserService(repo)

	_, err := svc.UpdateUser(context.Background(), existing.ID, ports.UpdateUserInput{
		FirstName:     existing.FirstName,
		LastName:      existing.LastName,
		Role:          existing.Role,
		Permissions:   domain.PortalPermissions{Patient: true},
		DefaultPortal: domain.PortalInternal,
	})
	if !errors.Is(err, domain.ErrInconsistentDefault) {
		t.Fatalf("expected ErrInconsistentDefault, got %v", err)
	}

	stored, _ := repo.FindByID(context.Background(), existing.ID)
	if stored.Permissions != existing.Permissions {
		t.Fatalf("rejected update must not change the stored record")
	}
}

func TestUserService_ListUsers_PaginationNormalized(t *testing.T) {
	repo := newStubUserRepo(testUser(t, "u1", "staff@example.com", true,
		domain.PortalPermissions{Internal: true}, domain.PortalInternal))
	svc := newTestUserService(repo)

	result, err := svc.ListUsers(context.Background(), ports.ListUsersInput{Page: -3, Limit: 1000})
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if result.Page != 1 {
		t.Fatalf("expected page clamped to 1, got %d", result.Page)
	}
	if result.Limit != maxPageLimit {
		t.Fatalf("expected limit capped at %d, got %d", maxPageLimit, result.Limit)
	}
	if result.Total != 1 || result.TotalPages != 1 {
		t.Fatalf("unexpected totals: total=%d pages=%d", result.Total, result.TotalPages)
	}
}

func TestUserService_DeactivateUser(t *testing.T) {
	existing := testUser(t, "u1", "staff@example.com", true,
		domain.PortalPermissions{Internal: true}, domain.PortalInternal)
	repo := newStubUserRepo(existing)
	svc := newTestUserService(repo)

	if err := svc.DeactivateUser(context.Background(), existing.ID); err != nil {
		t.Fatalf("deactivate failed: %v", err)
	}
	stored, _ := repo.FindByID(context.Background(), existing.ID)
	if stored.Active {
		t.Fatalf("user still active after deactivation")
	}

	// Second call is a no-op, not an error.
	if err := svc.DeactivateUser(context.Background(), existing.ID); err != nil {
		t.Fatalf("repeat deactivate failed: %v", err)
	}
}

func TestUserService_DeactivateUser_NotFound(t *testing.T) {
	svc := newTestUserService(newStubUserRepo())
	if err := svc.DeactivateUser(context.Background(), "missing"); !errors.Is(err, domain.ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}
