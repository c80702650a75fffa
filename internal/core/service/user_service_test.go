package service

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/hrc-navate/worklog/internal/core/domain"
	"github.com/hrc-navate/worklog/internal/core/ports"
)

func TestUserService_EnsureBootstrapAdmin(t *testing.T) {
	repo := newStubUserRepo()
	svc := NewUserService(repo, zerolog.Nop())

	user, created, err := svc.EnsureBootstrapAdmin(context.Background(), BootstrapAdmin{Password: "admin123"})
	if err != nil {
		t.Fatalf("EnsureBootstrapAdmin returned error: %v", err)
	}
	if !created || user.Name != "admin" || !user.IsAdmin || !user.Bootstrap {
		t.Fatalf("unexpected bootstrap user: %+v (created=%v)", user, created)
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("admin123")); err != nil {
		t.Fatalf("stored hash does not match password: %v", err)
	}

	again, created, err := svc.EnsureBootstrapAdmin(context.Background(), BootstrapAdmin{Name: "other", Password: "whatever"})
	if err != nil {
		t.Fatalf("second EnsureBootstrapAdmin returned error: %v", err)
	}
	if created || again.ID != user.ID {
		t.Fatalf("expected the existing bootstrap admin to be returned")
	}
	if len(repo.users) != 1 {
		t.Fatalf("expected exactly one user, got %d", len(repo.users))
	}
}

func TestUserService_EnsureBootstrapAdmin_GeneratesPassword(t *testing.T) {
	svc := NewUserService(newStubUserRepo(), zerolog.Nop())

	user, created, err := svc.EnsureBootstrapAdmin(context.Background(), BootstrapAdmin{})
	if err != nil || !created {
		t.Fatalf("expected bootstrap admin to be created, err=%v", err)
	}
	if user.PasswordHash == "" {
		t.Fatalf("expected a password hash")
	}
}

func TestUserService_Create(t *testing.T) {
	repo := newStubUserRepo()
	svc := NewUserService(repo, zerolog.Nop())
	in := ports.CreateUserInput{Name: " carol ", Password: "secret1"}

	if _, err := svc.Create(context.Background(), alice, in); !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}

	user, err := svc.Create(context.Background(), admin, in)
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	if user.Name != "carol" || user.IsAdmin {
		t.Fatalf("unexpected user: %+v", user)
	}
	if user.PasswordHash == "secret1" {
		t.Fatalf("expected password to be hashed")
	}

	if _, err := svc.Create(context.Background(), admin, in); !errors.Is(err, domain.ErrUserExists) {
		t.Fatalf("expected ErrUserExists, got %v", err)
	}
	if _, err := svc.Create(context.Background(), admin, ports.CreateUserInput{Name: "dave", Password: "123"}); !errors.Is(err, domain.ErrInvalidPassword) {
		t.Fatalf("expected ErrInvalidPassword, got %v", err)
	}
	if _, err := svc.Create(context.Background(), admin, ports.CreateUserInput{Name: " ", Password: "secret1"}); !errors.Is(err, domain.ErrInvalidName) {
		t.Fatalf("expected ErrInvalidName, got %v", err)
	}
}

func TestUserService_ResetPassword(t *testing.T) {
	repo := newStubUserRepo(domain.User{ID: "u1", Name: "alice"}, domain.User{ID: "u2", Name: "bob"})
	svc := NewUserService(repo, zerolog.Nop())

	if err := svc.ResetPassword(context.Background(), alice, "u1", "newpass"); err != nil {
		t.Fatalf("owner reset returned error: %v", err)
	}
	if err := bcrypt.CompareHashAndPassword([]byte(repo.users["u1"].PasswordHash), []byte("newpass")); err != nil {
		t.Fatalf("password not updated: %v", err)
	}
	if err := svc.ResetPassword(context.Background(), alice, "u2", "newpass"); !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}
	if err := svc.ResetPassword(context.Background(), admin, "u2", "newpass"); err != nil {
		t.Fatalf("admin reset returned error: %v", err)
	}
	if err := svc.ResetPassword(context.Background(), admin, "missing", "newpass"); !errors.Is(err, domain.ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}

func TestUserService_Delete(t *testing.T) {
	repo := newStubUserRepo(
		domain.User{ID: "adm", Name: "admin", IsAdmin: true, Bootstrap: true},
		domain.User{ID: "adm2", Name: "deputy", IsAdmin: true},
		domain.User{ID: "u1", Name: "alice"},
	)
	svc := NewUserService(repo, zerolog.Nop())

	if err := svc.Delete(context.Background(), alice, "u1"); !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}
	if err := svc.Delete(context.Background(), admin, "adm"); !errors.Is(err, domain.ErrBootstrapAdmin) {
		t.Fatalf("expected ErrBootstrapAdmin, got %v", err)
	}
	if err := svc.Delete(context.Background(), admin, "adm2"); !errors.Is(err, domain.ErrAdminAccount) {
		t.Fatalf("expected ErrAdminAccount, got %v", err)
	}
	if _, ok := repo.users["adm2"]; !ok {
		t.Fatalf("admin account was removed")
	}
	if err := svc.Delete(context.Background(), admin, "u1"); err != nil {
		t.Fatalf("Delete returned error: %v", err)
	}
	if _, ok := repo.users["u1"]; ok {
		t.Fatalf("user still present")
	}
}

func TestUserService_ListAndGet(t *testing.T) {
	svc := NewUserService(newStubUserRepo(domain.User{ID: "u1", Name: "alice"}, domain.User{ID: "u2", Name: "bob"}), zerolog.Nop())

	if _, err := svc.List(context.Background(), alice); !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}
	users, err := svc.List(context.Background(), admin)
	if err != nil || len(users) != 2 {
		t.Fatalf("expected 2 users, got %d (err=%v)", len(users), err)
	}
	if _, err := svc.Get(context.Background(), alice, "u2"); !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}
	if u, err := svc.Get(context.Background(), alice, "u1"); err != nil || u.Name != "alice" {
		t.Fatalf("expected alice, got %+v (err=%v)", u, err)
	}
}
