package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/hrc-navate/worklog/internal/core/domain"
)

func seededUser(t *testing.T, id, name, password string, isAdmin bool) domain.User {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("hash password: %v", err)
	}
	return domain.User{ID: id, Name: name, PasswordHash: string(hash), IsAdmin: isAdmin}
}

func TestAuthService_Login_Success(t *testing.T) {
	repo := newStubUserRepo(seededUser(t, "u1", "alice", "pass123", true))
	svc := NewAuthService(repo, &stubRevoker{}, "secret", time.Hour, zerolog.Nop())

	token, user, err := svc.Login(context.Background(), "alice", "pass123")
	if err != nil {
		t.Fatalf("Login returned error: %v", err)
	}
	if token == "" || user == nil {
		t.Fatalf("expected token and user")
	}

	claims := jwt.MapClaims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(*jwt.Token) (interface{}, error) {
		return []byte("secret"), nil
	})
	if err != nil || !parsed.Valid {
		t.Fatalf("token did not validate: %v", err)
	}
	if claims["sub"] != "u1" || claims["name"] != "alice" || claims["admin"] != true {
		t.Fatalf("unexpected claims: %v", claims)
	}
	if jti, _ := claims["jti"].(string); jti == "" {
		t.Fatalf("expected token id claim")
	}
}

func TestAuthService_Login_Failures(t *testing.T) {
	repo := newStubUserRepo(seededUser(t, "u1", "alice", "pass123", false))
	svc := NewAuthService(repo, &stubRevoker{}, "secret", time.Hour, zerolog.Nop())

	cases := []struct{ name, password string }{
		{"", "pass123"},
		{"alice", ""},
		{"alice", "wrong"},
		{"nobody", "pass123"},
	}
	for _, tc := range cases {
		if _, _, err := svc.Login(context.Background(), tc.name, tc.password); !errors.Is(err, domain.ErrInvalidCredentials) {
			t.Fatalf("Login(%q, %q): expected ErrInvalidCredentials, got %v", tc.name, tc.password, err)
		}
	}
}

func TestAuthService_Logout(t *testing.T) {
	revoker := &stubRevoker{}
	svc := NewAuthService(newStubUserRepo(), revoker, "secret", time.Hour, zerolog.Nop())
	now := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return now }

	if err := svc.Logout(context.Background(), "tok-1", now.Add(30*time.Minute)); err != nil {
		t.Fatalf("Logout returned error: %v", err)
	}
	if ttl := revoker.revoked["tok-1"]; ttl != 30*time.Minute {
		t.Fatalf("expected 30m revocation, got %v", ttl)
	}

	if err := svc.Logout(context.Background(), "tok-2", now.Add(-time.Minute)); err != nil {
		t.Fatalf("Logout of expired token returned error: %v", err)
	}
	if _, ok := revoker.revoked["tok-2"]; ok {
		t.Fatalf("expired token must not be stored")
	}

	if err := svc.Logout(context.Background(), "", now.Add(time.Hour)); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}
