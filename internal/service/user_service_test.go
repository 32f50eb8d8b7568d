package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"quizhub/internal/models"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

type userFixture struct {
	users *fakeUserStore
	clock *fakeClock
	svc   *UserService
}

func newUserFixture() *userFixture {
	// jwt validates expiry against wall-clock time, so this clock starts at
	// the real now instead of the fixed date the attempt tests use.
	f := &userFixture{users: newFakeUserStore(), clock: &fakeClock{current: time.Now()}}
	f.svc = NewUserService(f.users, "access-secret", "refresh-secret", time.Hour, 24*time.Hour)
	f.svc.now = f.clock.Now
	return f
}

func (f *userFixture) register(t *testing.T, email string) *models.User {
	t.Helper()
	user, err := f.svc.Register(context.Background(), "Ada", email, "s3cret-pass", "")
	if err != nil {
		t.Fatalf("register: %v", err)
	}
	return user
}

func TestRegisterHashesPassword(t *testing.T) {
	f := newUserFixture()
	user := f.register(t, "ada@example.com")

	if user.PasswordHash == "s3cret-pass" {
		t.Fatal("password stored in the clear")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("s3cret-pass")); err != nil {
		t.Errorf("stored hash does not verify: %v", err)
	}
	if user.Role != models.RoleUser {
		t.Errorf("new user role = %q, want %q", user.Role, models.RoleUser)
	}
	if !user.IsActive {
		t.Error("new user should be active")
	}
}

func TestRegisterWithAdminRole(t *testing.T) {
	f := newUserFixture()
	admin, err := f.svc.Register(context.Background(), "Root", "root@example.com", "s3cret-pass", models.RoleAdmin)
	if err != nil {
		t.Fatalf("register admin: %v", err)
	}
	if admin.Role != models.RoleAdmin {
		t.Errorf("role = %q, want %q", admin.Role, models.RoleAdmin)
	}
}

func TestRegisterDuplicateEmail(t *testing.T) {
	f := newUserFixture()
	f.register(t, "ada@example.com")

	_, err := f.svc.Register(context.Background(), "Other", "ada@example.com", "another-pass", "")
	if !errors.Is(err, models.ErrEmailTaken) {
		t.Fatalf("expected ErrEmailTaken, got %v", err)
	}
}

func TestLoginIssuesTokens(t *testing.T) {
	f := newUserFixture()
	f.register(t, "ada@example.com")

	user, pair, err := f.svc.Login(context.Background(), "ada@example.com", "s3cret-pass")
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if pair.AccessToken == "" || pair.RefreshToken == "" {
		t.Fatal("expected both tokens")
	}

	claims := &models.Claims{}
	token, err := jwt.ParseWithClaims(pair.AccessToken, claims, func(t *jwt.Token) (any, error) {
		return []byte("access-secret"), nil
	})
	if err != nil || !token.Valid {
		t.Fatalf("access token does not parse: %v", err)
	}
	if claims.UserID != user.ID || claims.Email != user.Email || claims.Role != models.RoleUser {
		t.Errorf("claims = %+v", claims)
	}

	stored, err := f.users.FindByID(context.Background(), user.ID)
	if err != nil {
		t.Fatalf("reload user: %v", err)
	}
	if stored.RefreshToken != pair.RefreshToken {
		t.Error("refresh token was not persisted")
	}
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	f := newUserFixture()
	f.register(t, "ada@example.com")

	if _, _, err := f.svc.Login(context.Background(), "ada@example.com", "wrong"); !errors.Is(err, models.ErrInvalidCredentials) {
		t.Errorf("wrong password: expected ErrInvalidCredentials, got %v", err)
	}
	if _, _, err := f.svc.Login(context.Background(), "nobody@example.com", "s3cret-pass"); !errors.Is(err, models.ErrInvalidCredentials) {
		t.Errorf("unknown email: expected ErrInvalidCredentials, got %v", err)
	}
}

func TestLoginRejectsInactiveUser(t *testing.T) {
	f := newUserFixture()
	user := f.register(t, "ada@example.com")
	if err := f.users.Deactivate(context.Background(), user.ID); err != nil {
		t.Fatalf("deactivate: %v", err)
	}

	if _, _, err := f.svc.Login(context.Background(), "ada@example.com", "s3cret-pass"); !errors.Is(err, models.ErrUserInactive) {
		t.Fatalf("expected ErrUserInactive, got %v", err)
	}
}

func TestRefreshRotatesTokens(t *testing.T) {
	f := newUserFixture()
	f.register(t, "ada@example.com")
	_, pair, err := f.svc.Login(context.Background(), "ada@example.com", "s3cret-pass")
	if err != nil {
		t.Fatalf("login: %v", err)
	}

	f.clock.Advance(time.Minute)
	next, err := f.svc.Refresh(context.Background(), pair.RefreshToken)
	if err != nil {
		t.Fatalf("refresh: %v", err)
	}
	if next.RefreshToken == pair.RefreshToken {
		t.Fatal("refresh token was not rotated")
	}

	// the superseded token is dead
	if _, err := f.svc.Refresh(context.Background(), pair.RefreshToken); !errors.Is(err, models.ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken for a superseded token, got %v", err)
	}

	f.clock.Advance(time.Minute)
	if _, err := f.svc.Refresh(context.Background(), next.RefreshToken); err != nil {
		t.Errorf("current token should refresh: %v", err)
	}
}

func TestRefreshRejectsGarbageAndAccessTokens(t *testing.T) {
	f := newUserFixture()
	f.register(t, "ada@example.com")
	_, pair, err := f.svc.Login(context.Background(), "ada@example.com", "s3cret-pass")
	if err != nil {
		t.Fatalf("login: %v", err)
	}

	if _, err := f.svc.Refresh(context.Background(), "not-a-jwt"); !errors.Is(err, models.ErrInvalidToken) {
		t.Errorf("garbage token: expected ErrInvalidToken, got %v", err)
	}
	// access tokens are signed with a different secret
	if _, err := f.svc.Refresh(context.Background(), pair.AccessToken); !errors.Is(err, models.ErrInvalidToken) {
		t.Errorf("access token as refresh: expected ErrInvalidToken, got %v", err)
	}
}

func TestUpdateProfile(t *testing.T) {
	f := newUserFixture()
	user := f.register(t, "ada@example.com")

	updated, err := f.svc.UpdateProfile(context.Background(), user.ID, "Ada Lovelace")
	if err != nil {
		t.Fatalf("update profile: %v", err)
	}
	if updated.Name != "Ada Lovelace" {
		t.Errorf("name = %q", updated.Name)
	}
	stored, _ := f.users.FindByID(context.Background(), user.ID)
	if stored.Name != "Ada Lovelace" {
		t.Errorf("stored name = %q", stored.Name)
	}
}
