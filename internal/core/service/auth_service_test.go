package service

import (
	"context"
	"testing"

	"github.com/photosbyzee/studio-portal/internal/core/domain"
	"github.com/photosbyzee/studio-portal/internal/core/ports"
	"github.com/photosbyzee/studio-portal/pkg/password"
	"github.com/photosbyzee/studio-portal/pkg/token"
)

type stubUserRepo struct {
	users map[string]*domain.User // keyed by email
}

func newStubUserRepo() *stubUserRepo {
	return &stubUserRepo{users: make(map[string]*domain.User)}
}

func cloneUser(u *domain.User) *domain.User {
	if u == nil {
		return nil
	}
	clone := *u
	return &clone
}

func (r *stubUserRepo) Create(_ context.Context, user *domain.User) error {
	if _, exists := r.users[user.Email]; exists {
		return domain.ErrEmailTaken
	}
	r.users[user.Email] = cloneUser(user)
	return nil
}

func (r *stubUserRepo) FindByEmail(_ context.Context, email string) (*domain.User, error) {
	if u, ok := r.users[email]; ok {
		return cloneUser(u), nil
	}
	return nil, domain.ErrUserNotFound
}

func (r *stubUserRepo) FindByID(_ context.Context, id string) (*domain.User, error) {
	for _, u := range r.users {
		if u.ID == id {
			return cloneUser(u), nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func newTestAuthService(t *testing.T) (*AuthService, *stubUserRepo, *token.Manager) {
	t.Helper()
	repo := newStubUserRepo()
	tokens, err := token.NewManager("test-secret")
	if err != nil {
		t.Fatalf("NewManager: %v", err)
	}
	return NewAuthService(repo, tokens), repo, tokens
}

func TestAuthService_RegisterClient(t *testing.T) {
	svc, _, tokens := newTestAuthService(t)

	user, tkn, err := svc.RegisterClient(context.Background(), ports.RegisterInput{
		Email:     "a@b.com",
		Password:  "longenough1",
		FirstName: "Ada",
		LastName:  "Lovelace",
	})
	if err != nil {
		t.Fatalf("RegisterClient: %v", err)
	}
	if user.Role != domain.RoleClient {
		t.Fatalf("expected CLIENT role, got %s", user.Role)
	}
	if user.PasswordHash == "longenough1" {
		t.Fatalf("password stored in clear")
	}
	if !password.Verify("longenough1", user.PasswordHash) {
		t.Fatalf("stored hash does not match password")
	}

	claims := tokens.Verify(tkn)
	if claims == nil {
		t.Fatalf("issued token failed verification")
	}
	if claims.UserID != user.ID || claims.Email != "a@b.com" || claims.Role != domain.RoleClient {
		t.Fatalf("token claims mismatch: %+v", claims)
	}
}

func TestAuthService_RegisterClient_DuplicateEmail(t *testing.T) {
	svc, _, _ := newTestAuthService(t)

	input := ports.RegisterInput{Email: "a@b.com", Password: "longenough1", FirstName: "Ada", LastName: "L"}
	if _, _, err := svc.RegisterClient(context.Background(), input); err != nil {
		t.Fatalf("first registration failed: %v", err)
	}
	if _, _, err := svc.RegisterClient(context.Background(), input); err != domain.ErrEmailTaken {
		t.Fatalf("expected ErrEmailTaken, got %v", err)
	}
}

func TestAuthService_Login(t *testing.T) {
	svc, _, tokens := newTestAuthService(t)

	user, _, err := svc.RegisterClient(context.Background(), ports.RegisterInput{
		Email: "a@b.com", Password: "longenough1", FirstName: "Ada", LastName: "L",
	})
	if err != nil {
		t.Fatalf("RegisterClient: %v", err)
	}

	tkn, got, err := svc.Login(context.Background(), "a@b.com", "longenough1", domain.RoleClient)
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	if got.ID != user.ID {
		t.Fatalf("unexpected user: %s", got.ID)
	}
	claims := tokens.Verify(tkn)
	if claims == nil || claims.Role != domain.RoleClient || claims.Email != "a@b.com" {
		t.Fatalf("unexpected claims: %+v", claims)
	}
}

func TestAuthService_Login_WrongPassword(t *testing.T) {
	svc, _, _ := newTestAuthService(t)
	_, _, _ = svc.RegisterClient(context.Background(), ports.RegisterInput{
		Email: "a@b.com", Password: "longenough1", FirstName: "A", LastName: "B",
	})

	if _, _, err := svc.Login(context.Background(), "a@b.com", "wrong", domain.RoleClient); err != domain.ErrInvalidCredentials {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestAuthService_Login_UnknownEmail(t *testing.T) {
	svc, _, _ := newTestAuthService(t)
	if _, _, err := svc.Login(context.Background(), "nobody@b.com", "whatever", domain.RoleClient); err != domain.ErrInvalidCredentials {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestAuthService_Login_RoleMismatch(t *testing.T) {
	svc, _, _ := newTestAuthService(t)
	_, _, _ = svc.RegisterClient(context.Background(), ports.RegisterInput{
		Email: "a@b.com", Password: "longenough1", FirstName: "A", LastName: "B",
	})

	// A client logging in through the manager endpoint reads as a bad
	// credential, not a role error.
	if _, _, err := svc.Login(context.Background(), "a@b.com", "longenough1", domain.RoleManager); err != domain.ErrInvalidCredentials {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestAuthService_CreateManager(t *testing.T) {
	svc, _, _ := newTestAuthService(t)

	user, err := svc.CreateManager(context.Background(), "zee@studio.com", "managerpass", "Zee", "Cox")
	if err != nil {
		t.Fatalf("CreateManager: %v", err)
	}
	if user.Role != domain.RoleManager {
		t.Fatalf("expected MANAGER role, got %s", user.Role)
	}

	tkn, _, err := svc.Login(context.Background(), "zee@studio.com", "managerpass", domain.RoleManager)
	if err != nil {
		t.Fatalf("manager login: %v", err)
	}
	if tkn == "" {
		t.Fatalf("expected a token")
	}
}

func TestAuthService_CurrentUser(t *testing.T) {
	svc, _, _ := newTestAuthService(t)
	user, _, _ := svc.RegisterClient(context.Background(), ports.RegisterInput{
		Email: "a@b.com", Password: "longenough1", FirstName: "A", LastName: "B",
	})

	got, err := svc.CurrentUser(context.Background(), user.ID)
	if err != nil {
		t.Fatalf("CurrentUser: %v", err)
	}
	if got.Email != "a@b.com" {
		t.Fatalf("unexpected email: %s", got.Email)
	}

	if _, err := svc.CurrentUser(context.Background(), "missing"); err != domain.ErrUserNotFound {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}
