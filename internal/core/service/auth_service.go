package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/photosbyzee/studio-portal/internal/core/domain"
	"github.com/photosbyzee/studio-portal/internal/core/ports"
	"github.com/photosbyzee/studio-portal/pkg/password"
	"github.com/photosbyzee/studio-portal/pkg/token"
)

// AuthService implements registration, login, and session lookup. There is a
// single login path parameterized by the required role; client and manager
// endpoints differ only in the role they pass.
type AuthService struct {
	repo   ports.UserRepository
	tokens *token.Manager
}

func NewAuthService(repo ports.UserRepository, tokens *token.Manager) *AuthService {
	return &AuthService{repo: repo, tokens: tokens}
}

func (s *AuthService) RegisterClient(ctx context.Context, input ports.RegisterInput) (*domain.User, string, error) {
	if _, err := s.repo.FindByEmail(ctx, input.Email); err == nil {
		return nil, "", domain.ErrEmailTaken
	} else if err != domain.ErrUserNotFound {
		return nil, "", err
	}

	hash, err := password.Hash(input.Password)
	if err != nil {
		return nil, "", err
	}

	now := time.Now().UTC()
	user := &domain.User{
		ID:           uuid.NewString(),
		Email:        input.Email,
		PasswordHash: hash,
		Role:         domain.RoleClient,
		FirstName:    input.FirstName,
		LastName:     input.LastName,
		Phone:        input.Phone,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := s.repo.Create(ctx, user); err != nil {
		return nil, "", err
	}

	tkn, err := s.tokens.Issue(user.ID, user.Email, user.Role)
	if err != nil {
		return nil, "", err
	}
	return user, tkn, nil
}

func (s *AuthService) Login(ctx context.Context, email, pass, requiredRole string) (string, *domain.User, error) {
	if email == "" || pass == "" {
		return "", nil, domain.ErrInvalidCredentials
	}

	user, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		if err == domain.ErrUserNotFound {
			return "", nil, domain.ErrInvalidCredentials
		}
		return "", nil, err
	}

	if !password.Verify(pass, user.PasswordHash) {
		return "", nil, domain.ErrInvalidCredentials
	}

	// A role mismatch reports the same failure as a bad password so the
	// endpoint does not disclose which roles an email holds.
	if user.Role != requiredRole {
		return "", nil, domain.ErrInvalidCredentials
	}

	tkn, err := s.tokens.Issue(user.ID, user.Email, user.Role)
	if err != nil {
		return "", nil, err
	}
	return tkn, user, nil
}

func (s *AuthService) CreateManager(ctx context.Context, email, pass, firstName, lastName string) (*domain.User, error) {
	if _, err := s.repo.FindByEmail(ctx, email); err == nil {
		return nil, domain.ErrEmailTaken
	} else if err != domain.ErrUserNotFound {
		return nil, err
	}

	hash, err := password.Hash(pass)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	user := &domain.User{
		ID:           uuid.NewString(),
		Email:        email,
		PasswordHash: hash,
		Role:         domain.RoleManager,
		FirstName:    firstName,
		LastName:     lastName,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := s.repo.Create(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

func (s *AuthService) CurrentUser(ctx context.Context, userID string) (*domain.User, error) {
	return s.repo.FindByID(ctx, userID)
}
