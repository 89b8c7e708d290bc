package ports

import (
	"context"

	"github.com/photosbyzee/studio-portal/internal/core/domain"
)

// RegisterInput carries everything needed to create a client account.
type RegisterInput struct {
	Email     string
	Password  string
	FirstName string
	LastName  string
	Phone     string
}

// AuthService implements registration, login, and session lookup.
type AuthService interface {
	// RegisterClient creates a CLIENT account and returns the user plus a
	// freshly issued session token.
	RegisterClient(ctx context.Context, input RegisterInput) (*domain.User, string, error)

	// Login authenticates a credential pair for an endpoint that requires the
	// given role. Unknown email, wrong password, and role mismatch all report
	// domain.ErrInvalidCredentials so the caller leaks nothing.
	Login(ctx context.Context, email, password, requiredRole string) (string, *domain.User, error)

	// CreateManager provisions a MANAGER account; used by the operator script
	// only. Returns domain.ErrEmailTaken if the email exists.
	CreateManager(ctx context.Context, email, password, firstName, lastName string) (*domain.User, error)

	// CurrentUser loads fresh profile fields for an authenticated user id.
	CurrentUser(ctx context.Context, userID string) (*domain.User, error)
}

// UserRepository persists user records.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	FindByID(ctx context.Context, id string) (*domain.User, error)
}
