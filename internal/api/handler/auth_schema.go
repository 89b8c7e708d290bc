package handler

import "github.com/photosbyzee/studio-portal/internal/core/domain"

type registerRequest struct {
	Email     string `json:"email"     validate:"required,email"`
	Password  string `json:"password"  validate:"required,min=6"`
	FirstName string `json:"firstName" validate:"required"`
	LastName  string `json:"lastName"  validate:"required"`
	Phone     string `json:"phone"`
}

type loginRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
}

// authResponse is returned by register and login. The token is also set as
// the auth cookie; it is echoed in the body for non-browser clients.
type authResponse struct {
	User  *domain.User `json:"user"`
	Token string       `json:"token"`
}

type userResponse struct {
	User *domain.User `json:"user"`
}

type successResponse struct {
	Success bool `json:"success"`
}
