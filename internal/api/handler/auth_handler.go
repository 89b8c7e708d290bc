package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/photosbyzee/studio-portal/internal/api/metrics"
	"github.com/photosbyzee/studio-portal/internal/api/middleware"
	"github.com/photosbyzee/studio-portal/internal/core/domain"
	"github.com/photosbyzee/studio-portal/internal/core/ports"
	"github.com/photosbyzee/studio-portal/pkg/token"
)

// AuthHandler handles registration, login, logout, and session verification.
type AuthHandler struct {
	service ports.AuthService
	// secureCookies marks the auth cookie Secure; enabled in production.
	secureCookies bool
}

func NewAuthHandler(service ports.AuthService, secureCookies bool) *AuthHandler {
	return &AuthHandler{service: service, secureCookies: secureCookies}
}

// Register handles POST /api/auth/client/register.
func (h *AuthHandler) Register(c echo.Context) error {
	var req registerRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	user, tkn, err := h.service.RegisterClient(c.Request().Context(), ports.RegisterInput{
		Email:     req.Email,
		Password:  req.Password,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Phone:     req.Phone,
	})
	if err != nil {
		return err
	}

	metrics.RegistrationsTotal.Inc()
	h.setAuthCookie(c, tkn)
	return c.JSON(http.StatusCreated, authResponse{User: user, Token: tkn})
}

// LoginClient handles POST /api/auth/client/login.
func (h *AuthHandler) LoginClient(c echo.Context) error {
	return h.login(c, domain.RoleClient)
}

// LoginManager handles POST /api/auth/manager/login.
func (h *AuthHandler) LoginManager(c echo.Context) error {
	return h.login(c, domain.RoleManager)
}

// login is the single login flow, parameterized by the role the route
// requires. A user whose role does not match responds identically to a wrong
// password so the endpoint leaks nothing about existing accounts.
func (h *AuthHandler) login(c echo.Context, role string) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	tkn, user, err := h.service.Login(c.Request().Context(), req.Email, req.Password, role)
	if err != nil {
		metrics.LoginsTotal.WithLabelValues(role, "failure").Inc()
		return err
	}

	metrics.LoginsTotal.WithLabelValues(role, "success").Inc()
	h.setAuthCookie(c, tkn)
	return c.JSON(http.StatusOK, authResponse{User: user, Token: tkn})
}

// Logout handles POST /api/auth/logout.
func (h *AuthHandler) Logout(c echo.Context) error {
	c.SetCookie(&http.Cookie{
		Name:     middleware.CookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
		Secure:   h.secureCookies,
	})
	return c.JSON(http.StatusOK, successResponse{Success: true})
}

// Verify handles GET /api/auth/verify. It re-reads the user so the response
// reflects profile changes made after the token was issued.
func (h *AuthHandler) Verify(c echo.Context) error {
	userID, err := authUserID(c)
	if err != nil {
		return err
	}

	user, err := h.service.CurrentUser(c.Request().Context(), userID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, userResponse{User: user})
}

func (h *AuthHandler) setAuthCookie(c echo.Context, value string) {
	c.SetCookie(&http.Cookie{
		Name:     middleware.CookieName,
		Value:    value,
		Path:     "/",
		MaxAge:   int(token.TTL.Seconds()),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
		Secure:   h.secureCookies,
	})
}
