package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/photosbyzee/studio-portal/internal/api/handler"
	"github.com/photosbyzee/studio-portal/internal/api/middleware"
	"github.com/photosbyzee/studio-portal/internal/core/domain"
	"github.com/photosbyzee/studio-portal/internal/core/ports"
	"github.com/photosbyzee/studio-portal/pkg/token"
)

type fixedAuthService struct {
	user  *domain.User
	token string
	err   error
}

func (s *fixedAuthService) RegisterClient(ctx context.Context, input ports.RegisterInput) (*domain.User, string, error) {
	return s.user, s.token, s.err
}

func (s *fixedAuthService) Login(ctx context.Context, email, password, requiredRole string) (string, *domain.User, error) {
	return s.token, s.user, s.err
}

func (s *fixedAuthService) CreateManager(ctx context.Context, email, password, firstName, lastName string) (*domain.User, error) {
	return s.user, s.err
}

func (s *fixedAuthService) CurrentUser(ctx context.Context, userID string) (*domain.User, error) {
	return s.user, s.err
}

// newTestServer wires a minimal echo app the way the router does: validator,
// central error handler, auth routes, and a role-gated manager route.
func newTestServer(t *testing.T, svc ports.AuthService) (*echo.Echo, *token.Manager) {
	t.Helper()
	tokens, err := token.NewManager("error-handler-test-secret")
	if err != nil {
		t.Fatalf("new token manager: %v", err)
	}

	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(zerolog.Nop())

	h := handler.NewAuthHandler(svc, false)
	e.POST("/api/auth/client/register", h.Register)
	e.POST("/api/auth/client/login", h.LoginClient)

	authed := middleware.Auth(tokens)
	manager := e.Group("/api/manager", authed, middleware.RequireRole(domain.RoleManager))
	manager.GET("/bookings", func(c echo.Context) error {
		return c.JSON(http.StatusOK, []string{})
	})

	return e, tokens
}

func postJSON(e *echo.Echo, target, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, target, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func TestErrorHandler_ValidationDetails(t *testing.T) {
	e, _ := newTestServer(t, &fixedAuthService{})

	rec := postJSON(e, "/api/auth/client/login", `{"email":"not-an-email","password":"ab"}`)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}

	var resp struct {
		Error   string `json:"error"`
		Details []struct {
			Field   string `json:"field"`
			Message string `json:"message"`
		} `json:"details"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp.Error != "Validation failed" {
		t.Fatalf("unexpected error message %q", resp.Error)
	}
	if len(resp.Details) < 2 {
		t.Fatalf("expected at least 2 field violations, got %+v", resp.Details)
	}
}

func TestErrorHandler_DuplicateEmail(t *testing.T) {
	e, _ := newTestServer(t, &fixedAuthService{err: domain.ErrEmailTaken})

	body := `{"email":"alice@example.com","password":"secret1","firstName":"Alice","lastName":"Ng"}`
	rec := postJSON(e, "/api/auth/client/register", body)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "Email already registered") {
		t.Fatalf("unexpected body: %s", rec.Body.String())
	}
}

func TestErrorHandler_InvalidCredentials(t *testing.T) {
	e, _ := newTestServer(t, &fixedAuthService{err: domain.ErrInvalidCredentials})

	rec := postJSON(e, "/api/auth/client/login", `{"email":"alice@example.com","password":"wrongpw"}`)
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "Invalid email or password") {
		t.Fatalf("unexpected body: %s", rec.Body.String())
	}
}

func TestErrorHandler_RoleGatePrecedence(t *testing.T) {
	e, tokens := newTestServer(t, &fixedAuthService{})

	// No credentials at all: the auth gate answers first.
	req := httptest.NewRequest(http.MethodGet, "/api/manager/bookings", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 without token, got %d", rec.Code)
	}

	// A valid CLIENT token on a manager route: authenticated but forbidden.
	clientToken, err := tokens.Issue("u1", "alice@example.com", domain.RoleClient)
	if err != nil {
		t.Fatalf("issue token: %v", err)
	}
	req = httptest.NewRequest(http.MethodGet, "/api/manager/bookings", nil)
	req.Header.Set("Authorization", "Bearer "+clientToken)
	rec = httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	if rec.Code != http.StatusForbidden {
		t.Fatalf("expected 403 with client token, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "Manager access required") {
		t.Fatalf("unexpected body: %s", rec.Body.String())
	}

	// A manager token passes both gates.
	managerToken, err := tokens.Issue("m1", "zee@example.com", domain.RoleManager)
	if err != nil {
		t.Fatalf("issue token: %v", err)
	}
	req = httptest.NewRequest(http.MethodGet, "/api/manager/bookings", nil)
	req.Header.Set("Authorization", "Bearer "+managerToken)
	rec = httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 with manager token, got %d", rec.Code)
	}
}

func TestErrorHandler_UnknownErrorIsOpaque(t *testing.T) {
	e := echo.New()
	e.HTTPErrorHandler = NewHTTPErrorHandler(zerolog.Nop())
	e.GET("/boom", func(c echo.Context) error {
		return context.DeadlineExceeded
	})

	req := httptest.NewRequest(http.MethodGet, "/boom", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "Internal server error") {
		t.Fatalf("unexpected body: %s", rec.Body.String())
	}
	if strings.Contains(rec.Body.String(), "deadline") {
		t.Fatalf("internal error detail leaked: %s", rec.Body.String())
	}
}
