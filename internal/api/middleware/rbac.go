package middleware

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/photosbyzee/studio-portal/internal/core/domain"
)

// RequireRole gates a route group to exactly one role. There is no role
// hierarchy: a manager hitting a client route is forbidden, and vice versa.
// Must run after Auth.
func RequireRole(role string) echo.MiddlewareFunc {
	message := fmt.Sprintf("%s access required", roleLabel(role))
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			got, _ := c.Get(CtxRole).(string)
			if got != role {
				return echo.NewHTTPError(http.StatusForbidden, message)
			}
			return next(c)
		}
	}
}

func roleLabel(role string) string {
	switch role {
	case domain.RoleManager:
		return "Manager"
	case domain.RoleClient:
		return "Client"
	default:
		return role
	}
}
