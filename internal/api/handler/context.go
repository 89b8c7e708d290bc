package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/photosbyzee/studio-portal/internal/api/middleware"
)

// authUserID extracts the user id injected by the Auth middleware. An empty
// id means the middleware did not run on this route; fail closed with 401.
func authUserID(c echo.Context) (string, error) {
	id, _ := c.Get(middleware.CtxUserID).(string)
	if id == "" {
		return "", echo.NewHTTPError(http.StatusUnauthorized, "Authentication required")
	}
	return id, nil
}
