package controller

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	ctx "github.com/reelmatch/backend/internal/context"
	"github.com/reelmatch/backend/internal/service"
)

// AuthMiddleware resolves the bearer token to a stable participant identity
// and stores it on the request context. Every /api route requires it;
// anonymous voting is rejected here, before any state is written.
func AuthMiddleware(authService service.AuthService) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
			if authHeader == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "missing authorization header")
			}

			token := strings.TrimPrefix(authHeader, "Bearer ")
			if token == authHeader {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid authorization format")
			}

			user, err := authService.ValidateToken(c.Request().Context(), token)
			if err != nil {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
			}

			c.SetRequest(c.Request().WithContext(ctx.WithUser(c.Request().Context(), user)))
			return next(c)
		}
	}
}
