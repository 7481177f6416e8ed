package middleware

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"sprint-board-system.com/sprint-board-system/internal/identity"
	model "sprint-board-system.com/sprint-board-system/internal/models"
)

const profileContextKey = "profile"

// Auth resolves the bearer token to a profile and stores it on the
// request context. Requests without a valid token get a 401 envelope.
func Auth(provider identity.Provider) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			header := c.Request().Header.Get("Authorization")
			token := strings.TrimSpace(strings.TrimPrefix(header, "Bearer"))

			profile, err := provider.CurrentUser(c.Request().Context(), token)
			if err != nil {
				return c.JSON(http.StatusUnauthorized, echo.Map{
					"data":  nil,
					"error": "authentication required",
				})
			}

			c.Set(profileContextKey, profile)
			return next(c)
		}
	}
}

// CurrentProfile returns the authenticated profile, or nil outside the
// Auth middleware.
func CurrentProfile(c echo.Context) *model.Profile {
	profile, _ := c.Get(profileContextKey).(*model.Profile)
	return profile
}
