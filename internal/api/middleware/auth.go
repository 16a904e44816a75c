package middleware

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/shreekara/studio-api/internal/core/ports"
)

// unauthorizedMsg is the single message for every auth failure: missing or
// malformed header, bad or expired token, and token whose author no longer
// exists. Distinguishing them would leak which accounts exist.
const unauthorizedMsg = "could not validate credentials"

// Auth extracts the bearer token, verifies it, resolves the subject against
// the credential store, and injects the author's username into the request
// context. Handlers behind it can trust c.Get("username").
func Auth(tokens ports.TokenService, authors ports.AuthorRepository) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, unauthorizedMsg)
			}

			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
				return echo.NewHTTPError(http.StatusUnauthorized, unauthorizedMsg)
			}

			subject, err := tokens.Verify(parts[1])
			if err != nil {
				return echo.NewHTTPError(http.StatusUnauthorized, unauthorizedMsg)
			}

			author, err := authors.FindByUsername(c.Request().Context(), subject)
			if err != nil {
				// "token valid but author gone" reads exactly like
				// "never authenticated".
				return echo.NewHTTPError(http.StatusUnauthorized, unauthorizedMsg)
			}

			c.Set("username", author.Username)
			return next(c)
		}
	}
}
