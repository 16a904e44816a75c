package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// currentUsername extracts the identity injected by the Auth middleware. An
// empty value means the middleware did not run on this route; fail closed
// with 401 rather than act on behalf of nobody.
func currentUsername(c echo.Context) (string, error) {
	username, _ := c.Get("username").(string)
	if username == "" {
		return "", echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}
	return username, nil
}
