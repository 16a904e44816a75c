package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/shreekara/studio-api/internal/core/domain"
	"github.com/shreekara/studio-api/internal/core/ports"
)

// AuthHandler serves token issuance and the author profile.
type AuthHandler struct {
	authService ports.AuthService
}

func NewAuthHandler(authService ports.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// loginRequest binds the form-encoded credential pair the SPA login posts.
type loginRequest struct {
	Username string `form:"username" json:"username"`
	Password string `form:"password" json:"password"`
}

type tokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

type profileResponse struct {
	Username string `json:"username"`
	Role     string `json:"role"`
}

// Token handles POST /api/auth/token: exchanges a credential pair for a
// bearer token.
//
// @Summary      Issue an access token
// @Tags         auth
// @Accept       x-www-form-urlencoded
// @Produce      json
// @Param        username  formData  string  true  "Author username"
// @Param        password  formData  string  true  "Author password"
// @Success      200       {object}  tokenResponse
// @Failure      401       {object}  errorResponse
// @Router       /api/auth/token [post]
func (h *AuthHandler) Token(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnauthorized, "invalid author credentials")
	}

	token, err := h.authService.Login(c.Request().Context(), req.Username, req.Password)
	if err != nil {
		// One message for every failure mode.
		return domain.ErrInvalidCredentials
	}

	return c.JSON(http.StatusOK, tokenResponse{
		AccessToken: token,
		TokenType:   "bearer",
	})
}

// Profile handles GET /api/user/profile for the authenticated author.
//
// @Summary      Current author profile
// @Tags         auth
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  profileResponse
// @Failure      401  {object}  errorResponse
// @Router       /api/user/profile [get]
func (h *AuthHandler) Profile(c echo.Context) error {
	username, err := currentUsername(c)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, profileResponse{
		Username: username,
		Role:     domain.RoleAuthor,
	})
}
