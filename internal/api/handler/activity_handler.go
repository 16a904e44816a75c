package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/shreekara/studio-api/internal/core/ports"
)

// ActivityHandler serves the authenticated author's audit trail.
type ActivityHandler struct {
	service ports.ActivityService
}

func NewActivityHandler(service ports.ActivityService) *ActivityHandler {
	return &ActivityHandler{service: service}
}

// Recent handles GET /api/user/activity.
//
// @Summary      Recent activity of the current author
// @Tags         auth
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   activityEntryResponse
// @Failure      401  {object}  errorResponse
// @Router       /api/user/activity [get]
func (h *ActivityHandler) Recent(c echo.Context) error {
	username, err := currentUsername(c)
	if err != nil {
		return err
	}

	entries, err := h.service.Recent(c.Request().Context(), username)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toActivityResponse(entries))
}
