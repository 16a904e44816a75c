package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/shreekara/studio-api/internal/core/domain"
	"github.com/shreekara/studio-api/internal/core/ports"
)

// ActivityDispatcher is the interface the handler uses to record activity
// off the request path.
type ActivityDispatcher interface {
	Enqueue(entry domain.ActivityEntry)
}

// ContentHandler serves the upload, public list, and owner-scoped delete
// endpoints for every content kind.
type ContentHandler struct {
	service    ports.ContentService
	dispatcher ActivityDispatcher // nil disables activity recording
}

func NewContentHandler(service ports.ContentService, dispatcher ActivityDispatcher) *ContentHandler {
	return &ContentHandler{service: service, dispatcher: dispatcher}
}

// UploadImage handles POST /api/upload/image.
//
// @Summary      Upload an image
// @Tags         content
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      imageUploadRequest  true  "Image upload"
// @Success      200   {object}  uploadResponse
// @Failure      401   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Router       /api/upload/image [post]
func (h *ContentHandler) UploadImage(c echo.Context) error {
	var req imageUploadRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}
	return h.upload(c, toImageInput(req), "Image uploaded successfully")
}

// UploadVideo handles POST /api/upload/video.
//
// @Summary      Upload a video
// @Tags         content
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      videoUploadRequest  true  "Video upload"
// @Success      200   {object}  uploadResponse
// @Failure      401   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Router       /api/upload/video [post]
func (h *ContentHandler) UploadVideo(c echo.Context) error {
	var req videoUploadRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}
	return h.upload(c, toVideoInput(req), "Video uploaded successfully")
}

// UploadPoem handles POST /api/upload/poem.
//
// @Summary      Upload a poem
// @Tags         content
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      poemUploadRequest  true  "Poem upload"
// @Success      200   {object}  uploadResponse
// @Failure      401   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Router       /api/upload/poem [post]
func (h *ContentHandler) UploadPoem(c echo.Context) error {
	var req poemUploadRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}
	return h.upload(c, toPoemInput(req), "Poem uploaded successfully")
}

// UploadMusic handles POST /api/upload/music.
//
// @Summary      Upload a music track
// @Tags         content
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      musicUploadRequest  true  "Music upload"
// @Success      200   {object}  uploadResponse
// @Failure      401   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Router       /api/upload/music [post]
func (h *ContentHandler) UploadMusic(c echo.Context) error {
	var req musicUploadRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}
	return h.upload(c, toMusicInput(req), "Music uploaded successfully")
}

// List returns the public list endpoint for kind. No auth: anyone may read.
//
// @Summary      List content of one kind
// @Tags         content
// @Produce      json
// @Success      200  {array}  contentItemResponse
// @Router       /api/{kind}s [get]
func (h *ContentHandler) List(kind domain.ContentKind) echo.HandlerFunc {
	return func(c echo.Context) error {
		items, err := h.service.List(c.Request().Context(), kind)
		if err != nil {
			return err
		}
		return c.JSON(http.StatusOK, toListResponse(items))
	}
}

// Delete returns the owner-scoped delete endpoint for kind.
//
// @Summary      Delete an owned content record
// @Tags         content
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Record id"
// @Success      200  {object}  deleteResponse
// @Failure      401  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /api/{kind}s/{id} [delete]
func (h *ContentHandler) Delete(kind domain.ContentKind) echo.HandlerFunc {
	return func(c echo.Context) error {
		username, err := currentUsername(c)
		if err != nil {
			return err
		}

		id := c.Param("id")
		if err := h.service.Delete(c.Request().Context(), kind, id, username); err != nil {
			return err
		}

		h.record(domain.ActivityEntry{
			Username:   username,
			Action:     domain.ActionDelete,
			Kind:       kind,
			ContentID:  id,
			OccurredAt: time.Now().UTC(),
		})

		return c.JSON(http.StatusOK, deleteResponse{Message: "Deleted successfully"})
	}
}

func (h *ContentHandler) upload(c echo.Context, in ports.UploadInput, message string) error {
	username, err := currentUsername(c)
	if err != nil {
		return err
	}

	id, err := h.service.Upload(c.Request().Context(), in, username)
	if err != nil {
		return err
	}

	h.record(domain.ActivityEntry{
		Username:   username,
		Action:     domain.ActionUpload,
		Kind:       in.Kind,
		ContentID:  id,
		Title:      in.Title,
		OccurredAt: time.Now().UTC(),
	})

	return c.JSON(http.StatusOK, uploadResponse{
		"message":               message,
		string(in.Kind) + "_id": id,
	})
}

func (h *ContentHandler) record(entry domain.ActivityEntry) {
	if h.dispatcher != nil {
		h.dispatcher.Enqueue(entry)
	}
}

func bindAndValidate(c echo.Context, req any) error {
	if err := c.Bind(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}
	return nil
}
