package handler

import "time"

// errorResponse is the standard error envelope returned on all 4xx/5xx responses.
type errorResponse struct {
	Error string `json:"error"`
}

// Upload request bodies, one per content kind. The payload fields carry
// opaque strings (base64 for media, plain text for poems); the configured
// size cap is enforced by the content service, not here.

type imageUploadRequest struct {
	Title       string `json:"title"       validate:"required,max=200"`
	Description string `json:"description" validate:"max=2000"`
	ImageData   string `json:"image_data"  validate:"required"`
	Target      string `json:"target"      validate:"max=100"`
}

type videoUploadRequest struct {
	Title       string `json:"title"       validate:"required,max=200"`
	Description string `json:"description" validate:"max=2000"`
	VideoData   string `json:"video_data"  validate:"required"`
	Target      string `json:"target"      validate:"max=100"`
}

type poemUploadRequest struct {
	Title   string `json:"title"   validate:"required,max=200"`
	Content string `json:"content" validate:"required"`
	Author  string `json:"author"  validate:"required,max=200"`
	Target  string `json:"target"  validate:"max=100"`
}

type musicUploadRequest struct {
	Title       string `json:"title"       validate:"required,max=200"`
	Description string `json:"description" validate:"max=2000"`
	MusicData   string `json:"music_data"  validate:"required"`
	Target      string `json:"target"      validate:"max=100"`
}

// uploadResponse confirms an upload: {"message": ..., "<kind>_id": ...}.
// The id key is kind-specific, so the response is built as a map.
type uploadResponse map[string]string

// contentItemResponse is one public list entry. The payload appears under
// its kind-specific key (image_data, video_data, content, music_data), so
// the fixed fields live here and the payload is added per item.
type contentItemResponse map[string]any

// deleteResponse confirms an owner-scoped deletion.
type deleteResponse struct {
	Message string `json:"message"`
}

// activityEntryResponse is one row of GET /api/user/activity.
type activityEntryResponse struct {
	Action     string    `json:"action"`
	Kind       string    `json:"kind"`
	ContentID  string    `json:"content_id"`
	Title      string    `json:"title,omitempty"`
	OccurredAt time.Time `json:"occurred_at"`
}
