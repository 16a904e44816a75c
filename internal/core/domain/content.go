package domain

import (
	"errors"
	"time"
)

// ContentKind identifies one of the typed content collections.
type ContentKind string

const (
	KindImage ContentKind = "image"
	KindVideo ContentKind = "video"
	KindPoem  ContentKind = "poem"
	KindMusic ContentKind = "music"
)

// Kinds lists every content kind in route registration order.
var Kinds = []ContentKind{KindImage, KindVideo, KindPoem, KindMusic}

// Collection returns the Mongo collection name for the kind.
func (k ContentKind) Collection() string {
	switch k {
	case KindImage:
		return "images"
	case KindVideo:
		return "videos"
	case KindPoem:
		return "poems"
	case KindMusic:
		return "music"
	}
	return string(k)
}

// PayloadField returns the JSON/BSON field that carries the kind's payload
// (base64 blob for media, plain text for poems).
func (k ContentKind) PayloadField() string {
	switch k {
	case KindImage:
		return "image_data"
	case KindVideo:
		return "video_data"
	case KindPoem:
		return "content"
	case KindMusic:
		return "music_data"
	}
	return "data"
}

// ErrContentNotFound covers both "no such record" and "not the owner".
// The two cases are deliberately indistinguishable so record ids cannot be
// probed by non-owners.
var ErrContentNotFound = errors.New("content not found or not owned")

var ErrPayloadTooLarge = errors.New("payload exceeds upload limit")
var ErrStoreUnavailable = errors.New("content store unavailable")

// ContentItem is a single record in one of the content collections. Payload
// holds the kind-specific field (base64 blob or poem text) as an opaque
// string. Author is the poem byline, distinct from UploadedBy.
type ContentItem struct {
	ID          string      `json:"id"`
	Kind        ContentKind `json:"-"`
	Title       string      `json:"title"`
	Description string      `json:"description,omitempty"`
	Author      string      `json:"author,omitempty"`
	Payload     string      `json:"-"`
	Target      string      `json:"target,omitempty"`
	UploadedBy  string      `json:"uploaded_by"`
	UploadedAt  time.Time   `json:"uploaded_at"`
}
