package ports

import (
	"context"

	"github.com/shreekara/studio-api/internal/core/domain"
)

// UploadInput carries a new content record from the transport layer.
// Payload is the kind-specific field (base64 blob or poem text), accepted as
// an opaque string up to the configured size limit.
type UploadInput struct {
	Kind        domain.ContentKind
	Title       string
	Description string
	Author      string // poem byline only
	Payload     string
	Target      string
}

// ContentService defines the upload/list/delete use cases.
type ContentService interface {
	// Upload stamps the record with uploader identity and upload time,
	// persists it, and returns the generated id.
	Upload(ctx context.Context, in UploadInput, uploader string) (string, error)
	// List returns the kind's records newest first. A backing store failure
	// degrades to an empty slice instead of failing the request.
	List(ctx context.Context, kind domain.ContentKind) ([]*domain.ContentItem, error)
	// Delete removes the record if requester owns it; otherwise
	// domain.ErrContentNotFound.
	Delete(ctx context.Context, kind domain.ContentKind, id, requester string) error
}
