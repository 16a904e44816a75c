package ports

import (
	"context"

	"github.com/shreekara/studio-api/internal/core/domain"
)

// ContentRepository defines persistence for the typed content collections.
// One implementation serves all kinds; the kind selects the collection.
type ContentRepository interface {
	// Insert persists a fully stamped item and returns its generated id.
	Insert(ctx context.Context, item *domain.ContentItem) (string, error)
	// List returns every item of the kind, most recently uploaded first.
	List(ctx context.Context, kind domain.ContentKind) ([]*domain.ContentItem, error)
	// DeleteOwned removes the record only if it exists AND its uploaded_by
	// equals requester, as a single conditional store operation. Either
	// failure yields domain.ErrContentNotFound.
	DeleteOwned(ctx context.Context, kind domain.ContentKind, id, requester string) error
}
