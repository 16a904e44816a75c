package ports

import (
	"context"

	"github.com/shreekara/studio-api/internal/core/domain"
)

// ActivityRepository persists and reads the audit trail collection.
type ActivityRepository interface {
	Insert(ctx context.Context, entry *domain.ActivityEntry) error
	// ListByUsername returns the author's entries newest first, capped at limit.
	ListByUsername(ctx context.Context, username string, limit int) ([]*domain.ActivityEntry, error)
}

// ActivityService records and reads per-author activity.
type ActivityService interface {
	Record(ctx context.Context, entry domain.ActivityEntry) error
	Recent(ctx context.Context, username string) ([]*domain.ActivityEntry, error)
}
