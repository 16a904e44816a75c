package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/shreekara/studio-api/internal/core/domain"
	"github.com/shreekara/studio-api/internal/core/ports"
)

const recentActivityLimit = 50

type activityService struct {
	repo ports.ActivityRepository
	log  zerolog.Logger
}

// NewActivityService returns an ActivityService writing to the audit trail
// collection.
func NewActivityService(repo ports.ActivityRepository, log zerolog.Logger) ports.ActivityService {
	return &activityService{repo: repo, log: log}
}

// Record persists one audit entry. Callers run this off the request path;
// failures are surfaced so the dispatcher can log them.
func (s *activityService) Record(ctx context.Context, entry domain.ActivityEntry) error {
	if err := s.repo.Insert(ctx, &entry); err != nil {
		return fmt.Errorf("record activity: %w", err)
	}
	s.log.Debug().
		Str("username", entry.Username).
		Str("action", string(entry.Action)).
		Str("kind", string(entry.Kind)).
		Msg("activity recorded")
	return nil
}

// Recent returns the author's newest entries.
func (s *activityService) Recent(ctx context.Context, username string) ([]*domain.ActivityEntry, error) {
	entries, err := s.repo.ListByUsername(ctx, username, recentActivityLimit)
	if err != nil {
		return nil, fmt.Errorf("recent activity: %w", err)
	}
	return entries, nil
}
