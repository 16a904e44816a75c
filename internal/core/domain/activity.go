package domain

import "time"

// ActivityAction names what an author did to a content record.
type ActivityAction string

const (
	ActionUpload ActivityAction = "upload"
	ActionDelete ActivityAction = "delete"
)

// ActivityEntry is one row of the per-author audit trail. Entries are written
// asynchronously after uploads and deletions; losing one never fails the
// request that produced it.
type ActivityEntry struct {
	Username   string         `json:"username"`
	Action     ActivityAction `json:"action"`
	Kind       ContentKind    `json:"kind"`
	ContentID  string         `json:"content_id"`
	Title      string         `json:"title,omitempty"`
	OccurredAt time.Time      `json:"occurred_at"`
}
