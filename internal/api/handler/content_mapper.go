package handler

import (
	"github.com/shreekara/studio-api/internal/core/domain"
	"github.com/shreekara/studio-api/internal/core/ports"
)

// --- Request → Service input ---

func toImageInput(r imageUploadRequest) ports.UploadInput {
	return ports.UploadInput{
		Kind:        domain.KindImage,
		Title:       r.Title,
		Description: r.Description,
		Payload:     r.ImageData,
		Target:      r.Target,
	}
}

func toVideoInput(r videoUploadRequest) ports.UploadInput {
	return ports.UploadInput{
		Kind:        domain.KindVideo,
		Title:       r.Title,
		Description: r.Description,
		Payload:     r.VideoData,
		Target:      r.Target,
	}
}

func toPoemInput(r poemUploadRequest) ports.UploadInput {
	return ports.UploadInput{
		Kind:    domain.KindPoem,
		Title:   r.Title,
		Author:  r.Author,
		Payload: r.Content,
		Target:  r.Target,
	}
}

func toMusicInput(r musicUploadRequest) ports.UploadInput {
	return ports.UploadInput{
		Kind:        domain.KindMusic,
		Title:       r.Title,
		Description: r.Description,
		Payload:     r.MusicData,
		Target:      r.Target,
	}
}

// --- Domain → HTTP response ---

// toItemResponse flattens a record for the public lists: fixed fields plus
// the payload under its kind-specific key, with the string id the store
// boundary already produced.
func toItemResponse(item *domain.ContentItem) contentItemResponse {
	resp := contentItemResponse{
		"_id":         item.ID,
		"title":       item.Title,
		"uploaded_by": item.UploadedBy,
		"uploaded_at": item.UploadedAt,
	}
	if item.Description != "" {
		resp["description"] = item.Description
	}
	if item.Author != "" {
		resp["author"] = item.Author
	}
	if item.Target != "" {
		resp["target"] = item.Target
	}
	resp[item.Kind.PayloadField()] = item.Payload
	return resp
}

func toListResponse(items []*domain.ContentItem) []contentItemResponse {
	out := make([]contentItemResponse, len(items))
	for i, item := range items {
		out[i] = toItemResponse(item)
	}
	return out
}

func toActivityResponse(entries []*domain.ActivityEntry) []activityEntryResponse {
	out := make([]activityEntryResponse, len(entries))
	for i, e := range entries {
		out[i] = activityEntryResponse{
			Action:     string(e.Action),
			Kind:       string(e.Kind),
			ContentID:  e.ContentID,
			Title:      e.Title,
			OccurredAt: e.OccurredAt.UTC(),
		}
	}
	return out
}
