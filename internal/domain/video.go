package domain

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

type Video struct {
	ID           uuid.UUID
	OwnerID      uuid.UUID
	Title        string
	Description  string
	MediaURL     string
	ThumbnailURL string
	Duration     float64
	Views        int64
	Tags         []string
	IsPublished  bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// OwnerSummary is the denormalized slice of a user joined onto read models.
type OwnerSummary struct {
	ID       uuid.UUID
	UserName string
	FullName string
	Avatar   string
}

// VideoWithOwner is a catalog row joined with its owner summary.
type VideoWithOwner struct {
	Video
	Owner OwnerSummary
}

// VideoDetail additionally carries channel engagement relative to the viewer.
type VideoDetail struct {
	VideoWithOwner
	SubscriberCount int
	IsSubscribed    bool
}

func NewVideo(ownerID uuid.UUID, title, description, mediaURL, thumbnailURL string, duration float64, tags []string, now time.Time) (*Video, error) {
	title = strings.TrimSpace(title)
	description = strings.TrimSpace(description)
	if title == "" || description == "" {
		return nil, ErrValidation("title and description are required")
	}
	tags = NormalizeTags(tags)
	if len(tags) == 0 {
		return nil, ErrValidation("at least one tag is required")
	}
	return &Video{
		ID:           uuid.New(),
		OwnerID:      ownerID,
		Title:        title,
		Description:  description,
		MediaURL:     mediaURL,
		ThumbnailURL: thumbnailURL,
		Duration:     duration,
		Tags:         tags,
		IsPublished:  true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}, nil
}

// NormalizeTags trims, lowercases and dedupes while preserving order.
func NormalizeTags(tags []string) []string {
	seen := make(map[string]struct{}, len(tags))
	out := make([]string, 0, len(tags))
	for _, t := range tags {
		t = strings.ToLower(strings.TrimSpace(t))
		if t == "" {
			continue
		}
		if _, ok := seen[t]; ok {
			continue
		}
		seen[t] = struct{}{}
		out = append(out, t)
	}
	return out
}
