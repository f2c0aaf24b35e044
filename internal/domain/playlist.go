package domain

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

type Playlist struct {
	ID          uuid.UUID
	OwnerID     uuid.UUID
	Name        string
	Description string
	VideoIDs    []uuid.UUID
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// PlaylistSummary is the listing read model: video count plus a thumbnail
// derived from the first video in order (empty when the playlist has none or
// the video is gone).
type PlaylistSummary struct {
	ID          uuid.UUID
	Name        string
	Description string
	VideoCount  int
	Thumbnail   *string
	CreatedAt   time.Time
}

type PlaylistDetail struct {
	Playlist
	Owner  OwnerSummary
	Videos []VideoWithOwner
}

func NewPlaylist(ownerID uuid.UUID, name, description string, now time.Time) (*Playlist, error) {
	name = strings.TrimSpace(name)
	description = strings.TrimSpace(description)
	if name == "" || description == "" {
		return nil, ErrValidation("name and description are required")
	}
	return &Playlist{
		ID:          uuid.New(),
		OwnerID:     ownerID,
		Name:        name,
		Description: description,
		VideoIDs:    []uuid.UUID{},
		CreatedAt:   now,
		UpdatedAt:   now,
	}, nil
}
