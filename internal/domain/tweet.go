package domain

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

type Tweet struct {
	ID        uuid.UUID
	OwnerID   uuid.UUID
	Content   string
	CreatedAt time.Time
}

func NewTweet(ownerID uuid.UUID, content string, now time.Time) (*Tweet, error) {
	content = strings.TrimSpace(content)
	if content == "" {
		return nil, ErrValidation("content is required")
	}
	return &Tweet{
		ID:        uuid.New(),
		OwnerID:   ownerID,
		Content:   content,
		CreatedAt: now,
	}, nil
}
