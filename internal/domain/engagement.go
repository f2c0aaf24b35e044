package domain

import (
	"time"

	"github.com/google/uuid"
)

// LikeKind tags the polymorphic like target. One ledger schema, kind-scoped
// uniqueness: at most one record per (kind, target, actor).
type LikeKind string

const (
	LikeVideo   LikeKind = "video"
	LikeTweet   LikeKind = "tweet"
	LikeComment LikeKind = "comment"
)

func (k LikeKind) Valid() bool {
	switch k {
	case LikeVideo, LikeTweet, LikeComment:
		return true
	}
	return false
}

type LikeRecord struct {
	ID        uuid.UUID
	Kind      LikeKind
	TargetID  uuid.UUID
	LikedBy   uuid.UUID
	CreatedAt time.Time
}

type SubscriptionRecord struct {
	ID           uuid.UUID
	SubscriberID uuid.UUID
	ChannelID    uuid.UUID
	CreatedAt    time.Time
}

// ToggleOutcome reports which side of a toggle ran. Created is nil when the
// call removed an existing record.
type ToggleOutcome struct {
	Removed bool
	Created any
}

// EngagementStatus is the read side of the ledger for one target.
type EngagementStatus struct {
	Count   int
	Engaged bool
}

// ChannelInfo is a channel joined with its derived subscriber state.
type ChannelInfo struct {
	OwnerSummary
	SubscriberCount int
	IsSubscribed    bool
}
