package domain

import "github.com/google/uuid"

// ChannelStats aggregates a channel's catalog and ledger state. Every number
// is recomputed by query, never cached on the user row.
type ChannelStats struct {
	ChannelID        uuid.UUID
	TotalViews       int64
	TotalVideos      int
	SubscribersCount int
	TweetsCount      int
	PlaylistsCount   int
	TotalVideoLikes  int
	TotalTweetLikes  int
}
