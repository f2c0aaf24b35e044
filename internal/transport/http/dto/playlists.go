package dto

import "time"

type CreatePlaylistReq struct {
	Name        string `json:"name" validate:"required"`
	Description string `json:"description" validate:"required"`
}

type UpdatePlaylistReq struct {
	Name        string `json:"name" validate:"required"`
	Description string `json:"description" validate:"required"`
}

type PlaylistResp struct {
	ID          string    `json:"id"`
	OwnerID     string    `json:"ownerId"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	VideoIDs    []string  `json:"videoIds"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

type PlaylistSummaryResp struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	VideoCount  int       `json:"videoCount"`
	Thumbnail   *string   `json:"thumbnail,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
}

type PlaylistDetailResp struct {
	PlaylistResp
	Owner  OwnerResp   `json:"owner"`
	Videos []VideoResp `json:"videos"`
}

type CreateTweetReq struct {
	Content string `json:"content" validate:"required"`
}

type UpdateTweetReq struct {
	Content string `json:"content" validate:"required"`
}

type TweetResp struct {
	ID        string    `json:"id"`
	OwnerID   string    `json:"ownerId"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"createdAt"`
}

type ChannelStatsResp struct {
	ChannelID        string `json:"channelId"`
	TotalViews       int64  `json:"totalViews"`
	TotalVideos      int    `json:"totalVideos"`
	SubscribersCount int    `json:"subscribersCount"`
	TweetsCount      int    `json:"tweetsCount"`
	PlaylistsCount   int    `json:"playlistsCount"`
	TotalVideoLikes  int    `json:"totalVideoLikes"`
	TotalTweetLikes  int    `json:"totalTweetLikes"`
}
