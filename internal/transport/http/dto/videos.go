package dto

import "time"

type OwnerResp struct {
	ID       string `json:"id"`
	UserName string `json:"username"`
	FullName string `json:"fullName"`
	Avatar   string `json:"avatar,omitempty"`
}

// VideoResp is the stable catalog response model.
type VideoResp struct {
	ID          string    `json:"id"`
	Owner       OwnerResp `json:"owner"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	VideoFile   string    `json:"videoFile"`
	Thumbnail   string    `json:"thumbnail"`
	Duration    float64   `json:"duration"`
	Views       int64     `json:"views"`
	Tags        []string  `json:"tags"`
	IsPublished bool      `json:"isPublished"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// VideoDetailResp adds viewer-relative channel state.
type VideoDetailResp struct {
	VideoResp
	SubscribersCount int  `json:"subscribersCount"`
	IsSubscribed     bool `json:"isSubscribed"`
}

// VideoPageResp matches the documented listing shape:
// {"totalVideos":N,"page":1,"limit":10,"videos":[...]}.
type VideoPageResp struct {
	Videos      []VideoResp `json:"videos"`
	Page        int         `json:"page"`
	Limit       int         `json:"limit"`
	TotalVideos int         `json:"totalVideos"`
}

type UpdateVideoReq struct {
	Title       string   `json:"title" validate:"required"`
	Description string   `json:"description" validate:"required"`
	Tags        []string `json:"tags"`
}
