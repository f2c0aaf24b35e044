package dto

import "time"

type LikeStatusResp struct {
	LikesCount int  `json:"likesCount"`
	IsLiked    bool `json:"isLiked"`
}

type LikeToggleResp struct {
	IsLiked bool `json:"isLiked"`
}

type SubscriptionStatusResp struct {
	SubscribersCount int  `json:"subscribersCount"`
	IsSubscribed     bool `json:"isSubscribed"`
}

type SubscriptionToggleResp struct {
	IsSubscribed bool `json:"isSubscribed"`
}

type ChannelResp struct {
	OwnerResp
	SubscribersCount int  `json:"subscribersCount"`
	IsSubscribed     bool `json:"isSubscribed"`
}

type WatchedVideoResp struct {
	VideoResp
	WatchedAt time.Time `json:"watchedAt"`
}

type HistoryClearResp struct {
	Deleted int `json:"deleted"`
}

type PreferencesResp struct {
	Tags map[string]float64 `json:"tags"`
}
