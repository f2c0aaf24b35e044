package dto

import (
	"github.com/vidstream/vidstream/internal/domain"
)

func ToOwnerResp(o domain.OwnerSummary) OwnerResp {
	return OwnerResp{
		ID:       o.ID.String(),
		UserName: o.UserName,
		FullName: o.FullName,
		Avatar:   o.Avatar,
	}
}

func ToVideoResp(v domain.VideoWithOwner) VideoResp {
	return VideoResp{
		ID:          v.ID.String(),
		Owner:       ToOwnerResp(v.Owner),
		Title:       v.Title,
		Description: v.Description,
		VideoFile:   v.MediaURL,
		Thumbnail:   v.ThumbnailURL,
		Duration:    v.Duration,
		Views:       v.Views,
		Tags:        v.Tags,
		IsPublished: v.IsPublished,
		CreatedAt:   v.CreatedAt,
		UpdatedAt:   v.UpdatedAt,
	}
}

func ToVideoDetailResp(v *domain.VideoDetail) VideoDetailResp {
	return VideoDetailResp{
		VideoResp:        ToVideoResp(v.VideoWithOwner),
		SubscribersCount: v.SubscriberCount,
		IsSubscribed:     v.IsSubscribed,
	}
}

func ToVideoResps(items []domain.VideoWithOwner) []VideoResp {
	out := make([]VideoResp, 0, len(items))
	for _, it := range items {
		out = append(out, ToVideoResp(it))
	}
	return out
}

func ToChannelResp(c domain.ChannelInfo) ChannelResp {
	return ChannelResp{
		OwnerResp:        ToOwnerResp(c.OwnerSummary),
		SubscribersCount: c.SubscriberCount,
		IsSubscribed:     c.IsSubscribed,
	}
}

func ToWatchedVideoResp(v domain.WatchedVideo) WatchedVideoResp {
	return WatchedVideoResp{
		VideoResp: ToVideoResp(v.VideoWithOwner),
		WatchedAt: v.WatchedAt,
	}
}

func ToPlaylistResp(p *domain.Playlist) PlaylistResp {
	ids := make([]string, 0, len(p.VideoIDs))
	for _, id := range p.VideoIDs {
		ids = append(ids, id.String())
	}
	return PlaylistResp{
		ID:          p.ID.String(),
		OwnerID:     p.OwnerID.String(),
		Name:        p.Name,
		Description: p.Description,
		VideoIDs:    ids,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}

func ToPlaylistSummaryResp(p domain.PlaylistSummary) PlaylistSummaryResp {
	return PlaylistSummaryResp{
		ID:          p.ID.String(),
		Name:        p.Name,
		Description: p.Description,
		VideoCount:  p.VideoCount,
		Thumbnail:   p.Thumbnail,
		CreatedAt:   p.CreatedAt,
	}
}

func ToPlaylistDetailResp(p *domain.PlaylistDetail) PlaylistDetailResp {
	return PlaylistDetailResp{
		PlaylistResp: ToPlaylistResp(&p.Playlist),
		Owner:        ToOwnerResp(p.Owner),
		Videos:       ToVideoResps(p.Videos),
	}
}

func ToTweetResp(t *domain.Tweet) TweetResp {
	return TweetResp{
		ID:        t.ID.String(),
		OwnerID:   t.OwnerID.String(),
		Content:   t.Content,
		CreatedAt: t.CreatedAt,
	}
}

func ToChannelStatsResp(s *domain.ChannelStats) ChannelStatsResp {
	return ChannelStatsResp{
		ChannelID:        s.ChannelID.String(),
		TotalViews:       s.TotalViews,
		TotalVideos:      s.TotalVideos,
		SubscribersCount: s.SubscribersCount,
		TweetsCount:      s.TweetsCount,
		PlaylistsCount:   s.PlaylistsCount,
		TotalVideoLikes:  s.TotalVideoLikes,
		TotalTweetLikes:  s.TotalTweetLikes,
	}
}
