package engagement

import (
	"context"

	"github.com/google/uuid"

	"github.com/vidstream/vidstream/internal/domain"
)

func (s *Service) LikedVideos(ctx context.Context, actorID uuid.UUID) ([]domain.VideoWithOwner, error) {
	return s.repo.ListLikedVideos(ctx, actorID)
}

func (s *Service) ChannelSubscribers(ctx context.Context, channelID, viewerID uuid.UUID) ([]domain.ChannelInfo, error) {
	return s.repo.ListChannelSubscribers(ctx, channelID, viewerID)
}

func (s *Service) SubscribedChannels(ctx context.Context, subscriberID uuid.UUID) ([]domain.ChannelInfo, error) {
	return s.repo.ListSubscribedChannels(ctx, subscriberID)
}
