package handlers

import (
	"net/http"

	"github.com/vidstream/vidstream/internal/application/engagement"
	"github.com/vidstream/vidstream/internal/domain"
	"github.com/vidstream/vidstream/internal/transport/http/dto"
	"github.com/vidstream/vidstream/internal/transport/http/response"
)

type EngagementHandler struct {
	svc *engagement.Service
}

func NewEngagementHandler(svc *engagement.Service) *EngagementHandler {
	return &EngagementHandler{svc: svc}
}

// ToggleLike flips the like for one target. The route carries the kind so a
// single handler serves videos, tweets and comments.
func (h *EngagementHandler) ToggleLike(kind domain.LikeKind) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		actorID, err := actorUUID(r)
		if err != nil {
			response.Err(w, err)
			return
		}
		targetID, err := pathUUID(r, "targetId")
		if err != nil {
			response.Err(w, err)
			return
		}
		out, err := h.svc.ToggleLike(r.Context(), kind, targetID, actorID)
		if err != nil {
			response.Err(w, err)
			return
		}
		msg := "like added"
		if out.Removed {
			msg = "like removed"
		}
		response.Data(w, http.StatusOK, dto.LikeToggleResp{IsLiked: !out.Removed}, msg)
	}
}

func (h *EngagementHandler) LikeStatus(kind domain.LikeKind) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		targetID, err := pathUUID(r, "targetId")
		if err != nil {
			response.Err(w, err)
			return
		}
		viewerID := viewerUUID(r)

		st, err := h.svc.LikeStatus(r.Context(), kind, targetID, viewerID)
		if err != nil {
			response.Err(w, err)
			return
		}
		response.Data(w, http.StatusOK, dto.LikeStatusResp{
			LikesCount: st.Count,
			IsLiked:    st.Engaged,
		}, "like status fetched")
	}
}

func (h *EngagementHandler) LikedVideos(w http.ResponseWriter, r *http.Request) {
	actorID, err := actorUUID(r)
	if err != nil {
		response.Err(w, err)
		return
	}
	items, err := h.svc.LikedVideos(r.Context(), actorID)
	if err != nil {
		response.Err(w, err)
		return
	}
	response.Data(w, http.StatusOK, dto.ToVideoResps(items), "liked videos fetched")
}

func (h *EngagementHandler) ToggleSubscription(w http.ResponseWriter, r *http.Request) {
	actorID, err := actorUUID(r)
	if err != nil {
		response.Err(w, err)
		return
	}
	channelID, err := pathUUID(r, "channelId")
	if err != nil {
		response.Err(w, err)
		return
	}
	out, err := h.svc.ToggleSubscription(r.Context(), actorID, channelID)
	if err != nil {
		response.Err(w, err)
		return
	}
	msg := "subscribed"
	if out.Removed {
		msg = "unsubscribed"
	}
	response.Data(w, http.StatusOK, dto.SubscriptionToggleResp{IsSubscribed: !out.Removed}, msg)
}

func (h *EngagementHandler) SubscriptionStatus(w http.ResponseWriter, r *http.Request) {
	channelID, err := pathUUID(r, "channelId")
	if err != nil {
		response.Err(w, err)
		return
	}
	viewerID := viewerUUID(r)

	st, err := h.svc.SubscriptionStatus(r.Context(), channelID, viewerID)
	if err != nil {
		response.Err(w, err)
		return
	}
	response.Data(w, http.StatusOK, dto.SubscriptionStatusResp{
		SubscribersCount: st.Count,
		IsSubscribed:     st.Engaged,
	}, "subscription status fetched")
}

func (h *EngagementHandler) ChannelSubscribers(w http.ResponseWriter, r *http.Request) {
	channelID, err := pathUUID(r, "channelId")
	if err != nil {
		response.Err(w, err)
		return
	}
	viewerID := viewerUUID(r)

	items, err := h.svc.ChannelSubscribers(r.Context(), channelID, viewerID)
	if err != nil {
		response.Err(w, err)
		return
	}
	out := make([]dto.ChannelResp, 0, len(items))
	for _, it := range items {
		out = append(out, dto.ToChannelResp(it))
	}
	response.Data(w, http.StatusOK, out, "subscribers fetched")
}

func (h *EngagementHandler) SubscribedChannels(w http.ResponseWriter, r *http.Request) {
	actorID, err := actorUUID(r)
	if err != nil {
		response.Err(w, err)
		return
	}
	items, err := h.svc.SubscribedChannels(r.Context(), actorID)
	if err != nil {
		response.Err(w, err)
		return
	}
	out := make([]dto.ChannelResp, 0, len(items))
	for _, it := range items {
		out = append(out, dto.ToChannelResp(it))
	}
	response.Data(w, http.StatusOK, out, "subscribed channels fetched")
}
