package handlers

import (
	"net/http"

	"github.com/vidstream/vidstream/internal/application/channel"
	"github.com/vidstream/vidstream/internal/transport/http/dto"
	"github.com/vidstream/vidstream/internal/transport/http/response"
)

type ChannelHandler struct {
	svc *channel.Service
}

func NewChannelHandler(svc *channel.Service) *ChannelHandler {
	return &ChannelHandler{svc: svc}
}

// Stats reports the authenticated user's own channel aggregates.
func (h *ChannelHandler) Stats(w http.ResponseWriter, r *http.Request) {
	actorID, err := actorUUID(r)
	if err != nil {
		response.Err(w, err)
		return
	}
	st, err := h.svc.Stats(r.Context(), actorID)
	if err != nil {
		response.Err(w, err)
		return
	}
	response.Data(w, http.StatusOK, dto.ToChannelStatsResp(st), "channel stats fetched")
}
