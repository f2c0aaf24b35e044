package handlers

import (
	"net/http"

	"github.com/vidstream/vidstream/internal/application/history"
	"github.com/vidstream/vidstream/internal/transport/http/dto"
	"github.com/vidstream/vidstream/internal/transport/http/response"
)

type HistoryHandler struct {
	svc *history.Service
}

func NewHistoryHandler(svc *history.Service) *HistoryHandler {
	return &HistoryHandler{svc: svc}
}

func (h *HistoryHandler) List(w http.ResponseWriter, r *http.Request) {
	actorID, err := actorUUID(r)
	if err != nil {
		response.Err(w, err)
		return
	}
	items, err := h.svc.List(r.Context(), actorID)
	if err != nil {
		response.Err(w, err)
		return
	}
	out := make([]dto.WatchedVideoResp, 0, len(items))
	for _, it := range items {
		out = append(out, dto.ToWatchedVideoResp(it))
	}
	response.Data(w, http.StatusOK, out, "watch history fetched")
}

func (h *HistoryHandler) Remove(w http.ResponseWriter, r *http.Request) {
	actorID, err := actorUUID(r)
	if err != nil {
		response.Err(w, err)
		return
	}
	videoID, err := pathUUID(r, "videoId")
	if err != nil {
		response.Err(w, err)
		return
	}
	if err := h.svc.Remove(r.Context(), actorID, videoID); err != nil {
		response.Err(w, err)
		return
	}
	response.Data(w, http.StatusOK, nil, "video removed from watch history")
}

func (h *HistoryHandler) Clear(w http.ResponseWriter, r *http.Request) {
	actorID, err := actorUUID(r)
	if err != nil {
		response.Err(w, err)
		return
	}
	n, err := h.svc.Clear(r.Context(), actorID)
	if err != nil {
		response.Err(w, err)
		return
	}
	response.Data(w, http.StatusOK, dto.HistoryClearResp{Deleted: n}, "watch history cleared")
}

func (h *HistoryHandler) Preferences(w http.ResponseWriter, r *http.Request) {
	actorID, err := actorUUID(r)
	if err != nil {
		response.Err(w, err)
		return
	}
	prefs, err := h.svc.Preferences(r.Context(), actorID)
	if err != nil {
		response.Err(w, err)
		return
	}
	response.Data(w, http.StatusOK, dto.PreferencesResp{Tags: prefs}, "tag preferences fetched")
}
