package handlers

import (
	"net/http"

	"github.com/vidstream/vidstream/internal/application/playlist"
	"github.com/vidstream/vidstream/internal/domain"
	"github.com/vidstream/vidstream/internal/transport/http/dto"
	"github.com/vidstream/vidstream/internal/transport/http/response"
	"github.com/vidstream/vidstream/internal/transport/http/validate"
)

type PlaylistsHandler struct {
	svc *playlist.Service
}

func NewPlaylistsHandler(svc *playlist.Service) *PlaylistsHandler {
	return &PlaylistsHandler{svc: svc}
}

func (h *PlaylistsHandler) Create(w http.ResponseWriter, r *http.Request) {
	actorID, err := actorUUID(r)
	if err != nil {
		response.Err(w, err)
		return
	}
	var req dto.CreatePlaylistReq
	if err := validate.DecodeJSON(r, &req); err != nil {
		response.Err(w, domain.ErrValidation("invalid json body"))
		return
	}
	if err := validate.Struct(req); err != nil {
		response.Err(w, err)
		return
	}
	p, err := h.svc.Create(r.Context(), actorID, req.Name, req.Description)
	if err != nil {
		response.Err(w, err)
		return
	}
	response.Data(w, http.StatusCreated, dto.ToPlaylistResp(p), "playlist created")
}

func (h *PlaylistsHandler) ListMine(w http.ResponseWriter, r *http.Request) {
	actorID, err := actorUUID(r)
	if err != nil {
		response.Err(w, err)
		return
	}
	items, err := h.svc.ListByOwner(r.Context(), actorID)
	if err != nil {
		response.Err(w, err)
		return
	}
	out := make([]dto.PlaylistSummaryResp, 0, len(items))
	for _, it := range items {
		out = append(out, dto.ToPlaylistSummaryResp(it))
	}
	response.Data(w, http.StatusOK, out, "playlists fetched")
}

func (h *PlaylistsHandler) Get(w http.ResponseWriter, r *http.Request) {
	playlistID, err := pathUUID(r, "playlistId")
	if err != nil {
		response.Err(w, err)
		return
	}
	p, err := h.svc.Get(r.Context(), playlistID)
	if err != nil {
		response.Err(w, err)
		return
	}
	response.Data(w, http.StatusOK, dto.ToPlaylistDetailResp(p), "playlist fetched")
}

func (h *PlaylistsHandler) AddVideo(w http.ResponseWriter, r *http.Request) {
	actorID, err := actorUUID(r)
	if err != nil {
		response.Err(w, err)
		return
	}
	playlistID, err := pathUUID(r, "playlistId")
	if err != nil {
		response.Err(w, err)
		return
	}
	videoID, err := pathUUID(r, "videoId")
	if err != nil {
		response.Err(w, err)
		return
	}
	p, err := h.svc.AddVideo(r.Context(), playlistID, videoID, actorID)
	if err != nil {
		response.Err(w, err)
		return
	}
	response.Data(w, http.StatusOK, dto.ToPlaylistResp(p), "video added to playlist")
}

func (h *PlaylistsHandler) RemoveVideo(w http.ResponseWriter, r *http.Request) {
	actorID, err := actorUUID(r)
	if err != nil {
		response.Err(w, err)
		return
	}
	playlistID, err := pathUUID(r, "playlistId")
	if err != nil {
		response.Err(w, err)
		return
	}
	videoID, err := pathUUID(r, "videoId")
	if err != nil {
		response.Err(w, err)
		return
	}
	p, err := h.svc.RemoveVideo(r.Context(), playlistID, videoID, actorID)
	if err != nil {
		response.Err(w, err)
		return
	}
	response.Data(w, http.StatusOK, dto.ToPlaylistResp(p), "video removed from playlist")
}

func (h *PlaylistsHandler) Update(w http.ResponseWriter, r *http.Request) {
	actorID, err := actorUUID(r)
	if err != nil {
		response.Err(w, err)
		return
	}
	playlistID, err := pathUUID(r, "playlistId")
	if err != nil {
		response.Err(w, err)
		return
	}
	var req dto.UpdatePlaylistReq
	if err := validate.DecodeJSON(r, &req); err != nil {
		response.Err(w, domain.ErrValidation("invalid json body"))
		return
	}
	if err := validate.Struct(req); err != nil {
		response.Err(w, err)
		return
	}
	p, err := h.svc.Rename(r.Context(), playlistID, actorID, req.Name, req.Description)
	if err != nil {
		response.Err(w, err)
		return
	}
	response.Data(w, http.StatusOK, dto.ToPlaylistResp(p), "playlist updated")
}

func (h *PlaylistsHandler) Delete(w http.ResponseWriter, r *http.Request) {
	actorID, err := actorUUID(r)
	if err != nil {
		response.Err(w, err)
		return
	}
	playlistID, err := pathUUID(r, "playlistId")
	if err != nil {
		response.Err(w, err)
		return
	}
	if err := h.svc.Delete(r.Context(), playlistID, actorID); err != nil {
		response.Err(w, err)
		return
	}
	response.Data(w, http.StatusOK, nil, "playlist deleted")
}
