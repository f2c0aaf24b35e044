package handlers

import (
	"net/http"

	"github.com/vidstream/vidstream/internal/application/tweet"
	"github.com/vidstream/vidstream/internal/domain"
	"github.com/vidstream/vidstream/internal/transport/http/dto"
	"github.com/vidstream/vidstream/internal/transport/http/response"
	"github.com/vidstream/vidstream/internal/transport/http/validate"
)

type TweetsHandler struct {
	svc *tweet.Service
}

func NewTweetsHandler(svc *tweet.Service) *TweetsHandler {
	return &TweetsHandler{svc: svc}
}

func (h *TweetsHandler) Create(w http.ResponseWriter, r *http.Request) {
	actorID, err := actorUUID(r)
	if err != nil {
		response.Err(w, err)
		return
	}
	var req dto.CreateTweetReq
	if err := validate.DecodeJSON(r, &req); err != nil {
		response.Err(w, domain.ErrValidation("invalid json body"))
		return
	}
	if err := validate.Struct(req); err != nil {
		response.Err(w, err)
		return
	}
	t, err := h.svc.Create(r.Context(), actorID, req.Content)
	if err != nil {
		response.Err(w, err)
		return
	}
	response.Data(w, http.StatusCreated, dto.ToTweetResp(t), "tweet created")
}

func (h *TweetsHandler) ListByOwner(w http.ResponseWriter, r *http.Request) {
	ownerID, err := pathUUID(r, "userId")
	if err != nil {
		response.Err(w, err)
		return
	}
	items, err := h.svc.ListByOwner(r.Context(), ownerID)
	if err != nil {
		response.Err(w, err)
		return
	}
	out := make([]dto.TweetResp, 0, len(items))
	for i := range items {
		out = append(out, dto.ToTweetResp(&items[i]))
	}
	response.Data(w, http.StatusOK, out, "tweets fetched")
}

func (h *TweetsHandler) Update(w http.ResponseWriter, r *http.Request) {
	actorID, err := actorUUID(r)
	if err != nil {
		response.Err(w, err)
		return
	}
	tweetID, err := pathUUID(r, "tweetId")
	if err != nil {
		response.Err(w, err)
		return
	}
	var req dto.UpdateTweetReq
	if err := validate.DecodeJSON(r, &req); err != nil {
		response.Err(w, domain.ErrValidation("invalid json body"))
		return
	}
	if err := validate.Struct(req); err != nil {
		response.Err(w, err)
		return
	}
	t, err := h.svc.Update(r.Context(), tweetID, actorID, req.Content)
	if err != nil {
		response.Err(w, err)
		return
	}
	response.Data(w, http.StatusOK, dto.ToTweetResp(t), "tweet updated")
}

func (h *TweetsHandler) Delete(w http.ResponseWriter, r *http.Request) {
	actorID, err := actorUUID(r)
	if err != nil {
		response.Err(w, err)
		return
	}
	tweetID, err := pathUUID(r, "tweetId")
	if err != nil {
		response.Err(w, err)
		return
	}
	if err := h.svc.Delete(r.Context(), tweetID, actorID); err != nil {
		response.Err(w, err)
		return
	}
	response.Data(w, http.StatusOK, nil, "tweet deleted")
}
