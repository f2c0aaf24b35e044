package handlers

import (
	"io"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/vidstream/vidstream/internal/application/catalog"
	"github.com/vidstream/vidstream/internal/domain"
	"github.com/vidstream/vidstream/internal/transport/http/dto"
	"github.com/vidstream/vidstream/internal/transport/http/middleware"
	"github.com/vidstream/vidstream/internal/transport/http/response"
	"github.com/vidstream/vidstream/internal/transport/http/validate"
)

// 220 MiB: room for the video artifact plus thumbnail
const maxUploadBytes = 220 << 20

type VideosHandler struct {
	svc *catalog.Service
}

func NewVideosHandler(svc *catalog.Service) *VideosHandler {
	return &VideosHandler{svc: svc}
}

func (h *VideosHandler) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	page, _ := strconv.Atoi(q.Get("page"))
	pageSize, _ := strconv.Atoi(q.Get("limit"))

	lq := catalog.ListQuery{
		Query:    q.Get("query"),
		OwnerID:  q.Get("userId"),
		Tag:      q.Get("tag"),
		Page:     page,
		PageSize: pageSize,
		SortBy:   splitCSV(q.Get("sortBy")),
		SortType: splitCSV(q.Get("sortType")),
	}

	res, err := h.svc.List(r.Context(), lq)
	if err != nil {
		response.Err(w, err)
		return
	}
	response.Data(w, http.StatusOK, dto.VideoPageResp{
		Videos:      dto.ToVideoResps(res.Items),
		Page:        res.Page,
		Limit:       res.PageSize,
		TotalVideos: res.TotalVideos,
	}, "videos fetched successfully")
}

func (h *VideosHandler) ListMine(w http.ResponseWriter, r *http.Request) {
	actorID, err := actorUUID(r)
	if err != nil {
		response.Err(w, err)
		return
	}
	q := r.URL.Query()
	page, _ := strconv.Atoi(q.Get("page"))
	pageSize, _ := strconv.Atoi(q.Get("limit"))

	lq := catalog.ListQuery{
		Query:    q.Get("query"),
		Tag:      q.Get("tag"),
		Page:     page,
		PageSize: pageSize,
		SortBy:   splitCSV(q.Get("sortBy")),
		SortType: splitCSV(q.Get("sortType")),
	}

	res, err := h.svc.ListMine(r.Context(), actorID, lq)
	if err != nil {
		response.Err(w, err)
		return
	}
	response.Data(w, http.StatusOK, dto.VideoPageResp{
		Videos:      dto.ToVideoResps(res.Items),
		Page:        res.Page,
		Limit:       res.PageSize,
		TotalVideos: res.TotalVideos,
	}, "videos fetched successfully")
}

func (h *VideosHandler) Get(w http.ResponseWriter, r *http.Request) {
	videoID, err := pathUUID(r, "videoId")
	if err != nil {
		response.Err(w, err)
		return
	}
	viewerID := viewerUUID(r)

	v, err := h.svc.Get(r.Context(), videoID, viewerID)
	if err != nil {
		response.Err(w, err)
		return
	}
	response.Data(w, http.StatusOK, dto.ToVideoDetailResp(v), "video fetched successfully")
}

func (h *VideosHandler) Publish(w http.ResponseWriter, r *http.Request) {
	actorID, err := actorUUID(r)
	if err != nil {
		response.Err(w, err)
		return
	}
	r.Body = http.MaxBytesReader(w, r.Body, maxUploadBytes)
	if err := r.ParseMultipartForm(32 << 20); err != nil {
		response.Err(w, domain.ErrValidation("invalid multipart body"))
		return
	}

	videoPath, err := saveUpload(r, "videoFile")
	if err != nil {
		response.Err(w, err)
		return
	}
	thumbPath, err := saveUpload(r, "thumbnail")
	if err != nil {
		os.Remove(videoPath)
		response.Err(w, err)
		return
	}

	cmd := catalog.PublishCmd{
		ActorID:       actorID,
		Title:         r.FormValue("title"),
		Description:   r.FormValue("description"),
		Tags:          splitCSV(r.FormValue("tags")),
		VideoPath:     videoPath,
		ThumbnailPath: thumbPath,
	}
	v, err := h.svc.Publish(r.Context(), cmd)
	if err != nil {
		response.Err(w, err)
		return
	}
	response.Data(w, http.StatusCreated, dto.ToVideoDetailResp(v), "video published successfully")
}

func (h *VideosHandler) Update(w http.ResponseWriter, r *http.Request) {
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

	cmd := catalog.UpdateCmd{ActorID: actorID, VideoID: videoID}

	ct := r.Header.Get("Content-Type")
	if strings.HasPrefix(ct, "multipart/form-data") {
		r.Body = http.MaxBytesReader(w, r.Body, maxUploadBytes)
		if err := r.ParseMultipartForm(32 << 20); err != nil {
			response.Err(w, domain.ErrValidation("invalid multipart body"))
			return
		}
		cmd.Title = r.FormValue("title")
		cmd.Description = r.FormValue("description")
		cmd.Tags = splitCSV(r.FormValue("tags"))
		if _, _, err := r.FormFile("thumbnail"); err == nil {
			p, err := saveUpload(r, "thumbnail")
			if err != nil {
				response.Err(w, err)
				return
			}
			cmd.ThumbnailPath = p
		}
	} else {
		var req dto.UpdateVideoReq
		if err := validate.DecodeJSON(r, &req); err != nil {
			response.Err(w, domain.ErrValidation("invalid json body"))
			return
		}
		if err := validate.Struct(req); err != nil {
			response.Err(w, err)
			return
		}
		cmd.Title = req.Title
		cmd.Description = req.Description
		cmd.Tags = req.Tags
	}

	v, err := h.svc.Update(r.Context(), cmd)
	if err != nil {
		response.Err(w, err)
		return
	}
	response.Data(w, http.StatusOK, dto.ToVideoDetailResp(v), "video updated successfully")
}

func (h *VideosHandler) Delete(w http.ResponseWriter, r *http.Request) {
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
	if err := h.svc.Delete(r.Context(), videoID, actorID); err != nil {
		response.Err(w, err)
		return
	}
	response.Data(w, http.StatusOK, nil, "video deleted successfully")
}

func (h *VideosHandler) TogglePublish(w http.ResponseWriter, r *http.Request) {
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
	v, err := h.svc.TogglePublish(r.Context(), videoID, actorID)
	if err != nil {
		response.Err(w, err)
		return
	}
	response.Data(w, http.StatusOK, map[string]bool{"isPublished": v.IsPublished}, "publish state toggled")
}

// saveUpload copies a multipart file to a temp path owned by the service
// layer from here on.
func saveUpload(r *http.Request, field string) (string, error) {
	file, hdr, err := r.FormFile(field)
	if err != nil {
		return "", domain.ErrValidationMeta("missing file", map[string]string{field: "file is required"})
	}
	defer file.Close()
	return persistTemp(file, hdr)
}

func persistTemp(file multipart.File, hdr *multipart.FileHeader) (string, error) {
	tmp, err := os.CreateTemp("", "upload-*"+filepath.Ext(hdr.Filename))
	if err != nil {
		return "", err
	}
	defer tmp.Close()
	if _, err := io.Copy(tmp, file); err != nil {
		os.Remove(tmp.Name())
		return "", err
	}
	return tmp.Name(), nil
}

func splitCSV(s string) []string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// pathUUID parses a uuid path parameter or reports a field-level client error.
func pathUUID(r *http.Request, name string) (uuid.UUID, error) {
	raw := chi.URLParam(r, name)
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, domain.ErrValidationMeta("invalid path param", map[string]string{
			name: "must be uuid",
		})
	}
	return id, nil
}

// actorUUID returns the authenticated user id; routes behind Require always
// have one, so a miss is an auth wiring bug surfaced as forbidden.
func actorUUID(r *http.Request) (uuid.UUID, error) {
	raw := middleware.UserID(r)
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, domain.ErrForbidden("not allowed")
	}
	return id, nil
}

// viewerUUID is the optional-auth variant: uuid.Nil marks an anonymous viewer.
func viewerUUID(r *http.Request) uuid.UUID {
	id, err := uuid.Parse(middleware.UserID(r))
	if err != nil {
		return uuid.Nil
	}
	return id
}
