package response

import (
	"encoding/json"
	"errors"
	"net/http"

	zlog "github.com/rs/zerolog/log"

	"github.com/vidstream/vidstream/internal/domain"
)

// Envelope is the uniform API body for successes and failures:
// {"statusCode":200,"data":...,"message":"...","success":true}
// The data key is always present, null when there is no payload.
type Envelope struct {
	StatusCode int    `json:"statusCode"`
	Data       any    `json:"data"`
	Message    string `json:"message"`
	Success    bool   `json:"success"`
}

// JSON writes raw JSON with Content-Type.
func JSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// Data wraps a payload in the success envelope.
func Data(w http.ResponseWriter, status int, payload any, message string) {
	JSON(w, status, Envelope{
		StatusCode: status,
		Data:       payload,
		Message:    message,
		Success:    status < 400,
	})
}

// Fail writes the failure envelope. Meta, when present, rides inside data so
// the envelope shape never changes.
func Fail(w http.ResponseWriter, status int, message string, meta map[string]string) {
	var data any
	if len(meta) > 0 {
		data = map[string]any{"errors": meta}
	}
	JSON(w, status, Envelope{
		StatusCode: status,
		Data:       data,
		Message:    message,
		Success:    false,
	})
}

// Err maps an application error onto the failure envelope. Unknown errors
// stay in the logs and surface as a plain 500.
func Err(w http.ResponseWriter, err error) {
	if err == nil {
		Fail(w, http.StatusInternalServerError, "unknown error", nil)
		return
	}

	var ae *domain.AppError
	if errors.As(err, &ae) {
		Fail(w, statusFromCode(ae.Code), ae.Message, ae.Meta)
		return
	}

	zlog.Error().Err(err).Msg("unhandled error")
	Fail(w, http.StatusInternalServerError, "internal error", nil)
}

func statusFromCode(code domain.ErrCode) int {
	switch code {
	case domain.CodeValidation, domain.CodeConflict:
		return http.StatusBadRequest
	case domain.CodeNotFound:
		return http.StatusNotFound
	case domain.CodeForbidden:
		return http.StatusForbidden
	default:
		return http.StatusInternalServerError
	}
}
