package response

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vidstream/vidstream/internal/domain"
)

func decode(t *testing.T, rec *httptest.ResponseRecorder) Envelope {
	t.Helper()
	var env Envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
	return env
}

func TestData_SuccessEnvelope(t *testing.T) {
	rec := httptest.NewRecorder()
	Data(rec, http.StatusCreated, map[string]string{"id": "1"}, "created")

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "application/json; charset=utf-8", rec.Header().Get("Content-Type"))

	env := decode(t, rec)
	assert.Equal(t, http.StatusCreated, env.StatusCode)
	assert.Equal(t, "created", env.Message)
	assert.True(t, env.Success)
	assert.NotNil(t, env.Data)
}

func TestData_NilPayloadKeepsDataKey(t *testing.T) {
	rec := httptest.NewRecorder()
	Data(rec, http.StatusOK, nil, "done")

	var keys map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &keys))
	require.Contains(t, keys, "data")
	assert.Equal(t, "null", string(keys["data"]))
}

func TestErr_StatusMapping(t *testing.T) {
	cases := []struct {
		name   string
		err    error
		status int
	}{
		{"validation", domain.ErrValidation("bad input"), http.StatusBadRequest},
		{"conflict_maps_to_400", domain.ErrConflict("already there"), http.StatusBadRequest},
		{"not_found", domain.ErrNotFound("gone"), http.StatusNotFound},
		{"forbidden", domain.ErrForbidden("nope"), http.StatusForbidden},
		{"upstream", domain.ErrUpstream("store down"), http.StatusInternalServerError},
		{"unknown", errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			Err(rec, tc.err)

			assert.Equal(t, tc.status, rec.Code)
			env := decode(t, rec)
			assert.Equal(t, tc.status, env.StatusCode)
			assert.False(t, env.Success)
		})
	}
}

func TestErr_UnknownErrorHidesDetails(t *testing.T) {
	rec := httptest.NewRecorder()
	Err(rec, errors.New("pq: secret dsn leaked"))

	env := decode(t, rec)
	assert.Equal(t, "internal error", env.Message)
	assert.NotContains(t, rec.Body.String(), "dsn")
}

func TestErr_ValidationMetaRidesInData(t *testing.T) {
	rec := httptest.NewRecorder()
	Err(rec, domain.ErrValidationMeta("invalid query param", map[string]string{"userId": "must be uuid"}))

	var env struct {
		Data struct {
			Errors map[string]string `json:"errors"`
		} `json:"data"`
		Message string `json:"message"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
	assert.Equal(t, "invalid query param", env.Message)
	assert.Equal(t, "must be uuid", env.Data.Errors["userId"])
}
