package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/court-reservation-service/pkg/validation"
)

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) ErrorResponse {
	t.Helper()
	var body ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

func TestRespondError_KindByStatus(t *testing.T) {
	tests := []struct {
		respond func(w http.ResponseWriter)
		status  int
		kind    string
	}{
		{func(w http.ResponseWriter) { RespondBadRequest(w, "x") }, http.StatusBadRequest, KindInvalidArgument},
		{func(w http.ResponseWriter) { RespondUnauthorized(w, "x") }, http.StatusUnauthorized, KindUnauthorized},
		{func(w http.ResponseWriter) { RespondForbidden(w, "x") }, http.StatusForbidden, KindForbidden},
		{func(w http.ResponseWriter) { RespondNotFound(w, "x") }, http.StatusNotFound, KindNotFound},
		{func(w http.ResponseWriter) { RespondConflict(w, "x") }, http.StatusConflict, KindConflict},
		{func(w http.ResponseWriter) { RespondInvalidState(w, "x") }, http.StatusConflict, KindInvalidState},
		{func(w http.ResponseWriter) { RespondCapacityExceeded(w, "x") }, http.StatusUnprocessableEntity, KindCapacityExceeded},
		{func(w http.ResponseWriter) { RespondInternalError(w) }, http.StatusInternalServerError, KindInternal},
	}

	for _, tt := range tests {
		t.Run(tt.kind, func(t *testing.T) {
			rec := httptest.NewRecorder()
			tt.respond(rec)

			assert.Equal(t, tt.status, rec.Code)
			assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
			assert.Equal(t, tt.kind, decodeError(t, rec).Error)
		})
	}
}

func TestRespondValidationError(t *testing.T) {
	kind := errors.New("invalid")
	c := &validation.Collector{}
	c.Add("players", "at least one player is required")
	c.Add("courtId", "must be positive")

	rec := httptest.NewRecorder()
	RespondValidationError(rec, "некорректные данные", c.Err(kind))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	body := decodeError(t, rec)
	assert.Equal(t, KindInvalidArgument, body.Error)
	require.Len(t, body.Violations, 2)
	assert.Equal(t, "players", body.Violations[0].Field)
}

func TestDecodeJSON(t *testing.T) {
	var v struct {
		UserID int64 `json:"userId"`
	}

	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"userId": 7, "extra": true}`))
	require.NoError(t, DecodeJSON(req, &v))
	assert.Equal(t, int64(7), v.UserID)

	req = httptest.NewRequest(http.MethodPost, "/", strings.NewReader(""))
	assert.Error(t, DecodeJSON(req, &v))

	req = httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"userId": "seven"}`))
	assert.Error(t, DecodeJSON(req, &v))
}
