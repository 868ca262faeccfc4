package update_court

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/court-reservation-service/internal/api/handlers"
	"github.com/m04kA/court-reservation-service/internal/api/middleware"
	"github.com/m04kA/court-reservation-service/internal/service/courts"
	"github.com/m04kA/court-reservation-service/internal/service/courts/models"
	"github.com/m04kA/court-reservation-service/pkg/logger"
	"github.com/m04kA/court-reservation-service/pkg/ptr"
	"github.com/m04kA/court-reservation-service/pkg/validation"
)

type stubService struct {
	id  int64
	req *models.UpdateCourtRequest
	err error
}

func (s *stubService) Update(_ context.Context, id int64, req *models.UpdateCourtRequest) (*models.CourtResponse, error) {
	s.id = id
	s.req = req
	if s.err != nil {
		return nil, s.err
	}
	return &models.CourtResponse{ID: id, Name: "Cancha 2", Capacity: 6, Status: "maintenance"}, nil
}

func serve(svc *stubService, url, body string) *httptest.ResponseRecorder {
	r := mux.NewRouter()
	r.Use(middleware.Auth)
	r.HandleFunc("/courts/{courtId}", NewHandler(svc, logger.Nop()).Handle).Methods(http.MethodPut)

	req := httptest.NewRequest(http.MethodPut, url, strings.NewReader(body))
	req.Header.Set(middleware.UserIDHeader, "1")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func TestHandle_PartialUpdate(t *testing.T) {
	svc := &stubService{}

	rec := serve(svc, "/courts/2", `{"capacity": 6, "status": "maintenance"}`)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, int64(2), svc.id)

	// Непереданные поля остаются nil, сервис их не трогает
	assert.Equal(t, &models.UpdateCourtRequest{
		UserID:   1,
		Capacity: ptr.Ptr(6),
		Status:   ptr.Ptr("maintenance"),
	}, svc.req)

	var resp models.CourtResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "maintenance", resp.Status)
}

func TestHandle_ExplicitFalseIsKept(t *testing.T) {
	svc := &stubService{}

	rec := serve(svc, "/courts/2", `{"covered": false}`)

	require.Equal(t, http.StatusOK, rec.Code)
	require.NotNil(t, svc.req.Covered)
	assert.False(t, *svc.req.Covered)
	assert.Nil(t, svc.req.Name)
}

func TestHandle_ErrorMapping(t *testing.T) {
	c := &validation.Collector{}
	c.Add("capacity", "must be between 1 and 50")

	tests := []struct {
		name string
		err  error
		code int
		kind string
	}{
		{name: "violations", err: c.Err(courts.ErrInvalidInput), code: http.StatusBadRequest, kind: handlers.KindInvalidArgument},
		{name: "not found", err: courts.ErrCourtNotFound, code: http.StatusNotFound, kind: handlers.KindNotFound},
		{name: "not admin", err: courts.ErrAccessDenied, code: http.StatusForbidden, kind: handlers.KindForbidden},
		{name: "internal", err: courts.ErrInternal, code: http.StatusInternalServerError, kind: handlers.KindInternal},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := serve(&stubService{err: tt.err}, "/courts/2", `{"capacity": 0}`)

			assert.Equal(t, tt.code, rec.Code)
			var resp handlers.ErrorResponse
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
			assert.Equal(t, tt.kind, resp.Error)
		})
	}
}

func TestHandle_ViolationsInBody(t *testing.T) {
	c := &validation.Collector{}
	c.Add("capacity", "must be between 1 and 50")

	rec := serve(&stubService{err: c.Err(courts.ErrInvalidInput)}, "/courts/2", `{"capacity": 0}`)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	var resp handlers.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Len(t, resp.Violations, 1)
	assert.Equal(t, "capacity", resp.Violations[0].Field)
}

func TestHandle_BadRequest(t *testing.T) {
	tests := []struct {
		name string
		url  string
		body string
	}{
		{name: "invalid id", url: "/courts/abc", body: `{"capacity": 6}`},
		{name: "broken json", url: "/courts/2", body: `{"capacity": `},
		{name: "empty body", url: "/courts/2", body: ``},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &stubService{}

			rec := serve(svc, tt.url, tt.body)

			assert.Equal(t, http.StatusBadRequest, rec.Code)
			assert.Nil(t, svc.req)
		})
	}
}

func TestHandle_MissingUser(t *testing.T) {
	r := mux.NewRouter()
	r.Use(middleware.Auth)
	svc := &stubService{}
	r.HandleFunc("/courts/{courtId}", NewHandler(svc, logger.Nop()).Handle).Methods(http.MethodPut)

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodPut, "/courts/2", strings.NewReader(`{}`)))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Nil(t, svc.req)
}
