package get_court

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/court-reservation-service/internal/service/courts"
	"github.com/m04kA/court-reservation-service/internal/service/courts/models"
	"github.com/m04kA/court-reservation-service/pkg/logger"
	"github.com/m04kA/court-reservation-service/pkg/ptr"
)

type stubService struct {
	id  int64
	err error
}

func (s *stubService) GetByID(_ context.Context, id int64) (*models.CourtResponse, error) {
	s.id = id
	if s.err != nil {
		return nil, s.err
	}
	return &models.CourtResponse{
		ID:       id,
		Name:     "Cancha 1",
		Capacity: 4,
		Status:   "available",
		ImageURL: ptr.Ptr("https://cdn.example.com/courts/1.jpg"),
	}, nil
}

func serve(svc *stubService, url string) *httptest.ResponseRecorder {
	r := mux.NewRouter()
	r.HandleFunc("/courts/{courtId}", NewHandler(svc, logger.Nop()).Handle).Methods(http.MethodGet)

	req := httptest.NewRequest(http.MethodGet, url, nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func TestHandle_Found(t *testing.T) {
	svc := &stubService{}

	rec := serve(svc, "/courts/1")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, int64(1), svc.id)

	var resp models.CourtResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "Cancha 1", resp.Name)
	require.NotNil(t, resp.ImageURL)
	assert.Equal(t, "https://cdn.example.com/courts/1.jpg", *resp.ImageURL)
}

func TestHandle_NotFound(t *testing.T) {
	rec := serve(&stubService{err: courts.ErrCourtNotFound}, "/courts/404")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestHandle_InternalError(t *testing.T) {
	rec := serve(&stubService{err: courts.ErrInternal}, "/courts/1")
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

func TestHandle_InvalidID(t *testing.T) {
	svc := &stubService{}

	rec := serve(svc, "/courts/x1")

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Zero(t, svc.id)
}
