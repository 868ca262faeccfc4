package get_reservation

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/court-reservation-service/internal/api/middleware"
	"github.com/m04kA/court-reservation-service/internal/service/reservations"
	"github.com/m04kA/court-reservation-service/internal/service/reservations/models"
	"github.com/m04kA/court-reservation-service/pkg/logger"
)

type stubService struct {
	id       int64
	callerID int64
	err      error
}

func (s *stubService) GetByID(_ context.Context, id int64, callerID int64) (*models.ReservationResponse, error) {
	s.id = id
	s.callerID = callerID
	if s.err != nil {
		return nil, s.err
	}
	return &models.ReservationResponse{ID: id, UserID: callerID, Status: "pending"}, nil
}

func serve(svc *stubService, url string) *httptest.ResponseRecorder {
	r := mux.NewRouter()
	r.Use(middleware.Auth)
	r.HandleFunc("/reservations/{reservationId}", NewHandler(svc, logger.Nop()).Handle).Methods(http.MethodGet)

	req := httptest.NewRequest(http.MethodGet, url, nil)
	req.Header.Set(middleware.UserIDHeader, "7")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func TestHandle_Found(t *testing.T) {
	svc := &stubService{}

	rec := serve(svc, "/reservations/12")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, int64(12), svc.id)
	assert.Equal(t, int64(7), svc.callerID)

	var resp models.ReservationResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, int64(12), resp.ID)
	assert.Equal(t, "pending", resp.Status)
}

func TestHandle_ErrorMapping(t *testing.T) {
	tests := []struct {
		err  error
		code int
	}{
		{reservations.ErrReservationNotFound, http.StatusNotFound},
		{reservations.ErrAccessDenied, http.StatusForbidden},
		{errors.New("db down"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.err.Error(), func(t *testing.T) {
			rec := serve(&stubService{err: tt.err}, "/reservations/12")
			assert.Equal(t, tt.code, rec.Code)
		})
	}
}

func TestHandle_InvalidID(t *testing.T) {
	svc := &stubService{}

	rec := serve(svc, "/reservations/abc")

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Zero(t, svc.id)
}
