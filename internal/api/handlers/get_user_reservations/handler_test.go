package get_user_reservations

import (
	"context"
	"encoding/json"
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
	"github.com/m04kA/court-reservation-service/pkg/ptr"
)

type stubService struct {
	req *models.GetUserReservationsRequest
	err error
}

func (s *stubService) GetUserReservations(_ context.Context, req *models.GetUserReservationsRequest) (*models.ReservationListResponse, error) {
	s.req = req
	if s.err != nil {
		return nil, s.err
	}
	return &models.ReservationListResponse{
		Reservations: []models.ReservationResponse{{ID: 1, UserID: req.UserID}, {ID: 2, UserID: req.UserID}},
	}, nil
}

func serve(svc *stubService, url string) *httptest.ResponseRecorder {
	r := mux.NewRouter()
	r.Use(middleware.Auth)
	r.HandleFunc("/reservations/user/{userId}", NewHandler(svc, logger.Nop()).Handle).Methods(http.MethodGet)

	req := httptest.NewRequest(http.MethodGet, url, nil)
	req.Header.Set(middleware.UserIDHeader, "7")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func TestHandle_WithStatusFilter(t *testing.T) {
	svc := &stubService{}

	rec := serve(svc, "/reservations/user/7?status=confirmed")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, &models.GetUserReservationsRequest{CallerID: 7, UserID: 7, Status: ptr.Ptr("confirmed")}, svc.req)

	var resp models.ReservationListResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Len(t, resp.Reservations, 2)
}

func TestHandle_NoFilter(t *testing.T) {
	svc := &stubService{}

	rec := serve(svc, "/reservations/user/9")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, int64(9), svc.req.UserID)
	assert.Nil(t, svc.req.Status)
}

func TestHandle_ErrorMapping(t *testing.T) {
	tests := []struct {
		err  error
		code int
	}{
		{reservations.ErrInvalidInput, http.StatusBadRequest},
		{reservations.ErrAccessDenied, http.StatusForbidden},
		{reservations.ErrInternal, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.err.Error(), func(t *testing.T) {
			rec := serve(&stubService{err: tt.err}, "/reservations/user/9")
			assert.Equal(t, tt.code, rec.Code)
		})
	}
}

func TestHandle_InvalidUserID(t *testing.T) {
	svc := &stubService{}

	rec := serve(svc, "/reservations/user/me")

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Nil(t, svc.req)
}
