package update_reservation_status

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/court-reservation-service/internal/api/handlers"
	"github.com/m04kA/court-reservation-service/internal/api/middleware"
	"github.com/m04kA/court-reservation-service/internal/service/reservations"
	"github.com/m04kA/court-reservation-service/internal/service/reservations/models"
	"github.com/m04kA/court-reservation-service/pkg/logger"
)

type stubService struct {
	id  int64
	req *models.UpdateStatusRequest
	err error
}

func (s *stubService) UpdateStatus(_ context.Context, id int64, req *models.UpdateStatusRequest) (*models.ReservationResponse, error) {
	s.id = id
	s.req = req
	if s.err != nil {
		return nil, s.err
	}
	return &models.ReservationResponse{ID: id, Status: req.Status}, nil
}

func serve(svc *stubService, body string) *httptest.ResponseRecorder {
	r := mux.NewRouter()
	r.Use(middleware.Auth)
	r.HandleFunc("/reservations/{reservationId}/status", NewHandler(svc, logger.Nop()).Handle).Methods(http.MethodPut)

	req := httptest.NewRequest(http.MethodPut, "/reservations/5/status", strings.NewReader(body))
	req.Header.Set(middleware.UserIDHeader, "1")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func TestHandle_Updated(t *testing.T) {
	svc := &stubService{}

	rec := serve(svc, `{"status": "completed"}`)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, int64(5), svc.id)
	assert.Equal(t, &models.UpdateStatusRequest{UserID: 1, Status: "completed"}, svc.req)

	var resp models.ReservationResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "completed", resp.Status)
}

func TestHandle_ErrorMapping(t *testing.T) {
	tests := []struct {
		err  error
		code int
		kind string
	}{
		{reservations.ErrInvalidInput, http.StatusBadRequest, handlers.KindInvalidArgument},
		{reservations.ErrReservationNotFound, http.StatusNotFound, handlers.KindNotFound},
		{reservations.ErrAccessDenied, http.StatusForbidden, handlers.KindForbidden},
		{fmt.Errorf("%w: completed -> cancelled", reservations.ErrInvalidTransition), http.StatusConflict, handlers.KindInvalidState},
		{reservations.ErrCannotCancel, http.StatusConflict, handlers.KindInvalidState},
		{reservations.ErrInternal, http.StatusInternalServerError, handlers.KindInternal},
	}

	for _, tt := range tests {
		t.Run(tt.err.Error(), func(t *testing.T) {
			rec := serve(&stubService{err: tt.err}, `{"status": "cancelled"}`)

			assert.Equal(t, tt.code, rec.Code)
			var resp handlers.ErrorResponse
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
			assert.Equal(t, tt.kind, resp.Error)
		})
	}
}

func TestHandle_InvalidBody(t *testing.T) {
	svc := &stubService{}

	rec := serve(svc, `status=confirmed`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Nil(t, svc.req)
}
