package delete_court

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"

	"github.com/m04kA/court-reservation-service/internal/api/middleware"
	"github.com/m04kA/court-reservation-service/internal/service/courts"
	"github.com/m04kA/court-reservation-service/pkg/logger"
)

type stubService struct {
	id     int64
	userID int64
	err    error
}

func (s *stubService) Delete(_ context.Context, id int64, userID int64) error {
	s.id = id
	s.userID = userID
	return s.err
}

func serve(svc *stubService, url string) *httptest.ResponseRecorder {
	r := mux.NewRouter()
	r.Use(middleware.Auth)
	r.HandleFunc("/courts/{courtId}", NewHandler(svc, logger.Nop()).Handle).Methods(http.MethodDelete)

	req := httptest.NewRequest(http.MethodDelete, url, nil)
	req.Header.Set(middleware.UserIDHeader, "1")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func TestHandle_Deleted(t *testing.T) {
	svc := &stubService{}

	rec := serve(svc, "/courts/3")

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, int64(3), svc.id)
	assert.Equal(t, int64(1), svc.userID)
	assert.Empty(t, rec.Body.String())
}

func TestHandle_ErrorMapping(t *testing.T) {
	tests := []struct {
		err  error
		code int
	}{
		{courts.ErrCourtNotFound, http.StatusNotFound},
		{courts.ErrAccessDenied, http.StatusForbidden},
		{fmt.Errorf("%w: 2 pending or confirmed", courts.ErrHasActiveReservations), http.StatusConflict},
		{courts.ErrHasReservationHistory, http.StatusConflict},
		{courts.ErrInternal, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.err.Error(), func(t *testing.T) {
			assert.Equal(t, tt.code, serve(&stubService{err: tt.err}, "/courts/3").Code)
		})
	}

	assert.Equal(t, http.StatusBadRequest, serve(&stubService{}, "/courts/x").Code)
}
