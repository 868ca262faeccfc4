package pay_reservation

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/court-reservation-service/internal/api/middleware"
	settleReservation "github.com/m04kA/court-reservation-service/internal/usecase/settle_reservation"
	"github.com/m04kA/court-reservation-service/pkg/logger"
	"github.com/m04kA/court-reservation-service/pkg/ptr"
)

type stubUseCase struct {
	req  *settleReservation.Request
	resp *settleReservation.Response
	err  error
}

func (s *stubUseCase) Execute(_ context.Context, req *settleReservation.Request) (*settleReservation.Response, error) {
	s.req = req
	return s.resp, s.err
}

func serve(uc *stubUseCase, url string, body io.Reader) *httptest.ResponseRecorder {
	r := mux.NewRouter()
	r.Use(middleware.Auth)
	r.HandleFunc("/reservations/{reservationId}/pay", NewHandler(uc, logger.Nop()).Handle).Methods(http.MethodPost)

	req := httptest.NewRequest(http.MethodPost, url, body)
	req.Header.Set(middleware.UserIDHeader, "7")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func TestHandle_InsufficientBalanceIsNotAnError(t *testing.T) {
	uc := &stubUseCase{resp: &settleReservation.Response{
		Success:       false,
		Message:       "insufficient balance",
		ReservationID: 5,
		Status:        "pending",
		Amount:        15000,
		Balance:       5000,
		Shortfall:     ptr.Ptr(10000.0),
	}}

	rec := serve(uc, "/reservations/5/pay", nil)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, &settleReservation.Request{ReservationID: 5, UserID: 7}, uc.req)

	var resp PayReservationResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.False(t, resp.Success)
	require.NotNil(t, resp.Shortfall)
	assert.Equal(t, 10000.0, *resp.Shortfall)
}

func TestHandle_BodyUserMustMatchCaller(t *testing.T) {
	uc := &stubUseCase{resp: &settleReservation.Response{Success: true}}

	rec := serve(uc, "/reservations/5/pay", strings.NewReader(`{"userId": 8}`))
	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Nil(t, uc.req)

	rec = serve(uc, "/reservations/5/pay", strings.NewReader(`{"userId": 7}`))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestHandle_ErrorMapping(t *testing.T) {
	tests := []struct {
		err  error
		code int
	}{
		{settleReservation.ErrReservationNotFound, http.StatusNotFound},
		{settleReservation.ErrUserNotFound, http.StatusNotFound},
		{settleReservation.ErrForbidden, http.StatusForbidden},
		{settleReservation.ErrAlreadyProcessed, http.StatusConflict},
		{settleReservation.ErrInternal, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.err.Error(), func(t *testing.T) {
			rec := serve(&stubUseCase{err: tt.err}, "/reservations/5/pay", nil)
			assert.Equal(t, tt.code, rec.Code)
		})
	}
}
