package get_court_utilization

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	getCourtUtilization "github.com/m04kA/court-reservation-service/internal/usecase/get_court_utilization"
	"github.com/m04kA/court-reservation-service/pkg/logger"
)

type stubUseCase struct {
	req  *getCourtUtilization.Request
	resp *getCourtUtilization.Response
	err  error
}

func (s *stubUseCase) Execute(_ context.Context, req *getCourtUtilization.Request) (*getCourtUtilization.Response, error) {
	s.req = req
	return s.resp, s.err
}

func serve(uc *stubUseCase, url string) *httptest.ResponseRecorder {
	r := mux.NewRouter()
	r.HandleFunc("/courts/{courtId}/utilization", NewHandler(uc, logger.Nop()).Handle)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, url, nil))
	return rec
}

func TestHandle_Report(t *testing.T) {
	uc := &stubUseCase{resp: &getCourtUtilization.Response{
		CourtID:            3,
		CourtName:          "Cancha 3",
		From:               time.Date(2026, 3, 3, 0, 0, 0, 0, time.UTC),
		To:                 time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC),
		Days:               7,
		TotalReservations:  3,
		ByStatus:           map[string]int{"confirmed": 2, "cancelled": 1},
		Revenue:            30000,
		BookedMinutes:      240,
		AvailableMinutes:   5880,
		UtilizationPercent: 4.08,
	}}

	rec := serve(uc, "/courts/3/utilization?days=7")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 7, uc.req.Days)

	var resp UtilizationResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "2026-03-03", resp.From)
	assert.Equal(t, 2, resp.ByStatus["confirmed"])
	assert.Equal(t, 4.08, resp.UtilizationPercent)
}

func TestHandle_Errors(t *testing.T) {
	assert.Equal(t, http.StatusBadRequest, serve(&stubUseCase{}, "/courts/3/utilization?days=week").Code)
	assert.Equal(t, http.StatusNotFound, serve(&stubUseCase{err: getCourtUtilization.ErrCourtNotFound}, "/courts/3/utilization").Code)
	assert.Equal(t, http.StatusBadRequest, serve(&stubUseCase{err: getCourtUtilization.ErrInvalidInput}, "/courts/3/utilization?days=0").Code)
}
