package get_availability

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

	getAvailability "github.com/m04kA/court-reservation-service/internal/usecase/get_availability"
	"github.com/m04kA/court-reservation-service/pkg/logger"
	"github.com/m04kA/court-reservation-service/pkg/ptr"
	"github.com/m04kA/court-reservation-service/pkg/validation"
)

type stubUseCase struct {
	req  *getAvailability.Request
	resp *getAvailability.Response
	err  error
}

func (s *stubUseCase) Execute(_ context.Context, req *getAvailability.Request) (*getAvailability.Response, error) {
	s.req = req
	return s.resp, s.err
}

func serve(uc *stubUseCase, url string) *httptest.ResponseRecorder {
	r := mux.NewRouter()
	r.HandleFunc("/reservations/availability/{courtId}", NewHandler(uc, logger.Nop()).Handle)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, url, nil))
	return rec
}

func TestHandle_ReturnsAllWindows(t *testing.T) {
	day := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)
	at := func(h int) time.Time { return day.Add(time.Duration(h) * time.Hour) }
	uc := &stubUseCase{resp: &getAvailability.Response{
		CourtID:         3,
		Date:            day,
		DurationMinutes: 60,
		Slots: []getAvailability.Slot{
			{StartTime: at(8), EndTime: at(9), Available: true},
			{StartTime: at(9), EndTime: at(10), Available: false, Status: ptr.Ptr("confirmed"), ReservationID: ptr.Ptr(int64(12))},
		},
	}}

	rec := serve(uc, "/reservations/availability/3?date=2026-03-10&duration=60")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, &getAvailability.Request{CourtID: 3, Date: "2026-03-10", DurationMinutes: 60}, uc.req)

	var resp AvailabilityResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Len(t, resp.Slots, 2)
	assert.True(t, resp.Slots[0].IsAvailable)
	assert.Nil(t, resp.Slots[0].Status)
	assert.False(t, resp.Slots[1].IsAvailable)
	assert.Equal(t, "confirmed", *resp.Slots[1].Status)
	assert.Equal(t, int64(12), *resp.Slots[1].ReservationID)
	assert.Equal(t, "2026-03-10T09:00:00Z", resp.Slots[1].StartTime)
}

func TestHandle_BadParams(t *testing.T) {
	tests := []struct {
		name string
		url  string
		err  error
		code int
	}{
		{name: "court id", url: "/reservations/availability/abc?date=2026-03-10", code: http.StatusBadRequest},
		{name: "missing date", url: "/reservations/availability/3", code: http.StatusBadRequest},
		{name: "duration not a number", url: "/reservations/availability/3?date=2026-03-10&duration=1h", code: http.StatusBadRequest},
		{
			name: "use case rejects date",
			url:  "/reservations/availability/3?date=10-03-2026",
			err:  validation.NewError(getAvailability.ErrInvalidInput, "date", "must be YYYY-MM-DD"),
			code: http.StatusBadRequest,
		},
		{name: "court not found", url: "/reservations/availability/3?date=2026-03-10", err: getAvailability.ErrCourtNotFound, code: http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := serve(&stubUseCase{err: tt.err}, tt.url)
			assert.Equal(t, tt.code, rec.Code)
		})
	}
}
