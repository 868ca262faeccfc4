package get_free_slots

import (
	"strconv"
	"time"

	"github.com/m04kA/court-reservation-service/internal/domain"
	getAvailability "github.com/m04kA/court-reservation-service/internal/usecase/get_availability"
)

// FreeSlotsResponse HTTP response model: только свободные окна
type FreeSlotsResponse struct {
	CourtID         int64      `json:"courtId"`
	Date            string     `json:"date"`
	DurationMinutes int        `json:"durationMinutes"`
	Slots           []FreeSlot `json:"slots"`
}

// FreeSlot свободное окно
type FreeSlot struct {
	StartTime string `json:"startTime"`
	EndTime   string `json:"endTime"`
}

// ToUseCaseRequest создает запрос use case из параметров запроса
func ToUseCaseRequest(courtID int64, date, durationStr string) (*getAvailability.Request, error) {
	req := &getAvailability.Request{
		CourtID: courtID,
		Date:    date,
	}

	if durationStr != "" {
		duration, err := strconv.Atoi(durationStr)
		if err != nil {
			return nil, err
		}
		req.DurationMinutes = duration
	}

	return req, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getAvailability.Response) *FreeSlotsResponse {
	free := resp.FreeSlots()
	slots := make([]FreeSlot, len(free))
	for i, s := range free {
		slots[i] = FreeSlot{
			StartTime: s.StartTime.UTC().Format(time.RFC3339),
			EndTime:   s.EndTime.UTC().Format(time.RFC3339),
		}
	}

	return &FreeSlotsResponse{
		CourtID:         resp.CourtID,
		Date:            resp.Date.Format(domain.DateFormat),
		DurationMinutes: resp.DurationMinutes,
		Slots:           slots,
	}
}
