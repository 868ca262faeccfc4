package get_availability

import (
	"strconv"
	"time"

	"github.com/m04kA/court-reservation-service/internal/domain"
	getAvailability "github.com/m04kA/court-reservation-service/internal/usecase/get_availability"
)

// AvailabilityResponse HTTP response model: все окна дня с признаком занятости
type AvailabilityResponse struct {
	CourtID         int64  `json:"courtId"`
	Date            string `json:"date"`
	DurationMinutes int    `json:"durationMinutes"`
	Slots           []Slot `json:"slots"`
}

// Slot окно бронирования
type Slot struct {
	StartTime     string  `json:"startTime"`
	EndTime       string  `json:"endTime"`
	IsAvailable   bool    `json:"isAvailable"`
	Status        *string `json:"status,omitempty"`
	ReservationID *int64  `json:"reservationId,omitempty"`
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
func FromUseCaseResponse(resp *getAvailability.Response) *AvailabilityResponse {
	slots := make([]Slot, len(resp.Slots))
	for i, s := range resp.Slots {
		slots[i] = Slot{
			StartTime:     s.StartTime.UTC().Format(time.RFC3339),
			EndTime:       s.EndTime.UTC().Format(time.RFC3339),
			IsAvailable:   s.Available,
			Status:        s.Status,
			ReservationID: s.ReservationID,
		}
	}

	return &AvailabilityResponse{
		CourtID:         resp.CourtID,
		Date:            resp.Date.Format(domain.DateFormat),
		DurationMinutes: resp.DurationMinutes,
		Slots:           slots,
	}
}
