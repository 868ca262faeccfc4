package list_reservations

import (
	"strconv"

	"github.com/m04kA/court-reservation-service/internal/service/reservations/models"
)

// ToServiceRequest формирует запрос к сервису из query параметров
func ToServiceRequest(callerID int64, courtIDStr, statusStr, dateStr string) (*models.ListReservationsRequest, error) {
	req := &models.ListReservationsRequest{
		CallerID: callerID,
	}

	if courtIDStr != "" {
		courtID, err := strconv.ParseInt(courtIDStr, 10, 64)
		if err != nil {
			return nil, err
		}
		req.CourtID = &courtID
	}

	if statusStr != "" {
		req.Status = &statusStr
	}

	// Дата разбирается в сервисе
	if dateStr != "" {
		req.Date = &dateStr
	}

	return req, nil
}
