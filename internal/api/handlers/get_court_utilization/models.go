package get_court_utilization

import (
	"github.com/m04kA/court-reservation-service/internal/domain"
	getCourtUtilization "github.com/m04kA/court-reservation-service/internal/usecase/get_court_utilization"
)

// UtilizationResponse HTTP response model
type UtilizationResponse struct {
	CourtID            int64          `json:"courtId"`
	CourtName          string         `json:"courtName"`
	From               string         `json:"from"` // YYYY-MM-DD, включительно
	To                 string         `json:"to"`   // YYYY-MM-DD, не включительно
	Days               int            `json:"days"`
	TotalReservations  int            `json:"totalReservations"`
	ByStatus           map[string]int `json:"byStatus"`
	Revenue            float64        `json:"revenue"`
	BookedMinutes      int            `json:"bookedMinutes"`
	AvailableMinutes   int            `json:"availableMinutes"`
	UtilizationPercent float64        `json:"utilizationPercent"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getCourtUtilization.Response) *UtilizationResponse {
	return &UtilizationResponse{
		CourtID:            resp.CourtID,
		CourtName:          resp.CourtName,
		From:               resp.From.Format(domain.DateFormat),
		To:                 resp.To.Format(domain.DateFormat),
		Days:               resp.Days,
		TotalReservations:  resp.TotalReservations,
		ByStatus:           resp.ByStatus,
		Revenue:            resp.Revenue,
		BookedMinutes:      resp.BookedMinutes,
		AvailableMinutes:   resp.AvailableMinutes,
		UtilizationPercent: resp.UtilizationPercent,
	}
}
