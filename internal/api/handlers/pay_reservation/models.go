package pay_reservation

import (
	settleReservation "github.com/m04kA/court-reservation-service/internal/usecase/settle_reservation"
)

// PayReservationRequest HTTP request model. userId необязателен, по умолчанию берется из X-User-ID.
type PayReservationRequest struct {
	UserID *int64 `json:"userId,omitempty"`
}

// PayReservationResponse HTTP response model
type PayReservationResponse struct {
	Success       bool     `json:"success"`
	Message       string   `json:"message"`
	ReservationID int64    `json:"reservationId"`
	Status        string   `json:"status"`
	Amount        float64  `json:"amount"`
	Balance       float64  `json:"balance"`
	Shortfall     *float64 `json:"shortfall,omitempty"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *settleReservation.Response) *PayReservationResponse {
	return &PayReservationResponse{
		Success:       resp.Success,
		Message:       resp.Message,
		ReservationID: resp.ReservationID,
		Status:        resp.Status,
		Amount:        resp.Amount,
		Balance:       resp.Balance,
		Shortfall:     resp.Shortfall,
	}
}
