package create_reservation

import (
	"time"

	createReservation "github.com/m04kA/court-reservation-service/internal/usecase/create_reservation"
)

// PlayerRequest игрок в запросе
type PlayerRequest struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Rut       string `json:"rut"`
	Age       int    `json:"age"`
}

// EquipmentRequest позиция инвентаря в запросе
type EquipmentRequest struct {
	ProductID int64 `json:"id"`
	Quantity  int   `json:"quantity"`
}

// CreateReservationRequest HTTP request model.
// Сумма не принимается от клиента, она считается на сервере.
type CreateReservationRequest struct {
	CourtID   int64              `json:"courtId"`
	StartTime string             `json:"startTime"` // "2026-03-10T10:00:00Z"
	EndTime   string             `json:"endTime"`
	Players   []PlayerRequest    `json:"players"`
	Equipment []EquipmentRequest `json:"equipment,omitempty"`
}

// PlayerResponse игрок в ответе
type PlayerResponse struct {
	ID        int64  `json:"id"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Rut       string `json:"rut"`
	Age       int    `json:"age"`
}

// EquipmentResponse позиция инвентаря в ответе
type EquipmentResponse struct {
	ProductID int64   `json:"id"`
	Quantity  int     `json:"quantity"`
	UnitPrice float64 `json:"price"`
}

// ReservationResponse HTTP response model
type ReservationResponse struct {
	ID        int64               `json:"id"`
	UserID    int64               `json:"userId"`
	CourtID   int64               `json:"courtId"`
	StartTime string              `json:"startTime"`
	EndTime   string              `json:"endTime"`
	Amount    float64             `json:"amount"`
	Status    string              `json:"status"`
	Players   []PlayerResponse    `json:"players"`
	Equipment []EquipmentResponse `json:"equipment"`
	CreatedAt string              `json:"createdAt"`
	UpdatedAt string              `json:"updatedAt"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateReservationRequest) ToUseCaseRequest(userID int64) *createReservation.Request {
	players := make([]createReservation.PlayerInput, len(r.Players))
	for i, p := range r.Players {
		players[i] = createReservation.PlayerInput{
			FirstName: p.FirstName,
			LastName:  p.LastName,
			Rut:       p.Rut,
			Age:       p.Age,
		}
	}

	equipment := make([]createReservation.EquipmentInput, len(r.Equipment))
	for i, e := range r.Equipment {
		equipment[i] = createReservation.EquipmentInput{
			ProductID: e.ProductID,
			Quantity:  e.Quantity,
		}
	}

	return &createReservation.Request{
		UserID:    userID,
		CourtID:   r.CourtID,
		StartTime: r.StartTime,
		EndTime:   r.EndTime,
		Players:   players,
		Equipment: equipment,
	}
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createReservation.Response) *ReservationResponse {
	players := make([]PlayerResponse, len(resp.Players))
	for i, p := range resp.Players {
		players[i] = PlayerResponse{
			ID:        p.ID,
			FirstName: p.FirstName,
			LastName:  p.LastName,
			Rut:       p.Rut,
			Age:       p.Age,
		}
	}

	equipment := make([]EquipmentResponse, len(resp.Equipment))
	for i, e := range resp.Equipment {
		equipment[i] = EquipmentResponse{
			ProductID: e.ProductID,
			Quantity:  e.Quantity,
			UnitPrice: e.UnitPrice,
		}
	}

	return &ReservationResponse{
		ID:        resp.ID,
		UserID:    resp.UserID,
		CourtID:   resp.CourtID,
		StartTime: resp.StartTime.UTC().Format(time.RFC3339),
		EndTime:   resp.EndTime.UTC().Format(time.RFC3339),
		Amount:    resp.Amount,
		Status:    resp.Status,
		Players:   players,
		Equipment: equipment,
		CreatedAt: resp.CreatedAt.Format(time.RFC3339),
		UpdatedAt: resp.UpdatedAt.Format(time.RFC3339),
	}
}
