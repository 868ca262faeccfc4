package models

import (
	"errors"
	"time"

	"github.com/m04kA/court-reservation-service/internal/domain"
)

var (
	// ErrInvalidStatus возвращается при некорректном статусе
	ErrInvalidStatus = errors.New("invalid reservation status")

	// ErrInvalidDate возвращается при некорректной дате фильтра
	ErrInvalidDate = errors.New("invalid date")
)

// Request модели

// UpdateStatusRequest запрос на смену статуса бронирования
type UpdateStatusRequest struct {
	UserID int64  `json:"userId"` // инициатор
	Status string `json:"status"`
}

// GetUserReservationsRequest запрос на получение бронирований пользователя
type GetUserReservationsRequest struct {
	CallerID int64   `json:"-"`
	UserID   int64   `json:"userId"`
	Status   *string `json:"status,omitempty"`
}

// ListReservationsRequest запрос на получение списка бронирований (администратор)
type ListReservationsRequest struct {
	CallerID int64   `json:"-"`
	CourtID  *int64  `json:"courtId,omitempty"`
	Status   *string `json:"status,omitempty"`
	Date     *string `json:"date,omitempty"` // YYYY-MM-DD, бронирования, пересекающие эти сутки (UTC)
}

// ToDomainFilter конвертирует request в domain фильтр
func (r *ListReservationsRequest) ToDomainFilter() (domain.ReservationFilter, error) {
	filter := domain.ReservationFilter{
		CourtID: r.CourtID,
	}

	if r.Status != nil {
		status, err := ToDomainReservationStatus(*r.Status)
		if err != nil {
			return filter, err
		}
		filter.Status = &status
	}

	if r.Date != nil {
		day, err := time.Parse(domain.DateFormat, *r.Date)
		if err != nil {
			return filter, ErrInvalidDate
		}
		next := day.AddDate(0, 0, 1)
		filter.From = &day
		filter.To = &next
	}

	return filter, nil
}

// Response модели

// PlayerResponse игрок
type PlayerResponse struct {
	ID        int64  `json:"id"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Rut       string `json:"rut"`
	Age       int    `json:"age"`
}

// EquipmentResponse позиция инвентаря
type EquipmentResponse struct {
	ProductID int64   `json:"id"`
	Quantity  int     `json:"quantity"`
	UnitPrice float64 `json:"price"`
}

// ReservationResponse ответ с данными бронирования
type ReservationResponse struct {
	ID              int64               `json:"id"`
	UserID          int64               `json:"userId"`
	CourtID         int64               `json:"courtId"`
	StartTime       time.Time           `json:"startTime"`
	EndTime         time.Time           `json:"endTime"`
	DurationMinutes int                 `json:"durationMinutes"`
	Amount          float64             `json:"amount"`
	Status          string              `json:"status"`
	Players         []PlayerResponse    `json:"players"`
	Equipment       []EquipmentResponse `json:"equipment"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// ReservationListResponse ответ со списком бронирований
type ReservationListResponse struct {
	Reservations []ReservationResponse `json:"reservations"`
}

// Методы конвертации

// FromDomainReservation конвертирует domain модель в DTO
func FromDomainReservation(r *domain.Reservation) *ReservationResponse {
	if r == nil {
		return nil
	}

	players := make([]PlayerResponse, 0, len(r.Players))
	for _, p := range r.Players {
		players = append(players, PlayerResponse{
			ID:        p.ID,
			FirstName: p.FirstName,
			LastName:  p.LastName,
			Rut:       p.Rut,
			Age:       p.Age,
		})
	}

	equipment := make([]EquipmentResponse, 0, len(r.Equipment))
	for _, e := range r.Equipment {
		equipment = append(equipment, EquipmentResponse{
			ProductID: e.ProductID,
			Quantity:  e.Quantity,
			UnitPrice: e.UnitPrice,
		})
	}

	return &ReservationResponse{
		ID:              r.ID,
		UserID:          r.UserID,
		CourtID:         r.CourtID,
		StartTime:       r.StartTime.UTC(),
		EndTime:         r.EndTime.UTC(),
		DurationMinutes: r.DurationMinutes(),
		Amount:          r.Amount,
		Status:          string(r.Status),
		Players:         players,
		Equipment:       equipment,
		CreatedAt:       r.CreatedAt,
		UpdatedAt:       r.UpdatedAt,
	}
}

// FromDomainReservationList конвертирует список domain моделей в DTO
func FromDomainReservationList(reservations []*domain.Reservation) *ReservationListResponse {
	resp := &ReservationListResponse{
		Reservations: make([]ReservationResponse, 0, len(reservations)),
	}

	for _, r := range reservations {
		if item := FromDomainReservation(r); item != nil {
			resp.Reservations = append(resp.Reservations, *item)
		}
	}

	return resp
}

// ToDomainReservationStatus конвертирует строку в domain.ReservationStatus с валидацией
func ToDomainReservationStatus(status string) (domain.ReservationStatus, error) {
	s := domain.ReservationStatus(status)
	if !domain.IsValidStatus(s) {
		return "", ErrInvalidStatus
	}
	return s, nil
}
