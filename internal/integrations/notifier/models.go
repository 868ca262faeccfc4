package notifier

import (
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/court-reservation-service/internal/domain"
)

// EventKind тип события, он же routing key
type EventKind string

const (
	EventReservationConfirmed EventKind = "reservation.confirmed"
	EventReservationCancelled EventKind = "reservation.cancelled"
)

const (
	resultSent     = "sent"
	resultFailed   = "failed"
	resultDisabled = "disabled"
)

// Config настройки брокера уведомлений
type Config struct {
	Enabled        bool
	URL            string
	Exchange       string
	PublishTimeout time.Duration
}

// ReservationEvent тело сообщения о бронировании
type ReservationEvent struct {
	EventID       string    `json:"event_id"`
	Kind          EventKind `json:"kind"`
	ReservationID int64     `json:"reservation_id"`
	UserID        int64     `json:"user_id"`
	CourtID       int64     `json:"court_id"`
	StartTime     time.Time `json:"start_time"`
	EndTime       time.Time `json:"end_time"`
	Amount        float64   `json:"amount"`
	Status        string    `json:"status"`
	OccurredAt    time.Time `json:"occurred_at"`
}

// newReservationEvent собирает событие с новым uuid
func newReservationEvent(kind EventKind, r *domain.Reservation, now time.Time) ReservationEvent {
	return ReservationEvent{
		EventID:       uuid.NewString(),
		Kind:          kind,
		ReservationID: r.ID,
		UserID:        r.UserID,
		CourtID:       r.CourtID,
		StartTime:     r.StartTime.UTC(),
		EndTime:       r.EndTime.UTC(),
		Amount:        r.Amount,
		Status:        string(r.Status),
		OccurredAt:    now.UTC(),
	}
}
