package domain

import "time"

// ReservationStatus статус бронирования корта
type ReservationStatus string

const (
	StatusPending   ReservationStatus = "pending"
	StatusConfirmed ReservationStatus = "confirmed"
	StatusCompleted ReservationStatus = "completed"
	StatusCancelled ReservationStatus = "cancelled"
)

// Reservation бронирование корта
type Reservation struct {
	ID        int64
	UserID    int64
	CourtID   int64
	StartTime time.Time // UTC
	EndTime   time.Time // UTC, строго после StartTime
	Amount    float64   // вычисляется на сервере: цена за час * длительность
	Status    ReservationStatus

	Players   []Player
	Equipment []EquipmentItem

	CreatedAt time.Time
	UpdatedAt time.Time
}

// DurationMinutes длительность бронирования в минутах
func (r *Reservation) DurationMinutes() int {
	return int(r.EndTime.Sub(r.StartTime) / time.Minute)
}

// IsBlocking возвращает true, если бронирование занимает корт
func (r *Reservation) IsBlocking() bool {
	return IsBlockingStatus(r.Status)
}

// Overlaps проверяет пересечение с полуинтервалом [start, end)
// Граничащие интервалы (конец одного = начало другого) не пересекаются
func (r *Reservation) Overlaps(start, end time.Time) bool {
	return Overlaps(r.StartTime, r.EndTime, start, end)
}

// IsTerminal возвращает true для completed и cancelled
func (r *Reservation) IsTerminal() bool {
	return len(allowedTransitions[r.Status]) == 0
}

// CanTransitionTo проверяет переход по таблице состояний
func (r *Reservation) CanTransitionTo(next ReservationStatus) bool {
	return CanTransition(r.Status, next)
}

// CanChangeStatusTo проверяет ручную смену статуса (без оплаты)
func (r *Reservation) CanChangeStatusTo(next ReservationStatus) bool {
	return CanTransitionManually(r.Status, next)
}

// ReservationFilter фильтр списка бронирований
type ReservationFilter struct {
	CourtID  *int64
	UserID   *int64
	Status   *ReservationStatus
	Statuses []ReservationStatus // используется, если Status не задан
	From     *time.Time          // бронирования, заканчивающиеся после From
	To       *time.Time          // бронирования, начинающиеся до To
}

// Overlaps проверяет пересечение полуинтервалов [aStart, aEnd) и [bStart, bEnd)
func Overlaps(aStart, aEnd, bStart, bEnd time.Time) bool {
	return aStart.Before(bEnd) && aEnd.After(bStart)
}

// IsBlockingStatus возвращает true, если статус занимает окно корта
func IsBlockingStatus(status ReservationStatus) bool {
	for _, s := range BlockingStatuses {
		if s == status {
			return true
		}
	}
	return false
}

// IsValidStatus проверяет, что статус входит в перечисление
func IsValidStatus(status ReservationStatus) bool {
	_, ok := allowedTransitions[status]
	return ok
}
