package get_availability

import "time"

// Request модель запроса доступности корта на дату
type Request struct {
	CourtID         int64
	Date            string // YYYY-MM-DD
	DurationMinutes int    // 0 - длительность по умолчанию
}

// Response модель ответа со всеми окнами дня
type Response struct {
	CourtID         int64
	Date            time.Time
	DurationMinutes int
	Slots           []Slot
}

// Slot окно бронирования
type Slot struct {
	StartTime     time.Time
	EndTime       time.Time
	Available     bool
	Status        *string // статус занимающего бронирования
	ReservationID *int64
}

// FreeSlots возвращает только свободные окна в исходном порядке
func (r *Response) FreeSlots() []Slot {
	free := make([]Slot, 0, len(r.Slots))
	for _, s := range r.Slots {
		if s.Available {
			free = append(free, s)
		}
	}
	return free
}
