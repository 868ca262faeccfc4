package get_availability

import (
	"time"

	"github.com/m04kA/court-reservation-service/internal/domain"
)

// generateSlots перебирает начала окон от открытия с шагом SlotStepMinutes.
// Окно [start, start+duration) должно закончиться не позже закрытия.
// Окно занято, если пересекается с активным бронированием; в окне указывается первое такое бронирование.
func generateSlots(date time.Time, duration int, reservations []*domain.Reservation) []domain.Slot {
	open, closing := domain.BusinessHours(date)
	length := time.Duration(duration) * time.Minute
	step := time.Duration(domain.SlotStepMinutes) * time.Minute

	slots := make([]domain.Slot, 0)
	for start := open; !start.Add(length).After(closing); start = start.Add(step) {
		end := start.Add(length)

		slot := domain.Slot{
			StartTime: start,
			EndTime:   end,
			Available: true,
		}

		for _, r := range reservations {
			// Пропускаем неактивные бронирования
			if !r.IsBlocking() {
				continue
			}
			// Граничащие интервалы не пересекаются
			if r.Overlaps(start, end) {
				status := r.Status
				id := r.ID
				slot.Available = false
				slot.Status = &status
				slot.ReservationID = &id
				break
			}
		}

		slots = append(slots, slot)
	}

	return slots
}

func toResponseSlots(slots []domain.Slot) []Slot {
	out := make([]Slot, 0, len(slots))
	for _, s := range slots {
		slot := Slot{
			StartTime:     s.StartTime,
			EndTime:       s.EndTime,
			Available:     s.Available,
			ReservationID: s.ReservationID,
		}
		if s.Status != nil {
			status := string(*s.Status)
			slot.Status = &status
		}
		out = append(out, slot)
	}
	return out
}
