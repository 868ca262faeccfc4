package domain

import "time"

// CourtUtilization агрегированная загрузка корта за период
type CourtUtilization struct {
	CourtID            int64
	From               time.Time
	To                 time.Time
	TotalReservations  int
	ByStatus           map[ReservationStatus]int
	Revenue            float64
	BookedMinutes      int
	AvailableMinutes   int
	UtilizationPercent float64
}

// BusinessMinutesPerDay длительность рабочего дня в минутах
const BusinessMinutesPerDay = (ClosingHour - OpeningHour) * 60

// CalculateUtilization агрегирует бронирования корта за период [from, to).
// Занятыми считаются pending, confirmed и completed; выручка - confirmed и completed.
func CalculateUtilization(courtID int64, from, to time.Time, days int, reservations []*Reservation) *CourtUtilization {
	u := &CourtUtilization{
		CourtID:          courtID,
		From:             from,
		To:               to,
		ByStatus:         make(map[ReservationStatus]int, len(AllStatuses)),
		AvailableMinutes: days * BusinessMinutesPerDay,
	}
	for _, s := range AllStatuses {
		u.ByStatus[s] = 0
	}

	for _, r := range reservations {
		if r.CourtID != courtID || !r.Overlaps(from, to) {
			continue
		}
		u.TotalReservations++
		u.ByStatus[r.Status]++

		if r.Status == StatusCancelled {
			continue
		}
		u.BookedMinutes += clippedMinutes(r.StartTime, r.EndTime, from, to)

		for _, s := range RevenueStatuses {
			if r.Status == s {
				u.Revenue += r.Amount
			}
		}
	}

	u.Revenue = roundMoney(u.Revenue)
	if u.AvailableMinutes > 0 {
		u.UtilizationPercent = roundMoney(float64(u.BookedMinutes) / float64(u.AvailableMinutes) * 100)
	}
	return u
}

func clippedMinutes(start, end, from, to time.Time) int {
	if start.Before(from) {
		start = from
	}
	if end.After(to) {
		end = to
	}
	if !end.After(start) {
		return 0
	}
	return int(end.Sub(start) / time.Minute)
}
