package domain

import "time"

// Slot окно для бронирования в пределах рабочих часов
type Slot struct {
	StartTime     time.Time
	EndTime       time.Time
	Available     bool
	Status        *ReservationStatus // статус занимающего бронирования
	ReservationID *int64             // первое пересекающееся бронирование
}

// BusinessHours возвращает начало и конец рабочего дня для даты (UTC)
func BusinessHours(date time.Time) (time.Time, time.Time) {
	y, m, d := date.Date()
	open := time.Date(y, m, d, OpeningHour, 0, 0, 0, time.UTC)
	closing := time.Date(y, m, d, ClosingHour, 0, 0, 0, time.UTC)
	return open, closing
}
