package domain

import "time"

// CourtStatus эксплуатационный статус корта
type CourtStatus string

const (
	CourtAvailable   CourtStatus = "available"
	CourtOccupied    CourtStatus = "occupied"
	CourtMaintenance CourtStatus = "maintenance"
)

// Court корт
type Court struct {
	ID           int64
	Name         string
	Capacity     int     // максимум игроков в одном бронировании, >= 1
	PricePerHour float64 // >= 0
	Covered      bool
	Status       CourtStatus
	ImagePath    *string // относительный путь к изображению, URL строится при выдаче наружу

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsBookable возвращает false для кортов на обслуживании
func (c *Court) IsBookable() bool {
	return c.Status != CourtMaintenance
}

// FitsPlayers проверяет, что количество игроков не превышает вместимость
func (c *Court) FitsPlayers(count int) bool {
	return count <= c.Capacity
}

// IsValidCourtStatus проверяет статус корта
func IsValidCourtStatus(status CourtStatus) bool {
	switch status {
	case CourtAvailable, CourtOccupied, CourtMaintenance:
		return true
	default:
		return false
	}
}
