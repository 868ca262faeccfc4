package domain

// Player игрок, указанный в бронировании. Принадлежит ровно одному бронированию.
type Player struct {
	ID            int64
	ReservationID int64
	FirstName     string
	LastName      string
	Rut           string // национальный идентификатор (RUT), хранится в нормализованном виде 12345678-K
	Age           int
}
