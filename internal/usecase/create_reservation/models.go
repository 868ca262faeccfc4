package create_reservation

import "time"

// PlayerInput игрок из запроса
type PlayerInput struct {
	FirstName string
	LastName  string
	Rut       string
	Age       int
}

// EquipmentInput позиция инвентаря из запроса. Цена берется из каталога.
type EquipmentInput struct {
	ProductID int64
	Quantity  int
}

// Request модель запроса на создание бронирования
type Request struct {
	UserID    int64
	CourtID   int64
	StartTime string // RFC3339
	EndTime   string // RFC3339
	Players   []PlayerInput
	Equipment []EquipmentInput
}

// Player игрок в ответе
type Player struct {
	ID        int64
	FirstName string
	LastName  string
	Rut       string
	Age       int
}

// Equipment позиция инвентаря в ответе
type Equipment struct {
	ProductID int64
	Quantity  int
	UnitPrice float64
}

// Response модель ответа с созданным бронированием
type Response struct {
	ID        int64
	UserID    int64
	CourtID   int64
	StartTime time.Time
	EndTime   time.Time
	Amount    float64
	Status    string
	Players   []Player
	Equipment []Equipment
	CreatedAt time.Time
	UpdatedAt time.Time
}
