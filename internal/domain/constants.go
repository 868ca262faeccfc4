package domain

// Рабочие часы площадки (UTC)
const (
	OpeningHour = 8
	ClosingHour = 22
)

// Параметры слотов
const (
	SlotStepMinutes            = 60 // шаг, с которым перебираются начала окон
	DefaultSlotDurationMinutes = 60
	SlotDurationGranularity    = 30
	MinSlotDurationMinutes     = 30
	MaxSlotDurationMinutes     = (ClosingHour - OpeningHour) * 60
)

// Ограничения валидации
const (
	MaxNameLength      = 100
	MaxPlayerAge       = 120
	MinPlayerAge       = 1
	MaxEquipmentItems  = 20
	DefaultReportDays  = 30
	MaxReportDays      = 365
	MaxCourtCapacity   = 50
	MaxCourtNameLength = 100
	MaxImagePathLength = 500
)

// Форматы времени
const (
	DateFormat = "2006-01-02" // YYYY-MM-DD
	TimeFormat = "15:04"      // HH:MM
)

// BlockingStatuses статусы, при которых окно корта считается занятым
var BlockingStatuses = []ReservationStatus{
	StatusPending,
	StatusConfirmed,
}

// RevenueStatuses статусы, сумма которых считается выручкой
var RevenueStatuses = []ReservationStatus{
	StatusConfirmed,
	StatusCompleted,
}

// AllStatuses все статусы бронирования
var AllStatuses = []ReservationStatus{
	StatusPending,
	StatusConfirmed,
	StatusCompleted,
	StatusCancelled,
}

// IsValidSlotDuration проверяет длительность окна
func IsValidSlotDuration(minutes int) bool {
	return minutes >= MinSlotDurationMinutes &&
		minutes <= MaxSlotDurationMinutes &&
		minutes%SlotDurationGranularity == 0
}
