package settle_reservation

// Результаты оплаты для метрик
const (
	ResultConfirmed           = "confirmed"
	ResultInsufficientBalance = "insufficient_balance"
)

const (
	messageConfirmed           = "payment completed, reservation confirmed"
	messageInsufficientBalance = "insufficient balance"
)

// Request модель запроса на оплату бронирования
type Request struct {
	ReservationID int64
	UserID        int64 // инициатор оплаты
}

// Response результат оплаты. Нехватка средств - не ошибка, а Success = false.
type Response struct {
	Success       bool
	Message       string
	ReservationID int64
	Status        string
	Amount        float64
	Balance       float64  // баланс после операции
	Shortfall     *float64 // сколько не хватает, только при Success = false
}
