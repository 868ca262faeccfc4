package settle_reservation

import (
	"context"

	"github.com/m04kA/court-reservation-service/internal/domain"
)

// ReservationRepository интерфейс репозитория бронирований
type ReservationRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Reservation, error)
	UpdateStatus(ctx context.Context, id int64, status domain.ReservationStatus) error
}

// UserRepository интерфейс репозитория пользователей (баланс)
type UserRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.User, error)
	Debit(ctx context.Context, id int64, amount float64) (float64, error)
}

// Notifier отправка подтверждения бронирования
type Notifier interface {
	ReservationConfirmed(ctx context.Context, reservation *domain.Reservation) error
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// MetricsRecorder счетчик оплат
type MetricsRecorder interface {
	IncSettlement(result string)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
