package reservations

import (
	"context"
	"time"

	"github.com/m04kA/court-reservation-service/internal/domain"
)

// ReservationRepository интерфейс репозитория бронирований
type ReservationRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Reservation, error)
	List(ctx context.Context, filter domain.ReservationFilter) ([]*domain.Reservation, error)
	UpdateStatus(ctx context.Context, id int64, status domain.ReservationStatus) error
}

// UserRepository интерфейс репозитория пользователей (роль вызывающего)
type UserRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.User, error)
}

// ProductRepository возврат инвентаря на склад при отмене
type ProductRepository interface {
	Release(ctx context.Context, id int64, quantity int) error
}

// Notifier отправка уведомления об отмене
type Notifier interface {
	ReservationCancelled(ctx context.Context, reservation *domain.Reservation) error
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
