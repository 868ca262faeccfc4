package notifier

import (
	"context"

	amqp "github.com/rabbitmq/amqp091-go"

	"github.com/m04kA/court-reservation-service/internal/domain"
)

// Notifier отправляет события о бронированиях пользователям (через брокер)
type Notifier interface {
	ReservationConfirmed(ctx context.Context, reservation *domain.Reservation) error
	ReservationCancelled(ctx context.Context, reservation *domain.Reservation) error
	Close() error
}

// Channel часть *amqp.Channel, которой пользуется AMQPNotifier
type Channel interface {
	PublishWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp.Publishing) error
	Close() error
}

// MetricsRecorder счетчик отправленных уведомлений
type MetricsRecorder interface {
	IncNotification(kind, result string)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
