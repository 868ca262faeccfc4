package notifier

import (
	"context"

	"github.com/m04kA/court-reservation-service/internal/domain"
)

// DisabledNotifier только пишет событие в лог. Используется, когда брокер не настроен.
type DisabledNotifier struct {
	metrics MetricsRecorder
	log     Logger
}

// NewDisabledNotifier создает notifier без брокера
func NewDisabledNotifier(m MetricsRecorder, log Logger) *DisabledNotifier {
	return &DisabledNotifier{metrics: m, log: log}
}

func (n *DisabledNotifier) ReservationConfirmed(_ context.Context, reservation *domain.Reservation) error {
	n.skip(EventReservationConfirmed, reservation)
	return nil
}

func (n *DisabledNotifier) ReservationCancelled(_ context.Context, reservation *domain.Reservation) error {
	n.skip(EventReservationCancelled, reservation)
	return nil
}

func (n *DisabledNotifier) skip(kind EventKind, reservation *domain.Reservation) {
	n.metrics.IncNotification(string(kind), resultDisabled)
	n.log.Info("Notifier disabled: %s for reservation_id=%d user_id=%d not sent", kind, reservation.ID, reservation.UserID)
}

func (n *DisabledNotifier) Close() error {
	return nil
}
