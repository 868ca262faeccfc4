package pay_reservation

import (
	"context"

	settleReservation "github.com/m04kA/court-reservation-service/internal/usecase/settle_reservation"
)

type SettleReservationUseCase interface {
	Execute(ctx context.Context, req *settleReservation.Request) (*settleReservation.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
