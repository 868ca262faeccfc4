package get_court_utilization

import (
	"context"

	getCourtUtilization "github.com/m04kA/court-reservation-service/internal/usecase/get_court_utilization"
)

type GetCourtUtilizationUseCase interface {
	Execute(ctx context.Context, req *getCourtUtilization.Request) (*getCourtUtilization.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
