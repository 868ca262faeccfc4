package get_availability

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/court-reservation-service/internal/domain"
	courtRepo "github.com/m04kA/court-reservation-service/internal/infra/storage/court"
	"github.com/m04kA/court-reservation-service/pkg/ptr"
)

// UseCase use case для расчета доступности корта на дату
type UseCase struct {
	reservationRepo ReservationRepository
	courtRepo       CourtRepository
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(reservationRepo ReservationRepository, courtRepo CourtRepository, logger Logger) *UseCase {
	return &UseCase{
		reservationRepo: reservationRepo,
		courtRepo:       courtRepo,
		logger:          logger,
	}
}

// Execute считает все окна дня. Результат не кэшируется: каждый вызов читает бронирования заново.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetAvailability: court=%d, date=%s, duration=%d", req.CourtID, req.Date, req.DurationMinutes)

	// 1. Валидация входных данных
	date, duration, err := validateRequest(req)
	if err != nil {
		uc.logger.Warn("GetAvailability: validation failed: %v", err)
		return nil, err
	}

	// 2. Проверяем существование корта
	if _, err := uc.courtRepo.GetByID(ctx, req.CourtID); err != nil {
		if errors.Is(err, courtRepo.ErrCourtNotFound) {
			uc.logger.Warn("GetAvailability: court id=%d not found", req.CourtID)
			return nil, ErrCourtNotFound
		}
		uc.logger.Error("GetAvailability: failed to get court id=%d: %v", req.CourtID, err)
		return nil, fmt.Errorf("%w: failed to get court: %v", ErrInternal, err)
	}

	// 3. Активные бронирования корта в рабочие часы дня
	open, closing := domain.BusinessHours(date)
	filter := domain.ReservationFilter{
		CourtID:  ptr.Ptr(req.CourtID),
		Statuses: domain.BlockingStatuses,
		From:     ptr.Ptr(open),
		To:       ptr.Ptr(closing),
	}

	reservations, err := uc.reservationRepo.List(ctx, filter)
	if err != nil {
		uc.logger.Error("GetAvailability: failed to get reservations: %v", err)
		return nil, fmt.Errorf("%w: failed to get reservations: %v", ErrInternal, err)
	}

	// 4. Перебираем окна
	slots := generateSlots(date, duration, reservations)

	uc.logger.Info("GetAvailability: generated %d slots for court=%d, date=%s",
		len(slots), req.CourtID, date.Format(domain.DateFormat))

	return &Response{
		CourtID:         req.CourtID,
		Date:            date,
		DurationMinutes: duration,
		Slots:           toResponseSlots(slots),
	}, nil
}
