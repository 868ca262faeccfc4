package get_court_utilization

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/court-reservation-service/internal/domain"
	courtRepo "github.com/m04kA/court-reservation-service/internal/infra/storage/court"
	"github.com/m04kA/court-reservation-service/pkg/ptr"
	"github.com/m04kA/court-reservation-service/pkg/validation"
)

// UseCase use case отчета о загрузке корта
type UseCase struct {
	reservationRepo ReservationRepository
	courtRepo       CourtRepository
	timeProvider    TimeProvider
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(reservationRepo ReservationRepository, courtRepo CourtRepository, logger Logger) *UseCase {
	return &UseCase{
		reservationRepo: reservationRepo,
		courtRepo:       courtRepo,
		timeProvider:    &RealTimeProvider{},
		logger:          logger,
	}
}

// Execute считает загрузку корта за скользящее окно дней, заканчивающееся концом текущих суток (UTC)
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetCourtUtilization: court=%d, days=%d", req.CourtID, req.Days)

	// 1. Валидация входных данных
	days := req.Days
	if days == 0 {
		days = domain.DefaultReportDays
	}
	v := &validation.Collector{}
	v.Check(req.CourtID > 0, "courtId", "must be positive")
	v.Check(days >= 1 && days <= domain.MaxReportDays, "days", "must be between 1 and %d", domain.MaxReportDays)
	if err := v.Err(ErrInvalidInput); err != nil {
		uc.logger.Warn("GetCourtUtilization: validation failed: %v", err)
		return nil, err
	}

	// 2. Корт
	court, err := uc.courtRepo.GetByID(ctx, req.CourtID)
	if err != nil {
		if errors.Is(err, courtRepo.ErrCourtNotFound) {
			uc.logger.Warn("GetCourtUtilization: court id=%d not found", req.CourtID)
			return nil, ErrCourtNotFound
		}
		uc.logger.Error("GetCourtUtilization: failed to get court id=%d: %v", req.CourtID, err)
		return nil, fmt.Errorf("%w: failed to get court: %v", ErrInternal, err)
	}

	// 3. Окно отчета
	now := uc.timeProvider.Now().UTC()
	to := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC).AddDate(0, 0, 1)
	from := to.AddDate(0, 0, -days)

	// 4. Все бронирования корта в окне, любые статусы
	reservations, err := uc.reservationRepo.List(ctx, domain.ReservationFilter{
		CourtID: ptr.Ptr(court.ID),
		From:    ptr.Ptr(from),
		To:      ptr.Ptr(to),
	})
	if err != nil {
		uc.logger.Error("GetCourtUtilization: failed to get reservations: %v", err)
		return nil, fmt.Errorf("%w: failed to get reservations: %v", ErrInternal, err)
	}

	// 5. Агрегация
	u := domain.CalculateUtilization(court.ID, from, to, days, reservations)

	byStatus := make(map[string]int, len(u.ByStatus))
	for status, count := range u.ByStatus {
		byStatus[string(status)] = count
	}

	uc.logger.Info("GetCourtUtilization: court=%d, reservations=%d, utilization=%.2f%%",
		court.ID, u.TotalReservations, u.UtilizationPercent)

	return &Response{
		CourtID:            court.ID,
		CourtName:          court.Name,
		From:               u.From,
		To:                 u.To,
		Days:               days,
		TotalReservations:  u.TotalReservations,
		ByStatus:           byStatus,
		Revenue:            u.Revenue,
		BookedMinutes:      u.BookedMinutes,
		AvailableMinutes:   u.AvailableMinutes,
		UtilizationPercent: u.UtilizationPercent,
	}, nil
}
