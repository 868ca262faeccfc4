package reservations

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/court-reservation-service/internal/domain"
	reservationRepo "github.com/m04kA/court-reservation-service/internal/infra/storage/reservation"
	userRepo "github.com/m04kA/court-reservation-service/internal/infra/storage/user"
	"github.com/m04kA/court-reservation-service/internal/service/reservations/models"
)

// Service сервис для работы с бронированиями
type Service struct {
	reservationRepo ReservationRepository
	userRepo        UserRepository
	productRepo     ProductRepository
	notifier        Notifier
	txManager       TransactionManager
	timeProvider    TimeProvider
	logger          Logger
}

// NewService создает новый экземпляр сервиса бронирований
func NewService(
	reservationRepo ReservationRepository,
	userRepo UserRepository,
	productRepo ProductRepository,
	notifier Notifier,
	txManager TransactionManager,
	logger Logger,
) *Service {
	return &Service{
		reservationRepo: reservationRepo,
		userRepo:        userRepo,
		productRepo:     productRepo,
		notifier:        notifier,
		txManager:       txManager,
		timeProvider:    &RealTimeProvider{},
		logger:          logger,
	}
}

// GetByID получает бронирование по ID
// Видеть бронирование может его владелец или администратор
func (s *Service) GetByID(ctx context.Context, id int64, callerID int64) (*models.ReservationResponse, error) {
	s.logger.Info("GetByID: fetching reservation id=%d for user=%d", id, callerID)

	reservation, err := s.getReservation(ctx, "GetByID", id)
	if err != nil {
		return nil, err
	}

	if reservation.UserID != callerID {
		if err := s.checkAdmin(ctx, "GetByID", callerID); err != nil {
			return nil, err
		}
	}

	s.logger.Info("GetByID: successfully fetched reservation id=%d", id)
	return models.FromDomainReservation(reservation), nil
}

// GetUserReservations получает историю бронирований пользователя
// Опционально фильтрует по статусу
func (s *Service) GetUserReservations(ctx context.Context, req *models.GetUserReservationsRequest) (*models.ReservationListResponse, error) {
	s.logger.Info("GetUserReservations: fetching reservations for user=%d, status=%v", req.UserID, req.Status)

	if req.UserID != req.CallerID {
		if err := s.checkAdmin(ctx, "GetUserReservations", req.CallerID); err != nil {
			return nil, err
		}
	}

	filter := domain.ReservationFilter{UserID: &req.UserID}
	if req.Status != nil {
		status, err := models.ToDomainReservationStatus(*req.Status)
		if err != nil {
			s.logger.Warn("GetUserReservations: invalid status=%s for user=%d", *req.Status, req.UserID)
			return nil, fmt.Errorf("%w: invalid status", ErrInvalidInput)
		}
		filter.Status = &status
	}

	list, err := s.reservationRepo.List(ctx, filter)
	if err != nil {
		s.logger.Error("GetUserReservations: repository error for user=%d: %v", req.UserID, err)
		return nil, fmt.Errorf("%w: GetUserReservations - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetUserReservations: successfully fetched %d reservations for user=%d", len(list), req.UserID)
	return models.FromDomainReservationList(list), nil
}

// List получает бронирования с фильтрами по корту, статусу и дате
// Доступно только администраторам
func (s *Service) List(ctx context.Context, req *models.ListReservationsRequest) (*models.ReservationListResponse, error) {
	s.logger.Info("List: fetching reservations court=%v, status=%v, date=%v by user=%d",
		req.CourtID, req.Status, req.Date, req.CallerID)

	if err := s.checkAdmin(ctx, "List", req.CallerID); err != nil {
		return nil, err
	}

	filter, err := req.ToDomainFilter()
	if err != nil {
		s.logger.Warn("List: invalid filter: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	list, err := s.reservationRepo.List(ctx, filter)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("List: successfully fetched %d reservations", len(list))
	return models.FromDomainReservationList(list), nil
}

// UpdateStatus меняет статус бронирования по таблице переходов.
// Администратор может выполнить любой допустимый переход, кроме подтверждения (оно идет через оплату),
// владелец - только отменить своё бронирование.
// Отмена возможна, пока бронирование не началось. После отмены отправляется уведомление.
func (s *Service) UpdateStatus(ctx context.Context, id int64, req *models.UpdateStatusRequest) (*models.ReservationResponse, error) {
	s.logger.Info("UpdateStatus: updating reservation id=%d to status=%s by user=%d", id, req.Status, req.UserID)

	// 1. Валидируем статус
	newStatus, err := models.ToDomainReservationStatus(req.Status)
	if err != nil {
		s.logger.Warn("UpdateStatus: invalid status=%s", req.Status)
		return nil, fmt.Errorf("%w: invalid status %q", ErrInvalidInput, req.Status)
	}

	// 2. Права вызывающего
	caller, err := s.getCaller(ctx, "UpdateStatus", req.UserID)
	if err != nil {
		return nil, err
	}

	var (
		updated        *domain.Reservation
		previousStatus domain.ReservationStatus
	)

	// 3. Проверка перехода и запись в одной транзакции
	err = s.txManager.Do(ctx, func(txCtx context.Context) error {
		// 3.1. Бронирование с блокировкой (FOR UPDATE)
		reservation, err := s.getReservation(txCtx, "UpdateStatus", id)
		if err != nil {
			return err
		}

		if !caller.IsAdmin() && !(reservation.UserID == caller.ID && newStatus == domain.StatusCancelled) {
			s.logger.Warn("UpdateStatus: user=%d is not allowed to set status=%s on reservation id=%d",
				caller.ID, newStatus, id)
			return ErrAccessDenied
		}

		// 3.2. Таблица переходов; подтверждение только через оплату
		if !reservation.CanChangeStatusTo(newStatus) {
			s.logger.Warn("UpdateStatus: transition %s -> %s is not allowed for reservation id=%d",
				reservation.Status, newStatus, id)
			return fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, reservation.Status, newStatus)
		}

		// 3.3. Отменить можно только будущее бронирование
		if newStatus == domain.StatusCancelled && !reservation.StartTime.After(s.timeProvider.Now()) {
			s.logger.Warn("UpdateStatus: reservation id=%d already started at %s", id, reservation.StartTime)
			return ErrCannotCancel
		}

		if err := s.reservationRepo.UpdateStatus(txCtx, id, newStatus); err != nil {
			if errors.Is(err, reservationRepo.ErrReservationNotFound) {
				return ErrReservationNotFound
			}
			s.logger.Error("UpdateStatus: repository error for reservation id=%d: %v", id, err)
			return fmt.Errorf("%w: UpdateStatus - repository error: %w", ErrInternal, err)
		}

		// 3.4. Инвентарь отмененного бронирования возвращается на склад
		if newStatus == domain.StatusCancelled {
			if err := s.releaseEquipment(txCtx, reservation); err != nil {
				return err
			}
		}

		previousStatus = reservation.Status
		reservation.Status = newStatus
		updated = reservation
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("UpdateStatus: reservation id=%d changed %s -> %s", id, previousStatus, newStatus)

	// 4. Уведомление об отмене после коммита, ошибки только логируются
	if newStatus == domain.StatusCancelled && previousStatus != domain.StatusCancelled {
		if err := s.notifier.ReservationCancelled(ctx, updated); err != nil {
			s.logger.Warn("UpdateStatus: cancellation notification for reservation id=%d failed: %v", id, err)
		}
	}

	return models.FromDomainReservation(updated), nil
}

// Вспомогательные методы

func (s *Service) getReservation(ctx context.Context, op string, id int64) (*domain.Reservation, error) {
	reservation, err := s.reservationRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, reservationRepo.ErrReservationNotFound) {
			s.logger.Warn("%s: reservation id=%d not found", op, id)
			return nil, ErrReservationNotFound
		}
		s.logger.Error("%s: repository error for reservation id=%d: %v", op, id, err)
		return nil, fmt.Errorf("%w: %s - repository error: %w", ErrInternal, op, err)
	}
	return reservation, nil
}

func (s *Service) getCaller(ctx context.Context, op string, userID int64) (*domain.User, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, userRepo.ErrUserNotFound) {
			s.logger.Warn("%s: caller user=%d not found", op, userID)
			return nil, ErrAccessDenied
		}
		s.logger.Error("%s: failed to get caller user=%d: %v", op, userID, err)
		return nil, fmt.Errorf("%w: %s - failed to get user: %v", ErrInternal, op, err)
	}
	return user, nil
}

func (s *Service) releaseEquipment(ctx context.Context, reservation *domain.Reservation) error {
	for _, item := range reservation.Equipment {
		if err := s.productRepo.Release(ctx, item.ProductID, item.Quantity); err != nil {
			s.logger.Error("UpdateStatus: failed to release product id=%d for reservation id=%d: %v",
				item.ProductID, reservation.ID, err)
			return fmt.Errorf("%w: UpdateStatus - release equipment: %w", ErrInternal, err)
		}
	}
	return nil
}

// checkAdmin проверяет, что пользователь - администратор
func (s *Service) checkAdmin(ctx context.Context, op string, userID int64) error {
	user, err := s.getCaller(ctx, op, userID)
	if err != nil {
		return err
	}
	if !user.IsAdmin() {
		s.logger.Warn("%s: user=%d is not an admin", op, userID)
		return ErrAccessDenied
	}
	return nil
}
