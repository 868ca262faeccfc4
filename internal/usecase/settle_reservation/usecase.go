package settle_reservation

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/court-reservation-service/internal/domain"
	reservationRepo "github.com/m04kA/court-reservation-service/internal/infra/storage/reservation"
	userRepo "github.com/m04kA/court-reservation-service/internal/infra/storage/user"
	"github.com/m04kA/court-reservation-service/pkg/ptr"
)

// UseCase use case оплаты бронирования с баланса пользователя
type UseCase struct {
	reservationRepo ReservationRepository
	userRepo        UserRepository
	notifier        Notifier
	txManager       TransactionManager
	metrics         MetricsRecorder
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	reservationRepo ReservationRepository,
	userRepo UserRepository,
	notifier Notifier,
	txManager TransactionManager,
	metrics MetricsRecorder,
	logger Logger,
) *UseCase {
	return &UseCase{
		reservationRepo: reservationRepo,
		userRepo:        userRepo,
		notifier:        notifier,
		txManager:       txManager,
		metrics:         metrics,
		logger:          logger,
	}
}

// Execute списывает сумму бронирования с баланса и подтверждает его.
// Списание и смена статуса идут в одной транзакции; уведомление отправляется после коммита
// и его ошибка не влияет на результат.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("SettleReservation: reservation=%d, user=%d", req.ReservationID, req.UserID)

	// 1. Валидация входных данных
	if req.ReservationID <= 0 || req.UserID <= 0 {
		uc.logger.Warn("SettleReservation: invalid ids reservation=%d user=%d", req.ReservationID, req.UserID)
		return nil, fmt.Errorf("%w: reservationId and userId must be positive", ErrInvalidInput)
	}

	// 2. Предусловия без блокировок
	reservation, err := uc.getReservation(ctx, req.ReservationID)
	if err != nil {
		return nil, err
	}
	if err := checkPreconditions(reservation, req.UserID); err != nil {
		uc.logger.Warn("SettleReservation: reservation id=%d: %v", reservation.ID, err)
		return nil, err
	}

	var result *Response

	// 3. Списание и подтверждение в сериализуемой транзакции
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 3.1. Перечитываем бронирование с блокировкой (FOR UPDATE)
		locked, err := uc.getReservation(txCtx, req.ReservationID)
		if err != nil {
			return err
		}
		if err := checkPreconditions(locked, req.UserID); err != nil {
			uc.logger.Warn("SettleReservation: reservation id=%d changed concurrently: %v", locked.ID, err)
			return err
		}

		// 3.2. Блокируем баланс пользователя
		user, err := uc.userRepo.GetByID(txCtx, req.UserID)
		if err != nil {
			if errors.Is(err, userRepo.ErrUserNotFound) {
				uc.logger.Warn("SettleReservation: user id=%d not found", req.UserID)
				return ErrUserNotFound
			}
			uc.logger.Error("SettleReservation: failed to get user id=%d: %v", req.UserID, err)
			return fmt.Errorf("%w: failed to get user: %w", ErrInternal, err)
		}

		// 3.3. Нехватка средств: ничего не пишем
		if shortfall := domain.Shortfall(user.Balance, locked.Amount); shortfall > 0 {
			result = insufficient(locked, user.Balance, shortfall)
			return nil
		}

		// 3.4. Списываем
		balance, err := uc.userRepo.Debit(txCtx, req.UserID, locked.Amount)
		if err != nil {
			if errors.Is(err, userRepo.ErrInsufficientBalance) {
				result = insufficient(locked, user.Balance, domain.Shortfall(user.Balance, locked.Amount))
				return nil
			}
			uc.logger.Error("SettleReservation: failed to debit user id=%d: %v", req.UserID, err)
			return fmt.Errorf("%w: failed to debit balance: %w", ErrInternal, err)
		}

		// 3.5. Подтверждаем бронирование
		if err := uc.reservationRepo.UpdateStatus(txCtx, locked.ID, domain.StatusConfirmed); err != nil {
			uc.logger.Error("SettleReservation: failed to confirm reservation id=%d: %v", locked.ID, err)
			return fmt.Errorf("%w: failed to update status: %w", ErrInternal, err)
		}

		locked.Status = domain.StatusConfirmed
		reservation = locked
		result = &Response{
			Success:       true,
			Message:       messageConfirmed,
			ReservationID: locked.ID,
			Status:        string(locked.Status),
			Amount:        locked.Amount,
			Balance:       balance,
		}
		return nil
	})

	if err != nil {
		return nil, err
	}

	if !result.Success {
		uc.metrics.IncSettlement(ResultInsufficientBalance)
		uc.logger.Warn("SettleReservation: insufficient balance for reservation id=%d: balance=%.2f, amount=%.2f",
			result.ReservationID, result.Balance, result.Amount)
		return result, nil
	}

	uc.metrics.IncSettlement(ResultConfirmed)
	uc.logger.Info("SettleReservation: reservation id=%d confirmed, balance=%.2f", result.ReservationID, result.Balance)

	// 4. Уведомление после коммита
	if err := uc.notifier.ReservationConfirmed(ctx, reservation); err != nil {
		uc.logger.Warn("SettleReservation: confirmation notification for reservation id=%d failed: %v", reservation.ID, err)
	}

	return result, nil
}

func (uc *UseCase) getReservation(ctx context.Context, id int64) (*domain.Reservation, error) {
	reservation, err := uc.reservationRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, reservationRepo.ErrReservationNotFound) {
			uc.logger.Warn("SettleReservation: reservation id=%d not found", id)
			return nil, ErrReservationNotFound
		}
		uc.logger.Error("SettleReservation: failed to get reservation id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: failed to get reservation: %w", ErrInternal, err)
	}
	return reservation, nil
}

// checkPreconditions проверяет владельца и статус pending
func checkPreconditions(reservation *domain.Reservation, userID int64) error {
	if reservation.UserID != userID {
		return ErrForbidden
	}
	if reservation.Status != domain.StatusPending {
		return fmt.Errorf("%w: status is %s", ErrAlreadyProcessed, reservation.Status)
	}
	return nil
}

func insufficient(reservation *domain.Reservation, balance, shortfall float64) *Response {
	return &Response{
		Success:       false,
		Message:       messageInsufficientBalance,
		ReservationID: reservation.ID,
		Status:        string(reservation.Status),
		Amount:        reservation.Amount,
		Balance:       balance,
		Shortfall:     ptr.Ptr(shortfall),
	}
}
