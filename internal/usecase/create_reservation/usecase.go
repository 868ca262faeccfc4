package create_reservation

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/court-reservation-service/internal/domain"
	courtRepo "github.com/m04kA/court-reservation-service/internal/infra/storage/court"
	productRepo "github.com/m04kA/court-reservation-service/internal/infra/storage/product"
	reservationRepo "github.com/m04kA/court-reservation-service/internal/infra/storage/reservation"
	userRepo "github.com/m04kA/court-reservation-service/internal/infra/storage/user"
	"github.com/m04kA/court-reservation-service/pkg/ptr"
	"github.com/m04kA/court-reservation-service/pkg/validation"
)

// UseCase use case для создания бронирования
type UseCase struct {
	reservationRepo ReservationRepository
	courtRepo       CourtRepository
	userRepo        UserRepository
	productRepo     ProductRepository
	txManager       TransactionManager
	metrics         MetricsRecorder
	timeProvider    TimeProvider
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	reservationRepo ReservationRepository,
	courtRepo CourtRepository,
	userRepo UserRepository,
	productRepo ProductRepository,
	txManager TransactionManager,
	metrics MetricsRecorder,
	logger Logger,
) *UseCase {
	return &UseCase{
		reservationRepo: reservationRepo,
		courtRepo:       courtRepo,
		userRepo:        userRepo,
		productRepo:     productRepo,
		txManager:       txManager,
		metrics:         metrics,
		timeProvider:    &RealTimeProvider{},
		logger:          logger,
	}
}

// Execute выполняет use case создания бронирования.
// Проверка пересечений и запись идут в одной сериализуемой транзакции,
// дополнительно гонку закрывает exclusion constraint в БД.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateReservation: user=%d, court=%d, start=%s, end=%s, players=%d",
		req.UserID, req.CourtID, req.StartTime, req.EndTime, len(req.Players))

	// 1. Структурная валидация
	players, err := validateRequest(req)
	if err != nil {
		uc.logger.Warn("CreateReservation: validation failed: %v", err)
		return nil, err
	}

	now := uc.timeProvider.Now()

	// 2. Корт
	court, err := uc.courtRepo.GetByID(ctx, req.CourtID)
	if err != nil {
		if errors.Is(err, courtRepo.ErrCourtNotFound) {
			uc.logger.Warn("CreateReservation: court id=%d not found", req.CourtID)
			return nil, ErrCourtNotFound
		}
		uc.logger.Error("CreateReservation: failed to get court id=%d: %v", req.CourtID, err)
		return nil, fmt.Errorf("%w: failed to get court: %v", ErrInternal, err)
	}
	if !court.IsBookable() {
		uc.logger.Warn("CreateReservation: court id=%d is under maintenance", court.ID)
		return nil, ErrCourtUnavailable
	}

	// 3. Вместимость
	if !court.FitsPlayers(len(players)) {
		uc.logger.Warn("CreateReservation: %d players exceed capacity %d of court id=%d",
			len(players), court.Capacity, court.ID)
		return nil, fmt.Errorf("%w: %d players, capacity %d", ErrCapacityExceeded, len(players), court.Capacity)
	}

	// 4. Пользователь
	if _, err := uc.userRepo.GetByID(ctx, req.UserID); err != nil {
		if errors.Is(err, userRepo.ErrUserNotFound) {
			uc.logger.Warn("CreateReservation: user id=%d not found", req.UserID)
			return nil, ErrUserNotFound
		}
		uc.logger.Error("CreateReservation: failed to get user id=%d: %v", req.UserID, err)
		return nil, fmt.Errorf("%w: failed to get user: %v", ErrInternal, err)
	}

	// 5. Время начала и окончания
	start, end, err := parseInterval(req.StartTime, req.EndTime, now)
	if err != nil {
		uc.logger.Warn("CreateReservation: invalid interval: %v", err)
		return nil, err
	}

	// 6. Инвентарь, цены берутся из каталога
	equipment, err := uc.loadEquipment(ctx, req.Equipment)
	if err != nil {
		return nil, err
	}

	// 7. Сумма всегда считается на сервере
	amount := domain.CalculateAmount(court.PricePerHour, start, end)

	var result *domain.Reservation

	// 8. Проверка пересечений и запись в сериализуемой транзакции
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 8.1. Активные бронирования корта в этом окне с блокировкой (FOR UPDATE)
		filter := domain.ReservationFilter{
			CourtID:  ptr.Ptr(court.ID),
			Statuses: domain.BlockingStatuses,
			From:     ptr.Ptr(start),
			To:       ptr.Ptr(end),
		}

		existing, err := uc.reservationRepo.List(txCtx, filter)
		if err != nil {
			uc.logger.Error("CreateReservation: failed to get reservations: %v", err)
			return fmt.Errorf("%w: failed to get reservations: %w", ErrInternal, err)
		}

		// 8.2. Проверяем пересечение
		if overlapping := findOverlapping(start, end, existing); overlapping != nil {
			uc.logger.Warn("CreateReservation: court id=%d window %s-%s overlaps reservation id=%d",
				court.ID, start.Format(domain.TimeFormat), end.Format(domain.TimeFormat), overlapping.ID)
			return ErrSlotConflict
		}

		// 8.3. Списываем инвентарь со склада
		if err := uc.reserveStock(txCtx, equipment); err != nil {
			return err
		}

		// 8.4. Сохраняем бронирование, игроков и инвентарь
		reservation := &domain.Reservation{
			UserID:    req.UserID,
			CourtID:   court.ID,
			StartTime: start,
			EndTime:   end,
			Amount:    amount,
			Status:    domain.StatusPending,
			Players:   players,
			Equipment: equipment,
		}

		created, err := uc.reservationRepo.Create(txCtx, reservation)
		if err != nil {
			if errors.Is(err, reservationRepo.ErrSlotConflict) {
				uc.logger.Warn("CreateReservation: exclusion constraint rejected court id=%d window %s-%s",
					court.ID, start.Format(domain.TimeFormat), end.Format(domain.TimeFormat))
				return ErrSlotConflict
			}
			uc.logger.Error("CreateReservation: failed to create reservation: %v", err)
			return fmt.Errorf("%w: failed to create reservation: %w", ErrInternal, err)
		}

		result = created
		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.metrics.IncReservationCreated()
	uc.logger.Info("CreateReservation: successfully created reservation id=%d, amount=%.2f", result.ID, result.Amount)

	return toResponse(result), nil
}

func (uc *UseCase) loadEquipment(ctx context.Context, items []EquipmentInput) ([]domain.EquipmentItem, error) {
	if len(items) == 0 {
		return []domain.EquipmentItem{}, nil
	}

	ids := make([]int64, 0, len(items))
	for _, item := range items {
		ids = append(ids, item.ProductID)
	}

	products, err := uc.productRepo.GetByIDs(ctx, ids)
	if err != nil {
		uc.logger.Error("CreateReservation: failed to get products: %v", err)
		return nil, fmt.Errorf("%w: failed to get products: %v", ErrInternal, err)
	}

	equipment, err := priceEquipment(items, products)
	if err != nil {
		uc.logger.Warn("CreateReservation: equipment validation failed: %v", err)
		return nil, err
	}
	return equipment, nil
}

// reserveStock списывает инвентарь внутри транзакции создания.
// Каталог читался до транзакции, поэтому нехватка здесь означает конкурентное списание.
func (uc *UseCase) reserveStock(ctx context.Context, equipment []domain.EquipmentItem) error {
	for i, item := range equipment {
		if _, err := uc.productRepo.Reserve(ctx, item.ProductID, item.Quantity); err != nil {
			if errors.Is(err, productRepo.ErrInsufficientStock) {
				uc.logger.Warn("CreateReservation: product id=%d ran out of stock for quantity %d", item.ProductID, item.Quantity)
				return validation.NewError(ErrInvalidInput, fmt.Sprintf("equipment[%d].quantity", i),
					"product %d is not available in quantity %d", item.ProductID, item.Quantity)
			}
			uc.logger.Error("CreateReservation: failed to reserve product id=%d: %v", item.ProductID, err)
			return fmt.Errorf("%w: failed to reserve equipment: %w", ErrInternal, err)
		}
	}
	return nil
}

func toResponse(r *domain.Reservation) *Response {
	players := make([]Player, 0, len(r.Players))
	for _, p := range r.Players {
		players = append(players, Player{
			ID:        p.ID,
			FirstName: p.FirstName,
			LastName:  p.LastName,
			Rut:       p.Rut,
			Age:       p.Age,
		})
	}

	equipment := make([]Equipment, 0, len(r.Equipment))
	for _, e := range r.Equipment {
		equipment = append(equipment, Equipment{
			ProductID: e.ProductID,
			Quantity:  e.Quantity,
			UnitPrice: e.UnitPrice,
		})
	}

	return &Response{
		ID:        r.ID,
		UserID:    r.UserID,
		CourtID:   r.CourtID,
		StartTime: r.StartTime,
		EndTime:   r.EndTime,
		Amount:    r.Amount,
		Status:    string(r.Status),
		Players:   players,
		Equipment: equipment,
		CreatedAt: r.CreatedAt,
		UpdatedAt: r.UpdatedAt,
	}
}
