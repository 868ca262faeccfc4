package courts

import (
	"context"
	"errors"
	"fmt"
	"unicode/utf8"

	"github.com/m04kA/court-reservation-service/internal/domain"
	courtRepo "github.com/m04kA/court-reservation-service/internal/infra/storage/court"
	userRepo "github.com/m04kA/court-reservation-service/internal/infra/storage/user"
	"github.com/m04kA/court-reservation-service/internal/service/courts/models"
	"github.com/m04kA/court-reservation-service/pkg/validation"
)

// Service сервис справочника кортов
type Service struct {
	courtRepo       CourtRepository
	reservationRepo ReservationRepository
	userRepo        UserRepository
	imageBaseURL    string
	timeProvider    TimeProvider
	logger          Logger
}

// NewService создает новый экземпляр сервиса кортов
func NewService(
	courtRepo CourtRepository,
	reservationRepo ReservationRepository,
	userRepo UserRepository,
	imageBaseURL string,
	logger Logger,
) *Service {
	return &Service{
		courtRepo:       courtRepo,
		reservationRepo: reservationRepo,
		userRepo:        userRepo,
		imageBaseURL:    imageBaseURL,
		timeProvider:    &RealTimeProvider{},
		logger:          logger,
	}
}

// Create создает новый корт
// Доступно только администраторам
func (s *Service) Create(ctx context.Context, req *models.CreateCourtRequest) (*models.CourtResponse, error) {
	s.logger.Info("Create: creating court name=%q by user=%d", req.Name, req.UserID)

	// 1. Проверяем права доступа
	if err := s.checkAdmin(ctx, "Create", req.UserID); err != nil {
		return nil, err
	}

	// 2. Валидируем данные
	court := req.ToDomainCourt()
	if err := validateCourt(court); err != nil {
		s.logger.Warn("Create: validation failed: %v", err)
		return nil, err
	}

	// 3. Сохраняем
	created, err := s.courtRepo.Create(ctx, court)
	if err != nil {
		s.logger.Error("Create: repository error: %v", err)
		return nil, fmt.Errorf("%w: Create - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Create: successfully created court id=%d", created.ID)
	return models.FromDomainCourt(created, s.imageBaseURL), nil
}

// GetByID получает корт по ID
// Публичный метод - доступен всем
func (s *Service) GetByID(ctx context.Context, id int64) (*models.CourtResponse, error) {
	s.logger.Info("GetByID: fetching court id=%d", id)

	court, err := s.getCourt(ctx, "GetByID", id)
	if err != nil {
		return nil, err
	}

	return models.FromDomainCourt(court, s.imageBaseURL), nil
}

// List получает все корты, опционально с фильтром по статусу
// Публичный метод - доступен всем
func (s *Service) List(ctx context.Context, status *string) (*models.CourtListResponse, error) {
	s.logger.Info("List: fetching courts, status=%v", status)

	var domainStatus *domain.CourtStatus
	if status != nil {
		st, err := models.ToDomainCourtStatus(*status)
		if err != nil {
			s.logger.Warn("List: invalid status=%s", *status)
			return nil, validation.NewError(ErrInvalidInput, "status", "unknown court status %q", *status)
		}
		domainStatus = &st
	}

	courts, err := s.courtRepo.List(ctx, domainStatus)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("List: successfully fetched %d courts", len(courts))
	return models.FromDomainCourtList(courts, s.imageBaseURL), nil
}

// Update обновляет существующий корт
// Доступно только администраторам
// Поддерживает частичное обновление - обновляются только указанные поля
func (s *Service) Update(ctx context.Context, id int64, req *models.UpdateCourtRequest) (*models.CourtResponse, error) {
	s.logger.Info("Update: updating court id=%d by user=%d", id, req.UserID)

	// 1. Проверяем права доступа
	if err := s.checkAdmin(ctx, "Update", req.UserID); err != nil {
		return nil, err
	}

	// 2. Получаем существующий корт
	court, err := s.getCourt(ctx, "Update", id)
	if err != nil {
		return nil, err
	}

	// 3. Применяем обновления и валидируем результат
	req.ApplyToCourt(court)
	if err := validateCourt(court); err != nil {
		s.logger.Warn("Update: validation failed for court id=%d: %v", id, err)
		return nil, err
	}

	// 4. Обновляем корт в БД
	updated, err := s.courtRepo.Update(ctx, id, court)
	if err != nil {
		if errors.Is(err, courtRepo.ErrCourtNotFound) {
			s.logger.Warn("Update: court id=%d not found during update", id)
			return nil, ErrCourtNotFound
		}
		s.logger.Error("Update: repository error for court id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Update: successfully updated court id=%d", id)
	return models.FromDomainCourt(updated, s.imageBaseURL), nil
}

// Delete удаляет корт
// Доступно только администраторам. Корт с действующими бронированиями удалить нельзя.
func (s *Service) Delete(ctx context.Context, id int64, userID int64) error {
	s.logger.Info("Delete: deleting court id=%d by user=%d", id, userID)

	// 1. Проверяем права доступа
	if err := s.checkAdmin(ctx, "Delete", userID); err != nil {
		return err
	}

	// 2. Проверяем существование
	if _, err := s.getCourt(ctx, "Delete", id); err != nil {
		return err
	}

	// 3. Действующие бронирования, которые еще не закончились
	active, err := s.reservationRepo.CountActiveByCourt(ctx, id, s.timeProvider.Now())
	if err != nil {
		s.logger.Error("Delete: failed to count reservations for court id=%d: %v", id, err)
		return fmt.Errorf("%w: Delete - count reservations: %v", ErrInternal, err)
	}
	if active > 0 {
		s.logger.Warn("Delete: court id=%d has %d active reservations", id, active)
		return fmt.Errorf("%w: %d pending or confirmed", ErrHasActiveReservations, active)
	}

	// 4. Удаляем
	if err := s.courtRepo.Delete(ctx, id); err != nil {
		switch {
		case errors.Is(err, courtRepo.ErrCourtNotFound):
			s.logger.Warn("Delete: court id=%d not found during deletion", id)
			return ErrCourtNotFound
		case errors.Is(err, courtRepo.ErrHasReservations):
			s.logger.Warn("Delete: court id=%d is referenced by past reservations", id)
			return ErrHasReservationHistory
		}
		s.logger.Error("Delete: repository error for court id=%d: %v", id, err)
		return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Delete: successfully deleted court id=%d", id)
	return nil
}

// Вспомогательные методы

func (s *Service) getCourt(ctx context.Context, op string, id int64) (*domain.Court, error) {
	court, err := s.courtRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, courtRepo.ErrCourtNotFound) {
			s.logger.Warn("%s: court id=%d not found", op, id)
			return nil, ErrCourtNotFound
		}
		s.logger.Error("%s: repository error for court id=%d: %v", op, id, err)
		return nil, fmt.Errorf("%w: %s - repository error: %v", ErrInternal, op, err)
	}
	return court, nil
}

// checkAdmin проверяет, что пользователь - администратор
func (s *Service) checkAdmin(ctx context.Context, op string, userID int64) error {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, userRepo.ErrUserNotFound) {
			s.logger.Warn("%s: user=%d not found", op, userID)
			return ErrAccessDenied
		}
		s.logger.Error("%s: failed to get user=%d: %v", op, userID, err)
		return fmt.Errorf("%w: %s - failed to get user: %v", ErrInternal, op, err)
	}
	if !user.IsAdmin() {
		s.logger.Warn("%s: user=%d is not an admin", op, userID)
		return ErrAccessDenied
	}
	return nil
}

// validateCourt валидирует поля корта
func validateCourt(c *domain.Court) error {
	v := &validation.Collector{}

	nameLen := utf8.RuneCountInString(c.Name)
	v.Check(nameLen > 0, "name", "is required")
	v.Check(nameLen <= domain.MaxCourtNameLength, "name", "must be at most %d characters", domain.MaxCourtNameLength)
	v.Check(c.Capacity >= 1 && c.Capacity <= domain.MaxCourtCapacity,
		"capacity", "must be between 1 and %d", domain.MaxCourtCapacity)
	v.Check(c.PricePerHour >= 0, "pricePerHour", "must not be negative")
	v.Check(domain.IsValidCourtStatus(c.Status), "status", "unknown court status %q", c.Status)
	if c.ImagePath != nil {
		v.Check(len(*c.ImagePath) <= domain.MaxImagePathLength,
			"imagePath", "must be at most %d characters", domain.MaxImagePathLength)
	}

	return v.Err(ErrInvalidInput)
}
