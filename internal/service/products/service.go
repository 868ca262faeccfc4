package products

import (
	"context"
	"fmt"

	"github.com/m04kA/court-reservation-service/internal/service/products/models"
)

// Service каталог инвентаря, который можно добавить к бронированию
type Service struct {
	productRepo ProductRepository
	logger      Logger
}

// NewService создает новый экземпляр сервиса инвентаря
func NewService(productRepo ProductRepository, logger Logger) *Service {
	return &Service{
		productRepo: productRepo,
		logger:      logger,
	}
}

// List возвращает каталог. availableOnly скрывает недоступные позиции и позиции без остатка.
func (s *Service) List(ctx context.Context, availableOnly bool) (*models.ProductListResponse, error) {
	s.logger.Info("List: fetching products, availableOnly=%t", availableOnly)

	products, err := s.productRepo.List(ctx, availableOnly)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("List: successfully fetched %d products", len(products))
	return models.FromDomainProductList(products), nil
}
