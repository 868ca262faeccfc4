package products

import (
	"context"

	"github.com/m04kA/court-reservation-service/internal/domain"
)

// ProductRepository интерфейс репозитория инвентаря
type ProductRepository interface {
	List(ctx context.Context, availableOnly bool) ([]*domain.Product, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Error(format string, v ...interface{})
}
