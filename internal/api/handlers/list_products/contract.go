package list_products

import (
	"context"

	"github.com/m04kA/court-reservation-service/internal/service/products/models"
)

type ProductService interface {
	List(ctx context.Context, availableOnly bool) (*models.ProductListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
