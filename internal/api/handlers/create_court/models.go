package create_court

import (
	"github.com/m04kA/court-reservation-service/internal/service/courts/models"
)

// CreateCourtRequest HTTP request model
type CreateCourtRequest struct {
	Name         string  `json:"name"`
	Capacity     int     `json:"capacity"`
	PricePerHour float64 `json:"pricePerHour"`
	Covered      bool    `json:"covered"`
	Status       *string `json:"status,omitempty"`
	ImagePath    *string `json:"imagePath,omitempty"`
}

// ToServiceRequest конвертирует HTTP request в модель сервиса
func (r *CreateCourtRequest) ToServiceRequest(userID int64) *models.CreateCourtRequest {
	return &models.CreateCourtRequest{
		UserID:       userID,
		Name:         r.Name,
		Capacity:     r.Capacity,
		PricePerHour: r.PricePerHour,
		Covered:      r.Covered,
		Status:       r.Status,
		ImagePath:    r.ImagePath,
	}
}
