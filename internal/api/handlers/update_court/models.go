package update_court

import (
	"github.com/m04kA/court-reservation-service/internal/service/courts/models"
)

// UpdateCourtRequest HTTP request model, все поля опциональны
type UpdateCourtRequest struct {
	Name         *string  `json:"name,omitempty"`
	Capacity     *int     `json:"capacity,omitempty"`
	PricePerHour *float64 `json:"pricePerHour,omitempty"`
	Covered      *bool    `json:"covered,omitempty"`
	Status       *string  `json:"status,omitempty"`
	ImagePath    *string  `json:"imagePath,omitempty"`
}

// ToServiceRequest конвертирует HTTP request в модель сервиса
func (r *UpdateCourtRequest) ToServiceRequest(userID int64) *models.UpdateCourtRequest {
	return &models.UpdateCourtRequest{
		UserID:       userID,
		Name:         r.Name,
		Capacity:     r.Capacity,
		PricePerHour: r.PricePerHour,
		Covered:      r.Covered,
		Status:       r.Status,
		ImagePath:    r.ImagePath,
	}
}
