package models

import (
	"errors"
	"strings"
	"time"

	"github.com/m04kA/court-reservation-service/internal/domain"
)

// ErrInvalidStatus возвращается при некорректном статусе корта
var ErrInvalidStatus = errors.New("invalid court status")

// Request модели

// CreateCourtRequest запрос на создание корта
type CreateCourtRequest struct {
	UserID       int64   `json:"-"`
	Name         string  `json:"name"`
	Capacity     int     `json:"capacity"`
	PricePerHour float64 `json:"pricePerHour"`
	Covered      bool    `json:"covered"`
	Status       *string `json:"status,omitempty"`    // по умолчанию available
	ImagePath    *string `json:"imagePath,omitempty"` // относительный путь, загрузка файла вне сервиса
}

// UpdateCourtRequest запрос на обновление корта
// Все поля опциональны - обновляются только переданные значения
type UpdateCourtRequest struct {
	UserID       int64    `json:"-"`
	Name         *string  `json:"name,omitempty"`
	Capacity     *int     `json:"capacity,omitempty"`
	PricePerHour *float64 `json:"pricePerHour,omitempty"`
	Covered      *bool    `json:"covered,omitempty"`
	Status       *string  `json:"status,omitempty"`
	ImagePath    *string  `json:"imagePath,omitempty"` // пустая строка убирает изображение
}

// Response модели

// CourtResponse ответ с данными корта
type CourtResponse struct {
	ID           int64     `json:"id"`
	Name         string    `json:"name"`
	Capacity     int       `json:"capacity"`
	PricePerHour float64   `json:"pricePerHour"`
	Covered      bool      `json:"covered"`
	Status       string    `json:"status"`
	ImageURL     *string   `json:"imageUrl,omitempty"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// CourtListResponse ответ со списком кортов
type CourtListResponse struct {
	Courts []CourtResponse `json:"courts"`
}

// Методы конвертации

// FromDomainCourt конвертирует domain модель в DTO.
// URL изображения собирается из базового адреса и пути, сам корт не меняется.
func FromDomainCourt(c *domain.Court, imageBaseURL string) *CourtResponse {
	if c == nil {
		return nil
	}

	resp := &CourtResponse{
		ID:           c.ID,
		Name:         c.Name,
		Capacity:     c.Capacity,
		PricePerHour: c.PricePerHour,
		Covered:      c.Covered,
		Status:       string(c.Status),
		CreatedAt:    c.CreatedAt,
		UpdatedAt:    c.UpdatedAt,
	}

	if c.ImagePath != nil && *c.ImagePath != "" {
		url := strings.TrimRight(imageBaseURL, "/") + "/" + strings.TrimLeft(*c.ImagePath, "/")
		resp.ImageURL = &url
	}

	return resp
}

// FromDomainCourtList конвертирует список domain моделей в DTO
func FromDomainCourtList(courts []*domain.Court, imageBaseURL string) *CourtListResponse {
	resp := &CourtListResponse{
		Courts: make([]CourtResponse, 0, len(courts)),
	}

	for _, court := range courts {
		if courtResp := FromDomainCourt(court, imageBaseURL); courtResp != nil {
			resp.Courts = append(resp.Courts, *courtResp)
		}
	}

	return resp
}

// ToDomainCourtStatus конвертирует строку в domain.CourtStatus
func ToDomainCourtStatus(s string) (domain.CourtStatus, error) {
	status := domain.CourtStatus(s)
	if !domain.IsValidCourtStatus(status) {
		return "", ErrInvalidStatus
	}
	return status, nil
}

// ToDomainCourt конвертирует CreateCourtRequest в domain модель
func (r *CreateCourtRequest) ToDomainCourt() *domain.Court {
	court := &domain.Court{
		Name:         strings.TrimSpace(r.Name),
		Capacity:     r.Capacity,
		PricePerHour: r.PricePerHour,
		Covered:      r.Covered,
		Status:       domain.CourtAvailable,
		ImagePath:    normalizeImagePath(r.ImagePath),
	}
	if r.Status != nil {
		court.Status = domain.CourtStatus(*r.Status)
	}
	return court
}

// ApplyToCourt применяет обновления к существующему корту
// Обновляются только непустые (not nil) поля из request
func (r *UpdateCourtRequest) ApplyToCourt(court *domain.Court) {
	if r.Name != nil {
		court.Name = strings.TrimSpace(*r.Name)
	}
	if r.Capacity != nil {
		court.Capacity = *r.Capacity
	}
	if r.PricePerHour != nil {
		court.PricePerHour = *r.PricePerHour
	}
	if r.Covered != nil {
		court.Covered = *r.Covered
	}
	if r.Status != nil {
		court.Status = domain.CourtStatus(*r.Status)
	}
	if r.ImagePath != nil {
		court.ImagePath = normalizeImagePath(r.ImagePath)
	}
}

func normalizeImagePath(p *string) *string {
	if p == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*p)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}
