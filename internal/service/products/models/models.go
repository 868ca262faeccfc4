package models

import "github.com/m04kA/court-reservation-service/internal/domain"

// ProductResponse позиция каталога инвентаря
type ProductResponse struct {
	ID        int64   `json:"id"`
	Name      string  `json:"name"`
	Price     float64 `json:"price"`
	Stock     int     `json:"stock"`
	Available bool    `json:"available"`
}

// ProductListResponse ответ со списком инвентаря
type ProductListResponse struct {
	Products []ProductResponse `json:"products"`
}

// FromDomainProductList конвертирует список domain моделей в DTO
func FromDomainProductList(products []*domain.Product) *ProductListResponse {
	resp := &ProductListResponse{
		Products: make([]ProductResponse, 0, len(products)),
	}
	for _, p := range products {
		resp.Products = append(resp.Products, ProductResponse{
			ID:        p.ID,
			Name:      p.Name,
			Price:     p.Price,
			Stock:     p.Stock,
			Available: p.Available && p.Stock > 0,
		})
	}
	return resp
}
