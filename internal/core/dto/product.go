package dto

import "github.com/rafaelleal24/catalog/internal/core/domain"

type SearchProductsRequest struct {
	CategoryID string `form:"category"`
	Limit      *int   `form:"limit"`
	Offset     *int   `form:"offset"`
}

type SearchProductsResult struct {
	Products []*domain.Product
	Limit    int
	Offset   int
	HasMore  bool
}

type PriceRequest struct {
	Amount         float64  `json:"amount" binding:"gte=0"`
	Currency       string   `json:"currency" binding:"required"`
	OriginalAmount *float64 `json:"originalAmount,omitempty"`
}

// SaveProductRequest upserts a product. An empty ID means a new product;
// the service generates an identifier for it.
type SaveProductRequest struct {
	ID                string       `json:"id"`
	Title             string       `json:"title" binding:"required"`
	Description       string       `json:"description"`
	Price             PriceRequest `json:"price" binding:"required"`
	CategoryID        string       `json:"categoryId" binding:"required"`
	Status            string       `json:"status" binding:"required"`
	AvailableQuantity int          `json:"availableQuantity" binding:"gte=0"`
}
