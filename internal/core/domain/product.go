package domain

import "time"

// Product is the catalog aggregate. Instances are immutable: an update is
// a new Product persisted under the same id.
type Product struct {
	ID          ProductID
	Title       string
	Description string
	Price       Price
	CategoryID  string
	Status      Status
	Stock       Stock
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func NewProduct(id ProductID, title, description string, price Price, categoryID string, status Status, stock Stock, createdAt, updatedAt time.Time) *Product {
	return &Product{
		ID:          id,
		Title:       title,
		Description: description,
		Price:       price,
		CategoryID:  categoryID,
		Status:      status,
		Stock:       stock,
		CreatedAt:   createdAt,
		UpdatedAt:   updatedAt,
	}
}

// IsAvailable reports whether the product can be sold right now: active
// status with stock on hand.
func (p *Product) IsAvailable() bool {
	return p.Status.IsActive() && p.Stock.IsAvailable()
}

func (p *Product) HasStock(quantity int) bool {
	return p.Stock.HasStock(quantity)
}
