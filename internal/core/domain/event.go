package domain

import "time"

type Event interface {
	GetName() string
	GetEntityName() string
}

type ProductSavedEvent struct {
	ProductID  string    `json:"product_id"`
	CategoryID string    `json:"category_id"`
	Status     Status    `json:"status"`
	SavedAt    time.Time `json:"saved_at"`
}

func (e *ProductSavedEvent) GetName() string {
	return "product.saved"
}

func (e *ProductSavedEvent) GetEntityName() string {
	return "product"
}

func NewProductSavedEvent(product *Product) *ProductSavedEvent {
	return &ProductSavedEvent{
		ProductID:  product.ID.String(),
		CategoryID: product.CategoryID,
		Status:     product.Status,
		SavedAt:    product.UpdatedAt,
	}
}

type ProductDeletedEvent struct {
	ProductID string    `json:"product_id"`
	DeletedAt time.Time `json:"deleted_at"`
}

func (e *ProductDeletedEvent) GetName() string {
	return "product.deleted"
}

func (e *ProductDeletedEvent) GetEntityName() string {
	return "product"
}

func NewProductDeletedEvent(id ProductID, deletedAt time.Time) *ProductDeletedEvent {
	return &ProductDeletedEvent{
		ProductID: id.String(),
		DeletedAt: deletedAt,
	}
}
