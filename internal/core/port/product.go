package port

import (
	"context"

	"github.com/rafaelleal24/catalog/internal/core/domain"
)

//go:generate mockgen -source=$GOFILE -destination=mock/$GOFILE -package=mock

// ProductRepository is the persistence port for the catalog.
//
// FindByID returns nil without error when no product matches. Listing
// operations sort by UpdatedAt descending; limit <= 0 means no limit.
type ProductRepository interface {
	FindByID(ctx context.Context, id domain.ProductID) (*domain.Product, error)
	FindByCategory(ctx context.Context, categoryID string, limit, offset int) ([]*domain.Product, error)
	FindAll(ctx context.Context, limit, offset int) ([]*domain.Product, error)
	Save(ctx context.Context, product *domain.Product) error
	Delete(ctx context.Context, id domain.ProductID) error
	Exists(ctx context.Context, id domain.ProductID) (bool, error)
	ClearCache()
}
