package service

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/rafaelleal24/catalog/internal/core/domain"
	"github.com/rafaelleal24/catalog/internal/core/dto"
	"github.com/rafaelleal24/catalog/internal/core/logger"
	"github.com/rafaelleal24/catalog/internal/core/port"
	"github.com/rafaelleal24/catalog/internal/core/serviceerrors"
)

const defaultRelatedLimit = 4

type ProductService struct {
	productRepository port.ProductRepository
	search            *SearchService
	broker            port.Broker
}

func NewProductService(productRepository port.ProductRepository, search *SearchService, broker port.Broker) *ProductService {
	return &ProductService{
		productRepository: productRepository,
		search:            search,
		broker:            broker,
	}
}

func (s *ProductService) GetByID(ctx context.Context, rawID string) (*domain.Product, error) {
	id, err := domain.ParseProductID(rawID)
	if err != nil {
		return nil, serviceerrors.NewInvalidParamsError(err.Error())
	}

	product, err := s.productRepository.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, serviceerrors.NewNotFoundError(fmt.Sprintf("product %s not found", rawID))
	}
	return product, nil
}

// GetRelated returns up to limit available products sharing the source
// product's category, never including the source itself. limit <= 0 falls
// back to the default of 4.
func (s *ProductService) GetRelated(ctx context.Context, rawID string, limit int) ([]*domain.Product, error) {
	if limit <= 0 {
		limit = defaultRelatedLimit
	}

	source, err := s.GetByID(ctx, rawID)
	if err != nil {
		return nil, err
	}

	// one extra in case the source product occupies a slot, capped so the
	// internal request never exceeds the search page bound
	probe := limit + 1
	if probe > maxSearchLimit {
		probe = maxSearchLimit
	}
	result, err := s.search.Search(ctx, &dto.SearchProductsRequest{
		CategoryID: source.CategoryID,
		Limit:      &probe,
	})
	if err != nil {
		return nil, err
	}

	related := make([]*domain.Product, 0, limit)
	for _, product := range result.Products {
		if product.ID.Equals(source.ID) {
			continue
		}
		related = append(related, product)
		if len(related) == limit {
			break
		}
	}
	return related, nil
}

// SaveProduct upserts the product described by request. New products get a
// generated id; existing ones keep their creation timestamp. A saved event
// is published after the write, fire-and-forget.
func (s *ProductService) SaveProduct(ctx context.Context, request *dto.SaveProductRequest) (*domain.Product, error) {
	product, err := s.buildProduct(ctx, request)
	if err != nil {
		return nil, err
	}

	if err := s.productRepository.Save(ctx, product); err != nil {
		logger.Error(ctx, "product: save failed", err, map[string]any{"product_id": product.ID.String()})
		return nil, err
	}

	s.publish(ctx, domain.NewProductSavedEvent(product))
	logger.Info(ctx, "Product saved", map[string]any{"product_id": product.ID.String()})
	return product, nil
}

func (s *ProductService) DeleteProduct(ctx context.Context, rawID string) error {
	id, err := domain.ParseProductID(rawID)
	if err != nil {
		return serviceerrors.NewInvalidParamsError(err.Error())
	}

	if err := s.productRepository.Delete(ctx, id); err != nil {
		return err
	}

	s.publish(ctx, domain.NewProductDeletedEvent(id, time.Now().UTC()))
	logger.Info(ctx, "Product deleted", map[string]any{"product_id": rawID})
	return nil
}

func (s *ProductService) buildProduct(ctx context.Context, request *dto.SaveProductRequest) (*domain.Product, error) {
	var (
		id  domain.ProductID
		err error
	)
	if request.ID == "" {
		id = domain.GenerateProductID()
	} else if id, err = domain.ParseProductID(request.ID); err != nil {
		return nil, serviceerrors.NewInvalidParamsError(err.Error())
	}

	var price domain.Price
	amount := decimal.NewFromFloat(request.Price.Amount)
	if request.Price.OriginalAmount != nil {
		price, err = domain.NewDiscountedPrice(amount, request.Price.Currency, decimal.NewFromFloat(*request.Price.OriginalAmount))
	} else {
		price, err = domain.NewPrice(amount, request.Price.Currency)
	}
	if err != nil {
		return nil, serviceerrors.NewInvalidParamsError(err.Error())
	}

	status, err := domain.ParseStatus(request.Status)
	if err != nil {
		return nil, serviceerrors.NewInvalidParamsError(err.Error())
	}

	stock, err := domain.NewStock(request.AvailableQuantity)
	if err != nil {
		return nil, serviceerrors.NewInvalidParamsError(err.Error())
	}

	now := time.Now().UTC()
	createdAt := now
	if request.ID != "" {
		existing, err := s.productRepository.FindByID(ctx, id)
		if err != nil {
			return nil, err
		}
		if existing != nil {
			createdAt = existing.CreatedAt
		}
	}

	return domain.NewProduct(id, request.Title, request.Description, price, request.CategoryID, status, stock, createdAt, now), nil
}

func (s *ProductService) publish(ctx context.Context, event domain.Event) {
	if err := s.broker.Publish(ctx, event); err != nil {
		logger.Warn(ctx, "product: event publish failed", map[string]any{
			"event": event.GetName(),
			"error": err.Error(),
		})
	}
}
