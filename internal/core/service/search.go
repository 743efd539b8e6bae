package service

import (
	"context"

	"github.com/rafaelleal24/catalog/internal/core/domain"
	"github.com/rafaelleal24/catalog/internal/core/dto"
	"github.com/rafaelleal24/catalog/internal/core/logger"
	"github.com/rafaelleal24/catalog/internal/core/port"
	"github.com/rafaelleal24/catalog/internal/core/serviceerrors"
)

const (
	defaultSearchLimit = 20
	maxSearchLimit     = 100
)

type SearchService struct {
	productRepository port.ProductRepository
}

func NewSearchService(productRepository port.ProductRepository) *SearchService {
	return &SearchService{productRepository: productRepository}
}

// Search returns one page of available products, newest first, optionally
// scoped to a category. HasMore is derived from an extra probe record
// beyond the page size, so no separate count query is needed.
func (s *SearchService) Search(ctx context.Context, request *dto.SearchProductsRequest) (*dto.SearchProductsResult, error) {
	limit := defaultSearchLimit
	if request.Limit != nil {
		if *request.Limit < 1 || *request.Limit > maxSearchLimit {
			return nil, serviceerrors.NewInvalidParamsError("limit must be between 1 and 100")
		}
		limit = *request.Limit
	}

	offset := 0
	if request.Offset != nil {
		if *request.Offset < 0 {
			return nil, serviceerrors.NewInvalidParamsError("offset must be greater than or equal to 0")
		}
		offset = *request.Offset
	}

	available, err := s.collectAvailable(ctx, request.CategoryID, limit, offset)
	if err != nil {
		logger.Error(ctx, "search: fetch failed", err, map[string]any{
			"category_id": request.CategoryID,
			"limit":       limit,
			"offset":      offset,
		})
		return nil, err
	}

	hasMore := len(available) > limit
	if hasMore {
		available = available[:limit]
	}

	return &dto.SearchProductsResult{
		Products: available,
		Limit:    limit,
		Offset:   offset,
		HasMore:  hasMore,
	}, nil
}

// collectAvailable walks the repository in windows of limit+1 raw records,
// keeping only available products, until the page plus the has-more probe
// are filled or the repository runs out. Filtering before the probe
// arithmetic keeps HasMore exact even when unavailable records are
// interleaved within a window.
func (s *SearchService) collectAvailable(ctx context.Context, categoryID string, limit, offset int) ([]*domain.Product, error) {
	want := limit + 1
	window := limit + 1
	available := make([]*domain.Product, 0, want)

	for len(available) < want {
		var (
			batch []*domain.Product
			err   error
		)
		if categoryID == "" {
			batch, err = s.productRepository.FindAll(ctx, window, offset)
		} else {
			batch, err = s.productRepository.FindByCategory(ctx, categoryID, window, offset)
		}
		if err != nil {
			return nil, err
		}

		for _, product := range batch {
			if !product.IsAvailable() {
				continue
			}
			available = append(available, product)
			if len(available) == want {
				break
			}
		}

		if len(batch) < window {
			break
		}
		offset += window
	}

	return available, nil
}
