package jsonstore

import (
	"context"
	"sort"
	"sync"

	"github.com/rafaelleal24/catalog/internal/core/domain"
	"github.com/rafaelleal24/catalog/internal/core/logger"
	"github.com/rafaelleal24/catalog/internal/core/port"
	"github.com/rafaelleal24/catalog/internal/core/serviceerrors"
)

// ProductRepository keeps the full collection in memory and treats the JSON
// file as the durable copy. The cache hydrates on first access and every
// mutation rewrites the whole file after taking a backup.
type ProductRepository struct {
	store    *FileStore
	filename string

	mu    sync.Mutex
	cache map[string]*domain.Product
}

var _ port.ProductRepository = (*ProductRepository)(nil)

func NewProductRepository(store *FileStore, filename string) *ProductRepository {
	return &ProductRepository{
		store:    store,
		filename: filename,
	}
}

// ensureCache hydrates the cache from the file when it has not been loaded
// yet. Records that fail structural validation or domain mapping are skipped
// so one bad record cannot poison the collection.
func (r *ProductRepository) ensureCache(ctx context.Context) error {
	if r.cache != nil {
		return nil
	}

	raws, err := r.store.Read(ctx, r.filename)
	if err != nil {
		return serviceerrors.NewDataIntegrityError("loading products from file", err)
	}

	cache := make(map[string]*domain.Product, len(raws))
	for _, raw := range raws {
		product, err := ToDomain(raw)
		if err != nil {
			logger.Warn(ctx, "jsonstore: skipping invalid product record", map[string]any{
				"file":  r.filename,
				"error": err.Error(),
			})
			continue
		}
		cache[product.ID.String()] = product
	}

	r.cache = cache
	return nil
}

func (r *ProductRepository) FindByID(ctx context.Context, id domain.ProductID) (*domain.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if err := r.ensureCache(ctx); err != nil {
		return nil, err
	}
	return r.cache[id.String()], nil
}

func (r *ProductRepository) FindAll(ctx context.Context, limit, offset int) ([]*domain.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if err := r.ensureCache(ctx); err != nil {
		return nil, err
	}
	return r.list("", limit, offset), nil
}

func (r *ProductRepository) FindByCategory(ctx context.Context, categoryID string, limit, offset int) ([]*domain.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if err := r.ensureCache(ctx); err != nil {
		return nil, err
	}
	return r.list(categoryID, limit, offset), nil
}

// list returns products sorted most recently updated first. An empty
// categoryID matches everything; limit <= 0 means no limit.
func (r *ProductRepository) list(categoryID string, limit, offset int) []*domain.Product {
	products := make([]*domain.Product, 0, len(r.cache))
	for _, product := range r.cache {
		if categoryID != "" && product.CategoryID != categoryID {
			continue
		}
		products = append(products, product)
	}

	sort.SliceStable(products, func(i, j int) bool {
		return products[i].UpdatedAt.After(products[j].UpdatedAt)
	})

	if offset >= len(products) {
		return nil
	}
	products = products[offset:]
	if limit > 0 && limit < len(products) {
		products = products[:limit]
	}
	return products
}

func (r *ProductRepository) Save(ctx context.Context, product *domain.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if err := r.ensureCache(ctx); err != nil {
		return err
	}
	if err := r.store.Backup(ctx, r.filename); err != nil {
		return serviceerrors.NewRepositoryError("backing up products file", err)
	}

	r.cache[product.ID.String()] = product
	return r.persistCache(ctx)
}

func (r *ProductRepository) Delete(ctx context.Context, id domain.ProductID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if err := r.ensureCache(ctx); err != nil {
		return err
	}
	if _, ok := r.cache[id.String()]; !ok {
		return serviceerrors.NewNotFoundError("product " + id.String() + " not found")
	}
	if err := r.store.Backup(ctx, r.filename); err != nil {
		return serviceerrors.NewRepositoryError("backing up products file", err)
	}

	delete(r.cache, id.String())
	return r.persistCache(ctx)
}

func (r *ProductRepository) Exists(ctx context.Context, id domain.ProductID) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if err := r.ensureCache(ctx); err != nil {
		return false, err
	}
	_, ok := r.cache[id.String()]
	return ok, nil
}

// ClearCache drops the in-memory collection so the next access re-reads the
// file.
func (r *ProductRepository) ClearCache() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.cache = nil
}

// persistCache rewrites the whole file from the cache, records sorted by id
// so the output is deterministic.
func (r *ProductRepository) persistCache(ctx context.Context) error {
	records := make([]ProductRecord, 0, len(r.cache))
	for _, product := range r.cache {
		records = append(records, ToRecord(product))
	}
	sort.Slice(records, func(i, j int) bool {
		return records[i].ID < records[j].ID
	})

	if err := r.store.Write(ctx, r.filename, records); err != nil {
		return serviceerrors.NewRepositoryError("persisting products", err)
	}
	return nil
}
