package services

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"time"

	"gift-shop/models"

	"github.com/redis/go-redis/v9"
)

const (
	productListCacheKey = "products_list"
	productListCacheTTL = 5 * time.Minute
)

// ProductStore is the document collection behind the catalog.
type ProductStore interface {
	List(ctx context.Context) ([]models.Product, error)
	Get(ctx context.Context, id string) (*models.Product, error)
	Insert(ctx context.Context, product *models.Product) error
	Update(ctx context.Context, product *models.Product) error
	Delete(ctx context.Context, id string) error
	Categories(ctx context.Context) ([]string, error)
}

// CatalogService is the single point of truth for product data on both the
// storefront and admin sides. Every successful mutation invalidates the list
// cache and re-fetches the listing, so a subsequent List observes the
// mutation's effect; this refresh is part of the mutation contract.
type CatalogService struct {
	store ProductStore
	cache *redis.Client
}

func NewCatalogService(store ProductStore, cache *redis.Client) *CatalogService {
	return &CatalogService{store: store, cache: cache}
}

func (s *CatalogService) List(ctx context.Context) ([]models.Product, error) {
	if s.cache != nil {
		cached, err := s.cache.Get(ctx, productListCacheKey).Result()
		if err == nil {
			var products []models.Product
			if err := json.Unmarshal([]byte(cached), &products); err == nil {
				return products, nil
			}
		}
	}

	products, err := s.store.List(ctx)
	if err != nil {
		return nil, &models.FetchError{Op: "list products", Err: err}
	}

	if s.cache != nil {
		if data, err := json.Marshal(products); err == nil {
			s.cache.Set(ctx, productListCacheKey, string(data), productListCacheTTL)
		}
	}

	return products, nil
}

func (s *CatalogService) Get(ctx context.Context, id string) (*models.Product, error) {
	product, err := s.store.Get(ctx, id)
	if errors.Is(err, models.ErrNotFound) {
		return nil, models.ErrNotFound
	}
	if err != nil {
		return nil, &models.FetchError{Op: "get product", Err: err}
	}
	return product, nil
}

func (s *CatalogService) Categories(ctx context.Context) ([]string, error) {
	categories, err := s.store.Categories(ctx)
	if err != nil {
		return nil, &models.FetchError{Op: "list categories", Err: err}
	}
	return categories, nil
}

// Create validates the draft, inserts the product and refreshes the listing.
// The store assigns id and timestamps.
func (s *CatalogService) Create(ctx context.Context, draft models.ProductDraft) (*models.Product, error) {
	if draft.Name == "" || draft.Category == "" || draft.Price == nil {
		return nil, models.NewValidationError("Missing required fields")
	}
	if *draft.Price < 0 {
		return nil, models.NewValidationError("Price must not be negative")
	}

	product := &models.Product{
		Name:     draft.Name,
		Category: draft.Category,
		Price:    *draft.Price,
		InStock:  true,
	}
	if draft.Image != nil {
		product.Image = *draft.Image
	}
	if draft.Description != nil {
		product.Description = *draft.Description
	}
	if draft.InStock != nil {
		product.InStock = *draft.InStock
	}
	if draft.Featured != nil {
		product.Featured = *draft.Featured
	}

	if err := s.store.Insert(ctx, product); err != nil {
		return nil, &models.PersistenceError{Op: "create product", Err: err}
	}

	s.refresh(ctx)
	return product, nil
}

// Update overwrites the supplied fields of an existing product and refreshes
// updatedAt. Omitted draft fields keep their stored values.
func (s *CatalogService) Update(ctx context.Context, id string, draft models.ProductDraft) (*models.Product, error) {
	product, err := s.store.Get(ctx, id)
	if errors.Is(err, models.ErrNotFound) {
		return nil, models.ErrNotFound
	}
	if err != nil {
		return nil, &models.FetchError{Op: "get product", Err: err}
	}

	if draft.Name != "" {
		product.Name = draft.Name
	}
	if draft.Category != "" {
		product.Category = draft.Category
	}
	if draft.Price != nil {
		if *draft.Price < 0 {
			return nil, models.NewValidationError("Price must not be negative")
		}
		product.Price = *draft.Price
	}
	if draft.Image != nil {
		product.Image = *draft.Image
	}
	if draft.Description != nil {
		product.Description = *draft.Description
	}
	if draft.InStock != nil {
		product.InStock = *draft.InStock
	}
	if draft.Featured != nil {
		product.Featured = *draft.Featured
	}

	if err := s.store.Update(ctx, product); err != nil {
		if errors.Is(err, models.ErrNotFound) {
			return nil, models.ErrNotFound
		}
		return nil, &models.PersistenceError{Op: "update product", Err: err}
	}

	s.refresh(ctx)
	return product, nil
}

func (s *CatalogService) Delete(ctx context.Context, id string) error {
	if err := s.store.Delete(ctx, id); err != nil {
		if errors.Is(err, models.ErrNotFound) {
			return models.ErrNotFound
		}
		return &models.PersistenceError{Op: "delete product", Err: err}
	}

	s.refresh(ctx)
	return nil
}

// refresh drops the cached listing and primes it again from the store.
// Invalidation alone already guarantees read-your-writes; the re-fetch keeps
// the next List cheap. A failed re-fetch is logged, not surfaced, since the
// mutation itself has succeeded.
func (s *CatalogService) refresh(ctx context.Context) {
	if s.cache != nil {
		s.cache.Del(ctx, productListCacheKey)
	}
	if _, err := s.List(ctx); err != nil {
		log.Printf("catalog refresh after mutation failed: %v", err)
	}
}
