package service

import (
	"context"
	"log/slog"

	"github.com/bakerskart/kart/internal/api"
	"github.com/bakerskart/kart/internal/cache"
	"github.com/bakerskart/kart/internal/domain"
	"github.com/bakerskart/kart/internal/search"
)

// ProductPage is one page of the catalog with its pagination block
type ProductPage struct {
	Products []domain.Product
	Meta     domain.Pagination
}

// CategoryPage is one page of categories
type CategoryPage struct {
	Categories []domain.Category
	Meta       domain.Pagination
}

// CatalogService serves product and category reads through the cache, so
// repeated visits within the freshness window render without a refetch.
type CatalogService struct {
	api    *api.Client
	cache  *cache.Cache
	logger *slog.Logger
}

// NewCatalogService creates a catalog service
func NewCatalogService(apiClient *api.Client, c *cache.Cache, logger *slog.Logger) *CatalogService {
	if logger == nil {
		logger = slog.Default()
	}
	return &CatalogService{api: apiClient, cache: c, logger: logger}
}

// Products returns one catalog page, cached per (page, limit).
func (s *CatalogService) Products(ctx context.Context, q api.ListQuery) (*ProductPage, error) {
	key := cache.Key(cache.PrefixProducts, q.CacheParams())
	payload, err := s.cache.Read(ctx, key, func(ctx context.Context) (interface{}, error) {
		products, meta, err := s.api.Products(ctx, q)
		if err != nil {
			return nil, err
		}
		return &ProductPage{Products: products, Meta: meta}, nil
	})
	if err != nil {
		return nil, err
	}
	return payload.(*ProductPage), nil
}

// Product returns one catalog item, cached by ID.
func (s *CatalogService) Product(ctx context.Context, id string) (*domain.Product, error) {
	key := cache.PrefixProduct + id
	payload, err := s.cache.Read(ctx, key, func(ctx context.Context) (interface{}, error) {
		return s.api.Product(ctx, id)
	})
	if err != nil {
		return nil, err
	}
	return payload.(*domain.Product), nil
}

// Featured returns the products shown on the landing view.
func (s *CatalogService) Featured(ctx context.Context) ([]domain.Product, error) {
	page, err := s.Products(ctx, api.ListQuery{Page: 1, Limit: 8})
	if err != nil {
		return nil, err
	}
	featured := make([]domain.Product, 0, len(page.Products))
	for _, p := range page.Products {
		if p.Featured {
			featured = append(featured, p)
		}
	}
	if len(featured) == 0 {
		return page.Products, nil
	}
	return featured, nil
}

// Categories returns one category page, cached per (page, limit).
func (s *CatalogService) Categories(ctx context.Context, q api.ListQuery) (*CategoryPage, error) {
	key := cache.Key(cache.PrefixCategories, q.CacheParams())
	payload, err := s.cache.Read(ctx, key, func(ctx context.Context) (interface{}, error) {
		categories, meta, err := s.api.Categories(ctx, q)
		if err != nil {
			return nil, err
		}
		return &CategoryPage{Categories: categories, Meta: meta}, nil
	})
	if err != nil {
		return nil, err
	}
	return payload.(*CategoryPage), nil
}

// Search queries the live product search endpoint. Results are not cached;
// every keystroke-submitted query is expected to hit the server.
func (s *CatalogService) Search(ctx context.Context, query string) ([]domain.Product, error) {
	return s.api.SearchProducts(ctx, query)
}

// FilterLoaded narrows an already-loaded product list without a round
// trip, keeping the original order. Used for instant results while a
// search query is being typed.
func (s *CatalogService) FilterLoaded(query string, products []domain.Product) []domain.Product {
	labels := make([]string, len(products))
	for i, p := range products {
		labels[i] = p.Title + " " + p.Company
	}
	out := make([]domain.Product, 0, len(products))
	for _, i := range search.Filter(query, labels) {
		out = append(out, products[i])
	}
	return out
}
