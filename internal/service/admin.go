package service

import (
	"context"
	"log/slog"

	"github.com/bakerskart/kart/internal/api"
	"github.com/bakerskart/kart/internal/cache"
	"github.com/bakerskart/kart/internal/domain"
)

// UserPage is one page of shopper accounts
type UserPage struct {
	Users []domain.User
	Meta  domain.Pagination
}

// AdminPage is one page of back-office accounts
type AdminPage struct {
	Admins []domain.Admin
	Meta   domain.Pagination
}

// AdminService is the back office: CRUD over admins, users, products,
// categories and orders. Every successful write invalidates the cache
// prefixes it may have made stale; that invalidation is part of the write,
// not optional cleanup.
type AdminService struct {
	api    *api.Client
	cache  *cache.Cache
	logger *slog.Logger
}

// NewAdminService creates an admin service
func NewAdminService(apiClient *api.Client, c *cache.Cache, logger *slog.Logger) *AdminService {
	if logger == nil {
		logger = slog.Default()
	}
	return &AdminService{api: apiClient, cache: c, logger: logger}
}

// === Admins ===

// Admins returns one page of back-office accounts, cached.
func (s *AdminService) Admins(ctx context.Context, q api.ListQuery) (*AdminPage, error) {
	key := cache.Key(cache.PrefixAdmins, q.CacheParams())
	payload, err := s.cache.Read(ctx, key, func(ctx context.Context) (interface{}, error) {
		admins, meta, err := s.api.Admins(ctx, q)
		if err != nil {
			return nil, err
		}
		return &AdminPage{Admins: admins, Meta: meta}, nil
	})
	if err != nil {
		return nil, err
	}
	return payload.(*AdminPage), nil
}

// Admin returns a single back-office account, uncached (edit forms want the
// latest state).
func (s *AdminService) Admin(ctx context.Context, id string) (*domain.Admin, error) {
	return s.api.AdminByID(ctx, id)
}

// CreateAdmin adds a back-office account.
func (s *AdminService) CreateAdmin(ctx context.Context, fields api.AdminFields) error {
	if err := s.api.CreateAdmin(ctx, fields); err != nil {
		return err
	}
	s.cache.Invalidate(cache.PrefixAdmins)
	s.logger.Info("admin created", "username", fields.Username)
	return nil
}

// UpdateAdmin edits a back-office account.
func (s *AdminService) UpdateAdmin(ctx context.Context, id string, fields api.AdminFields) error {
	if err := s.api.UpdateAdmin(ctx, id, fields); err != nil {
		return err
	}
	s.cache.Invalidate(cache.PrefixAdmins)
	return nil
}

// DeleteAdmin removes a back-office account.
func (s *AdminService) DeleteAdmin(ctx context.Context, id string) error {
	if err := s.api.DeleteAdmin(ctx, id); err != nil {
		return err
	}
	s.cache.Invalidate(cache.PrefixAdmins)
	return nil
}

// === Users ===

// Users returns one page of shopper accounts, cached.
func (s *AdminService) Users(ctx context.Context, q api.ListQuery) (*UserPage, error) {
	key := cache.Key(cache.PrefixUsers, q.CacheParams())
	payload, err := s.cache.Read(ctx, key, func(ctx context.Context) (interface{}, error) {
		users, meta, err := s.api.Users(ctx, q)
		if err != nil {
			return nil, err
		}
		return &UserPage{Users: users, Meta: meta}, nil
	})
	if err != nil {
		return nil, err
	}
	return payload.(*UserPage), nil
}

// User returns a single shopper account, uncached.
func (s *AdminService) User(ctx context.Context, id string) (*domain.User, error) {
	return s.api.User(ctx, id)
}

// SearchUsers queries the live user search endpoint.
func (s *AdminService) SearchUsers(ctx context.Context, query string) ([]domain.User, error) {
	return s.api.SearchUsers(ctx, query)
}

// CreateUser adds a shopper account.
func (s *AdminService) CreateUser(ctx context.Context, fields api.UserFields) error {
	if err := s.api.CreateUser(ctx, fields); err != nil {
		return err
	}
	s.cache.Invalidate(cache.PrefixUsers)
	return nil
}

// UpdateUser edits a shopper account.
func (s *AdminService) UpdateUser(ctx context.Context, id string, fields api.UserFields) error {
	if err := s.api.UpdateUser(ctx, id, fields); err != nil {
		return err
	}
	s.cache.Invalidate(cache.PrefixUsers)
	return nil
}

// DeleteUser removes a shopper account.
func (s *AdminService) DeleteUser(ctx context.Context, id string) error {
	if err := s.api.DeleteUser(ctx, id); err != nil {
		return err
	}
	s.cache.Invalidate(cache.PrefixUsers)
	return nil
}

// === Products ===

// CreateProduct adds a catalog item, with an optional image.
func (s *AdminService) CreateProduct(ctx context.Context, fields api.ProductFields, image *api.FilePart) error {
	if err := s.api.CreateProduct(ctx, fields, image); err != nil {
		return err
	}
	s.invalidateProducts()
	s.logger.Info("product created", "title", fields.Title)
	return nil
}

// UpdateProduct edits a catalog item.
func (s *AdminService) UpdateProduct(ctx context.Context, id string, fields api.ProductFields, image *api.FilePart) error {
	if err := s.api.UpdateProduct(ctx, id, fields, image); err != nil {
		return err
	}
	s.invalidateProducts()
	return nil
}

// DeleteProduct removes a catalog item.
func (s *AdminService) DeleteProduct(ctx context.Context, id string) error {
	if err := s.api.DeleteProduct(ctx, id); err != nil {
		return err
	}
	s.invalidateProducts()
	return nil
}

// === Categories ===

// CreateCategory adds a category.
func (s *AdminService) CreateCategory(ctx context.Context, name string) error {
	if err := s.api.CreateCategory(ctx, name); err != nil {
		return err
	}
	s.cache.Invalidate(cache.PrefixCategories)
	return nil
}

// UpdateCategory renames a category.
func (s *AdminService) UpdateCategory(ctx context.Context, id, name string) error {
	if err := s.api.UpdateCategory(ctx, id, name); err != nil {
		return err
	}
	s.cache.Invalidate(cache.PrefixCategories)
	return nil
}

// DeleteCategory removes a category.
func (s *AdminService) DeleteCategory(ctx context.Context, id string) error {
	if err := s.api.DeleteCategory(ctx, id); err != nil {
		return err
	}
	s.cache.Invalidate(cache.PrefixCategories)
	return nil
}

// === Orders ===

// Orders returns one page of all orders, cached under the shared orders
// prefix so order writes from either surface invalidate it.
func (s *AdminService) Orders(ctx context.Context, q api.ListQuery) (*OrderPage, error) {
	params := q.CacheParams()
	params["scope"] = "admin"
	key := cache.Key(cache.PrefixOrders, params)
	payload, err := s.cache.Read(ctx, key, func(ctx context.Context) (interface{}, error) {
		orders, meta, err := s.api.AdminOrders(ctx, q)
		if err != nil {
			return nil, err
		}
		return &OrderPage{Orders: orders, Meta: meta}, nil
	})
	if err != nil {
		return nil, err
	}
	return payload.(*OrderPage), nil
}

// CreateOrder places an order on a customer's behalf.
func (s *AdminService) CreateOrder(ctx context.Context, req api.OrderRequest) error {
	if err := s.api.CreateOrder(ctx, req); err != nil {
		return err
	}
	s.cache.Invalidate(cache.PrefixOrders)
	return nil
}

// UpdateOrder patches an order (status, shipping).
func (s *AdminService) UpdateOrder(ctx context.Context, id string, changes map[string]interface{}) error {
	if err := s.api.UpdateOrder(ctx, id, changes); err != nil {
		return err
	}
	s.cache.Invalidate(cache.PrefixOrders)
	return nil
}

// DeleteOrder removes an order.
func (s *AdminService) DeleteOrder(ctx context.Context, id string) error {
	if err := s.api.DeleteOrder(ctx, id); err != nil {
		return err
	}
	s.cache.Invalidate(cache.PrefixOrders)
	return nil
}

func (s *AdminService) invalidateProducts() {
	s.cache.Invalidate(cache.PrefixProducts)
	s.cache.Invalidate(cache.PrefixProduct)
}
