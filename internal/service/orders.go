package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/bakerskart/kart/internal/api"
	"github.com/bakerskart/kart/internal/cache"
	"github.com/bakerskart/kart/internal/cart"
	"github.com/bakerskart/kart/internal/domain"
	"github.com/bakerskart/kart/internal/format"
)

// ErrEmptyCart is returned when checkout is attempted with nothing in the cart
var ErrEmptyCart = errors.New("cart is empty")

// OrderPage is one page of orders with its pagination block
type OrderPage struct {
	Orders []domain.Order
	Meta   domain.Pagination
}

// OrderService handles checkout and the shopper's order history.
type OrderService struct {
	api        *api.Client
	cache      *cache.Cache
	ledger     *cart.Ledger
	invoiceDir string
	logger     *slog.Logger
}

// NewOrderService creates an order service. Downloaded invoices are written
// under invoiceDir.
func NewOrderService(apiClient *api.Client, c *cache.Cache, ledger *cart.Ledger, invoiceDir string, logger *slog.Logger) *OrderService {
	if logger == nil {
		logger = slog.Default()
	}
	return &OrderService{api: apiClient, cache: c, ledger: ledger, invoiceDir: invoiceDir, logger: logger}
}

// Checkout places an order for the current cart. Only after the server has
// accepted the order does it clear the cart and invalidate the cached order
// reads; any failure leaves the cart exactly as it was so the shopper can
// retry without re-entering items.
func (s *OrderService) Checkout(ctx context.Context, shipping domain.ShippingInfo) error {
	snapshot := s.ledger.Snapshot()
	if snapshot.IsEmpty() {
		return ErrEmptyCart
	}

	lines := make([]domain.OrderLine, len(snapshot.Lines))
	for i, l := range snapshot.Lines {
		lines[i] = domain.OrderLine{
			ProductID: l.ProductID,
			Name:      l.Title,
			Price:     l.UnitPrice,
			Amount:    l.Quantity,
			ImageURL:  l.ImageURL,
		}
	}

	total := snapshot.OrderTotal()
	req := api.OrderRequest{
		Name:        shipping.Name,
		Address:     shipping.Address,
		City:        shipping.City,
		State:       shipping.State,
		Company:     shipping.Company,
		ChargeTotal: total,
		OrderTotal:  format.Price(total),
		CartItems:   lines,
		ItemCount:   snapshot.ItemCount(),
	}

	if err := s.api.PlaceOrder(ctx, req); err != nil {
		s.logger.Warn("order placement failed", "error", err, "items", req.ItemCount)
		return err
	}

	s.cache.Invalidate(cache.PrefixOrders)
	s.ledger.Clear()
	s.logger.Info("order placed", "items", req.ItemCount, "total", total)
	return nil
}

// Orders returns one page of the shopper's order history, cached.
func (s *OrderService) Orders(ctx context.Context, q api.ListQuery) (*OrderPage, error) {
	key := cache.Key(cache.PrefixOrders, q.CacheParams())
	payload, err := s.cache.Read(ctx, key, func(ctx context.Context) (interface{}, error) {
		orders, meta, err := s.api.Orders(ctx, q)
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

// Order returns one order, cached by ID.
func (s *OrderService) Order(ctx context.Context, id string) (*domain.Order, error) {
	key := cache.Key(cache.PrefixOrders, map[string]string{"id": id})
	payload, err := s.cache.Read(ctx, key, func(ctx context.Context) (interface{}, error) {
		return s.api.Order(ctx, id)
	})
	if err != nil {
		return nil, err
	}
	return payload.(*domain.Order), nil
}

// DownloadInvoice fetches the invoice PDF for an order and writes it to the
// invoice directory, returning the written path.
func (s *OrderService) DownloadInvoice(ctx context.Context, order *domain.Order) (string, error) {
	data, err := s.api.DownloadInvoice(ctx, order.ID)
	if err != nil {
		return "", err
	}

	if err := os.MkdirAll(s.invoiceDir, 0755); err != nil {
		return "", fmt.Errorf("failed to create invoice directory: %w", err)
	}

	name := order.OrderID
	if name == "" {
		name = order.ID
	}
	path := filepath.Join(s.invoiceDir, "invoice-"+name+".pdf")
	if err := os.WriteFile(path, data, 0644); err != nil {
		return "", fmt.Errorf("failed to write invoice: %w", err)
	}

	s.logger.Info("invoice downloaded", "order", name, "path", path)
	return path, nil
}
