package api

import (
	"context"
	"net/http"

	"github.com/bakerskart/kart/internal/domain"
)

// OrderRequest is the order-creation payload: shipping details plus the
// cart snapshot mapped to the backend's line shape. OrderTotal carries the
// display-formatted total alongside the numeric charge total, mirroring
// what the server stores on the invoice.
type OrderRequest struct {
	Name        string             `json:"name"`
	Address     string             `json:"address"`
	City        string             `json:"city"`
	State       string             `json:"state"`
	Company     string             `json:"company"`
	ChargeTotal float64            `json:"chargeTotal"`
	OrderTotal  string             `json:"orderTotal"`
	CartItems   []domain.OrderLine `json:"cartItems"`
	ItemCount   int                `json:"numItemsInCart"`
}

// PlaceOrder creates an order for the logged-in shopper.
func (c *Client) PlaceOrder(ctx context.Context, req OrderRequest) error {
	payload := map[string]interface{}{"data": req}
	_, err := c.gw.Send(ctx, http.MethodPost, "/orders", payload, CredUser)
	return err
}

// Orders returns one page of the shopper's own orders.
func (c *Client) Orders(ctx context.Context, q ListQuery) ([]domain.Order, domain.Pagination, error) {
	return c.listOrders(ctx, q, CredUser)
}

// Order returns a single order. Unlike the {data}-wrapped detail endpoints,
// this one returns the bare resource.
func (c *Client) Order(ctx context.Context, id string) (*domain.Order, error) {
	body, err := c.gw.Get(ctx, "/orders/"+id, nil, CredUser)
	if err != nil {
		return nil, err
	}
	var order domain.Order
	if err := decodeBare(body, &order); err != nil {
		return nil, err
	}
	return &order, nil
}

// DownloadInvoice fetches the rendered invoice PDF for an order.
func (c *Client) DownloadInvoice(ctx context.Context, id string) ([]byte, error) {
	return c.gw.Download(ctx, "/orders/"+id+"/invoice", CredUser)
}

// AdminOrders returns one page of all orders, for the back office.
func (c *Client) AdminOrders(ctx context.Context, q ListQuery) ([]domain.Order, domain.Pagination, error) {
	return c.listOrders(ctx, q, CredAdmin)
}

// CreateOrder places an order on a customer's behalf from the back office.
func (c *Client) CreateOrder(ctx context.Context, req OrderRequest) error {
	payload := map[string]interface{}{"data": req}
	_, err := c.gw.Send(ctx, http.MethodPost, "/orders", payload, CredAdmin)
	return err
}

// UpdateOrder patches an order's mutable fields (status, shipping).
func (c *Client) UpdateOrder(ctx context.Context, id string, changes map[string]interface{}) error {
	_, err := c.gw.Send(ctx, http.MethodPatch, "/orders/"+id, changes, CredAdmin)
	return err
}

// DeleteOrder removes an order from the back office.
func (c *Client) DeleteOrder(ctx context.Context, id string) error {
	_, err := c.gw.Send(ctx, http.MethodDelete, "/orders/"+id, nil, CredAdmin)
	return err
}

func (c *Client) listOrders(ctx context.Context, q ListQuery, cred Credential) ([]domain.Order, domain.Pagination, error) {
	body, err := c.gw.Get(ctx, "/orders", q.values("limit"), cred)
	if err != nil {
		return nil, domain.Pagination{}, err
	}
	var orders []domain.Order
	meta, err := decodeList(body, &orders)
	if err != nil {
		return nil, domain.Pagination{}, err
	}
	return orders, meta, nil
}
