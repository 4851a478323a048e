package api

import (
	"context"
	"net/http"

	"github.com/bakerskart/kart/internal/domain"
)

// Categories returns one page of product categories. The categories list
// takes pageSize rather than limit.
func (c *Client) Categories(ctx context.Context, q ListQuery) ([]domain.Category, domain.Pagination, error) {
	body, err := c.gw.Get(ctx, "/categories", q.values("pageSize"), CredNone)
	if err != nil {
		return nil, domain.Pagination{}, err
	}
	var categories []domain.Category
	meta, err := decodeList(body, &categories)
	if err != nil {
		return nil, domain.Pagination{}, err
	}
	return categories, meta, nil
}

// Category returns a single category ({data}-wrapped).
func (c *Client) Category(ctx context.Context, id string) (*domain.Category, error) {
	body, err := c.gw.Get(ctx, "/categories/"+id, nil, CredNone)
	if err != nil {
		return nil, err
	}
	var category domain.Category
	if err := decodeWrapped(body, &category); err != nil {
		return nil, err
	}
	return &category, nil
}

// CreateCategory adds a category.
func (c *Client) CreateCategory(ctx context.Context, name string) error {
	payload := map[string]string{"name": name}
	_, err := c.gw.Send(ctx, http.MethodPost, "/categories", payload, CredAdmin)
	return err
}

// UpdateCategory renames a category.
func (c *Client) UpdateCategory(ctx context.Context, id, name string) error {
	payload := map[string]string{"name": name}
	_, err := c.gw.Send(ctx, http.MethodPatch, "/categories/"+id, payload, CredAdmin)
	return err
}

// DeleteCategory removes a category.
func (c *Client) DeleteCategory(ctx context.Context, id string) error {
	_, err := c.gw.Send(ctx, http.MethodDelete, "/categories/"+id, nil, CredAdmin)
	return err
}
