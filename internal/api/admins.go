package api

import (
	"context"
	"net/http"

	"github.com/bakerskart/kart/internal/domain"
)

// AdminFields is the create/update form for a back-office account.
type AdminFields struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Role     string `json:"role"`
	Password string `json:"password,omitempty"`
}

// Admins returns one page of back-office accounts.
func (c *Client) Admins(ctx context.Context, q ListQuery) ([]domain.Admin, domain.Pagination, error) {
	body, err := c.gw.Get(ctx, "/admins", q.values("limit"), CredAdmin)
	if err != nil {
		return nil, domain.Pagination{}, err
	}
	var admins []domain.Admin
	meta, err := decodeList(body, &admins)
	if err != nil {
		return nil, domain.Pagination{}, err
	}
	return admins, meta, nil
}

// AdminByID returns a single back-office account ({data}-wrapped).
func (c *Client) AdminByID(ctx context.Context, id string) (*domain.Admin, error) {
	body, err := c.gw.Get(ctx, "/admins/"+id, nil, CredAdmin)
	if err != nil {
		return nil, err
	}
	var admin domain.Admin
	if err := decodeWrapped(body, &admin); err != nil {
		return nil, err
	}
	return &admin, nil
}

// CreateAdmin adds a back-office account.
func (c *Client) CreateAdmin(ctx context.Context, fields AdminFields) error {
	_, err := c.gw.Send(ctx, http.MethodPost, "/admins", fields, CredAdmin)
	return err
}

// UpdateAdmin edits a back-office account.
func (c *Client) UpdateAdmin(ctx context.Context, id string, fields AdminFields) error {
	_, err := c.gw.Send(ctx, http.MethodPut, "/admins/"+id, fields, CredAdmin)
	return err
}

// DeleteAdmin removes a back-office account.
func (c *Client) DeleteAdmin(ctx context.Context, id string) error {
	_, err := c.gw.Send(ctx, http.MethodDelete, "/admins/"+id, nil, CredAdmin)
	return err
}
