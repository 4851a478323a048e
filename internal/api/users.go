package api

import (
	"context"
	"net/http"
	"net/url"

	"github.com/bakerskart/kart/internal/domain"
)

// UserFields is the back-office create/update form for a shopper account.
type UserFields struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Mobile   string `json:"mobile"`
	Address  string `json:"address"`
	City     string `json:"city"`
	State    string `json:"state"`
	Company  string `json:"company"`
	Password string `json:"password,omitempty"`
}

// Users returns one page of shopper accounts.
func (c *Client) Users(ctx context.Context, q ListQuery) ([]domain.User, domain.Pagination, error) {
	body, err := c.gw.Get(ctx, "/users", q.values("limit"), CredAdmin)
	if err != nil {
		return nil, domain.Pagination{}, err
	}
	var users []domain.User
	meta, err := decodeList(body, &users)
	if err != nil {
		return nil, domain.Pagination{}, err
	}
	return users, meta, nil
}

// User returns a single shopper account ({data}-wrapped).
func (c *Client) User(ctx context.Context, id string) (*domain.User, error) {
	body, err := c.gw.Get(ctx, "/users/"+id, nil, CredAdmin)
	if err != nil {
		return nil, err
	}
	var user domain.User
	if err := decodeWrapped(body, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// SearchUsers queries the live user search endpoint.
func (c *Client) SearchUsers(ctx context.Context, query string) ([]domain.User, error) {
	v := url.Values{}
	v.Set("q", query)
	body, err := c.gw.Get(ctx, "/users/search", v, CredAdmin)
	if err != nil {
		return nil, err
	}
	var users []domain.User
	if err := decodeBare(body, &users); err != nil {
		return nil, err
	}
	return users, nil
}

// CreateUser adds a shopper account from the back office.
func (c *Client) CreateUser(ctx context.Context, fields UserFields) error {
	_, err := c.gw.Send(ctx, http.MethodPost, "/users", fields, CredAdmin)
	return err
}

// UpdateUser edits a shopper account.
func (c *Client) UpdateUser(ctx context.Context, id string, fields UserFields) error {
	_, err := c.gw.Send(ctx, http.MethodPut, "/users/"+id, fields, CredAdmin)
	return err
}

// DeleteUser removes a shopper account.
func (c *Client) DeleteUser(ctx context.Context, id string) error {
	_, err := c.gw.Send(ctx, http.MethodDelete, "/users/"+id, nil, CredAdmin)
	return err
}
