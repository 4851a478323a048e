package api

import (
	"context"
	"net/http"

	"github.com/bakerskart/kart/internal/domain"
)

// LoginCredentials is the login form payload. Identifier is an email
// address or a mobile number.
type LoginCredentials struct {
	Identifier string `json:"identifier"`
	Password   string `json:"password"`
}

// Registration is the account sign-up payload.
type Registration struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Mobile   string `json:"mobile"`
	Password string `json:"password"`
}

// UserLoginResult is the server's answer to a successful shopper login.
type UserLoginResult struct {
	Token string      `json:"jwt"`
	User  domain.User `json:"user"`
}

// AdminLoginResult is the server's answer to a successful admin login.
type AdminLoginResult struct {
	Token string       `json:"jwt"`
	Admin domain.Admin `json:"admin"`
}

// LoginUser exchanges shopper credentials for a session token.
func (c *Client) LoginUser(ctx context.Context, creds LoginCredentials) (*UserLoginResult, error) {
	body, err := c.gw.Send(ctx, http.MethodPost, "/auth/login", creds, CredNone)
	if err != nil {
		return nil, err
	}
	var result UserLoginResult
	if err := decodeBare(body, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// RegisterUser creates a shopper account. The account still has to log in
// afterwards; registration returns no session.
func (c *Client) RegisterUser(ctx context.Context, reg Registration) error {
	_, err := c.gw.Send(ctx, http.MethodPost, "/auth/register", reg, CredNone)
	return err
}

// LoginAdmin exchanges back-office credentials for a session token.
func (c *Client) LoginAdmin(ctx context.Context, creds LoginCredentials) (*AdminLoginResult, error) {
	body, err := c.gw.Send(ctx, http.MethodPost, "/auth/admin/login", creds, CredNone)
	if err != nil {
		return nil, err
	}
	var result AdminLoginResult
	if err := decodeBare(body, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// RegisterAdmin creates a back-office account.
func (c *Client) RegisterAdmin(ctx context.Context, reg Registration) error {
	_, err := c.gw.Send(ctx, http.MethodPost, "/authadmin/register", reg, CredNone)
	return err
}

// RequestPasswordOTP starts the forgot-password flow for identifier. The
// server sends a one-time code out of band.
func (c *Client) RequestPasswordOTP(ctx context.Context, identifier string) error {
	payload := map[string]string{"identifier": identifier}
	_, err := c.gw.Send(ctx, http.MethodPost, "/auth/forgot-password", payload, CredNone)
	return err
}

// ResetPassword completes the forgot-password flow with the received code.
func (c *Client) ResetPassword(ctx context.Context, identifier, otp, newPassword string) error {
	payload := map[string]string{
		"identifier":  identifier,
		"otp":         otp,
		"newPassword": newPassword,
	}
	_, err := c.gw.Send(ctx, http.MethodPost, "/auth/reset-password", payload, CredNone)
	return err
}
