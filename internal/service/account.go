package service

import (
	"context"
	"log/slog"

	"github.com/bakerskart/kart/internal/api"
	"github.com/bakerskart/kart/internal/cache"
	"github.com/bakerskart/kart/internal/session"
)

// AccountService handles login, logout and password recovery for both the
// storefront and the back office.
type AccountService struct {
	api    *api.Client
	creds  *session.Store
	cache  *cache.Cache
	logger *slog.Logger
}

// NewAccountService creates the account service and binds the cache to
// session lifecycle: when a session ends, for any reason, the cached reads
// scoped to it are dropped so a later viewer never sees them.
func NewAccountService(apiClient *api.Client, creds *session.Store, c *cache.Cache, logger *slog.Logger) *AccountService {
	if logger == nil {
		logger = slog.Default()
	}

	creds.OnSessionEnded(func(scope session.Scope) {
		var prefixes []string
		switch scope {
		case session.ScopeUser:
			prefixes = cache.UserScopedPrefixes()
		case session.ScopeAdmin:
			prefixes = cache.AdminScopedPrefixes()
		}
		for _, prefix := range prefixes {
			c.Invalidate(prefix)
		}
		logger.Info("session ended, dropped scoped caches", "scope", scope.String())
	})

	return &AccountService{api: apiClient, creds: creds, cache: c, logger: logger}
}

// LoginUser authenticates a shopper and stores the session.
func (s *AccountService) LoginUser(ctx context.Context, identifier, password string) error {
	result, err := s.api.LoginUser(ctx, api.LoginCredentials{Identifier: identifier, Password: password})
	if err != nil {
		s.logger.Warn("user login failed", "error", err)
		return err
	}
	if err := s.creds.SetUser(result.User, result.Token); err != nil {
		return err
	}
	s.logger.Info("user logged in", "user", result.User.Username)
	return nil
}

// RegisterUser creates a shopper account.
func (s *AccountService) RegisterUser(ctx context.Context, reg api.Registration) error {
	return s.api.RegisterUser(ctx, reg)
}

// LoginAdmin authenticates a back-office account and stores the session.
func (s *AccountService) LoginAdmin(ctx context.Context, identifier, password string) error {
	result, err := s.api.LoginAdmin(ctx, api.LoginCredentials{Identifier: identifier, Password: password})
	if err != nil {
		s.logger.Warn("admin login failed", "error", err)
		return err
	}
	if err := s.creds.SetAdmin(result.Admin, result.Token); err != nil {
		return err
	}
	s.logger.Info("admin logged in", "admin", result.Admin.Username, "role", result.Admin.Role)
	return nil
}

// RegisterAdmin creates a back-office account.
func (s *AccountService) RegisterAdmin(ctx context.Context, reg api.Registration) error {
	return s.api.RegisterAdmin(ctx, reg)
}

// LogoutUser drops the shopper session. Session-scoped caches are dropped
// by the session-ended subscription.
func (s *AccountService) LogoutUser() {
	s.creds.ClearUser()
	s.logger.Info("user logged out")
}

// LogoutAdmin drops the back-office session.
func (s *AccountService) LogoutAdmin() {
	s.creds.ClearAdmin()
	s.logger.Info("admin logged out")
}

// RequestPasswordOTP starts password recovery for identifier.
func (s *AccountService) RequestPasswordOTP(ctx context.Context, identifier string) error {
	return s.api.RequestPasswordOTP(ctx, identifier)
}

// ResetPassword completes password recovery.
func (s *AccountService) ResetPassword(ctx context.Context, identifier, otp, newPassword string) error {
	return s.api.ResetPassword(ctx, identifier, otp, newPassword)
}
