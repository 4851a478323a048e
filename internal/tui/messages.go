package tui

import (
	"github.com/bakerskart/kart/internal/domain"
	"github.com/bakerskart/kart/internal/service"
)

// Message types for the TUI. Loader results carry the navigation sequence
// they were fired with; the model drops any result whose Seq no longer
// matches, so a slow response can never paint a screen the user already
// left.

// ErrMsg represents an error
type ErrMsg struct {
	Err     error
	Context string
	Seq     int64
}

// Error implements the error interface
func (e ErrMsg) Error() string {
	if e.Context != "" {
		return e.Context + ": " + e.Err.Error()
	}
	return e.Err.Error()
}

// FeaturedLoadedMsg signals that the landing page products have been loaded
type FeaturedLoadedMsg struct {
	Products []domain.Product
	Seq      int64
}

// ProductsLoadedMsg signals that a product page has been loaded
type ProductsLoadedMsg struct {
	Page service.ProductPage
	Seq  int64
}

// ProductLoadedMsg signals that a single product has been loaded
type ProductLoadedMsg struct {
	Product domain.Product
	Seq     int64
}

// CategoriesLoadedMsg signals that categories have been loaded
type CategoriesLoadedMsg struct {
	Page service.CategoryPage
	Seq  int64
}

// SearchResultsMsg signals that live search results are ready
type SearchResultsMsg struct {
	Query    string
	Products []domain.Product
	Seq      int64
}

// OrdersLoadedMsg signals that the order history has been loaded
type OrdersLoadedMsg struct {
	Page  service.OrderPage
	Admin bool
	Seq   int64
}

// OrderLoadedMsg signals that an order detail has been loaded
type OrderLoadedMsg struct {
	Order domain.Order
	Seq   int64
}

// CheckoutDoneMsg signals that an order was placed
type CheckoutDoneMsg struct{}

// InvoiceSavedMsg signals that an invoice PDF was written to disk
type InvoiceSavedMsg struct {
	Path string
}

// UserAuthMsg signals the outcome of a storefront login or registration
type UserAuthMsg struct {
	Username string
}

// AdminAuthMsg signals the outcome of an admin login or registration
type AdminAuthMsg struct {
	Username string
}

// OTPSentMsg signals that a password-reset OTP was requested
type OTPSentMsg struct {
	Identifier string
}

// PasswordResetMsg signals that the password was reset
type PasswordResetMsg struct{}

// UsersLoadedMsg signals that the admin user list has been loaded
type UsersLoadedMsg struct {
	Page service.UserPage
	Seq  int64
}

// AdminsLoadedMsg signals that the admin account list has been loaded
type AdminsLoadedMsg struct {
	Page service.AdminPage
	Seq  int64
}

// EntitySavedMsg signals that an admin create or update succeeded
type EntitySavedMsg struct {
	Kind string
}

// EntityDeletedMsg signals that an admin delete succeeded
type EntityDeletedMsg struct {
	Kind string
	ID   string
}

// StatusMsg sets a temporary status message
type StatusMsg struct {
	Message string
	IsError bool
}

// ClearStatusMsg clears the status bar message
type ClearStatusMsg struct{}

// TickMsg is a general tick message for animations
type TickMsg struct{}
