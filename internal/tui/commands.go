package tui

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/bakerskart/kart/internal/api"
	"github.com/bakerskart/kart/internal/domain"
	"github.com/bakerskart/kart/internal/service"
)

// Command factories for async operations

// LoadFeaturedCmd loads the landing page products
func LoadFeaturedCmd(svc *service.CatalogService, seq int64) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		products, err := svc.Featured(ctx)
		if err != nil {
			return ErrMsg{Err: err, Context: "loading featured products", Seq: seq}
		}
		return FeaturedLoadedMsg{Products: products, Seq: seq}
	}
}

// LoadProductsCmd loads a page of the catalog
func LoadProductsCmd(svc *service.CatalogService, q api.ListQuery, seq int64) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		page, err := svc.Products(ctx, q)
		if err != nil {
			return ErrMsg{Err: err, Context: "loading products", Seq: seq}
		}
		return ProductsLoadedMsg{Page: *page, Seq: seq}
	}
}

// LoadProductCmd loads a single product
func LoadProductCmd(svc *service.CatalogService, id string, seq int64) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		product, err := svc.Product(ctx, id)
		if err != nil {
			return ErrMsg{Err: err, Context: "loading product", Seq: seq}
		}
		return ProductLoadedMsg{Product: *product, Seq: seq}
	}
}

// LoadCategoriesCmd loads categories
func LoadCategoriesCmd(svc *service.CatalogService, q api.ListQuery, seq int64) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		page, err := svc.Categories(ctx, q)
		if err != nil {
			return ErrMsg{Err: err, Context: "loading categories", Seq: seq}
		}
		return CategoriesLoadedMsg{Page: *page, Seq: seq}
	}
}

// SearchCmd runs a live catalog search
func SearchCmd(svc *service.CatalogService, query string, seq int64) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		products, err := svc.Search(ctx, query)
		if err != nil {
			return ErrMsg{Err: err, Context: "searching catalog", Seq: seq}
		}
		return SearchResultsMsg{Query: query, Products: products, Seq: seq}
	}
}

// LoadOrdersCmd loads the current user's order history
func LoadOrdersCmd(svc *service.OrderService, q api.ListQuery, seq int64) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		page, err := svc.Orders(ctx, q)
		if err != nil {
			return ErrMsg{Err: err, Context: "loading orders", Seq: seq}
		}
		return OrdersLoadedMsg{Page: *page, Seq: seq}
	}
}

// LoadOrderCmd loads a single order
func LoadOrderCmd(svc *service.OrderService, id string, seq int64) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		order, err := svc.Order(ctx, id)
		if err != nil {
			return ErrMsg{Err: err, Context: "loading order", Seq: seq}
		}
		return OrderLoadedMsg{Order: *order, Seq: seq}
	}
}

// CheckoutCmd places an order from the current cart
func CheckoutCmd(svc *service.OrderService, shipping domain.ShippingInfo) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
		defer cancel()

		if err := svc.Checkout(ctx, shipping); err != nil {
			return ErrMsg{Err: err, Context: "placing order"}
		}
		return CheckoutDoneMsg{}
	}
}

// DownloadInvoiceCmd saves an order invoice PDF to disk
func DownloadInvoiceCmd(svc *service.OrderService, order domain.Order) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
		defer cancel()

		path, err := svc.DownloadInvoice(ctx, &order)
		if err != nil {
			return ErrMsg{Err: err, Context: "downloading invoice"}
		}
		return InvoiceSavedMsg{Path: path}
	}
}

// LoginUserCmd logs into the storefront
func LoginUserCmd(svc *service.AccountService, identifier, password string) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		if err := svc.LoginUser(ctx, identifier, password); err != nil {
			return ErrMsg{Err: err, Context: "logging in"}
		}
		return UserAuthMsg{Username: identifier}
	}
}

// RegisterUserCmd registers a storefront account and signs it in
func RegisterUserCmd(svc *service.AccountService, reg api.Registration) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		if err := svc.RegisterUser(ctx, reg); err != nil {
			return ErrMsg{Err: err, Context: "registering"}
		}
		return UserAuthMsg{Username: reg.Username}
	}
}

// LoginAdminCmd logs into the admin area
func LoginAdminCmd(svc *service.AccountService, identifier, password string) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		if err := svc.LoginAdmin(ctx, identifier, password); err != nil {
			return ErrMsg{Err: err, Context: "logging in as admin"}
		}
		return AdminAuthMsg{Username: identifier}
	}
}

// RegisterAdminCmd registers an admin account and signs it in
func RegisterAdminCmd(svc *service.AccountService, reg api.Registration) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		if err := svc.RegisterAdmin(ctx, reg); err != nil {
			return ErrMsg{Err: err, Context: "registering admin"}
		}
		return AdminAuthMsg{Username: reg.Username}
	}
}

// RequestOTPCmd requests a password-reset OTP
func RequestOTPCmd(svc *service.AccountService, identifier string) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		if err := svc.RequestPasswordOTP(ctx, identifier); err != nil {
			return ErrMsg{Err: err, Context: "requesting OTP"}
		}
		return OTPSentMsg{Identifier: identifier}
	}
}

// ResetPasswordCmd completes the OTP password reset
func ResetPasswordCmd(svc *service.AccountService, identifier, otp, newPassword string) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		if err := svc.ResetPassword(ctx, identifier, otp, newPassword); err != nil {
			return ErrMsg{Err: err, Context: "resetting password"}
		}
		return PasswordResetMsg{}
	}
}

// LoadAdminOrdersCmd loads all orders for the admin area
func LoadAdminOrdersCmd(svc *service.AdminService, q api.ListQuery, seq int64) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		page, err := svc.Orders(ctx, q)
		if err != nil {
			return ErrMsg{Err: err, Context: "loading admin orders", Seq: seq}
		}
		return OrdersLoadedMsg{Page: *page, Admin: true, Seq: seq}
	}
}

// LoadUsersCmd loads the user directory for the admin area
func LoadUsersCmd(svc *service.AdminService, q api.ListQuery, seq int64) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		page, err := svc.Users(ctx, q)
		if err != nil {
			return ErrMsg{Err: err, Context: "loading users", Seq: seq}
		}
		return UsersLoadedMsg{Page: *page, Seq: seq}
	}
}

// LoadAdminsCmd loads the admin account list
func LoadAdminsCmd(svc *service.AdminService, q api.ListQuery, seq int64) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		page, err := svc.Admins(ctx, q)
		if err != nil {
			return ErrMsg{Err: err, Context: "loading admins", Seq: seq}
		}
		return AdminsLoadedMsg{Page: *page, Seq: seq}
	}
}

// SaveEntityCmd runs an admin create or update and reports the entity kind
func SaveEntityCmd(kind string, save func(ctx context.Context) error) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
		defer cancel()

		if err := save(ctx); err != nil {
			return ErrMsg{Err: err, Context: "saving " + kind}
		}
		return EntitySavedMsg{Kind: kind}
	}
}

// DeleteEntityCmd runs an admin delete and reports the entity kind
func DeleteEntityCmd(kind, id string, del func(ctx context.Context) error) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		if err := del(ctx); err != nil {
			return ErrMsg{Err: err, Context: "deleting " + kind}
		}
		return EntityDeletedMsg{Kind: kind, ID: id}
	}
}

// TickCmd returns a command that sends a tick after a delay
func TickCmd(delay time.Duration) tea.Cmd {
	return tea.Tick(delay, func(t time.Time) tea.Msg {
		return TickMsg{}
	})
}

// ClearStatusCmd returns a command that clears status after a delay
func ClearStatusCmd(delay time.Duration) tea.Cmd {
	return tea.Tick(delay, func(t time.Time) tea.Msg {
		return ClearStatusMsg{}
	})
}
