package tui

import (
	"github.com/bakerskart/kart/internal/domain"
)

// Route identifies a navigable screen
type Route int

const (
	RouteLanding Route = iota
	RouteProducts
	RouteProductDetail
	RouteCart
	RouteCheckout
	RouteOrders
	RouteOrderDetail
	RouteLogin
	RouteRegister
	RouteAdminLogin
	RouteAdminRegister
	RouteAdminProducts
	RouteAdminProductForm
	RouteAdminCategories
	RouteAdminCategoryForm
	RouteAdminOrders
	RouteAdminUsers
	RouteAdminAdmins
	RouteAdminForm
	RouteHelp
)

func (r Route) String() string {
	switch r {
	case RouteLanding:
		return "landing"
	case RouteProducts:
		return "products"
	case RouteProductDetail:
		return "product"
	case RouteCart:
		return "cart"
	case RouteCheckout:
		return "checkout"
	case RouteOrders:
		return "orders"
	case RouteOrderDetail:
		return "order"
	case RouteLogin:
		return "login"
	case RouteRegister:
		return "register"
	case RouteAdminLogin:
		return "admin login"
	case RouteAdminRegister:
		return "admin register"
	case RouteAdminProducts:
		return "admin products"
	case RouteAdminProductForm:
		return "admin product form"
	case RouteAdminCategories:
		return "admin categories"
	case RouteAdminCategoryForm:
		return "admin category form"
	case RouteAdminOrders:
		return "admin orders"
	case RouteAdminUsers:
		return "admin users"
	case RouteAdminAdmins:
		return "admin admins"
	case RouteAdminForm:
		return "admin form"
	case RouteHelp:
		return "help"
	}
	return "unknown"
}

// requiresUser reports whether the route needs a storefront session
func (r Route) requiresUser() bool {
	switch r {
	case RouteCheckout, RouteOrders, RouteOrderDetail:
		return true
	}
	return false
}

// requiresAdmin reports whether the route is inside the admin area
func (r Route) requiresAdmin() bool {
	switch r {
	case RouteAdminProducts, RouteAdminProductForm,
		RouteAdminCategories, RouteAdminCategoryForm,
		RouteAdminOrders, RouteAdminUsers, RouteAdminAdmins, RouteAdminForm:
		return true
	}
	return false
}

// Decision is the outcome of an access check
type Decision struct {
	Route    Route
	Redirect bool
	Warning  string
}

// CheckAccess decides whether the session may enter the route. It never
// mutates anything: on a denied route it returns the redirect target and
// a warning to display. Data loading for a denied route must not start.
func CheckAccess(route Route, sess domain.Session) Decision {
	if route.requiresUser() && sess.User == nil {
		return Decision{
			Route:    RouteLogin,
			Redirect: true,
			Warning:  "You must be logged in to access this page",
		}
	}
	if route.requiresAdmin() {
		if sess.Admin == nil || !domain.IsAdminRole(sess.Admin.Admin.Role) {
			return Decision{
				Route:    RouteAdminLogin,
				Redirect: true,
				Warning:  "Unauthorized! Admin login required",
			}
		}
	}
	return Decision{Route: route}
}
