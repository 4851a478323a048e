package cache

// Cache key prefixes, one per API resource. List keys append their encoded
// parameters (see Key); detail keys append the resource ID.
const (
	// PrefixProducts covers product list caches (products:page=..)
	PrefixProducts = "products"

	// PrefixProduct is the prefix for single-product caches (product:{id})
	PrefixProduct = "product:"

	// PrefixCategories covers category list caches
	PrefixCategories = "categories"

	// PrefixOrders covers the shopper's order list and order detail caches.
	// These are per-user reads and are dropped when a session ends.
	PrefixOrders = "orders"

	// PrefixUsers covers back-office user list caches
	PrefixUsers = "users"

	// PrefixAdmins covers back-office admin list caches
	PrefixAdmins = "admins"
)

// UserScopedPrefixes returns the prefixes holding data tied to the shopper
// session. Invalidated when the user session ends.
func UserScopedPrefixes() []string {
	return []string{PrefixOrders}
}

// AdminScopedPrefixes returns the prefixes holding data readable only with
// the admin credential. Invalidated when the admin session ends.
func AdminScopedPrefixes() []string {
	return []string{PrefixUsers, PrefixAdmins}
}
