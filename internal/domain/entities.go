package domain

// Product represents a single catalog item as served by the API
type Product struct {
	ID           string  `json:"_id"`
	Title        string  `json:"title"`
	Company      string  `json:"company"`
	Description  string  `json:"description"`
	Category     string  `json:"category"`
	Price        float64 `json:"price"`        // List price
	SellingPrice float64 `json:"sellingPrice"` // Effective price charged at checkout
	ImageURL     string  `json:"image"`
	Code         string  `json:"code"` // Supplier product code
	Featured     bool    `json:"featured"`
	Stock        int     `json:"stock"`
}

// UnitPrice returns the price a shopper actually pays for one unit.
// Falls back to the list price when no selling price is set.
func (p Product) UnitPrice() float64 {
	if p.SellingPrice > 0 {
		return p.SellingPrice
	}
	return p.Price
}

// Category groups products in the catalog
type Category struct {
	ID   string `json:"_id"`
	Name string `json:"name"`
}

// User is a storefront account (shopper)
type User struct {
	ID       string `json:"_id"`
	Username string `json:"username"`
	Email    string `json:"email"`
	Mobile   string `json:"mobile"`
	Address  string `json:"address"`
	City     string `json:"city"`
	State    string `json:"state"`
	Company  string `json:"company"`
}

// Admin is a back-office account
type Admin struct {
	ID       string `json:"_id"`
	Username string `json:"username"`
	Email    string `json:"email"`
	Role     Role   `json:"role"`
}

// OrderLine is one purchased product inside an order
type OrderLine struct {
	ProductID string  `json:"productId"`
	Name      string  `json:"name"`
	Price     float64 `json:"price"`
	Amount    int     `json:"amount"`
	ImageURL  string  `json:"image"`
}

// Order represents a placed order as returned by the API
type Order struct {
	ID        string      `json:"_id"`
	OrderID   string      `json:"orderId"` // Human-facing order number used on invoices
	Name      string      `json:"name"`
	Address   string      `json:"address"`
	City      string      `json:"city"`
	State     string      `json:"state"`
	Company   string      `json:"company"`
	Status    string      `json:"status"`
	Lines     []OrderLine `json:"cartItems"`
	ItemCount int         `json:"numItemsInCart"`
	Total     float64     `json:"chargeTotal"`
	CreatedAt string      `json:"createdAt"`
}

// ShippingInfo is the checkout form payload
type ShippingInfo struct {
	Name    string
	Address string
	City    string
	State   string
	Company string
}

// Pagination describes a page of a list endpoint
type Pagination struct {
	Page      int `json:"page"`
	PageSize  int `json:"pageSize"`
	PageCount int `json:"pageCount"`
	Total     int `json:"total"`
}

// HasNext reports whether another page exists after the current one
func (p Pagination) HasNext() bool {
	return p.PageCount > 0 && p.Page < p.PageCount
}

// HasPrev reports whether a page exists before the current one
func (p Pagination) HasPrev() bool {
	return p.Page > 1
}
