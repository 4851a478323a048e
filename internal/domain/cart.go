package domain

// CartLine is one product in the shopping cart
type CartLine struct {
	ProductID string  `json:"productId"`
	Title     string  `json:"title"`
	Company   string  `json:"company"`
	UnitPrice float64 `json:"price"`
	Quantity  int     `json:"amount"`
	ImageURL  string  `json:"image"`
}

// Subtotal returns the line total
func (l CartLine) Subtotal() float64 {
	return l.UnitPrice * float64(l.Quantity)
}

// Cart is a point-in-time snapshot of the shopping cart. Lines are unique by
// ProductID and every quantity is at least 1.
type Cart struct {
	Lines []CartLine `json:"lines"`
}

// ItemCount returns the total number of units across all lines
func (c Cart) ItemCount() int {
	n := 0
	for _, l := range c.Lines {
		n += l.Quantity
	}
	return n
}

// OrderTotal returns the sum of all line subtotals
func (c Cart) OrderTotal() float64 {
	total := 0.0
	for _, l := range c.Lines {
		total += l.Subtotal()
	}
	return total
}

// IsEmpty reports whether the cart holds no lines
func (c Cart) IsEmpty() bool {
	return len(c.Lines) == 0
}
