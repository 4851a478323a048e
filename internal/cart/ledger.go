package cart

import (
	"sync"

	"github.com/bakerskart/kart/internal/domain"
)

// Persister is the durable storage the ledger writes through on every
// mutation. Satisfied by *store.Store.
type Persister interface {
	GetCart(dest interface{}) bool
	SaveCart(value interface{}) error
	ClearCart()
}

// Ledger is the client-held shopping cart. Lines are unique by product ID
// and quantities are always positive. Snapshot is the only read path, so the
// cart view and checkout always see identical state.
type Ledger struct {
	backend Persister

	mu    sync.Mutex
	lines []domain.CartLine
}

// NewLedger loads any persisted cart from backend.
func NewLedger(backend Persister) *Ledger {
	l := &Ledger{backend: backend}
	var lines []domain.CartLine
	if backend.GetCart(&lines) {
		l.lines = lines
	}
	return l
}

// Add puts quantity units of product into the cart. Adding a product that is
// already in the cart increments its line instead of duplicating it.
// Non-positive quantities are treated as 1.
func (l *Ledger) Add(product domain.Product, quantity int) error {
	if quantity < 1 {
		quantity = 1
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	for i := range l.lines {
		if l.lines[i].ProductID == product.ID {
			l.lines[i].Quantity += quantity
			return l.persist()
		}
	}

	l.lines = append(l.lines, domain.CartLine{
		ProductID: product.ID,
		Title:     product.Title,
		Company:   product.Company,
		UnitPrice: product.UnitPrice(),
		Quantity:  quantity,
		ImageURL:  product.ImageURL,
	})
	return l.persist()
}

// Remove drops the line for productID, if present.
func (l *Ledger) Remove(productID string) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.removeLocked(productID)
}

// SetQuantity replaces the quantity for productID. A quantity of zero or
// less removes the line; a quantity for an unknown product is ignored.
func (l *Ledger) SetQuantity(productID string, quantity int) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if quantity <= 0 {
		return l.removeLocked(productID)
	}
	for i := range l.lines {
		if l.lines[i].ProductID == productID {
			l.lines[i].Quantity = quantity
			return l.persist()
		}
	}
	return nil
}

// Clear empties the cart. Called by the checkout flow only after the order
// write has succeeded; a failed order leaves the cart intact for retry.
func (l *Ledger) Clear() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.lines = nil
	l.backend.ClearCart()
}

// Snapshot returns a copy of the current cart.
func (l *Ledger) Snapshot() domain.Cart {
	l.mu.Lock()
	defer l.mu.Unlock()
	lines := make([]domain.CartLine, len(l.lines))
	copy(lines, l.lines)
	return domain.Cart{Lines: lines}
}

func (l *Ledger) removeLocked(productID string) error {
	for i := range l.lines {
		if l.lines[i].ProductID == productID {
			l.lines = append(l.lines[:i], l.lines[i+1:]...)
			return l.persist()
		}
	}
	return nil
}

func (l *Ledger) persist() error {
	return l.backend.SaveCart(l.lines)
}
