package cart

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bakerskart/kart/internal/domain"
	"github.com/bakerskart/kart/internal/store"
)

var (
	sourdough = domain.Product{ID: "p1", Title: "Sourdough Starter", Company: "Crumb & Co", Price: 450}
	flour     = domain.Product{ID: "p2", Title: "Bread Flour 5kg", Company: "Millstone", Price: 380, SellingPrice: 350}
)

func newTestLedger(t *testing.T) *Ledger {
	t.Helper()
	backend, err := store.Open(t.TempDir())
	require.NoError(t, err)
	t.Cleanup(func() { backend.Close() })
	return NewLedger(backend)
}

func TestAddDeduplicatesByProduct(t *testing.T) {
	l := newTestLedger(t)

	require.NoError(t, l.Add(sourdough, 1))
	require.NoError(t, l.Add(flour, 2))
	require.NoError(t, l.Add(sourdough, 3))

	cart := l.Snapshot()
	require.Len(t, cart.Lines, 2)
	assert.Equal(t, 4, cart.Lines[0].Quantity)
	assert.Equal(t, 6, cart.ItemCount())
}

func TestAddUsesSellingPrice(t *testing.T) {
	l := newTestLedger(t)

	require.NoError(t, l.Add(flour, 2))

	cart := l.Snapshot()
	assert.Equal(t, 350.0, cart.Lines[0].UnitPrice)
	assert.Equal(t, 700.0, cart.OrderTotal())
}

func TestSetQuantityZeroRemovesLine(t *testing.T) {
	l := newTestLedger(t)
	require.NoError(t, l.Add(sourdough, 2))
	require.NoError(t, l.Add(flour, 1))

	require.NoError(t, l.SetQuantity("p1", 0))

	cart := l.Snapshot()
	require.Len(t, cart.Lines, 1)
	assert.Equal(t, "p2", cart.Lines[0].ProductID)

	// Negative quantities behave the same way
	require.NoError(t, l.SetQuantity("p2", -3))
	assert.True(t, l.Snapshot().IsEmpty())
}

func TestSetQuantityUnknownProductIsNoop(t *testing.T) {
	l := newTestLedger(t)
	require.NoError(t, l.Add(sourdough, 1))

	require.NoError(t, l.SetQuantity("missing", 5))

	cart := l.Snapshot()
	require.Len(t, cart.Lines, 1)
	assert.Equal(t, 1, cart.Lines[0].Quantity)
}

func TestRemove(t *testing.T) {
	l := newTestLedger(t)
	require.NoError(t, l.Add(sourdough, 1))

	require.NoError(t, l.Remove("p1"))
	assert.True(t, l.Snapshot().IsEmpty())
}

func TestCartSurvivesReload(t *testing.T) {
	dir := t.TempDir()

	backend, err := store.Open(dir)
	require.NoError(t, err)
	l := NewLedger(backend)
	require.NoError(t, l.Add(sourdough, 2))
	require.NoError(t, l.Add(flour, 1))
	require.NoError(t, backend.Close())

	backend, err = store.Open(dir)
	require.NoError(t, err)
	defer backend.Close()

	reloaded := NewLedger(backend)
	cart := reloaded.Snapshot()
	require.Len(t, cart.Lines, 2)
	assert.Equal(t, 3, cart.ItemCount())
	assert.Equal(t, 450.0*2+350.0, cart.OrderTotal())
}

func TestClearEmptiesCartAndStorage(t *testing.T) {
	dir := t.TempDir()

	backend, err := store.Open(dir)
	require.NoError(t, err)
	l := NewLedger(backend)
	require.NoError(t, l.Add(sourdough, 2))

	l.Clear()
	assert.True(t, l.Snapshot().IsEmpty())
	require.NoError(t, backend.Close())

	backend, err = store.Open(dir)
	require.NoError(t, err)
	defer backend.Close()
	assert.True(t, NewLedger(backend).Snapshot().IsEmpty())
}

func TestSnapshotIsACopy(t *testing.T) {
	l := newTestLedger(t)
	require.NoError(t, l.Add(sourdough, 1))

	cart := l.Snapshot()
	cart.Lines[0].Quantity = 99

	assert.Equal(t, 1, l.Snapshot().Lines[0].Quantity)
}
