package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bakerskart/kart/internal/cart"
	"github.com/bakerskart/kart/internal/domain"
	"github.com/bakerskart/kart/internal/service"
	"github.com/bakerskart/kart/internal/session"
	"github.com/bakerskart/kart/internal/store"
)

func newTestModel(t *testing.T) (Model, *session.Store) {
	t.Helper()
	backend, err := store.Open("")
	require.NoError(t, err)
	t.Cleanup(func() { backend.Close() })

	creds := session.NewStore(backend)
	ledger := cart.NewLedger(backend)
	m := NewModel(nil, nil, nil, nil, creds, ledger, 10)
	m.width = 80
	m.height = 24
	m.ready = true
	return m, creds
}

func TestNavigateDeniedCheckoutShowsLoginWithoutLoading(t *testing.T) {
	m, _ := newTestModel(t)

	m.navigate(RouteCheckout)

	assert.Equal(t, RouteLogin, m.route)
	assert.Equal(t, formLogin, m.kind)
	assert.True(t, m.statusIsErr)
	assert.NotEmpty(t, m.statusMsg)
	// The denied route's loader must not exist for the login screen
	assert.Nil(t, m.loaderFor(RouteLogin, m.seq))
}

func TestNavigateAdminAreaRequiresAdminRole(t *testing.T) {
	m, creds := newTestModel(t)

	m.navigate(RouteAdminAdmins)
	assert.Equal(t, RouteAdminLogin, m.route)

	require.NoError(t, creds.SetAdmin(domain.Admin{ID: "a1", Role: domain.RoleStaff}, "tok"))
	m.navigate(RouteAdminAdmins)
	assert.Equal(t, RouteAdminAdmins, m.route)
	assert.False(t, m.statusIsErr)
}

func TestStaleLoaderResultIsDiscarded(t *testing.T) {
	m, _ := newTestModel(t)
	m.route = RouteProducts
	m.seq = 7

	stale := ProductsLoadedMsg{
		Page: service.ProductPage{Products: []domain.Product{{ID: "p1", Title: "Sourdough Starter"}}},
		Seq:  6,
	}
	updated, _ := m.Update(stale)
	got := updated.(Model)
	assert.Empty(t, got.products.Products)

	fresh := stale
	fresh.Seq = 7
	updated, _ = m.Update(fresh)
	got = updated.(Model)
	assert.Len(t, got.products.Products, 1)
}

func TestCartRowsFollowLedger(t *testing.T) {
	m, _ := newTestModel(t)

	require.NoError(t, m.Ledger.Add(domain.Product{ID: "p1", Title: "Bread Flour 5kg", Price: 380, SellingPrice: 350}, 2))
	m.navigate(RouteCart)

	assert.Equal(t, RouteCart, m.route)
	assert.Equal(t, 1, m.list.Len())
	row := m.list.Selected()
	require.NotNil(t, row)
	assert.Equal(t, "p1", row.ID)
	assert.Contains(t, row.Trailer, "×2")
}

func TestCartScreenOnlyRemovesSelectedLine(t *testing.T) {
	m, _ := newTestModel(t)

	require.NoError(t, m.Ledger.Add(domain.Product{ID: "p1", Title: "Bread Flour 5kg", SellingPrice: 350}, 2))
	require.NoError(t, m.Ledger.Add(domain.Product{ID: "p2", Title: "Dry Yeast 100g", SellingPrice: 90}, 1))
	m.navigate(RouteCart)

	// There is no wipe-the-cart key; only checkout empties the ledger.
	updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'X'}})
	m = updated.(Model)
	assert.Len(t, m.Ledger.Snapshot().Lines, 2)

	updated, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'x'}})
	m = updated.(Model)
	assert.Len(t, m.Ledger.Snapshot().Lines, 1)
}

func TestProductDetailQuantityPicker(t *testing.T) {
	m, _ := newTestModel(t)
	m.productID = "p1"
	m.navigate(RouteProductDetail)

	updated, _ := m.Update(ProductLoadedMsg{
		Product: domain.Product{ID: "p1", Title: "Bread Flour 5kg", SellingPrice: 350},
		Seq:     m.seq,
	})
	m = updated.(Model)
	assert.Equal(t, 1, m.qty)

	for _, r := range []rune{'+', '+', '-'} {
		updated, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
		m = updated.(Model)
	}
	assert.Equal(t, 2, m.qty)

	updated, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'a'}})
	m = updated.(Model)
	snap := m.Ledger.Snapshot()
	require.Len(t, snap.Lines, 1)
	assert.Equal(t, 2, snap.Lines[0].Quantity)
}

func TestConfirmModalDenyKeepsEntity(t *testing.T) {
	m, _ := newTestModel(t)
	m.confirmKind = "product"
	m.confirmID = "p1"

	updated, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'n'}})
	m = updated.(Model)
	assert.Empty(t, m.confirmKind)
	assert.Nil(t, cmd)
}

func TestGoBackPopsHistory(t *testing.T) {
	m, _ := newTestModel(t)

	m.navigate(RouteProducts)
	m.navigate(RouteCart)
	m.goBack()
	assert.Equal(t, RouteProducts, m.route)
	m.goBack()
	assert.Equal(t, RouteLanding, m.route)
}
