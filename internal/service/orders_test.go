package service

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bakerskart/kart/internal/api"
	"github.com/bakerskart/kart/internal/cache"
	"github.com/bakerskart/kart/internal/cart"
	"github.com/bakerskart/kart/internal/domain"
	"github.com/bakerskart/kart/internal/log"
	"github.com/bakerskart/kart/internal/session"
	"github.com/bakerskart/kart/internal/store"
)

type checkoutFixture struct {
	orders  *OrderService
	ledger  *cart.Ledger
	cache   *cache.Cache
	creds   *session.Store
	server  *httptest.Server
	handler http.HandlerFunc

	orderFetches int
	placedOrders []map[string]interface{}
}

func newCheckoutFixture(t *testing.T) *checkoutFixture {
	t.Helper()

	f := &checkoutFixture{}

	mux := http.NewServeMux()
	mux.HandleFunc("POST /orders", func(w http.ResponseWriter, r *http.Request) {
		if f.handler != nil {
			f.handler(w, r)
			return
		}
		var payload map[string]interface{}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&payload))
		f.placedOrders = append(f.placedOrders, payload)
		w.WriteHeader(http.StatusCreated)
		w.Write([]byte(`{"data":{"_id":"o1"}}`))
	})
	mux.HandleFunc("GET /orders", func(w http.ResponseWriter, r *http.Request) {
		f.orderFetches++
		w.Write([]byte(`{"data":[{"_id":"o1","orderId":"BK-1"}],"meta":{"pagination":{"page":1,"pageCount":1}}}`))
	})
	f.server = httptest.NewServer(mux)
	t.Cleanup(f.server.Close)

	backend, err := store.Open(t.TempDir())
	require.NoError(t, err)
	t.Cleanup(func() { backend.Close() })

	f.creds = session.NewStore(backend)
	require.NoError(t, f.creds.SetUser(domain.User{ID: "u1", Username: "asha"}, "user-token"))

	f.cache = cache.New()
	f.ledger = cart.NewLedger(backend)
	client := api.NewClient(api.NewGateway(f.server.URL, f.creds))
	f.orders = NewOrderService(client, f.cache, f.ledger, t.TempDir(), log.NullLogger())

	require.NoError(t, f.ledger.Add(domain.Product{ID: "p1", Title: "Sourdough Starter", Price: 450}, 2))
	require.NoError(t, f.ledger.Add(domain.Product{ID: "p2", Title: "Bread Flour 5kg", Price: 380}, 1))

	return f
}

var shipping = domain.ShippingInfo{
	Name: "Asha", Address: "12 Mill Road", City: "Pune", State: "MH", Company: "Crumb & Co",
}

func TestCheckoutSuccessClearsCartAndInvalidatesOrders(t *testing.T) {
	f := newCheckoutFixture(t)

	// Warm the orders cache so invalidation is observable
	_, err := f.orders.Orders(context.Background(), api.ListQuery{Page: 1})
	require.NoError(t, err)
	require.Equal(t, 1, f.orderFetches)

	require.NoError(t, f.orders.Checkout(context.Background(), shipping))

	assert.True(t, f.ledger.Snapshot().IsEmpty())

	// The cached order list was dropped; the next read refetches
	_, err = f.orders.Orders(context.Background(), api.ListQuery{Page: 1})
	require.NoError(t, err)
	assert.Equal(t, 2, f.orderFetches)

	// The payload carried the mapped cart and totals
	require.Len(t, f.placedOrders, 1)
	data := f.placedOrders[0]["data"].(map[string]interface{})
	assert.Equal(t, "Asha", data["name"])
	assert.Equal(t, 450.0*2+380.0, data["chargeTotal"])
	assert.Equal(t, 3.0, data["numItemsInCart"])
	assert.Len(t, data["cartItems"], 2)
}

func TestCheckoutValidationFailureLeavesCartIntact(t *testing.T) {
	f := newCheckoutFixture(t)

	_, err := f.orders.Orders(context.Background(), api.ListQuery{Page: 1})
	require.NoError(t, err)

	f.handler = func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"error":{"message":"address is required"}}`))
	}

	err = f.orders.Checkout(context.Background(), shipping)
	var verr *domain.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "address is required", verr.Message)

	// Cart unchanged, orders cache untouched
	assert.Equal(t, 3, f.ledger.Snapshot().ItemCount())
	_, err = f.orders.Orders(context.Background(), api.ListQuery{Page: 1})
	require.NoError(t, err)
	assert.Equal(t, 1, f.orderFetches)
}

func TestCheckoutAuthFailureClearsSessionNotCart(t *testing.T) {
	f := newCheckoutFixture(t)

	f.handler = func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{}`))
	}

	err := f.orders.Checkout(context.Background(), shipping)
	assert.ErrorIs(t, err, domain.ErrAuthFailed)

	// The gateway invalidated the expired session; the cart survives so the
	// shopper can log back in and retry
	assert.Nil(t, f.creds.Get().User)
	assert.Equal(t, 3, f.ledger.Snapshot().ItemCount())
}

func TestCheckoutEmptyCart(t *testing.T) {
	f := newCheckoutFixture(t)
	f.ledger.Clear()

	err := f.orders.Checkout(context.Background(), shipping)
	assert.ErrorIs(t, err, ErrEmptyCart)
	assert.Empty(t, f.placedOrders)
}
