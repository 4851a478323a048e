package service

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bakerskart/kart/internal/api"
	"github.com/bakerskart/kart/internal/cache"
	"github.com/bakerskart/kart/internal/domain"
	"github.com/bakerskart/kart/internal/log"
	"github.com/bakerskart/kart/internal/session"
	"github.com/bakerskart/kart/internal/store"
)

func newAccountFixture(t *testing.T, handler http.Handler) (*AccountService, *session.Store, *cache.Cache) {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	backend, err := store.Open(t.TempDir())
	require.NoError(t, err)
	t.Cleanup(func() { backend.Close() })

	creds := session.NewStore(backend)
	c := cache.New()
	client := api.NewClient(api.NewGateway(server.URL, creds))
	return NewAccountService(client, creds, c, log.NullLogger()), creds, c
}

func TestLoginUserStoresSession(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("POST /auth/login", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"jwt":"user-token","user":{"_id":"u1","username":"asha"}}`))
	})
	svc, creds, _ := newAccountFixture(t, mux)

	require.NoError(t, svc.LoginUser(context.Background(), "asha@example.in", "secret"))

	sess := creds.Get()
	require.NotNil(t, sess.User)
	assert.Equal(t, "asha", sess.User.User.Username)
	assert.Equal(t, "user-token", creds.UserToken())
}

func TestLoginUserBadCredentials(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("POST /auth/login", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"error":{"message":"invalid identifier or password"}}`))
	})
	svc, creds, _ := newAccountFixture(t, mux)

	err := svc.LoginUser(context.Background(), "asha@example.in", "wrong")
	var verr *domain.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "invalid identifier or password", verr.Message)
	assert.Nil(t, creds.Get().User)
}

func TestLoginAdminStoresRole(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("POST /auth/admin/login", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"jwt":"admin-token","admin":{"_id":"a1","username":"dev","role":"staff"}}`))
	})
	svc, creds, _ := newAccountFixture(t, mux)

	require.NoError(t, svc.LoginAdmin(context.Background(), "dev@bakerskart.in", "secret"))

	sess := creds.Get()
	require.NotNil(t, sess.Admin)
	assert.Equal(t, domain.RoleStaff, sess.Admin.Admin.Role)
}

func TestLogoutDropsUserScopedCache(t *testing.T) {
	svc, creds, c := newAccountFixture(t, http.NewServeMux())
	require.NoError(t, creds.SetUser(domain.User{ID: "u1"}, "tok"))

	// Seed a per-user cached read and an anonymous one
	seed := func(key string) {
		_, err := c.Read(context.Background(), key, func(ctx context.Context) (interface{}, error) {
			return "payload", nil
		})
		require.NoError(t, err)
	}
	seed(cache.Key(cache.PrefixOrders, map[string]string{"page": "1"}))
	seed(cache.Key(cache.PrefixProducts, map[string]string{"page": "1"}))

	svc.LogoutUser()

	counts := map[string]int{}
	read := func(key string) {
		_, err := c.Read(context.Background(), key, func(ctx context.Context) (interface{}, error) {
			counts[key]++
			return "fresh", nil
		})
		require.NoError(t, err)
	}

	// Orders must refetch; the anonymous products read is still cached
	ordersKey := cache.Key(cache.PrefixOrders, map[string]string{"page": "1"})
	productsKey := cache.Key(cache.PrefixProducts, map[string]string{"page": "1"})
	read(ordersKey)
	read(productsKey)
	assert.Equal(t, 1, counts[ordersKey])
	assert.Equal(t, 0, counts[productsKey])
}
