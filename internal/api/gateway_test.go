package api

import (
	"bytes"
	"context"
	"errors"
	"io"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bakerskart/kart/internal/domain"
)

// fakeTokens records which sessions the gateway invalidates.
type fakeTokens struct {
	userToken    string
	adminToken   string
	userCleared  bool
	adminCleared bool
}

func (f *fakeTokens) UserToken() string  { return f.userToken }
func (f *fakeTokens) AdminToken() string { return f.adminToken }
func (f *fakeTokens) ClearUser()         { f.userCleared = true; f.userToken = "" }
func (f *fakeTokens) ClearAdmin()        { f.adminCleared = true; f.adminToken = "" }

// fakeTransport returns canned responses and records the requests it saw.
type fakeTransport struct {
	status   int
	body     string
	err      error
	requests []*http.Request
}

func (f *fakeTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	f.requests = append(f.requests, req)
	if f.err != nil {
		return nil, f.err
	}
	return &http.Response{
		StatusCode: f.status,
		Body:       io.NopCloser(bytes.NewReader([]byte(f.body))),
		Header:     http.Header{},
		Request:    req,
	}, nil
}

func newTestGateway(tokens *fakeTokens, transport *fakeTransport) *Gateway {
	gw := NewGateway("https://api.test/api/v1", tokens)
	gw.http = &http.Client{Transport: transport}
	return gw
}

func TestGatewayAttachesSelectedCredential(t *testing.T) {
	tests := []struct {
		name       string
		cred       Credential
		wantBearer string
	}{
		{name: "none", cred: CredNone, wantBearer: ""},
		{name: "user", cred: CredUser, wantBearer: "Bearer user-token"},
		{name: "admin", cred: CredAdmin, wantBearer: "Bearer admin-token"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tokens := &fakeTokens{userToken: "user-token", adminToken: "admin-token"}
			transport := &fakeTransport{status: http.StatusOK, body: `{}`}
			gw := newTestGateway(tokens, transport)

			_, err := gw.Get(context.Background(), "/orders", nil, tt.cred)
			require.NoError(t, err)
			require.Len(t, transport.requests, 1)
			assert.Equal(t, tt.wantBearer, transport.requests[0].Header.Get("Authorization"))
		})
	}
}

func TestGatewayClearsUserSessionOn401(t *testing.T) {
	tokens := &fakeTokens{userToken: "user-token", adminToken: "admin-token"}
	transport := &fakeTransport{status: http.StatusUnauthorized, body: `{}`}
	gw := newTestGateway(tokens, transport)

	_, err := gw.Get(context.Background(), "/orders", nil, CredUser)
	assert.ErrorIs(t, err, domain.ErrAuthFailed)
	assert.True(t, tokens.userCleared)
	assert.Empty(t, tokens.UserToken())

	// The independent admin session is untouched
	assert.False(t, tokens.adminCleared)
	assert.Equal(t, "admin-token", tokens.AdminToken())
}

func TestGatewayClearsAdminSessionOn403(t *testing.T) {
	tokens := &fakeTokens{userToken: "user-token", adminToken: "admin-token"}
	transport := &fakeTransport{status: http.StatusForbidden, body: `{}`}
	gw := newTestGateway(tokens, transport)

	_, err := gw.Get(context.Background(), "/admins", nil, CredAdmin)
	assert.ErrorIs(t, err, domain.ErrAuthFailed)
	assert.True(t, tokens.adminCleared)
	assert.False(t, tokens.userCleared)
}

func TestGatewayLeavesSessionsOn401WithoutCredential(t *testing.T) {
	tokens := &fakeTokens{userToken: "user-token"}
	transport := &fakeTransport{status: http.StatusUnauthorized, body: `{}`}
	gw := newTestGateway(tokens, transport)

	_, err := gw.Get(context.Background(), "/products", nil, CredNone)
	assert.ErrorIs(t, err, domain.ErrAuthFailed)
	assert.False(t, tokens.userCleared)
}

func TestGatewayClassifiesValidationErrors(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		wantMsg string
	}{
		{name: "nested shape", body: `{"error":{"message":"title is required"}}`, wantMsg: "title is required"},
		{name: "flat shape", body: `{"message":"stock too low"}`, wantMsg: "stock too low"},
		{name: "no message", body: `{}`, wantMsg: ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tokens := &fakeTokens{}
			transport := &fakeTransport{status: http.StatusUnprocessableEntity, body: tt.body}
			gw := newTestGateway(tokens, transport)

			_, err := gw.Send(context.Background(), http.MethodPost, "/products", map[string]string{}, CredAdmin)
			var verr *domain.ValidationError
			require.ErrorAs(t, err, &verr)
			assert.Equal(t, http.StatusUnprocessableEntity, verr.Status)
			assert.Equal(t, tt.wantMsg, verr.Message)
		})
	}
}

func TestGatewayClassifiesNotFound(t *testing.T) {
	gw := newTestGateway(&fakeTokens{}, &fakeTransport{status: http.StatusNotFound, body: `{}`})

	_, err := gw.Get(context.Background(), "/products/nope", nil, CredNone)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestGatewayClassifiesServerErrors(t *testing.T) {
	gw := newTestGateway(&fakeTokens{}, &fakeTransport{status: http.StatusBadGateway, body: "upstream down"})

	_, err := gw.Get(context.Background(), "/products", nil, CredNone)
	var serr *domain.ServerError
	require.ErrorAs(t, err, &serr)
	assert.Equal(t, http.StatusBadGateway, serr.Status)
}

func TestGatewayClassifiesTransportFailure(t *testing.T) {
	gw := newTestGateway(&fakeTokens{}, &fakeTransport{err: errors.New("connection refused")})

	_, err := gw.Get(context.Background(), "/products", nil, CredNone)
	assert.ErrorIs(t, err, domain.ErrOffline)
}

func TestGatewayDoesNotRetry(t *testing.T) {
	transport := &fakeTransport{status: http.StatusInternalServerError, body: `{}`}
	gw := newTestGateway(&fakeTokens{}, transport)

	_, err := gw.Send(context.Background(), http.MethodPost, "/orders", map[string]string{}, CredUser)
	require.Error(t, err)
	assert.Len(t, transport.requests, 1)
}

func TestGatewayReturnsBodyOnSuccess(t *testing.T) {
	transport := &fakeTransport{status: http.StatusOK, body: `{"data":[{"_id":"p1"}]}`}
	gw := newTestGateway(&fakeTokens{}, transport)

	body, err := gw.Get(context.Background(), "/products", nil, CredNone)
	require.NoError(t, err)
	assert.JSONEq(t, `{"data":[{"_id":"p1"}]}`, string(body))
}
