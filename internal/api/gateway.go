package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"

	"github.com/bakerskart/kart/internal/domain"
)

const userAgent = "Kart/1.0"

// Credential selects which stored bearer token, if any, a request carries.
type Credential int

const (
	CredNone Credential = iota
	CredUser
	CredAdmin
)

// TokenSource provides bearer tokens and session invalidation.
// Satisfied by *session.Store.
type TokenSource interface {
	UserToken() string
	AdminToken() string
	ClearUser()
	ClearAdmin()
}

// FilePart is one file attached to a multipart request.
type FilePart struct {
	Field    string
	Filename string
	Content  []byte
}

// Gateway is the single pipe every API call goes through. It attaches the
// bearer credential a call site asks for and classifies failures into the
// domain error taxonomy. On a 401/403 it clears the matching stored session
// before returning, and leaves navigation to the caller. It does not log,
// touch UI state, or retry; writes have no idempotency contract, so a blind
// retry could duplicate an order.
type Gateway struct {
	baseURL string
	http    *http.Client
	creds   TokenSource
}

// NewGateway creates a gateway for the API at baseURL. No client-side
// timeout is imposed; the transport's defaults apply.
func NewGateway(baseURL string, creds TokenSource) *Gateway {
	return &Gateway{
		baseURL: baseURL,
		http:    &http.Client{},
		creds:   creds,
	}
}

// Get issues an authenticated GET and returns the response body.
func (g *Gateway) Get(ctx context.Context, path string, query url.Values, cred Credential) ([]byte, error) {
	req, err := g.newRequest(ctx, http.MethodGet, path, query, nil, "")
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")
	return g.do(req, cred)
}

// Send issues a request with a JSON body (or none, when body is nil) and
// returns the response body.
func (g *Gateway) Send(ctx context.Context, method, path string, body interface{}, cred Credential) ([]byte, error) {
	var reader io.Reader
	contentType := ""
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("failed to encode request body: %w", err)
		}
		reader = bytes.NewReader(data)
		contentType = "application/json"
	}

	req, err := g.newRequest(ctx, method, path, nil, reader, contentType)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")
	return g.do(req, cred)
}

// SendMultipart issues a request with a multipart form body, used for
// resources that carry an image upload.
func (g *Gateway) SendMultipart(ctx context.Context, method, path string, fields map[string]string, files []FilePart, cred Credential) ([]byte, error) {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	for field, value := range fields {
		if err := w.WriteField(field, value); err != nil {
			return nil, fmt.Errorf("failed to encode form field %q: %w", field, err)
		}
	}
	for _, f := range files {
		part, err := w.CreateFormFile(f.Field, f.Filename)
		if err != nil {
			return nil, fmt.Errorf("failed to encode form file %q: %w", f.Field, err)
		}
		if _, err := part.Write(f.Content); err != nil {
			return nil, fmt.Errorf("failed to encode form file %q: %w", f.Field, err)
		}
	}
	if err := w.Close(); err != nil {
		return nil, err
	}

	req, err := g.newRequest(ctx, method, path, nil, &buf, w.FormDataContentType())
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")
	return g.do(req, cred)
}

// Download issues a GET for a binary payload (invoice PDFs) and returns the
// raw bytes.
func (g *Gateway) Download(ctx context.Context, path string, cred Credential) ([]byte, error) {
	req, err := g.newRequest(ctx, http.MethodGet, path, nil, nil, "")
	if err != nil {
		return nil, err
	}
	return g.do(req, cred)
}

func (g *Gateway) newRequest(ctx context.Context, method, path string, query url.Values, body io.Reader, contentType string) (*http.Request, error) {
	reqURL := g.baseURL + path
	if len(query) > 0 {
		reqURL = reqURL + "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, method, reqURL, body)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	req.Header.Set("User-Agent", userAgent)
	return req, nil
}

// do sends the request with the selected credential attached and classifies
// the outcome.
func (g *Gateway) do(req *http.Request, cred Credential) ([]byte, error) {
	switch cred {
	case CredUser:
		if token := g.creds.UserToken(); token != "" {
			req.Header.Set("Authorization", "Bearer "+token)
		}
	case CredAdmin:
		if token := g.creds.AdminToken(); token != "" {
			req.Header.Set("Authorization", "Bearer "+token)
		}
	}

	resp, err := g.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrOffline, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	switch {
	case resp.StatusCode >= 200 && resp.StatusCode < 300:
		return body, nil

	case resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden:
		// The stored credential is no longer valid; drop it so the next
		// viewer of this surface starts anonymous. Redirecting is the
		// caller's decision.
		switch cred {
		case CredUser:
			g.creds.ClearUser()
		case CredAdmin:
			g.creds.ClearAdmin()
		}
		return nil, fmt.Errorf("%w (status %d)", domain.ErrAuthFailed, resp.StatusCode)

	case resp.StatusCode == http.StatusNotFound:
		return nil, fmt.Errorf("%w (%s)", domain.ErrNotFound, req.URL.Path)

	case resp.StatusCode >= 400 && resp.StatusCode < 500:
		return nil, &domain.ValidationError{Status: resp.StatusCode, Message: errorMessage(body)}

	default:
		return nil, &domain.ServerError{Status: resp.StatusCode}
	}
}

// errorMessage extracts the server's message from an error body. Both shapes
// the API produces occur in the wild and both are handled:
// {"error":{"message":...}} and {"message":...}.
func errorMessage(body []byte) string {
	var nested struct {
		Error struct {
			Message string `json:"message"`
		} `json:"error"`
	}
	if err := json.Unmarshal(body, &nested); err == nil && nested.Error.Message != "" {
		return nested.Error.Message
	}

	var flat struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal(body, &flat); err == nil && flat.Message != "" {
		return flat.Message
	}
	return ""
}
