package api

import (
	"net/url"
	"strconv"
)

// Client exposes the BakersKart API resource by resource. All calls go
// through the gateway, which owns credentials and error classification.
type Client struct {
	gw *Gateway
}

// NewClient creates a client on top of gw.
func NewClient(gw *Gateway) *Client {
	return &Client{gw: gw}
}

// ListQuery is the pagination request for list endpoints.
type ListQuery struct {
	Page  int
	Limit int
}

// values encodes the query using the given page-size parameter name; the
// API accepts "limit" on most lists but "pageSize" on categories.
func (q ListQuery) values(sizeParam string) url.Values {
	v := url.Values{}
	if q.Page > 0 {
		v.Set("page", strconv.Itoa(q.Page))
	}
	if q.Limit > 0 {
		v.Set(sizeParam, strconv.Itoa(q.Limit))
	}
	return v
}

// CacheParams returns the query as a parameter map for cache key building.
func (q ListQuery) CacheParams() map[string]string {
	params := map[string]string{}
	if q.Page > 0 {
		params["page"] = strconv.Itoa(q.Page)
	}
	if q.Limit > 0 {
		params["limit"] = strconv.Itoa(q.Limit)
	}
	return params
}
