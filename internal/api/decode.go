package api

import (
	"encoding/json"
	"fmt"

	"github.com/bakerskart/kart/internal/domain"
)

// The API is inconsistent about response shapes: some endpoints wrap the
// resource in {"data": ...}, others return it bare, and list endpoints add
// {"meta":{"pagination": ...}}. Each call site decodes with the helper
// matching its endpoint, so nothing above this package ever sees the
// difference.

// decodeWrapped decodes a {"data": {...}}-wrapped resource into dest.
func decodeWrapped(body []byte, dest interface{}) error {
	var envelope struct {
		Data json.RawMessage `json:"data"`
	}
	if err := json.Unmarshal(body, &envelope); err != nil {
		return fmt.Errorf("failed to parse response: %w", err)
	}
	if len(envelope.Data) == 0 {
		return fmt.Errorf("failed to parse response: missing data field")
	}
	if err := json.Unmarshal(envelope.Data, dest); err != nil {
		return fmt.Errorf("failed to parse response: %w", err)
	}
	return nil
}

// decodeBare decodes a bare resource into dest.
func decodeBare(body []byte, dest interface{}) error {
	if err := json.Unmarshal(body, dest); err != nil {
		return fmt.Errorf("failed to parse response: %w", err)
	}
	return nil
}

// decodeList decodes a {"data": [...], "meta": {"pagination": ...}} list
// response into dest and returns the pagination block.
func decodeList(body []byte, dest interface{}) (domain.Pagination, error) {
	var envelope struct {
		Data json.RawMessage `json:"data"`
		Meta struct {
			Pagination domain.Pagination `json:"pagination"`
		} `json:"meta"`
	}
	if err := json.Unmarshal(body, &envelope); err != nil {
		return domain.Pagination{}, fmt.Errorf("failed to parse response: %w", err)
	}
	if len(envelope.Data) > 0 {
		if err := json.Unmarshal(envelope.Data, dest); err != nil {
			return domain.Pagination{}, fmt.Errorf("failed to parse response: %w", err)
		}
	}
	return envelope.Meta.Pagination, nil
}
