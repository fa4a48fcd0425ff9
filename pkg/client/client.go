// Package client is a typed REST client for the dormdesk admin API. A
// Client[T, D] satisfies both crud.Fetcher[T] and crud.Mutator[D] for one
// resource collection.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"dormdesk/pkg/crud"

	"github.com/rs/zerolog/log"
)

// Client talks to one resource collection under baseURL.
type Client[T any, D any] struct {
	hc       *http.Client
	baseURL  string
	resource string
	token    string
}

// New creates a client for a resource path (e.g. "rooms"). The token is
// sent as a bearer token on every request.
func New[T any, D any](baseURL, resource, token string, timeoutSec int) *Client[T, D] {
	if timeoutSec == 0 {
		timeoutSec = 30 // default timeout
	}
	return &Client[T, D]{
		hc:       &http.Client{Timeout: time.Duration(timeoutSec) * time.Second},
		baseURL:  baseURL,
		resource: resource,
		token:    token,
	}
}

// List fetches one page of the collection.
func (c *Client[T, D]) List(ctx context.Context, page, size int) (crud.Page[T], error) {
	var out crud.Page[T]
	path := fmt.Sprintf("/api/v1/%s?page=%d&size=%d", c.resource, page, size)
	resp, err := c.do(ctx, http.MethodGet, path, nil)
	if err != nil {
		return out, err
	}
	if err := json.Unmarshal(resp.Body, &out); err != nil {
		return out, &crud.NetworkError{Err: fmt.Errorf("decode %s page: %w", c.resource, err)}
	}
	return out, nil
}

// GetAll fetches the whole collection, unpaginated. Used to populate
// selects for foreign-key fields.
func (c *Client[T, D]) GetAll(ctx context.Context) ([]T, error) {
	resp, err := c.do(ctx, http.MethodGet, "/api/v1/"+c.resource+"/all", nil)
	if err != nil {
		return nil, err
	}
	var out []T
	if err := json.Unmarshal(resp.Body, &out); err != nil {
		return nil, &crud.NetworkError{Err: fmt.Errorf("decode %s list: %w", c.resource, err)}
	}
	return out, nil
}

// Create inserts a new record from the draft.
func (c *Client[T, D]) Create(ctx context.Context, draft D) error {
	_, err := c.do(ctx, http.MethodPost, "/api/v1/"+c.resource, draft)
	return err
}

// Update replaces the editable fields of an existing record.
func (c *Client[T, D]) Update(ctx context.Context, id int64, draft D) error {
	_, err := c.do(ctx, http.MethodPut, fmt.Sprintf("/api/v1/%s/%d", c.resource, id), draft)
	return err
}

// Delete removes a record by ID.
func (c *Client[T, D]) Delete(ctx context.Context, id int64) error {
	_, err := c.do(ctx, http.MethodDelete, fmt.Sprintf("/api/v1/%s/%d", c.resource, id), nil)
	return err
}

// ExportExcel downloads the collection as an xlsx workbook.
func (c *Client[T, D]) ExportExcel(ctx context.Context) ([]byte, error) {
	resp, err := c.do(ctx, http.MethodGet, "/api/v1/"+c.resource+"/export", nil)
	if err != nil {
		return nil, err
	}
	return resp.Body, nil
}

// do runs one round trip and maps transport failures and non-2xx
// responses to *crud.NetworkError.
func (c *Client[T, D]) do(ctx context.Context, method, path string, payload any) (*response, error) {
	var body io.Reader
	if payload != nil {
		raw, err := json.Marshal(payload)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal JSON payload: %w", err)
		}
		body = bytes.NewReader(raw)
	}

	url := c.baseURL + path
	req, err := http.NewRequestWithContext(ctx, method, url, body)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Authorization", "Bearer "+c.token)

	log.Debug().
		Str("resource", c.resource).
		Str("method", method).
		Str("url", url).
		Msg("making HTTP request")

	resp, err := c.hc.Do(req)
	if err != nil {
		log.Error().
			Str("resource", c.resource).
			Str("url", url).
			Err(err).
			Msg("HTTP request failed")
		return nil, &crud.NetworkError{Err: err}
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &crud.NetworkError{Err: fmt.Errorf("failed to read response body: %w", err)}
	}

	log.Debug().
		Str("resource", c.resource).
		Int("status_code", resp.StatusCode).
		Int("body_length", len(raw)).
		Msg("received HTTP response")

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, &crud.NetworkError{Status: resp.StatusCode, Body: string(raw)}
	}

	return &response{StatusCode: resp.StatusCode, Body: raw}, nil
}

type response struct {
	StatusCode int
	Body       []byte
}
