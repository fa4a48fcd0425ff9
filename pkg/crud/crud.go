// Package crud implements a UI-agnostic paginated-collection controller:
// pagination state, form drafts with field validation, and a query cache
// with mutation-driven invalidation. Rendering, routing and dialogs are
// external collaborators wired in through Config.
package crud

import (
	"context"
	"fmt"
)

// Page is one window of a paginated collection as served by the backend.
type Page[T any] struct {
	Items []T `json:"items"`
	Total int `json:"total"`
	Page  int `json:"page"`
	Size  int `json:"size"`
	Pages int `json:"pages"`
}

// PageSizes are the page sizes the list views offer.
var PageSizes = []int{5, 10, 20, 50}

// DefaultPageSize is used until the user picks a size.
const DefaultPageSize = 10

// ListParams represents a paginated list request
type ListParams struct {
	Page int `json:"page,omitempty"`
	Size int `json:"size,omitempty"`
}

// Normalize validates and normalizes list parameters
func (p *ListParams) Normalize() {
	if p.Page < 1 {
		p.Page = 1
	}
	if !validSize(p.Size) {
		p.Size = DefaultPageSize
	}
}

func validSize(size int) bool {
	for _, s := range PageSizes {
		if size == s {
			return true
		}
	}
	return false
}

// PageCount returns how many pages a collection of total items spans.
func PageCount(total, size int) int {
	if total <= 0 || size <= 0 {
		return 0
	}
	return (total + size - 1) / size
}

// FieldErrors maps a field name to a human-readable message. An empty set
// means the draft is valid.
type FieldErrors map[string]string

// Valid reports whether the error set is empty.
func (e FieldErrors) Valid() bool { return len(e) == 0 }

// Fetcher reads a paginated collection from the backend.
type Fetcher[T any] interface {
	List(ctx context.Context, page, size int) (Page[T], error)
	GetAll(ctx context.Context) ([]T, error)
}

// Mutator executes single round-trip mutations against the backend.
type Mutator[D any] interface {
	Create(ctx context.Context, draft D) error
	Update(ctx context.Context, id int64, draft D) error
	Delete(ctx context.Context, id int64) error
}

// NetworkError is a transport or server failure. It is surfaced as a
// page-level banner; the user retries manually.
type NetworkError struct {
	Status int
	Body   string
	Err    error
}

func (e *NetworkError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("network error: %v", e.Err)
	}
	return fmt.Sprintf("network error: status %d: %s", e.Status, e.Body)
}

func (e *NetworkError) Unwrap() error { return e.Err }
