package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"dormdesk/internal/domain/contract"
	"dormdesk/internal/domain/usage"
	"dormdesk/internal/services"
	"dormdesk/internal/store/repositories"
	"dormdesk/pkg/crud"
)

func TestRespondErrorMapping(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want int
	}{
		{"validation", &services.ValidationError{Field: "name", Message: "name is required"}, http.StatusBadRequest},
		{"not found", repositories.ErrNotFound, http.StatusNotFound},
		{"wrapped not found", fmt.Errorf("lookup: %w", repositories.ErrNotFound), http.StatusNotFound},
		{"domain error", usage.DomainError{Code: usage.ErrInvalidQuantity, Message: "quantity must be positive: -1"}, http.StatusBadRequest},
		{"contract domain error", contract.DomainError{Code: contract.ErrInvalidDates, Message: "end date is before start date"}, http.StatusBadRequest},
		{"service error", &services.ServiceError{Op: "save_room", Err: fmt.Errorf("boom")}, http.StatusInternalServerError},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			respondError(rec, c.err)
			if rec.Code != c.want {
				t.Fatalf("expected %d, got %d", c.want, rec.Code)
			}
		})
	}
}

func TestRespondErrorValidationBody(t *testing.T) {
	rec := httptest.NewRecorder()
	respondError(rec, &services.ValidationError{Field: "capacity", Message: "capacity must be between 1 and 10"})

	var body fieldError
	if err := json.NewDecoder(rec.Body).Decode(&body); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if body.Field != "capacity" {
		t.Fatalf("expected field capacity, got %q", body.Field)
	}
}

func TestRespondErrorDomainBody(t *testing.T) {
	rec := httptest.NewRecorder()
	respondError(rec, usage.DomainError{Code: usage.ErrInvalidPeriod, Message: "month must be between 1 and 12: 13"})

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
	var body fieldError
	if err := json.NewDecoder(rec.Body).Decode(&body); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if body.Message == "" {
		t.Fatal("expected the domain message in the payload")
	}
}

func TestParseListParams(t *testing.T) {
	cases := []struct {
		query string
		want  crud.ListParams
	}{
		{"", crud.ListParams{Page: 1, Size: crud.DefaultPageSize}},
		{"page=3&size=20", crud.ListParams{Page: 3, Size: 20}},
		{"page=0&size=7", crud.ListParams{Page: 1, Size: crud.DefaultPageSize}},
		{"page=abc&size=xyz", crud.ListParams{Page: 1, Size: crud.DefaultPageSize}},
	}
	for _, c := range cases {
		r := httptest.NewRequest(http.MethodGet, "/api/v1/rooms?"+c.query, nil)
		if got := parseListParams(r); got != c.want {
			t.Errorf("parseListParams(%q) = %+v, want %+v", c.query, got, c.want)
		}
	}
}
