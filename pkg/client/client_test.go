package client

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"dormdesk/pkg/crud"
)

type room struct {
	ID     int64  `json:"id"`
	Number string `json:"number"`
}

type roomDraft struct {
	Number string `json:"number"`
}

func TestClientList(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/v1/rooms" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		if got := r.Header.Get("Authorization"); got != "Bearer secret" {
			t.Errorf("unexpected auth header %q", got)
		}
		q := r.URL.Query()
		if q.Get("page") != "2" || q.Get("size") != "20" {
			t.Errorf("unexpected query %s", r.URL.RawQuery)
		}
		json.NewEncoder(w).Encode(crud.Page[room]{
			Items: []room{{ID: 21, Number: "A-21"}},
			Total: 41,
			Page:  2,
			Size:  20,
			Pages: 3,
		})
	}))
	defer srv.Close()

	c := New[room, roomDraft](srv.URL, "rooms", "secret", 5)
	page, err := c.List(context.Background(), 2, 20)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if page.Total != 41 || page.Pages != 3 {
		t.Fatalf("unexpected page meta: %+v", page)
	}
	if len(page.Items) != 1 || page.Items[0].Number != "A-21" {
		t.Fatalf("unexpected items: %+v", page.Items)
	}
}

func TestClientCreate(t *testing.T) {
	var got roomDraft
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/api/v1/rooms" {
			t.Errorf("unexpected %s %s", r.Method, r.URL.Path)
		}
		if ct := r.Header.Get("Content-Type"); ct != "application/json" {
			t.Errorf("unexpected content type %q", ct)
		}
		json.NewDecoder(r.Body).Decode(&got)
		w.WriteHeader(http.StatusCreated)
	}))
	defer srv.Close()

	c := New[room, roomDraft](srv.URL, "rooms", "secret", 5)
	if err := c.Create(context.Background(), roomDraft{Number: "B-3"}); err != nil {
		t.Fatalf("Create: %v", err)
	}
	if got.Number != "B-3" {
		t.Fatalf("server received %+v", got)
	}
}

func TestClientUpdateAndDeletePaths(t *testing.T) {
	var paths []string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		paths = append(paths, r.Method+" "+r.URL.Path)
		if r.Method == http.MethodDelete {
			w.WriteHeader(http.StatusNoContent)
		}
	}))
	defer srv.Close()

	c := New[room, roomDraft](srv.URL, "rooms", "secret", 5)
	ctx := context.Background()
	if err := c.Update(ctx, 7, roomDraft{Number: "C-7"}); err != nil {
		t.Fatalf("Update: %v", err)
	}
	if err := c.Delete(ctx, 7); err != nil {
		t.Fatalf("Delete: %v", err)
	}

	want := []string{"PUT /api/v1/rooms/7", "DELETE /api/v1/rooms/7"}
	if len(paths) != len(want) {
		t.Fatalf("requests: %v", paths)
	}
	for i := range want {
		if paths[i] != want[i] {
			t.Fatalf("request %d: got %q, want %q", i, paths[i], want[i])
		}
	}
}

func TestClientErrorMapping(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
	}))
	defer srv.Close()

	c := New[room, roomDraft](srv.URL, "rooms", "wrong", 5)
	_, err := c.List(context.Background(), 1, 10)
	var netErr *crud.NetworkError
	if !errors.As(err, &netErr) {
		t.Fatalf("expected *crud.NetworkError, got %v", err)
	}
	if netErr.Status != http.StatusUnauthorized {
		t.Fatalf("expected status 401, got %d", netErr.Status)
	}
}

func TestClientTransportError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // connection refused from here on

	c := New[room, roomDraft](srv.URL, "rooms", "secret", 5)
	_, err := c.List(context.Background(), 1, 10)
	var netErr *crud.NetworkError
	if !errors.As(err, &netErr) {
		t.Fatalf("expected *crud.NetworkError, got %v", err)
	}
	if netErr.Err == nil {
		t.Fatal("expected wrapped transport error")
	}
}

func TestClientGetAll(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/v1/rooms/all" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		json.NewEncoder(w).Encode([]room{{ID: 1, Number: "A-1"}, {ID: 2, Number: "A-2"}})
	}))
	defer srv.Close()

	c := New[room, roomDraft](srv.URL, "rooms", "secret", 5)
	items, err := c.GetAll(context.Background())
	if err != nil {
		t.Fatalf("GetAll: %v", err)
	}
	if len(items) != 2 {
		t.Fatalf("expected 2 items, got %d", len(items))
	}
}
