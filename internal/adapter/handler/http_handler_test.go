package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rl1809/shop-sync/internal/adapter/storage"
	"github.com/rl1809/shop-sync/internal/core/domain"
)

func newTestServer(t *testing.T) (*httptest.Server, *storage.MemoryAdapter) {
	t.Helper()
	repo := storage.NewMemoryAdapter()
	err := repo.SeedInventory(context.Background(), []domain.InventoryItem{
		{ID: 1, Name: "Apple", Count: 5},
	})
	if err != nil {
		t.Fatalf("seed failed: %v", err)
	}

	mux := http.NewServeMux()
	NewHTTPHandler(repo).Register(mux)
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv, repo
}

func postCart(t *testing.T, srv *httptest.Server, item domain.CartItem) *http.Response {
	t.Helper()
	body, _ := json.Marshal(item)
	resp, err := http.Post(srv.URL+"/cart", "application/json", bytes.NewReader(body))
	if err != nil {
		t.Fatalf("post failed: %v", err)
	}
	return resp
}

func doRequest(t *testing.T, method, url string, body []byte) *http.Response {
	t.Helper()
	req, err := http.NewRequest(method, url, bytes.NewReader(body))
	if err != nil {
		t.Fatalf("build request: %v", err)
	}
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("%s %s failed: %v", method, url, err)
	}
	return resp
}

func TestListInventory_EmptyCartIsJSONArray(t *testing.T) {
	srv, _ := newTestServer(t)

	resp, err := http.Get(srv.URL + "/inventory")
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	defer resp.Body.Close()
	var items []domain.InventoryItem
	if err := json.NewDecoder(resp.Body).Decode(&items); err != nil {
		t.Fatalf("decode failed: %v", err)
	}
	if len(items) != 1 || items[0].Name != "Apple" {
		t.Errorf("unexpected inventory: %v", items)
	}

	resp, err = http.Get(srv.URL + "/cart")
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	defer resp.Body.Close()
	var cart []domain.CartItem
	if err := json.NewDecoder(resp.Body).Decode(&cart); err != nil {
		t.Fatalf("empty cart must decode as an array: %v", err)
	}
	if len(cart) != 0 {
		t.Errorf("expected empty cart, got %v", cart)
	}
}

func TestCreateCartEntry_Statuses(t *testing.T) {
	srv, _ := newTestServer(t)

	resp := postCart(t, srv, domain.CartItem{ID: 1, Amount: 2})
	if resp.StatusCode != http.StatusCreated {
		t.Errorf("expected 201, got %d", resp.StatusCode)
	}
	var created domain.CartItem
	json.NewDecoder(resp.Body).Decode(&created)
	resp.Body.Close()
	if created.Name != "Apple" || created.Amount != 2 {
		t.Errorf("unexpected created entry: %v", created)
	}

	// Duplicate id.
	resp = postCart(t, srv, domain.CartItem{ID: 1, Amount: 1})
	resp.Body.Close()
	if resp.StatusCode != http.StatusConflict {
		t.Errorf("expected 409 for duplicate, got %d", resp.StatusCode)
	}

	// Unknown inventory id.
	resp = postCart(t, srv, domain.CartItem{ID: 99, Amount: 1})
	resp.Body.Close()
	if resp.StatusCode != http.StatusNotFound {
		t.Errorf("expected 404, got %d", resp.StatusCode)
	}

	// Non-positive amount.
	resp = postCart(t, srv, domain.CartItem{ID: 1, Amount: 0})
	resp.Body.Close()
	if resp.StatusCode != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", resp.StatusCode)
	}
}

func TestUpdateCartEntry_Statuses(t *testing.T) {
	srv, _ := newTestServer(t)

	resp := postCart(t, srv, domain.CartItem{ID: 1, Amount: 2})
	resp.Body.Close()

	body, _ := json.Marshal(domain.CartPatch{Amount: 4})
	resp = doRequest(t, http.MethodPut, srv.URL+"/cart/1", body)
	if resp.StatusCode != http.StatusOK {
		t.Errorf("expected 200, got %d", resp.StatusCode)
	}
	var updated domain.CartItem
	json.NewDecoder(resp.Body).Decode(&updated)
	resp.Body.Close()
	if updated.Amount != 4 {
		t.Errorf("expected amount 4, got %d", updated.Amount)
	}

	resp = doRequest(t, http.MethodPut, srv.URL+"/cart/99", body)
	resp.Body.Close()
	if resp.StatusCode != http.StatusNotFound {
		t.Errorf("expected 404, got %d", resp.StatusCode)
	}

	badBody, _ := json.Marshal(domain.CartPatch{Amount: 0})
	resp = doRequest(t, http.MethodPut, srv.URL+"/cart/1", badBody)
	resp.Body.Close()
	if resp.StatusCode != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", resp.StatusCode)
	}
}

func TestDeleteAndClear_Statuses(t *testing.T) {
	srv, _ := newTestServer(t)

	resp := postCart(t, srv, domain.CartItem{ID: 1, Amount: 2})
	resp.Body.Close()

	resp = doRequest(t, http.MethodDelete, srv.URL+"/cart/1", nil)
	resp.Body.Close()
	if resp.StatusCode != http.StatusNoContent {
		t.Errorf("expected 204, got %d", resp.StatusCode)
	}

	resp = doRequest(t, http.MethodDelete, srv.URL+"/cart/1", nil)
	resp.Body.Close()
	if resp.StatusCode != http.StatusNotFound {
		t.Errorf("expected 404 for missing entry, got %d", resp.StatusCode)
	}

	// Clearing an empty cart still succeeds.
	resp = doRequest(t, http.MethodDelete, srv.URL+"/cart", nil)
	resp.Body.Close()
	if resp.StatusCode != http.StatusNoContent {
		t.Errorf("expected 204 for clear, got %d", resp.StatusCode)
	}
}
