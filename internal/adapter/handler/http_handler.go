package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/rl1809/shop-sync/internal/core/domain"
	"github.com/rl1809/shop-sync/internal/port"
)

// HTTPHandler serves the remote resource model the sync client consumes:
//
//	GET    /inventory   list inventory
//	GET    /cart        list cart
//	POST   /cart        create entry
//	PUT    /cart/{id}   update entry amount
//	DELETE /cart/{id}   delete entry
//	DELETE /cart        clear cart (checkout)
type HTTPHandler struct {
	repo port.ServerRepository
}

func NewHTTPHandler(repo port.ServerRepository) *HTTPHandler {
	return &HTTPHandler{repo: repo}
}

// Register mounts all routes on mux.
func (h *HTTPHandler) Register(mux *http.ServeMux) {
	mux.HandleFunc("GET /health", h.HealthCheck)
	mux.HandleFunc("GET /inventory", h.ListInventory)
	mux.HandleFunc("GET /cart", h.ListCart)
	mux.HandleFunc("POST /cart", h.CreateCartEntry)
	mux.HandleFunc("PUT /cart/{id}", h.UpdateCartEntry)
	mux.HandleFunc("DELETE /cart/{id}", h.DeleteCartEntry)
	mux.HandleFunc("DELETE /cart", h.ClearCart)
}

func (h *HTTPHandler) HealthCheck(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (h *HTTPHandler) ListInventory(w http.ResponseWriter, r *http.Request) {
	items, err := h.repo.ListInventory(r.Context())
	if err != nil {
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	if items == nil {
		items = []domain.InventoryItem{}
	}
	writeJSON(w, http.StatusOK, items)
}

func (h *HTTPHandler) ListCart(w http.ResponseWriter, r *http.Request) {
	items, err := h.repo.ListCart(r.Context())
	if err != nil {
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	if items == nil {
		items = []domain.CartItem{}
	}
	writeJSON(w, http.StatusOK, items)
}

func (h *HTTPHandler) CreateCartEntry(w http.ResponseWriter, r *http.Request) {
	var item domain.CartItem
	if err := json.NewDecoder(r.Body).Decode(&item); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if item.Amount < 1 {
		http.Error(w, "amount must be at least 1", http.StatusBadRequest)
		return
	}

	entry, err := h.repo.InsertCartEntry(r.Context(), item)
	if err != nil {
		writeRepoError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, entry)
}

func (h *HTTPHandler) UpdateCartEntry(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(r.PathValue("id"))
	if err != nil {
		http.Error(w, "invalid cart id", http.StatusBadRequest)
		return
	}

	var patch domain.CartPatch
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if patch.Amount < 1 {
		http.Error(w, "amount must be at least 1", http.StatusBadRequest)
		return
	}

	entry, err := h.repo.UpdateCartAmount(r.Context(), id, patch.Amount)
	if err != nil {
		writeRepoError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, entry)
}

func (h *HTTPHandler) DeleteCartEntry(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(r.PathValue("id"))
	if err != nil {
		http.Error(w, "invalid cart id", http.StatusBadRequest)
		return
	}

	if err := h.repo.DeleteCartEntry(r.Context(), id); err != nil {
		writeRepoError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *HTTPHandler) ClearCart(w http.ResponseWriter, r *http.Request) {
	if err := h.repo.ClearCart(r.Context()); err != nil {
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func writeRepoError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		http.Error(w, "item not found", http.StatusNotFound)
	case errors.Is(err, port.ErrDuplicateEntry):
		http.Error(w, "cart entry already exists", http.StatusConflict)
	case errors.Is(err, port.ErrInsufficientStock):
		http.Error(w, "insufficient stock", http.StatusConflict)
	default:
		http.Error(w, "internal error", http.StatusInternalServerError)
	}
}

func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}
