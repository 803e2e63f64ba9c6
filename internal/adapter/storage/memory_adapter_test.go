package storage

import (
	"context"
	"errors"
	"testing"

	"github.com/rl1809/shop-sync/internal/core/domain"
	"github.com/rl1809/shop-sync/internal/port"
)

func seededMemoryAdapter(t *testing.T) *MemoryAdapter {
	t.Helper()
	m := NewMemoryAdapter()
	err := m.SeedInventory(context.Background(), []domain.InventoryItem{
		{ID: 1, Name: "Apple", Count: 5},
		{ID: 2, Name: "Pear", Count: 3},
	})
	if err != nil {
		t.Fatalf("seed failed: %v", err)
	}
	return m
}

func TestMemoryInsert_ReservesStock(t *testing.T) {
	m := seededMemoryAdapter(t)
	ctx := context.Background()

	entry, err := m.InsertCartEntry(ctx, domain.CartItem{ID: 1, Amount: 2})
	if err != nil {
		t.Fatalf("insert failed: %v", err)
	}
	if entry.Name != "Apple" || entry.Amount != 2 {
		t.Errorf("unexpected entry: %v", entry)
	}

	inv, _ := m.ListInventory(ctx)
	if inv[0].Count != 3 {
		t.Errorf("expected count 3 after reserve, got %d", inv[0].Count)
	}
}

func TestMemoryInsert_Errors(t *testing.T) {
	m := seededMemoryAdapter(t)
	ctx := context.Background()

	if _, err := m.InsertCartEntry(ctx, domain.CartItem{ID: 99, Amount: 1}); !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got: %v", err)
	}
	if _, err := m.InsertCartEntry(ctx, domain.CartItem{ID: 1, Amount: 6}); !errors.Is(err, port.ErrInsufficientStock) {
		t.Errorf("expected ErrInsufficientStock, got: %v", err)
	}

	if _, err := m.InsertCartEntry(ctx, domain.CartItem{ID: 1, Amount: 1}); err != nil {
		t.Fatalf("insert failed: %v", err)
	}
	if _, err := m.InsertCartEntry(ctx, domain.CartItem{ID: 1, Amount: 1}); !errors.Is(err, port.ErrDuplicateEntry) {
		t.Errorf("expected ErrDuplicateEntry, got: %v", err)
	}
}

func TestMemoryUpdate_AdjustsReservation(t *testing.T) {
	m := seededMemoryAdapter(t)
	ctx := context.Background()

	if _, err := m.InsertCartEntry(ctx, domain.CartItem{ID: 1, Amount: 2}); err != nil {
		t.Fatalf("insert failed: %v", err)
	}

	// Grow: takes 2 more units.
	entry, err := m.UpdateCartAmount(ctx, 1, 4)
	if err != nil {
		t.Fatalf("update failed: %v", err)
	}
	if entry.Amount != 4 {
		t.Errorf("expected amount 4, got %d", entry.Amount)
	}
	inv, _ := m.ListInventory(ctx)
	if inv[0].Count != 1 {
		t.Errorf("expected count 1, got %d", inv[0].Count)
	}

	// Shrink: returns 3 units.
	if _, err := m.UpdateCartAmount(ctx, 1, 1); err != nil {
		t.Fatalf("update failed: %v", err)
	}
	inv, _ = m.ListInventory(ctx)
	if inv[0].Count != 4 {
		t.Errorf("expected count 4, got %d", inv[0].Count)
	}

	// Overgrow: more than remaining stock.
	if _, err := m.UpdateCartAmount(ctx, 1, 10); !errors.Is(err, port.ErrInsufficientStock) {
		t.Errorf("expected ErrInsufficientStock, got: %v", err)
	}
	if _, err := m.UpdateCartAmount(ctx, 2, 1); !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("expected ErrNotFound for id not in cart, got: %v", err)
	}
}

func TestMemoryDelete_ReleasesStock(t *testing.T) {
	m := seededMemoryAdapter(t)
	ctx := context.Background()

	if _, err := m.InsertCartEntry(ctx, domain.CartItem{ID: 1, Amount: 2}); err != nil {
		t.Fatalf("insert failed: %v", err)
	}
	if err := m.DeleteCartEntry(ctx, 1); err != nil {
		t.Fatalf("delete failed: %v", err)
	}

	inv, _ := m.ListInventory(ctx)
	if inv[0].Count != 5 {
		t.Errorf("expected count restored to 5, got %d", inv[0].Count)
	}
	cart, _ := m.ListCart(ctx)
	if len(cart) != 0 {
		t.Errorf("expected empty cart, got %v", cart)
	}

	if err := m.DeleteCartEntry(ctx, 1); !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got: %v", err)
	}
}

func TestMemoryClear_ReleasesEverything(t *testing.T) {
	m := seededMemoryAdapter(t)
	ctx := context.Background()

	if _, err := m.InsertCartEntry(ctx, domain.CartItem{ID: 1, Amount: 2}); err != nil {
		t.Fatalf("insert failed: %v", err)
	}
	if _, err := m.InsertCartEntry(ctx, domain.CartItem{ID: 2, Amount: 3}); err != nil {
		t.Fatalf("insert failed: %v", err)
	}

	if err := m.ClearCart(ctx); err != nil {
		t.Fatalf("clear failed: %v", err)
	}
	// Clearing an empty cart is fine.
	if err := m.ClearCart(ctx); err != nil {
		t.Fatalf("clear of empty cart failed: %v", err)
	}

	inv, _ := m.ListInventory(ctx)
	if inv[0].Count != 5 || inv[1].Count != 3 {
		t.Errorf("expected counts restored, got %v", inv)
	}
}
