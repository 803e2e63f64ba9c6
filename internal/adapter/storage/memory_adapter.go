package storage

import (
	"context"
	"fmt"
	"sync"

	"github.com/rl1809/shop-sync/internal/core/domain"
	"github.com/rl1809/shop-sync/internal/port"
)

// MemoryAdapter is the in-process ServerRepository used by the reference
// server when no database is configured, and by tests. Collections keep
// insertion order.
type MemoryAdapter struct {
	mu        sync.Mutex
	inventory []domain.InventoryItem
	cart      []domain.CartItem
}

func NewMemoryAdapter() *MemoryAdapter {
	return &MemoryAdapter{}
}

func (m *MemoryAdapter) ListInventory(ctx context.Context) ([]domain.InventoryItem, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return domain.CopyInventory(m.inventory), nil
}

func (m *MemoryAdapter) ListCart(ctx context.Context) ([]domain.CartItem, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return domain.CopyCart(m.cart), nil
}

func (m *MemoryAdapter) InsertCartEntry(ctx context.Context, item domain.CartItem) (domain.CartItem, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, it := range m.cart {
		if it.ID == item.ID {
			return domain.CartItem{}, fmt.Errorf("cart id %d: %w", item.ID, port.ErrDuplicateEntry)
		}
	}

	inv := m.findInventory(item.ID)
	if inv == nil {
		return domain.CartItem{}, fmt.Errorf("inventory id %d: %w", item.ID, domain.ErrNotFound)
	}
	if inv.Count < item.Amount {
		return domain.CartItem{}, fmt.Errorf("inventory id %d: %w", item.ID, port.ErrInsufficientStock)
	}

	inv.Count -= item.Amount
	entry := domain.CartItem{ID: item.ID, Name: inv.Name, Amount: item.Amount}
	m.cart = append(m.cart, entry)
	return entry, nil
}

func (m *MemoryAdapter) UpdateCartAmount(ctx context.Context, id, amount int) (domain.CartItem, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for i := range m.cart {
		if m.cart[i].ID != id {
			continue
		}
		delta := amount - m.cart[i].Amount
		if inv := m.findInventory(id); inv != nil {
			if delta > inv.Count {
				return domain.CartItem{}, fmt.Errorf("inventory id %d: %w", id, port.ErrInsufficientStock)
			}
			inv.Count -= delta
		}
		m.cart[i].Amount = amount
		return m.cart[i], nil
	}
	return domain.CartItem{}, fmt.Errorf("cart id %d: %w", id, domain.ErrNotFound)
}

func (m *MemoryAdapter) DeleteCartEntry(ctx context.Context, id int) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	for i := range m.cart {
		if m.cart[i].ID != id {
			continue
		}
		if inv := m.findInventory(id); inv != nil {
			inv.Count += m.cart[i].Amount
		}
		m.cart = append(m.cart[:i], m.cart[i+1:]...)
		return nil
	}
	return fmt.Errorf("cart id %d: %w", id, domain.ErrNotFound)
}

func (m *MemoryAdapter) ClearCart(ctx context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, it := range m.cart {
		if inv := m.findInventory(it.ID); inv != nil {
			inv.Count += it.Amount
		}
	}
	m.cart = nil
	return nil
}

func (m *MemoryAdapter) SeedInventory(ctx context.Context, items []domain.InventoryItem) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.inventory = domain.CopyInventory(items)
	m.cart = nil
	return nil
}

// findInventory returns a pointer into the live slice; callers hold m.mu.
func (m *MemoryAdapter) findInventory(id int) *domain.InventoryItem {
	for i := range m.inventory {
		if m.inventory[i].ID == id {
			return &m.inventory[i]
		}
	}
	return nil
}

var _ port.ServerRepository = (*MemoryAdapter)(nil)
