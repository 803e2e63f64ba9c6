package port

import (
	"context"
	"errors"

	"github.com/rl1809/shop-sync/internal/core/domain"
)

var (
	// ErrDuplicateEntry reports a cart insert for an ID already in the cart.
	ErrDuplicateEntry = errors.New("cart entry already exists")

	// ErrInsufficientStock reports a reservation larger than the available
	// inventory count.
	ErrInsufficientStock = errors.New("insufficient stock")
)

// ServerRepository is the reference server's storage port. Cart mutations
// reserve and release inventory stock: inserting or growing an entry
// decrements the item's count, deleting or clearing releases it back.
// Lookup misses surface domain.ErrNotFound.
type ServerRepository interface {
	// ListInventory returns the inventory collection in insertion order.
	ListInventory(ctx context.Context) ([]domain.InventoryItem, error)

	// ListCart returns the cart collection in insertion order.
	ListCart(ctx context.Context) ([]domain.CartItem, error)

	// InsertCartEntry adds a cart entry and reserves item.Amount units of
	// stock for it.
	InsertCartEntry(ctx context.Context, item domain.CartItem) (domain.CartItem, error)

	// UpdateCartAmount sets an entry's amount, reserving or releasing the
	// difference against the inventory count.
	UpdateCartAmount(ctx context.Context, id, amount int) (domain.CartItem, error)

	// DeleteCartEntry removes an entry and releases its reserved stock.
	DeleteCartEntry(ctx context.Context, id int) error

	// ClearCart removes every entry, releasing all reserved stock.
	ClearCart(ctx context.Context) error

	// SeedInventory replaces the inventory collection; used at startup and
	// in tests.
	SeedInventory(ctx context.Context, items []domain.InventoryItem) error
}
