package port

import (
	"context"

	"github.com/rl1809/shop-sync/internal/core/domain"
)

// RemoteStore is the sync-client port: CRUD against the remote inventory and
// cart resources. Implementations hold no collection state of their own and
// never return a default value for a failed call: every failure surfaces as
// an error, usually a *domain.RemoteError.
type RemoteStore interface {
	// FetchInventory retrieves the full inventory collection.
	FetchInventory(ctx context.Context) ([]domain.InventoryItem, error)

	// FetchCart retrieves the full cart collection.
	FetchCart(ctx context.Context) ([]domain.CartItem, error)

	// CreateCartEntry adds a new cart entry; the server confirms identity.
	CreateCartEntry(ctx context.Context, item domain.CartItem) (domain.CartItem, error)

	// UpdateCartEntry applies a partial update to an existing cart entry.
	UpdateCartEntry(ctx context.Context, id int, patch domain.CartPatch) (domain.CartItem, error)

	// DeleteCartEntry removes a single cart entry.
	DeleteCartEntry(ctx context.Context, id int) error

	// ClearCart removes every cart entry (checkout).
	ClearCart(ctx context.Context) error
}
