package service

import (
	"context"
	"fmt"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/rl1809/shop-sync/internal/core/domain"
	"github.com/rl1809/shop-sync/internal/core/store"
	"github.com/rl1809/shop-sync/internal/port"
)

// SyncService reconciles user intents against the remote store and the local
// mirror. Policy is sync-then-commit: the store is mutated only after the
// remote call succeeds, so a failed call leaves the mirror untouched.
//
// Operations on the same item ID are serialized through a per-ID lock;
// without it two overlapping adds could both read the pre-increment amount
// and lose an update. Operations on different IDs run independently.
type SyncService struct {
	remote port.RemoteStore
	store  *store.Store

	mu    sync.Mutex
	locks map[int]*sync.Mutex
}

func NewSyncService(remote port.RemoteStore, st *store.Store) *SyncService {
	return &SyncService{
		remote: remote,
		store:  st,
		locks:  make(map[int]*sync.Mutex),
	}
}

// Store exposes the mirror for reads and subscriptions.
func (s *SyncService) Store() *store.Store {
	return s.store
}

// LoadAll fetches both collections concurrently and initializes the mirror
// in a single commit. If either fetch fails the store keeps its prior
// snapshot.
func (s *SyncService) LoadAll(ctx context.Context) error {
	var (
		inventory []domain.InventoryItem
		cart      []domain.CartItem
	)

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		if inventory, err = s.remote.FetchInventory(ctx); err != nil {
			return fmt.Errorf("fetch inventory: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		if cart, err = s.remote.FetchCart(ctx); err != nil {
			return fmt.Errorf("fetch cart: %w", err)
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		return err
	}

	s.store.Initialize(inventory, cart)
	return nil
}

// AdjustInventoryCount changes a displayed inventory count by delta, clamped
// at zero. Purely local: no remote resource exists for inventory counts.
// An unknown ID is a no-op with no commit and no notification.
func (s *SyncService) AdjustInventoryCount(id, delta int) {
	mu := s.lockFor(id)
	mu.Lock()
	defer mu.Unlock()

	if _, ok := findInventory(s.store.Inventory(), id); !ok {
		return
	}

	s.store.Apply(func(st *domain.State) {
		for i := range st.Inventory {
			if st.Inventory[i].ID == id {
				st.Inventory[i].Count = clampCount(st.Inventory[i].Count + delta)
			}
		}
	})
}

// AddToCart moves amount units of an inventory item into the cart. If the
// item is already in the cart the entry's amount grows; otherwise a new
// entry is created. The cart change and the inventory decrement commit
// together as one notification, and only after the remote confirms.
func (s *SyncService) AddToCart(ctx context.Context, id, amount int) error {
	if amount <= 0 {
		return fmt.Errorf("add to cart: amount %d: %w", amount, domain.ErrValidation)
	}

	mu := s.lockFor(id)
	mu.Lock()
	defer mu.Unlock()

	item, ok := findInventory(s.store.Inventory(), id)
	if !ok {
		return fmt.Errorf("add to cart: inventory id %d: %w", id, domain.ErrNotFound)
	}

	var entry domain.CartItem
	if existing, ok := findCart(s.store.Cart(), id); ok {
		updated, err := s.remote.UpdateCartEntry(ctx, id, domain.CartPatch{Amount: existing.Amount + amount})
		if err != nil {
			return fmt.Errorf("update cart entry: %w", err)
		}
		entry = updated
	} else {
		created, err := s.remote.CreateCartEntry(ctx, domain.CartItem{ID: id, Name: item.Name, Amount: amount})
		if err != nil {
			return fmt.Errorf("create cart entry: %w", err)
		}
		entry = created
	}

	s.store.Apply(func(st *domain.State) {
		replaced := false
		for i := range st.Cart {
			if st.Cart[i].ID == id {
				st.Cart[i] = entry
				replaced = true
			}
		}
		if !replaced {
			st.Cart = append(st.Cart, entry)
		}
		for i := range st.Inventory {
			if st.Inventory[i].ID == id {
				st.Inventory[i].Count = clampCount(st.Inventory[i].Count - amount)
			}
		}
	})
	return nil
}

// DeleteFromCart removes a cart entry after the remote confirms. The removed
// amount is not restored to the inventory count.
func (s *SyncService) DeleteFromCart(ctx context.Context, id int) error {
	mu := s.lockFor(id)
	mu.Lock()
	defer mu.Unlock()

	if _, ok := findCart(s.store.Cart(), id); !ok {
		return fmt.Errorf("delete from cart: cart id %d: %w", id, domain.ErrNotFound)
	}

	if err := s.remote.DeleteCartEntry(ctx, id); err != nil {
		return fmt.Errorf("delete cart entry: %w", err)
	}

	s.store.Apply(func(st *domain.State) {
		out := st.Cart[:0]
		for _, it := range st.Cart {
			if it.ID != id {
				out = append(out, it)
			}
		}
		st.Cart = out
	})
	return nil
}

// Checkout clears the remote cart, then the local one. Clearing an already
// empty cart succeeds without a local commit.
func (s *SyncService) Checkout(ctx context.Context) error {
	if err := s.remote.ClearCart(ctx); err != nil {
		return fmt.Errorf("clear cart: %w", err)
	}

	if len(s.store.Cart()) == 0 {
		return nil
	}
	s.store.SetCart(nil)
	return nil
}

// lockFor returns the serialization point for an item ID, creating it on
// first use. Lock entries are never evicted; the ID space is the inventory.
func (s *SyncService) lockFor(id int) *sync.Mutex {
	s.mu.Lock()
	defer s.mu.Unlock()
	m, ok := s.locks[id]
	if !ok {
		m = &sync.Mutex{}
		s.locks[id] = m
	}
	return m
}

func findInventory(items []domain.InventoryItem, id int) (domain.InventoryItem, bool) {
	for _, it := range items {
		if it.ID == id {
			return it, true
		}
	}
	return domain.InventoryItem{}, false
}

func findCart(items []domain.CartItem, id int) (domain.CartItem, bool) {
	for _, it := range items {
		if it.ID == id {
			return it, true
		}
	}
	return domain.CartItem{}, false
}

func clampCount(n int) int {
	if n < 0 {
		return 0
	}
	return n
}
