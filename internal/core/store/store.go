package store

import (
	"sync"

	"github.com/rl1809/shop-sync/internal/core/domain"
)

// Store holds the canonical in-memory mirror of the inventory and cart
// collections. All reads return copies; all writes go through the commit
// methods below, each of which fires exactly one notification.
//
// Subscribers run synchronously after the commit, in registration order, and
// must not mutate the store from inside the callback.
type Store struct {
	mu    sync.Mutex
	state domain.State
	subs  []func()
}

// New returns an empty store with no subscribers.
func New() *Store {
	return &Store{}
}

// Inventory returns a copy of the current inventory collection.
func (s *Store) Inventory() []domain.InventoryItem {
	s.mu.Lock()
	defer s.mu.Unlock()
	return domain.CopyInventory(s.state.Inventory)
}

// Cart returns a copy of the current cart collection.
func (s *Store) Cart() []domain.CartItem {
	s.mu.Lock()
	defer s.mu.Unlock()
	return domain.CopyCart(s.state.Cart)
}

// Snapshot returns a copy of both collections taken at the same instant.
func (s *Store) Snapshot() domain.State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.Copy()
}

// Subscribe appends cb to the notification list. Registering a second
// subscriber adds it; it never replaces the first.
func (s *Store) Subscribe(cb func()) {
	s.mu.Lock()
	s.subs = append(s.subs, cb)
	s.mu.Unlock()
}

// Initialize replaces both collections in one commit. Used once at startup
// but safe to call again for a full reload.
func (s *Store) Initialize(inventory []domain.InventoryItem, cart []domain.CartItem) {
	s.mu.Lock()
	s.state.Inventory = domain.CopyInventory(inventory)
	s.state.Cart = domain.CopyCart(cart)
	subs := s.snapshotSubs()
	s.mu.Unlock()
	notify(subs)
}

// SetInventory replaces the inventory collection in one commit.
func (s *Store) SetInventory(inventory []domain.InventoryItem) {
	s.mu.Lock()
	s.state.Inventory = domain.CopyInventory(inventory)
	subs := s.snapshotSubs()
	s.mu.Unlock()
	notify(subs)
}

// SetCart replaces the cart collection in one commit.
func (s *Store) SetCart(cart []domain.CartItem) {
	s.mu.Lock()
	s.state.Cart = domain.CopyCart(cart)
	subs := s.snapshotSubs()
	s.mu.Unlock()
	notify(subs)
}

// Apply runs fn against the live state under the store lock and fires one
// notification afterwards. fn receives the canonical state and may edit both
// collections; this is how an operation that touches inventory and cart
// together commits as a single observable change.
func (s *Store) Apply(fn func(*domain.State)) {
	s.mu.Lock()
	fn(&s.state)
	subs := s.snapshotSubs()
	s.mu.Unlock()
	notify(subs)
}

func (s *Store) snapshotSubs() []func() {
	out := make([]func(), len(s.subs))
	copy(out, s.subs)
	return out
}

func notify(subs []func()) {
	for _, cb := range subs {
		cb()
	}
}
