package domain

// State is the aggregate snapshot of both remote collections. The store owns
// the canonical instance; everything else works on copies.
type State struct {
	Inventory []InventoryItem
	Cart      []CartItem
}

// Copy returns a deep copy of the state.
func (s State) Copy() State {
	return State{
		Inventory: CopyInventory(s.Inventory),
		Cart:      CopyCart(s.Cart),
	}
}
