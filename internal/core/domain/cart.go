package domain

// CartItem is a single entry in the remote cart collection. ID matches the
// InventoryItem it was taken from; the cart holds at most one entry per ID.
// Amount is always at least 1.
type CartItem struct {
	ID     int    `json:"id"`
	Name   string `json:"name"`
	Amount int    `json:"amount"`
}

// CartPatch is the partial update accepted by the cart entry update call.
type CartPatch struct {
	Amount int `json:"amount"`
}

// CopyCart returns an independent copy of items.
func CopyCart(items []CartItem) []CartItem {
	if items == nil {
		return nil
	}
	out := make([]CartItem, len(items))
	copy(out, items)
	return out
}
