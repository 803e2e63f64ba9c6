package domain

// InventoryItem is a single product in the remote inventory collection.
// Count is the displayed available quantity and never goes negative.
type InventoryItem struct {
	ID    int    `json:"id"`
	Name  string `json:"name"`
	Count int    `json:"count"`
}

// CopyInventory returns an independent copy of items. Elements are value
// types, so a slice clone is a full copy.
func CopyInventory(items []InventoryItem) []InventoryItem {
	if items == nil {
		return nil
	}
	out := make([]InventoryItem, len(items))
	copy(out, items)
	return out
}
