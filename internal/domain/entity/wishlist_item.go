package entity

// WishlistItem is a product saved for later, uniquely keyed by ID.
// Adds are idempotent: an existing entry is preserved unchanged.
type WishlistItem struct {
	ID      string  `json:"id"`
	Name    string  `json:"name"`
	Price   float64 `json:"price"`
	Image   string  `json:"image,omitempty"`
	StoreID string  `json:"store_id,omitempty"`
}
