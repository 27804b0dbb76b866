package entity

// CartItem is one line in the shopping cart, uniquely keyed by ProductID.
// Quantity is always >= 1; a mutation that would drive it to zero removes
// the line instead.
type CartItem struct {
	ProductID string  `json:"product_id"`
	Name      string  `json:"name"`
	UnitPrice float64 `json:"unit_price"`
	Image     string  `json:"image,omitempty"`
	Quantity  int     `json:"quantity"`
	StoreID   string  `json:"store_id"`
	StoreName string  `json:"store_name"`
	Currency  string  `json:"currency"` // currency of record for UnitPrice
}

// LineTotal is the extended price of this line.
func (c CartItem) LineTotal() float64 {
	return c.UnitPrice * float64(c.Quantity)
}
