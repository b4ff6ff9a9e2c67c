package domain

// CartItem is a product snapshot plus a quantity. Quantity is always >= 1;
// a line that would reach 0 is removed from the cart instead.
type CartItem struct {
	Product
	Quantity int `json:"quantity"`
}

// Subtotal is the line total for this item.
func (i CartItem) Subtotal() float64 {
	return i.Price * float64(i.Quantity)
}
