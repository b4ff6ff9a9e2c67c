// Package cart implements the client-held shopping cart. A Cart belongs to
// exactly one browsing session and is mutated only by its owner, so it does
// no locking and makes no network calls. State lives for the session only.
package cart

import (
	"errors"

	"github.com/WGledhill94/loadLab/internal/domain"
)

// ErrInvalidQuantity is returned for negative quantities. The cart rejects
// them outright rather than clamping; the caller's state is left untouched.
var ErrInvalidQuantity = errors.New("quantity must not be negative")

// Cart holds the in-progress order's line items in insertion order.
// Not safe for concurrent use.
type Cart struct {
	items []domain.CartItem
}

func New() *Cart {
	return &Cart{}
}

// AddItem merges by product ID: an existing line gains one unit, a new
// product becomes a new line at the end.
func (c *Cart) AddItem(p domain.Product) {
	for i := range c.items {
		if c.items[i].ID == p.ID {
			c.items[i].Quantity++
			return
		}
	}
	c.items = append(c.items, domain.CartItem{Product: p, Quantity: 1})
}

// RemoveItem deletes the matching line. Removing an absent product is a
// no-op.
func (c *Cart) RemoveItem(productID int) {
	for i := range c.items {
		if c.items[i].ID == productID {
			c.items = append(c.items[:i], c.items[i+1:]...)
			return
		}
	}
}

// SetQuantity replaces a line's quantity in place. Zero removes the line,
// negative values return ErrInvalidQuantity. Setting a quantity for a
// product not in the cart is a no-op.
func (c *Cart) SetQuantity(productID, quantity int) error {
	if quantity < 0 {
		return ErrInvalidQuantity
	}
	if quantity == 0 {
		c.RemoveItem(productID)
		return nil
	}
	for i := range c.items {
		if c.items[i].ID == productID {
			c.items[i].Quantity = quantity
			return nil
		}
	}
	return nil
}

// Total is the sum of price times quantity over all lines.
func (c *Cart) Total() float64 {
	var total float64
	for _, it := range c.items {
		total += it.Subtotal()
	}
	return total
}

// Count is the number of units in the cart, for the header badge.
func (c *Cart) Count() int {
	var n int
	for _, it := range c.items {
		n += it.Quantity
	}
	return n
}

// Items returns a snapshot copy of the lines in display order.
func (c *Cart) Items() []domain.CartItem {
	out := make([]domain.CartItem, len(c.items))
	copy(out, c.items)
	return out
}

func (c *Cart) Empty() bool {
	return len(c.items) == 0
}

// Clear empties the cart. Called after a confirmed checkout; a failed
// checkout leaves the cart as it was.
func (c *Cart) Clear() {
	c.items = nil
}
