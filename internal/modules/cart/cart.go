package cart

import (
	"fmt"

	"github.com/craftroots/storefront/internal/modules/catalog"
)

// Line is one entry in the cart: a product at a quantity, with the exact
// customization it was added with. Two lines never share a (product,
// customization) key.
type Line struct {
	Product       *catalog.Product `json:"product"`
	Quantity      int              `json:"quantity"`
	Customization *Customization   `json:"customization,omitempty"`
}

// Subtotal is the line's contribution to the cart total.
func (l *Line) Subtotal() float64 {
	return l.Product.Price * float64(l.Quantity)
}

// Notifier receives the user-visible confirmations the cart emits. The
// presentation layer supplies the implementation (a toast queue in the demo).
type Notifier interface {
	Success(message, description string)
	Info(message string)
}

// NopNotifier discards all notifications.
type NopNotifier struct{}

func (NopNotifier) Success(message, description string) {}
func (NopNotifier) Info(message string)                 {}

// Cart owns the session's cart lines in insertion order.
type Cart struct {
	lines    []*Line
	notifier Notifier
}

// New creates an empty cart emitting confirmations to the given notifier.
func New(notifier Notifier) *Cart {
	if notifier == nil {
		notifier = NopNotifier{}
	}
	return &Cart{notifier: notifier}
}

// Add puts one unit of the product in the cart. If a line with the same
// (product, customization) key already exists its quantity is incremented;
// otherwise a new line is appended. Each call emits an added-to-basket
// confirmation, so a double-click simply increments twice.
func (c *Cart) Add(p *catalog.Product, custom *Customization) {
	key := keyFor(p.ID, custom)
	if line := c.find(key); line != nil {
		line.Quantity++
	} else {
		c.lines = append(c.lines, &Line{Product: p, Quantity: 1, Customization: custom})
	}
	c.notifier.Success("Added to basket!", fmt.Sprintf("%s has been added to your basket.", p.Name))
}

// UpdateQuantity sets the matching line's quantity. A quantity of zero
// removes the line; a negative quantity is rejected. A missing key is a
// no-op, matching Remove.
func (c *Cart) UpdateQuantity(productID string, quantity int, custom *Customization) error {
	if quantity < 0 {
		return fmt.Errorf("quantity cannot be negative: %d", quantity)
	}
	if quantity == 0 {
		c.Remove(productID, custom)
		return nil
	}
	if line := c.find(keyFor(productID, custom)); line != nil {
		line.Quantity = quantity
	}
	return nil
}

// Remove deletes the line matching the key exactly; no-op if absent.
func (c *Cart) Remove(productID string, custom *Customization) {
	key := keyFor(productID, custom)
	for i, line := range c.lines {
		if keyFor(line.Product.ID, line.Customization) == key {
			c.lines = append(c.lines[:i], c.lines[i+1:]...)
			return
		}
	}
}

// Lines returns the current lines in insertion order.
func (c *Cart) Lines() []*Line {
	out := make([]*Line, len(c.lines))
	copy(out, c.lines)
	return out
}

// Total is the sum of price × quantity over all lines, recomputed on every
// call so the badge, panel, and checkout summary always agree.
func (c *Cart) Total() float64 {
	var total float64
	for _, line := range c.lines {
		total += line.Subtotal()
	}
	return total
}

// Count is the sum of quantities over all lines.
func (c *Cart) Count() int {
	var count int
	for _, line := range c.lines {
		count += line.Quantity
	}
	return count
}

// Len is the number of distinct lines.
func (c *Cart) Len() int { return len(c.lines) }

func (c *Cart) find(key lineKey) *Line {
	for _, line := range c.lines {
		if keyFor(line.Product.ID, line.Customization) == key {
			return line
		}
	}
	return nil
}
