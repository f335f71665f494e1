// Package cart maintains a customer's in-progress selection. Every mutation
// is written through the storage port immediately, mirroring the frontend's
// localStorage-backed cart, so a cart survives reconnects for as long as its
// session id does.
package cart

import (
	"encoding/json"
	"sync"

	"github.com/riquelima/gourmetgo/models"
	"github.com/riquelima/gourmetgo/storage"
)

type Cart struct {
	mu    sync.Mutex
	key   string
	store storage.Storage
	items []models.CartItem
}

// New restores the cart stored under key, or starts empty when the key is
// absent or holds something unreadable.
func New(store storage.Storage, key string) *Cart {
	c := &Cart{key: key, store: store}
	if raw, ok := store.Get(key); ok {
		var items []models.CartItem
		if err := json.Unmarshal(raw, &items); err == nil {
			c.items = items
		}
	}
	return c
}

// AddItem puts quantity portions of dish into the cart, accumulating onto an
// existing line for the same dish id. Unavailable dishes are ignored; the
// caller is expected to check availability first. Quantities below one fall
// back to a single portion.
func (c *Cart) AddItem(dish models.Dish, quantity int) {
	if !dish.Available {
		return
	}
	if quantity < 1 {
		quantity = 1
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	for i := range c.items {
		if c.items[i].Dish.ID == dish.ID {
			c.items[i].Quantity += quantity
			c.persist()
			return
		}
	}
	c.items = append(c.items, models.CartItem{Dish: dish, Quantity: quantity})
	c.persist()
}

// RemoveItem drops the line for dishID. Removing an absent dish is a no-op.
func (c *Cart) RemoveItem(dishID string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.removeLocked(dishID)
	c.persist()
}

// UpdateQuantity sets the line for dishID to max(0, quantity); a resulting
// quantity of zero removes the line. A line never holds a non-positive
// quantity.
func (c *Cart) UpdateQuantity(dishID string, quantity int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if quantity <= 0 {
		c.removeLocked(dishID)
		c.persist()
		return
	}
	for i := range c.items {
		if c.items[i].Dish.ID == dishID {
			c.items[i].Quantity = quantity
			break
		}
	}
	c.persist()
}

// Clear empties the cart.
func (c *Cart) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.items = nil
	c.persist()
}

// Total is the sum of price times quantity over all lines; 0 for an
// empty cart.
func (c *Cart) Total() float64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	var total float64
	for _, item := range c.items {
		total += item.Dish.Price * float64(item.Quantity)
	}
	return total
}

// ItemCount is the sum of quantities over all lines.
func (c *Cart) ItemCount() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	var count int
	for _, item := range c.items {
		count += item.Quantity
	}
	return count
}

// Items returns a copy of the lines in insertion order.
func (c *Cart) Items() []models.CartItem {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]models.CartItem, len(c.items))
	copy(out, c.items)
	return out
}

func (c *Cart) removeLocked(dishID string) {
	kept := c.items[:0]
	for _, item := range c.items {
		if item.Dish.ID != dishID {
			kept = append(kept, item)
		}
	}
	c.items = kept
}

func (c *Cart) persist() {
	raw, err := json.Marshal(c.items)
	if err != nil {
		return
	}
	_ = c.store.Set(c.key, raw)
}
