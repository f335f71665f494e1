package cart

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/riquelima/gourmetgo/models"
	"github.com/riquelima/gourmetgo/storage"
)

func dish(id string, price float64) models.Dish {
	return models.Dish{ID: id, Name: "Dish " + id, Price: price, Available: true}
}

func newTestCart() *Cart {
	return New(storage.NewMemory(), "gourmetgo-cart:test")
}

func TestAddItem_AccumulatesSameDish(t *testing.T) {
	c := newTestCart()
	a := dish("dish1", 25)

	c.AddItem(a, 1)
	c.AddItem(a, 2)

	items := c.Items()
	assert.Len(t, items, 1)
	assert.Equal(t, 3, items[0].Quantity)
	assert.InDelta(t, 75, c.Total(), 1e-9)
	assert.Equal(t, 3, c.ItemCount())
}

func TestAddItem_IgnoresUnavailableDish(t *testing.T) {
	c := newTestCart()
	unavailable := dish("dish1", 25)
	unavailable.Available = false

	c.AddItem(unavailable, 1)

	assert.Empty(t, c.Items())
	assert.Zero(t, c.Total())
}

func TestAddItem_DefaultsToSinglePortion(t *testing.T) {
	c := newTestCart()
	c.AddItem(dish("dish1", 10), 0)

	items := c.Items()
	assert.Len(t, items, 1)
	assert.Equal(t, 1, items[0].Quantity)
}

func TestUpdateQuantity_ClampsToZeroAndRemoves(t *testing.T) {
	c := newTestCart()
	c.AddItem(dish("dish1", 10), 2)

	c.UpdateQuantity("dish1", -5)

	assert.Empty(t, c.Items())
}

func TestUpdateQuantity_ZeroEqualsRemove(t *testing.T) {
	a, b := dish("dish1", 10), dish("dish2", 20)

	viaUpdate := newTestCart()
	viaUpdate.AddItem(a, 2)
	viaUpdate.AddItem(b, 1)
	viaUpdate.UpdateQuantity("dish1", 0)

	viaRemove := newTestCart()
	viaRemove.AddItem(a, 2)
	viaRemove.AddItem(b, 1)
	viaRemove.RemoveItem("dish1")

	assert.Equal(t, viaRemove.Items(), viaUpdate.Items())
}

func TestRemoveItem_AbsentIsNoop(t *testing.T) {
	c := newTestCart()
	c.AddItem(dish("dish1", 10), 1)

	c.RemoveItem("dish9")

	assert.Len(t, c.Items(), 1)
}

func TestQuantitiesNeverNonPositive(t *testing.T) {
	c := newTestCart()
	c.AddItem(dish("dish1", 10), 2)
	c.AddItem(dish("dish2", 5), 1)
	c.UpdateQuantity("dish1", -3)
	c.UpdateQuantity("dish2", 4)
	c.AddItem(dish("dish3", 7), 0)
	c.RemoveItem("dish3")
	c.AddItem(dish("dish2", 5), 2)

	for _, item := range c.Items() {
		assert.Greater(t, item.Quantity, 0)
	}
}

func TestTotal_MatchesIndependentRecomputation(t *testing.T) {
	c := newTestCart()
	c.AddItem(dish("dish1", 25.5), 2)
	c.AddItem(dish("dish2", 7), 3)
	c.UpdateQuantity("dish1", 1)

	var want float64
	for _, item := range c.Items() {
		want += item.Dish.Price * float64(item.Quantity)
	}
	assert.InDelta(t, want, c.Total(), 1e-9)
}

func TestClear_EmptiesCart(t *testing.T) {
	c := newTestCart()
	c.AddItem(dish("dish1", 10), 2)

	c.Clear()

	assert.Empty(t, c.Items())
	assert.Zero(t, c.Total())
	assert.Zero(t, c.ItemCount())
}

func TestNew_RestoresFromStorage(t *testing.T) {
	kv := storage.NewMemory()

	first := New(kv, "gourmetgo-cart:s1")
	first.AddItem(dish("dish1", 25), 2)

	restored := New(kv, "gourmetgo-cart:s1")
	items := restored.Items()
	assert.Len(t, items, 1)
	assert.Equal(t, "dish1", items[0].Dish.ID)
	assert.Equal(t, 2, items[0].Quantity)
}

func TestNew_CorruptStorageStartsEmpty(t *testing.T) {
	kv := storage.NewMemory()
	_ = kv.Set("gourmetgo-cart:s1", []byte("{not json"))

	c := New(kv, "gourmetgo-cart:s1")

	assert.Empty(t, c.Items())
}

func TestManager_SameSessionSameCart(t *testing.T) {
	m := NewManager(storage.NewMemory())

	a := m.Cart("s1")
	a.AddItem(dish("dish1", 10), 1)

	assert.Equal(t, 1, m.Cart("s1").ItemCount())
	assert.Zero(t, m.Cart("s2").ItemCount())
}
