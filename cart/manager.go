package cart

import (
	"sync"

	"github.com/riquelima/gourmetgo/storage"
)

const keyPrefix = "gourmetgo-cart:"

// Manager hands out one cart per session id, all persisted through the same
// storage port under namespaced keys.
type Manager struct {
	mu    sync.Mutex
	store storage.Storage
	carts map[string]*Cart
}

func NewManager(store storage.Storage) *Manager {
	return &Manager{store: store, carts: make(map[string]*Cart)}
}

func (m *Manager) Cart(sessionID string) *Cart {
	m.mu.Lock()
	defer m.mu.Unlock()
	if c, ok := m.carts[sessionID]; ok {
		return c
	}
	c := New(m.store, keyPrefix+sessionID)
	m.carts[sessionID] = c
	return c
}
