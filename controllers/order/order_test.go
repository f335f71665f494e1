package orderControllers

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/riquelima/gourmetgo/cart"
	"github.com/riquelima/gourmetgo/models"
	"github.com/riquelima/gourmetgo/storage"
	"github.com/riquelima/gourmetgo/store"
)

func newCheckoutEnv(t *testing.T) (*gin.Engine, *store.Store, *cart.Manager) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	s, err := store.Open(dsn)
	require.NoError(t, err)
	require.NoError(t, s.Seed("1234"))

	m := cart.NewManager(storage.NewMemory())
	r := gin.New()
	r.POST("/orders", PlaceOrderHandler(s, m, NewHub()))
	return r, s, m
}

func placeOrder(t *testing.T, r *gin.Engine, sessionID string, body gin.H) *httptest.ResponseRecorder {
	t.Helper()
	raw, err := json.Marshal(body)
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodPost, "/orders", bytes.NewReader(raw))
	req.Header.Set("Content-Type", "application/json")
	if sessionID != "" {
		req.Header.Set(sessionHeader, sessionID)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestPlaceOrder_ClearsSessionCart(t *testing.T) {
	r, s, m := newCheckoutEnv(t)

	dish, err := s.FetchDishByID(context.Background(), "dish1")
	require.NoError(t, err)

	sessionID := uuid.NewString()
	m.Cart(sessionID).AddItem(dish, 2)
	require.Equal(t, 2, m.Cart(sessionID).ItemCount())

	w := placeOrder(t, r, sessionID, gin.H{
		"customerName":    "João Silva",
		"customerPhone":   "11999998888",
		"customerAddress": "Rua das Flores, 123",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	var placed models.Order
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &placed))
	assert.Equal(t, models.OrderStatusNew, placed.Status)
	// 2 x 25.00 plus the seeded 5.00 delivery fee.
	assert.Equal(t, 55.0, placed.TotalAmount)

	assert.Empty(t, m.Cart(sessionID).Items())
	assert.Zero(t, m.Cart(sessionID).ItemCount())
}

func TestPlaceOrder_EmptySessionCartRejected(t *testing.T) {
	r, _, m := newCheckoutEnv(t)

	sessionID := uuid.NewString()
	w := placeOrder(t, r, sessionID, gin.H{
		"customerName":    "Maria Oliveira",
		"customerPhone":   "21988887777",
		"customerAddress": "Avenida Copacabana, 456",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Empty(t, m.Cart(sessionID).Items())
}

func TestPlaceOrder_SessionCartWinsOverInlineItems(t *testing.T) {
	r, s, m := newCheckoutEnv(t)
	ctx := context.Background()

	sessionDish, err := s.FetchDishByID(ctx, "dish8")
	require.NoError(t, err)
	inlineDish, err := s.FetchDishByID(ctx, "dish3")
	require.NoError(t, err)

	sessionID := uuid.NewString()
	m.Cart(sessionID).AddItem(sessionDish, 1)

	w := placeOrder(t, r, sessionID, gin.H{
		"customerName":    "Carlos Pereira",
		"customerPhone":   "31977776666",
		"customerAddress": "Praça da Liberdade, 789",
		"items":           []models.CartItem{{Dish: inlineDish, Quantity: 1}},
	})
	require.Equal(t, http.StatusCreated, w.Code)

	var placed models.Order
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &placed))
	require.Len(t, placed.Items, 1)
	assert.Equal(t, sessionDish.ID, placed.Items[0].Dish.ID)
	assert.Empty(t, m.Cart(sessionID).Items())
}

func TestPlaceOrder_InlineItemsWithoutSession(t *testing.T) {
	r, s, _ := newCheckoutEnv(t)

	dish, err := s.FetchDishByID(context.Background(), "dish9")
	require.NoError(t, err)

	w := placeOrder(t, r, "", gin.H{
		"customerName":    "Ana Costa",
		"customerPhone":   "51966665555",
		"customerAddress": "Rua dos Andradas, 101",
		"items":           []models.CartItem{{Dish: dish, Quantity: 3}},
	})
	require.Equal(t, http.StatusCreated, w.Code)

	var placed models.Order
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &placed))
	// 3 x 7.00 plus the 5.00 delivery fee.
	assert.Equal(t, 26.0, placed.TotalAmount)
}
