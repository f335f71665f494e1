package cartControllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/riquelima/gourmetgo/cart"
	"github.com/riquelima/gourmetgo/store"
)

// SessionHeader carries the anonymous cart session id. Browsers get one
// from POST /session and send it with every cart call.
const SessionHeader = "X-Cart-Session"

// POST /session
func CreateSession() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusCreated, gin.H{"session_id": uuid.NewString()})
	}
}

func sessionCart(c *gin.Context, m *cart.Manager) (*cart.Cart, bool) {
	sessionID := c.GetHeader(SessionHeader)
	if sessionID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": SessionHeader + " header is required"})
		return nil, false
	}
	return m.Cart(sessionID), true
}

func cartState(c *cart.Cart) gin.H {
	return gin.H{
		"items": c.Items(),
		"total": c.Total(),
		"count": c.ItemCount(),
	}
}

// GET /cart
func GetCart(m *cart.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		userCart, ok := sessionCart(c, m)
		if !ok {
			return
		}
		c.JSON(http.StatusOK, cartState(userCart))
	}
}

type AddItemRequest struct {
	DishID   string `json:"dish_id" binding:"required"`
	Quantity int    `json:"quantity"`
}

// POST /cart/items
func AddCartItem(m *cart.Manager, s *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		userCart, ok := sessionCart(c, m)
		if !ok {
			return
		}
		var req AddItemRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		dish, err := s.FetchDishByID(c.Request.Context(), req.DishID)
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Dish does not exist"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to validate dish"})
			return
		}
		// The cart itself silently ignores unavailable dishes; the check
		// lives here so the caller gets a clear answer.
		if !dish.Available {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Dish is not available"})
			return
		}

		userCart.AddItem(dish, req.Quantity)
		c.JSON(http.StatusOK, cartState(userCart))
	}
}

type UpdateItemRequest struct {
	Quantity *int `json:"quantity" binding:"required"`
}

// PUT /cart/items/:dish_id
func UpdateCartItem(m *cart.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		userCart, ok := sessionCart(c, m)
		if !ok {
			return
		}
		var req UpdateItemRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}
		userCart.UpdateQuantity(c.Param("dish_id"), *req.Quantity)
		c.JSON(http.StatusOK, cartState(userCart))
	}
}

// DELETE /cart/items/:dish_id
func DeleteCartItem(m *cart.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		userCart, ok := sessionCart(c, m)
		if !ok {
			return
		}
		userCart.RemoveItem(c.Param("dish_id"))
		c.JSON(http.StatusOK, cartState(userCart))
	}
}

// DELETE /cart
func ClearCart(m *cart.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		userCart, ok := sessionCart(c, m)
		if !ok {
			return
		}
		userCart.Clear()
		c.JSON(http.StatusOK, gin.H{"message": "Cart cleared"})
	}
}
