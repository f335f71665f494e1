package orderControllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/riquelima/gourmetgo/cart"
	"github.com/riquelima/gourmetgo/models"
	"github.com/riquelima/gourmetgo/store"
)

const sessionHeader = "X-Cart-Session"

type PlaceOrderRequest struct {
	CustomerName    string            `json:"customerName" binding:"required"`
	CustomerPhone   string            `json:"customerPhone" binding:"required"`
	CustomerAddress string            `json:"customerAddress" binding:"required"`
	Notes           string            `json:"notes"`
	UserID          string            `json:"userId"`
	// Items may be inlined for clients that manage their own cart; when a
	// cart session header is present the server-side cart wins.
	Items []models.CartItem `json:"items"`
}

// POST /orders
// Checkout: the session cart (or the inlined items) becomes an order, and
// on success the session cart is cleared.
func PlaceOrderHandler(s *store.Store, m *cart.Manager, hub *Hub) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req PlaceOrderRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		items := req.Items
		var sessionCart *cart.Cart
		if sessionID := c.GetHeader(sessionHeader); sessionID != "" {
			sessionCart = m.Cart(sessionID)
			items = sessionCart.Items()
		}
		if len(items) == 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "cart is empty"})
			return
		}

		order, err := s.CreateOrder(c.Request.Context(), store.OrderInput{
			CustomerName:    req.CustomerName,
			CustomerPhone:   req.CustomerPhone,
			CustomerAddress: req.CustomerAddress,
			Items:           items,
			Notes:           req.Notes,
			UserID:          req.UserID,
		})
		if err != nil {
			if errors.Is(err, store.ErrInvalidOrder) {
				c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to place order"})
			return
		}

		if sessionCart != nil {
			sessionCart.Clear()
		}
		hub.Broadcast(EventOrderCreated, order)
		c.JSON(http.StatusCreated, order)
	}
}

// GET /orders?status=&date=&search=
func GetOrdersHandler(s *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		filters := store.OrderFilters{
			Date:       c.Query("date"),
			SearchTerm: c.Query("search"),
		}
		if raw := c.Query("status"); raw != "" {
			status, err := models.ParseOrderStatus(raw)
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "invalid order status"})
				return
			}
			filters.Status = status
		}

		orders, err := s.FetchOrders(c.Request.Context(), filters)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch orders"})
			return
		}
		c.JSON(http.StatusOK, orders)
	}
}

// GET /orders/:id
func GetOrderByIDHandler(s *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		order, err := s.FetchOrderByID(c.Request.Context(), c.Param("id"))
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve order"})
			return
		}
		c.JSON(http.StatusOK, order)
	}
}

type UpdateOrderStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// PUT /orders/:id/status
func UpdateOrderStatusHandler(s *store.Store, hub *Hub) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req UpdateOrderStatusRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}
		status, err := models.ParseOrderStatus(req.Status)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid order status"})
			return
		}

		order, err := s.UpdateOrderStatus(c.Request.Context(), c.Param("id"), status)
		if err != nil {
			switch {
			case errors.Is(err, store.ErrNotFound):
				c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
			case errors.Is(err, store.ErrStatusNotAllowed):
				c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
			default:
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update order status"})
			}
			return
		}

		hub.Broadcast(EventOrderStatusUpdated, order)
		c.JSON(http.StatusOK, order)
	}
}
