package adminController

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/riquelima/gourmetgo/store"
)

func daysParam(c *gin.Context) int {
	days, err := strconv.Atoi(c.DefaultQuery("days", "7"))
	if err != nil || days <= 0 {
		return 7
	}
	return days
}

// GET /admin/dashboard/orders-per-day?days=7
func OrdersPerDay(s *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		data, err := s.OrdersPerDay(c.Request.Context(), daysParam(c))
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to compute orders per day"})
			return
		}
		c.JSON(http.StatusOK, data)
	}
}

// GET /admin/dashboard/revenue-per-day?days=7
func RevenuePerDay(s *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		data, err := s.RevenuePerDay(c.Request.Context(), daysParam(c))
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to compute revenue per day"})
			return
		}
		c.JSON(http.StatusOK, data)
	}
}

// GET /admin/dashboard/orders-by-status
func OrdersByStatus(s *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		data, err := s.OrdersByStatus(c.Request.Context())
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to compute orders by status"})
			return
		}
		c.JSON(http.StatusOK, data)
	}
}

// GET /admin/dashboard/summary
func DashboardSummary(s *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		summary, err := s.DashboardSummary(c.Request.Context())
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to compute dashboard summary"})
			return
		}
		c.JSON(http.StatusOK, summary)
	}
}
