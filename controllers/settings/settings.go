package settingsController

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/riquelima/gourmetgo/store"
)

// GET /settings
func GetSettings(s *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		settings, err := s.FetchSettings(c.Request.Context())
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch settings"})
			return
		}
		c.JSON(http.StatusOK, settings)
	}
}

// GET /settings/status
// The open/closed projection the menu header shows.
func StoreStatus(s *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		settings, err := s.FetchSettings(c.Request.Context())
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch settings"})
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"open":        settings.IsOpenAt(time.Now()),
			"openingTime": settings.OpeningTime,
			"closingTime": settings.ClosingTime,
		})
	}
}

type UpdateSettingsRequest struct {
	OpeningTime       *string  `json:"openingTime"`
	ClosingTime       *string  `json:"closingTime"`
	IsStoreOpenManual *bool    `json:"isStoreOpenManual"`
	DeliveryFeeFixed  *float64 `json:"deliveryFeeFixed" binding:"omitempty,gte=0"`
}

// PUT /admin/settings
func UpdateSettings(s *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req UpdateSettingsRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}
		settings, err := s.UpdateSettings(c.Request.Context(), store.SettingsPatch{
			OpeningTime:       req.OpeningTime,
			ClosingTime:       req.ClosingTime,
			IsStoreOpenManual: req.IsStoreOpenManual,
			DeliveryFeeFixed:  req.DeliveryFeeFixed,
		})
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update settings"})
			return
		}
		c.JSON(http.StatusOK, settings)
	}
}
