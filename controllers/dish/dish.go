package dishController

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/riquelima/gourmetgo/store"
)

// GET /dishes?category_id=&search=
func GetDishes(s *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		dishes, err := s.FetchDishes(c.Request.Context(), c.Query("category_id"), c.Query("search"))
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch dishes"})
			return
		}
		c.JSON(http.StatusOK, dishes)
	}
}

// GET /dishes/:id
func GetDishByID(s *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		dish, err := s.FetchDishByID(c.Request.Context(), c.Param("id"))
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Dish not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve dish"})
			return
		}
		c.JSON(http.StatusOK, dish)
	}
}

type CreateDishRequest struct {
	Name        string   `json:"name" binding:"required"`
	Description string   `json:"description"`
	Price       *float64 `json:"price" binding:"required,gte=0"`
	ImageURL    string   `json:"imageUrl"`
	Available   *bool    `json:"available"`
	CategoryID  string   `json:"categoryId" binding:"required"`
}

// POST /admin/dishes
func CreateDish(s *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req CreateDishRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		available := true
		if req.Available != nil {
			available = *req.Available
		}
		dish, err := s.AddDish(c.Request.Context(), store.DishInput{
			Name:        req.Name,
			Description: req.Description,
			Price:       *req.Price,
			ImageURL:    req.ImageURL,
			Available:   available,
			CategoryID:  req.CategoryID,
		})
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create dish"})
			return
		}
		c.JSON(http.StatusCreated, dish)
	}
}

type UpdateDishRequest struct {
	Name        *string  `json:"name"`
	Description *string  `json:"description"`
	Price       *float64 `json:"price" binding:"omitempty,gte=0"`
	ImageURL    *string  `json:"imageUrl"`
	Available   *bool    `json:"available"`
	CategoryID  *string  `json:"categoryId"`
}

// PUT /admin/dishes/:id
func UpdateDish(s *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req UpdateDishRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		dish, err := s.UpdateDish(c.Request.Context(), c.Param("id"), store.DishPatch{
			Name:        req.Name,
			Description: req.Description,
			Price:       req.Price,
			ImageURL:    req.ImageURL,
			Available:   req.Available,
			CategoryID:  req.CategoryID,
		})
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Dish not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update dish"})
			return
		}
		c.JSON(http.StatusOK, dish)
	}
}

// DELETE /admin/dishes/:id
func DeleteDish(s *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := s.DeleteDish(c.Request.Context(), c.Param("id")); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete dish"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Dish deleted"})
	}
}

// POST /admin/uploads
// Mock upload: the file content is discarded, only a placeholder URL
// derived from the file name comes back.
func UploadImage(s *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		file, err := c.FormFile("image")
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Image is required"})
			return
		}
		url, err := s.UploadImage(c.Request.Context(), file.Filename)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to upload image"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"url": url})
	}
}
