package store

import (
	"context"
	"fmt"
	"strings"

	"github.com/riquelima/gourmetgo/models"
)

const fallbackCategoryName = "Sem Categoria"

// categoryNames loads the current id-to-name projection used to denormalize
// CategoryName onto dishes at read time.
func (s *Store) categoryNames() (map[string]string, error) {
	var categories []models.Category
	if err := s.db.Find(&categories).Error; err != nil {
		return nil, err
	}
	names := make(map[string]string, len(categories))
	for _, c := range categories {
		names[c.ID] = c.Name
	}
	return names, nil
}

func resolveCategoryName(names map[string]string, categoryID string) string {
	if name, ok := names[categoryID]; ok {
		return name
	}
	return fallbackCategoryName
}

// FetchDishes returns dishes filtered by exact category id and by a
// case-insensitive substring match on the name. Empty filters are skipped.
func (s *Store) FetchDishes(ctx context.Context, categoryID, searchTerm string) ([]models.Dish, error) {
	if err := s.wait(ctx); err != nil {
		return nil, err
	}
	query := s.db.Order("id")
	if categoryID != "" {
		query = query.Where("category_id = ?", categoryID)
	}
	if searchTerm != "" {
		query = query.Where("lower(name) LIKE ?", "%"+strings.ToLower(searchTerm)+"%")
	}
	var dishes []models.Dish
	if err := query.Find(&dishes).Error; err != nil {
		return nil, err
	}
	names, err := s.categoryNames()
	if err != nil {
		return nil, err
	}
	for i := range dishes {
		dishes[i].CategoryName = resolveCategoryName(names, dishes[i].CategoryID)
	}
	return dishes, nil
}

func (s *Store) FetchDishByID(ctx context.Context, id string) (models.Dish, error) {
	if err := s.wait(ctx); err != nil {
		return models.Dish{}, err
	}
	var dish models.Dish
	if err := s.db.First(&dish, "id = ?", id).Error; err != nil {
		return models.Dish{}, translate(err)
	}
	names, err := s.categoryNames()
	if err != nil {
		return models.Dish{}, err
	}
	dish.CategoryName = resolveCategoryName(names, dish.CategoryID)
	return dish, nil
}

type DishInput struct {
	Name        string
	Description string
	Price       float64
	ImageURL    string
	Available   bool
	CategoryID  string
}

// AddDish creates a dish, assigning identity and a placeholder image URL
// when none was uploaded.
func (s *Store) AddDish(ctx context.Context, input DishInput) (models.Dish, error) {
	if err := s.wait(ctx); err != nil {
		return models.Dish{}, err
	}
	dish := models.Dish{
		ID:          s.newID(),
		Name:        input.Name,
		Description: input.Description,
		Price:       input.Price,
		ImageURL:    input.ImageURL,
		Available:   input.Available,
		CategoryID:  input.CategoryID,
	}
	if dish.ImageURL == "" {
		dish.ImageURL = fmt.Sprintf("https://picsum.photos/seed/%s/400/300", dish.ID)
	}
	if err := s.db.Create(&dish).Error; err != nil {
		return models.Dish{}, err
	}
	names, err := s.categoryNames()
	if err != nil {
		return models.Dish{}, err
	}
	dish.CategoryName = resolveCategoryName(names, dish.CategoryID)
	return dish, nil
}

// DishPatch carries the fields UpdateDish merges onto an existing dish;
// nil fields are left untouched.
type DishPatch struct {
	Name        *string
	Description *string
	Price       *float64
	ImageURL    *string
	Available   *bool
	CategoryID  *string
}

func (s *Store) UpdateDish(ctx context.Context, id string, patch DishPatch) (models.Dish, error) {
	if err := s.wait(ctx); err != nil {
		return models.Dish{}, err
	}
	var dish models.Dish
	if err := s.db.First(&dish, "id = ?", id).Error; err != nil {
		return models.Dish{}, translate(err)
	}
	if patch.Name != nil {
		dish.Name = *patch.Name
	}
	if patch.Description != nil {
		dish.Description = *patch.Description
	}
	if patch.Price != nil {
		dish.Price = *patch.Price
	}
	if patch.ImageURL != nil {
		dish.ImageURL = *patch.ImageURL
	}
	if patch.Available != nil {
		dish.Available = *patch.Available
	}
	if patch.CategoryID != nil {
		dish.CategoryID = *patch.CategoryID
	}
	if err := s.db.Save(&dish).Error; err != nil {
		return models.Dish{}, err
	}
	names, err := s.categoryNames()
	if err != nil {
		return models.Dish{}, err
	}
	dish.CategoryName = resolveCategoryName(names, dish.CategoryID)
	return dish, nil
}

// DeleteDish removes a dish. Deleting an absent id is a no-op; existing
// orders keep their snapshots either way.
func (s *Store) DeleteDish(ctx context.Context, id string) error {
	if err := s.wait(ctx); err != nil {
		return err
	}
	return s.db.Delete(&models.Dish{}, "id = ?", id).Error
}

// UploadImage simulates an upload and returns a placeholder URL derived
// from the file name and the current time. Nothing is stored.
func (s *Store) UploadImage(ctx context.Context, filename string) (string, error) {
	if err := s.wait(ctx); err != nil {
		return "", err
	}
	seed := strings.ReplaceAll(filename, " ", "_")
	return fmt.Sprintf("https://picsum.photos/seed/%s%d/400/300", seed, s.now().UnixMilli()), nil
}
