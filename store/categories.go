package store

import (
	"context"

	"github.com/riquelima/gourmetgo/models"
)

// FetchCategories returns all categories in their stable seed order.
func (s *Store) FetchCategories(ctx context.Context) ([]models.Category, error) {
	if err := s.wait(ctx); err != nil {
		return nil, err
	}
	var categories []models.Category
	if err := s.db.Order("id").Find(&categories).Error; err != nil {
		return nil, err
	}
	return categories, nil
}

func (s *Store) AddCategory(ctx context.Context, name string) (models.Category, error) {
	if err := s.wait(ctx); err != nil {
		return models.Category{}, err
	}
	category := models.Category{ID: s.newID(), Name: name}
	if err := s.db.Create(&category).Error; err != nil {
		return models.Category{}, err
	}
	return category, nil
}

func (s *Store) UpdateCategory(ctx context.Context, id, name string) (models.Category, error) {
	if err := s.wait(ctx); err != nil {
		return models.Category{}, err
	}
	var category models.Category
	if err := s.db.First(&category, "id = ?", id).Error; err != nil {
		return models.Category{}, translate(err)
	}
	category.Name = name
	if err := s.db.Save(&category).Error; err != nil {
		return models.Category{}, err
	}
	return category, nil
}

// DeleteCategory refuses to remove a category that dishes still reference,
// so the menu never ends up pointing at a missing category.
func (s *Store) DeleteCategory(ctx context.Context, id string) error {
	if err := s.wait(ctx); err != nil {
		return err
	}
	var category models.Category
	if err := s.db.First(&category, "id = ?", id).Error; err != nil {
		return translate(err)
	}
	var referencing int64
	if err := s.db.Model(&models.Dish{}).Where("category_id = ?", id).Count(&referencing).Error; err != nil {
		return err
	}
	if referencing > 0 {
		return ErrCategoryInUse
	}
	return s.db.Delete(&category).Error
}
