package store

import (
	"context"

	"github.com/riquelima/gourmetgo/models"
)

// FindUserByEmail resolves a staff account by email.
func (s *Store) FindUserByEmail(ctx context.Context, email string) (models.User, error) {
	if err := s.wait(ctx); err != nil {
		return models.User{}, err
	}
	var user models.User
	if err := s.db.First(&user, "email = ?", email).Error; err != nil {
		return models.User{}, translate(err)
	}
	return user, nil
}
