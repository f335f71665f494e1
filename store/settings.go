package store

import (
	"context"

	"github.com/riquelima/gourmetgo/models"
)

func (s *Store) FetchSettings(ctx context.Context) (models.AppSettings, error) {
	if err := s.wait(ctx); err != nil {
		return models.AppSettings{}, err
	}
	var settings models.AppSettings
	if err := s.db.First(&settings).Error; err != nil {
		return models.AppSettings{}, translate(err)
	}
	return settings, nil
}

// SettingsPatch carries the fields UpdateSettings merges onto the singleton
// record; nil fields are left untouched.
type SettingsPatch struct {
	OpeningTime       *string
	ClosingTime       *string
	IsStoreOpenManual *bool
	DeliveryFeeFixed  *float64
}

func (s *Store) UpdateSettings(ctx context.Context, patch SettingsPatch) (models.AppSettings, error) {
	if err := s.wait(ctx); err != nil {
		return models.AppSettings{}, err
	}
	var settings models.AppSettings
	if err := s.db.First(&settings).Error; err != nil {
		return models.AppSettings{}, translate(err)
	}
	if patch.OpeningTime != nil {
		settings.OpeningTime = *patch.OpeningTime
	}
	if patch.ClosingTime != nil {
		settings.ClosingTime = *patch.ClosingTime
	}
	if patch.IsStoreOpenManual != nil {
		settings.IsStoreOpenManual = *patch.IsStoreOpenManual
	}
	if patch.DeliveryFeeFixed != nil {
		settings.DeliveryFeeFixed = *patch.DeliveryFeeFixed
	}
	if err := s.db.Save(&settings).Error; err != nil {
		return models.AppSettings{}, err
	}
	return settings, nil
}
