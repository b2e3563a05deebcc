package repository

import (
	"errors"

	"gorm.io/gorm"

	"estate-backoffice/internal/models"
)

type SettingsRepository interface {
	Get() (*models.AgencySettings, error)
	Save(settings *models.AgencySettings) error
}

type settingsRepository struct {
	conn Conn
}

func NewSettingsRepository(conn Conn) SettingsRepository {
	return &settingsRepository{conn: conn}
}

// Get returns the single agency settings row. gorm.ErrRecordNotFound
// means the seed has not run yet.
func (r *settingsRepository) Get() (*models.AgencySettings, error) {
	var settings models.AgencySettings
	err := r.conn.DB().Order("id ASC").First(&settings).Error
	return &settings, err
}

func (r *settingsRepository) Save(settings *models.AgencySettings) error {
	if settings.ID == 0 {
		existing, err := r.Get()
		if err == nil {
			settings.ID = existing.ID
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}
	}
	return r.conn.DB().Save(settings).Error
}
