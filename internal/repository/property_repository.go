package repository

import (
	"estate-backoffice/internal/models"

	"gorm.io/gorm"
)

type PropertyFilter struct {
	Status  *string
	AgentID *uint
	City    *string
}

type PropertyRepository interface {
	Create(property *models.Property) error
	GetByID(id uint) (*models.Property, error)
	GetAll(offset, limit int, filter PropertyFilter) ([]models.Property, int64, error)
	Update(property *models.Property) error
	Delete(id uint) error
	ReplaceImages(propertyID uint, images []models.PropertyImage) error
	CreateArea(area *models.PropertyArea) error
	CreateFeature(feature *models.PropertyFeature) error
	CreateNearbyPlace(place *models.NearbyPlace) error
	Count() (int64, error)
}

type propertyRepository struct {
	conn Conn
}

func NewPropertyRepository(conn Conn) PropertyRepository {
	return &propertyRepository{conn: conn}
}

func (r *propertyRepository) Create(property *models.Property) error {
	return r.conn.DB().Create(property).Error
}

func (r *propertyRepository) GetByID(id uint) (*models.Property, error) {
	var property models.Property
	err := r.conn.DB().
		Preload("Agent").
		Preload("Images", func(db *gorm.DB) *gorm.DB {
			return db.Order("property_images.sort_order ASC, property_images.id ASC")
		}).
		Preload("Areas", func(db *gorm.DB) *gorm.DB {
			return db.Order("property_areas.sort_order ASC, property_areas.id ASC")
		}).
		Preload("Areas.Images", func(db *gorm.DB) *gorm.DB {
			return db.Order("property_images.sort_order ASC, property_images.id ASC")
		}).
		Preload("Features", func(db *gorm.DB) *gorm.DB {
			return db.Order("property_features.sort_order ASC, property_features.id ASC")
		}).
		Preload("NearbyPlaces").
		First(&property, id).Error
	return &property, err
}

func (r *propertyRepository) GetAll(offset, limit int, filter PropertyFilter) ([]models.Property, int64, error) {
	var properties []models.Property
	var total int64

	query := r.conn.DB().Model(&models.Property{})

	if filter.Status != nil {
		query = query.Where("status = ?", *filter.Status)
	}
	if filter.AgentID != nil {
		query = query.Where("agent_id = ?", *filter.AgentID)
	}
	if filter.City != nil {
		query = query.Where("city = ?", *filter.City)
	}

	query.Count(&total)

	err := query.
		Preload("Images", func(db *gorm.DB) *gorm.DB {
			return db.Order("property_images.sort_order ASC, property_images.id ASC")
		}).
		Preload("Agent").
		Offset(offset).Limit(limit).Order("created_at DESC").
		Find(&properties).Error
	return properties, total, err
}

func (r *propertyRepository) Update(property *models.Property) error {
	return r.conn.DB().Save(property).Error
}

func (r *propertyRepository) Delete(id uint) error {
	return r.conn.DB().Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("property_id = ?", id).Delete(&models.PropertyImage{}).Error; err != nil {
			return err
		}
		if err := tx.Where("property_id = ?", id).Delete(&models.PropertyArea{}).Error; err != nil {
			return err
		}
		if err := tx.Where("property_id = ?", id).Delete(&models.PropertyFeature{}).Error; err != nil {
			return err
		}
		if err := tx.Where("property_id = ?", id).Delete(&models.NearbyPlace{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Property{}, id).Error
	})
}

// ReplaceImages swaps the full image list in one transaction. Partial
// image edits do not exist in the API, the client always sends the
// complete list.
func (r *propertyRepository) ReplaceImages(propertyID uint, images []models.PropertyImage) error {
	return r.conn.DB().Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("property_id = ?", propertyID).Delete(&models.PropertyImage{}).Error; err != nil {
			return err
		}
		for i := range images {
			images[i].ID = 0
			images[i].PropertyID = propertyID
		}
		if len(images) == 0 {
			return nil
		}
		return tx.Create(&images).Error
	})
}

func (r *propertyRepository) CreateArea(area *models.PropertyArea) error {
	return r.conn.DB().Create(area).Error
}

func (r *propertyRepository) CreateFeature(feature *models.PropertyFeature) error {
	return r.conn.DB().Create(feature).Error
}

func (r *propertyRepository) CreateNearbyPlace(place *models.NearbyPlace) error {
	return r.conn.DB().Create(place).Error
}

func (r *propertyRepository) Count() (int64, error) {
	var count int64
	err := r.conn.DB().Model(&models.Property{}).Count(&count).Error
	return count, err
}
