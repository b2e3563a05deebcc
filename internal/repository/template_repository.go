package repository

import (
	"estate-backoffice/internal/models"
)

type TemplateRepository interface {
	Create(template *models.BrochureTemplate) error
	GetByID(id uint) (*models.BrochureTemplate, error)
	GetAll(offset, limit int) ([]models.BrochureTemplate, int64, error)
	Save(template *models.BrochureTemplate) error
	Delete(id uint) error
	Count() (int64, error)
}

type templateRepository struct {
	conn Conn
}

func NewTemplateRepository(conn Conn) TemplateRepository {
	return &templateRepository{conn: conn}
}

func (r *templateRepository) Create(template *models.BrochureTemplate) error {
	return r.conn.DB().Create(template).Error
}

func (r *templateRepository) GetByID(id uint) (*models.BrochureTemplate, error) {
	var template models.BrochureTemplate
	err := r.conn.DB().First(&template, id).Error
	return &template, err
}

func (r *templateRepository) GetAll(offset, limit int) ([]models.BrochureTemplate, int64, error) {
	var templates []models.BrochureTemplate
	var total int64

	query := r.conn.DB().Model(&models.BrochureTemplate{})
	query.Count(&total)

	err := query.Offset(offset).Limit(limit).Order("updated_at DESC").Find(&templates).Error
	return templates, total, err
}

// Save writes the template in one statement, section tree included. The
// sections column carries the whole document, so there is no per-node
// diffing on update.
func (r *templateRepository) Save(template *models.BrochureTemplate) error {
	return r.conn.DB().Save(template).Error
}

func (r *templateRepository) Delete(id uint) error {
	return r.conn.DB().Delete(&models.BrochureTemplate{}, id).Error
}

func (r *templateRepository) Count() (int64, error) {
	var count int64
	err := r.conn.DB().Model(&models.BrochureTemplate{}).Count(&count).Error
	return count, err
}
