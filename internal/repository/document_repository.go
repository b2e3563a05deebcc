package repository

import (
	"estate-backoffice/internal/models"
)

type DocumentRepository interface {
	Create(document *models.Document) error
	GetByID(id uint) (*models.Document, error)
	GetByProperty(propertyID uint) ([]models.Document, error)
	Delete(id uint) error
}

type documentRepository struct {
	conn Conn
}

func NewDocumentRepository(conn Conn) DocumentRepository {
	return &documentRepository{conn: conn}
}

func (r *documentRepository) Create(document *models.Document) error {
	return r.conn.DB().Create(document).Error
}

func (r *documentRepository) GetByID(id uint) (*models.Document, error) {
	var document models.Document
	err := r.conn.DB().First(&document, id).Error
	return &document, err
}

func (r *documentRepository) GetByProperty(propertyID uint) ([]models.Document, error) {
	var documents []models.Document
	err := r.conn.DB().
		Where("property_id = ?", propertyID).
		Order("created_at DESC").
		Find(&documents).Error
	return documents, err
}

func (r *documentRepository) Delete(id uint) error {
	return r.conn.DB().Delete(&models.Document{}, id).Error
}
