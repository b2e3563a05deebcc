package service

import (
	"errors"

	"estate-backoffice/internal/models"
	"estate-backoffice/internal/repository"
	"estate-backoffice/pkg/validator"
)

var ErrUnsupportedDocumentType = errors.New("unsupported document content type")

type DocumentService struct {
	documentRepo repository.DocumentRepository
	propertyRepo repository.PropertyRepository
}

func NewDocumentService(documentRepo repository.DocumentRepository, propertyRepo repository.PropertyRepository) *DocumentService {
	return &DocumentService{
		documentRepo: documentRepo,
		propertyRepo: propertyRepo,
	}
}

func (s *DocumentService) Create(propertyID uint, req models.CreateDocumentRequest, uploadedBy uint) (*models.Document, error) {
	if _, err := s.propertyRepo.GetByID(propertyID); err != nil {
		return nil, err
	}

	if req.ContentType != "" && !validator.ValidateDocumentContentType(req.ContentType) {
		return nil, ErrUnsupportedDocumentType
	}

	document := &models.Document{
		PropertyID:  propertyID,
		Name:        validator.SanitizeFilename(validator.SanitizeString(req.Name)),
		FileURL:     req.FileURL,
		ContentType: req.ContentType,
		SizeBytes:   req.SizeBytes,
		UploadedBy:  uploadedBy,
	}

	if err := s.documentRepo.Create(document); err != nil {
		return nil, err
	}

	return document, nil
}

func (s *DocumentService) GetByProperty(propertyID uint) ([]models.Document, error) {
	return s.documentRepo.GetByProperty(propertyID)
}

func (s *DocumentService) Delete(id uint) error {
	return s.documentRepo.Delete(id)
}
