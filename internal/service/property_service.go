package service

import (
	"errors"
	"fmt"

	"estate-backoffice/internal/models"
	"estate-backoffice/internal/repository"
	"estate-backoffice/pkg/cache"
	"estate-backoffice/pkg/logger"
	"estate-backoffice/pkg/validator"
)

var ErrPropertyTitleRequired = errors.New("property title is required")

var propertyStatuses = map[string]bool{
	"draft":     true,
	"published": true,
	"sold":      true,
	"withdrawn": true,
}

type PropertyService struct {
	propertyRepo repository.PropertyRepository
	cache        *cache.Cache
	events       *Events
}

func NewPropertyService(propertyRepo repository.PropertyRepository, c *cache.Cache, events *Events) *PropertyService {
	return &PropertyService{
		propertyRepo: propertyRepo,
		cache:        c,
		events:       events,
	}
}

func (s *PropertyService) Create(req models.CreatePropertyRequest, createdBy uint) (*models.Property, error) {
	title := validator.TrimSpaces(req.Title)
	if title == "" {
		return nil, ErrPropertyTitleRequired
	}

	property := &models.Property{
		Title:       validator.SanitizeString(title),
		Description: validator.SanitizeHTML(req.Description),
		Status:      "draft",
		PriceCents:  req.PriceCents,

		Address:    validator.SanitizeString(req.Address),
		City:       validator.SanitizeString(req.City),
		PostalCode: validator.SanitizeString(req.PostalCode),
		Country:    validator.SanitizeString(req.Country),

		BuildYear:   req.BuildYear,
		PlotSize:    req.PlotSize,
		LivingArea:  req.LivingArea,
		Bedrooms:    req.Bedrooms,
		Bathrooms:   req.Bathrooms,
		EnergyLabel: validator.SanitizeString(req.EnergyLabel),

		LocationDescription: validator.SanitizeHTML(req.LocationDescription),
		MapImageURL:         req.MapImageURL,
		VirtualTourURL:      req.VirtualTourURL,
		VideoURL:            req.VideoURL,

		AgentID:   req.AgentID,
		CreatedBy: createdBy,
	}

	for _, ref := range req.Images {
		property.Images = append(property.Images, ref.ToPropertyImage(0))
	}

	if err := s.propertyRepo.Create(property); err != nil {
		return nil, err
	}

	s.invalidateListings()
	s.events.Publish(Event{
		Type:   EventPropertyCreated,
		UserID: createdBy,
		Payload: map[string]interface{}{
			"property_id": property.ID,
			"title":       property.Title,
		},
	})

	return s.GetByID(property.ID)
}

func (s *PropertyService) GetByID(id uint) (*models.Property, error) {
	var cached models.Property
	if err := s.cache.GetCachedProperty(id, &cached); err == nil && cached.ID != 0 {
		return &cached, nil
	}

	property, err := s.propertyRepo.GetByID(id)
	if err != nil {
		return nil, err
	}

	if err := s.cache.CacheProperty(id, property); err != nil {
		logger.Warn("Failed to cache property", map[string]interface{}{"property_id": id, "error": err.Error()})
	}

	return property, nil
}

func (s *PropertyService) GetAll(offset, limit int, filter repository.PropertyFilter) ([]models.Property, int64, error) {
	return s.propertyRepo.GetAll(offset, limit, filter)
}

func (s *PropertyService) Update(id uint, req models.UpdatePropertyRequest, actorID uint) (*models.Property, error) {
	property, err := s.propertyRepo.GetByID(id)
	if err != nil {
		return nil, err
	}

	if req.Title != nil {
		title := validator.TrimSpaces(*req.Title)
		if title == "" {
			return nil, ErrPropertyTitleRequired
		}
		property.Title = validator.SanitizeString(title)
	}
	if req.Description != nil {
		property.Description = validator.SanitizeHTML(*req.Description)
	}
	if req.Status != nil {
		if !propertyStatuses[*req.Status] {
			return nil, fmt.Errorf("unknown property status %q", *req.Status)
		}
		property.Status = *req.Status
	}
	if req.PriceCents != nil {
		property.PriceCents = *req.PriceCents
	}
	if req.Address != nil {
		property.Address = validator.SanitizeString(*req.Address)
	}
	if req.City != nil {
		property.City = validator.SanitizeString(*req.City)
	}
	if req.PostalCode != nil {
		property.PostalCode = validator.SanitizeString(*req.PostalCode)
	}
	if req.Country != nil {
		property.Country = validator.SanitizeString(*req.Country)
	}
	if req.BuildYear != nil {
		property.BuildYear = *req.BuildYear
	}
	if req.PlotSize != nil {
		property.PlotSize = *req.PlotSize
	}
	if req.LivingArea != nil {
		property.LivingArea = *req.LivingArea
	}
	if req.Bedrooms != nil {
		property.Bedrooms = *req.Bedrooms
	}
	if req.Bathrooms != nil {
		property.Bathrooms = *req.Bathrooms
	}
	if req.EnergyLabel != nil {
		property.EnergyLabel = validator.SanitizeString(*req.EnergyLabel)
	}
	if req.LocationDescription != nil {
		property.LocationDescription = validator.SanitizeHTML(*req.LocationDescription)
	}
	if req.MapImageURL != nil {
		property.MapImageURL = *req.MapImageURL
	}
	if req.VirtualTourURL != nil {
		property.VirtualTourURL = *req.VirtualTourURL
	}
	if req.VideoURL != nil {
		property.VideoURL = *req.VideoURL
	}
	if req.AgentID != nil {
		property.AgentID = req.AgentID
	}

	// Associations saved via Update would duplicate rows, strip them and
	// let the replace path below handle images.
	property.Images = nil
	property.Areas = nil
	property.Features = nil
	property.NearbyPlaces = nil
	property.Agent = nil

	if err := s.propertyRepo.Update(property); err != nil {
		return nil, err
	}

	if req.Images != nil {
		rows := make([]models.PropertyImage, 0, len(*req.Images))
		for _, ref := range *req.Images {
			rows = append(rows, ref.ToPropertyImage(id))
		}
		if err := s.propertyRepo.ReplaceImages(id, rows); err != nil {
			return nil, err
		}
	}

	s.invalidate(id)
	s.events.Publish(Event{
		Type:   EventPropertyUpdated,
		UserID: actorID,
		Payload: map[string]interface{}{
			"property_id": id,
		},
	})

	return s.propertyRepo.GetByID(id)
}

func (s *PropertyService) Delete(id uint) error {
	if err := s.propertyRepo.Delete(id); err != nil {
		return err
	}
	s.invalidate(id)
	return nil
}

func (s *PropertyService) AddArea(propertyID uint, req models.CreateAreaRequest) (*models.Property, error) {
	property, err := s.propertyRepo.GetByID(propertyID)
	if err != nil {
		return nil, err
	}

	columns := req.Columns
	if columns < 1 {
		columns = models.DefaultAreaColumns
	}

	area := &models.PropertyArea{
		PropertyID:  propertyID,
		Title:       validator.SanitizeString(req.Title),
		Description: validator.SanitizeHTML(req.Description),
		Columns:     columns,
		SortOrder:   len(property.Areas),
	}
	for _, ref := range req.Images {
		img := ref.ToPropertyImage(propertyID)
		area.Images = append(area.Images, img)
	}

	if err := s.propertyRepo.CreateArea(area); err != nil {
		return nil, err
	}

	s.invalidate(propertyID)
	return s.propertyRepo.GetByID(propertyID)
}

func (s *PropertyService) AddFeature(propertyID uint, req models.CreateFeatureRequest) (*models.Property, error) {
	property, err := s.propertyRepo.GetByID(propertyID)
	if err != nil {
		return nil, err
	}

	feature := &models.PropertyFeature{
		PropertyID: propertyID,
		Name:       validator.SanitizeString(req.Name),
		SortOrder:  len(property.Features),
	}
	if err := s.propertyRepo.CreateFeature(feature); err != nil {
		return nil, err
	}

	s.invalidate(propertyID)
	return s.propertyRepo.GetByID(propertyID)
}

func (s *PropertyService) AddNearbyPlace(propertyID uint, req models.CreateNearbyPlaceRequest) (*models.Property, error) {
	if _, err := s.propertyRepo.GetByID(propertyID); err != nil {
		return nil, err
	}

	place := &models.NearbyPlace{
		PropertyID: propertyID,
		Name:       validator.SanitizeString(req.Name),
		Type:       validator.SanitizeString(req.Type),
		Distance:   validator.SanitizeString(req.Distance),
	}
	if err := s.propertyRepo.CreateNearbyPlace(place); err != nil {
		return nil, err
	}

	s.invalidate(propertyID)
	return s.propertyRepo.GetByID(propertyID)
}

func (s *PropertyService) invalidate(id uint) {
	if err := s.cache.InvalidateProperty(id); err != nil {
		logger.Warn("Failed to invalidate property cache", map[string]interface{}{"property_id": id, "error": err.Error()})
	}
	s.invalidateListings()
}

func (s *PropertyService) invalidateListings() {
	if err := s.cache.InvalidatePropertiesCache(); err != nil {
		logger.Warn("Failed to invalidate property list cache", map[string]interface{}{"error": err.Error()})
	}
}
