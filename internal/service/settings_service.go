package service

import (
	"errors"
	"fmt"
	"regexp"

	"gorm.io/gorm"

	"estate-backoffice/internal/models"
	"estate-backoffice/internal/repository"
	"estate-backoffice/pkg/cache"
	"estate-backoffice/pkg/logger"
	"estate-backoffice/pkg/validator"
)

var hexColorPattern = regexp.MustCompile(`^#[0-9a-fA-F]{6}$`)

type SettingsService struct {
	settingsRepo repository.SettingsRepository
	cache        *cache.Cache
}

func NewSettingsService(settingsRepo repository.SettingsRepository, c *cache.Cache) *SettingsService {
	return &SettingsService{
		settingsRepo: settingsRepo,
		cache:        c,
	}
}

func (s *SettingsService) Get() (*models.AgencySettings, error) {
	var cached models.AgencySettings
	if err := s.cache.GetCachedSettings(&cached); err == nil && cached.ID != 0 {
		return &cached, nil
	}

	settings, err := s.settingsRepo.Get()
	if err != nil {
		return nil, err
	}

	if err := s.cache.CacheSettings(settings); err != nil {
		logger.Warn("Failed to cache settings", map[string]interface{}{"error": err.Error()})
	}

	return settings, nil
}

func (s *SettingsService) Update(req models.UpdateSettingsRequest) (*models.AgencySettings, error) {
	settings, err := s.settingsRepo.Get()
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
		settings = &models.AgencySettings{}
	}

	if req.Name != nil {
		name := validator.TrimSpaces(*req.Name)
		if name == "" {
			return nil, errors.New("agency name cannot be empty")
		}
		settings.Name = validator.SanitizeString(name)
	}
	if req.Address != nil {
		settings.Address = validator.SanitizeString(*req.Address)
	}
	if req.Phone != nil {
		settings.Phone = validator.SanitizeString(*req.Phone)
	}
	if req.Email != nil {
		settings.Email = *req.Email
	}
	if req.LogoURL != nil {
		settings.LogoURL = *req.LogoURL
	}
	if req.PrimaryColor != nil {
		if !hexColorPattern.MatchString(*req.PrimaryColor) {
			return nil, fmt.Errorf("primary color %q is not a hex color", *req.PrimaryColor)
		}
		settings.PrimaryColor = *req.PrimaryColor
	}
	if req.SecondaryColor != nil {
		if !hexColorPattern.MatchString(*req.SecondaryColor) {
			return nil, fmt.Errorf("secondary color %q is not a hex color", *req.SecondaryColor)
		}
		settings.SecondaryColor = *req.SecondaryColor
	}
	if req.WebsiteURL != nil {
		settings.WebsiteURL = *req.WebsiteURL
	}
	if req.FacebookURL != nil {
		settings.FacebookURL = *req.FacebookURL
	}
	if req.InstagramURL != nil {
		settings.InstagramURL = *req.InstagramURL
	}
	if req.LinkedInURL != nil {
		settings.LinkedInURL = *req.LinkedInURL
	}

	if err := s.settingsRepo.Save(settings); err != nil {
		return nil, err
	}

	if err := s.cache.InvalidateSettings(); err != nil {
		logger.Warn("Failed to invalidate settings cache", map[string]interface{}{"error": err.Error()})
	}

	return settings, nil
}
