package seed

import (
	"errors"

	"gorm.io/gorm"

	"estate-backoffice/internal/layout"
	"estate-backoffice/internal/models"
	"estate-backoffice/internal/repository"
	"estate-backoffice/pkg/logger"
)

// EnsureAgencySettings creates the settings row on first boot so brochure
// generation always has a palette and contact block to work with.
func EnsureAgencySettings(settingsRepo repository.SettingsRepository, agencyName string) {
	if settingsRepo == nil {
		return
	}

	existing, err := settingsRepo.Get()
	if err == nil && existing.ID != 0 {
		return
	}
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		logger.Error(err, "Failed to check agency settings", nil)
		return
	}

	if agencyName == "" {
		agencyName = "Estate Back Office"
	}

	settings := &models.AgencySettings{
		Name:           agencyName,
		PrimaryColor:   "#1a365d",
		SecondaryColor: "#c9a227",
	}

	if err := settingsRepo.Save(settings); err != nil {
		logger.Error(err, "Failed to seed agency settings", nil)
		return
	}

	logger.Info("Seeded agency settings", map[string]interface{}{"name": settings.Name})
}

// EnsureDefaultTemplate creates the standard six-section brochure template
// when no template exists yet.
func EnsureDefaultTemplate(templateRepo repository.TemplateRepository, createdBy uint) {
	if templateRepo == nil {
		return
	}

	count, err := templateRepo.Count()
	if err != nil {
		logger.Error(err, "Failed to count brochure templates", nil)
		return
	}
	if count > 0 {
		return
	}

	template := &models.BrochureTemplate{
		Name:        "Standard brochure",
		Description: "Cover, details, floorplans, location, areas and contact",
		Sections:    models.TemplateSections(layout.DefaultSections()),
		CreatedBy:   createdBy,
	}

	if err := templateRepo.Create(template); err != nil {
		logger.Error(err, "Failed to seed default brochure template", nil)
		return
	}

	logger.Info("Seeded default brochure template", map[string]interface{}{"id": template.ID, "name": template.Name})
}
