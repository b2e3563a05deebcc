package service

import (
	"errors"

	"estate-backoffice/internal/layout"
	"estate-backoffice/internal/models"
	"estate-backoffice/internal/repository"
	"estate-backoffice/pkg/cache"
	"estate-backoffice/pkg/logger"
	"estate-backoffice/pkg/validator"
)

var (
	ErrTemplateNameRequired = errors.New("template name is required")
	ErrMissingActor         = errors.New("authenticated user required")
)

type TemplateService struct {
	templateRepo repository.TemplateRepository
	cache        *cache.Cache
	events       *Events
}

func NewTemplateService(templateRepo repository.TemplateRepository, c *cache.Cache, events *Events) *TemplateService {
	return &TemplateService{
		templateRepo: templateRepo,
		cache:        c,
		events:       events,
	}
}

// Save validates and persists the whole template in one write. The name
// check runs before any repository access, a rejected save must not
// touch storage. templateID zero means create.
func (s *TemplateService) Save(templateID uint, req models.SaveTemplateRequest, actorID uint) (*models.BrochureTemplate, error) {
	name := validator.TrimSpaces(req.Name)
	if name == "" {
		return nil, ErrTemplateNameRequired
	}
	if actorID == 0 {
		return nil, ErrMissingActor
	}

	template := &models.BrochureTemplate{
		ID:          templateID,
		Name:        validator.SanitizeString(name),
		Description: validator.SanitizeString(req.Description),
		Sections:    models.TemplateSections(req.Sections),
		CreatedBy:   actorID,
	}

	if templateID != 0 {
		existing, err := s.templateRepo.GetByID(templateID)
		if err != nil {
			return nil, err
		}
		template.CreatedAt = existing.CreatedAt
		template.CreatedBy = existing.CreatedBy
		if req.Sections == nil {
			// A rename-only save must not wipe the stored tree.
			template.Sections = existing.Sections
		}
	} else if req.Sections == nil {
		template.Sections = models.TemplateSections(layout.DefaultSections())
	}

	if err := s.templateRepo.Save(template); err != nil {
		return nil, err
	}

	s.invalidate(template.ID)
	s.events.Publish(Event{
		Type:   EventTemplateSaved,
		UserID: actorID,
		Payload: map[string]interface{}{
			"template_id": template.ID,
			"name":        template.Name,
		},
	})

	return template, nil
}

func (s *TemplateService) GetByID(id uint) (*models.BrochureTemplate, error) {
	var cached models.BrochureTemplate
	if err := s.cache.GetCachedTemplate(id, &cached); err == nil && cached.ID != 0 {
		return &cached, nil
	}

	template, err := s.templateRepo.GetByID(id)
	if err != nil {
		return nil, err
	}

	if err := s.cache.CacheTemplate(id, template); err != nil {
		logger.Warn("Failed to cache template", map[string]interface{}{"template_id": id, "error": err.Error()})
	}

	return template, nil
}

func (s *TemplateService) GetAll(offset, limit int) ([]models.BrochureTemplate, int64, error) {
	return s.templateRepo.GetAll(offset, limit)
}

func (s *TemplateService) Delete(id uint) error {
	if err := s.templateRepo.Delete(id); err != nil {
		return err
	}
	s.invalidate(id)
	return nil
}

// NewDraft returns the starting point for the builder: the six standard
// brochure sections plus the draggable element catalog.
func (s *TemplateService) NewDraft() ([]layout.Section, []layout.GlobalElement, map[layout.SectionType][]layout.ElementTemplate) {
	return layout.DefaultSections(), layout.GlobalElements(), layout.DefaultElementCatalog()
}

// Editor operations. Each one loads the stored tree, applies a pure
// layout transform, and saves the result wholesale.

func (s *TemplateService) ReorderSections(templateID uint, req models.ReorderSectionsRequest) (*models.BrochureTemplate, error) {
	return s.applyLayout(templateID, func(sections []layout.Section) []layout.Section {
		return layout.ReorderSections(sections, req.ActiveID, req.OverID)
	})
}

func (s *TemplateService) AddContainer(templateID uint, sectionID string) (*models.BrochureTemplate, error) {
	return s.applyLayout(templateID, func(sections []layout.Section) []layout.Section {
		return layout.AddContainer(sections, sectionID)
	})
}

func (s *TemplateService) UpdateContainer(templateID uint, sectionID, containerID string, req models.UpdateContainerRequest) (*models.BrochureTemplate, error) {
	update := layout.ContainerUpdate{
		Columns:      req.Columns,
		ColumnWidths: req.ColumnWidths,
		Elements:     req.Elements,
	}
	return s.applyLayout(templateID, func(sections []layout.Section) []layout.Section {
		return layout.UpdateContainer(sections, sectionID, containerID, update)
	})
}

func (s *TemplateService) DeleteContainer(templateID uint, sectionID, containerID string) (*models.BrochureTemplate, error) {
	return s.applyLayout(templateID, func(sections []layout.Section) []layout.Section {
		return layout.DeleteContainer(sections, sectionID, containerID)
	})
}

func (s *TemplateService) ChangeColumns(templateID uint, containerID string, req models.ChangeColumnsRequest) (*models.BrochureTemplate, error) {
	return s.applyLayout(templateID, func(sections []layout.Section) []layout.Section {
		return layout.ChangeColumns(sections, containerID, req.Columns)
	})
}

func (s *TemplateService) ChangeColumnWidth(templateID uint, containerID string, req models.ChangeColumnWidthRequest) (*models.BrochureTemplate, error) {
	return s.applyLayout(templateID, func(sections []layout.Section) []layout.Section {
		return layout.ChangeColumnWidth(sections, containerID, req.ColumnIndex, req.Width)
	})
}

func (s *TemplateService) DropElement(templateID uint, containerID string, req models.DropElementRequest) (*models.BrochureTemplate, error) {
	return s.applyLayout(templateID, func(sections []layout.Section) []layout.Section {
		return layout.DropElement(sections, containerID, req.ColumnIndex, req.ElementID)
	})
}

func (s *TemplateService) applyLayout(templateID uint, transform func([]layout.Section) []layout.Section) (*models.BrochureTemplate, error) {
	template, err := s.templateRepo.GetByID(templateID)
	if err != nil {
		return nil, err
	}

	template.Sections = models.TemplateSections(transform([]layout.Section(template.Sections)))

	if err := s.templateRepo.Save(template); err != nil {
		return nil, err
	}

	s.invalidate(templateID)
	return template, nil
}

func (s *TemplateService) invalidate(id uint) {
	if err := s.cache.InvalidateTemplate(id); err != nil {
		logger.Warn("Failed to invalidate template cache", map[string]interface{}{"template_id": id, "error": err.Error()})
	}
}
