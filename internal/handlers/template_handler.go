package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"estate-backoffice/internal/middleware"
	"estate-backoffice/internal/models"
	"estate-backoffice/internal/service"
)

type TemplateHandler struct {
	templateService *service.TemplateService
}

func NewTemplateHandler(templateService *service.TemplateService) *TemplateHandler {
	return &TemplateHandler{templateService: templateService}
}

// NewDraft hands the builder its starting state: the standard sections,
// the global elements, and the per-section element catalog.
func (h *TemplateHandler) NewDraft(c *gin.Context) {
	sections, globals, catalog := h.templateService.NewDraft()
	c.JSON(http.StatusOK, gin.H{
		"sections":        sections,
		"global_elements": globals,
		"catalog":         catalog,
	})
}

func (h *TemplateHandler) Create(c *gin.Context) {
	h.save(c, 0)
}

func (h *TemplateHandler) Update(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid template id"})
		return
	}
	h.save(c, id)
}

func (h *TemplateHandler) save(c *gin.Context, id uint) {
	var req models.SaveTemplateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	userID, _ := middleware.CurrentUserID(c)

	template, err := h.templateService.Save(id, req, userID)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrTemplateNameRequired):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		case errors.Is(err, service.ErrMissingActor):
			c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
		case errors.Is(err, gorm.ErrRecordNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "template not found"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
		return
	}

	status := http.StatusOK
	if id == 0 {
		status = http.StatusCreated
	}
	c.JSON(status, gin.H{"template": template})
}

func (h *TemplateHandler) GetByID(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid template id"})
		return
	}

	template, err := h.templateService.GetByID(id)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "template not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"template": template})
}

func (h *TemplateHandler) GetAll(c *gin.Context) {
	offset, limit := pagination(c)

	templates, total, err := h.templateService.GetAll(offset, limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"templates": templates, "total": total})
}

func (h *TemplateHandler) Delete(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid template id"})
		return
	}

	if err := h.templateService.Delete(id); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "template deleted successfully"})
}

// Editor endpoints. All of them respond with the updated template so the
// builder can re-render from the persisted state.

func (h *TemplateHandler) ReorderSections(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid template id"})
		return
	}

	var req models.ReorderSectionsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	template, err := h.templateService.ReorderSections(id, req)
	h.respondLayout(c, template, err)
}

func (h *TemplateHandler) AddContainer(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid template id"})
		return
	}

	sectionID := c.Param("sectionId")
	if sectionID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "section id is required"})
		return
	}

	template, err := h.templateService.AddContainer(id, sectionID)
	h.respondLayout(c, template, err)
}

func (h *TemplateHandler) UpdateContainer(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid template id"})
		return
	}

	var req models.UpdateContainerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	template, err := h.templateService.UpdateContainer(id, c.Param("sectionId"), c.Param("containerId"), req)
	h.respondLayout(c, template, err)
}

func (h *TemplateHandler) DeleteContainer(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid template id"})
		return
	}

	template, err := h.templateService.DeleteContainer(id, c.Param("sectionId"), c.Param("containerId"))
	h.respondLayout(c, template, err)
}

func (h *TemplateHandler) ChangeColumns(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid template id"})
		return
	}

	var req models.ChangeColumnsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	template, err := h.templateService.ChangeColumns(id, c.Param("containerId"), req)
	h.respondLayout(c, template, err)
}

func (h *TemplateHandler) ChangeColumnWidth(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid template id"})
		return
	}

	var req models.ChangeColumnWidthRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	template, err := h.templateService.ChangeColumnWidth(id, c.Param("containerId"), req)
	h.respondLayout(c, template, err)
}

func (h *TemplateHandler) DropElement(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid template id"})
		return
	}

	var req models.DropElementRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	template, err := h.templateService.DropElement(id, c.Param("containerId"), req)
	h.respondLayout(c, template, err)
}

func (h *TemplateHandler) respondLayout(c *gin.Context, template *models.BrochureTemplate, err error) {
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "template not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"template": template})
}
