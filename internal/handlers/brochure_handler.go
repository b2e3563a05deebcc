package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"estate-backoffice/internal/middleware"
	"estate-backoffice/internal/service"
)

type BrochureHandler struct {
	brochureService *service.BrochureService
}

func NewBrochureHandler(brochureService *service.BrochureService) *BrochureHandler {
	return &BrochureHandler{brochureService: brochureService}
}

// Generate streams the portrait brochure. Content-Disposition is inline,
// agents preview brochures in the browser before sending them out.
func (h *BrochureHandler) Generate(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid property id"})
		return
	}

	userID, _ := middleware.CurrentUserID(c)

	result, err := h.brochureService.Generate(c.Request.Context(), id, userID)
	if err != nil {
		h.respondError(c, err)
		return
	}

	h.servePDF(c, fmt.Sprintf("brochure-%d.pdf", id), result)
}

// GenerateWindowSheet streams the single-page landscape variant.
func (h *BrochureHandler) GenerateWindowSheet(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid property id"})
		return
	}

	userID, _ := middleware.CurrentUserID(c)

	result, err := h.brochureService.GenerateLandscapeSheet(c.Request.Context(), id, userID)
	if err != nil {
		h.respondError(c, err)
		return
	}

	h.servePDF(c, fmt.Sprintf("window-sheet-%d.pdf", id), result)
}

func (h *BrochureHandler) PageCount(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid property id"})
		return
	}

	pages, err := h.brochureService.PreviewPageCount(id)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"pages": pages})
}

func (h *BrochureHandler) servePDF(c *gin.Context, filename string, result *service.GeneratedBrochure) {
	c.Header("Content-Disposition", fmt.Sprintf("inline; filename=%q", filename))
	c.Header("X-Generation-Pages", strconv.Itoa(result.Pages))
	c.Data(http.StatusOK, "application/pdf", result.PDF)
}

func (h *BrochureHandler) respondError(c *gin.Context, err error) {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "property not found"})
		return
	}
	c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
}
