package api

import (
	"fmt"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/krish-p25/invoice-generator/internal/domain/entity"
	"github.com/krish-p25/invoice-generator/internal/store"
	"go.uber.org/zap"
)

func (h *Handler) respondTemplate(c *gin.Context, cfg *entity.TemplateConfig, err error) {
	if err != nil {
		if strings.HasPrefix(err.Error(), "unknown") || strings.HasPrefix(err.Error(), "invalid") {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update template"})
		return
	}
	c.JSON(http.StatusOK, cfg)
}

// getTemplate returns the current template configuration.
func (h *Handler) getTemplate(c *gin.Context) {
	c.JSON(http.StatusOK, h.template.Config())
}

// loadTemplate replaces the whole template configuration.
func (h *Handler) loadTemplate(c *gin.Context) {
	var cfg entity.TemplateConfig
	if err := c.ShouldBindJSON(&cfg); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	updated, err := h.template.Load(c.Request.Context(), &cfg)
	h.respondTemplate(c, updated, err)
}

// resetTemplate restores the built-in default template.
func (h *Handler) resetTemplate(c *gin.Context) {
	cfg, err := h.template.ResetToDefault(c.Request.Context())
	h.respondTemplate(c, cfg, err)
}

func (h *Handler) templateGlobalStyles(c *gin.Context) {
	var patch store.GlobalStylesPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	cfg, err := h.template.UpdateGlobalStyles(c.Request.Context(), patch)
	h.respondTemplate(c, cfg, err)
}

func (h *Handler) templateFieldVisibility(c *gin.Context) {
	var req struct {
		Visible *bool `json:"visible" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	cfg, err := h.template.UpdateFieldVisibility(c.Request.Context(),
		entity.FieldType(c.Param("type")), *req.Visible)
	h.respondTemplate(c, cfg, err)
}

func (h *Handler) templateFieldPosition(c *gin.Context) {
	var patch store.PositionPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	cfg, err := h.template.UpdateFieldPosition(c.Request.Context(),
		entity.FieldType(c.Param("type")), patch)
	h.respondTemplate(c, cfg, err)
}

func (h *Handler) templateFieldStyle(c *gin.Context) {
	var patch store.StylePatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	cfg, err := h.template.UpdateFieldStyle(c.Request.Context(),
		entity.FieldType(c.Param("type")), patch)
	h.respondTemplate(c, cfg, err)
}

func (h *Handler) templateLogo(c *gin.Context) {
	var patch store.LogoPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	cfg, err := h.template.UpdateLogo(c.Request.Context(), patch)
	h.respondTemplate(c, cfg, err)
}

// templateLogoUpload stores an uploaded logo image and points the
// template at it.
func (h *Handler) templateLogoUpload(c *gin.Context) {
	fileHeader, err := c.FormFile("logo")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing logo upload"})
		return
	}

	ext := strings.ToLower(filepath.Ext(fileHeader.Filename))
	switch ext {
	case ".png", ".jpg", ".jpeg", ".gif":
	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": "logo must be a PNG, JPEG or GIF image"})
		return
	}

	dest := filepath.Join(h.logoDir, fmt.Sprintf("logo_%s%s", uuid.NewString(), ext))
	if err := c.SaveUploadedFile(fileHeader, dest); err != nil {
		h.logger.Error("Failed to save logo upload", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to save logo"})
		return
	}

	cfg, err := h.template.UpdateLogo(c.Request.Context(), store.LogoPatch{Path: &dest})
	h.respondTemplate(c, cfg, err)
}

func (h *Handler) templateLayout(c *gin.Context) {
	var req struct {
		Zone   entity.LayoutZone  `json:"zone" binding:"required"`
		Fields []entity.FieldType `json:"fields"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	cfg, err := h.template.ReorderFields(c.Request.Context(), req.Zone, req.Fields)
	h.respondTemplate(c, cfg, err)
}
