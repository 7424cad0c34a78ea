package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	domain "github.com/gimnasioapp/gym-api/internal/domain/notification"
	"github.com/gimnasioapp/gym-api/internal/httperr"
	"github.com/gimnasioapp/gym-api/internal/httpresp"
	"github.com/gimnasioapp/gym-api/internal/models"
)

type TemplateHandler struct {
	db *gorm.DB
}

func NewTemplateHandler(db *gorm.DB) *TemplateHandler {
	return &TemplateHandler{db: db}
}

// --------- Requests ---------

type CreateTemplateRequest struct {
	Name            string `json:"name" binding:"required,max=100"`
	TriggerType     string `json:"trigger_type" binding:"required"`
	TitleTemplate   string `json:"title_template" binding:"required,max=200"`
	MessageTemplate string `json:"message_template" binding:"required"`
	Type            string `json:"notification_type" binding:"required"`
	Category        string `json:"category" binding:"required"`
	Priority        string `json:"priority" binding:"required"`
	IsActive        *bool  `json:"is_active"`
}

type UpdateTemplateRequest struct {
	Name            *string `json:"name"`
	TriggerType     *string `json:"trigger_type"`
	TitleTemplate   *string `json:"title_template"`
	MessageTemplate *string `json:"message_template"`
	Type            *string `json:"notification_type"`
	Category        *string `json:"category"`
	Priority        *string `json:"priority"`
	IsActive        *bool   `json:"is_active"`
}

func templateFields(t models.NotificationTemplate) map[string]string {
	fields := notificationFields(t.NotificationType, t.Category, t.Priority)
	if !domain.ValidTriggerType(t.TriggerType) {
		fields["trigger_type"] = "Tipo de disparador inválido."
	}
	return fields
}

// --------- Handlers ---------

func (h *TemplateHandler) List(c *gin.Context) {
	q := h.db.Model(&models.NotificationTemplate{})

	if trigger := c.Query("trigger_type"); trigger != "" {
		q = q.Where("trigger_type = ?", trigger)
	}
	switch c.Query("is_active") {
	case "true":
		q = q.Where("is_active = ?", true)
	case "false":
		q = q.Where("is_active = ?", false)
	}

	var templates []models.NotificationTemplate
	if err := q.Order("id ASC").Find(&templates).Error; err != nil {
		httperr.Internal(c, "failed_to_list_templates", "Error al listar plantillas.")
		return
	}

	httpresp.List(c, templates)
}

func (h *TemplateHandler) Get(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		httperr.NotFound(c, "template_not_found", "Plantilla no encontrada.")
		return
	}

	var template models.NotificationTemplate
	if err := h.db.First(&template, id).Error; err != nil {
		httperr.NotFound(c, "template_not_found", "Plantilla no encontrada.")
		return
	}

	httpresp.OK(c, template)
}

func (h *TemplateHandler) Create(c *gin.Context) {
	var req CreateTemplateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.Binding(c, err)
		return
	}

	template := models.NotificationTemplate{
		Name:             req.Name,
		TriggerType:      req.TriggerType,
		TitleTemplate:    req.TitleTemplate,
		MessageTemplate:  req.MessageTemplate,
		NotificationType: req.Type,
		Category:         req.Category,
		Priority:         req.Priority,
		IsActive:         true,
	}
	if req.IsActive != nil {
		template.IsActive = *req.IsActive
	}

	if fields := templateFields(template); len(fields) > 0 {
		httperr.Fields(c, fields)
		return
	}

	if err := h.db.Create(&template).Error; err != nil {
		httperr.Internal(c, "failed_to_create_template", "Error al crear plantilla.")
		return
	}

	httpresp.Created(c, template)
}

func (h *TemplateHandler) Update(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		httperr.NotFound(c, "template_not_found", "Plantilla no encontrada.")
		return
	}

	var template models.NotificationTemplate
	if err := h.db.First(&template, id).Error; err != nil {
		httperr.NotFound(c, "template_not_found", "Plantilla no encontrada.")
		return
	}

	var req UpdateTemplateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.Binding(c, err)
		return
	}

	if req.Name != nil {
		template.Name = *req.Name
	}
	if req.TriggerType != nil {
		template.TriggerType = *req.TriggerType
	}
	if req.TitleTemplate != nil {
		template.TitleTemplate = *req.TitleTemplate
	}
	if req.MessageTemplate != nil {
		template.MessageTemplate = *req.MessageTemplate
	}
	if req.Type != nil {
		template.NotificationType = *req.Type
	}
	if req.Category != nil {
		template.Category = *req.Category
	}
	if req.Priority != nil {
		template.Priority = *req.Priority
	}
	if req.IsActive != nil {
		template.IsActive = *req.IsActive
	}

	if fields := templateFields(template); len(fields) > 0 {
		httperr.Fields(c, fields)
		return
	}

	if err := h.db.Save(&template).Error; err != nil {
		httperr.Internal(c, "failed_to_update_template", "Error al actualizar plantilla.")
		return
	}

	httpresp.OK(c, template)
}

func (h *TemplateHandler) Delete(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		httperr.NotFound(c, "template_not_found", "Plantilla no encontrada.")
		return
	}

	var template models.NotificationTemplate
	if err := h.db.First(&template, id).Error; err != nil {
		httperr.NotFound(c, "template_not_found", "Plantilla no encontrada.")
		return
	}

	if err := h.db.Delete(&template).Error; err != nil {
		httperr.Internal(c, "failed_to_delete_template", "Error al eliminar plantilla.")
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *TemplateHandler) ToggleActive(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		httperr.NotFound(c, "template_not_found", "Plantilla no encontrada.")
		return
	}

	var template models.NotificationTemplate
	if err := h.db.First(&template, id).Error; err != nil {
		httperr.NotFound(c, "template_not_found", "Plantilla no encontrada.")
		return
	}

	template.IsActive = !template.IsActive
	if err := h.db.Save(&template).Error; err != nil {
		httperr.Internal(c, "failed_to_toggle_template", "Error al actualizar plantilla.")
		return
	}

	httpresp.OK(c, template)
}
