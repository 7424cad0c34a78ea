package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/gimnasioapp/gym-api/internal/authz"
	"github.com/gimnasioapp/gym-api/internal/delivery"
	domain "github.com/gimnasioapp/gym-api/internal/domain/notification"
	"github.com/gimnasioapp/gym-api/internal/dto"
	"github.com/gimnasioapp/gym-api/internal/httperr"
	"github.com/gimnasioapp/gym-api/internal/httpresp"
	"github.com/gimnasioapp/gym-api/internal/models"
	usecase "github.com/gimnasioapp/gym-api/internal/usecase/notification"
)

type NotificationHandler struct {
	repo     domain.Repository
	recorder *delivery.Recorder

	markRead    *usecase.MarkRead
	markAllRead *usecase.MarkAllRead
	unreadCount *usecase.UnreadCount
	stats       *usecase.Stats
	bulkCreate  *usecase.BulkCreate
}

func NewNotificationHandler(
	repo domain.Repository,
	recorder *delivery.Recorder,
	markRead *usecase.MarkRead,
	markAllRead *usecase.MarkAllRead,
	unreadCount *usecase.UnreadCount,
	stats *usecase.Stats,
	bulkCreate *usecase.BulkCreate,
) *NotificationHandler {
	return &NotificationHandler{
		repo:        repo,
		recorder:    recorder,
		markRead:    markRead,
		markAllRead: markAllRead,
		unreadCount: unreadCount,
		stats:       stats,
		bulkCreate:  bulkCreate,
	}
}

// --------- Requests ---------

type CreateNotificationRequest struct {
	Title       string `json:"title" binding:"required,max=200"`
	Message     string `json:"message" binding:"required"`
	Type        string `json:"notification_type"`
	Category    string `json:"category"`
	Priority    string `json:"priority"`
	ReferenceID string `json:"reference_id"`
}

type UpdateNotificationRequest struct {
	Read *bool `json:"read"`
}

type BulkCreateNotificationRequest struct {
	Title       string `json:"title" binding:"required,max=200"`
	Message     string `json:"message" binding:"required"`
	Type        string `json:"notification_type"`
	Category    string `json:"category"`
	Priority    string `json:"priority"`
	UserIDs     []uint `json:"user_ids" binding:"required,min=1"`
	ReferenceID string `json:"reference_id"`
}

func notificationFields(typ, category, priority string) map[string]string {
	fields := map[string]string{}
	if !domain.ValidType(typ) {
		fields["notification_type"] = "Tipo de notificación inválido."
	}
	if !domain.ValidCategory(category) {
		fields["category"] = "Categoría inválida."
	}
	if !domain.ValidPriority(priority) {
		fields["priority"] = "Prioridad inválida."
	}
	return fields
}

// --------- Handlers ---------

func (h *NotificationHandler) List(c *gin.Context) {
	filter := domain.ListFilter{
		Category: c.Query("category"),
		Priority: c.Query("priority"),
	}
	switch c.Query("read") {
	case "true":
		t := true
		filter.Read = &t
	case "false":
		f := false
		filter.Read = &f
	}

	notifications, err := h.repo.ListForUser(c.Request.Context(), authz.UserID(c), filter)
	if err != nil {
		httperr.Internal(c, "failed_to_list_notifications", "Error al listar notificaciones.")
		return
	}

	httpresp.List(c, dto.FromNotifications(notifications))
}

func (h *NotificationHandler) Get(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		httperr.NotFound(c, "notification_not_found", "Notificación no encontrada.")
		return
	}

	n, err := h.repo.GetForUser(c.Request.Context(), id, authz.UserID(c))
	if err != nil {
		httperr.NotFound(c, "notification_not_found", "Notificación no encontrada.")
		return
	}

	httpresp.OK(c, dto.FromNotification(*n))
}

func (h *NotificationHandler) Create(c *gin.Context) {
	var req CreateNotificationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.Binding(c, err)
		return
	}

	if req.Type == "" {
		req.Type = string(domain.TypeInfo)
	}
	if req.Category == "" {
		req.Category = string(domain.CategorySystem)
	}
	if req.Priority == "" {
		req.Priority = string(domain.PriorityMedium)
	}
	if fields := notificationFields(req.Type, req.Category, req.Priority); len(fields) > 0 {
		httperr.Fields(c, fields)
		return
	}

	n := models.Notification{
		UserID:      authz.UserID(c),
		Title:       req.Title,
		Message:     req.Message,
		Type:        req.Type,
		Category:    req.Category,
		Priority:    req.Priority,
		ReferenceID: req.ReferenceID,
	}
	if err := h.repo.Create(c.Request.Context(), &n); err != nil {
		httperr.Internal(c, "failed_to_create_notification", "Error al crear notificación.")
		return
	}

	h.recorder.Record(delivery.Event{
		NotificationID: n.ID,
		Method:         delivery.MethodInApp,
		Status:         delivery.StatusDelivered,
	})

	httpresp.Created(c, dto.FromNotification(n))
}

func (h *NotificationHandler) Update(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		httperr.NotFound(c, "notification_not_found", "Notificación no encontrada.")
		return
	}

	var req UpdateNotificationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.Binding(c, err)
		return
	}

	if req.Read == nil || !*req.Read {
		n, err := h.repo.GetForUser(c.Request.Context(), id, authz.UserID(c))
		if err != nil {
			httperr.NotFound(c, "notification_not_found", "Notificación no encontrada.")
			return
		}
		httpresp.OK(c, dto.FromNotification(*n))
		return
	}

	n, err := h.markRead.Execute(c.Request.Context(), authz.UserID(c), id)
	if err != nil {
		if httperr.IsBusiness(err, "notification_not_found") {
			httperr.NotFound(c, "notification_not_found", "Notificación no encontrada.")
			return
		}
		httperr.Internal(c, "failed_to_update_notification", "Error al actualizar notificación.")
		return
	}

	httpresp.OK(c, dto.FromNotification(*n))
}

func (h *NotificationHandler) Delete(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		httperr.NotFound(c, "notification_not_found", "Notificación no encontrada.")
		return
	}

	if err := h.repo.DeleteForUser(c.Request.Context(), id, authz.UserID(c)); err != nil {
		httperr.NotFound(c, "notification_not_found", "Notificación no encontrada.")
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *NotificationHandler) UnreadCount(c *gin.Context) {
	count, err := h.unreadCount.Execute(c.Request.Context(), authz.UserID(c))
	if err != nil {
		httperr.Internal(c, "failed_to_count_unread", "Error al contar no leídas.")
		return
	}

	httpresp.OK(c, gin.H{"unread_count": count})
}

func (h *NotificationHandler) MarkAllRead(c *gin.Context) {
	count, err := h.markAllRead.Execute(c.Request.Context(), authz.UserID(c))
	if err != nil {
		httperr.Internal(c, "failed_to_mark_all_read", "Error al marcar notificaciones.")
		return
	}

	httpresp.OK(c, gin.H{"marked_read": count})
}

func (h *NotificationHandler) MarkRead(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		httperr.NotFound(c, "notification_not_found", "Notificación no encontrada.")
		return
	}

	n, err := h.markRead.Execute(c.Request.Context(), authz.UserID(c), id)
	if err != nil {
		if httperr.IsBusiness(err, "notification_not_found") {
			httperr.NotFound(c, "notification_not_found", "Notificación no encontrada.")
			return
		}
		httperr.Internal(c, "failed_to_mark_read", "Error al marcar notificación.")
		return
	}

	httpresp.OK(c, dto.FromNotification(*n))
}

func (h *NotificationHandler) Stats(c *gin.Context) {
	result, err := h.stats.Execute(c.Request.Context(), authz.UserID(c))
	if err != nil {
		httperr.Internal(c, "failed_to_load_stats", "Error al cargar estadísticas.")
		return
	}

	httpresp.OK(c, result)
}

func (h *NotificationHandler) BulkCreate(c *gin.Context) {
	var req BulkCreateNotificationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.Binding(c, err)
		return
	}

	if req.Type == "" {
		req.Type = string(domain.TypeInfo)
	}
	if req.Category == "" {
		req.Category = string(domain.CategorySystem)
	}
	if req.Priority == "" {
		req.Priority = string(domain.PriorityMedium)
	}
	if fields := notificationFields(req.Type, req.Category, req.Priority); len(fields) > 0 {
		httperr.Fields(c, fields)
		return
	}

	created, err := h.bulkCreate.Execute(c.Request.Context(), usecase.BulkCreateInput{
		Title:       req.Title,
		Message:     req.Message,
		Type:        req.Type,
		Category:    req.Category,
		Priority:    req.Priority,
		UserIDs:     req.UserIDs,
		ReferenceID: req.ReferenceID,
	})
	if err != nil {
		httperr.Internal(c, "failed_to_bulk_create", "Error al crear notificaciones.")
		return
	}

	httpresp.Created(c, gin.H{
		"created":       len(created),
		"notifications": dto.FromNotifications(created),
	})
}
