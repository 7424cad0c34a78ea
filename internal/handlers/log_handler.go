package handlers

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/gimnasioapp/gym-api/internal/authz"
	"github.com/gimnasioapp/gym-api/internal/httperr"
	"github.com/gimnasioapp/gym-api/internal/httpresp"
	"github.com/gimnasioapp/gym-api/internal/models"
)

type LogHandler struct {
	db *gorm.DB
}

func NewLogHandler(db *gorm.DB) *LogHandler {
	return &LogHandler{db: db}
}

type deliveryStats struct {
	Total    int64            `json:"total_logs"`
	ByMethod map[string]int64 `json:"by_delivery_method"`
	ByStatus map[string]int64 `json:"by_delivery_status"`
}

// --------- Handlers ---------

// scope restricts logs to the caller's own notifications unless staff.
func (h *LogHandler) scope(c *gin.Context, q *gorm.DB) *gorm.DB {
	if authz.IsStaff(c) {
		return q
	}
	return q.Where("notification_id IN (?)", h.db.
		Model(&models.Notification{}).
		Select("id").
		Where("user_id = ?", authz.UserID(c)))
}

func (h *LogHandler) List(c *gin.Context) {
	q := h.scope(c, h.db.Model(&models.NotificationLog{}))

	if method := c.Query("delivery_method"); method != "" {
		q = q.Where("delivery_method = ?", method)
	}
	if status := c.Query("delivery_status"); status != "" {
		q = q.Where("delivery_status = ?", status)
	}

	var logs []models.NotificationLog
	if err := q.
		Preload("Notification").
		Order("sent_at DESC").
		Find(&logs).Error; err != nil {
		httperr.Internal(c, "failed_to_list_logs", "Error al listar registros de envío.")
		return
	}

	httpresp.List(c, logs)
}

func (h *LogHandler) Get(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		httperr.NotFound(c, "log_not_found", "Registro no encontrado.")
		return
	}

	var log models.NotificationLog
	if err := h.scope(c, h.db.Model(&models.NotificationLog{})).
		Preload("Notification").
		First(&log, "notification_logs.id = ?", id).Error; err != nil {
		httperr.NotFound(c, "log_not_found", "Registro no encontrado.")
		return
	}

	httpresp.OK(c, log)
}

func (h *LogHandler) DeliveryStats(c *gin.Context) {
	stats := deliveryStats{
		ByMethod: map[string]int64{},
		ByStatus: map[string]int64{},
	}

	if err := h.scope(c, h.db.Model(&models.NotificationLog{})).
		Count(&stats.Total).Error; err != nil {
		httperr.Internal(c, "failed_to_load_delivery_stats", "Error al cargar estadísticas de envío.")
		return
	}

	if err := h.grouped(c, "delivery_method", stats.ByMethod); err != nil {
		httperr.Internal(c, "failed_to_load_delivery_stats", "Error al cargar estadísticas de envío.")
		return
	}
	if err := h.grouped(c, "delivery_status", stats.ByStatus); err != nil {
		httperr.Internal(c, "failed_to_load_delivery_stats", "Error al cargar estadísticas de envío.")
		return
	}

	httpresp.OK(c, stats)
}

func (h *LogHandler) grouped(c *gin.Context, column string, out map[string]int64) error {
	var rows []struct {
		Key   string
		Count int64
	}
	if err := h.scope(c, h.db.Model(&models.NotificationLog{})).
		Select(column + " AS key, COUNT(*) AS count").
		Group(column).
		Find(&rows).Error; err != nil {
		return err
	}
	for _, row := range rows {
		out[row.Key] = row.Count
	}
	return nil
}
