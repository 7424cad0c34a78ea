package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/gimnasioapp/gym-api/internal/authz"
	"github.com/gimnasioapp/gym-api/internal/dto"
	"github.com/gimnasioapp/gym-api/internal/httperr"
	"github.com/gimnasioapp/gym-api/internal/httpresp"
	"github.com/gimnasioapp/gym-api/internal/models"
)

type AttendanceHandler struct {
	db *gorm.DB
}

func NewAttendanceHandler(db *gorm.DB) *AttendanceHandler {
	return &AttendanceHandler{db: db}
}

// --------- Requests ---------

type CreateAttendanceRequest struct {
	Socio uint `json:"socio" binding:"required"`
}

type UpdateAttendanceRequest struct {
	FechaSalida *time.Time `json:"fecha_salida,omitempty"`
}

var attendanceOrdering = map[string]string{
	"fecha_entrada": "fecha_entrada",
}

// --------- Handlers ---------

func (h *AttendanceHandler) scope(c *gin.Context, q *gorm.DB) *gorm.DB {
	if authz.IsStaff(c) {
		return q
	}
	return q.Where("socio_id IN (?)", authz.OwnedMemberIDs(h.db, authz.UserID(c)))
}

func (h *AttendanceHandler) List(c *gin.Context) {
	q := h.scope(c, h.db.Model(&models.Attendance{}))

	if socio := c.Query("socio"); socio != "" {
		q = q.Where("socio_id = ?", socio)
	}
	if fecha := c.Query("fecha_entrada"); fecha != "" {
		q = filterDay(q, "fecha_entrada", fecha)
	}
	if fecha := c.Query("fecha_salida"); fecha != "" {
		q = filterDay(q, "fecha_salida", fecha)
	}

	var attendance []models.Attendance
	if err := q.
		Preload("Socio").
		Order(orderClause(c.Query("ordering"), attendanceOrdering, "id ASC")).
		Find(&attendance).Error; err != nil {
		httperr.Internal(c, "failed_to_list_attendance", "Error al listar asistencias.")
		return
	}

	httpresp.List(c, dto.FromAttendances(attendance))
}

func (h *AttendanceHandler) Get(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		httperr.NotFound(c, "attendance_not_found", "Asistencia no encontrada.")
		return
	}

	var attendance models.Attendance
	if err := h.scope(c, h.db.Model(&models.Attendance{})).
		Preload("Socio").
		First(&attendance, "attendances.id = ?", id).Error; err != nil {
		httperr.NotFound(c, "attendance_not_found", "Asistencia no encontrada.")
		return
	}

	httpresp.OK(c, dto.FromAttendance(attendance))
}

// Create registers a check-in; fecha_entrada is system-assigned.
func (h *AttendanceHandler) Create(c *gin.Context) {
	var req CreateAttendanceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.Binding(c, err)
		return
	}

	allowed, err := ownsMember(c, h.db, req.Socio)
	if err != nil {
		httperr.Fields(c, map[string]string{"socio": "Socio no encontrado."})
		return
	}
	if !allowed {
		httperr.Forbidden(c, "not_owner", "No puede registrar asistencias de otro socio.")
		return
	}

	attendance := models.Attendance{SocioID: req.Socio}

	if err := h.db.Create(&attendance).Error; err != nil {
		httperr.Internal(c, "failed_to_create_attendance", "Error al registrar asistencia.")
		return
	}

	if err := h.db.Preload("Socio").First(&attendance, attendance.ID).Error; err != nil {
		httperr.Internal(c, "failed_to_create_attendance", "Error al registrar asistencia.")
		return
	}

	httpresp.Created(c, dto.FromAttendance(attendance))
}

// Update sets the check-out time.
func (h *AttendanceHandler) Update(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		httperr.NotFound(c, "attendance_not_found", "Asistencia no encontrada.")
		return
	}

	var attendance models.Attendance
	if err := h.db.Preload("Socio").First(&attendance, id).Error; err != nil {
		httperr.NotFound(c, "attendance_not_found", "Asistencia no encontrada.")
		return
	}

	if !authz.Owns(c, &attendance) {
		httperr.Forbidden(c, "not_owner", "No puede modificar esta asistencia.")
		return
	}

	var req UpdateAttendanceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.Binding(c, err)
		return
	}

	if req.FechaSalida != nil {
		if req.FechaSalida.Before(attendance.FechaEntrada) {
			httperr.Fields(c, map[string]string{
				"fecha_salida": "La salida no puede ser anterior a la entrada.",
			})
			return
		}
		attendance.FechaSalida = req.FechaSalida
	}

	if err := h.db.Save(&attendance).Error; err != nil {
		httperr.Internal(c, "failed_to_update_attendance", "Error al actualizar asistencia.")
		return
	}

	httpresp.OK(c, dto.FromAttendance(attendance))
}

func (h *AttendanceHandler) Delete(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		httperr.NotFound(c, "attendance_not_found", "Asistencia no encontrada.")
		return
	}

	var attendance models.Attendance
	if err := h.db.Preload("Socio").First(&attendance, id).Error; err != nil {
		httperr.NotFound(c, "attendance_not_found", "Asistencia no encontrada.")
		return
	}

	if !authz.Owns(c, &attendance) {
		httperr.Forbidden(c, "not_owner", "No puede eliminar esta asistencia.")
		return
	}

	if err := h.db.Delete(&attendance).Error; err != nil {
		httperr.Internal(c, "failed_to_delete_attendance", "Error al eliminar asistencia.")
		return
	}

	c.Status(http.StatusNoContent)
}
