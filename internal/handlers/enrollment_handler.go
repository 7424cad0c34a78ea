package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/gimnasioapp/gym-api/internal/authz"
	dbpkg "github.com/gimnasioapp/gym-api/internal/db"
	"github.com/gimnasioapp/gym-api/internal/dto"
	"github.com/gimnasioapp/gym-api/internal/httperr"
	"github.com/gimnasioapp/gym-api/internal/httpresp"
	"github.com/gimnasioapp/gym-api/internal/models"
)

type EnrollmentHandler struct {
	db *gorm.DB
}

func NewEnrollmentHandler(db *gorm.DB) *EnrollmentHandler {
	return &EnrollmentHandler{db: db}
}

// --------- Requests ---------

type CreateEnrollmentRequest struct {
	Socio uint `json:"socio" binding:"required"`
	Clase uint `json:"clase" binding:"required"`
}

var enrollmentOrdering = map[string]string{
	"fecha_inscripcion": "fecha_inscripcion",
}

// --------- Handlers ---------

func (h *EnrollmentHandler) scope(c *gin.Context, q *gorm.DB) *gorm.DB {
	if authz.IsStaff(c) {
		return q
	}
	return q.Where("socio_id IN (?)", authz.OwnedMemberIDs(h.db, authz.UserID(c)))
}

func (h *EnrollmentHandler) List(c *gin.Context) {
	q := h.scope(c, h.db.Model(&models.Enrollment{}))

	if socio := c.Query("socio"); socio != "" {
		q = q.Where("socio_id = ?", socio)
	}
	if clase := c.Query("clase"); clase != "" {
		q = q.Where("clase_id = ?", clase)
	}
	if fecha := c.Query("fecha_inscripcion"); fecha != "" {
		q = filterDay(q, "fecha_inscripcion", fecha)
	}

	var enrollments []models.Enrollment
	if err := q.
		Preload("Socio").
		Preload("Clase").
		Order(orderClause(c.Query("ordering"), enrollmentOrdering, "id ASC")).
		Find(&enrollments).Error; err != nil {
		httperr.Internal(c, "failed_to_list_enrollments", "Error al listar inscripciones.")
		return
	}

	httpresp.List(c, dto.FromEnrollments(enrollments))
}

func (h *EnrollmentHandler) Get(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		httperr.NotFound(c, "enrollment_not_found", "Inscripción no encontrada.")
		return
	}

	var enrollment models.Enrollment
	if err := h.scope(c, h.db.Model(&models.Enrollment{})).
		Preload("Socio").
		Preload("Clase").
		First(&enrollment, "socio_clases.id = ?", id).Error; err != nil {
		httperr.NotFound(c, "enrollment_not_found", "Inscripción no encontrada.")
		return
	}

	httpresp.OK(c, dto.FromEnrollment(enrollment))
}

func (h *EnrollmentHandler) Create(c *gin.Context) {
	var req CreateEnrollmentRequest
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
		httperr.Forbidden(c, "not_owner", "No puede inscribir a otro socio.")
		return
	}

	var class models.ClassSession
	if err := h.db.First(&class, req.Clase).Error; err != nil {
		httperr.Fields(c, map[string]string{"clase": "Clase no encontrada."})
		return
	}

	enrollment := models.Enrollment{
		SocioID: req.Socio,
		ClaseID: req.Clase,
	}

	if err := h.db.Create(&enrollment).Error; err != nil {
		if dbpkg.IsUniqueViolation(err) {
			httperr.Fields(c, map[string]string{
				"non_field_errors": "El socio ya está inscrito en esta clase.",
			})
			return
		}
		httperr.Internal(c, "failed_to_create_enrollment", "Error al crear inscripción.")
		return
	}

	if err := h.db.Preload("Socio").Preload("Clase").
		First(&enrollment, enrollment.ID).Error; err != nil {
		httperr.Internal(c, "failed_to_create_enrollment", "Error al crear inscripción.")
		return
	}

	httpresp.Created(c, dto.FromEnrollment(enrollment))
}

func (h *EnrollmentHandler) Delete(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		httperr.NotFound(c, "enrollment_not_found", "Inscripción no encontrada.")
		return
	}

	var enrollment models.Enrollment
	if err := h.db.Preload("Socio").First(&enrollment, id).Error; err != nil {
		httperr.NotFound(c, "enrollment_not_found", "Inscripción no encontrada.")
		return
	}

	if !authz.Owns(c, &enrollment) {
		httperr.Forbidden(c, "not_owner", "No puede eliminar esta inscripción.")
		return
	}

	if err := h.db.Delete(&enrollment).Error; err != nil {
		httperr.Internal(c, "failed_to_delete_enrollment", "Error al eliminar inscripción.")
		return
	}

	c.Status(http.StatusNoContent)
}
