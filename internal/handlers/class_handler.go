package handlers

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/gimnasioapp/gym-api/internal/dto"
	"github.com/gimnasioapp/gym-api/internal/httperr"
	"github.com/gimnasioapp/gym-api/internal/httpresp"
	"github.com/gimnasioapp/gym-api/internal/models"
)

type ClassHandler struct {
	db *gorm.DB
}

func NewClassHandler(db *gorm.DB) *ClassHandler {
	return &ClassHandler{db: db}
}

// --------- Requests ---------

type CreateClassRequest struct {
	Nombre       string    `json:"nombre" binding:"required"`
	Entrenador   uint      `json:"entrenador" binding:"required"`
	Horario      time.Time `json:"horario" binding:"required"`
	CapacidadMax int       `json:"capacidad_max" binding:"required,gt=0"`
}

type UpdateClassRequest struct {
	Nombre       *string    `json:"nombre,omitempty"`
	Entrenador   *uint      `json:"entrenador,omitempty"`
	Horario      *time.Time `json:"horario,omitempty"`
	CapacidadMax *int       `json:"capacidad_max,omitempty"`
}

var classOrdering = map[string]string{
	"horario": "horario",
}

// --------- Handlers ---------

func (h *ClassHandler) List(c *gin.Context) {
	q := h.db.Model(&models.ClassSession{})

	if trainer := c.Query("entrenador"); trainer != "" {
		q = q.Where("entrenador_id = ?", trainer)
	}
	if horario := c.Query("horario"); horario != "" {
		q = filterDay(q, "horario", horario)
	}
	if search := strings.ToLower(strings.TrimSpace(c.Query("search"))); search != "" {
		q = q.Where("LOWER(nombre) LIKE ?", "%"+search+"%")
	}

	var classes []models.ClassSession
	if err := q.
		Preload("Entrenador").
		Order(orderClause(c.Query("ordering"), classOrdering, "id ASC")).
		Find(&classes).Error; err != nil {
		httperr.Internal(c, "failed_to_list_classes", "Error al listar clases.")
		return
	}

	httpresp.List(c, dto.FromClasses(classes))
}

func (h *ClassHandler) Get(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		httperr.NotFound(c, "class_not_found", "Clase no encontrada.")
		return
	}

	var class models.ClassSession
	if err := h.db.Preload("Entrenador").First(&class, id).Error; err != nil {
		httperr.NotFound(c, "class_not_found", "Clase no encontrada.")
		return
	}

	httpresp.OK(c, dto.FromClass(class))
}

func (h *ClassHandler) Create(c *gin.Context) {
	var req CreateClassRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.Binding(c, err)
		return
	}

	var trainer models.Trainer
	if err := h.db.First(&trainer, req.Entrenador).Error; err != nil {
		httperr.Fields(c, map[string]string{"entrenador": "Entrenador no encontrado."})
		return
	}

	class := models.ClassSession{
		Nombre:       req.Nombre,
		EntrenadorID: req.Entrenador,
		Horario:      req.Horario,
		CapacidadMax: req.CapacidadMax,
	}

	if errs := class.Validate(); errs != nil {
		httperr.Fields(c, errs)
		return
	}

	if err := h.db.Create(&class).Error; err != nil {
		httperr.Internal(c, "failed_to_create_class", "Error al crear clase.")
		return
	}

	class.Entrenador = trainer
	httpresp.Created(c, dto.FromClass(class))
}

func (h *ClassHandler) Update(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		httperr.NotFound(c, "class_not_found", "Clase no encontrada.")
		return
	}

	var class models.ClassSession
	if err := h.db.First(&class, id).Error; err != nil {
		httperr.NotFound(c, "class_not_found", "Clase no encontrada.")
		return
	}

	var req UpdateClassRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.Binding(c, err)
		return
	}

	if req.Nombre != nil {
		class.Nombre = *req.Nombre
	}
	if req.Entrenador != nil {
		var trainer models.Trainer
		if err := h.db.First(&trainer, *req.Entrenador).Error; err != nil {
			httperr.Fields(c, map[string]string{"entrenador": "Entrenador no encontrado."})
			return
		}
		class.EntrenadorID = *req.Entrenador
	}
	if req.Horario != nil {
		class.Horario = *req.Horario
	}
	if req.CapacidadMax != nil {
		class.CapacidadMax = *req.CapacidadMax
	}

	if errs := class.Validate(); errs != nil {
		httperr.Fields(c, errs)
		return
	}

	if err := h.db.Save(&class).Error; err != nil {
		httperr.Internal(c, "failed_to_update_class", "Error al actualizar clase.")
		return
	}

	if err := h.db.Preload("Entrenador").First(&class, class.ID).Error; err != nil {
		httperr.Internal(c, "failed_to_update_class", "Error al actualizar clase.")
		return
	}

	httpresp.OK(c, dto.FromClass(class))
}

func (h *ClassHandler) Delete(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		httperr.NotFound(c, "class_not_found", "Clase no encontrada.")
		return
	}

	res := h.db.Delete(&models.ClassSession{}, id)
	if res.Error != nil {
		httperr.Internal(c, "failed_to_delete_class", "Error al eliminar clase.")
		return
	}
	if res.RowsAffected == 0 {
		httperr.NotFound(c, "class_not_found", "Clase no encontrada.")
		return
	}

	c.Status(http.StatusNoContent)
}
