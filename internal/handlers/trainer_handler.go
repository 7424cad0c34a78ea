package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/gimnasioapp/gym-api/internal/httperr"
	"github.com/gimnasioapp/gym-api/internal/httpresp"
	"github.com/gimnasioapp/gym-api/internal/models"
)

type TrainerHandler struct {
	db *gorm.DB
}

func NewTrainerHandler(db *gorm.DB) *TrainerHandler {
	return &TrainerHandler{db: db}
}

// --------- Requests ---------

type CreateTrainerRequest struct {
	Nombre       string `json:"nombre" binding:"required"`
	Especialidad string `json:"especialidad"`
	Telefono     string `json:"telefono"`
	Correo       string `json:"correo" binding:"omitempty,email"`
}

type UpdateTrainerRequest struct {
	Nombre       *string `json:"nombre,omitempty"`
	Especialidad *string `json:"especialidad,omitempty"`
	Telefono     *string `json:"telefono,omitempty"`
	Correo       *string `json:"correo,omitempty" binding:"omitempty,email"`
}

// --------- Handlers ---------

func (h *TrainerHandler) List(c *gin.Context) {
	q := h.db.Model(&models.Trainer{})

	if esp := c.Query("especialidad"); esp != "" {
		q = q.Where("especialidad = ?", esp)
	}
	if search := strings.ToLower(strings.TrimSpace(c.Query("search"))); search != "" {
		like := "%" + search + "%"
		q = q.Where("LOWER(nombre) LIKE ? OR LOWER(especialidad) LIKE ?", like, like)
	}

	var trainers []models.Trainer
	if err := q.Order("id ASC").Find(&trainers).Error; err != nil {
		httperr.Internal(c, "failed_to_list_trainers", "Error al listar entrenadores.")
		return
	}

	httpresp.List(c, trainers)
}

func (h *TrainerHandler) Get(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		httperr.NotFound(c, "trainer_not_found", "Entrenador no encontrado.")
		return
	}

	var trainer models.Trainer
	if err := h.db.First(&trainer, id).Error; err != nil {
		httperr.NotFound(c, "trainer_not_found", "Entrenador no encontrado.")
		return
	}

	httpresp.OK(c, trainer)
}

func (h *TrainerHandler) Create(c *gin.Context) {
	var req CreateTrainerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.Binding(c, err)
		return
	}

	trainer := models.Trainer{
		Nombre:       req.Nombre,
		Especialidad: req.Especialidad,
		Telefono:     req.Telefono,
		Correo:       strings.ToLower(strings.TrimSpace(req.Correo)),
	}

	if err := h.db.Create(&trainer).Error; err != nil {
		httperr.Internal(c, "failed_to_create_trainer", "Error al crear entrenador.")
		return
	}

	httpresp.Created(c, trainer)
}

func (h *TrainerHandler) Update(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		httperr.NotFound(c, "trainer_not_found", "Entrenador no encontrado.")
		return
	}

	var trainer models.Trainer
	if err := h.db.First(&trainer, id).Error; err != nil {
		httperr.NotFound(c, "trainer_not_found", "Entrenador no encontrado.")
		return
	}

	var req UpdateTrainerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.Binding(c, err)
		return
	}

	if req.Nombre != nil {
		trainer.Nombre = *req.Nombre
	}
	if req.Especialidad != nil {
		trainer.Especialidad = *req.Especialidad
	}
	if req.Telefono != nil {
		trainer.Telefono = *req.Telefono
	}
	if req.Correo != nil {
		trainer.Correo = strings.ToLower(strings.TrimSpace(*req.Correo))
	}

	if err := h.db.Save(&trainer).Error; err != nil {
		httperr.Internal(c, "failed_to_update_trainer", "Error al actualizar entrenador.")
		return
	}

	httpresp.OK(c, trainer)
}

func (h *TrainerHandler) Delete(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		httperr.NotFound(c, "trainer_not_found", "Entrenador no encontrado.")
		return
	}

	res := h.db.Delete(&models.Trainer{}, id)
	if res.Error != nil {
		httperr.Internal(c, "failed_to_delete_trainer", "Error al eliminar entrenador.")
		return
	}
	if res.RowsAffected == 0 {
		httperr.NotFound(c, "trainer_not_found", "Entrenador no encontrado.")
		return
	}

	c.Status(http.StatusNoContent)
}
