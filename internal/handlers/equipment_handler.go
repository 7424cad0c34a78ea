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

type EquipmentHandler struct {
	db *gorm.DB
}

func NewEquipmentHandler(db *gorm.DB) *EquipmentHandler {
	return &EquipmentHandler{db: db}
}

// --------- Requests ---------

type CreateEquipmentRequest struct {
	Nombre              string  `json:"nombre" binding:"required"`
	Descripcion         string  `json:"descripcion"`
	FechaAdquisicion    string  `json:"fecha_adquisicion" binding:"required"`
	UltimaMantenimiento *string `json:"ultima_mantenimiento"`
	Estado              string  `json:"estado" binding:"required"`
}

type UpdateEquipmentRequest struct {
	Nombre              *string `json:"nombre"`
	Descripcion         *string `json:"descripcion"`
	FechaAdquisicion    *string `json:"fecha_adquisicion"`
	UltimaMantenimiento *string `json:"ultima_mantenimiento"`
	Estado              *string `json:"estado"`
}

var equipmentOrdering = map[string]string{
	"fecha_adquisicion":    "fecha_adquisicion",
	"ultima_mantenimiento": "ultima_mantenimiento",
}

// --------- Handlers ---------

func (h *EquipmentHandler) List(c *gin.Context) {
	q := h.db.Model(&models.Equipment{})

	if estado := c.Query("estado"); estado != "" {
		q = q.Where("estado = ?", estado)
	}
	if fecha := c.Query("fecha_adquisicion"); fecha != "" {
		q = filterDay(q, "fecha_adquisicion", fecha)
	}
	if fecha := c.Query("ultima_mantenimiento"); fecha != "" {
		q = filterDay(q, "ultima_mantenimiento", fecha)
	}
	if search := strings.ToLower(strings.TrimSpace(c.Query("search"))); search != "" {
		q = q.Where("LOWER(nombre) LIKE ?", "%"+search+"%")
	}

	var equipment []models.Equipment
	if err := q.
		Order(orderClause(c.Query("ordering"), equipmentOrdering, "id ASC")).
		Find(&equipment).Error; err != nil {
		httperr.Internal(c, "failed_to_list_equipment", "Error al listar equipos.")
		return
	}

	httpresp.List(c, equipment)
}

func (h *EquipmentHandler) Get(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		httperr.NotFound(c, "equipment_not_found", "Equipo no encontrado.")
		return
	}

	var equipment models.Equipment
	if err := h.db.First(&equipment, id).Error; err != nil {
		httperr.NotFound(c, "equipment_not_found", "Equipo no encontrado.")
		return
	}

	httpresp.OK(c, equipment)
}

func (h *EquipmentHandler) Create(c *gin.Context) {
	var req CreateEquipmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.Binding(c, err)
		return
	}

	fechaAdquisicion, ok := parseDate(req.FechaAdquisicion)
	if !ok {
		httperr.Fields(c, map[string]string{"fecha_adquisicion": "Formato de fecha inválido. Use YYYY-MM-DD."})
		return
	}

	equipment := models.Equipment{
		Nombre:           req.Nombre,
		Descripcion:      req.Descripcion,
		FechaAdquisicion: fechaAdquisicion,
		Estado:           req.Estado,
	}
	if req.UltimaMantenimiento != nil {
		mantenimiento, ok := parseDate(*req.UltimaMantenimiento)
		if !ok {
			httperr.Fields(c, map[string]string{"ultima_mantenimiento": "Formato de fecha inválido. Use YYYY-MM-DD."})
			return
		}
		equipment.UltimaMantenimiento = &mantenimiento
	}

	if fields := equipment.Validate(); len(fields) > 0 {
		httperr.Fields(c, fields)
		return
	}

	if err := h.db.Create(&equipment).Error; err != nil {
		httperr.Internal(c, "failed_to_create_equipment", "Error al crear equipo.")
		return
	}

	httpresp.Created(c, equipment)
}

func (h *EquipmentHandler) Update(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		httperr.NotFound(c, "equipment_not_found", "Equipo no encontrado.")
		return
	}

	var equipment models.Equipment
	if err := h.db.First(&equipment, id).Error; err != nil {
		httperr.NotFound(c, "equipment_not_found", "Equipo no encontrado.")
		return
	}

	var req UpdateEquipmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.Binding(c, err)
		return
	}

	if req.Nombre != nil {
		equipment.Nombre = *req.Nombre
	}
	if req.Descripcion != nil {
		equipment.Descripcion = *req.Descripcion
	}
	if req.FechaAdquisicion != nil {
		fecha, ok := parseDate(*req.FechaAdquisicion)
		if !ok {
			httperr.Fields(c, map[string]string{"fecha_adquisicion": "Formato de fecha inválido. Use YYYY-MM-DD."})
			return
		}
		equipment.FechaAdquisicion = fecha
	}
	if req.UltimaMantenimiento != nil {
		mantenimiento, ok := parseDate(*req.UltimaMantenimiento)
		if !ok {
			httperr.Fields(c, map[string]string{"ultima_mantenimiento": "Formato de fecha inválido. Use YYYY-MM-DD."})
			return
		}
		equipment.UltimaMantenimiento = &mantenimiento
	}
	if req.Estado != nil {
		equipment.Estado = *req.Estado
	}

	if fields := equipment.Validate(); len(fields) > 0 {
		httperr.Fields(c, fields)
		return
	}

	if err := h.db.Save(&equipment).Error; err != nil {
		httperr.Internal(c, "failed_to_update_equipment", "Error al actualizar equipo.")
		return
	}

	httpresp.OK(c, equipment)
}

func (h *EquipmentHandler) Delete(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		httperr.NotFound(c, "equipment_not_found", "Equipo no encontrado.")
		return
	}

	var equipment models.Equipment
	if err := h.db.First(&equipment, id).Error; err != nil {
		httperr.NotFound(c, "equipment_not_found", "Equipo no encontrado.")
		return
	}

	if err := h.db.Delete(&equipment).Error; err != nil {
		httperr.Internal(c, "failed_to_delete_equipment", "Error al eliminar equipo.")
		return
	}

	c.Status(http.StatusNoContent)
}
