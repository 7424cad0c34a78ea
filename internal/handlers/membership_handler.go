package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	dbpkg "github.com/gimnasioapp/gym-api/internal/db"
	"github.com/gimnasioapp/gym-api/internal/httperr"
	"github.com/gimnasioapp/gym-api/internal/httpresp"
	"github.com/gimnasioapp/gym-api/internal/models"
)

type MembershipHandler struct {
	db *gorm.DB
}

func NewMembershipHandler(db *gorm.DB) *MembershipHandler {
	return &MembershipHandler{db: db}
}

// --------- Requests ---------

type CreateMembershipRequest struct {
	Tipo          string  `json:"tipo" binding:"required"`
	Descripcion   string  `json:"descripcion"`
	PrecioMensual float64 `json:"precio_mensual" binding:"required,gt=0"`
	DuracionMeses int     `json:"duracion_meses" binding:"required,gt=0"`
}

type UpdateMembershipRequest struct {
	Tipo          *string  `json:"tipo,omitempty"`
	Descripcion   *string  `json:"descripcion,omitempty"`
	PrecioMensual *float64 `json:"precio_mensual,omitempty"`
	DuracionMeses *int     `json:"duracion_meses,omitempty"`
}

var membershipOrdering = map[string]string{
	"precio_mensual": "precio_mensual",
	"duracion_meses": "duracion_meses",
}

// --------- Handlers ---------

func (h *MembershipHandler) List(c *gin.Context) {
	q := h.db.Model(&models.Membership{})

	if tipo := c.Query("tipo"); tipo != "" {
		q = q.Where("tipo = ?", tipo)
	}
	if dur := c.Query("duracion_meses"); dur != "" {
		q = q.Where("duracion_meses = ?", dur)
	}
	if search := strings.ToLower(strings.TrimSpace(c.Query("search"))); search != "" {
		q = q.Where("LOWER(tipo) LIKE ?", "%"+search+"%")
	}

	var memberships []models.Membership
	if err := q.
		Order(orderClause(c.Query("ordering"), membershipOrdering, "id ASC")).
		Find(&memberships).Error; err != nil {
		httperr.Internal(c, "failed_to_list_memberships", "Error al listar membresías.")
		return
	}

	httpresp.List(c, memberships)
}

func (h *MembershipHandler) Get(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		httperr.NotFound(c, "membership_not_found", "Membresía no encontrada.")
		return
	}

	var membership models.Membership
	if err := h.db.First(&membership, id).Error; err != nil {
		httperr.NotFound(c, "membership_not_found", "Membresía no encontrada.")
		return
	}

	httpresp.OK(c, membership)
}

func (h *MembershipHandler) Create(c *gin.Context) {
	var req CreateMembershipRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.Binding(c, err)
		return
	}

	membership := models.Membership{
		Tipo:          req.Tipo,
		Descripcion:   req.Descripcion,
		PrecioMensual: req.PrecioMensual,
		DuracionMeses: req.DuracionMeses,
	}

	if errs := membership.Validate(); errs != nil {
		httperr.Fields(c, errs)
		return
	}

	if err := h.db.Create(&membership).Error; err != nil {
		httperr.Internal(c, "failed_to_create_membership", "Error al crear membresía.")
		return
	}

	httpresp.Created(c, membership)
}

func (h *MembershipHandler) Update(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		httperr.NotFound(c, "membership_not_found", "Membresía no encontrada.")
		return
	}

	var membership models.Membership
	if err := h.db.First(&membership, id).Error; err != nil {
		httperr.NotFound(c, "membership_not_found", "Membresía no encontrada.")
		return
	}

	var req UpdateMembershipRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.Binding(c, err)
		return
	}

	if req.Tipo != nil {
		membership.Tipo = *req.Tipo
	}
	if req.Descripcion != nil {
		membership.Descripcion = *req.Descripcion
	}
	if req.PrecioMensual != nil {
		membership.PrecioMensual = *req.PrecioMensual
	}
	if req.DuracionMeses != nil {
		membership.DuracionMeses = *req.DuracionMeses
	}

	if errs := membership.Validate(); errs != nil {
		httperr.Fields(c, errs)
		return
	}

	if err := h.db.Save(&membership).Error; err != nil {
		httperr.Internal(c, "failed_to_update_membership", "Error al actualizar membresía.")
		return
	}

	httpresp.OK(c, membership)
}

func (h *MembershipHandler) Delete(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		httperr.NotFound(c, "membership_not_found", "Membresía no encontrada.")
		return
	}

	var membership models.Membership
	if err := h.db.First(&membership, id).Error; err != nil {
		httperr.NotFound(c, "membership_not_found", "Membresía no encontrada.")
		return
	}

	// Protect-on-delete: a membership with members stays.
	var members int64
	h.db.Model(&models.Member{}).Where("membresia_id = ?", id).Count(&members)
	if members > 0 {
		httperr.Conflict(c, "membership_in_use", "La membresía tiene socios asociados.")
		return
	}

	if err := h.db.Delete(&membership).Error; err != nil {
		if dbpkg.IsForeignKeyViolation(err) {
			httperr.Conflict(c, "membership_in_use", "La membresía tiene socios asociados.")
			return
		}
		httperr.Internal(c, "failed_to_delete_membership", "Error al eliminar membresía.")
		return
	}

	c.Status(http.StatusNoContent)
}
