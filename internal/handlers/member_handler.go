package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/gimnasioapp/gym-api/internal/authz"
	"github.com/gimnasioapp/gym-api/internal/config"
	"github.com/gimnasioapp/gym-api/internal/dto"
	"github.com/gimnasioapp/gym-api/internal/httperr"
	"github.com/gimnasioapp/gym-api/internal/httpresp"
	"github.com/gimnasioapp/gym-api/internal/models"
)

type MemberHandler struct {
	db     *gorm.DB
	config *config.Config
}

func NewMemberHandler(db *gorm.DB, cfg *config.Config) *MemberHandler {
	return &MemberHandler{db: db, config: cfg}
}

// --------- Requests ---------

type CreateMemberRequest struct {
	Nombre    string `json:"nombre" binding:"required"`
	Telefono  string `json:"telefono"`
	Correo    string `json:"correo" binding:"omitempty,email"`
	Membresia uint   `json:"membresia" binding:"required"`
	UserID    *uint  `json:"user_id"`
}

type UpdateMemberRequest struct {
	Nombre    *string `json:"nombre,omitempty"`
	Telefono  *string `json:"telefono,omitempty"`
	Correo    *string `json:"correo,omitempty" binding:"omitempty,email"`
	Membresia *uint   `json:"membresia,omitempty"`
	UserID    *uint   `json:"user_id,omitempty"`
}

var memberOrdering = map[string]string{
	"fecha_registro": "fecha_registro",
}

// --------- Helpers ---------

// scope narrows reads for non-staff callers to their own member records.
func (h *MemberHandler) scope(c *gin.Context, q *gorm.DB) *gorm.DB {
	if authz.IsStaff(c) {
		return q
	}
	return q.Where("user_id = ?", authz.UserID(c))
}

func (h *MemberHandler) emailTaken(correo string, excludeID uint) bool {
	if !h.config.MemberEmailUnique || correo == "" {
		return false
	}
	var count int64
	h.db.Model(&models.Member{}).
		Where("correo = ? AND id <> ?", correo, excludeID).
		Count(&count)
	return count > 0
}

// --------- Handlers ---------

func (h *MemberHandler) List(c *gin.Context) {
	q := h.scope(c, h.db.Model(&models.Member{}))

	if membresia := c.Query("membresia"); membresia != "" {
		q = q.Where("membresia_id = ?", membresia)
	}
	if fecha := c.Query("fecha_registro"); fecha != "" {
		q = filterDay(q, "fecha_registro", fecha)
	}
	if search := strings.ToLower(strings.TrimSpace(c.Query("search"))); search != "" {
		like := "%" + search + "%"
		q = q.Where("LOWER(nombre) LIKE ? OR LOWER(correo) LIKE ?", like, like)
	}

	var members []models.Member
	if err := q.
		Preload("Membresia").
		Order(orderClause(c.Query("ordering"), memberOrdering, "id ASC")).
		Find(&members).Error; err != nil {
		httperr.Internal(c, "failed_to_list_members", "Error al listar socios.")
		return
	}

	httpresp.List(c, dto.FromMembers(members))
}

func (h *MemberHandler) Get(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		httperr.NotFound(c, "member_not_found", "Socio no encontrado.")
		return
	}

	var member models.Member
	if err := h.scope(c, h.db.Model(&models.Member{})).
		Preload("Membresia").
		First(&member, "members.id = ?", id).Error; err != nil {
		httperr.NotFound(c, "member_not_found", "Socio no encontrado.")
		return
	}

	httpresp.OK(c, dto.FromMember(member))
}

func (h *MemberHandler) Create(c *gin.Context) {
	var req CreateMemberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.Binding(c, err)
		return
	}

	var membership models.Membership
	if err := h.db.First(&membership, req.Membresia).Error; err != nil {
		httperr.Fields(c, map[string]string{"membresia": "Membresía no encontrada."})
		return
	}

	correo := strings.ToLower(strings.TrimSpace(req.Correo))
	if h.emailTaken(correo, 0) {
		httperr.Fields(c, map[string]string{"correo": "Ya existe un socio con este correo."})
		return
	}

	userID := req.UserID
	if !authz.IsStaff(c) {
		// Non-staff can only register themselves.
		uid := authz.UserID(c)
		userID = &uid
	}

	member := models.Member{
		Nombre:      req.Nombre,
		Telefono:    req.Telefono,
		Correo:      correo,
		MembresiaID: req.Membresia,
		UserID:      userID,
	}

	if err := h.db.Create(&member).Error; err != nil {
		httperr.Internal(c, "failed_to_create_member", "Error al crear socio.")
		return
	}

	member.Membresia = membership
	httpresp.Created(c, dto.FromMember(member))
}

func (h *MemberHandler) Update(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		httperr.NotFound(c, "member_not_found", "Socio no encontrado.")
		return
	}

	var member models.Member
	if err := h.db.First(&member, id).Error; err != nil {
		httperr.NotFound(c, "member_not_found", "Socio no encontrado.")
		return
	}

	if !authz.Owns(c, &member) {
		httperr.Forbidden(c, "not_owner", "No puede modificar este socio.")
		return
	}

	var req UpdateMemberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.Binding(c, err)
		return
	}

	if req.Nombre != nil {
		member.Nombre = *req.Nombre
	}
	if req.Telefono != nil {
		member.Telefono = *req.Telefono
	}
	if req.Correo != nil {
		correo := strings.ToLower(strings.TrimSpace(*req.Correo))
		if h.emailTaken(correo, member.ID) {
			httperr.Fields(c, map[string]string{"correo": "Ya existe un socio con este correo."})
			return
		}
		member.Correo = correo
	}
	if req.Membresia != nil {
		var membership models.Membership
		if err := h.db.First(&membership, *req.Membresia).Error; err != nil {
			httperr.Fields(c, map[string]string{"membresia": "Membresía no encontrada."})
			return
		}
		member.MembresiaID = *req.Membresia
	}
	if req.UserID != nil && authz.IsStaff(c) {
		member.UserID = req.UserID
	}

	if err := h.db.Save(&member).Error; err != nil {
		httperr.Internal(c, "failed_to_update_member", "Error al actualizar socio.")
		return
	}

	if err := h.db.Preload("Membresia").First(&member, member.ID).Error; err != nil {
		httperr.Internal(c, "failed_to_update_member", "Error al actualizar socio.")
		return
	}

	httpresp.OK(c, dto.FromMember(member))
}

func (h *MemberHandler) Delete(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		httperr.NotFound(c, "member_not_found", "Socio no encontrado.")
		return
	}

	var member models.Member
	if err := h.db.First(&member, id).Error; err != nil {
		httperr.NotFound(c, "member_not_found", "Socio no encontrado.")
		return
	}

	if !authz.Owns(c, &member) {
		httperr.Forbidden(c, "not_owner", "No puede eliminar este socio.")
		return
	}

	if err := h.db.Delete(&member).Error; err != nil {
		httperr.Internal(c, "failed_to_delete_member", "Error al eliminar socio.")
		return
	}

	c.Status(http.StatusNoContent)
}
