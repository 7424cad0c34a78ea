package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/gimnasioapp/gym-api/internal/authz"
	"github.com/gimnasioapp/gym-api/internal/dto"
	"github.com/gimnasioapp/gym-api/internal/httperr"
	"github.com/gimnasioapp/gym-api/internal/httpresp"
	"github.com/gimnasioapp/gym-api/internal/models"
)

type PaymentHandler struct {
	db *gorm.DB
}

func NewPaymentHandler(db *gorm.DB) *PaymentHandler {
	return &PaymentHandler{db: db}
}

// --------- Requests ---------

type CreatePaymentRequest struct {
	Socio  uint    `json:"socio" binding:"required"`
	Monto  float64 `json:"monto" binding:"required,gt=0"`
	Metodo string  `json:"metodo" binding:"required,oneof=efectivo tarjeta transferencia"`
}

type UpdatePaymentRequest struct {
	Monto  *float64 `json:"monto,omitempty"`
	Metodo *string  `json:"metodo,omitempty"`
}

var paymentOrdering = map[string]string{
	"fecha_pago": "fecha_pago",
	"monto":      "monto",
}

// --------- Helpers ---------

func (h *PaymentHandler) scope(c *gin.Context, q *gorm.DB) *gorm.DB {
	if authz.IsStaff(c) {
		return q
	}
	return q.Where("socio_id IN (?)", authz.OwnedMemberIDs(h.db, authz.UserID(c)))
}

// ownsMember reports whether the caller may write records for the member.
func ownsMember(c *gin.Context, db *gorm.DB, socioID uint) (bool, error) {
	if authz.IsStaff(c) {
		return true, nil
	}
	var member models.Member
	if err := db.First(&member, socioID).Error; err != nil {
		return false, err
	}
	return authz.Owns(c, &member), nil
}

// --------- Handlers ---------

func (h *PaymentHandler) List(c *gin.Context) {
	q := h.scope(c, h.db.Model(&models.Payment{}))

	if socio := c.Query("socio"); socio != "" {
		q = q.Where("socio_id = ?", socio)
	}
	if fecha := c.Query("fecha_pago"); fecha != "" {
		q = filterDay(q, "fecha_pago", fecha)
	}
	if metodo := c.Query("metodo"); metodo != "" {
		q = q.Where("metodo = ?", metodo)
	}

	var payments []models.Payment
	if err := q.
		Preload("Socio").
		Order(orderClause(c.Query("ordering"), paymentOrdering, "id ASC")).
		Find(&payments).Error; err != nil {
		httperr.Internal(c, "failed_to_list_payments", "Error al listar pagos.")
		return
	}

	httpresp.List(c, dto.FromPayments(payments))
}

func (h *PaymentHandler) Get(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		httperr.NotFound(c, "payment_not_found", "Pago no encontrado.")
		return
	}

	var payment models.Payment
	if err := h.scope(c, h.db.Model(&models.Payment{})).
		Preload("Socio").
		First(&payment, "payments.id = ?", id).Error; err != nil {
		httperr.NotFound(c, "payment_not_found", "Pago no encontrado.")
		return
	}

	httpresp.OK(c, dto.FromPayment(payment))
}

func (h *PaymentHandler) Create(c *gin.Context) {
	var req CreatePaymentRequest
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
		httperr.Forbidden(c, "not_owner", "No puede registrar pagos de otro socio.")
		return
	}

	payment := models.Payment{
		SocioID: req.Socio,
		Monto:   req.Monto,
		Metodo:  req.Metodo,
	}

	if errs := payment.Validate(); errs != nil {
		httperr.Fields(c, errs)
		return
	}

	if err := h.db.Create(&payment).Error; err != nil {
		httperr.Internal(c, "failed_to_create_payment", "Error al registrar pago.")
		return
	}

	if err := h.db.Preload("Socio").First(&payment, payment.ID).Error; err != nil {
		httperr.Internal(c, "failed_to_create_payment", "Error al registrar pago.")
		return
	}

	httpresp.Created(c, dto.FromPayment(payment))
}

func (h *PaymentHandler) Update(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		httperr.NotFound(c, "payment_not_found", "Pago no encontrado.")
		return
	}

	var payment models.Payment
	if err := h.db.Preload("Socio").First(&payment, id).Error; err != nil {
		httperr.NotFound(c, "payment_not_found", "Pago no encontrado.")
		return
	}

	if !authz.Owns(c, &payment) {
		httperr.Forbidden(c, "not_owner", "No puede modificar este pago.")
		return
	}

	var req UpdatePaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.Binding(c, err)
		return
	}

	if req.Monto != nil {
		payment.Monto = *req.Monto
	}
	if req.Metodo != nil {
		payment.Metodo = *req.Metodo
	}

	if errs := payment.Validate(); errs != nil {
		httperr.Fields(c, errs)
		return
	}

	if err := h.db.Save(&payment).Error; err != nil {
		httperr.Internal(c, "failed_to_update_payment", "Error al actualizar pago.")
		return
	}

	httpresp.OK(c, dto.FromPayment(payment))
}

func (h *PaymentHandler) Delete(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		httperr.NotFound(c, "payment_not_found", "Pago no encontrado.")
		return
	}

	var payment models.Payment
	if err := h.db.Preload("Socio").First(&payment, id).Error; err != nil {
		httperr.NotFound(c, "payment_not_found", "Pago no encontrado.")
		return
	}

	if !authz.Owns(c, &payment) {
		httperr.Forbidden(c, "not_owner", "No puede eliminar este pago.")
		return
	}

	if err := h.db.Delete(&payment).Error; err != nil {
		httperr.Internal(c, "failed_to_delete_payment", "Error al eliminar pago.")
		return
	}

	c.Status(http.StatusNoContent)
}
