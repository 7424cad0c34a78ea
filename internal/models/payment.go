package models

import "time"

const (
	PaymentCash     = "efectivo"
	PaymentCard     = "tarjeta"
	PaymentTransfer = "transferencia"
)

type Payment struct {
	ID uint `gorm:"primaryKey" json:"pago_id"`

	SocioID uint   `gorm:"not null" json:"socio"`
	Socio   Member `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`

	Monto     float64   `gorm:"not null" json:"monto"`
	FechaPago time.Time `gorm:"autoCreateTime" json:"fecha_pago"`
	Metodo    string    `gorm:"size:20;not null" json:"metodo"`
}

func (p *Payment) Validate() map[string]string {
	errs := map[string]string{}
	if p.Monto <= 0 {
		errs["monto"] = "Debe ser mayor que 0."
	}
	switch p.Metodo {
	case PaymentCash, PaymentCard, PaymentTransfer:
	default:
		errs["metodo"] = "Método de pago inválido."
	}
	if len(errs) == 0 {
		return nil
	}
	return errs
}
