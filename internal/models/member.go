package models

import "time"

type Member struct {
	ID uint `gorm:"primaryKey" json:"socio_id"`

	Nombre   string `gorm:"size:100;not null" json:"nombre"`
	Telefono string `gorm:"size:15" json:"telefono"`
	Correo   string `gorm:"size:100" json:"correo"`

	// RESTRICT mirrors protect-on-delete: a membership with members stays.
	MembresiaID uint       `gorm:"not null" json:"membresia"`
	Membresia   Membership `gorm:"constraint:OnUpdate:CASCADE,OnDelete:RESTRICT;" json:"-"`

	// Optional link to the login account that owns this member record.
	UserID *uint `gorm:"index" json:"user_id,omitempty"`

	FechaRegistro time.Time `gorm:"autoCreateTime" json:"fecha_registro"`
}
