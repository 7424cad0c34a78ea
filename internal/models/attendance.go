package models

import "time"

type Attendance struct {
	ID uint `gorm:"primaryKey" json:"asistencia_id"`

	SocioID uint   `gorm:"not null" json:"socio"`
	Socio   Member `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`

	FechaEntrada time.Time  `gorm:"autoCreateTime" json:"fecha_entrada"`
	FechaSalida  *time.Time `json:"fecha_salida"`
}
