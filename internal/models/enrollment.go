package models

import "time"

// Enrollment links a member to a class session, one row per (socio, clase).
type Enrollment struct {
	ID uint `gorm:"primaryKey" json:"id"`

	SocioID uint   `gorm:"not null;uniqueIndex:idx_socio_clase" json:"socio"`
	Socio   Member `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`

	ClaseID uint         `gorm:"not null;uniqueIndex:idx_socio_clase" json:"clase"`
	Clase   ClassSession `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`

	FechaInscripcion time.Time `gorm:"autoCreateTime" json:"fecha_inscripcion"`
}

func (Enrollment) TableName() string { return "socio_clases" }
