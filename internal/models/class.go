package models

import "time"

type ClassSession struct {
	ID uint `gorm:"primaryKey" json:"clase_id"`

	Nombre string `gorm:"size:50;not null" json:"nombre"`

	EntrenadorID uint    `gorm:"not null" json:"entrenador"`
	Entrenador   Trainer `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`

	Horario      time.Time `gorm:"not null" json:"horario"`
	CapacidadMax int       `gorm:"not null" json:"capacidad_max"`
}

func (c *ClassSession) Validate() map[string]string {
	if c.CapacidadMax <= 0 {
		return map[string]string{"capacidad_max": "Debe ser mayor que 0."}
	}
	return nil
}
