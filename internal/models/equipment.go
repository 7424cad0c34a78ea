package models

import "time"

const (
	EquipmentAvailable      = "disponible"
	EquipmentMaintenance    = "mantenimiento"
	EquipmentRepair         = "reparacion"
	EquipmentDecommissioned = "baja"
)

type Equipment struct {
	ID uint `gorm:"primaryKey" json:"equipo_id"`

	Nombre              string     `gorm:"size:100;not null" json:"nombre"`
	Descripcion         string     `gorm:"type:text" json:"descripcion"`
	FechaAdquisicion    time.Time  `gorm:"not null" json:"fecha_adquisicion"`
	Estado              string     `gorm:"size:20;not null;default:'disponible'" json:"estado"`
	UltimaMantenimiento *time.Time `json:"ultima_mantenimiento"`
}

func (e *Equipment) Validate() map[string]string {
	switch e.Estado {
	case EquipmentAvailable, EquipmentMaintenance, EquipmentRepair, EquipmentDecommissioned:
		return nil
	}
	return map[string]string{"estado": "Estado inválido."}
}
