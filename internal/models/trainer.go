package models

type Trainer struct {
	ID uint `gorm:"primaryKey" json:"entrenador_id"`

	Nombre       string `gorm:"size:100;not null" json:"nombre"`
	Especialidad string `gorm:"size:50" json:"especialidad"`
	Telefono     string `gorm:"size:15" json:"telefono"`
	Correo       string `gorm:"size:100" json:"correo"`
}
