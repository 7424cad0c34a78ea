package models

type Membership struct {
	ID uint `gorm:"primaryKey" json:"membresia_id"`

	Tipo          string  `gorm:"size:50;not null" json:"tipo"`
	Descripcion   string  `gorm:"type:text" json:"descripcion"`
	PrecioMensual float64 `gorm:"not null" json:"precio_mensual"`
	DuracionMeses int     `gorm:"not null" json:"duracion_meses"`
}

// Validate runs on every write path, so a negative price cannot slip in
// through seed routines or future code either.
func (m *Membership) Validate() map[string]string {
	errs := map[string]string{}
	if m.PrecioMensual <= 0 {
		errs["precio_mensual"] = "Debe ser mayor que 0."
	}
	if m.DuracionMeses <= 0 {
		errs["duracion_meses"] = "Debe ser mayor que 0."
	}
	if len(errs) == 0 {
		return nil
	}
	return errs
}
