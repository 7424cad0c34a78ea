package models

import "testing"

func TestBeforeSaveEnforcesValidate(t *testing.T) {
	m := Membership{Tipo: "Básica", PrecioMensual: 599, DuracionMeses: 1}
	if err := m.BeforeSave(nil); err != nil {
		t.Errorf("valid membership rejected: %v", err)
	}

	bad := Membership{Tipo: "Rota", PrecioMensual: -1, DuracionMeses: 1}
	if err := bad.BeforeSave(nil); err == nil {
		t.Error("negative price should fail BeforeSave")
	}

	p := Payment{Monto: 0, Metodo: PaymentCash}
	if err := p.BeforeSave(nil); err == nil {
		t.Error("zero amount should fail BeforeSave")
	}

	c := ClassSession{CapacidadMax: -3}
	if err := c.BeforeSave(nil); err == nil {
		t.Error("negative capacity should fail BeforeSave")
	}

	e := Equipment{Estado: "roto"}
	if err := e.BeforeSave(nil); err == nil {
		t.Error("unknown estado should fail BeforeSave")
	}

	ok := Equipment{Estado: EquipmentAvailable}
	if err := ok.BeforeSave(nil); err != nil {
		t.Errorf("valid equipment rejected: %v", err)
	}
}
