package models

import "testing"

func TestMembershipValidate(t *testing.T) {
	m := Membership{Tipo: "Básica", PrecioMensual: 599, DuracionMeses: 1}
	if errs := m.Validate(); errs != nil {
		t.Errorf("valid membership rejected: %v", errs)
	}

	m = Membership{Tipo: "Rota", PrecioMensual: -1, DuracionMeses: 0}
	errs := m.Validate()
	if errs["precio_mensual"] == "" {
		t.Error("expected precio_mensual error")
	}
	if errs["duracion_meses"] == "" {
		t.Error("expected duracion_meses error")
	}
}

func TestPaymentValidate(t *testing.T) {
	p := Payment{Monto: 100, Metodo: PaymentCard}
	if errs := p.Validate(); errs != nil {
		t.Errorf("valid payment rejected: %v", errs)
	}

	p = Payment{Monto: 0, Metodo: "cheque"}
	errs := p.Validate()
	if errs["monto"] == "" {
		t.Error("expected monto error")
	}
	if errs["metodo"] == "" {
		t.Error("expected metodo error")
	}
}

func TestClassSessionValidate(t *testing.T) {
	c := ClassSession{CapacidadMax: 10}
	if errs := c.Validate(); errs != nil {
		t.Errorf("valid class rejected: %v", errs)
	}

	c = ClassSession{CapacidadMax: 0}
	if errs := c.Validate(); errs["capacidad_max"] == "" {
		t.Error("expected capacidad_max error")
	}
}

func TestEquipmentValidate(t *testing.T) {
	for _, estado := range []string{EquipmentAvailable, EquipmentMaintenance, EquipmentRepair, EquipmentDecommissioned} {
		e := Equipment{Estado: estado}
		if errs := e.Validate(); errs != nil {
			t.Errorf("estado %q rejected: %v", estado, errs)
		}
	}

	e := Equipment{Estado: "roto"}
	if errs := e.Validate(); errs["estado"] == "" {
		t.Error("expected estado error")
	}
}

func TestOwnerUserID(t *testing.T) {
	userID := uint(5)

	member := Member{UserID: &userID}
	if got := member.OwnerUserID(); got == nil || *got != 5 {
		t.Errorf("member owner: got %v", got)
	}

	payment := Payment{Socio: member}
	if got := payment.OwnerUserID(); got == nil || *got != 5 {
		t.Errorf("payment owner: got %v", got)
	}

	unlinked := Member{}
	if got := unlinked.OwnerUserID(); got != nil {
		t.Errorf("unlinked member owner: got %v", got)
	}

	n := Notification{UserID: 5}
	if got := n.OwnerUserID(); got == nil || *got != 5 {
		t.Errorf("notification owner: got %v", got)
	}
}
