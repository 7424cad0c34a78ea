package httperr

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
)

type sampleRequest struct {
	Correo string  `json:"correo" binding:"required,email"`
	Monto  float64 `json:"monto" binding:"required,gt=0"`
	Metodo string  `json:"metodo" binding:"required,oneof=efectivo tarjeta"`
}

func bindAndReport(t *testing.T, body string) (int, map[string]string) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")

	var req sampleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		Binding(c, err)
	}

	var fields map[string]string
	if err := json.Unmarshal(w.Body.Bytes(), &fields); err != nil {
		t.Fatalf("response is not a field map: %v", err)
	}
	return w.Code, fields
}

func TestBindingReportsJSONFieldNames(t *testing.T) {
	code, fields := bindAndReport(t, `{"monto": -5, "metodo": "bitcoin"}`)

	if code != http.StatusBadRequest {
		t.Fatalf("status: got %d want 400", code)
	}
	if fields["correo"] != "Este campo es requerido." {
		t.Errorf("correo: got %q", fields["correo"])
	}
	if fields["monto"] != "Debe ser mayor que 0." {
		t.Errorf("monto: got %q", fields["monto"])
	}
	if !strings.Contains(fields["metodo"], "efectivo") {
		t.Errorf("metodo: got %q", fields["metodo"])
	}
}

func TestBindingEmailMessage(t *testing.T) {
	_, fields := bindAndReport(t, `{"correo": "no-es-correo", "monto": 10, "metodo": "tarjeta"}`)

	if fields["correo"] != "Correo electrónico inválido." {
		t.Errorf("correo: got %q", fields["correo"])
	}
	if _, ok := fields["monto"]; ok {
		t.Error("monto should not be reported")
	}
}

func TestBindingNonValidatorError(t *testing.T) {
	code, fields := bindAndReport(t, `{"monto": "texto"}`)

	if code != http.StatusBadRequest {
		t.Fatalf("status: got %d want 400", code)
	}
	if fields["non_field_errors"] == "" {
		t.Error("expected non_field_errors entry")
	}
}

func TestIsBusiness(t *testing.T) {
	err := ErrBusiness("membership_in_use")

	if !IsBusiness(err, "membership_in_use") {
		t.Error("expected code match")
	}
	if IsBusiness(err, "other_code") {
		t.Error("expected code mismatch")
	}
	if IsBusiness(nil, "membership_in_use") {
		t.Error("nil error should never match")
	}
}
