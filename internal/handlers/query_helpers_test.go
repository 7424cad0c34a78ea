package handlers

import "testing"

func TestOrderClause(t *testing.T) {
	allowed := map[string]string{"fecha_pago": "fecha_pago", "monto": "monto"}

	cases := []struct {
		name  string
		param string
		want  string
	}{
		{"ascending", "monto", "monto ASC"},
		{"descending", "-fecha_pago", "fecha_pago DESC"},
		{"unknown field", "otro", "id ASC"},
		{"empty", "", "id ASC"},
		{"bare dash", "-", "id ASC"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := orderClause(tc.param, allowed, "id ASC")
			if got != tc.want {
				t.Errorf("orderClause(%q): got %q want %q", tc.param, got, tc.want)
			}
		})
	}
}

func TestParseDate(t *testing.T) {
	d, ok := parseDate("2026-03-14")
	if !ok {
		t.Fatal("expected valid date")
	}
	if d.Year() != 2026 || d.Month() != 3 || d.Day() != 14 {
		t.Errorf("unexpected date: %v", d)
	}

	if _, ok := parseDate("14/03/2026"); ok {
		t.Error("expected rejection of non ISO date")
	}
	if _, ok := parseDate(""); ok {
		t.Error("expected rejection of empty date")
	}
}

func TestNotificationFields(t *testing.T) {
	if fields := notificationFields("info", "system", "medium"); len(fields) != 0 {
		t.Errorf("valid combination rejected: %v", fields)
	}

	fields := notificationFields("banana", "system", "urgent")
	if _, ok := fields["notification_type"]; !ok {
		t.Error("expected notification_type error")
	}
	if _, ok := fields["priority"]; !ok {
		t.Error("expected priority error")
	}
	if _, ok := fields["category"]; ok {
		t.Error("category should be accepted")
	}
}
