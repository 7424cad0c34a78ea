package notification

import (
	"context"
	"testing"
	"time"

	domain "github.com/gimnasioapp/gym-api/internal/domain/notification"
	"github.com/gimnasioapp/gym-api/internal/models"
)

type fakeTriggerData struct {
	templates   []models.NotificationTemplate
	expiring    []models.Member
	unpaid      []models.Member
	enrollments []models.Enrollment
	equipment   []models.Equipment
	staff       []uint
	inactive    []models.Member
	registered  []models.Member
}

func (f *fakeTriggerData) ActiveTemplates(context.Context) ([]models.NotificationTemplate, error) {
	return f.templates, nil
}
func (f *fakeTriggerData) MembersExpiringWithin(context.Context, time.Time, int) ([]models.Member, error) {
	return f.expiring, nil
}
func (f *fakeTriggerData) MembersWithoutPaymentSince(context.Context, time.Time) ([]models.Member, error) {
	return f.unpaid, nil
}
func (f *fakeTriggerData) UpcomingEnrollments(context.Context, time.Time, time.Time) ([]models.Enrollment, error) {
	return f.enrollments, nil
}
func (f *fakeTriggerData) EquipmentUnderMaintenance(context.Context) ([]models.Equipment, error) {
	return f.equipment, nil
}
func (f *fakeTriggerData) StaffUserIDs(context.Context) ([]uint, error) {
	return f.staff, nil
}
func (f *fakeTriggerData) MembersInactiveSince(context.Context, time.Time) ([]models.Member, error) {
	return f.inactive, nil
}
func (f *fakeTriggerData) MembersRegisteredSince(context.Context, time.Time) ([]models.Member, error) {
	return f.registered, nil
}

func linkedMember(userID uint, nombre, membresia string) models.Member {
	return models.Member{
		Nombre:    nombre,
		UserID:    &userID,
		Membresia: models.Membership{Tipo: membresia},
	}
}

func TestEvaluatorRendersMembershipExpiry(t *testing.T) {
	repo := newFakeRepo()
	repo.users[10] = models.User{ID: 10}

	data := &fakeTriggerData{
		templates: []models.NotificationTemplate{{
			ID:               1,
			TriggerType:      string(domain.TriggerMembershipExpiry),
			TitleTemplate:    "Vence tu membresía",
			MessageTemplate:  "Hola {nombre}, tu membresía {membresia} está por vencer",
			NotificationType: "warning",
			Category:         "memberships",
			Priority:         "high",
		}},
		expiring: []models.Member{linkedMember(10, "Juan", "Premium")},
	}

	evaluator := NewEvaluator(data, NewBulkCreate(repo, nil, nil))

	created, err := evaluator.Execute(context.Background(), time.Now())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if created != 1 {
		t.Fatalf("expected 1 notification, got %d", created)
	}

	n := repo.notifications[0]
	if n.UserID != 10 {
		t.Errorf("recipient: got %d want 10", n.UserID)
	}
	if n.Message != "Hola Juan, tu membresía Premium está por vencer" {
		t.Errorf("unexpected message: %q", n.Message)
	}
	if n.ReferenceID != "template:1" {
		t.Errorf("unexpected reference id: %q", n.ReferenceID)
	}
}

func TestEvaluatorSkipsMembersWithoutAccount(t *testing.T) {
	repo := newFakeRepo()

	data := &fakeTriggerData{
		templates: []models.NotificationTemplate{{
			ID:          1,
			TriggerType: string(domain.TriggerPaymentDue),
		}},
		unpaid: []models.Member{{Nombre: "Sin cuenta"}},
	}

	evaluator := NewEvaluator(data, NewBulkCreate(repo, nil, nil))

	created, err := evaluator.Execute(context.Background(), time.Now())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if created != 0 {
		t.Errorf("expected no notifications, got %d", created)
	}
}

func TestEvaluatorFansEquipmentAlertsToStaff(t *testing.T) {
	repo := newFakeRepo()
	repo.users[1] = models.User{ID: 1}
	repo.users[2] = models.User{ID: 2}

	data := &fakeTriggerData{
		templates: []models.NotificationTemplate{{
			ID:              4,
			TriggerType:     string(domain.TriggerEquipmentMaintenance),
			TitleTemplate:   "Equipo fuera de servicio",
			MessageTemplate: "El equipo {equipo} está en estado {estado}",
		}},
		equipment: []models.Equipment{{Nombre: "Elíptica", Estado: "mantenimiento"}},
		staff:     []uint{1, 2},
	}

	evaluator := NewEvaluator(data, NewBulkCreate(repo, nil, nil))

	created, err := evaluator.Execute(context.Background(), time.Now())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if created != 2 {
		t.Fatalf("expected one notification per staff user, got %d", created)
	}
	if repo.notifications[0].Message != "El equipo Elíptica está en estado mantenimiento" {
		t.Errorf("unexpected message: %q", repo.notifications[0].Message)
	}
}

func TestEvaluatorRendersClassReminder(t *testing.T) {
	repo := newFakeRepo()
	repo.users[8] = models.User{ID: 8}

	horario := time.Date(2026, 3, 14, 18, 30, 0, 0, time.UTC)
	userID := uint(8)

	data := &fakeTriggerData{
		templates: []models.NotificationTemplate{{
			ID:              3,
			TriggerType:     string(domain.TriggerClassReminder),
			TitleTemplate:   "Tu clase se acerca",
			MessageTemplate: "{nombre}: {clase} el {fecha}",
		}},
		enrollments: []models.Enrollment{{
			Socio: models.Member{Nombre: "Ana", UserID: &userID},
			Clase: models.ClassSession{Nombre: "Yoga", Horario: horario},
		}},
	}

	evaluator := NewEvaluator(data, NewBulkCreate(repo, nil, nil))

	created, err := evaluator.Execute(context.Background(), time.Now())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if created != 1 {
		t.Fatalf("expected 1 notification, got %d", created)
	}
	if repo.notifications[0].Message != "Ana: Yoga el 14/03/2026 18:30" {
		t.Errorf("unexpected message: %q", repo.notifications[0].Message)
	}
}

func TestEvaluatorIgnoresInactiveTemplatesNotReturned(t *testing.T) {
	repo := newFakeRepo()

	evaluator := NewEvaluator(&fakeTriggerData{}, NewBulkCreate(repo, nil, nil))

	created, err := evaluator.Execute(context.Background(), time.Now())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if created != 0 {
		t.Errorf("expected nothing emitted, got %d", created)
	}
}
