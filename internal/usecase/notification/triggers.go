package notification

import (
	"context"
	"fmt"
	"time"

	domain "github.com/gimnasioapp/gym-api/internal/domain/notification"
	"github.com/gimnasioapp/gym-api/internal/models"
)

// TriggerData supplies the queries each trigger rule matches against.
type TriggerData interface {
	ActiveTemplates(ctx context.Context) ([]models.NotificationTemplate, error)

	MembersExpiringWithin(ctx context.Context, now time.Time, days int) ([]models.Member, error)
	MembersWithoutPaymentSince(ctx context.Context, since time.Time) ([]models.Member, error)
	UpcomingEnrollments(ctx context.Context, now, until time.Time) ([]models.Enrollment, error)
	EquipmentUnderMaintenance(ctx context.Context) ([]models.Equipment, error)
	StaffUserIDs(ctx context.Context) ([]uint, error)
	MembersInactiveSince(ctx context.Context, since time.Time) ([]models.Member, error)
	MembersRegisteredSince(ctx context.Context, since time.Time) ([]models.Member, error)
}

// Trigger rule windows.
const (
	expiryWindowDays    = 7
	paymentDueDays      = 30
	classReminderWindow = 24 * time.Hour
	lowAttendanceDays   = 14
	newMemberWindow     = 24 * time.Hour
)

// Evaluator matches active templates against current data and emits
// notifications through the bulk-create contract. It runs on demand (see
// cmd/triggers); there is no in-process scheduler.
type Evaluator struct {
	data   TriggerData
	create *BulkCreate
}

func NewEvaluator(data TriggerData, create *BulkCreate) *Evaluator {
	return &Evaluator{data: data, create: create}
}

type target struct {
	userID uint
	vars   map[string]string
}

// Execute evaluates every active template once and returns how many
// notifications were emitted.
func (uc *Evaluator) Execute(ctx context.Context, now time.Time) (int, error) {
	templates, err := uc.data.ActiveTemplates(ctx)
	if err != nil {
		return 0, err
	}

	emitted := 0
	for _, tmpl := range templates {
		targets, err := uc.matchTargets(ctx, domain.TriggerType(tmpl.TriggerType), now)
		if err != nil {
			return emitted, err
		}

		for _, tg := range targets {
			created, err := uc.create.Execute(ctx, BulkCreateInput{
				Title:       domain.Render(tmpl.TitleTemplate, tg.vars),
				Message:     domain.Render(tmpl.MessageTemplate, tg.vars),
				Type:        tmpl.NotificationType,
				Category:    tmpl.Category,
				Priority:    tmpl.Priority,
				UserIDs:     []uint{tg.userID},
				ReferenceID: fmt.Sprintf("template:%d", tmpl.ID),
			})
			if err != nil {
				return emitted, err
			}
			emitted += len(created)
		}
	}
	return emitted, nil
}

func (uc *Evaluator) matchTargets(
	ctx context.Context,
	trigger domain.TriggerType,
	now time.Time,
) ([]target, error) {

	switch trigger {
	case domain.TriggerMembershipExpiry:
		members, err := uc.data.MembersExpiringWithin(ctx, now, expiryWindowDays)
		if err != nil {
			return nil, err
		}
		return memberTargets(members), nil

	case domain.TriggerPaymentDue:
		members, err := uc.data.MembersWithoutPaymentSince(ctx, now.AddDate(0, 0, -paymentDueDays))
		if err != nil {
			return nil, err
		}
		return memberTargets(members), nil

	case domain.TriggerClassReminder:
		enrollments, err := uc.data.UpcomingEnrollments(ctx, now, now.Add(classReminderWindow))
		if err != nil {
			return nil, err
		}
		var targets []target
		for _, e := range enrollments {
			if e.Socio.UserID == nil {
				continue
			}
			targets = append(targets, target{
				userID: *e.Socio.UserID,
				vars: map[string]string{
					"nombre": e.Socio.Nombre,
					"clase":  e.Clase.Nombre,
					"fecha":  e.Clase.Horario.Format("02/01/2006 15:04"),
				},
			})
		}
		return targets, nil

	case domain.TriggerEquipmentMaintenance:
		equipment, err := uc.data.EquipmentUnderMaintenance(ctx)
		if err != nil {
			return nil, err
		}
		if len(equipment) == 0 {
			return nil, nil
		}
		// Equipment has no owner: maintenance alerts fan out to staff.
		staff, err := uc.data.StaffUserIDs(ctx)
		if err != nil {
			return nil, err
		}
		var targets []target
		for _, eq := range equipment {
			for _, userID := range staff {
				targets = append(targets, target{
					userID: userID,
					vars: map[string]string{
						"equipo": eq.Nombre,
						"estado": eq.Estado,
					},
				})
			}
		}
		return targets, nil

	case domain.TriggerLowAttendance:
		members, err := uc.data.MembersInactiveSince(ctx, now.AddDate(0, 0, -lowAttendanceDays))
		if err != nil {
			return nil, err
		}
		return memberTargets(members), nil

	case domain.TriggerNewMember:
		members, err := uc.data.MembersRegisteredSince(ctx, now.Add(-newMemberWindow))
		if err != nil {
			return nil, err
		}
		return memberTargets(members), nil
	}

	return nil, nil
}

func memberTargets(members []models.Member) []target {
	var targets []target
	for _, m := range members {
		if m.UserID == nil {
			continue
		}
		targets = append(targets, target{
			userID: *m.UserID,
			vars: map[string]string{
				"nombre":    m.Nombre,
				"membresia": m.Membresia.Tipo,
			},
		})
	}
	return targets
}
