package notification

import (
	"context"

	domain "github.com/gimnasioapp/gym-api/internal/domain/notification"
	"github.com/gimnasioapp/gym-api/internal/models"
)

type SettingsUpdate struct {
	EmailNotifications *bool `json:"email_notifications"`
	PushNotifications  *bool `json:"push_notifications"`
	SMSNotifications   *bool `json:"sms_notifications"`

	MembershipsEnabled *bool `json:"memberships_enabled"`
	PaymentsEnabled    *bool `json:"payments_enabled"`
	ClassesEnabled     *bool `json:"classes_enabled"`
	EquipmentEnabled   *bool `json:"equipment_enabled"`
	RemindersEnabled   *bool `json:"reminders_enabled"`
	SystemEnabled      *bool `json:"system_enabled"`

	HighPriorityEnabled   *bool `json:"high_priority_enabled"`
	MediumPriorityEnabled *bool `json:"medium_priority_enabled"`
	LowPriorityEnabled    *bool `json:"low_priority_enabled"`

	QuietHoursStart *string `json:"quiet_hours_start"`
	QuietHoursEnd   *string `json:"quiet_hours_end"`
}

type Settings struct {
	repo domain.Repository
}

func NewSettings(repo domain.Repository) *Settings {
	return &Settings{repo: repo}
}

// Get materializes the user's settings row on first access.
func (uc *Settings) Get(ctx context.Context, userID uint) (*models.NotificationSettings, error) {
	return uc.repo.GetOrCreateSettings(ctx, userID)
}

func (uc *Settings) Update(
	ctx context.Context,
	userID uint,
	in SettingsUpdate,
) (*models.NotificationSettings, error) {

	s, err := uc.repo.GetOrCreateSettings(ctx, userID)
	if err != nil {
		return nil, err
	}

	apply(&s.EmailNotifications, in.EmailNotifications)
	apply(&s.PushNotifications, in.PushNotifications)
	apply(&s.SMSNotifications, in.SMSNotifications)

	apply(&s.MembershipsEnabled, in.MembershipsEnabled)
	apply(&s.PaymentsEnabled, in.PaymentsEnabled)
	apply(&s.ClassesEnabled, in.ClassesEnabled)
	apply(&s.EquipmentEnabled, in.EquipmentEnabled)
	apply(&s.RemindersEnabled, in.RemindersEnabled)
	apply(&s.SystemEnabled, in.SystemEnabled)

	apply(&s.HighPriorityEnabled, in.HighPriorityEnabled)
	apply(&s.MediumPriorityEnabled, in.MediumPriorityEnabled)
	apply(&s.LowPriorityEnabled, in.LowPriorityEnabled)

	if in.QuietHoursStart != nil {
		s.QuietHoursStart = in.QuietHoursStart
	}
	if in.QuietHoursEnd != nil {
		s.QuietHoursEnd = in.QuietHoursEnd
	}

	if err := uc.repo.SaveSettings(ctx, s); err != nil {
		return nil, err
	}
	return s, nil
}

func apply(dst *bool, src *bool) {
	if src != nil {
		*dst = *src
	}
}
