package notification

import (
	"fmt"
	"time"

	"github.com/gimnasioapp/gym-api/internal/models"
)

// ===============================
// Domain actions
// ===============================

// MarkRead is idempotent: an already-read notification keeps its read_at.
func MarkRead(n *models.Notification, now time.Time) bool {
	if n.Read {
		return false
	}
	n.Read = true
	n.ReadAt = &now
	return true
}

// DefaultSettings are materialized lazily on a user's first access:
// every channel on except SMS, every category on, low priority off.
func DefaultSettings(userID uint) models.NotificationSettings {
	return models.NotificationSettings{
		UserID: userID,

		EmailNotifications: true,
		PushNotifications:  true,
		SMSNotifications:   false,

		MembershipsEnabled: true,
		PaymentsEnabled:    true,
		ClassesEnabled:     true,
		EquipmentEnabled:   true,
		RemindersEnabled:   true,
		SystemEnabled:      true,

		HighPriorityEnabled:   true,
		MediumPriorityEnabled: true,
		LowPriorityEnabled:    false,
	}
}

// TimeAgo renders the human-readable age shown next to each notification.
func TimeAgo(createdAt, now time.Time) string {
	diff := now.Sub(createdAt)

	switch {
	case diff >= 24*time.Hour:
		days := int(diff.Hours() / 24)
		return fmt.Sprintf("hace %d día%s", days, plural(days))
	case diff >= time.Hour:
		hours := int(diff.Hours())
		return fmt.Sprintf("hace %d hora%s", hours, plural(hours))
	case diff >= time.Minute:
		minutes := int(diff.Minutes())
		return fmt.Sprintf("hace %d minuto%s", minutes, plural(minutes))
	}
	return "hace unos segundos"
}

func plural(n int) string {
	if n > 1 {
		return "s"
	}
	return ""
}
