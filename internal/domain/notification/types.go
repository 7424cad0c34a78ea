package notification

// ===============================
// Notification enums
// ===============================

type Type string

const (
	TypeInfo    Type = "info"
	TypeSuccess Type = "success"
	TypeWarning Type = "warning"
	TypeError   Type = "error"
)

type Category string

const (
	CategoryMemberships Category = "memberships"
	CategoryPayments    Category = "payments"
	CategoryClasses     Category = "classes"
	CategoryEquipment   Category = "equipment"
	CategoryReminders   Category = "reminders"
	CategorySystem      Category = "system"
)

type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
)

type TriggerType string

const (
	TriggerMembershipExpiry     TriggerType = "membership_expiry"
	TriggerPaymentDue           TriggerType = "payment_due"
	TriggerClassReminder        TriggerType = "class_reminder"
	TriggerEquipmentMaintenance TriggerType = "equipment_maintenance"
	TriggerLowAttendance        TriggerType = "low_attendance"
	TriggerNewMember            TriggerType = "new_member"
)

func ValidType(t string) bool {
	switch Type(t) {
	case TypeInfo, TypeSuccess, TypeWarning, TypeError:
		return true
	}
	return false
}

func ValidCategory(c string) bool {
	switch Category(c) {
	case CategoryMemberships, CategoryPayments, CategoryClasses,
		CategoryEquipment, CategoryReminders, CategorySystem:
		return true
	}
	return false
}

func ValidPriority(p string) bool {
	switch Priority(p) {
	case PriorityLow, PriorityMedium, PriorityHigh:
		return true
	}
	return false
}

func ValidTriggerType(t string) bool {
	switch TriggerType(t) {
	case TriggerMembershipExpiry, TriggerPaymentDue, TriggerClassReminder,
		TriggerEquipmentMaintenance, TriggerLowAttendance, TriggerNewMember:
		return true
	}
	return false
}
