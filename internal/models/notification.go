package models

import "time"

type Notification struct {
	ID uint `gorm:"primaryKey" json:"notification_id"`

	UserID uint `gorm:"not null;index:idx_user_read" json:"user_id"`
	User   User `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`

	Title   string `gorm:"size:200;not null" json:"title"`
	Message string `gorm:"type:text" json:"message"`

	Type     string `gorm:"size:20;not null;default:'info';column:notification_type" json:"notification_type"`
	Category string `gorm:"size:20;not null;default:'system';index" json:"category"`
	Priority string `gorm:"size:10;not null;default:'medium';index" json:"priority"`

	Read      bool       `gorm:"default:false;index:idx_user_read" json:"read"`
	CreatedAt time.Time  `gorm:"autoCreateTime;index" json:"created_at"`
	ReadAt    *time.Time `json:"read_at"`

	// Optional references to other records.
	SocioID     *uint   `json:"-"`
	Socio       *Member `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"socio,omitempty"`
	ReferenceID string  `gorm:"size:100" json:"reference_id,omitempty"`
}

type NotificationSettings struct {
	ID uint `gorm:"primaryKey" json:"-"`

	UserID uint `gorm:"uniqueIndex;not null" json:"-"`
	User   User `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`

	EmailNotifications bool `gorm:"default:true" json:"email_notifications"`
	PushNotifications  bool `gorm:"default:true" json:"push_notifications"`
	SMSNotifications   bool `gorm:"default:false" json:"sms_notifications"`

	MembershipsEnabled bool `gorm:"default:true" json:"memberships_enabled"`
	PaymentsEnabled    bool `gorm:"default:true" json:"payments_enabled"`
	ClassesEnabled     bool `gorm:"default:true" json:"classes_enabled"`
	EquipmentEnabled   bool `gorm:"default:true" json:"equipment_enabled"`
	RemindersEnabled   bool `gorm:"default:true" json:"reminders_enabled"`
	SystemEnabled      bool `gorm:"default:true" json:"system_enabled"`

	HighPriorityEnabled   bool `gorm:"default:true" json:"high_priority_enabled"`
	MediumPriorityEnabled bool `gorm:"default:true" json:"medium_priority_enabled"`
	LowPriorityEnabled    bool `gorm:"default:false" json:"low_priority_enabled"`

	// Preference only: no delivery mechanism consults these yet.
	QuietHoursStart *string `gorm:"size:5" json:"quiet_hours_start"`
	QuietHoursEnd   *string `gorm:"size:5" json:"quiet_hours_end"`

	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`
}

type NotificationTemplate struct {
	ID uint `gorm:"primaryKey" json:"template_id"`

	Name        string `gorm:"size:100;not null" json:"name"`
	TriggerType string `gorm:"size:30;not null" json:"trigger_type"`

	TitleTemplate   string `gorm:"size:200;not null" json:"title_template"`
	MessageTemplate string `gorm:"type:text;not null" json:"message_template"`

	NotificationType string `gorm:"size:20;not null" json:"notification_type"`
	Category         string `gorm:"size:20;not null" json:"category"`
	Priority         string `gorm:"size:10;not null" json:"priority"`

	IsActive bool `gorm:"default:true" json:"is_active"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type NotificationLog struct {
	ID uint `gorm:"primaryKey" json:"log_id"`

	NotificationID uint         `gorm:"not null" json:"-"`
	Notification   Notification `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"notification"`

	DeliveryMethod  string `gorm:"size:20;not null" json:"delivery_method"`
	DeliveryStatus  string `gorm:"size:20;not null;default:'pending'" json:"delivery_status"`
	DeliveryAddress string `gorm:"size:255" json:"delivery_address"`
	ErrorMessage    string `gorm:"type:text" json:"error_message,omitempty"`

	SentAt      time.Time  `gorm:"autoCreateTime" json:"sent_at"`
	DeliveredAt *time.Time `json:"delivered_at"`
}
