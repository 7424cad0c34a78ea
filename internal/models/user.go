package models

import "time"

type User struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Email        string `gorm:"size:100;uniqueIndex;not null" json:"email"`
	PasswordHash string `gorm:"size:255;not null" json:"-"`
	FirstName    string `gorm:"size:100" json:"first_name"`
	LastName     string `gorm:"size:100" json:"last_name"`

	IsStaff     bool `gorm:"default:false" json:"is_staff"`
	IsSuperuser bool `gorm:"default:false" json:"is_superuser"`
	IsActive    bool `gorm:"default:true" json:"is_active"`

	// One-shot tokens used by the activation and password-reset flows.
	ActivationToken *string `gorm:"size:64" json:"-"`
	ResetToken      *string `gorm:"size:64" json:"-"`

	DateJoined time.Time `gorm:"autoCreateTime" json:"date_joined"`
	UpdatedAt  time.Time `json:"-"`
}
