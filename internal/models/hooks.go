package models

import (
	"fmt"

	"gorm.io/gorm"
)

// The Validate methods also run as BeforeSave hooks, so writes that skip
// the handlers (seed routines, future code) hit the same invariants.

func fieldsError(errs map[string]string) error {
	for field, msg := range errs {
		return fmt.Errorf("%s: %s", field, msg)
	}
	return nil
}

func (m *Membership) BeforeSave(*gorm.DB) error {
	return fieldsError(m.Validate())
}

func (c *ClassSession) BeforeSave(*gorm.DB) error {
	return fieldsError(c.Validate())
}

func (p *Payment) BeforeSave(*gorm.DB) error {
	return fieldsError(p.Validate())
}

func (e *Equipment) BeforeSave(*gorm.DB) error {
	return fieldsError(e.Validate())
}
