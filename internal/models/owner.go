package models

// Each protected entity declares here how its owning account is resolved.
// The authz package only ever sees this interface, so there is no runtime
// shape inspection anywhere.

func (m *Member) OwnerUserID() *uint { return m.UserID }

func (p *Payment) OwnerUserID() *uint { return p.Socio.UserID }

func (a *Attendance) OwnerUserID() *uint { return a.Socio.UserID }

func (e *Enrollment) OwnerUserID() *uint { return e.Socio.UserID }

func (n *Notification) OwnerUserID() *uint { return &n.UserID }

func (s *NotificationSettings) OwnerUserID() *uint { return &s.UserID }
