package dto

import (
	"time"

	domain "github.com/gimnasioapp/gym-api/internal/domain/notification"
	"github.com/gimnasioapp/gym-api/internal/models"
)

// Read-side shapes: the base model plus the denormalized names the clients
// render in lists. Associations must be preloaded by the caller.

type ClassResponse struct {
	models.ClassSession
	EntrenadorNombre string `json:"entrenador_nombre"`
}

func FromClass(c models.ClassSession) ClassResponse {
	return ClassResponse{ClassSession: c, EntrenadorNombre: c.Entrenador.Nombre}
}

func FromClasses(list []models.ClassSession) []ClassResponse {
	out := make([]ClassResponse, len(list))
	for i, c := range list {
		out[i] = FromClass(c)
	}
	return out
}

type MemberResponse struct {
	models.Member
	MembresiaTipo string `json:"membresia_tipo"`
}

func FromMember(m models.Member) MemberResponse {
	return MemberResponse{Member: m, MembresiaTipo: m.Membresia.Tipo}
}

func FromMembers(list []models.Member) []MemberResponse {
	out := make([]MemberResponse, len(list))
	for i, m := range list {
		out[i] = FromMember(m)
	}
	return out
}

type PaymentResponse struct {
	models.Payment
	SocioNombre string `json:"socio_nombre"`
}

func FromPayment(p models.Payment) PaymentResponse {
	return PaymentResponse{Payment: p, SocioNombre: p.Socio.Nombre}
}

func FromPayments(list []models.Payment) []PaymentResponse {
	out := make([]PaymentResponse, len(list))
	for i, p := range list {
		out[i] = FromPayment(p)
	}
	return out
}

type AttendanceResponse struct {
	models.Attendance
	SocioNombre string `json:"socio_nombre"`
}

func FromAttendance(a models.Attendance) AttendanceResponse {
	return AttendanceResponse{Attendance: a, SocioNombre: a.Socio.Nombre}
}

func FromAttendances(list []models.Attendance) []AttendanceResponse {
	out := make([]AttendanceResponse, len(list))
	for i, a := range list {
		out[i] = FromAttendance(a)
	}
	return out
}

type EnrollmentResponse struct {
	models.Enrollment
	SocioNombre string `json:"socio_nombre"`
	ClaseNombre string `json:"clase_nombre"`
}

func FromEnrollment(e models.Enrollment) EnrollmentResponse {
	return EnrollmentResponse{
		Enrollment:  e,
		SocioNombre: e.Socio.Nombre,
		ClaseNombre: e.Clase.Nombre,
	}
}

func FromEnrollments(list []models.Enrollment) []EnrollmentResponse {
	out := make([]EnrollmentResponse, len(list))
	for i, e := range list {
		out[i] = FromEnrollment(e)
	}
	return out
}

type NotificationResponse struct {
	models.Notification
	TimeAgo string `json:"time_ago"`
}

func FromNotification(n models.Notification) NotificationResponse {
	return NotificationResponse{
		Notification: n,
		TimeAgo:      domain.TimeAgo(n.CreatedAt, time.Now()),
	}
}

func FromNotifications(list []models.Notification) []NotificationResponse {
	out := make([]NotificationResponse, len(list))
	for i, n := range list {
		out[i] = FromNotification(n)
	}
	return out
}
