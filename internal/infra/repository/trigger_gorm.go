package repository

import (
	"context"
	"time"

	"github.com/gimnasioapp/gym-api/internal/models"
)

// Trigger rule queries, matched by the notification evaluator.

func (r *NotificationGormRepository) ActiveTemplates(
	ctx context.Context,
) ([]models.NotificationTemplate, error) {

	var templates []models.NotificationTemplate
	if err := r.db.WithContext(ctx).
		Where("is_active = ?", true).
		Find(&templates).Error; err != nil {
		return nil, err
	}
	return templates, nil
}

// MembersExpiringWithin finds members whose membership term, counted from
// fecha_registro plus duracion_meses, ends within the given window.
func (r *NotificationGormRepository) MembersExpiringWithin(
	ctx context.Context,
	now time.Time,
	days int,
) ([]models.Member, error) {

	until := now.AddDate(0, 0, days)

	var members []models.Member
	if err := r.db.WithContext(ctx).
		Preload("Membresia").
		Joins("JOIN memberships ON memberships.id = members.membresia_id").
		Where(
			"members.fecha_registro + (memberships.duracion_meses || ' months')::interval BETWEEN ? AND ?",
			now, until,
		).
		Find(&members).Error; err != nil {
		return nil, err
	}
	return members, nil
}

func (r *NotificationGormRepository) MembersWithoutPaymentSince(
	ctx context.Context,
	since time.Time,
) ([]models.Member, error) {

	var members []models.Member
	if err := r.db.WithContext(ctx).
		Preload("Membresia").
		Where(
			"id NOT IN (?)",
			r.db.Model(&models.Payment{}).
				Select("socio_id").
				Where("fecha_pago >= ?", since),
		).
		Find(&members).Error; err != nil {
		return nil, err
	}
	return members, nil
}

func (r *NotificationGormRepository) UpcomingEnrollments(
	ctx context.Context,
	now, until time.Time,
) ([]models.Enrollment, error) {

	var enrollments []models.Enrollment
	if err := r.db.WithContext(ctx).
		Preload("Socio").
		Preload("Clase").
		Joins("JOIN class_sessions ON class_sessions.id = socio_clases.clase_id").
		Where("class_sessions.horario BETWEEN ? AND ?", now, until).
		Find(&enrollments).Error; err != nil {
		return nil, err
	}
	return enrollments, nil
}

func (r *NotificationGormRepository) EquipmentUnderMaintenance(
	ctx context.Context,
) ([]models.Equipment, error) {

	var equipment []models.Equipment
	if err := r.db.WithContext(ctx).
		Where("estado IN ?", []string{models.EquipmentMaintenance, models.EquipmentRepair}).
		Find(&equipment).Error; err != nil {
		return nil, err
	}
	return equipment, nil
}

func (r *NotificationGormRepository) MembersInactiveSince(
	ctx context.Context,
	since time.Time,
) ([]models.Member, error) {

	var members []models.Member
	if err := r.db.WithContext(ctx).
		Preload("Membresia").
		Where(
			"id NOT IN (?)",
			r.db.Model(&models.Attendance{}).
				Select("socio_id").
				Where("fecha_entrada >= ?", since),
		).
		Find(&members).Error; err != nil {
		return nil, err
	}
	return members, nil
}

func (r *NotificationGormRepository) MembersRegisteredSince(
	ctx context.Context,
	since time.Time,
) ([]models.Member, error) {

	var members []models.Member
	if err := r.db.WithContext(ctx).
		Preload("Membresia").
		Where("fecha_registro >= ?", since).
		Find(&members).Error; err != nil {
		return nil, err
	}
	return members, nil
}

func (r *NotificationGormRepository) StaffUserIDs(ctx context.Context) ([]uint, error) {
	var ids []uint
	if err := r.db.WithContext(ctx).
		Model(&models.User{}).
		Where("is_staff = ? AND is_active = ?", true, true).
		Pluck("id", &ids).Error; err != nil {
		return nil, err
	}
	return ids, nil
}
