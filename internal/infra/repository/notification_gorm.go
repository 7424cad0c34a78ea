package repository

import (
	"context"
	"time"

	"gorm.io/gorm"

	domain "github.com/gimnasioapp/gym-api/internal/domain/notification"
	"github.com/gimnasioapp/gym-api/internal/models"
)

type NotificationGormRepository struct {
	db *gorm.DB
}

func NewNotificationGormRepository(db *gorm.DB) *NotificationGormRepository {
	return &NotificationGormRepository{db: db}
}

func (r *NotificationGormRepository) scoped(ctx context.Context, userID uint) *gorm.DB {
	return r.db.WithContext(ctx).
		Model(&models.Notification{}).
		Where("user_id = ?", userID)
}

// --------------------------------------------------
// Notifications
// --------------------------------------------------

func (r *NotificationGormRepository) ListForUser(
	ctx context.Context,
	userID uint,
	f domain.ListFilter,
) ([]models.Notification, error) {

	q := r.scoped(ctx, userID)

	if f.Category != "" {
		q = q.Where("category = ?", f.Category)
	}
	if f.Priority != "" {
		q = q.Where("priority = ?", f.Priority)
	}
	if f.Read != nil {
		q = q.Where("read = ?", *f.Read)
	}

	var list []models.Notification
	if err := q.
		Preload("Socio").
		Order("created_at DESC").
		Find(&list).Error; err != nil {
		return nil, err
	}
	return list, nil
}

func (r *NotificationGormRepository) GetForUser(
	ctx context.Context,
	id uint,
	userID uint,
) (*models.Notification, error) {

	var n models.Notification
	if err := r.db.WithContext(ctx).
		Preload("Socio").
		Where("id = ? AND user_id = ?", id, userID).
		First(&n).Error; err != nil {
		return nil, err
	}
	return &n, nil
}

func (r *NotificationGormRepository) Create(ctx context.Context, n *models.Notification) error {
	return r.db.WithContext(ctx).Create(n).Error
}

func (r *NotificationGormRepository) Save(ctx context.Context, n *models.Notification) error {
	return r.db.WithContext(ctx).Save(n).Error
}

func (r *NotificationGormRepository) DeleteForUser(ctx context.Context, id uint, userID uint) error {
	res := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		Delete(&models.Notification{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// --------------------------------------------------
// Read state
// --------------------------------------------------

func (r *NotificationGormRepository) CountUnread(ctx context.Context, userID uint) (int64, error) {
	var count int64
	err := r.scoped(ctx, userID).Where("read = ?", false).Count(&count).Error
	return count, err
}

// MarkAllRead is a single bulk UPDATE: it applies fully or not at all.
func (r *NotificationGormRepository) MarkAllRead(
	ctx context.Context,
	userID uint,
	now time.Time,
) (int64, error) {

	res := r.scoped(ctx, userID).
		Where("read = ?", false).
		Updates(map[string]interface{}{
			"read":    true,
			"read_at": now,
		})
	return res.RowsAffected, res.Error
}

// --------------------------------------------------
// Stats
// --------------------------------------------------

func (r *NotificationGormRepository) CountAll(ctx context.Context, userID uint) (int64, error) {
	var count int64
	err := r.scoped(ctx, userID).Count(&count).Error
	return count, err
}

type groupCount struct {
	Key   string
	Count int64
}

func (r *NotificationGormRepository) countGrouped(
	ctx context.Context,
	userID uint,
	column string,
) (map[string]int64, error) {

	var rows []groupCount
	if err := r.scoped(ctx, userID).
		Select(column + " AS key, COUNT(*) AS count").
		Group(column).
		Scan(&rows).Error; err != nil {
		return nil, err
	}

	out := make(map[string]int64, len(rows))
	for _, row := range rows {
		out[row.Key] = row.Count
	}
	return out, nil
}

func (r *NotificationGormRepository) CountByCategory(ctx context.Context, userID uint) (map[string]int64, error) {
	return r.countGrouped(ctx, userID, "category")
}

func (r *NotificationGormRepository) CountByPriority(ctx context.Context, userID uint) (map[string]int64, error) {
	return r.countGrouped(ctx, userID, "priority")
}

func (r *NotificationGormRepository) Recent(
	ctx context.Context,
	userID uint,
	limit int,
) ([]models.Notification, error) {

	var list []models.Notification
	if err := r.scoped(ctx, userID).
		Preload("Socio").
		Order("created_at DESC").
		Limit(limit).
		Find(&list).Error; err != nil {
		return nil, err
	}
	return list, nil
}

// --------------------------------------------------
// Users
// --------------------------------------------------

func (r *NotificationGormRepository) GetUser(ctx context.Context, id uint) (*models.User, error) {
	var user models.User
	if err := r.db.WithContext(ctx).First(&user, id).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// --------------------------------------------------
// Settings
// --------------------------------------------------

func (r *NotificationGormRepository) GetOrCreateSettings(
	ctx context.Context,
	userID uint,
) (*models.NotificationSettings, error) {

	var settings models.NotificationSettings
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		First(&settings).Error

	if err == nil {
		return &settings, nil
	}
	if err != gorm.ErrRecordNotFound {
		return nil, err
	}

	settings = domain.DefaultSettings(userID)
	if err := r.db.WithContext(ctx).Create(&settings).Error; err != nil {
		return nil, err
	}
	return &settings, nil
}

func (r *NotificationGormRepository) SaveSettings(
	ctx context.Context,
	s *models.NotificationSettings,
) error {
	return r.db.WithContext(ctx).Save(s).Error
}
