package notification

import (
	"context"
	"time"

	"github.com/gimnasioapp/gym-api/internal/models"
)

// ListFilter narrows a user's notification feed.
type ListFilter struct {
	Category string
	Priority string
	Read     *bool
}

type Repository interface {
	// -------- Notifications --------
	ListForUser(ctx context.Context, userID uint, f ListFilter) ([]models.Notification, error)
	GetForUser(ctx context.Context, id uint, userID uint) (*models.Notification, error)
	Create(ctx context.Context, n *models.Notification) error
	Save(ctx context.Context, n *models.Notification) error
	DeleteForUser(ctx context.Context, id uint, userID uint) error

	// -------- Read state --------
	CountUnread(ctx context.Context, userID uint) (int64, error)
	MarkAllRead(ctx context.Context, userID uint, now time.Time) (int64, error)

	// -------- Stats --------
	CountAll(ctx context.Context, userID uint) (int64, error)
	CountByCategory(ctx context.Context, userID uint) (map[string]int64, error)
	CountByPriority(ctx context.Context, userID uint) (map[string]int64, error)
	Recent(ctx context.Context, userID uint, limit int) ([]models.Notification, error)

	// -------- Users --------
	GetUser(ctx context.Context, id uint) (*models.User, error)

	// -------- Settings --------
	GetOrCreateSettings(ctx context.Context, userID uint) (*models.NotificationSettings, error)
	SaveSettings(ctx context.Context, s *models.NotificationSettings) error
}
