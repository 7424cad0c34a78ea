package notification

import (
	"context"
	"errors"
	"time"

	domain "github.com/gimnasioapp/gym-api/internal/domain/notification"
	"github.com/gimnasioapp/gym-api/internal/models"
)

// fakeRepo is an in-memory domain.Repository for exercising use cases
// without a database.
type fakeRepo struct {
	notifications []models.Notification
	users         map[uint]models.User
	settings      map[uint]models.NotificationSettings
	nextID        uint
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{
		users:    map[uint]models.User{},
		settings: map[uint]models.NotificationSettings{},
		nextID:   1,
	}
}

func (r *fakeRepo) ListForUser(_ context.Context, userID uint, f domain.ListFilter) ([]models.Notification, error) {
	var out []models.Notification
	for _, n := range r.notifications {
		if n.UserID != userID {
			continue
		}
		if f.Category != "" && n.Category != f.Category {
			continue
		}
		if f.Priority != "" && n.Priority != f.Priority {
			continue
		}
		if f.Read != nil && n.Read != *f.Read {
			continue
		}
		out = append(out, n)
	}
	return out, nil
}

func (r *fakeRepo) GetForUser(_ context.Context, id uint, userID uint) (*models.Notification, error) {
	for i := range r.notifications {
		if r.notifications[i].ID == id && r.notifications[i].UserID == userID {
			n := r.notifications[i]
			return &n, nil
		}
	}
	return nil, errors.New("not found")
}

func (r *fakeRepo) Create(_ context.Context, n *models.Notification) error {
	n.ID = r.nextID
	r.nextID++
	n.CreatedAt = time.Now()
	r.notifications = append(r.notifications, *n)
	return nil
}

func (r *fakeRepo) Save(_ context.Context, n *models.Notification) error {
	for i := range r.notifications {
		if r.notifications[i].ID == n.ID {
			r.notifications[i] = *n
			return nil
		}
	}
	return errors.New("not found")
}

func (r *fakeRepo) DeleteForUser(_ context.Context, id uint, userID uint) error {
	for i := range r.notifications {
		if r.notifications[i].ID == id && r.notifications[i].UserID == userID {
			r.notifications = append(r.notifications[:i], r.notifications[i+1:]...)
			return nil
		}
	}
	return errors.New("not found")
}

func (r *fakeRepo) CountUnread(_ context.Context, userID uint) (int64, error) {
	var count int64
	for _, n := range r.notifications {
		if n.UserID == userID && !n.Read {
			count++
		}
	}
	return count, nil
}

func (r *fakeRepo) MarkAllRead(_ context.Context, userID uint, now time.Time) (int64, error) {
	var count int64
	for i := range r.notifications {
		if r.notifications[i].UserID == userID && !r.notifications[i].Read {
			r.notifications[i].Read = true
			at := now
			r.notifications[i].ReadAt = &at
			count++
		}
	}
	return count, nil
}

func (r *fakeRepo) CountAll(_ context.Context, userID uint) (int64, error) {
	var count int64
	for _, n := range r.notifications {
		if n.UserID == userID {
			count++
		}
	}
	return count, nil
}

func (r *fakeRepo) CountByCategory(_ context.Context, userID uint) (map[string]int64, error) {
	out := map[string]int64{}
	for _, n := range r.notifications {
		if n.UserID == userID {
			out[n.Category]++
		}
	}
	return out, nil
}

func (r *fakeRepo) CountByPriority(_ context.Context, userID uint) (map[string]int64, error) {
	out := map[string]int64{}
	for _, n := range r.notifications {
		if n.UserID == userID {
			out[n.Priority]++
		}
	}
	return out, nil
}

func (r *fakeRepo) Recent(_ context.Context, userID uint, limit int) ([]models.Notification, error) {
	var out []models.Notification
	for i := len(r.notifications) - 1; i >= 0 && len(out) < limit; i-- {
		if r.notifications[i].UserID == userID {
			out = append(out, r.notifications[i])
		}
	}
	return out, nil
}

func (r *fakeRepo) GetUser(_ context.Context, id uint) (*models.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, errors.New("not found")
	}
	return &u, nil
}

func (r *fakeRepo) GetOrCreateSettings(_ context.Context, userID uint) (*models.NotificationSettings, error) {
	if s, ok := r.settings[userID]; ok {
		return &s, nil
	}
	s := domain.DefaultSettings(userID)
	r.settings[userID] = s
	return &s, nil
}

func (r *fakeRepo) SaveSettings(_ context.Context, s *models.NotificationSettings) error {
	r.settings[s.UserID] = *s
	return nil
}
