package notification

import (
	"context"
	"time"

	"github.com/gimnasioapp/gym-api/internal/cache"
	domain "github.com/gimnasioapp/gym-api/internal/domain/notification"
	"github.com/gimnasioapp/gym-api/internal/httperr"
	"github.com/gimnasioapp/gym-api/internal/models"
)

type MarkRead struct {
	repo  domain.Repository
	cache *cache.UnreadCache
}

func NewMarkRead(repo domain.Repository, cache *cache.UnreadCache) *MarkRead {
	return &MarkRead{repo: repo, cache: cache}
}

func (uc *MarkRead) Execute(
	ctx context.Context,
	userID uint,
	notificationID uint,
) (*models.Notification, error) {

	n, err := uc.repo.GetForUser(ctx, notificationID, userID)
	if err != nil {
		return nil, httperr.ErrBusiness("notification_not_found")
	}

	if !domain.MarkRead(n, time.Now()) {
		// Already read: nothing to persist.
		return n, nil
	}

	if err := uc.repo.Save(ctx, n); err != nil {
		return nil, err
	}

	uc.cache.Invalidate(ctx, userID)

	return n, nil
}
