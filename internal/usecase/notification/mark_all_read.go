package notification

import (
	"context"
	"time"

	"github.com/gimnasioapp/gym-api/internal/cache"
	domain "github.com/gimnasioapp/gym-api/internal/domain/notification"
)

type MarkAllRead struct {
	repo  domain.Repository
	cache *cache.UnreadCache
}

func NewMarkAllRead(repo domain.Repository, cache *cache.UnreadCache) *MarkAllRead {
	return &MarkAllRead{repo: repo, cache: cache}
}

// Execute bulk-marks every unread notification of userID and returns how
// many rows changed. Other users' notifications are never touched.
func (uc *MarkAllRead) Execute(ctx context.Context, userID uint) (int64, error) {
	updated, err := uc.repo.MarkAllRead(ctx, userID, time.Now())
	if err != nil {
		return 0, err
	}

	uc.cache.Invalidate(ctx, userID)

	return updated, nil
}
