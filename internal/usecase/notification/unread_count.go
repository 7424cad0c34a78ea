package notification

import (
	"context"

	"github.com/gimnasioapp/gym-api/internal/cache"
	domain "github.com/gimnasioapp/gym-api/internal/domain/notification"
)

type UnreadCount struct {
	repo  domain.Repository
	cache *cache.UnreadCache
}

func NewUnreadCount(repo domain.Repository, cache *cache.UnreadCache) *UnreadCount {
	return &UnreadCount{repo: repo, cache: cache}
}

func (uc *UnreadCount) Execute(ctx context.Context, userID uint) (int64, error) {
	if count, ok := uc.cache.Get(ctx, userID); ok {
		return count, nil
	}

	count, err := uc.repo.CountUnread(ctx, userID)
	if err != nil {
		return 0, err
	}

	uc.cache.Set(ctx, userID, count)

	return count, nil
}
