package notification

import (
	"context"

	domain "github.com/gimnasioapp/gym-api/internal/domain/notification"
	"github.com/gimnasioapp/gym-api/internal/models"
)

const recentLimit = 5

type StatsResult struct {
	Total      int64                 `json:"total_notifications"`
	Unread     int64                 `json:"unread_notifications"`
	ByCategory map[string]int64      `json:"notifications_by_category"`
	ByPriority map[string]int64      `json:"notifications_by_priority"`
	Recent     []models.Notification `json:"recent_notifications"`
}

type Stats struct {
	repo domain.Repository
}

func NewStats(repo domain.Repository) *Stats {
	return &Stats{repo: repo}
}

func (uc *Stats) Execute(ctx context.Context, userID uint) (*StatsResult, error) {
	total, err := uc.repo.CountAll(ctx, userID)
	if err != nil {
		return nil, err
	}

	unread, err := uc.repo.CountUnread(ctx, userID)
	if err != nil {
		return nil, err
	}

	byCategory, err := uc.repo.CountByCategory(ctx, userID)
	if err != nil {
		return nil, err
	}

	byPriority, err := uc.repo.CountByPriority(ctx, userID)
	if err != nil {
		return nil, err
	}

	recent, err := uc.repo.Recent(ctx, userID, recentLimit)
	if err != nil {
		return nil, err
	}

	return &StatsResult{
		Total:      total,
		Unread:     unread,
		ByCategory: byCategory,
		ByPriority: byPriority,
		Recent:     recent,
	}, nil
}
