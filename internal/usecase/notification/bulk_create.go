package notification

import (
	"context"

	"github.com/gimnasioapp/gym-api/internal/cache"
	"github.com/gimnasioapp/gym-api/internal/delivery"
	domain "github.com/gimnasioapp/gym-api/internal/domain/notification"
	"github.com/gimnasioapp/gym-api/internal/models"
)

type BulkCreateInput struct {
	Title       string
	Message     string
	Type        string
	Category    string
	Priority    string
	UserIDs     []uint
	ReferenceID string
}

type BulkCreate struct {
	repo     domain.Repository
	cache    *cache.UnreadCache
	recorder *delivery.Recorder
}

func NewBulkCreate(
	repo domain.Repository,
	cache *cache.UnreadCache,
	recorder *delivery.Recorder,
) *BulkCreate {
	return &BulkCreate{repo: repo, cache: cache, recorder: recorder}
}

// Execute creates one notification per resolvable user id. Ids that do not
// resolve to a user are skipped silently, never failing the batch.
func (uc *BulkCreate) Execute(
	ctx context.Context,
	in BulkCreateInput,
) ([]models.Notification, error) {

	created := make([]models.Notification, 0, len(in.UserIDs))

	for _, userID := range in.UserIDs {
		user, err := uc.repo.GetUser(ctx, userID)
		if err != nil {
			continue
		}

		n := models.Notification{
			UserID:      user.ID,
			Title:       in.Title,
			Message:     in.Message,
			Type:        in.Type,
			Category:    in.Category,
			Priority:    in.Priority,
			ReferenceID: in.ReferenceID,
		}
		if err := uc.repo.Create(ctx, &n); err != nil {
			return nil, err
		}

		uc.cache.Invalidate(ctx, user.ID)
		uc.recorder.Record(delivery.Event{
			NotificationID: n.ID,
			Method:         delivery.MethodInApp,
			Status:         delivery.StatusDelivered,
			Address:        user.Email,
		})

		created = append(created, n)
	}

	return created, nil
}
