package notification

import (
	"context"
	"testing"
	"time"

	"github.com/gimnasioapp/gym-api/internal/httperr"
	"github.com/gimnasioapp/gym-api/internal/models"
)

func TestMarkReadPersistsReadState(t *testing.T) {
	repo := newFakeRepo()
	n := models.Notification{UserID: 1, Title: "t", Message: "m"}
	repo.Create(context.Background(), &n)

	uc := NewMarkRead(repo, nil)

	got, err := uc.Execute(context.Background(), 1, n.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !got.Read || got.ReadAt == nil {
		t.Error("expected notification marked read with read_at set")
	}

	stored, _ := repo.GetForUser(context.Background(), n.ID, 1)
	if !stored.Read {
		t.Error("expected read state persisted")
	}
}

func TestMarkReadKeepsOriginalReadAt(t *testing.T) {
	repo := newFakeRepo()
	first := time.Now().Add(-time.Hour)
	n := models.Notification{UserID: 1, Read: true, ReadAt: &first}
	repo.Create(context.Background(), &n)

	uc := NewMarkRead(repo, nil)

	got, err := uc.Execute(context.Background(), 1, n.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !got.ReadAt.Equal(first) {
		t.Errorf("read_at changed: got %v want %v", got.ReadAt, first)
	}
}

func TestMarkReadRejectsOtherUsersNotification(t *testing.T) {
	repo := newFakeRepo()
	n := models.Notification{UserID: 2}
	repo.Create(context.Background(), &n)

	uc := NewMarkRead(repo, nil)

	_, err := uc.Execute(context.Background(), 1, n.ID)
	if !httperr.IsBusiness(err, "notification_not_found") {
		t.Errorf("expected notification_not_found, got %v", err)
	}
}

func TestMarkAllReadCountsOnlyOwnUnread(t *testing.T) {
	repo := newFakeRepo()
	ctx := context.Background()
	repo.Create(ctx, &models.Notification{UserID: 1})
	repo.Create(ctx, &models.Notification{UserID: 1})
	repo.Create(ctx, &models.Notification{UserID: 1, Read: true})
	repo.Create(ctx, &models.Notification{UserID: 2})

	uc := NewMarkAllRead(repo, nil)

	count, err := uc.Execute(ctx, 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if count != 2 {
		t.Errorf("expected 2 rows marked, got %d", count)
	}

	other, _ := repo.GetForUser(ctx, 4, 2)
	if other.Read {
		t.Error("another user's notification was touched")
	}
}

func TestUnreadCountFallsBackToRepo(t *testing.T) {
	repo := newFakeRepo()
	ctx := context.Background()
	repo.Create(ctx, &models.Notification{UserID: 1})
	repo.Create(ctx, &models.Notification{UserID: 1, Read: true})

	uc := NewUnreadCount(repo, nil)

	count, err := uc.Execute(ctx, 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if count != 1 {
		t.Errorf("expected 1 unread, got %d", count)
	}
}
