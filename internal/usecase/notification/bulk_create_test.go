package notification

import (
	"context"
	"testing"

	"github.com/gimnasioapp/gym-api/internal/models"
)

func TestBulkCreateSkipsUnknownUsers(t *testing.T) {
	repo := newFakeRepo()
	repo.users[1] = models.User{ID: 1, Email: "a@b.com"}
	repo.users[3] = models.User{ID: 3, Email: "c@d.com"}

	uc := NewBulkCreate(repo, nil, nil)

	created, err := uc.Execute(context.Background(), BulkCreateInput{
		Title:    "Aviso",
		Message:  "Mensaje",
		Type:     "info",
		Category: "system",
		Priority: "medium",
		UserIDs:  []uint{1, 2, 3},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(created) != 2 {
		t.Fatalf("expected 2 notifications, got %d", len(created))
	}
	if created[0].UserID != 1 || created[1].UserID != 3 {
		t.Errorf("unexpected recipients: %d, %d", created[0].UserID, created[1].UserID)
	}
}

func TestBulkCreateAssignsFields(t *testing.T) {
	repo := newFakeRepo()
	repo.users[7] = models.User{ID: 7}

	uc := NewBulkCreate(repo, nil, nil)

	created, err := uc.Execute(context.Background(), BulkCreateInput{
		Title:       "Titulo",
		Message:     "Cuerpo",
		Type:        "warning",
		Category:    "payments",
		Priority:    "high",
		UserIDs:     []uint{7},
		ReferenceID: "template:3",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	n := created[0]
	if n.Type != "warning" || n.Category != "payments" || n.Priority != "high" {
		t.Errorf("classification not applied: %+v", n)
	}
	if n.ReferenceID != "template:3" {
		t.Errorf("expected reference id, got %q", n.ReferenceID)
	}
	if n.Read {
		t.Error("new notification must start unread")
	}
}
