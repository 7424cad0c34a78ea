package notification

import (
	"context"
	"testing"
)

func TestSettingsGetMaterializesDefaults(t *testing.T) {
	repo := newFakeRepo()
	uc := NewSettings(repo)

	s, err := uc.Get(context.Background(), 5)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if s.UserID != 5 {
		t.Errorf("user id: got %d want 5", s.UserID)
	}
	if !s.EmailNotifications || s.SMSNotifications {
		t.Error("expected default channel flags")
	}
}

func TestSettingsUpdateAppliesOnlyProvidedFields(t *testing.T) {
	repo := newFakeRepo()
	uc := NewSettings(repo)
	ctx := context.Background()

	off := false
	start := "22:00"

	s, err := uc.Update(ctx, 5, SettingsUpdate{
		PushNotifications: &off,
		QuietHoursStart:   &start,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if s.PushNotifications {
		t.Error("push should be disabled")
	}
	if !s.EmailNotifications {
		t.Error("email should keep its default")
	}
	if s.QuietHoursStart == nil || *s.QuietHoursStart != "22:00" {
		t.Errorf("quiet hours start: got %v", s.QuietHoursStart)
	}

	stored, _ := repo.GetOrCreateSettings(ctx, 5)
	if stored.PushNotifications {
		t.Error("update was not persisted")
	}
}
