package delivery

import (
	"testing"

	"github.com/gimnasioapp/gym-api/internal/models"
)

func newTestRecorder(insert func(models.NotificationLog) error) *Recorder {
	r := &Recorder{
		insert: insert,
		queue:  make(chan Event, 100),
		done:   make(chan struct{}),
	}
	go r.worker()
	return r
}

func TestCloseFlushesQueuedEvents(t *testing.T) {
	var written []models.NotificationLog
	r := newTestRecorder(func(entry models.NotificationLog) error {
		written = append(written, entry)
		return nil
	})

	for i := uint(1); i <= 5; i++ {
		r.Record(Event{NotificationID: i, Method: MethodInApp, Status: StatusDelivered})
	}
	r.Close()

	if len(written) != 5 {
		t.Fatalf("written = %d, want 5", len(written))
	}
	if written[0].NotificationID != 1 || written[4].NotificationID != 5 {
		t.Errorf("events written out of order: first=%d last=%d",
			written[0].NotificationID, written[4].NotificationID)
	}
}

func TestDeliveredEventsGetTimestamp(t *testing.T) {
	var written []models.NotificationLog
	r := newTestRecorder(func(entry models.NotificationLog) error {
		written = append(written, entry)
		return nil
	})

	r.Record(Event{NotificationID: 1, Method: MethodEmail, Status: StatusDelivered})
	r.Record(Event{NotificationID: 2, Method: MethodEmail, Status: StatusFailed, ErrorMessage: "bounced"})
	r.Close()

	if len(written) != 2 {
		t.Fatalf("written = %d, want 2", len(written))
	}
	if written[0].DeliveredAt == nil {
		t.Error("delivered event should carry a delivered_at timestamp")
	}
	if written[1].DeliveredAt != nil {
		t.Error("failed event should not carry a delivered_at timestamp")
	}
	if written[1].ErrorMessage != "bounced" {
		t.Errorf("ErrorMessage = %q, want %q", written[1].ErrorMessage, "bounced")
	}
}

func TestNilRecorderIsSafe(t *testing.T) {
	var r *Recorder
	r.Record(Event{NotificationID: 1})
	r.Close()
}
