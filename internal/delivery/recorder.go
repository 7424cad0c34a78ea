package delivery

import (
	"log"
	"time"

	"gorm.io/gorm"

	"github.com/gimnasioapp/gym-api/internal/models"
)

const (
	MethodInApp = "in_app"
	MethodEmail = "email"
	MethodSMS   = "sms"
	MethodPush  = "push"

	StatusPending   = "pending"
	StatusSent      = "sent"
	StatusDelivered = "delivered"
	StatusFailed    = "failed"
	StatusBounced   = "bounced"
)

type Event struct {
	NotificationID uint
	Method         string
	Status         string
	Address        string
	ErrorMessage   string
}

// Recorder writes delivery-audit rows off the request path. Recording is
// best-effort: a full queue drops the event rather than failing the API.
type Recorder struct {
	insert func(models.NotificationLog) error
	queue  chan Event
	done   chan struct{}
}

func NewRecorder(db *gorm.DB) *Recorder {
	r := &Recorder{
		insert: func(entry models.NotificationLog) error {
			return db.Create(&entry).Error
		},
		queue: make(chan Event, 100),
		done:  make(chan struct{}),
	}

	go r.worker()
	return r
}

func (r *Recorder) worker() {
	defer close(r.done)

	for ev := range r.queue {
		entry := models.NotificationLog{
			NotificationID:  ev.NotificationID,
			DeliveryMethod:  ev.Method,
			DeliveryStatus:  ev.Status,
			DeliveryAddress: ev.Address,
			ErrorMessage:    ev.ErrorMessage,
		}
		if ev.Status == StatusDelivered {
			now := time.Now()
			entry.DeliveredAt = &now
		}
		if err := r.insert(entry); err != nil {
			log.Println("delivery log error:", err)
		}
	}
}

// Record is safe on a nil *Recorder, which disables delivery logging.
func (r *Recorder) Record(ev Event) {
	if r == nil {
		return
	}
	select {
	case r.queue <- ev:
	default:
		log.Println("delivery log queue full, dropping event")
	}
}

// Close drains any queued events and stops the worker. Record must not be
// called after Close.
func (r *Recorder) Close() {
	if r == nil {
		return
	}
	close(r.queue)
	<-r.done
}
