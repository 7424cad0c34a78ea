package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	domain "github.com/gimnasioapp/gym-api/internal/domain/notification"
	"github.com/gimnasioapp/gym-api/internal/middleware"
	"github.com/gimnasioapp/gym-api/internal/models"
	usecase "github.com/gimnasioapp/gym-api/internal/usecase/notification"
)

var errStubNotFound = errors.New("not found")

// stubNotificationRepo backs notification handler tests without a database.
type stubNotificationRepo struct {
	users  map[uint]models.User
	nextID uint
	saved  []models.Notification
	unread int64
}

func (s *stubNotificationRepo) ListForUser(context.Context, uint, domain.ListFilter) ([]models.Notification, error) {
	return s.saved, nil
}

func (s *stubNotificationRepo) GetForUser(_ context.Context, id uint, userID uint) (*models.Notification, error) {
	for i := range s.saved {
		if s.saved[i].ID == id && s.saved[i].UserID == userID {
			return &s.saved[i], nil
		}
	}
	return nil, errStubNotFound
}

func (s *stubNotificationRepo) Create(_ context.Context, n *models.Notification) error {
	s.nextID++
	n.ID = s.nextID
	s.saved = append(s.saved, *n)
	return nil
}

func (s *stubNotificationRepo) Save(context.Context, *models.Notification) error { return nil }

func (s *stubNotificationRepo) DeleteForUser(context.Context, uint, uint) error { return nil }

func (s *stubNotificationRepo) CountUnread(context.Context, uint) (int64, error) {
	return s.unread, nil
}

func (s *stubNotificationRepo) MarkAllRead(context.Context, uint, time.Time) (int64, error) {
	return 0, nil
}

func (s *stubNotificationRepo) CountAll(context.Context, uint) (int64, error) { return 0, nil }

func (s *stubNotificationRepo) CountByCategory(context.Context, uint) (map[string]int64, error) {
	return nil, nil
}

func (s *stubNotificationRepo) CountByPriority(context.Context, uint) (map[string]int64, error) {
	return nil, nil
}

func (s *stubNotificationRepo) Recent(context.Context, uint, int) ([]models.Notification, error) {
	return nil, nil
}

func (s *stubNotificationRepo) GetUser(_ context.Context, id uint) (*models.User, error) {
	user, ok := s.users[id]
	if !ok {
		return nil, errStubNotFound
	}
	return &user, nil
}

func (s *stubNotificationRepo) GetOrCreateSettings(context.Context, uint) (*models.NotificationSettings, error) {
	return nil, errStubNotFound
}

func (s *stubNotificationRepo) SaveSettings(context.Context, *models.NotificationSettings) error {
	return nil
}

func notificationRouter(repo *stubNotificationRepo, staff bool) *gin.Engine {
	gin.SetMode(gin.TestMode)

	h := NewNotificationHandler(
		repo,
		nil,
		usecase.NewMarkRead(repo, nil),
		usecase.NewMarkAllRead(repo, nil),
		usecase.NewUnreadCount(repo, nil),
		usecase.NewStats(repo),
		usecase.NewBulkCreate(repo, nil, nil),
	)

	r := gin.New()
	r.Use(func(c *gin.Context) {
		c.Set(middleware.ContextUserID, uint(1))
		c.Set(middleware.ContextIsStaff, staff)
	})
	r.POST("/notifications/bulk_create/", h.BulkCreate)
	r.GET("/notifications/unread_count/", h.UnreadCount)
	return r
}

func TestBulkCreateResponseShape(t *testing.T) {
	repo := &stubNotificationRepo{
		users: map[uint]models.User{
			1: {ID: 1, Email: "a@gimnasio.com"},
			2: {ID: 2, Email: "b@gimnasio.com"},
		},
	}
	r := notificationRouter(repo, true)

	body := `{"title":"Aviso","message":"Mantenimiento programado","user_ids":[1,2,9]}`
	req := httptest.NewRequest(http.MethodPost, "/notifications/bulk_create/", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusCreated {
		t.Fatalf("status = %d, want %d (body %s)", w.Code, http.StatusCreated, w.Body.String())
	}

	var resp struct {
		Created       *int              `json:"created"`
		Notifications []json.RawMessage `json:"notifications"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.Created == nil {
		t.Fatalf("response missing \"created\" key: %s", w.Body.String())
	}
	if *resp.Created != 2 {
		t.Errorf("created = %d, want 2 (unknown user skipped)", *resp.Created)
	}
	if len(resp.Notifications) != 2 {
		t.Errorf("notifications = %d entries, want 2", len(resp.Notifications))
	}
}

func TestUnreadCountResponseShape(t *testing.T) {
	repo := &stubNotificationRepo{unread: 7}
	r := notificationRouter(repo, false)

	req := httptest.NewRequest(http.MethodGet, "/notifications/unread_count/", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusOK)
	}

	var resp map[string]int64
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp["unread_count"] != 7 {
		t.Errorf("unread_count = %d, want 7", resp["unread_count"])
	}
}
