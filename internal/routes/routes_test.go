package routes

import (
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/gimnasioapp/gym-api/internal/config"
)

func registeredPaths(t *testing.T) map[string]bool {
	t.Helper()
	gin.SetMode(gin.TestMode)

	r := gin.New()
	RegisterRoutes(r, nil, &config.Config{})

	paths := make(map[string]bool)
	for _, route := range r.Routes() {
		paths[route.Method+" "+route.Path] = true
	}
	return paths
}

func TestNotificationSubResourcePaths(t *testing.T) {
	paths := registeredPaths(t)

	want := []string{
		"GET /api/v1/settings/my_settings/",
		"PUT /api/v1/settings/my_settings/",
		"PATCH /api/v1/settings/my_settings/",
		"GET /api/v1/templates/",
		"POST /api/v1/templates/:id/toggle_active/",
		"GET /api/v1/logs/",
		"GET /api/v1/logs/delivery_stats/",
	}
	for _, route := range want {
		if !paths[route] {
			t.Errorf("route %s not registered", route)
		}
	}

	stale := []string{
		"GET /api/v1/notification-settings/my_settings/",
		"GET /api/v1/notification-templates/",
		"GET /api/v1/notification-logs/",
	}
	for _, route := range stale {
		if paths[route] {
			t.Errorf("route %s should not be registered", route)
		}
	}
}

func TestCoreResourcePaths(t *testing.T) {
	paths := registeredPaths(t)

	want := []string{
		"POST /auth/jwt/create/",
		"GET /auth/users/me/",
		"GET /api/v1/socios/",
		"POST /api/v1/pagos/",
		"GET /api/v1/notifications/unread_count/",
		"POST /api/v1/notifications/bulk_create/",
	}
	for _, route := range want {
		if !paths[route] {
			t.Errorf("route %s not registered", route)
		}
	}
}
