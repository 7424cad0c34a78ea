package authz

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/gimnasioapp/gym-api/internal/middleware"
	"github.com/gimnasioapp/gym-api/internal/models"
)

func staffRouter(staff bool, mw gin.HandlerFunc) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(func(c *gin.Context) {
		c.Set(middleware.ContextUserID, uint(1))
		c.Set(middleware.ContextIsStaff, staff)
	})
	r.Use(mw)
	handle := func(c *gin.Context) { c.Status(http.StatusOK) }
	r.GET("/x", handle)
	r.POST("/x", handle)
	return r
}

func do(r *gin.Engine, method string) int {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(method, "/x", nil)
	r.ServeHTTP(w, req)
	return w.Code
}

func TestStaffOrReadOnlyAllowsReads(t *testing.T) {
	r := staffRouter(false, StaffOrReadOnly())
	if code := do(r, http.MethodGet); code != http.StatusOK {
		t.Errorf("GET: got %d want 200", code)
	}
}

func TestStaffOrReadOnlyBlocksNonStaffWrites(t *testing.T) {
	r := staffRouter(false, StaffOrReadOnly())
	if code := do(r, http.MethodPost); code != http.StatusForbidden {
		t.Errorf("POST: got %d want 403", code)
	}
}

func TestStaffOrReadOnlyAllowsStaffWrites(t *testing.T) {
	r := staffRouter(true, StaffOrReadOnly())
	if code := do(r, http.MethodPost); code != http.StatusOK {
		t.Errorf("POST: got %d want 200", code)
	}
}

func TestStaffOnly(t *testing.T) {
	if code := do(staffRouter(false, StaffOnly()), http.MethodGet); code != http.StatusForbidden {
		t.Errorf("non-staff GET: got %d want 403", code)
	}
	if code := do(staffRouter(true, StaffOnly()), http.MethodGet); code != http.StatusOK {
		t.Errorf("staff GET: got %d want 200", code)
	}
}

func testContext(userID uint, staff bool) *gin.Context {
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Set(middleware.ContextUserID, userID)
	c.Set(middleware.ContextIsStaff, staff)
	return c
}

func TestOwnsMatchesOwner(t *testing.T) {
	owner := uint(3)
	member := &models.Member{UserID: &owner}

	if !Owns(testContext(3, false), member) {
		t.Error("owner should pass")
	}
	if Owns(testContext(4, false), member) {
		t.Error("non-owner should fail")
	}
}

func TestOwnsStaffBypassesOwnership(t *testing.T) {
	member := &models.Member{}

	if !Owns(testContext(9, true), member) {
		t.Error("staff should pass regardless of owner")
	}
	if Owns(testContext(9, false), member) {
		t.Error("unlinked record should fail for non-staff")
	}
}
