package authz

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/gimnasioapp/gym-api/internal/middleware"
	"github.com/gimnasioapp/gym-api/internal/models"
)

// Owned is implemented by every entity subject to the owner-or-staff rule.
type Owned interface {
	OwnerUserID() *uint
}

func UserID(c *gin.Context) uint {
	return c.MustGet(middleware.ContextUserID).(uint)
}

func IsStaff(c *gin.Context) bool {
	v, _ := c.Get(middleware.ContextIsStaff)
	staff, _ := v.(bool)
	return staff
}

// StaffOrReadOnly lets any authenticated caller read; writes are staff-only.
func StaffOrReadOnly() gin.HandlerFunc {
	return func(c *gin.Context) {
		switch c.Request.Method {
		case http.MethodGet, http.MethodHead, http.MethodOptions:
			c.Next()
			return
		}
		if !IsStaff(c) {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{
				"error": "staff_required",
			})
			return
		}
		c.Next()
	}
}

// StaffOnly rejects every non-staff caller.
func StaffOnly() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !IsStaff(c) {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{
				"error": "staff_required",
			})
			return
		}
		c.Next()
	}
}

// Owns reports whether the caller may act on obj under owner-or-staff.
func Owns(c *gin.Context, obj Owned) bool {
	if IsStaff(c) {
		return true
	}
	owner := obj.OwnerUserID()
	return owner != nil && *owner == UserID(c)
}

// OwnedMemberIDs returns a subquery of member ids linked to the caller's
// account, for scoping list queries of member-owned resources.
func OwnedMemberIDs(db *gorm.DB, userID uint) *gorm.DB {
	return db.Model(&models.Member{}).Select("id").Where("user_id = ?", userID)
}
