package handlers

import (
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// orderClause resolves an ?ordering= parameter ("-campo" descends) against
// the fields a resource declares orderable. Anything else falls back.
func orderClause(param string, allowed map[string]string, fallback string) string {
	field := strings.TrimSpace(param)
	desc := strings.HasPrefix(field, "-")
	if desc {
		field = field[1:]
	}

	column, ok := allowed[field]
	if !ok {
		return fallback
	}
	if desc {
		return column + " DESC"
	}
	return column + " ASC"
}

// filterDay narrows a timestamp column to the calendar day of a
// ?campo=YYYY-MM-DD query parameter.
func filterDay(q *gorm.DB, column, value string) *gorm.DB {
	day, err := time.Parse("2006-01-02", value)
	if err != nil {
		return q
	}
	return q.Where(column+" >= ? AND "+column+" < ?", day, day.Add(24*time.Hour))
}

func parseDate(value string) (time.Time, bool) {
	t, err := time.Parse("2006-01-02", value)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

func paramID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return 0, false
	}
	return uint(id), true
}
