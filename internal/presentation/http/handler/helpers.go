package handler

import (
	"time"

	"github.com/ahmadfaris/kasirku-api/pkg/pagination"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// GetUserID extracts the authenticated user ID from the Gin context
func GetUserID(c *gin.Context) *uuid.UUID {
	userIDVal, exists := c.Get("user_id")
	if !exists {
		return nil
	}
	userID, ok := userIDVal.(uuid.UUID)
	if !ok {
		return nil
	}
	return &userID
}

// GetFullName extracts the authenticated user's full name from the Gin context
func GetFullName(c *gin.Context) string {
	name, exists := c.Get("full_name")
	if !exists {
		return ""
	}
	s, _ := name.(string)
	return s
}

// GetRole extracts the authenticated user's role from the Gin context
func GetRole(c *gin.Context) string {
	role, exists := c.Get("role")
	if !exists {
		return ""
	}
	s, _ := role.(string)
	return s
}

// GetPagination binds page/per_page query parameters with defaults applied
func GetPagination(c *gin.Context) *pagination.PaginationParams {
	params := pagination.DefaultPagination()
	_ = c.ShouldBindQuery(params)
	params.Validate()
	return params
}

// ParseDateQuery parses a YYYY-MM-DD query parameter, returning nil when
// absent or malformed
func ParseDateQuery(c *gin.Context, name string) *time.Time {
	value := c.Query(name)
	if value == "" {
		return nil
	}
	t, err := time.Parse("2006-01-02", value)
	if err != nil {
		return nil
	}
	return &t
}
