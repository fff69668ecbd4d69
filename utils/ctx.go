package utils

import (
	"time"

	"github.com/gin-gonic/gin"
)

func CurrentUserID(c *gin.Context) uint {
	v, _ := c.Get("userId")
	switch id := v.(type) {
	case uint:
		return id
	case int:
		return uint(id)
	case int64:
		return uint(id)
	case float64:
		return uint(id)
	default:
		return 0
	}
}

func CurrentTokenID(c *gin.Context) string {
	if v, ok := c.Get("jti"); ok {
		if s, ok := v.(string); ok {
			return s
		}
	}
	return ""
}

func CurrentTokenExpiry(c *gin.Context) time.Time {
	if v, ok := c.Get("tokenExp"); ok {
		if t, ok := v.(time.Time); ok {
			return t
		}
	}
	return time.Time{}
}
