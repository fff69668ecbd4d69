package middlewares

import (
	"net/http"
	"strings"

	"github.com/OmarZED/Delivery-System/configs"
	"github.com/OmarZED/Delivery-System/repository"
	"github.com/OmarZED/Delivery-System/utils"
	"github.com/gin-gonic/gin"
)

// AuthMiddleware verifies the bearer token, rejects revoked tokens and puts
// the caller's identity on the context for utils.CurrentUserID.
func AuthMiddleware(cfg *configs.Config, tokenRepo *repository.TokenRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		h := c.GetHeader("Authorization")
		if h == "" || !strings.HasPrefix(h, "Bearer ") {
			c.JSON(http.StatusUnauthorized, gin.H{"ok": false, "error": "missing or invalid token"})
			c.Abort()
			return
		}
		tokenStr := strings.TrimPrefix(h, "Bearer ")

		claims, err := utils.ParseToken(tokenStr, cfg.JWTSecret)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"ok": false, "error": "invalid token"})
			c.Abort()
			return
		}
		if claims.UserID == 0 {
			c.JSON(http.StatusUnauthorized, gin.H{"ok": false, "error": "invalid claims"})
			c.Abort()
			return
		}

		revoked, err := tokenRepo.IsRevoked(claims.ID)
		if err != nil || revoked {
			c.JSON(http.StatusUnauthorized, gin.H{"ok": false, "error": "token revoked"})
			c.Abort()
			return
		}

		c.Set("userId", claims.UserID)
		c.Set("jti", claims.ID)
		if claims.ExpiresAt != nil {
			c.Set("tokenExp", claims.ExpiresAt.Time)
		}

		c.Next()
	}
}
