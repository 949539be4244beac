package middleware

import (
	"errors"
	"net/http"
	"strings"

	"callmeback-api/models"
	"callmeback-api/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// JwtAuthMiddleware checks the bearer token signature and expiry only.
// It sets "user_id" in the gin context for downstream handlers.
func JwtAuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authorization header missing"})
			return
		}

		tokenString := strings.TrimSpace(strings.TrimPrefix(authHeader, "Bearer "))
		userID, err := utils.ParseToken(tokenString)
		if err != nil {
			msg := "Invalid token"
			if errors.Is(err, utils.ErrTokenExpired) {
				msg = "Token expired"
			}
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": msg})
			return
		}

		c.Set("user_id", userID)
		c.Next()
	}
}

// CurrentUser resolves the token's user id to a live account. The signature
// check alone is not enough: the account may have been deleted since the
// token was issued.
func CurrentUser(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, exists := c.Get("user_id")
		if !exists {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}

		var user models.User
		if err := db.Where("id = ?", userID).First(&user).Error; err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "User not found"})
			return
		}

		c.Set("current_user", &user)
		c.Next()
	}
}

// UserFromContext returns the account loaded by CurrentUser.
func UserFromContext(c *gin.Context) (*models.User, bool) {
	val, exists := c.Get("current_user")
	if !exists {
		return nil, false
	}
	user, ok := val.(*models.User)
	return user, ok
}
