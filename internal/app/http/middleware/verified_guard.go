package middleware

import (
	"net/http"

	"github.com/elmedina-m03/SeriLovers-RSII-sub003/database"
	"github.com/elmedina-m03/SeriLovers-RSII-sub003/internal/domain/users"

	"github.com/gin-gonic/gin"
)

// RequireVerifiedAccount blocks write endpoints for accounts that never
// confirmed their email.
func RequireVerifiedAccount() gin.HandlerFunc {
	return func(c *gin.Context) {
		email := c.GetString("email")
		var user users.User

		if err := database.DB.Where("email = ?", email).First(&user).Error; err != nil {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{
				"error": "Account not found",
			})
			return
		}

		if !user.IsVerified {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{
				"error": "Please verify your email first",
			})
			return
		}

		c.Next()
	}
}
