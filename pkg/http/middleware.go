package http

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"facilityhub.dev/facility-service/pkg/auth"
	"facilityhub.dev/facility-service/pkg/models"
)

const ctxUserKey = "current_user"

// AuthRequired validates the bearer token and loads the account. The
// account is re-read on every request so deactivation takes effect
// immediately, not at token expiry.
func (rs *RestfulServer) AuthRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if !strings.HasPrefix(header, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "missing bearer token"})
			return
		}

		claims, err := auth.ParseToken(rs.JWTSecret, strings.TrimPrefix(header, "Bearer "))
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid or expired token"})
			return
		}

		user, err := rs.Facility.User.GetByID(claims.Subject)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "unknown account"})
			return
		}
		if !user.IsActive {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "account deactivated"})
			return
		}

		c.Set(ctxUserKey, user)
		c.Next()
	}
}

func (rs *RestfulServer) AdminRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		user := currentUser(c)
		if user == nil || !user.IsAdmin() {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "admin role required"})
			return
		}
		c.Next()
	}
}

func currentUser(c *gin.Context) *models.User {
	v, ok := c.Get(ctxUserKey)
	if !ok {
		return nil
	}
	user, ok := v.(*models.User)
	if !ok {
		return nil
	}
	return user
}
