package middleware

import (
	"arkan22/cloth-api/model"
	"net/http"

	"github.com/gin-gonic/gin"
)

// NewAdminMiddleware rejects requests from regular customers. It must run
// after the JWT middleware since it reads the role it stored.
func NewAdminMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.MustGet("requestID").(string)

		role, ok := c.Get("userRole")
		if !ok || role.(int) == model.RoleCustomer {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{
				"error":     "admin_only",
				"requestID": requestID,
			})
			return
		}

		c.Next()
	}
}
