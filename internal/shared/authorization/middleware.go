package authorization

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"provisio/internal/shared/constants"
)

// RequireAgent blocks requests whose authenticated role is not agent.
func RequireAgent() gin.HandlerFunc {
	return func(c *gin.Context) {
		userRole := c.GetString(constants.ContextKeyUserRole)
		if userRole != string(RoleAgent) {
			c.JSON(http.StatusForbidden, gin.H{
				"error": "agent access required",
			})
			c.Abort()
			return
		}
		c.Next()
	}
}

// ActorFromContext builds the acting identity from the auth middleware's
// context values.
func ActorFromContext(c *gin.Context) Actor {
	return Actor{
		ID:   c.GetString(constants.ContextKeyUserID),
		Name: c.GetString(constants.ContextKeyUserName),
		Role: ParseUserRole(c.GetString(constants.ContextKeyUserRole)),
	}
}
