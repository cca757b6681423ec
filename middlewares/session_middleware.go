// middlewares/session_middleware.go
package middlewares

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/douglasmelere/daily-diet-api/services"
)

// SessionCookieName is the cookie the client presents on every /meals route.
const SessionCookieName = "sessionId"

// RequireSession resolves the sessionId cookie to a user and stores the
// user's id in the request context. Applied to every meal route, mutating
// ones included.
func RequireSession(users *services.UserService) gin.HandlerFunc {
	return func(c *gin.Context) {
		sessionID, err := c.Cookie(SessionCookieName)
		if err != nil || sessionID == "" {
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "Unauthorized"})
			return
		}

		user, err := users.FindBySession(sessionID)
		if err != nil {
			if errors.Is(err, services.ErrUserNotFound) {
				c.AbortWithStatusJSON(http.StatusNotFound, gin.H{"error": "User not found"})
				return
			}
			logrus.WithError(err).Error("failed to resolve session")
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Internal Server Error"})
			return
		}

		c.Set("userID", user.ID)
		c.Next()
	}
}
