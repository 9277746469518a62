package middlewares

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Paintedstork28/fitness-tracker/services"
)

// SessionGate aborts requests that arrive without a fresh session. It is
// a presentation gate, not access control: it only checks that the login
// flow stored a session record and token and that the login is under 24
// hours old. Expired or malformed sessions have already been cleared by
// the session service when the request is rejected.
func SessionGate(sessions *services.SessionService, loginPath string) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, err := sessions.Current()
		if err != nil {
			switch {
			case errors.Is(err, services.ErrSessionExpired):
				c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "session expired", "redirect": loginPath})
			case errors.Is(err, services.ErrNotAuthenticated):
				c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "not authenticated", "redirect": loginPath})
			default:
				c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			}
			return
		}

		c.Set("user", user)
		c.Next()
	}
}
