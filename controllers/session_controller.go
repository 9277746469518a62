package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Paintedstork28/fitness-tracker/models"
	"github.com/Paintedstork28/fitness-tracker/services"
)

type SessionController struct {
	Sessions  *services.SessionService
	LoginPath string
}

func NewSessionController(sessions *services.SessionService, loginPath string) *SessionController {
	return &SessionController{Sessions: sessions, LoginPath: loginPath}
}

// Current exposes the gated user's display name and avatar for the
// navigation bar. The gate middleware already resolved the session.
func (sc *SessionController) Current(c *gin.Context) {
	v, ok := c.Get("user")
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "not authenticated", "redirect": sc.LoginPath})
		return
	}
	user := v.(models.SessionRecord)
	c.JSON(http.StatusOK, gin.H{
		"user": gin.H{
			"name":    user.Name,
			"picture": user.Picture,
		},
	})
}

// Logout clears both session slots and points the page at the login view.
func (sc *SessionController) Logout(c *gin.Context) {
	if err := sc.Sessions.Logout(); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"redirect": sc.LoginPath})
}
