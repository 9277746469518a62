package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Paintedstork28/fitness-tracker/models"
	"github.com/Paintedstork28/fitness-tracker/services"
	"github.com/Paintedstork28/fitness-tracker/utils"
)

// DevController stands in for the external login flow during local runs:
// it writes a fabricated session record and token into the slots so the
// gate has something to check.
type DevController struct {
	Sessions *services.SessionService
}

func NewDevController(sessions *services.SessionService) *DevController {
	return &DevController{Sessions: sessions}
}

type devSessionReq struct {
	Name    string `json:"name"`
	Picture string `json:"picture"`
}

func (d *DevController) SeedSession(c *gin.Context) {
	var req devSessionReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	// sane defaults for quick local runs
	if req.Name == "" {
		req.Name = "Demo User"
	}
	if req.Picture == "" {
		req.Picture = "https://ui-avatars.com/api/?name=Demo+User"
	}

	token, err := utils.GenerateSessionToken(req.Name)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not generate token"})
		return
	}

	user := models.SessionRecord{
		Name:      req.Name,
		Picture:   req.Picture,
		LoginTime: time.Now(),
	}
	if err := d.Sessions.StartSession(user, token); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"user": user, "token": token})
}
