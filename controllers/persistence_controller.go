package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Paintedstork28/fitness-tracker/services"
)

type PersistenceController struct {
	Bridge *services.PersistenceBridge
}

func NewPersistenceController(bridge *services.PersistenceBridge) *PersistenceController {
	return &PersistenceController{Bridge: bridge}
}

// Save persists the store on demand, ahead of the next autosave tick.
func (pc *PersistenceController) Save(c *gin.Context) {
	if err := pc.Bridge.Save(); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "fitness data saved"})
}
