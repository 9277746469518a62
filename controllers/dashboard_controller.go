package controllers

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Paintedstork28/fitness-tracker/models"
	"github.com/Paintedstork28/fitness-tracker/services"
)

type DashboardController struct {
	Store *services.Store
}

func NewDashboardController(store *services.Store) *DashboardController {
	return &DashboardController{Store: store}
}

// Summary returns the dashboard aggregates plus the welcome message for
// the session the gate resolved.
func (dc *DashboardController) Summary(c *gin.Context) {
	today := time.Now().Format(models.DateLayout)
	body := gin.H{
		"date":      today,
		"dashboard": services.BuildDashboard(dc.Store, today),
	}

	if v, ok := c.Get("user"); ok {
		user := v.(models.SessionRecord)
		body["welcome_message"] = fmt.Sprintf("Welcome back, %s!", user.FirstName())
	}

	c.JSON(http.StatusOK, body)
}
