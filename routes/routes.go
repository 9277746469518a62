package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/Paintedstork28/fitness-tracker/controllers"
	"github.com/Paintedstork28/fitness-tracker/middlewares"
	"github.com/Paintedstork28/fitness-tracker/services"
)

// Deps is everything the router needs; main owns the actual state.
type Deps struct {
	Store     *services.Store
	Bridge    *services.PersistenceBridge
	Sessions  *services.SessionService
	Hub       *services.NotificationHub
	LoginPath string
}

func SetupRouter(d Deps) *gin.Engine {
	r := gin.Default()

	exercises := controllers.NewExerciseController(d.Store, d.Hub)
	nutrition := controllers.NewNutritionController(d.Store, d.Hub)
	sleep := controllers.NewSleepController(d.Store, d.Hub)
	goals := controllers.NewGoalController(d.Store, d.Hub)
	dashboard := controllers.NewDashboardController(d.Store)
	session := controllers.NewSessionController(d.Sessions, d.LoginPath)
	persistence := controllers.NewPersistenceController(d.Bridge)
	notifications := controllers.NewNotificationController(d.Hub)
	dev := controllers.NewDevController(d.Sessions)

	// Stand-in for the external login flow; not gated.
	r.POST("/dev/session", dev.SeedSession)

	api := r.Group("/api")
	api.Use(middlewares.SessionGate(d.Sessions, d.LoginPath))
	{
		api.GET("/session", session.Current)
		api.POST("/logout", session.Logout)

		api.POST("/exercises", exercises.Log)
		api.GET("/exercises/today", exercises.Today)

		api.POST("/nutrition", nutrition.Log)
		api.GET("/nutrition/today", nutrition.Today)

		api.POST("/sleep", sleep.Log)
		api.GET("/sleep/history", sleep.History)

		api.POST("/goals", goals.Log)
		api.GET("/goals", goals.List)

		api.GET("/dashboard", dashboard.Summary)
		api.POST("/save", persistence.Save)
		api.POST("/avatar", controllers.UploadAvatar)

		api.GET("/ws/notifications", notifications.BannersWS)
	}

	return r
}
