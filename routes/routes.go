package routes

import (
	"log"

	"github.com/andrewdphillips61/Vita-AI/config"
	"github.com/andrewdphillips61/Vita-AI/controllers"
	"github.com/andrewdphillips61/Vita-AI/middlewares"
	"github.com/andrewdphillips61/Vita-AI/services"

	"github.com/gin-gonic/gin"
)

func SetupRouter() *gin.Engine {
	r := gin.Default()

	resolver := services.NewProfileResolver()
	hub := services.NewRealtimeHub()

	push, err := services.NewPushService(config.DB)
	if err != nil {
		log.Printf("push service unavailable: %v", err)
		push = nil
	}
	services.InitAlertDeps(config.DB, hub, push)

	vision := services.NewVisionService()
	rek, err := services.NewRekognitionService()
	if err != nil {
		log.Printf("rekognition unavailable, food gate disabled: %v", err)
		rek = nil
	}

	entrySvc := services.NewEntryService()
	summarySvc := services.NewSummaryService(entrySvc)

	entryCtl := controllers.NewEntryController(vision, rek, entrySvc, summarySvc, hub)
	summaryCtl := controllers.NewSummaryController(summarySvc)
	realtimeCtl := controllers.NewRealtimeController(hub)

	// Public auth routes
	auth := r.Group("/auth")
	{
		auth.POST("/register", controllers.Register)
		auth.POST("/verify", controllers.Verify)
		auth.POST("/login", controllers.Login)
	}

	protected := r.Group("/")
	protected.Use(middlewares.AuthMiddleware(resolver))
	{
		protected.GET("/user/profile", controllers.GetProfile)
		protected.PUT("/user/profile", controllers.UpdateProfile)

		protected.POST("/entries/analyze", entryCtl.Analyze)
		protected.POST("/entries", entryCtl.LogEntry)
		protected.GET("/entries", entryCtl.ListByDate)
		protected.GET("/entries/range", entryCtl.ListRange)
		protected.GET("/entries/today", entryCtl.Today)
		protected.GET("/entries/:id", entryCtl.GetByID)

		protected.GET("/summary/today", summaryCtl.Today)
		protected.GET("/summary/day", summaryCtl.Day)
		protected.GET("/summary/range", summaryCtl.Range)

		protected.POST("/metrics/analysis", controllers.AnalysisMetrics)

		protected.GET("/ws", realtimeCtl.EventsWS)

		if push != nil {
			deviceCtl := controllers.NewDeviceController(push)
			protected.POST("/devices", deviceCtl.Register)
		}
	}

	return r
}
