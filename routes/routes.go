package routes

import (
	"time"

	"backend/controllers"
	"backend/middlewares"
	"backend/services"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"gorm.io/gorm"
)

// SetupRouter wires every endpoint. hub, push and moderation may be nil
// (tests, or AWS not configured); the affected features degrade instead of
// failing startup.
func SetupRouter(db *gorm.DB, hub *services.ChatHub, push *services.PushService, moderation *services.ModerationService) *gin.Engine {
	r := gin.New()
	r.Use(middlewares.Recovery())
	r.Use(middlewares.RequestLogger())
	r.Use(cors.New(cors.Config{
		AllowAllOrigins: true,
		AllowMethods:    []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:    []string{"Origin", "Content-Type", "Authorization"},
		MaxAge:          12 * time.Hour,
	}))
	r.Use(middlewares.RateLimitMiddleware(300, time.Minute))

	authSvc := services.NewAuthService(db)
	profileSvc := services.NewProfileService(db)
	recipeSvc := services.NewRecipeService(db)
	planSvc := services.NewPlanService(db)
	trackingSvc := services.NewTrackingService(db)
	reminderSvc := services.NewReminderService(db, push)
	messageSvc := services.NewMessageService(db, hub, push)

	authCtl := controllers.NewAuthController(authSvc)
	profileCtl := controllers.NewProfileController(profileSvc)
	recipeCtl := controllers.NewRecipeController(recipeSvc, profileSvc)
	planCtl := controllers.NewPlanController(planSvc)
	trackingCtl := controllers.NewTrackingController(trackingSvc)
	reminderCtl := controllers.NewReminderController(reminderSvc)
	messageCtl := controllers.NewMessageController(messageSvc)
	adminCtl := controllers.NewAdminController(messageSvc)
	realtimeCtl := controllers.NewRealtimeController(hub, profileSvc)
	deviceCtl := controllers.NewDeviceController(push, db)
	uploadCtl := controllers.NewUploadController(moderation)

	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"ok": true, "data": gin.H{"status": "up"}})
	})
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	api := r.Group("/api")

	auth := api.Group("/auth")
	{
		auth.POST("/register", authCtl.Register)
		auth.POST("/login", authCtl.Login)
		auth.POST("/forgot-password", authCtl.ForgotPassword)
		auth.POST("/reset-password", authCtl.ResetPassword)
	}

	protected := api.Group("")
	protected.Use(middlewares.AuthMiddleware())
	{
		protected.GET("/me", profileCtl.GetMe)
		protected.PATCH("/me", profileCtl.UpdateMe)

		protected.GET("/recipes", middlewares.CacheMiddleware(time.Minute), recipeCtl.List)
		protected.POST("/recipes", recipeCtl.Create)
		protected.GET("/recipes/:id", recipeCtl.Get)
		protected.PATCH("/recipes/:id", recipeCtl.Update)
		protected.DELETE("/recipes/:id", recipeCtl.Delete)

		protected.GET("/plans", middlewares.CacheMiddleware(time.Minute), planCtl.List)
		protected.POST("/plans", planCtl.Create)
		protected.GET("/plans/:id", planCtl.Get)
		protected.PATCH("/plans/:id", planCtl.Update)
		protected.DELETE("/plans/:id", planCtl.Delete)
		protected.POST("/plan-days", planCtl.ReplaceDays)

		protected.GET("/track/water", trackingCtl.ListWater)
		protected.POST("/track/water", trackingCtl.AddWater)
		protected.GET("/track/weight", trackingCtl.ListWeight)
		protected.POST("/track/weight", trackingCtl.AddWeight)

		protected.GET("/reminders", reminderCtl.Get)
		protected.POST("/reminders", reminderCtl.Upsert)

		protected.GET("/messages", messageCtl.ListMine)
		protected.POST("/messages", messageCtl.Send)

		protected.GET("/ws", realtimeCtl.ChatWS)

		protected.POST("/devices", deviceCtl.Register)
		protected.POST("/notifications/toggle", deviceCtl.ToggleNotifications)
		protected.POST("/uploads/image", uploadCtl.UploadImage)
	}

	admin := api.Group("/admin")
	admin.Use(middlewares.AuthMiddleware(), middlewares.AdminRequired(db))
	{
		admin.GET("/check", adminCtl.Check)
		admin.GET("/chat/users", adminCtl.ListChatUsers)
		admin.GET("/chat/users/:id/messages", adminCtl.GetThread)
		admin.POST("/chat/users/:id/messages", adminCtl.SendToUser)
	}

	return r
}
