package main

import (
	"os"

	"backend/cache"
	"backend/config"
	"backend/routes"
	"backend/services"
	"backend/utils"

	"go.uber.org/zap"
)

func main() {
	utils.InitLogger()
	utils.InitMetrics()
	config.InitDB()
	utils.InitS3()
	utils.InitMailer()

	if err := cache.InitRedis(utils.Logger); err != nil {
		// cache and rate limiting degrade gracefully without Redis
		utils.Logger.Warn("starting_without_redis", zap.Error(err))
		cache.Client = nil
	}

	push, err := services.NewPushService(config.DB)
	if err != nil {
		utils.Logger.Warn("starting_without_push", zap.Error(err))
		push = nil
	}

	moderation, err := services.NewModerationService()
	if err != nil {
		utils.Logger.Warn("starting_without_moderation", zap.Error(err))
		moderation = nil
	}

	hub := services.NewChatHub()

	scheduler := services.NewReminderScheduler(config.DB, push)
	if push != nil {
		if err := scheduler.Start(); err != nil {
			utils.Logger.Error("reminder_scheduler_failed", zap.Error(err))
		}
		defer scheduler.Stop()
	}

	r := routes.SetupRouter(config.DB, hub, push, moderation)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	if err := r.Run(":" + port); err != nil {
		utils.Logger.Fatal("server_exited", zap.Error(err))
	}
}
