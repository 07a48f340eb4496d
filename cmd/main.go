package main

import (
	"go.uber.org/zap"

	"github.com/momokapoolz/calories-app-gateway/config"
	"github.com/momokapoolz/calories-app-gateway/logger"
	"github.com/momokapoolz/calories-app-gateway/routes"
	"github.com/momokapoolz/calories-app-gateway/services"
)

func main() {
	cfg := config.Load()
	logger.Init()
	defer logger.Close()

	client := services.NewBackendClient(cfg.BackendBaseURL, cfg.BackendTimeout)

	var store services.TokenStore
	if redisClient := cfg.NewRedisClient(); redisClient != nil {
		store = services.NewRedisTokenStore(redisClient, cfg.SessionTTL)
		logger.Info("using redis token store", zap.String("addr", cfg.RedisAddr))
	} else {
		store = services.NewMemoryTokenStore()
		logger.Info("using in-memory token store")
	}

	sessions := services.NewSessionService(client, store)

	r := routes.SetupRouter(&routes.Services{
		Sessions:  sessions,
		Foods:     services.NewFoodService(client),
		Nutrients: services.NewNutrientService(client),
		MealLogs:  services.NewMealLogService(client),
		Nutrition: services.NewNutritionService(client),
	})

	logger.Info("gateway listening",
		zap.String("addr", cfg.ListenAddr),
		zap.String("backend", cfg.BackendBaseURL),
	)
	if err := r.Run(cfg.ListenAddr); err != nil {
		logger.Error("server exited", zap.Error(err))
	}
}
