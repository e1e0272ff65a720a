package main

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/soulsyync/soulsyync-api/internal/config"
	"github.com/soulsyync/soulsyync-api/internal/db"
	"github.com/soulsyync/soulsyync-api/internal/routes"
	"github.com/soulsyync/soulsyync-api/internal/tokens"
	"github.com/soulsyync/soulsyync-api/pkg/logger"
)

func main() {
	cfg := config.Load()

	logger.Init(cfg.IsDevelopment())
	defer logger.Sync()

	database := db.NewDB(cfg)

	revoker, err := tokens.NewRevoker(cfg.RedisURL)
	if err != nil {
		logger.Log.Fatal("failed to connect to redis", zap.Error(err))
	}
	defer revoker.Close()

	if !cfg.IsDevelopment() {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.Default()
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: false,
	}))

	routes.RegisterRoutes(r, database, cfg, revoker)

	logger.Log.Info("starting server", zap.String("addr", cfg.Addr()))
	if err := r.Run(cfg.Addr()); err != nil {
		logger.Log.Fatal("server exited", zap.Error(err))
	}
}
