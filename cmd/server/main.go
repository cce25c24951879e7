package main

import (
	"context"
	"fmt"

	"broadcast-srv/config"
	configPostgre "broadcast-srv/config/postgre"
	configRedis "broadcast-srv/config/redis"
	"broadcast-srv/internal/httpserver"
	postPostgre "broadcast-srv/internal/post/repository/postgre"
	"broadcast-srv/internal/seed"
	userPostgre "broadcast-srv/internal/user/repository/postgre"
	"broadcast-srv/pkg/discord"
	"broadcast-srv/pkg/jwt"
	"broadcast-srv/pkg/log"
)

// @title       Broadcast Demo Service
// @description HTTP + WebSocket service demonstrating channel authorization, broadcast events and direct notifications.
// @version     1.0
// @host        localhost:8080
// @schemes     http ws
// @BasePath    /
//
// @securityDefinitions.apikey CookieAuth
// @in cookie
// @name broadcast_auth_token
// @description Session token stored in an HttpOnly cookie
//
// @securityDefinitions.apikey Bearer
// @in header
// @name Authorization
// @description Bearer token authentication. Format: "Bearer {token}"
func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	// Initialize logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx := context.Background()

	// Initialize PostgreSQL
	postgresDB, err := configPostgre.Connect(ctx, cfg.Postgres)
	if err != nil {
		logger.Errorf(ctx, "Failed to connect to PostgreSQL: %v", err)
		return
	}
	defer configPostgre.Disconnect(ctx, postgresDB)
	logger.Infof(ctx, "PostgreSQL connected successfully to %s:%d/%s", cfg.Postgres.Host, cfg.Postgres.Port, cfg.Postgres.DBName)

	// Initialize Redis
	redisClient, err := configRedis.Connect(ctx, cfg.Redis)
	if err != nil {
		logger.Errorf(ctx, "Failed to connect to Redis: %v", err)
		return
	}
	defer configRedis.Disconnect(redisClient)
	logger.Infof(ctx, "Redis connected successfully to %s", cfg.Redis.Host)

	// Initialize Discord webhook (optional)
	var discordClient discord.IDiscord
	if cfg.Discord.WebhookID != "" && cfg.Discord.WebhookToken != "" {
		webhook, err := discord.NewWebhook(cfg.Discord.WebhookID, cfg.Discord.WebhookToken)
		if err != nil {
			logger.Warnf(ctx, "Discord webhook not configured: %v", err)
		} else if client, err := discord.New(logger, webhook); err != nil {
			logger.Warnf(ctx, "Failed to initialize Discord webhook: %v", err)
		} else {
			discordClient = client
			logger.Info(ctx, "Discord webhook initialized")
		}
	}

	// JWT session manager
	jwtManager := jwt.New(jwt.Config{
		SecretKey: cfg.JWT.SecretKey,
		Issuer:    cfg.JWT.Issuer,
		TTL:       cfg.JWT.TTL,
	})

	// Seed the demo dataset
	if cfg.Demo.Seed {
		userRepo := userPostgre.New(logger, postgresDB)
		postRepo := postPostgre.New(logger, postgresDB)
		if err := seed.Run(ctx, logger, userRepo, postRepo); err != nil {
			logger.Errorf(ctx, "Failed to seed demo data: %v", err)
			return
		}
	}

	// Initialize HTTP server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Port: cfg.HTTPServer.Port,
		Mode: cfg.HTTPServer.Mode,

		WSConfig: cfg.WebSocket,

		JWTManager: jwtManager,
		Cookie:     cfg.Cookie,

		DB:      postgresDB,
		Redis:   redisClient,
		Discord: discordClient,
	})
	if err != nil {
		logger.Errorf(ctx, "Failed to initialize HTTP server: %v", err)
		return
	}

	if err := httpServer.Run(); err != nil {
		logger.Errorf(ctx, "Failed to run server: %v", err)
		return
	}
}
