package api

import (
	"github.com/go-redis/redis/v8"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/websocket/v2"

	"github.com/seoscore/seoscore/internal/api/handlers"
	"github.com/seoscore/seoscore/internal/api/middleware"
	"github.com/seoscore/seoscore/internal/config"
	"github.com/seoscore/seoscore/internal/database"
	"github.com/seoscore/seoscore/internal/repository"
	"github.com/seoscore/seoscore/internal/repository/cache"
	"github.com/seoscore/seoscore/internal/service/analyzer"
	"github.com/seoscore/seoscore/internal/service/seo"
)

// SetupRoutes configures all API routes
func SetupRoutes(app *fiber.App, db *database.DatabaseClient, redisClient *database.RedisClient, cfg *config.Config) {
	// Wire the service stack
	var redisConn *redis.Client
	if redisClient != nil {
		redisConn = redisClient.Client
	}

	repos := repository.NewRepositoryFactory(db.DB)
	cacheRepo := cache.NewRepository(redisConn, cfg.CacheTTL)
	engine := seo.NewEngine(cfg.SiteBaseURL)
	service := analyzer.NewService(engine, repos.AnalysisRepository, cacheRepo, cfg.ParseTimeout)

	analysisHandler := handlers.NewAnalysisHandler(service, cfg)
	wsHandler := handlers.NewWebSocketHandler(service)

	// API group
	api := app.Group("/api")

	// Health check route
	api.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status": "ok",
		})
	})

	// Scoring routes
	limited := api.Group("/", middleware.RateLimit(cfg.RateLimitRPS, cfg.RateLimitBurst))
	limited.Post("/analyze", analysisHandler.AnalyzeContent)
	limited.Post("/analyze/page", analysisHandler.AnalyzePage)

	// Rule registry
	api.Get("/rules", analysisHandler.GetRules)

	// Stored history
	analyses := api.Group("/analyses")
	analyses.Get("/", analysisHandler.ListAnalyses)
	analyses.Get("/:id", analysisHandler.GetAnalysis)
	analyses.Delete("/:id", analysisHandler.DeleteAnalysis)

	// WebSocket endpoint for real-time scoring
	app.Use("/ws", func(c *fiber.Ctx) error {
		if websocket.IsWebSocketUpgrade(c) {
			return c.Next()
		}
		return c.SendStatus(fiber.StatusUpgradeRequired)
	})

	app.Get("/ws/analyze", websocket.New(wsHandler.HandleAnalyzeSocket))
}
