package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"styleflame/app/echo-server/router"
	"styleflame/business/article"
	"styleflame/business/feed"
	"styleflame/business/interaction"
	"styleflame/business/occasion"
	"styleflame/business/outfit"
	"styleflame/business/profile"
	"styleflame/business/search"
	"styleflame/business/style"
	"styleflame/business/stylist"
	"styleflame/internal/middleware"
	psqlRepo "styleflame/internal/repository/postgres"
	redisRepo "styleflame/internal/repository/redis"
	"styleflame/internal/rest"
	"styleflame/pkg/config"
	"styleflame/pkg/database"
	redisdb "styleflame/pkg/database/redis"
	"styleflame/pkg/logger"
	"styleflame/pkg/metrics"
	"styleflame/pkg/utils"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logger.Init(cfg.App.Environment)
	logger.Info("Starting Styleflame", "version", cfg.App.Version)

	utils.InitJWT(cfg.JWT.SecretKey)
	metrics.Init()

	db, err := database.InitPostgres(cfg)
	if err != nil {
		logger.Fatal("Failed to connect to database", "error", err)
	}

	logger.Info("Database connected successfully")

	redisClient, err := redisdb.NewRedisClient(cfg)
	if err != nil {
		logger.Fatal("Failed to connect to Redis", "error", err)
	}
	defer redisdb.CloseRedisClient(redisClient)

	// Init repo
	interactionRepo := psqlRepo.NewInteractionRepository(db)
	outfitRepo := psqlRepo.NewOutfitRepository(db)
	occasionRepo := psqlRepo.NewOccasionRepository(db)
	styleRepo := psqlRepo.NewStyleRepository(db)
	stylistRepo := psqlRepo.NewStylistRepository(db)
	articleRepo := psqlRepo.NewArticleRepository(db)
	searchRepo := psqlRepo.NewSearchRepository(db)
	tokenRepo := redisRepo.NewTokenRepository(redisClient)
	rateLimitRepo := redisRepo.NewRateLimitRepository(redisClient, cfg.RateLimit.MaxCallsPerSecondByIP, time.Second)

	// Init service
	profileService := profile.NewProfileService(interactionRepo, outfitRepo, profile.Config{
		NUpvote:      cfg.Profiling.NUpvote,
		NOpen:        cfg.Profiling.NOpen,
		NBuy:         cfg.Profiling.NBuy,
		NShowTime:    cfg.Profiling.NShowTime,
		NStyleFilter: cfg.Profiling.NStyleFilter,

		QuotaUpvote:      cfg.Profiling.QuotaUpvote,
		QuotaOpen:        cfg.Profiling.QuotaOpen,
		QuotaBuy:         cfg.Profiling.QuotaBuy,
		QuotaShowTime:    cfg.Profiling.QuotaShowTime,
		QuotaStyleFilter: cfg.Profiling.QuotaStyleFilter,
	})
	outfitService := outfit.NewOutfitService(outfitRepo, occasionRepo, styleRepo, stylistRepo, articleRepo, interactionRepo, searchRepo)
	feedService := feed.NewFeedService(outfitRepo, profileService, outfitService, cfg.Feed.MaxOutfits, cfg.Feed.DefaultOrder)
	searchService := search.NewSearchService(searchRepo, articleRepo, outfitRepo, outfitService, cfg.Feed.MaxOutfits)
	interactionService := interaction.NewInteractionService(interactionRepo, outfitRepo, outfitService)
	occasionService := occasion.NewOccasionService(occasionRepo)
	styleService := style.NewStyleService(styleRepo)
	stylistService := stylist.NewStylistService(stylistRepo)
	articleService := article.NewArticleService(articleRepo)

	// Init handler
	outfitHandler := rest.NewOutfitHandler(outfitService, interactionService)
	inspirationHandler := rest.NewInspirationHandler(feedService, interactionService)
	searchHandler := rest.NewSearchHandler(searchService, interactionService)
	profileHandler := rest.NewProfileHandler(profileService)
	interactionHandler := rest.NewInteractionHandler(interactionService)
	occasionHandler := rest.NewOccasionHandler(occasionService, interactionService)
	styleHandler := rest.NewStyleHandler(styleService, interactionService)
	stylistHandler := rest.NewStylistHandler(stylistService)
	articleHandler := rest.NewArticleHandler(articleService, interactionService)

	// Init echo
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	// Global middleware
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.CORSWithConfig(echomiddleware.CORSConfig{
		AllowOrigins: []string{"http://localhost:3000", "http://localhost:8080"},
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodPatch},
		AllowHeaders: []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept, echo.HeaderAuthorization},
	}))
	e.Use(middleware.RateLimitMiddleware(rateLimitRepo))

	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	// Auth middleware
	optionalAuth := middleware.OptionalAuthMiddleware()
	authRequired := middleware.AuthMiddlewareWithRedis(tokenRepo)
	adminOnly := middleware.AdminOnly()

	// Setup routes
	api := e.Group("/api/v1")
	router.SetupOutfitRoutes(api, outfitHandler, optionalAuth, authRequired, adminOnly)
	router.SetupSearchRoutes(api, searchHandler, optionalAuth)
	router.SetupInspirationRoutes(api, inspirationHandler, authRequired)
	router.SetupProfileRoutes(api, profileHandler, authRequired)
	router.SetupInteractionRoutes(api, interactionHandler, authRequired)
	router.SetupOccasionRoutes(api, occasionHandler, optionalAuth, authRequired, adminOnly)
	router.SetupStyleRoutes(api, styleHandler, optionalAuth, authRequired, adminOnly)
	router.SetupStylistRoutes(api, stylistHandler, optionalAuth, authRequired, adminOnly)
	router.SetupArticleRoutes(api, articleHandler, optionalAuth)

	// Goroutine server
	go func() {
		addr := fmt.Sprintf(":%s", cfg.Server.Port)
		logger.Info("Server starting", "address", addr)
		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			logger.Fatal("Failed to start server", "error", err)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := e.Shutdown(ctx); err != nil {
		logger.Error("Server shutdown error", "error", err)
	}

	logger.Info("Server stopped")
}
