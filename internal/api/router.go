package api

import (
	"net/http"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoswagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/shreekara/studio-api/internal/api/handler"
	"github.com/shreekara/studio-api/internal/api/middleware"
	"github.com/shreekara/studio-api/internal/core/domain"
	"github.com/shreekara/studio-api/internal/core/service"
	"github.com/shreekara/studio-api/internal/infrastructure/config"
	mongodb "github.com/shreekara/studio-api/internal/infrastructure/db/mongo"
	redisdb "github.com/shreekara/studio-api/internal/infrastructure/db/redis"
	"github.com/shreekara/studio-api/internal/infrastructure/queue"
)

// NewRouter wires every repository, service, and handler and returns the
// Echo instance plus the activity dispatcher (which the caller must Start).
func NewRouter(db *mongo.Database, rdb *redis.Client, cfg *config.Config, log zerolog.Logger) (*echo.Echo, *queue.Dispatcher) {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("studio"))

	// --- Dependencies ---
	authorRepo := mongodb.NewAuthorRepository(db)
	contentRepo := mongodb.NewContentRepository(db)
	activityRepo := mongodb.NewActivityRepository(db)
	listCache := redisdb.NewListCache(rdb, log)

	tokenService := service.NewTokenService(cfg.JWTSecret, cfg.TokenTTL())
	authService := service.NewAuthService(authorRepo, tokenService, log)
	contentService := service.NewContentService(contentRepo, listCache, cfg.MaxUploadBytes, log)
	activityService := service.NewActivityService(activityRepo, log)

	dispatcher := queue.NewDispatcher(0, activityService, log)

	authHandler := handler.NewAuthHandler(authService)
	contentHandler := handler.NewContentHandler(contentService, dispatcher)
	activityHandler := handler.NewActivityHandler(activityService)
	requireAuth := middleware.Auth(tokenService, authorRepo)

	// --- API routes ---
	apiGroup := e.Group("/api")
	apiGroup.GET("", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"message": "Shree Kara Studios API"})
	})

	apiGroup.POST("/auth/token", authHandler.Token)
	apiGroup.GET("/user/profile", authHandler.Profile, requireAuth)
	apiGroup.GET("/user/activity", activityHandler.Recent, requireAuth)

	apiGroup.POST("/upload/image", contentHandler.UploadImage, requireAuth)
	apiGroup.POST("/upload/video", contentHandler.UploadVideo, requireAuth)
	apiGroup.POST("/upload/poem", contentHandler.UploadPoem, requireAuth)
	apiGroup.POST("/upload/music", contentHandler.UploadMusic, requireAuth)

	for _, kind := range domain.Kinds {
		apiGroup.GET("/"+kind.Collection(), contentHandler.List(kind))
		apiGroup.DELETE("/"+kind.Collection()+"/:id", contentHandler.Delete(kind), requireAuth)
	}

	// --- Health probes (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", readinessHandler.Readiness)

	// --- Operational endpoints ---
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoswagger.WrapHandler)

	return e, dispatcher
}
