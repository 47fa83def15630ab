package router

import (
	"time"

	"alumni-network/backend/internal/api"
	"alumni-network/backend/pkg/config"
	"alumni-network/backend/pkg/di"
	"alumni-network/backend/pkg/errors"
	"alumni-network/backend/pkg/health"
	"alumni-network/backend/pkg/logger"
	"alumni-network/backend/pkg/middleware"
	"alumni-network/backend/pkg/validator"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

// Router is the main router for the application
type Router struct {
	Engine    *gin.Engine
	Container *di.Container
	Logger    *logger.Logger
	Config    *config.Config
	Health    *health.Checker
}

// New creates a new router with the given container
func New(container *di.Container) *Router {
	logger.SetGlobal(container.Logger)

	cfg := config.Get()

	if cfg.Server.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	engine := gin.New()

	// Logger middleware first to capture all requests
	engine.Use(logger.Middleware(container.Logger))
	engine.Use(middleware.RequestID())
	engine.Use(errors.ErrorHandler())
	engine.Use(errors.RecoveryWithLogger())

	limiterOpts := middleware.DefaultRateLimiterOptions()
	limiterOpts.Limit = rate.Limit(cfg.Security.RateLimit)
	limiterOpts.Burst = cfg.Security.RateLimitBurst
	rateLimiter := middleware.NewRateLimiter(container.Logger, limiterOpts)
	engine.Use(rateLimiter.Middleware())

	checker := health.NewChecker(container.Logger)
	checker.RegisterCheck("database", func() (health.Status, string, error) {
		if err := config.TestConnection(container.DB); err != nil {
			return health.StatusDown, "database unreachable", err
		}
		return health.StatusUp, "database reachable", nil
	})
	if container.Cache != nil {
		checker.RegisterCheck("redis", func() (health.Status, string, error) {
			if err := container.Cache.Ping(); err != nil {
				return health.StatusDown, "cache unreachable", err
			}
			return health.StatusUp, "cache reachable", nil
		})
	}

	return &Router{
		Engine:    engine,
		Container: container,
		Logger:    container.Logger,
		Config:    cfg,
		Health:    checker,
	}
}

// SetupRoutes registers all application routes
func (r *Router) SetupRoutes() {
	r.Engine.Use(corsMiddleware(r.Config.Security.AllowedOrigins))

	chatHandler := api.NewChatHandler(r.Container.ChatService, r.Logger)
	authHandler := api.NewAuthHandler(r.Container.DirectoryService, r.Logger)
	profileHandler := api.NewProfileHandler(r.Container.DirectoryService, r.Logger)
	eventHandler := api.NewEventHandler(r.Container.EventService, r.Logger)
	jobHandler := api.NewJobHandler(r.Container.JobService, r.Logger)
	statsHandler := api.NewStatsHandler(r.Container.StatsService)

	r.Engine.GET("/health", r.healthCheckHandler())

	chatHandler.RegisterRoutes(r.Engine)
	authHandler.RegisterRoutes(r.Engine)
	profileHandler.RegisterRoutes(r.Engine)
	eventHandler.RegisterRoutes(r.Engine)
	jobHandler.RegisterRoutes(r.Engine)
	statsHandler.RegisterRoutes(r.Engine)
}

// AddOpenAPIValidation enables request validation against the given schema
func (r *Router) AddOpenAPIValidation(schemaPath string) {
	v, err := validator.NewOpenAPIValidator(schemaPath)
	if err != nil {
		r.Logger.LogError(err, "Failed to load OpenAPI schema, validation disabled", "path", schemaPath)
		return
	}
	r.Engine.Use(v.Middleware())
}

// healthCheckHandler runs the registered health checks
func (r *Router) healthCheckHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		overall, components := r.Health.Run()

		status := 200
		if overall != health.StatusUp {
			status = 503
		}

		c.JSON(status, gin.H{
			"status":     overall,
			"components": components,
			"time":       time.Now().Format(time.RFC3339),
		})
	}
}

// corsMiddleware allows the browser frontend to call the API directly.
// With a wildcard in allowedOrigins the request origin is echoed back;
// otherwise only listed origins are allowed.
func corsMiddleware(allowedOrigins []string) gin.HandlerFunc {
	allowAll := false
	allowed := make(map[string]bool, len(allowedOrigins))
	for _, origin := range allowedOrigins {
		if origin == "*" {
			allowAll = true
		}
		allowed[origin] = true
	}

	return func(c *gin.Context) {
		origin := c.Request.Header.Get("Origin")
		switch {
		case origin == "":
			origin = "*"
		case !allowAll && !allowed[origin]:
			c.Next()
			return
		}

		c.Writer.Header().Set("Access-Control-Allow-Origin", origin)
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept, Accept-Encoding, Authorization, Origin, Cache-Control")
		c.Writer.Header().Set("Access-Control-Max-Age", "86400")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	}
}
