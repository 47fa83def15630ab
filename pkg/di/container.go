package di

import (
	"alumni-network/backend/internal/repository"
	"alumni-network/backend/internal/service"
	"alumni-network/backend/pkg/config"
	"alumni-network/backend/pkg/logger"
	"alumni-network/backend/shared/redis"

	"gorm.io/gorm"
)

// Container holds all the dependencies for the application
type Container struct {
	DB     *gorm.DB
	Logger *logger.Logger
	Cache  *redis.Client

	UserRepository    repository.UserRepository
	MessageRepository repository.MessageRepository
	EventRepository   repository.EventRepository
	JobRepository     repository.JobRepository

	ChatService      *service.ChatService
	DirectoryService *service.DirectoryService
	EventService     *service.EventService
	JobService       *service.JobService
	StatsService     *service.StatsService
}

// Config holds the configuration for the container
type Config struct {
	LoggerConfig logger.Config
}

// DefaultConfig returns a default configuration
func DefaultConfig() *Config {
	return &Config{
		LoggerConfig: logger.DefaultConfig(),
	}
}

// New wires repositories and services around the shared database handle
func New(db *gorm.DB, cfg *Config) (*Container, error) {
	if cfg == nil {
		cfg = DefaultConfig()
	}

	log := logger.New(cfg.LoggerConfig)
	appCfg := config.Get()

	var cache *redis.Client
	if appCfg.Cache.Enabled {
		cache = redis.NewClient()
	}

	userRepo := repository.NewGormUserRepository(db)
	messageRepo := repository.NewGormMessageRepository(db)
	eventRepo := repository.NewGormEventRepository(db)
	jobRepo := repository.NewGormJobRepository(db)

	return &Container{
		DB:     db,
		Logger: log,
		Cache:  cache,

		UserRepository:    userRepo,
		MessageRepository: messageRepo,
		EventRepository:   eventRepo,
		JobRepository:     jobRepo,

		ChatService:      service.NewChatService(messageRepo, userRepo),
		DirectoryService: service.NewDirectoryService(userRepo, cache, appCfg.Cache.TTL),
		EventService:     service.NewEventService(eventRepo),
		JobService:       service.NewJobService(jobRepo),
		StatsService:     service.NewStatsService(userRepo, eventRepo, jobRepo),
	}, nil
}
