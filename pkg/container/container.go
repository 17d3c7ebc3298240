package container

import (
	"context"
	"fmt"
	"time"

	"github.com/hibiken/asynq"

	"reflection-backend/internal/config"
	infraCache "reflection-backend/internal/infrastructure/cache"
	"reflection-backend/internal/infrastructure/database"
	"reflection-backend/internal/infrastructure/queue"
	"reflection-backend/internal/infrastructure/storage"
	"reflection-backend/pkg/cache"
	"reflection-backend/pkg/jwt"
	"reflection-backend/pkg/logger"

	adminHandler "reflection-backend/internal/domains/admin/handler"
	adminRepo "reflection-backend/internal/domains/admin/repository"
	adminService "reflection-backend/internal/domains/admin/service"
	authorHandler "reflection-backend/internal/domains/author/handler"
	authorRepo "reflection-backend/internal/domains/author/repository"
	authorService "reflection-backend/internal/domains/author/service"
	contentHandler "reflection-backend/internal/domains/content/handler"
	contentRepo "reflection-backend/internal/domains/content/repository"
	contentService "reflection-backend/internal/domains/content/service"
	"reflection-backend/internal/domains/moderation"
	moderationHandler "reflection-backend/internal/domains/moderation/handler"
	subscriberHandler "reflection-backend/internal/domains/subscriber/handler"
	subscriberRepo "reflection-backend/internal/domains/subscriber/repository"
	subscriberService "reflection-backend/internal/domains/subscriber/service"
)

// Container is the root of the dependency graph. Everything in it is a
// singleton built once at startup; construction order is config →
// infrastructure → repositories → services → handlers.
type Container struct {
	Config      *config.Config
	DB          *database.PostgresDB
	Cache       cache.Cache
	JWTManager  *jwt.Manager
	Storage     *storage.MinIOStorage
	AsynqClient *asynq.Client

	AdminRepo      adminRepo.RepositoryInterface
	AuthorRepo     authorRepo.RepositoryInterface
	ContentRepo    contentRepo.RepositoryInterface
	SubscriberRepo subscriberRepo.RepositoryInterface

	AdminService      adminService.ServiceInterface
	AuthorService     authorService.ServiceInterface
	ContentService    contentService.ServiceInterface
	SubscriberService subscriberService.ServiceInterface
	ModerationService moderation.ServiceInterface

	AdminHandler      *adminHandler.AdminHandler
	AuthorHandler     *authorHandler.AuthorHandler
	ContentHandler    *contentHandler.ContentHandler
	SubscriberHandler *subscriberHandler.SubscriberHandler
	ModerationHandler *moderationHandler.ModerationHandler
}

func NewContainer() (*Container, error) {
	c := &Container{}

	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	c.Config = cfg

	db := database.NewPostgresDB(cfg.DatabaseConnConfig())
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := db.Connect(ctx); err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	if err := db.HealthCheck(context.Background()); err != nil {
		return nil, fmt.Errorf("database health check failed: %w", err)
	}
	c.DB = db

	redisCache := infraCache.NewRedisCache(cfg.Redis.Host, cfg.Redis.Password, cfg.Redis.DB)
	if err := redisCache.Connect(context.Background()); err != nil {
		return nil, fmt.Errorf("failed to connect to redis: %w", err)
	}
	c.Cache = redisCache

	c.JWTManager = jwt.NewManager(cfg.JWT.Secret)

	minioStorage, err := storage.NewMinIOStorage(cfg.MinIO)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize storage: %w", err)
	}
	c.Storage = minioStorage

	c.AsynqClient = asynq.NewClient(asynq.RedisClientOpt{
		Addr:     cfg.Redis.Host,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	notifier := queue.NewAsynqNotifier(c.AsynqClient)

	// Repositories
	c.AdminRepo = adminRepo.NewPostgresRepository(db.Pool)
	c.AuthorRepo = authorRepo.NewPostgresRepository(db.Pool, c.Cache)
	c.ContentRepo = contentRepo.NewPostgresRepository(db.Pool, c.Cache)
	c.SubscriberRepo = subscriberRepo.NewPostgresRepository(db.Pool)

	// Services
	c.AdminService = adminService.NewAdminService(c.AdminRepo, c.JWTManager)
	c.AuthorService = authorService.NewAuthorService(c.AuthorRepo)
	c.ContentService = contentService.NewContentService(c.ContentRepo, c.AuthorRepo, c.Storage)
	c.SubscriberService = subscriberService.NewSubscriberService(c.SubscriberRepo, c.AuthorRepo)
	c.ModerationService = moderation.NewService(c.AuthorRepo, c.ContentRepo, c.SubscriberRepo, c.AdminRepo, notifier)

	// Handlers
	c.AdminHandler = adminHandler.NewAdminHandler(c.AdminService)
	c.AuthorHandler = authorHandler.NewAuthorHandler(c.AuthorService)
	c.ContentHandler = contentHandler.NewContentHandler(c.ContentService)
	c.SubscriberHandler = subscriberHandler.NewSubscriberHandler(c.SubscriberService)
	c.ModerationHandler = moderationHandler.NewModerationHandler(c.ModerationService)

	logger.Info("container initialized", map[string]interface{}{
		"environment": cfg.App.Environment,
	})

	return c, nil
}

// Cleanup releases all infrastructure connections.
func (c *Container) Cleanup() {
	if c.AsynqClient != nil {
		if err := c.AsynqClient.Close(); err != nil {
			logger.Error("failed to close asynq client", err)
		}
	}
	if rc, ok := c.Cache.(*infraCache.RedisCache); ok && rc != nil {
		if err := rc.Close(); err != nil {
			logger.Error("failed to close redis connection", err)
		}
	}
	if c.DB != nil {
		c.DB.Close()
	}
}
