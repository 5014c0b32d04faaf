package container

import (
	"context"
	"fmt"
	"time"

	"library-catalog/internal/config"
	infraCache "library-catalog/internal/infrastructure/cache"
	"library-catalog/internal/infrastructure/database"
	"library-catalog/pkg/cache"
	"library-catalog/pkg/logger"

	authorHandler "library-catalog/internal/domains/author/handler"
	authorRepo "library-catalog/internal/domains/author/repository"
	authorService "library-catalog/internal/domains/author/service"
	bookHandler "library-catalog/internal/domains/book/handler"
	bookRepo "library-catalog/internal/domains/book/repository"
	bookService "library-catalog/internal/domains/book/service"
	instanceHandler "library-catalog/internal/domains/bookinstance/handler"
	instanceRepo "library-catalog/internal/domains/bookinstance/repository"
	instanceService "library-catalog/internal/domains/bookinstance/service"
	genreHandler "library-catalog/internal/domains/genre/handler"
	genreRepo "library-catalog/internal/domains/genre/repository"
	genreService "library-catalog/internal/domains/genre/service"
)

// Container is the root of the dependency graph. Every component is a
// singleton built once at startup, in dependency order: config,
// infrastructure, repositories, services, handlers.
type Container struct {
	Config *config.Config
	DB     *database.PostgresDB
	Cache  cache.Cache

	AuthorRepo   authorRepo.RepositoryInterface
	BookRepo     bookRepo.RepositoryInterface
	GenreRepo    genreRepo.RepositoryInterface
	InstanceRepo instanceRepo.RepositoryInterface

	AuthorService   authorService.ServiceInterface
	BookService     bookService.ServiceInterface
	GenreService    genreService.ServiceInterface
	InstanceService instanceService.ServiceInterface

	AuthorHandler   *authorHandler.AuthorHandler
	BookHandler     *bookHandler.BookHandler
	GenreHandler    *genreHandler.GenreHandler
	InstanceHandler *instanceHandler.BookInstanceHandler
}

// NewContainer builds the whole graph. A database failure is fatal; a
// Redis failure is not, the cache degrades to passthrough misses.
func NewContainer() (*Container, error) {
	c := &Container{}

	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	c.Config = cfg

	db := database.NewPostgresDB(&cfg.Database)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := db.Connect(ctx); err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	if err := db.HealthCheck(context.Background()); err != nil {
		return nil, fmt.Errorf("database health check failed: %w", err)
	}
	c.DB = db

	redisCache := infraCache.NewRedisCache(
		cfg.Redis.Host,
		cfg.Redis.Password,
		cfg.Redis.DB,
	)
	if rc, ok := redisCache.(*infraCache.RedisCache); ok {
		if err := rc.Connect(context.Background()); err != nil {
			logger.Error("redis connection failed (non-critical)", err)
		}
	}
	c.Cache = redisCache

	c.initRepositories()
	c.initServices()
	c.initHandlers()

	logger.Info("container initialized", map[string]interface{}{
		"environment": cfg.App.Environment,
	})

	return c, nil
}

func (c *Container) initRepositories() {
	pool := c.DB.Pool

	c.AuthorRepo = authorRepo.NewPostgresRepository(pool)
	c.BookRepo = bookRepo.NewPostgresRepository(pool, c.Cache)
	c.GenreRepo = genreRepo.NewPostgresRepository(pool, c.Cache)
	c.InstanceRepo = instanceRepo.NewPostgresRepository(pool)
}

func (c *Container) initServices() {
	c.AuthorService = authorService.NewAuthorService(c.AuthorRepo, c.BookRepo)
	c.BookService = bookService.NewBookService(c.BookRepo, c.InstanceRepo)
	c.GenreService = genreService.NewGenreService(c.GenreRepo, c.BookRepo)
	c.InstanceService = instanceService.NewBookInstanceService(c.InstanceRepo, c.BookRepo)
}

func (c *Container) initHandlers() {
	c.AuthorHandler = authorHandler.NewAuthorHandler(c.AuthorService)
	c.BookHandler = bookHandler.NewBookHandler(c.BookService)
	c.GenreHandler = genreHandler.NewGenreHandler(c.GenreService)
	c.InstanceHandler = instanceHandler.NewBookInstanceHandler(c.InstanceService)
}

// Cleanup releases infrastructure resources during shutdown.
func (c *Container) Cleanup() {
	if c.DB != nil {
		c.DB.Close()
	}

	if c.Cache != nil {
		if rc, ok := c.Cache.(*infraCache.RedisCache); ok {
			if err := rc.Close(); err != nil {
				logger.Error("failed to close redis", err)
			}
		}
	}
}
