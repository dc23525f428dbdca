package http

import (
	"context"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"ticketdesk/internal/infrastructure/cache"
	"ticketdesk/internal/infrastructure/config"
	"ticketdesk/internal/infrastructure/metrics"
	"ticketdesk/internal/infrastructure/ratelimit"
	"ticketdesk/internal/shared/logger"
)

// Container holds all infrastructure components, repositories, use cases and
// handlers. It is responsible for wiring everything together and providing a
// Shutdown() method for graceful termination.
type Container struct {
	// Core infrastructure
	engine *gin.Engine
	db     *gorm.DB
	cfg    *config.Config
	log    logger.Interface
	redis  *redis.Client

	// Optional; nil when disabled or unreachable.
	metrics     *metrics.Metrics
	ticketCache *cache.RedisTicketCache
	rateLimiter ratelimit.RateLimiter

	repos *repositories
	ucs   *allUseCases
	hdlrs *allHandlers
}

// NewContainer wires the service. Redis is optional: when it is disabled or
// cannot be reached the ticket cache and the rate limiter are left out.
func NewContainer(ctx context.Context, db *gorm.DB, cfg *config.Config, log logger.Interface) *Container {
	c := &Container{
		engine: gin.New(),
		db:     db,
		cfg:    cfg,
		log:    log,
	}

	c.initInfrastructure(ctx)
	c.repos = newRepositories(db)
	c.ucs = c.newUseCases()
	c.hdlrs = c.newHandlers()

	return c
}

func (c *Container) initInfrastructure(ctx context.Context) {
	if c.cfg.Metrics.Enabled {
		c.metrics = metrics.New()
	}

	if !c.cfg.Redis.Enabled {
		c.log.Infow("redis disabled, running without ticket cache and rate limiting")
		return
	}

	client, err := cache.NewRedisClient(ctx, &c.cfg.Redis)
	if err != nil {
		c.log.Warnw("redis unavailable, running without ticket cache and rate limiting", "error", err)
		return
	}
	c.redis = client
	c.ticketCache = cache.NewRedisTicketCache(client, c.cfg.Redis.TicketTTL, c.log.Named("ticket_cache"))

	if c.cfg.RateLimit.Enabled {
		c.rateLimiter = ratelimit.NewRedisRateLimiter(client, ratelimit.RateLimitConfig{
			Requests: c.cfg.RateLimit.Requests,
			Window:   c.cfg.RateLimit.Window,
		})
	}
}

// Engine returns the gin engine with routes registered by SetupRoutes.
func (c *Container) Engine() *gin.Engine {
	return c.engine
}

// Shutdown releases connections owned by the container. The database is
// closed by its owner.
func (c *Container) Shutdown() error {
	if c.redis != nil {
		return c.redis.Close()
	}
	return nil
}
