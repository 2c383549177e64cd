package app

import (
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/you/streamsvc/domain"
	"github.com/you/streamsvc/internal/config"
	httpx "github.com/you/streamsvc/internal/http"
	"github.com/you/streamsvc/internal/http/handlers"
	"github.com/you/streamsvc/internal/http/middleware"
	"github.com/you/streamsvc/internal/infrastructure/auth"
	"github.com/you/streamsvc/internal/infrastructure/notifications"
	"github.com/you/streamsvc/internal/infrastructure/repositories"
	"github.com/you/streamsvc/internal/logging"
	"github.com/you/streamsvc/internal/services"
)

// Infrastructure holds the connections the container builds on. The caller
// owns them and closes them on shutdown.
type Infrastructure struct {
	DB       *gorm.DB
	Redis    *redis.Client
	Casbin   *auth.CasbinService
	Notifier domain.NotificationService
}

// Container holds all dependencies
type Container struct {
	// Config
	Config *config.Config
	Logger *zap.Logger

	// Infrastructure
	Infra Infrastructure

	// Repositories
	UserRepo      domain.UserRepository
	OTPRepo       domain.OTPRepository
	CatalogRepo   domain.CatalogRepository
	SearchRepo    domain.SearchRepository
	WatchlistRepo domain.WatchlistRepository
	Denylist      domain.TokenDenylist

	// Services
	Audit        domain.AuditLogger
	PasswordSvc  domain.PasswordService
	TokenSvc     domain.TokenService
	Dispatcher   domain.OTPDispatcher
	AuthSvc      domain.AuthService
	OTPSvc       domain.OTPService
	CatalogSvc   domain.CatalogService
	SearchSvc    domain.SearchService
	WatchlistSvc domain.WatchlistService
	PolicySvc    domain.PolicyService

	Router *gin.Engine
}

// NewContainer wires repositories, services and the router onto infra
func NewContainer(cfg *config.Config, infra Infrastructure, logger *zap.Logger) *Container {
	c := &Container{Config: cfg, Logger: logger, Infra: infra}

	c.initRepositories()
	c.initServices()
	c.initRouter()

	return c
}

func (c *Container) initRepositories() {
	c.UserRepo = repositories.NewUserRepository(c.Infra.DB)
	c.OTPRepo = repositories.NewOTPRepository(c.Infra.DB)
	c.CatalogRepo = repositories.NewCatalogRepository(c.Infra.DB)
	c.SearchRepo = repositories.NewSearchRepository(c.Infra.DB)
	c.WatchlistRepo = repositories.NewWatchlistRepository(c.Infra.DB)
	c.Denylist = repositories.NewTokenDenylist(c.Infra.Redis)
}

func (c *Container) initServices() {
	c.Audit = logging.NewAuditLogger(c.Logger)
	c.PasswordSvc = auth.NewPasswordService()
	c.TokenSvc = auth.NewJWTService(c.Config.JWTSecret, c.Config.JWTIssuer, c.Config.TokenTTL)
	c.Dispatcher = notifications.NewOTPDispatcher(c.Infra.Notifier, c.Config.OTPTTL)
	c.PolicySvc = services.NewPolicyService(c.Infra.Casbin.E)

	c.AuthSvc = services.NewAuthService(
		c.UserRepo,
		c.PasswordSvc,
		c.TokenSvc,
		c.Denylist,
		c.Audit,
		c.Logger.Named("auth"),
	)
	c.OTPSvc = services.NewOTPService(
		c.UserRepo,
		c.OTPRepo,
		c.Dispatcher,
		c.TokenSvc,
		c.Audit,
		c.Logger.Named("otp"),
		services.OTPConfig{Length: c.Config.OTPLength, TTL: c.Config.OTPTTL},
	)
	c.CatalogSvc = services.NewCatalogService(c.CatalogRepo)
	c.SearchSvc = services.NewSearchService(c.SearchRepo, c.Logger.Named("search"))
	c.WatchlistSvc = services.NewWatchlistService(c.WatchlistRepo, c.CatalogRepo)
}

func (c *Container) initRouter() {
	h := httpx.Handlers{
		Auth:      handlers.NewAuthHandlers(c.AuthSvc, c.OTPSvc, c.Config.IsProduction(), c.Logger),
		Content:   handlers.NewContentHandlers(c.CatalogSvc, c.Logger),
		Search:    handlers.NewSearchHandlers(c.SearchSvc, c.Logger),
		Watchlist: handlers.NewWatchlistHandlers(c.WatchlistSvc, c.Logger),
	}

	jwtMW := middleware.NewAuthMW(c.AuthSvc, c.Logger)
	casbinMW := middleware.NewCasbinMW(c.PolicySvc, c.Audit, c.Logger)

	c.Router = httpx.BuildRouter(h, jwtMW, casbinMW, c.Logger.Named("http"))
}
