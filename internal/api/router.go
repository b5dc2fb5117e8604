package api

import (
	"time"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	goredis "github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"github.com/dreamladder/backoffice/internal/api/handler"
	"github.com/dreamladder/backoffice/internal/api/middleware"
	"github.com/dreamladder/backoffice/internal/core/domain"
	"github.com/dreamladder/backoffice/internal/core/ports"
	"github.com/dreamladder/backoffice/internal/core/service"
	"github.com/dreamladder/backoffice/internal/infrastructure/db/postgres"
	"github.com/dreamladder/backoffice/internal/infrastructure/db/redis"
)

// RouterConfig carries everything NewRouter needs to wire the API.
type RouterConfig struct {
	DB        *gorm.DB
	Redis     *goredis.Client
	Queue     ports.EnquiryQueue
	JWTSecret string
	TokenTTL  time.Duration
	Log       zerolog.Logger
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(cfg RouterConfig) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(cfg.Log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.CORS())
	e.Use(echoprometheus.NewMiddleware("backoffice"))

	// --- Dependencies ---
	authRepo := postgres.NewAuthRepository(cfg.DB)
	propertyRepo := postgres.NewPropertyRepository(cfg.DB)
	enquiryRepo := postgres.NewEnquiryRepository(cfg.DB)
	transactionRepo := postgres.NewTransactionRepository(cfg.DB)
	receiptRepo := postgres.NewReceiptRepository(cfg.DB)
	settingRepo := postgres.NewSettingRepository(cfg.DB)
	dashboardRepo := postgres.NewDashboardRepository(cfg.DB)

	authService := service.NewAuthService(authRepo, cfg.JWTSecret, cfg.TokenTTL)
	propertyService := service.NewPropertyService(propertyRepo, cfg.Log)
	enquiryService := service.NewEnquiryService(enquiryRepo, cfg.Queue, cfg.Log)
	financeService := service.NewFinanceService(transactionRepo, receiptRepo, cfg.Log)
	settingsService := service.NewSettingsService(settingRepo, cfg.Log)
	dashboardService := service.NewDashboardService(dashboardRepo, redis.NewStatsCache(cfg.Redis), cfg.Log)

	authHandler := handler.NewAuthHandler(authService)
	propertyHandler := handler.NewPropertyHandler(propertyService)
	enquiryHandler := handler.NewEnquiryHandler(enquiryService)
	transactionHandler := handler.NewTransactionHandler(financeService)
	receiptHandler := handler.NewReceiptHandler(financeService)
	settingsHandler := handler.NewSettingsHandler(settingsService)
	dashboardHandler := handler.NewDashboardHandler(dashboardService)
	healthHandler := handler.NewHealthHandler()
	healthDepsHandler := handler.NewHealthDependenciesHandler(cfg.DB, cfg.Redis)

	authMiddleware := middleware.Auth(cfg.JWTSecret)
	adminOnly := middleware.RBAC(domain.RoleAdmin)

	// --- Health probes and metrics (no auth required) ---
	e.GET("/health", healthHandler.Liveness)            // liveness  – is the process alive?
	e.GET("/health/ready", healthDepsHandler.Readiness) // readiness – are dependencies up?
	e.GET("/metrics", echoprometheus.NewHandler())

	// --- Public site routes ---
	e.POST("/auth/login", authHandler.Login)
	e.GET("/properties", propertyHandler.List)
	e.GET("/properties/:id", propertyHandler.Get)
	e.POST("/enquiries", enquiryHandler.Submit)
	e.GET("/settings", settingsHandler.All)

	// --- Admin routes (bearer token + admin role) ---
	admin := e.Group("", authMiddleware, adminOnly)

	admin.GET("/auth/me", authHandler.Me)

	admin.POST("/properties", propertyHandler.Create)
	admin.PUT("/properties/:id", propertyHandler.Update)
	admin.DELETE("/properties/:id", propertyHandler.Delete)

	admin.GET("/enquiries", enquiryHandler.List)
	admin.PUT("/enquiries/:id", enquiryHandler.Update)

	admin.GET("/transactions", transactionHandler.List)
	admin.POST("/transactions", transactionHandler.Create)
	admin.PUT("/transactions/:id", transactionHandler.Update)
	admin.DELETE("/transactions/:id", transactionHandler.Delete)

	admin.GET("/receipts", receiptHandler.List)
	admin.GET("/receipts/:id", receiptHandler.Get)
	admin.POST("/receipts", receiptHandler.Create)
	admin.PUT("/receipts/:id", receiptHandler.Update)
	admin.DELETE("/receipts/:id", receiptHandler.Delete)

	admin.PUT("/settings", settingsHandler.Update)

	admin.GET("/dashboard/stats", dashboardHandler.Stats)

	return e
}
