package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/transitpulse/transit-api/internal/api/handler"
	"github.com/transitpulse/transit-api/internal/api/middleware"
	"github.com/transitpulse/transit-api/internal/core/domain"
	"github.com/transitpulse/transit-api/internal/core/ports"
	"github.com/transitpulse/transit-api/internal/core/service"
	"github.com/transitpulse/transit-api/internal/core/token"
	"github.com/transitpulse/transit-api/internal/infrastructure/config"
	redisinfra "github.com/transitpulse/transit-api/internal/infrastructure/db/redis"
	healthhandlers "github.com/transitpulse/transit-api/internal/infrastructure/http/handlers"
)

// NewRouter builds and returns the Echo instance with all routes registered.
// rdb may be nil; the login throttle is then disabled.
func NewRouter(store ports.CredentialRepository, rdb *redis.Client, cfg *config.Config, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.CORS())
	e.Use(echoprometheus.NewMiddleware("transit"))

	// --- Dependencies ---
	codec := token.NewCodec(cfg.JWTSecret)
	authService := service.NewAuthService(store, codec, cfg.TokenTTL)

	var limiter handler.LoginLimiter
	if rdb != nil {
		limiter = redisinfra.NewLoginThrottle(rdb)
	}

	authHandler := handler.NewAuthHandler(authService, limiter)
	adminHandler := handler.NewAdminHandler(authService)
	passengerHandler := handler.NewPassengerHandler()
	driverHandler := handler.NewDriverHandler()
	authorityHandler := handler.NewAuthorityHandler()
	chatHandler := handler.NewChatHandler()

	authenticated := middleware.Auth(codec)
	driverOnly := middleware.RequireRole(domain.RoleDriver)
	authorityOnly := middleware.RequireRole(domain.RoleAuthority)
	adminOnly := middleware.RequireRole(domain.RoleAdmin)

	// --- Public routes ---
	e.POST("/api/login", authHandler.Login)

	// --- Authenticated routes (any role) ---
	apiGroup := e.Group("/api", authenticated)
	apiGroup.GET("/alerts", passengerHandler.Alerts)
	apiGroup.POST("/alerts", passengerHandler.Alerts)
	apiGroup.GET("/buses", passengerHandler.Buses)
	apiGroup.POST("/feedback", passengerHandler.Feedback)
	apiGroup.POST("/sos", passengerHandler.SOS)
	apiGroup.GET("/chat/:route", chatHandler.Messages)
	apiGroup.POST("/chat/:route", chatHandler.Messages)
	apiGroup.GET("/profile", authHandler.Profile)
	apiGroup.POST("/logout", authHandler.Logout)

	// --- Driver routes ---
	apiGroup.POST("/breakdown", driverHandler.Breakdown, driverOnly)
	apiGroup.GET("/driver/route-info", driverHandler.RouteInfo, driverOnly)

	// --- Authority routes ---
	apiGroup.GET("/authority/all-vehicles", authorityHandler.AllVehicles, authorityOnly)
	apiGroup.GET("/authority/analytics", authorityHandler.Analytics, authorityOnly)
	apiGroup.GET("/monitor", authorityHandler.Monitor, authorityOnly)

	// --- Admin routes ---
	apiGroup.GET("/admin/users", adminHandler.Users, adminOnly)
	apiGroup.GET("/admin/system", adminHandler.System, adminOnly)
	apiGroup.POST("/admin/add-user", adminHandler.AddUser, adminOnly)

	// --- Observability (no auth required) ---
	healthHandler := healthhandlers.NewHealthHandler()
	healthDepsHandler := healthhandlers.NewHealthDependenciesHandler(rdb)

	e.GET("/health", healthHandler.Liveness)            // liveness  – is the process alive?
	e.GET("/health/ready", healthDepsHandler.Readiness) // readiness – are dependencies up?
	e.GET("/metrics", echoprometheus.NewHandler())

	return e
}
