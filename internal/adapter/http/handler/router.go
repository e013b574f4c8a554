package handler

import (
	"agent-battles-gateway/internal/adapter/http/middleware"
	redisStore "agent-battles-gateway/internal/adapter/storage/redis"
	"agent-battles-gateway/internal/core/domain"
	"agent-battles-gateway/internal/core/ports"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

const maxBodyBytes = 64 << 10

// RouterDeps holds all dependencies needed to set up routes.
type RouterDeps struct {
	Mode           string // gin mode; empty keeps the current one
	App            domain.AppInfo
	ConsentSvc     ports.ConsentService
	WalletSvc      ports.WalletSessionService
	TokenSvc       ports.DeviceTokenService
	Cookie         middleware.CookieOptions
	RateLimitStore *redisStore.RateLimitStore // nil = rate limiting disabled
	HealthCheckers []ports.HealthChecker
	AuditSvc       ports.AuditService // nil = audit logging disabled
	Logger         zerolog.Logger
}

// SetupRouter initialises the Gin engine with all routes and middleware.
func SetupRouter(deps RouterDeps) *gin.Engine {
	if deps.Mode != "" {
		gin.SetMode(deps.Mode)
	}
	r := gin.New()

	// Global middleware
	r.Use(middleware.RequestID())
	r.Use(middleware.Recovery(deps.Logger))
	r.Use(middleware.RequestLogger(deps.Logger))
	r.Use(middleware.MaxBodySize(maxBodyBytes))

	// Audit logging (after response)
	if deps.AuditSvc != nil {
		r.Use(middleware.AuditLog(deps.AuditSvc))
	}

	// Health check (deep: pings every configured backend)
	r.GET("/health", HealthCheck(deps.HealthCheckers...))

	// Swagger documentation
	swagger := r.Group("/swagger")
	{
		swagger.GET("", SwaggerUI)
		swagger.GET("/spec", SwaggerSpec)
	}

	rules := middleware.DefaultRateLimitRules()
	rl := func(group string) gin.HandlerFunc {
		return middleware.RateLimiter(deps.RateLimitStore, group, rules[group], deps.Logger)
	}

	appHandler := NewAppHandler(deps.App, deps.ConsentSvc, deps.WalletSvc, deps.Logger)
	consentHandler := NewConsentHandler(deps.ConsentSvc)
	walletHandler := NewWalletHandler(deps.WalletSvc, deps.Logger)

	// API v1 routes, all scoped to the requesting device
	v1 := r.Group("/api/v1", middleware.DeviceIdentity(deps.TokenSvc, deps.Cookie, deps.Logger))

	v1.GET("/app", rl("read"), appHandler.AppInfo)
	v1.GET("/page", rl("read"), appHandler.Page)

	consent := v1.Group("/consent")
	{
		consent.GET("", rl("read"), consentHandler.Get)
		consent.POST("/acknowledge", rl("consent"), consentHandler.Acknowledge)
	}

	wallet := v1.Group("/wallet")
	{
		wallet.GET("/session", rl("read"), walletHandler.Session)
		wallet.GET("/session/stream", rl("wallet_stream"), walletHandler.Stream)
		wallet.GET("/session/ws", rl("wallet_stream"), walletHandler.WebSocket)
		wallet.POST("/connect", rl("wallet_connect"), walletHandler.Connect)
		wallet.POST("/callback", rl("wallet_callback"), walletHandler.Callback)
		wallet.POST("/disconnect", rl("wallet_connect"), walletHandler.Disconnect)
	}

	return r
}
