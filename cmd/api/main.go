package main

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"agent-battles-gateway/config"
	httpHandler "agent-battles-gateway/internal/adapter/http/handler"
	"agent-battles-gateway/internal/adapter/http/middleware"
	"agent-battles-gateway/internal/adapter/storage/memory"
	pgStorage "agent-battles-gateway/internal/adapter/storage/postgres"
	redisStorage "agent-battles-gateway/internal/adapter/storage/redis"
	"agent-battles-gateway/internal/adapter/wallet"
	"agent-battles-gateway/internal/core/domain"
	"agent-battles-gateway/internal/core/ports"
	"agent-battles-gateway/internal/service"
	"agent-battles-gateway/pkg/logger"

	"github.com/jackc/pgx/v5/pgxpool"
	goredis "github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"github.com/urfave/cli/v2"
)

func main() {
	app := &cli.App{
		Name:  "agent-battles-gateway",
		Usage: "backend for the Agent Battles landing page: risk acknowledgment and wallet session",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Usage:   "path to the YAML config file",
				EnvVars: []string{"ABG_CONFIG"},
			},
		},
		Commands: []*cli.Command{serveCmd, migrateCmd},
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}
}

var serveCmd = &cli.Command{
	Name:  "serve",
	Usage: "start the HTTP API",
	Flags: []cli.Flag{
		&cli.StringFlag{Name: "openapi", Usage: "OpenAPI document served at /swagger", Value: "docs/api/openapi.yaml"},
	},
	Action: func(cctx *cli.Context) error {
		cfg, err := config.Load(cctx.String("config"))
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		return runServe(cctx.Context, cfg, cctx.String("openapi"))
	},
}

var migrateCmd = &cli.Command{
	Name:  "migrate",
	Usage: "create the PostgreSQL tables",
	Action: func(cctx *cli.Context) error {
		cfg, err := config.Load(cctx.String("config"))
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		log := logger.New(cfg.Log.Level, cfg.Log.Pretty)

		pool, err := pgStorage.NewPool(cctx.Context, cfg.Database, log)
		if err != nil {
			return err
		}
		defer pool.Close()

		if err := pgStorage.Migrate(cctx.Context, pool); err != nil {
			return err
		}
		log.Info().Msg("Migrations applied")
		return nil
	},
}

func runServe(ctx context.Context, cfg *config.Config, openapiPath string) error {
	log := logger.New(cfg.Log.Level, cfg.Log.Pretty)

	log.Info().
		Str("mode", cfg.Server.Mode).
		Int("port", cfg.Server.Port).
		Str("storage", cfg.Storage.Driver).
		Msg("Starting Agent Battles Gateway")

	// Redis backs the wallet provider, nonces and rate limits regardless of
	// where acknowledgments are stored.
	rdb, err := redisStorage.NewClient(ctx, cfg.Redis, log)
	if err != nil {
		return fmt.Errorf("failed to connect to Redis: %w", err)
	}
	defer rdb.Close()
	log.Info().Msg("Redis connected")

	healthCheckers := []ports.HealthChecker{redisStorage.NewHealthCheck(rdb)}

	var pool *pgxpool.Pool
	if cfg.Storage.Driver == config.StoragePostgres {
		pool, err = pgStorage.NewPool(ctx, cfg.Database, log)
		if err != nil {
			return fmt.Errorf("failed to connect to PostgreSQL: %w", err)
		}
		defer pool.Close()
		if err := pgStorage.Migrate(ctx, pool); err != nil {
			return err
		}
		healthCheckers = append(healthCheckers, pgStorage.NewHealthCheck(pool))
		log.Info().Msg("PostgreSQL connected")
	}

	storage := newDeviceStorage(cfg.Storage.Driver, rdb, pool, log)

	// Audit trail needs a database; without one it is disabled.
	var auditSvc ports.AuditService
	if pool != nil {
		auditSvc = service.NewAuditService(pgStorage.NewAuditRepository(pool), log)
	}

	secret := cfg.Device.Secret
	if secret == "" {
		secret, err = ephemeralSecret()
		if err != nil {
			return err
		}
		log.Warn().Msg("device.secret not set, using an ephemeral key: devices are forgotten on restart")
	}
	tokenSvc := service.NewJWTDeviceTokenService(secret, cfg.Device.Expiry, cfg.Device.Issuer)

	provider := wallet.NewProvider(
		rdb,
		redisStorage.NewNonceStore(rdb),
		service.NewEthSignatureVerifier(),
		wallet.Options{
			AppName:      cfg.App.Name,
			AppURL:       cfg.App.URL,
			ChainID:      cfg.Wallet.ChainID,
			ChallengeTTL: cfg.Wallet.ChallengeTTL,
		},
		logger.Component(log, "wallet"),
	)

	consentSvc := service.NewConsentService(storage, logger.Component(log, "consent"))
	walletSvc := service.NewWalletSessionService(provider, provider, logger.Component(log, "wallet"))

	// Load OpenAPI spec for Swagger UI
	if specBytes, err := os.ReadFile(openapiPath); err == nil {
		httpHandler.SetSwaggerSpec(specBytes)
		log.Info().Msg("OpenAPI spec loaded for Swagger UI at /swagger")
	} else {
		log.Warn().Err(err).Msg("OpenAPI spec not found, Swagger UI will be unavailable")
	}

	router := httpHandler.SetupRouter(httpHandler.RouterDeps{
		Mode: cfg.Server.Mode,
		App: domain.AppInfo{
			Name:            cfg.App.Name,
			Description:     cfg.App.Description,
			URL:             cfg.App.URL,
			Icon:            cfg.App.Icon,
			ChainID:         cfg.Wallet.ChainID,
			Network:         cfg.Wallet.Network,
			RPCURL:          cfg.Wallet.RPCURL,
			ContractAddress: cfg.App.ContractAddress,
		},
		ConsentSvc: consentSvc,
		WalletSvc:  walletSvc,
		TokenSvc:   tokenSvc,
		Cookie: middleware.CookieOptions{
			Name:   cfg.Device.CookieName,
			Secure: cfg.Device.Secure,
		},
		RateLimitStore: redisStorage.NewRateLimitStore(rdb),
		HealthCheckers: healthCheckers,
		AuditSvc:       auditSvc,
		Logger:         log,
	})

	// HTTP Server with graceful shutdown
	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:              addr,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info().Str("addr", addr).Msg("HTTP server listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	select {
	case <-quit:
	case err := <-errCh:
		return fmt.Errorf("HTTP server failed: %w", err)
	}
	log.Info().Msg("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("Server forced to shutdown")
	}

	log.Info().Msg("Server exited")
	return nil
}

func newDeviceStorage(driver string, rdb *goredis.Client, pool *pgxpool.Pool, log zerolog.Logger) ports.DeviceStorage {
	switch driver {
	case config.StoragePostgres:
		return pgStorage.NewDeviceStorage(pool)
	case config.StorageMemory:
		log.Warn().Msg("acknowledgments kept in memory: they are lost on restart")
		return memory.NewDeviceStorage()
	case config.StorageNone:
		log.Warn().Msg("acknowledgment storage disabled: the disclaimer shows on every load")
		return memory.Unavailable{}
	default:
		return redisStorage.NewDeviceStorage(rdb)
	}
}

func ephemeralSecret() (string, error) {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("generating device secret: %w", err)
	}
	return hex.EncodeToString(b), nil
}
