package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/SscSPs/ledger_engine/internal/adapters/backend/rest"
	portsrepo "github.com/SscSPs/ledger_engine/internal/core/ports/repositories"
	"github.com/SscSPs/ledger_engine/internal/core/services"
	"github.com/SscSPs/ledger_engine/internal/events"
	"github.com/SscSPs/ledger_engine/internal/handlers"
	"github.com/SscSPs/ledger_engine/internal/middleware"
	"github.com/SscSPs/ledger_engine/internal/platform/config"
	"github.com/SscSPs/ledger_engine/internal/repositories/database/boltdb"
	"github.com/SscSPs/ledger_engine/internal/repositories/database/pgsql"
	"github.com/SscSPs/ledger_engine/internal/utils"
	"github.com/SscSPs/ledger_engine/pkg/database"
	"github.com/gin-gonic/gin"
)

// @title Ledger Engine API
// @version 1.0
// @description Computes, validates and submits journal entries, invoices, payroll receipts and cash movements.

// @host localhost:8080
// @BasePath /api/v1

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name x-api-key

// @security BearerAuth
func main() {
	issueToken := flag.String("issue-token", "", "print a JWT for the given subject and exit")
	tokenTTL := flag.Duration("token-ttl", 24*time.Hour, "lifetime of the token printed by -issue-token")
	newAPIKey := flag.Bool("generate-api-key", false, "print a new API key and its API_KEY_HASH and exit")
	flag.Parse()

	// Initialize structured logger
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	if *newAPIKey {
		if err := printAPIKey(os.Stdout); err != nil {
			logger.Error("Failed to generate API key", slog.String("error", err.Error()))
			os.Exit(1)
		}
		return
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Error("Failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	if *issueToken != "" {
		token, err := utils.GenerateJWT(*issueToken, cfg.JWTSecret, *tokenTTL, cfg.JWTIssuer)
		if err != nil {
			logger.Error("Failed to issue token", slog.String("error", err.Error()))
			os.Exit(1)
		}
		fmt.Println(token)
		return
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	gateway, closeGateway, err := newGateway(ctx, cfg, logger)
	if err != nil {
		logger.Error("Failed to initialize backend gateway", slog.String("driver", cfg.BackendDriver), slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer closeGateway()
	logger.Info("Backend gateway ready", slog.String("driver", cfg.BackendDriver))

	posthogClient := utils.InitializePosthogClient(cfg.PosthogAPIKey, logger)
	defer posthogClient.Close()

	bus := events.NewBus(logger)
	events.ForwardToAnalytics(ctx, bus, posthogClient)

	serviceContainer := services.NewServiceContainer(cfg, gateway, bus)

	if cfg.IsProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	// Global middleware (logging, recovery)
	r.Use(middleware.StructuredLoggingMiddleware(logger), gin.Recovery())

	if err := r.SetTrustedProxies(nil); err != nil {
		logger.Error("Failed to set trusted proxies", slog.String("error", err.Error()))
		os.Exit(1)
	}

	if err := handlers.RegisterRoutes(r, cfg, serviceContainer, posthogClient); err != nil {
		logger.Error("Failed to register routes", slog.String("error", err.Error()))
		os.Exit(1)
	}

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		logger.Info("Server starting", slog.String("port", cfg.Port))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("Server failed to run", slog.String("error", err.Error()))
			stop()
		}
	}()

	<-ctx.Done()
	logger.Info("Shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("Server shutdown failed", slog.String("error", err.Error()))
	}
}

// newGateway builds the backend collaborator selected by BACKEND_DRIVER together
// with the func that releases it.
func newGateway(ctx context.Context, cfg *config.Config, logger *slog.Logger) (portsrepo.DocumentGateway, func(), error) {
	switch cfg.BackendDriver {
	case config.DriverPgSQL:
		if err := database.RunMigrations(cfg.DatabaseURL, cfg.MigrationsPath, logger); err != nil {
			return nil, nil, err
		}
		dbPool, err := database.NewPgxPool(ctx, cfg.DatabaseURL, cfg.EnableDBCheck)
		if err != nil {
			return nil, nil, err
		}
		return pgsql.NewDocumentGateway(dbPool), func() { database.ClosePgxPool(dbPool) }, nil

	case config.DriverBolt:
		store, err := boltdb.Open(cfg.BoltPath)
		if err != nil {
			return nil, nil, err
		}
		return store, func() {
			if err := store.Close(); err != nil {
				logger.Error("Error closing bolt store", slog.String("error", err.Error()))
			}
		}, nil

	default:
		var opts []rest.Option
		if cfg.BackendClientID != "" && cfg.BackendTokenURL != "" {
			opts = append(opts, rest.WithClientCredentials(cfg.BackendClientID, cfg.BackendClientSecret, cfg.BackendTokenURL))
		}
		client, err := rest.NewClient(cfg.BackendURL, cfg.BackendTimeout, opts...)
		if err != nil {
			return nil, nil, err
		}
		return client, func() {}, nil
	}
}

func printAPIKey(w io.Writer) error {
	key, hash, err := utils.GenerateAPIKey()
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(w, "API key:      %s\nAPI_KEY_HASH: %s\n", key, hash)
	return err
}
