package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	_ "landscapehub/docs"
	"landscapehub/internal/api"
	"landscapehub/internal/auth"
	"landscapehub/internal/config"
	"landscapehub/internal/logger"
	"landscapehub/internal/manager"
	"landscapehub/internal/messaging"
	"landscapehub/internal/metrics"
	"landscapehub/internal/objectstore"
	"landscapehub/internal/storage"
)

// @title LandscapeHub API
// @version 1.0
// @description Multi-tenant backend for landscaping companies: clients, properties and jobs.
// @host localhost:8080
// @BasePath /api/v1
// @schemes http

// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name Authorization
func main() {
	path := os.Getenv("CONFIG_PATH")
	if path == "" {
		path = "config.yaml"
	}
	cfg, err := config.LoadConfig(path)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	zl, err := logger.New(cfg.Log.Level, cfg.Server.Environment)
	if err != nil {
		log.Fatalf("Failed to init logger: %v", err)
	}
	defer zl.Sync() //nolint:errcheck

	if err := run(cfg, zl); err != nil {
		zl.Fatal("Server stopped", zap.Error(err))
	}
}

func run(cfg *config.Config, zl *zap.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	m := metrics.New(reg)

	if cfg.Database.AutoMigrate {
		if err := storage.RunMigrations(ctx, cfg.Database.URL); err != nil {
			return fmt.Errorf("run migrations: %w", err)
		}
		zl.Info("Database migrations applied")
	}

	db, err := storage.NewStorage(ctx, cfg.Database.URL, storage.Options{
		MaxOpenConns:    cfg.Database.MaxOpenConns,
		MaxIdleConns:    cfg.Database.MaxIdleConns,
		ConnMaxLifetime: cfg.Database.ConnMaxLifetime,
	})
	if err != nil {
		return err
	}
	defer db.Close()
	zl.Info("PostgreSQL connected")

	objects, err := objectstore.New(objectstore.Config{
		Endpoint:  cfg.Storage.Endpoint,
		AccessKey: cfg.Storage.AccessKey,
		SecretKey: cfg.Storage.SecretKey,
		Bucket:    cfg.Storage.Bucket,
		UseSSL:    cfg.Storage.UseSSL,
		PublicURL: cfg.Storage.PublicURL,
	}, zl)
	if err != nil {
		return err
	}
	// uploads fail until the bucket is reachable; the rest of the API still works
	if err := objects.EnsureBucket(ctx); err != nil {
		zl.Warn("Object storage unavailable", zap.String("endpoint", cfg.Storage.Endpoint), zap.Error(err))
	}

	var publisher messaging.Publisher = messaging.NopPublisher{}
	if cfg.RabbitMQ.URL != "" {
		rc, err := messaging.NewRabbitClient(cfg.RabbitMQ.URL, m, zl)
		if err != nil {
			return fmt.Errorf("connect rabbitmq: %w", err)
		}
		publisher = rc
		zl.Info("RabbitMQ connected")
	} else {
		zl.Info("RabbitMQ not configured, domain events are dropped")
	}
	defer publisher.Close()

	tokens, err := auth.NewTokenIssuer(cfg.Auth.JWTSecret, cfg.Auth.TokenTTL)
	if err != nil {
		return err
	}

	deps := manager.Deps{Store: db, Objects: objects, Publisher: publisher, Metrics: m, Logger: zl}
	resolver := manager.NewResolver(db)
	tm := manager.NewTenantManager(deps, tokens)
	if err := tm.RestoreCompanies(ctx); err != nil {
		return fmt.Errorf("restore companies: %w", err)
	}

	a := api.NewAPI(api.Services{
		Tenants:    tm,
		Auth:       manager.NewAuthManager(deps, tokens),
		Company:    manager.NewCompanyManager(deps),
		Clients:    manager.NewClientManager(deps, resolver),
		Properties: manager.NewPropertyManager(deps, resolver),
		Jobs:       manager.NewJobManager(deps, resolver, cfg.Jobs.EnforceTransitions),
		Tokens:     tokens,
		Users:      db,
		Database:   db,
		Objects:    objects,
	}, api.Settings{
		Environment:    cfg.Server.Environment,
		Version:        cfg.Server.Version,
		Bucket:         cfg.Storage.Bucket,
		StorageHost:    cfg.Storage.Endpoint,
		MaxUploadBytes: cfg.Server.MaxUploadBytes,
		MaxBodyBytes:   cfg.Server.MaxBodyBytes,
	}, m, zl)

	server := &http.Server{
		Addr:              cfg.Server.Addr,
		Handler:           a.Router(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		zl.Info("Starting API server", zap.String("addr", server.Addr))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	if interval := cfg.RabbitMQ.QueueDepthInterval; interval > 0 {
		g.Go(func() error {
			ticker := time.NewTicker(interval)
			defer ticker.Stop()
			for {
				select {
				case <-gctx.Done():
					return nil
				case <-ticker.C:
					tm.RefreshQueueDepths()
				}
			}
		})
	}

	g.Go(func() error {
		<-gctx.Done()
		zl.Info("Shutdown initiated")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
		defer cancel()
		return server.Shutdown(shutdownCtx)
	})

	err = g.Wait()
	zl.Info("Graceful shutdown complete")
	return err
}
