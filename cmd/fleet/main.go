package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/fleetflow/fleetflow/internal/pkg/config"
	"github.com/fleetflow/fleetflow/internal/pkg/database"
	"github.com/fleetflow/fleetflow/internal/pkg/health"
	"github.com/fleetflow/fleetflow/internal/pkg/logger"
	"github.com/fleetflow/fleetflow/internal/pkg/middleware"
	"github.com/fleetflow/fleetflow/internal/pkg/models"
	nsqpkg "github.com/fleetflow/fleetflow/internal/pkg/nsq"
	"github.com/fleetflow/fleetflow/internal/pkg/server"
	"github.com/fleetflow/fleetflow/services/fleet"
	"github.com/fleetflow/fleetflow/services/fleet/gateway"
	"github.com/fleetflow/fleetflow/services/fleet/handler"
	"github.com/fleetflow/fleetflow/services/fleet/repository"
	"github.com/fleetflow/fleetflow/services/fleet/usecase"
)

func main() {
	cfg, err := config.InitConfig("fleet")
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	appLogger, err := logger.NewAppLogger(cfg.Logger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to init logger: %v\n", err)
		os.Exit(1)
	}
	defer appLogger.Close()
	logger.SetGlobalLogger(appLogger)

	logger.Info("starting fleet service",
		logger.String("version", cfg.App.Version),
		logger.String("environment", cfg.App.Environment))

	healthSvc := health.NewService()

	snapshotStore, cleanup, err := initSnapshotStore(cfg, healthSvc)
	if err != nil {
		logger.Fatal("failed to init snapshot backend", logger.Err(err))
	}
	defer cleanup()

	store := repository.NewStore()

	ctx := context.Background()
	if snapshotStore != nil {
		snap, err := snapshotStore.LoadSnapshot(ctx)
		if err != nil {
			logger.Fatal("failed to load snapshot", logger.Err(err))
		}
		if !snap.Empty() {
			store.Import(*snap)
			logger.Info("snapshot restored",
				logger.Int("vehicles", len(snap.Vehicles)),
				logger.Int("trips", len(snap.Trips)))
		}
	}
	if store.Empty() && cfg.Seed.Enabled {
		repository.Seed(store)
		logger.Info("demo fleet seeded")
	}

	if cfg.NSQ.Enabled {
		producer, err := nsqpkg.NewProducer(cfg.NSQ.Address)
		if err != nil {
			logger.Fatal("failed to connect to NSQ", logger.Err(err))
		}
		defer producer.Stop()

		gw := gateway.NewFleetGW(producer, cfg.NSQ.TopicPrefix)
		store.Subscribe(gw.PublishFleetEvent)
		logger.Info("event publishing enabled", logger.String("address", cfg.NSQ.Address))
	}

	fleetUC := usecase.NewFleetUC(cfg, store)
	authUC := usecase.NewAuthUC(cfg)

	e := echo.New()
	e.HideBanner = true
	e.Use(middleware.PanicRecoveryMiddleware(appLogger))
	e.Use(logger.EchoMiddleware(appLogger))

	h := handler.NewHandler(fleetUC, authUC, store, snapshotStore, cfg)
	h.RegisterRoutes(e)
	health.RegisterEndpoints(e, cfg.App.Name, cfg.App.Version, healthSvc)

	srv := server.NewGracefulServer(e, appLogger, cfg.Server.Host, cfg.Server.Port,
		time.Duration(cfg.Server.ShutdownTimeout)*time.Second)
	if snapshotStore != nil {
		srv.OnShutdown(func(ctx context.Context) error {
			if err := snapshotStore.SaveSnapshot(ctx, store.Export()); err != nil {
				return err
			}
			logger.Info("snapshot saved")
			return nil
		})
	}

	if err := srv.Start(); err != nil {
		logger.Error("shutdown finished with errors", logger.Err(err))
	}
}

// initSnapshotStore builds the configured persistence backend and registers
// its health check. With backend "none" it returns a nil store; the engine
// then runs purely in memory.
func initSnapshotStore(cfg *models.Config, healthSvc *health.Service) (fleet.SnapshotStore, func(), error) {
	switch cfg.Snapshot.Backend {
	case models.SnapshotBackendPostgres:
		client, err := database.NewPostgresClient(cfg.Database)
		if err != nil {
			return nil, nil, err
		}
		store, err := repository.NewPostgresSnapshotStore(client.GetDB(), cfg.Snapshot.Key)
		if err != nil {
			client.Close()
			return nil, nil, err
		}
		healthSvc.AddChecker("postgres", client.Ping)
		return store, func() { client.Close() }, nil

	case models.SnapshotBackendRedis:
		client, err := database.NewRedisClient(cfg.Redis)
		if err != nil {
			return nil, nil, err
		}
		healthSvc.AddChecker("redis", client.Ping)
		return repository.NewRedisSnapshotStore(client, cfg.Snapshot.Key), func() { client.Close() }, nil

	case models.SnapshotBackendNone, "":
		return nil, func() {}, nil

	default:
		return nil, nil, fmt.Errorf("unknown snapshot backend %q", cfg.Snapshot.Backend)
	}
}
