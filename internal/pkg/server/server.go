package server

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/fleetflow/fleetflow/internal/pkg/logger"
)

// GracefulServer runs an echo instance until SIGINT/SIGTERM, then drains it
// and runs the registered shutdown hooks in order. Hooks are where the
// process saves its snapshot and closes its clients; a failing hook is
// logged and the rest still run.
type GracefulServer struct {
	echo            *echo.Echo
	logger          *logger.AppLogger
	host            string
	port            int
	shutdownTimeout time.Duration
	hooks           []func(context.Context) error
}

// NewGracefulServer creates a new server with graceful shutdown
func NewGracefulServer(e *echo.Echo, appLogger *logger.AppLogger, host string, port int, shutdownTimeout time.Duration) *GracefulServer {
	return &GracefulServer{
		echo:            e,
		logger:          appLogger,
		host:            host,
		port:            port,
		shutdownTimeout: shutdownTimeout,
	}
}

// OnShutdown registers a hook to run after the HTTP server has drained
func (s *GracefulServer) OnShutdown(fn func(context.Context) error) {
	s.hooks = append(s.hooks, fn)
}

// Start runs the server and blocks until a shutdown signal arrives
func (s *GracefulServer) Start() error {
	go func() {
		addr := fmt.Sprintf("%s:%d", s.host, s.port)
		s.logger.Info("starting HTTP server", logger.String("address", addr))

		if err := s.echo.Start(addr); err != nil && err != http.ErrServerClosed {
			s.logger.Fatal("failed to start server", logger.Err(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)

	sig := <-quit
	s.logger.Info("received shutdown signal", logger.String("signal", sig.String()))

	return s.Shutdown()
}

// Shutdown drains the server and runs the shutdown hooks
func (s *GracefulServer) Shutdown() error {
	ctx, cancel := context.WithTimeout(context.Background(), s.shutdownTimeout)
	defer cancel()

	var firstErr error
	if err := s.echo.Shutdown(ctx); err != nil {
		s.logger.Error("server forced to shutdown", logger.Err(err))
		firstErr = err
	}

	for i, fn := range s.hooks {
		if err := fn(ctx); err != nil {
			s.logger.Error("shutdown hook failed",
				logger.Int("hook", i),
				logger.Err(err))
			if firstErr == nil {
				firstErr = err
			}
		}
	}

	s.logger.Info("shutdown completed")
	return firstErr
}
