package cli

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"github.com/pokedex/backend/internal/buildinfo"
	"github.com/pokedex/backend/internal/infrastructure/config"
	"github.com/pokedex/backend/internal/infrastructure/logger"
	"github.com/pokedex/backend/internal/interfaces/http/handler"
	"github.com/pokedex/backend/internal/interfaces/http/middleware"
	"github.com/pokedex/backend/internal/interfaces/http/router"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func serveCmd(opts *rootOptions) *cobra.Command {
	var port string

	c := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig(opts)
			if err != nil {
				return err
			}
			if port != "" {
				cfg.App.Port = port
			}

			log, err := newLogger(cfg, cfg.Log.Output)
			if err != nil {
				return err
			}
			defer logger.Sync(log)

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			return runServer(ctx, cfg, log)
		},
	}

	c.Flags().StringVarP(&port, "port", "p", "", "listen port (overrides app.port)")
	return c
}

// runServer serves until ctx is cancelled, then shuts down gracefully
func runServer(ctx context.Context, cfg *config.Config, log *zap.Logger) error {
	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	log.Info("Starting Pokedex API",
		zap.String("app", cfg.App.Name),
		zap.String("env", cfg.App.Env),
		zap.String("port", cfg.App.Port),
		zap.String("version", buildinfo.Version),
	)

	svc, err := newServices(ctx, cfg, log)
	if err != nil {
		return err
	}
	defer svc.close(log)

	engine, err := router.NewEngine(router.EngineConfig{
		Logger:         log,
		Pokemon:        handler.NewPokemonHandler(svc.create, svc.fetchAll, svc.fetchOne),
		System:         handler.NewSystemHandler(svc.backend, svc.backend.Name, buildinfo.Version),
		CORS:           corsConfig(&cfg.HTTP),
		MaxBodySize:    cfg.HTTP.MaxBodySize,
		TrustedProxies: cfg.HTTP.TrustedProxies,
	})
	if err != nil {
		return fmt.Errorf("failed to build HTTP engine: %w", err)
	}

	srv := &http.Server{
		Addr:           ":" + cfg.App.Port,
		Handler:        engine,
		ReadTimeout:    cfg.HTTP.ReadTimeout,
		WriteTimeout:   cfg.HTTP.WriteTimeout,
		IdleTimeout:    cfg.HTTP.IdleTimeout,
		MaxHeaderBytes: cfg.HTTP.MaxHeaderBytes,
	}

	errCh := make(chan error, 1)
	go func() {
		defer close(errCh)
		log.Info("HTTP server listening", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		if err != nil {
			log.Error("Failed to start server", zap.Error(err))
			return err
		}
	case <-ctx.Done():
	}

	log.Info("Shutting down server...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.HTTP.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server forced to shutdown: %w", err)
	}

	log.Info("Server exited")
	return nil
}

func corsConfig(cfg *config.HTTPConfig) middleware.CORSConfig {
	cors := middleware.DefaultCORSConfig()
	cors.AllowOrigins = cfg.CORSAllowOrigins
	if len(cfg.CORSAllowMethods) > 0 {
		cors.AllowMethods = cfg.CORSAllowMethods
	}
	if len(cfg.CORSAllowHeaders) > 0 {
		cors.AllowHeaders = cfg.CORSAllowHeaders
	}
	return cors
}
