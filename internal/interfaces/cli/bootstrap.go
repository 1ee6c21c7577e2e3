package cli

import (
	"context"
	"fmt"
	"strings"

	apppokemon "github.com/pokedex/backend/internal/application/pokemon"
	"github.com/pokedex/backend/internal/infrastructure/config"
	"github.com/pokedex/backend/internal/infrastructure/logger"
	"github.com/pokedex/backend/internal/infrastructure/persistence"
	"go.uber.org/zap"
)

// loadConfig reads configuration and applies the persistent flag overrides
func loadConfig(opts *rootOptions) (*config.Config, error) {
	cfg, err := config.LoadFile(opts.configPath)
	if err != nil {
		return nil, err
	}

	if opts.backend != "" {
		cfg.Storage.Backend = strings.ToLower(opts.backend)
		if err := cfg.Validate(); err != nil {
			return nil, err
		}
	}
	return cfg, nil
}

func newLogger(cfg *config.Config, output string) (*zap.Logger, error) {
	log, err := logger.New(&logger.Config{
		Level:      cfg.Log.Level,
		Format:     cfg.Log.Format,
		Output:     output,
		TimeFormat: logger.DefaultTimeFormat,
		Service:    cfg.App.Name,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}
	return log, nil
}

// services is the one storage backend plus the use cases sharing it
type services struct {
	backend  *persistence.Backend
	create   *apppokemon.CreateUseCase
	fetchAll *apppokemon.FetchAllUseCase
	fetchOne *apppokemon.FetchOneUseCase
}

func newServices(ctx context.Context, cfg *config.Config, log *zap.Logger) (*services, error) {
	backend, err := persistence.OpenBackend(ctx, cfg, log)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s backend: %w", cfg.Storage.Backend, err)
	}
	log.Info("Storage backend ready", zap.String("backend", backend.Name))

	opt := apppokemon.WithLogger(log)
	return &services{
		backend:  backend,
		create:   apppokemon.NewCreateUseCase(backend.Repository, opt),
		fetchAll: apppokemon.NewFetchAllUseCase(backend.Repository, opt),
		fetchOne: apppokemon.NewFetchOneUseCase(backend.Repository, opt),
	}, nil
}

func (s *services) close(log *zap.Logger) {
	if err := s.backend.Close(); err != nil {
		log.Error("Error closing storage backend", zap.Error(err))
	}
}
