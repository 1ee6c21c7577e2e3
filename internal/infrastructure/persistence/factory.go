package persistence

import (
	"context"
	"fmt"

	"github.com/pokedex/backend/internal/domain/pokemon"
	"github.com/pokedex/backend/internal/infrastructure/config"
	"github.com/pokedex/backend/internal/infrastructure/logger"
	"github.com/pokedex/backend/internal/infrastructure/persistence/airtable"
	"github.com/pokedex/backend/internal/infrastructure/persistence/memory"
	"github.com/pokedex/backend/internal/infrastructure/persistence/redisstore"
	"go.uber.org/zap"
)

// Backend is the single storage implementation selected at startup
type Backend struct {
	Repository pokemon.Repository
	Name       string

	ping  func(context.Context) error
	close func() error
}

// Ping checks that the backend is reachable
func (b *Backend) Ping(ctx context.Context) error {
	if b.ping == nil {
		return nil
	}
	return b.ping(ctx)
}

// Close releases the backend connections
func (b *Backend) Close() error {
	if b.close == nil {
		return nil
	}
	return b.close()
}

// OpenBackend builds the repository named by cfg.Storage.Backend
func OpenBackend(ctx context.Context, cfg *config.Config, log *zap.Logger) (*Backend, error) {
	if log == nil {
		log = zap.NewNop()
	}
	name := cfg.Storage.Backend

	switch name {
	case config.BackendMemory:
		return &Backend{Repository: memory.NewRepository(), Name: name}, nil

	case config.BackendSQLite, config.BackendPostgres:
		gormLog := logger.NewGormLogger(log.Named("gorm"), logger.MapGormLogLevel(cfg.Log.Level),
			logger.WithSlowThreshold(cfg.Database.SlowThreshold))
		db, err := NewDatabase(name, &cfg.Database, WithGormLogger(gormLog))
		if err != nil {
			return nil, err
		}
		if err := db.Migrate(); err != nil {
			_ = db.Close()
			return nil, err
		}
		return &Backend{
			Repository: NewGormPokemonRepository(db.DB),
			Name:       name,
			ping:       db.Ping,
			close:      db.Close,
		}, nil

	case config.BackendAirtable:
		client, err := airtable.NewClient(airtable.Config{
			BaseURL: cfg.Airtable.BaseURL,
			BaseID:  cfg.Airtable.BaseID,
			Table:   cfg.Airtable.Table,
			APIKey:  cfg.Airtable.APIKey,
			Timeout: cfg.Airtable.Timeout,
		})
		if err != nil {
			return nil, err
		}
		repo := airtable.NewRepository(client)
		if err := repo.Ping(ctx); err != nil {
			log.Warn("Airtable table not reachable at startup", zap.Error(err))
		}
		return &Backend{Repository: repo, Name: name, ping: repo.Ping}, nil

	case config.BackendRedis:
		repo, err := redisstore.NewRepository(redisstore.Config{
			Host:     cfg.Redis.Host,
			Port:     cfg.Redis.Port,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
			Key:      cfg.Redis.Key,
		})
		if err != nil {
			return nil, err
		}
		return &Backend{Repository: repo, Name: name, ping: repo.Ping, close: repo.Close}, nil

	default:
		return nil, fmt.Errorf("unsupported storage backend %q", name)
	}
}
