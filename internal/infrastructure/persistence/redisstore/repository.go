// Package redisstore keeps pokemons in a single Redis hash keyed by number.
package redisstore

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strconv"
	"time"

	"github.com/pokedex/backend/internal/domain/pokemon"
	"github.com/redis/go-redis/v9"
)

// DefaultKey is the hash holding every record
const DefaultKey = "pokedex:pokemons"

// Config holds Redis connection configuration
type Config struct {
	Host     string
	Port     int
	Password string
	DB       int
	Key      string
}

// Repository implements pokemon.Repository using Redis. Each pokemon is a
// field of one hash; HSETNX makes the uniqueness check and the write a
// single atomic command.
type Repository struct {
	client *redis.Client
	key    string
}

// NewRepository connects to Redis and verifies the connection
func NewRepository(cfg Config) (*Repository, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     fmt.Sprintf("%s:%d", cfg.Host, cfg.Port),
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return NewRepositoryWithClient(client, cfg.Key), nil
}

// NewRepositoryWithClient creates a repository with an existing Redis client
func NewRepositoryWithClient(client *redis.Client, key string) *Repository {
	if key == "" {
		key = DefaultKey
	}
	return &Repository{
		client: client,
		key:    key,
	}
}

// Insert stores the pokemon unless its number is already present
func (r *Repository) Insert(ctx context.Context, number pokemon.Number, name pokemon.Name, types pokemon.Types) (*pokemon.Pokemon, error) {
	p := pokemon.New(number, name, types)
	value, err := encode(p)
	if err != nil {
		return nil, pokemon.ErrUnknown.Wrap(err)
	}

	created, err := r.client.HSetNX(ctx, r.key, field(number), value).Result()
	if err != nil {
		return nil, pokemon.ErrUnknown.Wrap(err)
	}
	if !created {
		return nil, pokemon.ErrConflict
	}
	return p, nil
}

// FetchAll returns every stored pokemon ordered by number
func (r *Repository) FetchAll(ctx context.Context) ([]*pokemon.Pokemon, error) {
	entries, err := r.client.HGetAll(ctx, r.key).Result()
	if err != nil {
		return nil, pokemon.ErrUnknown.Wrap(err)
	}

	out := make([]*pokemon.Pokemon, 0, len(entries))
	for f, value := range entries {
		p, err := decode(value)
		if err != nil {
			return nil, pokemon.ErrUnknown.Wrap(fmt.Errorf("field %s: %w", f, err))
		}
		out = append(out, p)
	}
	slices.SortFunc(out, func(a, b *pokemon.Pokemon) int {
		return int(a.Number().Value()) - int(b.Number().Value())
	})
	return out, nil
}

// FetchOne returns the pokemon stored under number
func (r *Repository) FetchOne(ctx context.Context, number pokemon.Number) (*pokemon.Pokemon, error) {
	value, err := r.client.HGet(ctx, r.key, field(number)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, pokemon.ErrNotFound
		}
		return nil, pokemon.ErrUnknown.Wrap(err)
	}

	p, err := decode(value)
	if err != nil {
		return nil, pokemon.ErrUnknown.Wrap(err)
	}
	return p, nil
}

// Ping checks the Redis connection
func (r *Repository) Ping(ctx context.Context) error {
	return r.client.Ping(ctx).Err()
}

// Close closes the Redis connection
func (r *Repository) Close() error {
	return r.client.Close()
}

func field(n pokemon.Number) string {
	return strconv.Itoa(int(n.Value()))
}

var _ pokemon.Repository = (*Repository)(nil)
