package router

import (
	"github.com/gin-gonic/gin"
	"github.com/pokedex/backend/internal/infrastructure/logger"
	"github.com/pokedex/backend/internal/interfaces/http/handler"
	"github.com/pokedex/backend/internal/interfaces/http/middleware"
	"go.uber.org/zap"
)

// EngineConfig holds everything needed to build the HTTP engine
type EngineConfig struct {
	Logger         *zap.Logger
	Pokemon        *handler.PokemonHandler
	System         *handler.SystemHandler
	CORS           middleware.CORSConfig
	MaxBodySize    int64
	TrustedProxies []string
}

// NewEngine builds the gin engine with the middleware chain and every route.
// /health lives outside the versioned API so probes do not depend on it.
func NewEngine(cfg EngineConfig) (*gin.Engine, error) {
	log := cfg.Logger
	if log == nil {
		log = zap.NewNop()
	}

	middleware.SetupValidator()

	engine := gin.New()
	if err := engine.SetTrustedProxies(cfg.TrustedProxies); err != nil {
		return nil, err
	}

	engine.Use(
		middleware.RequestID(),
		logger.GinMiddleware(log),
		logger.Recovery(log),
		middleware.Secure(),
		middleware.CORSWithConfig(cfg.CORS),
		middleware.BodyLimit(cfg.MaxBodySize),
	)

	engine.GET("/health", cfg.System.Health)

	pokemons := NewDomainGroup("pokemon", "/pokemons").
		POST("", cfg.Pokemon.Create).
		GET("", cfg.Pokemon.List).
		GET("/:number", cfg.Pokemon.Get)

	system := NewDomainGroup("system", "").
		GET("/ping", cfg.System.Ping)

	routes := NewRouter(engine, WithAPIVersion("v1")).
		Register(pokemons).
		Register(system).
		Setup()
	for _, r := range routes {
		log.Debug("Route registered", zap.String("method", r.Method), zap.String("path", r.Path))
	}

	return engine, nil
}
