package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	apppokemon "github.com/pokedex/backend/internal/application/pokemon"
	"github.com/pokedex/backend/internal/domain/pokemon"
	"github.com/pokedex/backend/internal/infrastructure/persistence/memory"
	"github.com/pokedex/backend/internal/interfaces/http/dto"
	"github.com/pokedex/backend/internal/interfaces/http/middleware"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newPokemonEngine(repo pokemon.Repository) *gin.Engine {
	middleware.SetupValidator()

	h := NewPokemonHandler(
		apppokemon.NewCreateUseCase(repo),
		apppokemon.NewFetchAllUseCase(repo),
		apppokemon.NewFetchOneUseCase(repo),
	)

	engine := gin.New()
	engine.Use(middleware.RequestID(), middleware.BodyLimit(1024))
	engine.POST("/pokemons", h.Create)
	engine.GET("/pokemons", h.List)
	engine.GET("/pokemons/:number", h.Get)
	return engine
}

func doRequest(engine *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)
	return w
}

func decodePokemon(t *testing.T, w *httptest.ResponseRecorder) apppokemon.PokemonResponse {
	t.Helper()
	var body struct {
		Success bool                       `json:"success"`
		Data    apppokemon.PokemonResponse `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	require.True(t, body.Success)
	return body.Data
}

func TestPokemonHandler_Create(t *testing.T) {
	t.Run("stores a valid pokemon", func(t *testing.T) {
		engine := newPokemonEngine(memory.NewRepository())

		w := doRequest(engine, http.MethodPost, "/pokemons", `{"number":25,"name":"Pikachu","types":["Electric"]}`)

		require.Equal(t, http.StatusOK, w.Code)
		got := decodePokemon(t, w)
		assert.Equal(t, apppokemon.PokemonResponse{Number: 25, Name: "Pikachu", Types: []string{"Electric"}}, got)
	})

	t.Run("duplicate number is 409", func(t *testing.T) {
		engine := newPokemonEngine(memory.NewRepository())
		body := `{"number":25,"name":"Pikachu","types":["Electric"]}`
		require.Equal(t, http.StatusOK, doRequest(engine, http.MethodPost, "/pokemons", body).Code)

		w := doRequest(engine, http.MethodPost, "/pokemons", body)

		assert.Equal(t, http.StatusConflict, w.Code)
		resp := decodeResponse(t, w)
		assert.Equal(t, dto.ErrCodeAlreadyExists, resp.Error.Code)
		assert.Contains(t, resp.Error.Message, "25")
	})

	t.Run("invalid fields are 400 and all reported", func(t *testing.T) {
		engine := newPokemonEngine(memory.NewRepository())

		w := doRequest(engine, http.MethodPost, "/pokemons", `{"number":0,"name":"","types":["Laser"]}`)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		resp := decodeResponse(t, w)
		assert.Equal(t, dto.ErrCodeBadRequest, resp.Error.Code)
		assert.Contains(t, resp.Error.Message, "number")
		assert.Contains(t, resp.Error.Message, "name")
		assert.Contains(t, resp.Error.Message, "Laser")
	})

	t.Run("number wider than 16 bits is 400", func(t *testing.T) {
		engine := newPokemonEngine(memory.NewRepository())

		w := doRequest(engine, http.MethodPost, "/pokemons", `{"number":70000,"name":"Glitch","types":["Normal"]}`)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, dto.ErrCodeBadRequest, decodeResponse(t, w).Error.Code)
	})

	t.Run("missing fields are validation errors", func(t *testing.T) {
		engine := newPokemonEngine(memory.NewRepository())

		w := doRequest(engine, http.MethodPost, "/pokemons", `{"name":"Pikachu"}`)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		resp := decodeResponse(t, w)
		assert.Equal(t, dto.ErrCodeValidation, resp.Error.Code)
		require.Len(t, resp.Error.Details, 2)
		assert.Equal(t, "number", resp.Error.Details[0].Field)
		assert.Equal(t, "types", resp.Error.Details[1].Field)
	})

	t.Run("malformed json is 400", func(t *testing.T) {
		engine := newPokemonEngine(memory.NewRepository())

		for _, body := range []string{`{"number":`, `{"number":"25","name":"Pikachu","types":["Electric"]}`, ``} {
			w := doRequest(engine, http.MethodPost, "/pokemons", body)
			assert.Equal(t, http.StatusBadRequest, w.Code, body)
			assert.Equal(t, dto.ErrCodeInvalidJSON, decodeResponse(t, w).Error.Code, body)
		}
	})

	t.Run("oversized body is 413", func(t *testing.T) {
		engine := newPokemonEngine(memory.NewRepository())
		body := `{"number":25,"name":"` + strings.Repeat("a", 2048) + `","types":["Electric"]}`

		w := doRequest(engine, http.MethodPost, "/pokemons", body)

		assert.Equal(t, http.StatusRequestEntityTooLarge, w.Code)
	})

	t.Run("storage failure is 500 without details", func(t *testing.T) {
		engine := newPokemonEngine(memory.NewRepository(memory.WithError()))

		w := doRequest(engine, http.MethodPost, "/pokemons", `{"number":25,"name":"Pikachu","types":["Electric"]}`)

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		resp := decodeResponse(t, w)
		assert.Equal(t, dto.ErrCodeInternal, resp.Error.Code)
		assert.Equal(t, apppokemon.ErrUnknown.Message, resp.Error.Message)
	})
}

func TestPokemonHandler_List(t *testing.T) {
	t.Run("empty store returns empty array", func(t *testing.T) {
		engine := newPokemonEngine(memory.NewRepository())

		w := doRequest(engine, http.MethodGet, "/pokemons", "")

		require.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"success":true,"data":[]}`, w.Body.String())
	})

	t.Run("returns records ordered by number", func(t *testing.T) {
		engine := newPokemonEngine(memory.NewRepository(memory.WithSeed(
			pokemon.New(pokemon.MustNewNumber(7), pokemon.MustNewName("Squirtle"), pokemon.MustNewTypes("Water")),
			pokemon.New(pokemon.MustNewNumber(1), pokemon.MustNewName("Bulbasaur"), pokemon.MustNewTypes("Grass", "Poison")),
		)))

		w := doRequest(engine, http.MethodGet, "/pokemons", "")

		require.Equal(t, http.StatusOK, w.Code)
		var body struct {
			Data []apppokemon.PokemonResponse `json:"data"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		require.Len(t, body.Data, 2)
		assert.Equal(t, uint16(1), body.Data[0].Number)
		assert.Equal(t, []string{"Grass", "Poison"}, body.Data[0].Types)
		assert.Equal(t, uint16(7), body.Data[1].Number)
	})

	t.Run("storage failure is 500", func(t *testing.T) {
		engine := newPokemonEngine(memory.NewRepository(memory.WithError()))

		w := doRequest(engine, http.MethodGet, "/pokemons", "")

		assert.Equal(t, http.StatusInternalServerError, w.Code)
	})
}

func TestPokemonHandler_Get(t *testing.T) {
	seeded := func() *memory.Repository {
		return memory.NewRepository(memory.WithSeed(
			pokemon.New(pokemon.MustNewNumber(25), pokemon.MustNewName("Pikachu"), pokemon.MustNewTypes("Electric")),
		))
	}

	tests := []struct {
		name         string
		repo         pokemon.Repository
		path         string
		expectedCode int
		expectedErr  string
	}{
		{"found", seeded(), "/pokemons/25", http.StatusOK, ""},
		{"not found", seeded(), "/pokemons/26", http.StatusNotFound, dto.ErrCodeNotFound},
		{"not a number", seeded(), "/pokemons/pikachu", http.StatusBadRequest, dto.ErrCodeBadRequest},
		{"zero", seeded(), "/pokemons/0", http.StatusBadRequest, dto.ErrCodeBadRequest},
		{"above range", seeded(), "/pokemons/899", http.StatusBadRequest, dto.ErrCodeBadRequest},
		{"negative", seeded(), "/pokemons/-1", http.StatusBadRequest, dto.ErrCodeBadRequest},
		{"storage failure", memory.NewRepository(memory.WithError()), "/pokemons/25", http.StatusInternalServerError, dto.ErrCodeInternal},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := doRequest(newPokemonEngine(tt.repo), http.MethodGet, tt.path, "")

			assert.Equal(t, tt.expectedCode, w.Code)
			if tt.expectedErr == "" {
				assert.Equal(t, "Pikachu", decodePokemon(t, w).Name)
				return
			}
			assert.Equal(t, tt.expectedErr, decodeResponse(t, w).Error.Code)
		})
	}
}
