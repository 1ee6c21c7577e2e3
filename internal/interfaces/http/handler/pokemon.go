package handler

import (
	"errors"
	"fmt"
	"io"
	"math"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	apppokemon "github.com/pokedex/backend/internal/application/pokemon"
	"github.com/pokedex/backend/internal/domain/pokemon"
	"github.com/pokedex/backend/internal/interfaces/http/dto"
	"github.com/pokedex/backend/internal/interfaces/http/middleware"
)

// PokemonHandler serves the pokemon resource
type PokemonHandler struct {
	BaseHandler
	create   *apppokemon.CreateUseCase
	fetchAll *apppokemon.FetchAllUseCase
	fetchOne *apppokemon.FetchOneUseCase
}

// NewPokemonHandler creates a handler over the three use cases
func NewPokemonHandler(create *apppokemon.CreateUseCase, fetchAll *apppokemon.FetchAllUseCase, fetchOne *apppokemon.FetchOneUseCase) *PokemonHandler {
	return &PokemonHandler{
		create:   create,
		fetchAll: fetchAll,
		fetchOne: fetchOne,
	}
}

// Create handles POST /pokemons
func (h *PokemonHandler) Create(c *gin.Context) {
	var req dto.PokemonRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.handleBindError(c, err)
		return
	}

	number, err := toNumber(int64(*req.Number))
	if err != nil {
		h.HandleError(c, err)
		return
	}

	resp, err := h.create.Execute(c.Request.Context(), apppokemon.CreatePokemonRequest{
		Number: number,
		Name:   *req.Name,
		Types:  *req.Types,
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, resp)
}

// List handles GET /pokemons
func (h *PokemonHandler) List(c *gin.Context) {
	resp, err := h.fetchAll.Execute(c.Request.Context())
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, resp)
}

// Get handles GET /pokemons/:number
func (h *PokemonHandler) Get(c *gin.Context) {
	var uri dto.NumberURI
	if err := c.ShouldBindUri(&uri); err != nil {
		h.handleBindError(c, err)
		return
	}

	n, err := strconv.ParseInt(uri.Number, 10, 64)
	if err != nil {
		h.HandleError(c, apppokemon.ErrBadRequest.Wrap(fmt.Errorf("%w: %q is not a number", pokemon.ErrInvalidNumber, uri.Number)))
		return
	}
	number, err := toNumber(n)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	resp, err := h.fetchOne.Execute(c.Request.Context(), apppokemon.FetchPokemonRequest{Number: number})
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, resp)
}

func (h *PokemonHandler) handleBindError(c *gin.Context, err error) {
	if details := middleware.ValidationDetails(err); details != nil {
		h.ValidationError(c, details)
		return
	}

	var maxBytesErr *http.MaxBytesError
	switch {
	case errors.As(err, &maxBytesErr):
		h.Error(c, http.StatusRequestEntityTooLarge, dto.ErrCodeRequestTooLarge, "Request body exceeds maximum allowed size")
	case errors.Is(err, io.EOF):
		h.Error(c, http.StatusBadRequest, dto.ErrCodeInvalidJSON, "Request body is empty")
	default:
		h.Error(c, http.StatusBadRequest, dto.ErrCodeInvalidJSON, "Malformed JSON: "+err.Error())
	}
}

// toNumber narrows a raw integer to the wire width of a dex number. Values
// that cannot fit are rejected the same way the domain rejects range errors.
func toNumber(n int64) (uint16, error) {
	if n < 0 || n > math.MaxUint16 {
		return 0, apppokemon.ErrBadRequest.Wrap(fmt.Errorf("%w: got %d", pokemon.ErrInvalidNumber, n))
	}
	return uint16(n), nil
}
