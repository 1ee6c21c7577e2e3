package redisstore

import (
	"encoding/json"
	"fmt"

	"github.com/pokedex/backend/internal/domain/pokemon"
)

// record is the JSON value stored in each hash field
type record struct {
	Number uint16   `json:"number"`
	Name   string   `json:"name"`
	Types  []string `json:"types"`
}

func encode(p *pokemon.Pokemon) (string, error) {
	b, err := json.Marshal(record{
		Number: p.Number().Value(),
		Name:   p.Name().String(),
		Types:  p.Types().Strings(),
	})
	if err != nil {
		return "", fmt.Errorf("failed to encode pokemon: %w", err)
	}
	return string(b), nil
}

func decode(value string) (*pokemon.Pokemon, error) {
	var rec record
	if err := json.Unmarshal([]byte(value), &rec); err != nil {
		return nil, fmt.Errorf("failed to decode pokemon: %w", err)
	}
	return pokemon.Reconstruct(rec.Number, rec.Name, rec.Types)
}
