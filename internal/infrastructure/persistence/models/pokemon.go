package models

import (
	"time"

	"github.com/pokedex/backend/internal/domain/pokemon"
	"gorm.io/gorm"
)

// PokemonModel is the persistence model for the Pokemon entity
type PokemonModel struct {
	Number    uint16             `gorm:"primaryKey;autoIncrement:false"`
	Name      string             `gorm:"type:varchar(100);not null"`
	Types     []PokemonTypeModel `gorm:"foreignKey:PokemonNumber;references:Number;constraint:OnDelete:CASCADE"`
	CreatedAt time.Time
}

// TableName returns the table name for GORM
func (PokemonModel) TableName() string {
	return "pokemons"
}

// PokemonTypeModel stores one type tag of a Pokemon. Position keeps the
// original order and allows repeated tags.
type PokemonTypeModel struct {
	ID            uint   `gorm:"primaryKey"`
	PokemonNumber uint16 `gorm:"not null;uniqueIndex:idx_pokemon_type_position,priority:1"`
	Position      int    `gorm:"not null;uniqueIndex:idx_pokemon_type_position,priority:2"`
	Name          string `gorm:"type:varchar(20);not null"`
}

// TableName returns the table name for GORM
func (PokemonTypeModel) TableName() string {
	return "pokemon_types"
}

// ToDomain converts the persistence model to a domain Pokemon
func (m *PokemonModel) ToDomain() (*pokemon.Pokemon, error) {
	types := make([]string, len(m.Types))
	for i, t := range m.Types {
		types[i] = t.Name
	}
	return pokemon.Reconstruct(m.Number, m.Name, types)
}

// FromDomain populates the persistence model from a domain Pokemon
func (m *PokemonModel) FromDomain(p *pokemon.Pokemon) {
	m.Number = p.Number().Value()
	m.Name = p.Name().String()
	tags := p.Types().Strings()
	m.Types = make([]PokemonTypeModel, len(tags))
	for i, tag := range tags {
		m.Types[i] = PokemonTypeModel{
			PokemonNumber: m.Number,
			Position:      i,
			Name:          tag,
		}
	}
}

// PokemonModelFromDomain creates a new persistence model from a domain Pokemon
func PokemonModelFromDomain(p *pokemon.Pokemon) *PokemonModel {
	m := &PokemonModel{}
	m.FromDomain(p)
	return m
}

// AllModels lists every model managed by AutoMigrate
func AllModels() []any {
	return []any{
		&PokemonModel{},
		&PokemonTypeModel{},
	}
}

// AutoMigrate creates or updates the tables for all models
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(AllModels()...)
}
