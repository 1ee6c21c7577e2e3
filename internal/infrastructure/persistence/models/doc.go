// Package models contains GORM-specific persistence models that map to database tables.
// These models are separate from domain entities to keep the domain layer pure and free
// from ORM concerns.
//
// A Pokemon is stored as one row in "pokemons" plus one row per type tag in
// "pokemon_types", ordered by position. Mappers rebuild the entity through the
// domain constructors, so a row that no longer satisfies the invariants is
// reported as an error instead of being returned.
package models
