package persistence

import (
	"context"
	"errors"

	"github.com/pokedex/backend/internal/domain/pokemon"
	"github.com/pokedex/backend/internal/infrastructure/persistence/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormPokemonRepository implements pokemon.Repository using GORM. It works
// against both the SQLite and PostgreSQL dialects.
type GormPokemonRepository struct {
	db *gorm.DB
}

// NewGormPokemonRepository creates a new GORM-based pokemon repository
func NewGormPokemonRepository(db *gorm.DB) *GormPokemonRepository {
	return &GormPokemonRepository{db: db}
}

// Insert writes the pokemon row and its type rows in one transaction. The
// primary key on number is the final uniqueness guard; the count query
// only produces a clean conflict on the common path.
func (r *GormPokemonRepository) Insert(ctx context.Context, number pokemon.Number, name pokemon.Name, types pokemon.Types) (*pokemon.Pokemon, error) {
	p := pokemon.New(number, name, types)
	model := models.PokemonModelFromDomain(p)

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&models.PokemonModel{}).Where("number = ?", model.Number).Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			return pokemon.ErrConflict
		}
		if err := tx.Omit(clause.Associations).Create(model).Error; err != nil {
			return err
		}
		return tx.Create(&model.Types).Error
	})

	switch {
	case err == nil:
		return p, nil
	case errors.Is(err, pokemon.ErrConflict), errors.Is(err, gorm.ErrDuplicatedKey):
		return nil, pokemon.ErrConflict
	default:
		return nil, pokemon.ErrUnknown.Wrap(err)
	}
}

// FetchAll returns every pokemon ordered by number
func (r *GormPokemonRepository) FetchAll(ctx context.Context) ([]*pokemon.Pokemon, error) {
	var rows []models.PokemonModel
	if err := r.withTypes(ctx).Order("number").Find(&rows).Error; err != nil {
		return nil, pokemon.ErrUnknown.Wrap(err)
	}

	out := make([]*pokemon.Pokemon, 0, len(rows))
	for i := range rows {
		p, err := rows[i].ToDomain()
		if err != nil {
			return nil, pokemon.ErrUnknown.Wrap(err)
		}
		out = append(out, p)
	}
	return out, nil
}

// FetchOne returns the pokemon stored under number
func (r *GormPokemonRepository) FetchOne(ctx context.Context, number pokemon.Number) (*pokemon.Pokemon, error) {
	var row models.PokemonModel
	err := r.withTypes(ctx).Where("number = ?", number.Value()).First(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pokemon.ErrNotFound
		}
		return nil, pokemon.ErrUnknown.Wrap(err)
	}

	p, err := row.ToDomain()
	if err != nil {
		return nil, pokemon.ErrUnknown.Wrap(err)
	}
	return p, nil
}

func (r *GormPokemonRepository) withTypes(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).Preload("Types", func(db *gorm.DB) *gorm.DB {
		return db.Order("position")
	})
}

var _ pokemon.Repository = (*GormPokemonRepository)(nil)
