package pokemon

import (
	"context"

	"github.com/pokedex/backend/internal/domain/shared"
)

// Storage failures reported by Repository implementations
var (
	ErrConflict = shared.NewDomainError("STORAGE_CONFLICT", "pokemon number is already stored")
	ErrNotFound = shared.NewDomainError("STORAGE_NOT_FOUND", "pokemon is not stored")
	ErrUnknown  = shared.NewDomainError("STORAGE_FAILURE", "storage failure")
)

// Repository is the storage port. Implementations must be safe for
// concurrent use and must check number uniqueness atomically with the
// write in Insert.
type Repository interface {
	// Insert stores a new Pokemon. Returns ErrConflict when the number is
	// taken and ErrUnknown for any other failure.
	Insert(ctx context.Context, number Number, name Name, types Types) (*Pokemon, error)

	// FetchAll returns every stored Pokemon. The result is never nil.
	FetchAll(ctx context.Context) ([]*Pokemon, error)

	// FetchOne returns the Pokemon stored under number, or ErrNotFound.
	FetchOne(ctx context.Context, number Number) (*Pokemon, error)
}
