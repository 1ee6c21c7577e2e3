package pokemon

import "github.com/pokedex/backend/internal/domain/shared"

// Error kinds surfaced by the use cases. Callers match them with errors.Is;
// transport layers map them to status codes.
var (
	// ErrBadRequest means at least one input field failed validation
	ErrBadRequest = shared.NewDomainError("BAD_REQUEST", "invalid pokemon")
	// ErrConflict means the number is already taken
	ErrConflict = shared.NewDomainError("ALREADY_EXISTS", "pokemon already exists")
	// ErrNotFound means no pokemon is stored under the number
	ErrNotFound = shared.NewDomainError("NOT_FOUND", "pokemon not found")
	// ErrUnknown covers every storage failure. The cause is logged, not returned.
	ErrUnknown = shared.NewDomainError("INTERNAL_ERROR", "unexpected storage error")
)
