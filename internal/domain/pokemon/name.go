package pokemon

import "github.com/pokedex/backend/internal/domain/shared"

// ErrInvalidName is returned for an empty name
var ErrInvalidName = shared.NewDomainError("INVALID_NAME", "pokemon name must not be empty")

// Name is the display name of a Pokemon. The value is kept exactly as
// given; surrounding whitespace is not trimmed.
type Name struct {
	value string
}

// NewName validates s and returns it as a Name.
func NewName(s string) (Name, error) {
	if s == "" {
		return Name{}, ErrInvalidName
	}
	return Name{value: s}, nil
}

// MustNewName is NewName that panics on invalid input
func MustNewName(s string) Name {
	name, err := NewName(s)
	if err != nil {
		panic(err)
	}
	return name
}

func (n Name) String() string {
	return n.value
}

// Equals reports whether two names are identical
func (n Name) Equals(other Name) bool {
	return n.value == other.value
}
