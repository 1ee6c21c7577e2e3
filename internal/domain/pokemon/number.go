package pokemon

import (
	"fmt"
	"strconv"

	"github.com/pokedex/backend/internal/domain/shared"
)

// National dex bounds. Number zero is reserved and 899 is the first
// unassigned slot.
const (
	MinNumber uint16 = 1
	MaxNumber uint16 = 898
)

// ErrInvalidNumber is returned when a number falls outside the national dex range
var ErrInvalidNumber = shared.NewDomainError("INVALID_NUMBER", "pokemon number must be between 1 and 898")

// Number is the national dex number of a Pokemon. It is immutable and
// serves as the entity identity.
type Number struct {
	value uint16
}

// NewNumber validates n and returns it as a Number.
func NewNumber(n uint16) (Number, error) {
	if n < MinNumber || n > MaxNumber {
		return Number{}, ErrInvalidNumber.Wrap(fmt.Errorf("got %d", n))
	}
	return Number{value: n}, nil
}

// MustNewNumber is NewNumber that panics on invalid input. Intended for tests
// and constants.
func MustNewNumber(n uint16) Number {
	num, err := NewNumber(n)
	if err != nil {
		panic(err)
	}
	return num
}

// Value returns the underlying number
func (n Number) Value() uint16 {
	return n.value
}

// Next returns the following dex number, or false past the last one
func (n Number) Next() (Number, bool) {
	if n.value >= MaxNumber {
		return Number{}, false
	}
	return Number{value: n.value + 1}, true
}

// Equals reports whether two numbers are the same
func (n Number) Equals(other Number) bool {
	return n.value == other.value
}

func (n Number) String() string {
	return strconv.FormatUint(uint64(n.value), 10)
}
