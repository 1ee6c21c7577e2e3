package pokemon

import (
	"fmt"
	"strings"

	"github.com/pokedex/backend/internal/domain/shared"
)

// ErrInvalidTypes is returned for an empty type list or an unrecognized tag
var ErrInvalidTypes = shared.NewDomainError("INVALID_TYPES", "pokemon types must be a non-empty list of known types")

// TypeTag is one elemental category
type TypeTag string

// Recognized type tags. Matching is exact and case-sensitive.
const (
	TypeNormal   TypeTag = "Normal"
	TypeFire     TypeTag = "Fire"
	TypeWater    TypeTag = "Water"
	TypeElectric TypeTag = "Electric"
	TypeGrass    TypeTag = "Grass"
	TypeIce      TypeTag = "Ice"
	TypeFighting TypeTag = "Fighting"
	TypePoison   TypeTag = "Poison"
	TypeGround   TypeTag = "Ground"
	TypeFlying   TypeTag = "Flying"
	TypePsychic  TypeTag = "Psychic"
	TypeBug      TypeTag = "Bug"
	TypeRock     TypeTag = "Rock"
	TypeGhost    TypeTag = "Ghost"
	TypeDragon   TypeTag = "Dragon"
	TypeDark     TypeTag = "Dark"
	TypeSteel    TypeTag = "Steel"
	TypeFairy    TypeTag = "Fairy"
)

var allTypeTags = []TypeTag{
	TypeNormal, TypeFire, TypeWater, TypeElectric, TypeGrass, TypeIce,
	TypeFighting, TypePoison, TypeGround, TypeFlying, TypePsychic, TypeBug,
	TypeRock, TypeGhost, TypeDragon, TypeDark, TypeSteel, TypeFairy,
}

var knownTypeTags = func() map[TypeTag]struct{} {
	m := make(map[TypeTag]struct{}, len(allTypeTags))
	for _, t := range allTypeTags {
		m[t] = struct{}{}
	}
	return m
}()

// AllTypeTags returns the recognized tags in canonical order
func AllTypeTags() []TypeTag {
	out := make([]TypeTag, len(allTypeTags))
	copy(out, allTypeTags)
	return out
}

// ParseTypeTag maps s to a recognized tag
func ParseTypeTag(s string) (TypeTag, error) {
	tag := TypeTag(s)
	if _, ok := knownTypeTags[tag]; !ok {
		return "", ErrInvalidTypes.Wrap(fmt.Errorf("unknown type %q", s))
	}
	return tag, nil
}

func (t TypeTag) String() string {
	return string(t)
}

// Types is the ordered, non-empty list of type tags of a Pokemon.
// Duplicates are preserved as given.
type Types struct {
	tags []TypeTag
}

// NewTypes validates every element of raw. The first unknown element
// aborts the conversion.
func NewTypes(raw []string) (Types, error) {
	if len(raw) == 0 {
		return Types{}, ErrInvalidTypes.Wrap(fmt.Errorf("empty list"))
	}

	tags := make([]TypeTag, 0, len(raw))
	for _, s := range raw {
		tag, err := ParseTypeTag(s)
		if err != nil {
			return Types{}, err
		}
		tags = append(tags, tag)
	}
	return Types{tags: tags}, nil
}

// MustNewTypes is NewTypes that panics on invalid input
func MustNewTypes(raw ...string) Types {
	types, err := NewTypes(raw)
	if err != nil {
		panic(err)
	}
	return types
}

// Tags returns a copy of the tags
func (t Types) Tags() []TypeTag {
	out := make([]TypeTag, len(t.tags))
	copy(out, t.tags)
	return out
}

// Strings returns the tags as plain strings, in order
func (t Types) Strings() []string {
	out := make([]string, len(t.tags))
	for i, tag := range t.tags {
		out[i] = string(tag)
	}
	return out
}

// Len returns the number of tags
func (t Types) Len() int {
	return len(t.tags)
}

// Contains reports whether tag is present
func (t Types) Contains(tag TypeTag) bool {
	for _, existing := range t.tags {
		if existing == tag {
			return true
		}
	}
	return false
}

// Equals compares element-wise, order included
func (t Types) Equals(other Types) bool {
	if len(t.tags) != len(other.tags) {
		return false
	}
	for i := range t.tags {
		if t.tags[i] != other.tags[i] {
			return false
		}
	}
	return true
}

func (t Types) String() string {
	return strings.Join(t.Strings(), ", ")
}
