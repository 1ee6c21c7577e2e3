// Package pokemon holds the Pokemon entity, its validated value types and
// the storage port the application layer depends on.
package pokemon

// Pokemon is the single entity of the service. It can only be assembled
// from already validated fields and is never mutated afterwards.
type Pokemon struct {
	number Number
	name   Name
	types  Types
}

// New assembles a Pokemon from validated fields
func New(number Number, name Name, types Types) *Pokemon {
	return &Pokemon{
		number: number,
		name:   name,
		types:  types,
	}
}

// Reconstruct validates raw stored values and rebuilds the entity.
// Storage adapters use it when reading records back.
func Reconstruct(number uint16, name string, types []string) (*Pokemon, error) {
	n, err := NewNumber(number)
	if err != nil {
		return nil, err
	}
	nm, err := NewName(name)
	if err != nil {
		return nil, err
	}
	t, err := NewTypes(types)
	if err != nil {
		return nil, err
	}
	return New(n, nm, t), nil
}

// Number returns the dex number
func (p *Pokemon) Number() Number { return p.number }

// Name returns the display name
func (p *Pokemon) Name() Name { return p.name }

// Types returns the type tags
func (p *Pokemon) Types() Types { return p.types }
