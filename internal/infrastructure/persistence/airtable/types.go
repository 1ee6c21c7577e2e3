package airtable

import (
	"fmt"
	"math"
	"strconv"

	"github.com/pokedex/backend/internal/domain/pokemon"
)

// Table field names
const (
	FieldNumber = "number"
	FieldName   = "name"
	FieldTypes  = "types"
)

// Fields is the column set of one pokemon row
type Fields struct {
	Number int      `json:"number"`
	Name   string   `json:"name"`
	Types  []string `json:"types"`
}

// Record is a stored row
type Record struct {
	ID          string `json:"id"`
	CreatedTime string `json:"createdTime,omitempty"`
	Fields      Fields `json:"fields"`
}

// NewRecord is a row to be created
type NewRecord struct {
	Fields Fields `json:"fields"`
}

// ListResponse is one page of the list endpoint. Offset is empty on the last page.
type ListResponse struct {
	Records []Record `json:"records"`
	Offset  string   `json:"offset,omitempty"`
}

// CreateRequest is the body of a create call
type CreateRequest struct {
	Records []NewRecord `json:"records"`
}

// CreateResponse is the body returned by a create call
type CreateResponse struct {
	Records []Record `json:"records"`
}

// ErrorResponse is the error envelope of the API
type ErrorResponse struct {
	Error struct {
		Type    string `json:"type"`
		Message string `json:"message"`
	} `json:"error"`
}

// FieldsFromDomain converts a pokemon into table fields
func FieldsFromDomain(p *pokemon.Pokemon) Fields {
	return Fields{
		Number: int(p.Number().Value()),
		Name:   p.Name().String(),
		Types:  p.Types().Strings(),
	}
}

// ToDomain rebuilds the pokemon stored in the record
func (r *Record) ToDomain() (*pokemon.Pokemon, error) {
	if r.Fields.Number < 0 || r.Fields.Number > math.MaxUint16 {
		return nil, fmt.Errorf("record %s: number %d out of range", r.ID, r.Fields.Number)
	}
	p, err := pokemon.Reconstruct(uint16(r.Fields.Number), r.Fields.Name, r.Fields.Types)
	if err != nil {
		return nil, fmt.Errorf("record %s: %w", r.ID, err)
	}
	return p, nil
}

// numberFormula selects rows whose number field equals n
func numberFormula(n pokemon.Number) string {
	return "{" + FieldNumber + "}=" + strconv.Itoa(int(n.Value()))
}
