package domain

import (
	"reflect"

	"github.com/google/uuid"

	"github.com/mvaleed/kernel/result"
)

// Identifiable is implemented by anything with an identity.
type Identifiable interface {
	Identifier() uuid.UUID
}

// Entity carries the identity of a domain object. Embed it in entity types.
type Entity struct {
	ID uuid.UUID
}

// NewEntity returns an Entity with a fresh random ID.
func NewEntity() Entity {
	return Entity{ID: uuid.New()}
}

func (e Entity) Identifier() uuid.UUID { return e.ID }

// Equals reports whether other has the same ID. Nil values are never equal.
func (e Entity) Equals(other Identifiable) bool {
	if isNil(other) {
		return false
	}
	return e.ID == other.Identifier()
}

func (e Entity) String() string { return e.ID.String() }

// SameEntity reports whether a and b have the same dynamic type and ID.
func SameEntity(a, b Identifiable) bool {
	if isNil(a) || isNil(b) {
		return false
	}
	if reflect.TypeOf(a) != reflect.TypeOf(b) {
		return false
	}
	return a.Identifier() == b.Identifier()
}

// ParseID parses s as an entity ID. A malformed ID is reported as a
// *result.FailureError with code "id".
func ParseID(s string) (uuid.UUID, error) {
	id, err := uuid.Parse(s)
	if err != nil {
		return uuid.Nil, &result.FailureError{Errors: []result.Error{result.NewError("must be a valid UUID", "id")}}
	}
	return id, nil
}

func isNil(v Identifiable) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	return rv.Kind() == reflect.Pointer && rv.IsNil()
}
