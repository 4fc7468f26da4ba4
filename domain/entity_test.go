package domain

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mvaleed/kernel/result"
)

type car struct {
	Entity
	Plate string
}

type truck struct {
	Entity
}

func TestNewEntity(t *testing.T) {
	a, b := NewEntity(), NewEntity()

	assert.NotEqual(t, uuid.Nil, a.ID)
	assert.NotEqual(t, a.ID, b.ID)
	assert.Equal(t, a.ID.String(), a.String())
}

func TestEntity_Equals(t *testing.T) {
	id := uuid.New()
	c := &car{Entity: Entity{ID: id}, Plate: "AA-00-AA"}

	assert.True(t, c.Equals(&car{Entity: Entity{ID: id}, Plate: "different"}))
	assert.True(t, c.Equals(&truck{Entity: Entity{ID: id}}))
	assert.False(t, c.Equals(&car{Entity: NewEntity()}))
	assert.False(t, c.Equals(nil))

	var nilCar *car
	assert.False(t, c.Equals(nilCar))
}

func TestSameEntity(t *testing.T) {
	id := uuid.New()

	assert.True(t, SameEntity(&car{Entity: Entity{ID: id}}, &car{Entity: Entity{ID: id}}))
	assert.False(t, SameEntity(&car{Entity: Entity{ID: id}}, &truck{Entity: Entity{ID: id}}))
	assert.False(t, SameEntity(nil, &car{}))
}

func TestParseID(t *testing.T) {
	id := uuid.New()

	got, err := ParseID(id.String())
	require.NoError(t, err)
	assert.Equal(t, id, got)

	_, err = ParseID("not-a-uuid")
	fe, ok := result.AsFailure(err)
	require.True(t, ok)
	assert.Equal(t, "id", fe.Errors[0].Code)
}
