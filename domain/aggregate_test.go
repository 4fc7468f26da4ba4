package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type order struct {
	AggregateBase
	Total int
}

func newOrder(total int) *order {
	o := &order{AggregateBase: NewAggregateBase(), Total: total}
	o.Record(NewEvent("order.placed", o.ID, map[string]any{"total": total}))
	return o
}

func TestAggregateBase_PullEvents(t *testing.T) {
	var root AggregateRoot = newOrder(42)

	events := root.PullEvents()
	require.Len(t, events, 1)
	assert.Equal(t, "order.placed", events[0].Type)
	assert.Equal(t, root.Identifier(), events[0].AggregateID)
	assert.Equal(t, 42, events[0].Data["total"])

	assert.Empty(t, root.PullEvents())
}

func TestNewEvent(t *testing.T) {
	e := NewEvent("thing.happened", NewEntity().ID, nil)

	assert.NotNil(t, e.Data)
	assert.False(t, e.Timestamp.IsZero())
	assert.Equal(t, "UTC", e.Timestamp.Location().String())
}
