package event

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mvaleed/kernel/domain"
)

func TestLoggingPublisher(t *testing.T) {
	var buf bytes.Buffer
	p := NewLoggingPublisher(slog.New(slog.NewJSONHandler(&buf, nil)))

	id := domain.NewEntity().ID
	events := []domain.Event{
		domain.NewEvent("customer.registered", id, map[string]any{"email": "ana@example.com"}),
		domain.NewEvent("customer.renamed", id, nil),
	}

	require.NoError(t, p.PublishBatch(context.Background(), events))
	require.NoError(t, p.Close())

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 2)
	assert.Contains(t, lines[0], `"event_type":"customer.registered"`)
	assert.Contains(t, lines[0], `"aggregate_id":"`+id.String()+`"`)
	assert.Contains(t, lines[1], `"event_type":"customer.renamed"`)
}

func TestNoopPublisher(t *testing.T) {
	var p Publisher = NewNoopPublisher()

	assert.NoError(t, p.Publish(context.Background(), domain.Event{}))
	assert.NoError(t, p.PublishBatch(context.Background(), nil))
	assert.NoError(t, p.Close())
}
