package behavior

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mvaleed/kernel/result"
	"github.com/mvaleed/kernel/specification"
)

type greet struct {
	Name string `json:"name" validate:"required"`
	Age  int    `json:"age"`
}

func hello(_ context.Context, req greet) (string, error) {
	return "hello " + req.Name, nil
}

func tracing(trace *[]string, name string) Behavior[greet, string] {
	return func(ctx context.Context, req greet, next Handler[greet, string]) (string, error) {
		*trace = append(*trace, name+" in")
		resp, err := next(ctx, req)
		*trace = append(*trace, name+" out")
		return resp, err
	}
}

func TestChain_Order(t *testing.T) {
	var trace []string
	h := Chain(hello, tracing(&trace, "a"), tracing(&trace, "b"))

	resp, err := h(context.Background(), greet{Name: "ana"})
	require.NoError(t, err)
	assert.Equal(t, "hello ana", resp)
	assert.Equal(t, []string{"a in", "b in", "b out", "a out"}, trace)
}

func TestChain_NoBehaviors(t *testing.T) {
	resp, err := Chain[greet, string](hello)(context.Background(), greet{Name: "x"})
	require.NoError(t, err)
	assert.Equal(t, "hello x", resp)
}

func TestValidating(t *testing.T) {
	adult := specification.New("must be 18 or older", func(g greet) bool { return g.Age >= 18 })
	h := Chain(hello, Validating[greet, string](adult))

	resp, err := h(context.Background(), greet{Name: "kid", Age: 9})
	assert.Empty(t, resp)
	fe, ok := result.AsFailure(err)
	require.True(t, ok)
	assert.Equal(t, []result.Error{{Message: "must be 18 or older", Code: "greet"}}, fe.Errors)

	resp, err = h(context.Background(), greet{Name: "ana", Age: 30})
	require.NoError(t, err)
	assert.Equal(t, "hello ana", resp)
}

func TestValidatingStruct(t *testing.T) {
	called := false
	h := Chain(func(context.Context, greet) (string, error) {
		called = true
		return "", nil
	}, ValidatingStruct[greet, string]())

	_, err := h(context.Background(), greet{})
	fe, ok := result.AsFailure(err)
	require.True(t, ok)
	assert.Equal(t, "name", fe.Errors[0].Code)
	assert.False(t, called)
}

func TestLogging(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, nil))
	boom := errors.New("boom")

	h := Chain(func(context.Context, greet) (string, error) { return "", boom }, Logging[greet, string](logger))

	_, err := h(context.Background(), greet{Name: "ana"})
	assert.Same(t, boom, err)
	assert.Contains(t, buf.String(), `"msg":"handling request"`)
	assert.Contains(t, buf.String(), `"request":"greet"`)
	assert.Contains(t, buf.String(), `"msg":"request failed"`)
	assert.Contains(t, buf.String(), `"error":"boom"`)
}

func TestLogging_RePanics(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, nil))

	h := Chain(func(context.Context, greet) (string, error) { panic("kaboom") }, Logging[greet, string](logger))

	assert.PanicsWithValue(t, "kaboom", func() { _, _ = h(context.Background(), greet{}) })
	assert.Contains(t, buf.String(), `"msg":"request panicked"`)
}
