package event

import (
	"context"
	"errors"
	"testing"

	"github.com/casepan/backend/internal/infrastructure/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestMultiSink_IsolatesFailures(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	throttler := logger.NewThrottler(zap.New(core), 0)

	first := &recordingSink{name: "first", err: errors.New("down")}
	second := &recordingSink{name: "second", panicMsg: "boom"}
	third := &recordingSink{name: "third"}
	multi := NewMultiSink(throttler, first, second, third)

	err := multi.Write(context.Background(), testEnvelope(t, "EnderecoCreated", "cid"))
	require.NoError(t, err)

	assert.Len(t, first.envelopes, 1)
	assert.Len(t, third.envelopes, 1)

	warns := logs.FilterLevelExact(zapcore.WarnLevel).All()
	require.Len(t, warns, 2)
	assert.Equal(t, "first", warns[0].ContextMap()["sink"])
	assert.Equal(t, "second", warns[1].ContextMap()["sink"])
	assert.Contains(t, warns[1].ContextMap()["error"], "panicked")
}

func TestMultiSink_ThrottlesRepeatedFailures(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	multi := NewMultiSink(logger.NewThrottler(zap.New(core), 0),
		&recordingSink{name: "dead", err: errors.New("down")})

	for i := 0; i < 5; i++ {
		require.NoError(t, multi.Write(context.Background(), testEnvelope(t, "A", "c")))
	}

	assert.Equal(t, 1, logs.FilterLevelExact(zapcore.WarnLevel).Len())
	assert.Equal(t, 4, logs.FilterLevelExact(zapcore.DebugLevel).Len())
}

func TestMultiSink_CloseClosesChildren(t *testing.T) {
	a := &recordingSink{name: "a"}
	b := &recordingSink{name: "b"}
	multi := NewMultiSink(logger.NewThrottler(zap.NewNop(), 0), a, NoopSink{}, b)

	require.NoError(t, multi.Close())
	assert.True(t, a.closed)
	assert.True(t, b.closed)
	assert.Len(t, multi.Sinks(), 3)
}
