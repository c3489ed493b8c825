package logger

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestThrottler_DemotesRepeatedWarnings(t *testing.T) {
	core, recorded := observer.New(zapcore.DebugLevel)
	th := NewThrottler(zap.New(core), time.Hour)

	th.Warn("file", "sink failed")
	th.Warn("file", "sink failed")
	th.Warn("sqs", "sink failed")

	entries := recorded.All()
	assert.Len(t, entries, 3)
	assert.Equal(t, zapcore.WarnLevel, entries[0].Level)
	assert.Equal(t, zapcore.DebugLevel, entries[1].Level)
	assert.Equal(t, zapcore.WarnLevel, entries[2].Level, "keys are throttled independently")
}
