package event

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeLines(t *testing.T, path string, lines ...string) {
	t.Helper()
	require.NoError(t, os.WriteFile(path, []byte(strings.Join(lines, "\n")+"\n"), 0o644))
}

func TestFileEventLog_Info(t *testing.T) {
	path := filepath.Join(t.TempDir(), "events.ndjson")
	log := NewFileEventLog(path)

	info, err := log.Info(context.Background())
	require.NoError(t, err)
	assert.False(t, info.Exists)
	assert.Nil(t, info.LastWriteUtc)
	assert.Equal(t, path, info.Path)

	writeLines(t, path, `{"eventName":"A","correlationId":"c"}`)

	info, err = log.Info(context.Background())
	require.NoError(t, err)
	assert.True(t, info.Exists)
	assert.Positive(t, info.SizeBytes)
	require.NotNil(t, info.LastWriteUtc)
}

func TestFileEventLog_Tail(t *testing.T) {
	path := filepath.Join(t.TempDir(), "events.ndjson")
	writeLines(t, path,
		`{"eventName":"One","correlationId":"1"}`,
		`{"eventName":"Two","correlationId":"2"}`,
		``,
		`not json`,
		`{"eventName":"Three","correlationId":"3","payload":{"outcome":"success","http":{"method":"GET","path":"/api/enderecos"}}}`,
		`{"correlationId":"no-name"}`,
	)
	log := NewFileEventLog(path)

	result, err := log.Tail(context.Background(), 3)
	require.NoError(t, err)
	assert.Equal(t, 3, result.LinesRead)
	assert.Equal(t, 2, result.Malformed)
	require.Len(t, result.Events, 1)
	assert.Equal(t, "Three", result.Events[0].EventName)
	assert.Equal(t, "success", result.Events[0].Payload.Outcome)
	assert.Equal(t, "/api/enderecos", result.Events[0].Payload.HTTP.Path)

	result, err = log.Tail(context.Background(), 100)
	require.NoError(t, err)
	assert.Equal(t, 5, result.LinesRead)
	assert.Len(t, result.Events, 3)
	assert.Equal(t, "One", result.Events[0].EventName)
}

func TestFileEventLog_TailMissingFile(t *testing.T) {
	log := NewFileEventLog(filepath.Join(t.TempDir(), "missing.ndjson"))

	result, err := log.Tail(context.Background(), 10)
	require.NoError(t, err)
	assert.Empty(t, result.Events)
}

func TestFileEventLog_RoundTripWithFileSink(t *testing.T) {
	path := filepath.Join(t.TempDir(), "events.ndjson")
	sink := NewFileSink(path)
	for _, name := range []string{"EnderecoCreated", "EnderecoGetOk"} {
		require.NoError(t, sink.Write(context.Background(), testEnvelope(t, name, "cid")))
	}

	result, err := NewFileEventLog(path).Tail(context.Background(), 10)
	require.NoError(t, err)
	require.Len(t, result.Events, 2)
	assert.Equal(t, "EnderecoGetOk", result.Events[1].EventName)
	assert.Equal(t, "cid", result.Events[1].CorrelationID)
}
