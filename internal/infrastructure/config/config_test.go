package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoad_Defaults(t *testing.T) {
	t.Chdir(t.TempDir())

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "casepan-backend", cfg.App.Name)
	assert.Equal(t, "8080", cfg.App.Port)
	assert.Equal(t, "file", cfg.Events.Publisher)
	assert.Equal(t, "logs/events.ndjson", cfg.Events.FilePath)
	assert.Equal(t, "us-east-1", cfg.SQS.Region)
	assert.True(t, cfg.SQS.Enabled)
	assert.Equal(t, "https://viacep.com.br", cfg.ViaCEP.BaseURL)
	assert.Equal(t, 10*time.Second, cfg.ViaCEP.Timeout)
	assert.Equal(t, 2, cfg.ViaCEP.MaxRetries)
	assert.Equal(t, 1.0, cfg.Telemetry.SamplingRatio)
	assert.Equal(t, "casepan-backend", cfg.Telemetry.ServiceName)
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("CASEPAN_APP_PORT", "9090")
	t.Setenv("CASEPAN_EVENTS_PUBLISHER", "file+sqs")
	t.Setenv("CASEPAN_SQS_QUEUE_URL", "http://localhost:4566/000000000000/events")
	t.Setenv("CASEPAN_VIACEP_MAX_RETRIES", "0")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.App.Port)
	assert.Equal(t, []string{"file", "sqs"}, cfg.Events.Sinks())
	assert.Equal(t, "http://localhost:4566/000000000000/events", cfg.SQS.QueueURL)
	assert.Equal(t, 0, cfg.ViaCEP.MaxRetries)
}

func TestLoadFile(t *testing.T) {
	path := writeConfig(t, `
[app]
name = "casepan-test"

[events]
publisher = "file | redis"
file_path = "/tmp/casepan/events.ndjson"

[redis]
stream = "test:events"
`)

	cfg, err := LoadFile(path)
	require.NoError(t, err)

	assert.Equal(t, "casepan-test", cfg.App.Name)
	assert.Equal(t, []string{"file", "redis"}, cfg.Events.Sinks())
	assert.Equal(t, "test:events", cfg.Redis.Stream)
	assert.Equal(t, 6379, cfg.Redis.Port)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		wantErr string
	}{
		{"unknown sink", "[events]\npublisher = \"file+carrier-pigeon\"", "unknown sink"},
		{"sqs without queue", "[events]\npublisher = \"sqs\"", "sqs.queue_url"},
		{"kafka without topic", "[events]\npublisher = \"kafka\"\n[kafka]\nbrokers = \"localhost:9092\"", "kafka.topic"},
		{"s3 without bucket", "[events]\npublisher = \"s3\"", "s3.bucket"},
		{"bad sampling", "[telemetry]\nsampling_ratio = 1.5", "sampling_ratio"},
		{"wildcard cors in production", "[app]\nenv = \"production\"\n[http]\ncors_allow_origins = [\"*\"]", "cors_allow_origins"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadFile(writeConfig(t, tt.body))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestValidate_DisabledSQSNeedsNoQueue(t *testing.T) {
	_, err := LoadFile(writeConfig(t, "[events]\npublisher = \"sqs\"\n[sqs]\nenabled = false"))
	assert.NoError(t, err)
}

func TestParseSinks(t *testing.T) {
	tests := []struct {
		mode string
		want []string
	}{
		{"", []string{}},
		{"noop", []string{}},
		{"File", []string{"file"}},
		{"file+sqs", []string{"file", "sqs"}},
		{"file, sqs;kafka|redis s3", []string{"file", "sqs", "kafka", "redis", "s3"}},
		{"sqs+SQS+file", []string{"sqs", "file"}},
	}

	for _, tt := range tests {
		t.Run(tt.mode, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseSinks(tt.mode))
		})
	}
}
