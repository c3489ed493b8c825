package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/samber/lo"
	"github.com/spf13/viper"
)

// Sink kinds accepted in events.publisher
const (
	SinkNoop  = "noop"
	SinkFile  = "file"
	SinkSQS   = "sqs"
	SinkKafka = "kafka"
	SinkRedis = "redis"
	SinkS3    = "s3"
)

// Config holds all configuration for the application
type Config struct {
	App       AppConfig
	Log       LogConfig
	HTTP      HTTPConfig
	Events    EventsConfig
	SQS       SQSConfig
	S3        S3Config
	Kafka     KafkaConfig
	Redis     RedisConfig
	ViaCEP    ViaCEPConfig
	Swagger   SwaggerConfig
	Telemetry TelemetryConfig
}

// AppConfig holds application-level configuration
type AppConfig struct {
	Name string
	Env  string
	Port string
}

// LogConfig holds logging configuration
type LogConfig struct {
	Level  string // debug, info, warn, error
	Format string // json, console
	Output string // stdout, stderr, or file path
}

// HTTPConfig holds HTTP server configuration
type HTTPConfig struct {
	ReadTimeout       time.Duration
	WriteTimeout      time.Duration
	IdleTimeout       time.Duration
	ShutdownTimeout   time.Duration
	MaxHeaderBytes    int
	MaxBodySize       int64
	RateLimitEnabled  bool
	RateLimitRequests int
	RateLimitWindow   time.Duration
	CORSAllowOrigins  []string
	CORSAllowMethods  []string
	CORSAllowHeaders  []string
	TrustedProxies    []string
}

// EventsConfig selects and configures the event sinks
type EventsConfig struct {
	// Publisher lists sink kinds separated by "+", ",", ";", "|" or spaces, e.g. "file+sqs"
	Publisher string
	FilePath  string
	// ThrottleInterval is how often a failing sink may log at WARN
	ThrottleInterval time.Duration
}

// SQSConfig configures the SQS sink and the queue inspector
type SQSConfig struct {
	Enabled        bool
	QueueURL       string
	ServiceURL     string // LocalStack or other custom endpoint
	Region         string
	AccessKey      string
	SecretKey      string
	MessageGroupID string // used for FIFO queues only
}

// S3Config configures the S3 event archive
type S3Config struct {
	Bucket       string
	Prefix       string
	Endpoint     string
	Region       string
	AccessKey    string
	SecretKey    string
	UsePathStyle bool
}

// KafkaConfig configures the Kafka sink
type KafkaConfig struct {
	Brokers         string
	Topic           string
	ClientID        string
	DeliveryTimeout time.Duration
}

// RedisConfig configures the Redis stream sink
type RedisConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
	Stream   string
	MaxLen   int64
}

// ViaCEPConfig configures the postal-code client
type ViaCEPConfig struct {
	BaseURL    string
	Timeout    time.Duration
	MaxRetries int
}

// SwaggerConfig holds Swagger UI configuration
type SwaggerConfig struct {
	Enabled bool
}

// TelemetryConfig holds OpenTelemetry configuration
type TelemetryConfig struct {
	Enabled           bool
	CollectorEndpoint string  // OTLP gRPC endpoint, e.g. "localhost:4317"
	SamplingRatio     float64 // 0.0-1.0
	ServiceName       string
	Insecure          bool // plaintext gRPC, development only
}

// Load reads config.toml (if present) and CASEPAN_* environment variables
func Load() (*Config, error) {
	v := viper.New()

	v.SetConfigName("config")
	v.SetConfigType("toml")
	v.AddConfigPath(".")
	v.AddConfigPath("./backend")
	v.AddConfigPath("/app")

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	return fromViper(v)
}

// LoadFile reads configuration from an explicit file path
func LoadFile(path string) (*Config, error) {
	v := viper.New()
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("error reading config file: %w", err)
	}
	return fromViper(v)
}

func fromViper(v *viper.Viper) (*Config, error) {
	v.SetEnvPrefix("CASEPAN")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Zero is a meaningful value for these, so they cannot go through applyDefaults.
	v.SetDefault("viacep.max_retries", 2)
	v.SetDefault("sqs.enabled", true)

	cfg := &Config{
		App: AppConfig{
			Name: v.GetString("app.name"),
			Env:  v.GetString("app.env"),
			Port: v.GetString("app.port"),
		},
		Log: LogConfig{
			Level:  v.GetString("log.level"),
			Format: v.GetString("log.format"),
			Output: v.GetString("log.output"),
		},
		HTTP: HTTPConfig{
			ReadTimeout:       v.GetDuration("http.read_timeout"),
			WriteTimeout:      v.GetDuration("http.write_timeout"),
			IdleTimeout:       v.GetDuration("http.idle_timeout"),
			ShutdownTimeout:   v.GetDuration("http.shutdown_timeout"),
			MaxHeaderBytes:    v.GetInt("http.max_header_bytes"),
			MaxBodySize:       v.GetInt64("http.max_body_size"),
			RateLimitEnabled:  v.GetBool("http.rate_limit_enabled"),
			RateLimitRequests: v.GetInt("http.rate_limit_requests"),
			RateLimitWindow:   v.GetDuration("http.rate_limit_window"),
			CORSAllowOrigins:  v.GetStringSlice("http.cors_allow_origins"),
			CORSAllowMethods:  v.GetStringSlice("http.cors_allow_methods"),
			CORSAllowHeaders:  v.GetStringSlice("http.cors_allow_headers"),
			TrustedProxies:    v.GetStringSlice("http.trusted_proxies"),
		},
		Events: EventsConfig{
			Publisher:        v.GetString("events.publisher"),
			FilePath:         v.GetString("events.file_path"),
			ThrottleInterval: v.GetDuration("events.throttle_interval"),
		},
		SQS: SQSConfig{
			Enabled:        v.GetBool("sqs.enabled"),
			QueueURL:       v.GetString("sqs.queue_url"),
			ServiceURL:     v.GetString("sqs.service_url"),
			Region:         v.GetString("sqs.region"),
			AccessKey:      v.GetString("sqs.access_key"),
			SecretKey:      v.GetString("sqs.secret_key"),
			MessageGroupID: v.GetString("sqs.message_group_id"),
		},
		S3: S3Config{
			Bucket:       v.GetString("s3.bucket"),
			Prefix:       v.GetString("s3.prefix"),
			Endpoint:     v.GetString("s3.endpoint"),
			Region:       v.GetString("s3.region"),
			AccessKey:    v.GetString("s3.access_key"),
			SecretKey:    v.GetString("s3.secret_key"),
			UsePathStyle: v.GetBool("s3.use_path_style"),
		},
		Kafka: KafkaConfig{
			Brokers:         v.GetString("kafka.brokers"),
			Topic:           v.GetString("kafka.topic"),
			ClientID:        v.GetString("kafka.client_id"),
			DeliveryTimeout: v.GetDuration("kafka.delivery_timeout"),
		},
		Redis: RedisConfig{
			Host:     v.GetString("redis.host"),
			Port:     v.GetInt("redis.port"),
			Password: v.GetString("redis.password"),
			DB:       v.GetInt("redis.db"),
			Stream:   v.GetString("redis.stream"),
			MaxLen:   v.GetInt64("redis.max_len"),
		},
		ViaCEP: ViaCEPConfig{
			BaseURL:    v.GetString("viacep.base_url"),
			Timeout:    v.GetDuration("viacep.timeout"),
			MaxRetries: v.GetInt("viacep.max_retries"),
		},
		Swagger: SwaggerConfig{
			Enabled: v.GetBool("swagger.enabled"),
		},
		Telemetry: TelemetryConfig{
			Enabled:           v.GetBool("telemetry.enabled"),
			CollectorEndpoint: v.GetString("telemetry.collector_endpoint"),
			SamplingRatio:     v.GetFloat64("telemetry.sampling_ratio"),
			ServiceName:       v.GetString("telemetry.service_name"),
			Insecure:          v.GetBool("telemetry.insecure"),
		},
	}

	applyDefaults(cfg)

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// applyDefaults sets default values for missing configuration
func applyDefaults(cfg *Config) {
	if cfg.App.Name == "" {
		cfg.App.Name = "casepan-backend"
	}
	if cfg.App.Env == "" {
		cfg.App.Env = "development"
	}
	if cfg.App.Port == "" {
		cfg.App.Port = "8080"
	}
	if cfg.Log.Level == "" {
		cfg.Log.Level = "info"
	}
	if cfg.Log.Format == "" {
		cfg.Log.Format = "console"
	}
	if cfg.Log.Output == "" {
		cfg.Log.Output = "stdout"
	}
	if cfg.HTTP.ReadTimeout == 0 {
		cfg.HTTP.ReadTimeout = 15 * time.Second
	}
	if cfg.HTTP.WriteTimeout == 0 {
		cfg.HTTP.WriteTimeout = 30 * time.Second
	}
	if cfg.HTTP.IdleTimeout == 0 {
		cfg.HTTP.IdleTimeout = 60 * time.Second
	}
	if cfg.HTTP.ShutdownTimeout == 0 {
		cfg.HTTP.ShutdownTimeout = 30 * time.Second
	}
	if cfg.HTTP.MaxHeaderBytes == 0 {
		cfg.HTTP.MaxHeaderBytes = 1 << 20 // 1MB
	}
	if cfg.HTTP.MaxBodySize == 0 {
		cfg.HTTP.MaxBodySize = 1 << 20 // 1MB
	}
	if cfg.HTTP.RateLimitRequests == 0 {
		cfg.HTTP.RateLimitRequests = 100
	}
	if cfg.HTTP.RateLimitWindow == 0 {
		cfg.HTTP.RateLimitWindow = time.Minute
	}
	if len(cfg.HTTP.CORSAllowOrigins) == 0 {
		cfg.HTTP.CORSAllowOrigins = []string{"http://localhost:4200"}
	}
	if len(cfg.HTTP.CORSAllowMethods) == 0 {
		cfg.HTTP.CORSAllowMethods = []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"}
	}
	if len(cfg.HTTP.CORSAllowHeaders) == 0 {
		cfg.HTTP.CORSAllowHeaders = []string{"Content-Type", "X-Correlation-Id"}
	}
	if cfg.Events.Publisher == "" {
		cfg.Events.Publisher = SinkFile
	}
	if cfg.Events.FilePath == "" {
		cfg.Events.FilePath = "logs/events.ndjson"
	}
	if cfg.Events.ThrottleInterval == 0 {
		cfg.Events.ThrottleInterval = time.Minute
	}
	if cfg.SQS.Region == "" {
		cfg.SQS.Region = "us-east-1"
	}
	if cfg.SQS.MessageGroupID == "" {
		cfg.SQS.MessageGroupID = "casepan"
	}
	if cfg.S3.Region == "" {
		cfg.S3.Region = "us-east-1"
	}
	if cfg.S3.Prefix == "" {
		cfg.S3.Prefix = "events"
	}
	if cfg.Kafka.ClientID == "" {
		cfg.Kafka.ClientID = cfg.App.Name
	}
	if cfg.Kafka.DeliveryTimeout == 0 {
		cfg.Kafka.DeliveryTimeout = 5 * time.Second
	}
	if cfg.Redis.Host == "" {
		cfg.Redis.Host = "localhost"
	}
	if cfg.Redis.Port == 0 {
		cfg.Redis.Port = 6379
	}
	if cfg.Redis.Stream == "" {
		cfg.Redis.Stream = "casepan:events"
	}
	if cfg.Redis.MaxLen == 0 {
		cfg.Redis.MaxLen = 100_000
	}
	if cfg.ViaCEP.BaseURL == "" {
		cfg.ViaCEP.BaseURL = "https://viacep.com.br"
	}
	if cfg.ViaCEP.Timeout == 0 {
		cfg.ViaCEP.Timeout = 10 * time.Second
	}
	if cfg.Telemetry.CollectorEndpoint == "" {
		cfg.Telemetry.CollectorEndpoint = "localhost:4317"
	}
	if cfg.Telemetry.SamplingRatio == 0 {
		cfg.Telemetry.SamplingRatio = 1.0
	}
	if cfg.Telemetry.ServiceName == "" {
		cfg.Telemetry.ServiceName = cfg.App.Name
	}
}

// validate performs validation on the configuration
func (c *Config) validate() error {
	sinks := c.Events.Sinks()
	for _, kind := range sinks {
		if !lo.Contains(knownSinks, kind) {
			return fmt.Errorf("events.publisher: unknown sink %q", kind)
		}
	}

	if lo.Contains(sinks, SinkFile) && strings.TrimSpace(c.Events.FilePath) == "" {
		return fmt.Errorf("events.file_path is required for the file sink")
	}
	if lo.Contains(sinks, SinkSQS) && c.SQS.Enabled && c.SQS.QueueURL == "" {
		return fmt.Errorf("sqs.queue_url is required for the sqs sink")
	}
	if lo.Contains(sinks, SinkKafka) && (c.Kafka.Brokers == "" || c.Kafka.Topic == "") {
		return fmt.Errorf("kafka.brokers and kafka.topic are required for the kafka sink")
	}
	if lo.Contains(sinks, SinkS3) && c.S3.Bucket == "" {
		return fmt.Errorf("s3.bucket is required for the s3 sink")
	}

	if c.ViaCEP.MaxRetries < 0 {
		return fmt.Errorf("viacep.max_retries cannot be negative")
	}
	if c.Telemetry.SamplingRatio < 0.0 || c.Telemetry.SamplingRatio > 1.0 {
		return fmt.Errorf("telemetry.sampling_ratio must be between 0.0 and 1.0, got %f", c.Telemetry.SamplingRatio)
	}

	if c.App.Env == "production" {
		for _, origin := range c.HTTP.CORSAllowOrigins {
			if origin == "*" {
				return fmt.Errorf("cors_allow_origins cannot be '*' in production (use specific origins)")
			}
		}
	}

	return nil
}

var knownSinks = []string{SinkNoop, SinkFile, SinkSQS, SinkKafka, SinkRedis, SinkS3}

// Sinks parses Publisher into distinct lower-case sink kinds, keeping order.
// "noop" is dropped since it only means "no sinks".
func (e EventsConfig) Sinks() []string {
	return ParseSinks(e.Publisher)
}

// ParseSinks splits a publisher mode such as "File+SQS" into ["file", "sqs"]
func ParseSinks(mode string) []string {
	parts := strings.FieldsFunc(strings.ToLower(mode), func(r rune) bool {
		switch r {
		case '+', ',', ';', '|', ' ', '\t':
			return true
		}
		return false
	})
	return lo.Without(lo.Uniq(parts), SinkNoop)
}

// IsProduction reports whether the app runs in production
func (c *Config) IsProduction() bool {
	return c.App.Env == "production"
}
