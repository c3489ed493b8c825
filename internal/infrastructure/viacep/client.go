package viacep

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/casepan/backend/internal/domain/cadastro"
	"github.com/casepan/backend/internal/domain/shared/valueobject"
	"github.com/casepan/backend/internal/infrastructure/telemetry"
	"github.com/cenkalti/backoff/v4"
	"go.opentelemetry.io/otel/attribute"
	"go.uber.org/zap"
)

const (
	// DefaultBaseURL is the public ViaCEP endpoint
	DefaultBaseURL = "https://viacep.com.br"
	// DefaultTimeout bounds a single lookup attempt
	DefaultTimeout = 10 * time.Second
	// DefaultMaxRetries is the number of retries after the first attempt
	DefaultMaxRetries = 2

	maxBodySize = 64 << 10
)

// Config configures the ViaCEP client
type Config struct {
	BaseURL    string
	Timeout    time.Duration
	MaxRetries int
}

// Client resolves CEPs against ViaCEP
type Client struct {
	baseURL    string
	httpClient *http.Client
	maxRetries int
	logger     *zap.Logger
	newBackOff func() backoff.BackOff
}

// Option configures the Client
type Option func(*Client)

// WithHTTPClient replaces the underlying HTTP client
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// WithLogger sets the logger
func WithLogger(logger *zap.Logger) Option {
	return func(c *Client) {
		c.logger = logger
	}
}

// WithBackOff overrides the retry schedule. Tests use it to avoid sleeping.
func WithBackOff(newBackOff func() backoff.BackOff) Option {
	return func(c *Client) {
		c.newBackOff = newBackOff
	}
}

// NewClient creates a ViaCEP client
func NewClient(cfg Config, opts ...Option) *Client {
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = DefaultTimeout
	}
	if cfg.MaxRetries < 0 {
		cfg.MaxRetries = 0
	}

	c := &Client{
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		httpClient: &http.Client{Timeout: cfg.Timeout},
		maxRetries: cfg.MaxRetries,
		logger:     zap.NewNop(),
		newBackOff: func() backoff.BackOff {
			b := backoff.NewExponentialBackOff()
			b.InitialInterval = 200 * time.Millisecond
			b.MaxInterval = 2 * time.Second
			return b
		},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// response mirrors the ViaCEP JSON body. Unknown CEPs come back as {"erro": true}
// (older deployments send the string "true").
type response struct {
	Cep         string          `json:"cep"`
	Logradouro  string          `json:"logradouro"`
	Complemento string          `json:"complemento"`
	Bairro      string          `json:"bairro"`
	Localidade  string          `json:"localidade"`
	UF          string          `json:"uf"`
	Erro        json.RawMessage `json:"erro,omitempty"`
}

func (r response) notFound() bool {
	v := strings.Trim(string(r.Erro), `" `)
	return strings.EqualFold(v, "true")
}

// Lookup resolves cep. Malformed CEPs return (nil, nil) without a request.
func (c *Client) Lookup(ctx context.Context, cep string) (*cadastro.PostalAddress, error) {
	digits := valueobject.OnlyDigits(cep)
	if !valueobject.IsValidCEP(digits) {
		return nil, nil
	}

	ctx, span := telemetry.StartClientSpan(ctx, "viacep.lookup", attribute.String("cep", digits))
	defer span.End()

	url := fmt.Sprintf("%s/ws/%s/json/", c.baseURL, digits)
	policy := backoff.WithContext(backoff.WithMaxRetries(c.newBackOff(), uint64(c.maxRetries)), ctx)

	attempt := 0
	result, err := backoff.RetryWithData(func() (*cadastro.PostalAddress, error) {
		attempt++
		addr, err := c.fetch(ctx, url)
		if err != nil {
			c.logger.Debug("viacep lookup attempt failed",
				zap.String("cep", digits),
				zap.Int("attempt", attempt),
				zap.Error(err),
			)
		}
		return addr, err
	}, policy)
	span.SetAttributes(attribute.Int("viacep.attempts", attempt), attribute.Bool("viacep.found", result != nil))
	if err != nil {
		telemetry.RecordError(span, err)
		return nil, fmt.Errorf("viacep lookup %s: %w", digits, err)
	}
	return result, nil
}

func (c *Client) fetch(ctx context.Context, url string) (*cadastro.PostalAddress, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, backoff.Permanent(err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		if ctx.Err() != nil {
			return nil, backoff.Permanent(ctx.Err())
		}
		return nil, err
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusBadRequest, resp.StatusCode == http.StatusNotFound:
		return nil, nil
	case resp.StatusCode >= 500, resp.StatusCode == http.StatusTooManyRequests:
		return nil, fmt.Errorf("unexpected status %d", resp.StatusCode)
	case resp.StatusCode != http.StatusOK:
		return nil, backoff.Permanent(fmt.Errorf("unexpected status %d", resp.StatusCode))
	}

	var body response
	if err := json.NewDecoder(io.LimitReader(resp.Body, maxBodySize)).Decode(&body); err != nil {
		return nil, backoff.Permanent(fmt.Errorf("decode response: %w", err))
	}
	if body.notFound() {
		return nil, nil
	}

	return &cadastro.PostalAddress{
		Cep:         body.Cep,
		Logradouro:  body.Logradouro,
		Complemento: body.Complemento,
		Bairro:      body.Bairro,
		Localidade:  body.Localidade,
		UF:          body.UF,
	}, nil
}

var _ cadastro.PostalCodeLookup = (*Client)(nil)
