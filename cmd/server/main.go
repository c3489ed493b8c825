package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	_ "github.com/casepan/backend/docs"
	cadastroapp "github.com/casepan/backend/internal/application/cadastro"
	"github.com/casepan/backend/internal/application/observability"
	"github.com/casepan/backend/internal/infrastructure/config"
	"github.com/casepan/backend/internal/infrastructure/event"
	"github.com/casepan/backend/internal/infrastructure/logger"
	"github.com/casepan/backend/internal/infrastructure/persistence/memory"
	"github.com/casepan/backend/internal/infrastructure/queue"
	"github.com/casepan/backend/internal/infrastructure/telemetry"
	"github.com/casepan/backend/internal/infrastructure/viacep"
	"github.com/casepan/backend/internal/interfaces/http/handler"
	"github.com/casepan/backend/internal/interfaces/http/middleware"
	"github.com/casepan/backend/internal/interfaces/http/router"
	"github.com/casepan/backend/internal/interfaces/http/tracking"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

//	@title			CasePan API
//	@version		1.0
//	@description	Cadastro de endereços, pessoas físicas e pessoas jurídicas com rastreamento de eventos por correlation id.

//	@contact.name	CasePan
//	@contact.url	https://github.com/casepan/backend

//	@host		localhost:8080
//	@BasePath	/api

const version = "1.0.0"

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		panic("Failed to load configuration: " + err.Error())
	}

	// Initialize logger
	log, err := logger.New(&logger.Config{
		Level:      cfg.Log.Level,
		Format:     cfg.Log.Format,
		Output:     cfg.Log.Output,
		TimeFormat: "2006-01-02T15:04:05.000Z07:00",
	})
	if err != nil {
		panic("Failed to initialize logger: " + err.Error())
	}
	defer func() {
		_ = logger.Sync(log)
	}()

	log.Info("Starting CasePan backend",
		zap.String("app", cfg.App.Name),
		zap.String("env", cfg.App.Env),
		zap.String("port", cfg.App.Port),
		zap.Strings("event_sinks", cfg.Events.Sinks()),
	)

	ctx := context.Background()

	// Tracing
	tp, err := telemetry.NewTracerProvider(ctx, telemetry.Config{
		Enabled:           cfg.Telemetry.Enabled,
		CollectorEndpoint: cfg.Telemetry.CollectorEndpoint,
		SamplingRatio:     cfg.Telemetry.SamplingRatio,
		ServiceName:       cfg.Telemetry.ServiceName,
		ServiceVersion:    version,
		Environment:       cfg.App.Env,
		Insecure:          cfg.Telemetry.Insecure,
	}, log)
	if err != nil {
		log.Fatal("Failed to initialize telemetry", zap.Error(err))
	}

	// Event pipeline
	publisher := event.NewPublisher(event.Build(ctx, cfg, log))
	tracker := tracking.NewTracker(publisher, log)

	// Repositories and services
	enderecoRepo := memory.NewEnderecoRepository()
	pessoaFisicaRepo := memory.NewPessoaFisicaRepository()
	pessoaJuridicaRepo := memory.NewPessoaJuridicaRepository()

	lookup := viacep.NewClient(viacep.Config{
		BaseURL:    cfg.ViaCEP.BaseURL,
		Timeout:    cfg.ViaCEP.Timeout,
		MaxRetries: cfg.ViaCEP.MaxRetries,
	}, viacep.WithLogger(log))

	enderecoService := cadastroapp.NewEnderecoService(enderecoRepo, lookup)
	pessoaFisicaService := cadastroapp.NewPessoaFisicaService(pessoaFisicaRepo, enderecoRepo, lookup)
	pessoaJuridicaService := cadastroapp.NewPessoaJuridicaService(pessoaJuridicaRepo, enderecoRepo, lookup)

	volumetryService := observability.NewVolumetryService(event.NewFileEventLog(cfg.Events.FilePath), log)
	queueInspector := newQueueInspector(ctx, cfg, log)

	// Handlers
	enderecoHandler := handler.NewEnderecoHandler(tracker, enderecoService)
	pessoaFisicaHandler := handler.NewPessoaFisicaHandler(tracker, pessoaFisicaService)
	pessoaJuridicaHandler := handler.NewPessoaJuridicaHandler(tracker, pessoaJuridicaService)
	observabilityHandler := handler.NewObservabilityHandler(volumetryService, queueInspector)
	systemHandler := handler.NewSystemHandler(cfg.App.Name, version)

	// Set Gin mode based on environment
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	// Setup validation
	middleware.SetupValidator()

	engine := gin.New()

	// Configure trusted proxies
	if len(cfg.HTTP.TrustedProxies) > 0 {
		if err := engine.SetTrustedProxies(cfg.HTTP.TrustedProxies); err != nil {
			log.Warn("Failed to set trusted proxies", zap.Error(err))
		}
	}

	// Middleware order:
	// 1. CorrelationID - resolve the id before anything logs
	// 2. Recovery - catch panics
	// 3. Tracing - server span, then copy the correlation id onto it
	// 4. Logger - request log with correlation and trace ids
	// 5. Security headers, CORS, body limit, rate limit
	engine.Use(middleware.CorrelationID())
	engine.Use(logger.Recovery(log))
	engine.Use(middleware.Tracing(cfg.Telemetry.ServiceName, tp.IsEnabled()))
	engine.Use(middleware.SpanEnricher())
	engine.Use(logger.GinMiddleware(log))
	engine.Use(middleware.Secure())

	corsConfig := middleware.DefaultCORSConfig()
	corsConfig.AllowOrigins = cfg.HTTP.CORSAllowOrigins
	if len(cfg.HTTP.CORSAllowMethods) > 0 {
		corsConfig.AllowMethods = cfg.HTTP.CORSAllowMethods
	}
	if len(cfg.HTTP.CORSAllowHeaders) > 0 {
		corsConfig.AllowHeaders = cfg.HTTP.CORSAllowHeaders
	}
	engine.Use(middleware.CORSWithConfig(corsConfig))

	engine.Use(middleware.BodyLimit(cfg.HTTP.MaxBodySize))

	if cfg.HTTP.RateLimitEnabled {
		rateLimiter := middleware.NewRateLimiter(cfg.HTTP.RateLimitRequests, cfg.HTTP.RateLimitWindow)
		engine.Use(middleware.RateLimit(rateLimiter))
		log.Info("Rate limiting enabled",
			zap.Int("requests", cfg.HTTP.RateLimitRequests),
			zap.Duration("window", cfg.HTTP.RateLimitWindow),
		)
	}

	r := router.NewRouter(engine, router.WithSwagger(cfg.Swagger.Enabled))
	r.Root("/health", systemHandler.Health)
	r.Register(enderecoHandler).
		Register(pessoaFisicaHandler).
		Register(pessoaJuridicaHandler).
		Register(observabilityHandler).
		Register(router.RouteFunc(func(rg *gin.RouterGroup) {
			rg.GET("/ping", systemHandler.Ping)
		}))
	r.Setup()

	srv := &http.Server{
		Addr:           ":" + cfg.App.Port,
		Handler:        engine,
		ReadTimeout:    cfg.HTTP.ReadTimeout,
		WriteTimeout:   cfg.HTTP.WriteTimeout,
		IdleTimeout:    cfg.HTTP.IdleTimeout,
		MaxHeaderBytes: cfg.HTTP.MaxHeaderBytes,
	}

	go func() {
		log.Info("Server starting", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.HTTP.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("Server forced to shutdown", zap.Error(err))
	}
	if err := publisher.Close(); err != nil {
		log.Error("Error closing event sinks", zap.Error(err))
	}
	if err := tp.Shutdown(shutdownCtx); err != nil {
		log.Error("Error shutting down telemetry", zap.Error(err))
	}

	log.Info("Server exited gracefully")
}

// newQueueInspector returns nil when no queue is configured, which makes the
// SQS observability endpoints answer 503.
func newQueueInspector(ctx context.Context, cfg *config.Config, log *zap.Logger) observability.QueueInspector {
	if cfg.SQS.QueueURL == "" {
		return nil
	}
	client, err := queue.NewClient(ctx, &cfg.SQS)
	if err != nil {
		log.Warn("SQS inspector unavailable", zap.Error(err))
		return nil
	}
	return queue.NewInspector(client, cfg.SQS.QueueURL)
}
