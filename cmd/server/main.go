package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	appinv "github.com/erp/ledger/internal/application/invoicing"
	"github.com/erp/ledger/internal/domain/invoicing"
	"github.com/erp/ledger/internal/infrastructure/auth"
	"github.com/erp/ledger/internal/infrastructure/cache"
	"github.com/erp/ledger/internal/infrastructure/config"
	"github.com/erp/ledger/internal/infrastructure/event"
	"github.com/erp/ledger/internal/infrastructure/export"
	"github.com/erp/ledger/internal/infrastructure/logger"
	"github.com/erp/ledger/internal/infrastructure/migration"
	"github.com/erp/ledger/internal/infrastructure/persistence"
	"github.com/erp/ledger/internal/infrastructure/storage"
	"github.com/erp/ledger/internal/infrastructure/telemetry"
	"github.com/erp/ledger/internal/interfaces/http/handler"
	"github.com/erp/ledger/internal/interfaces/http/middleware"
	"github.com/erp/ledger/internal/interfaces/http/router"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	_ "github.com/erp/ledger/docs"
)

//	@title			Ledger API
//	@version		1.0
//	@description	Multi-tenant invoice, quote and payment ledger with derived credit and payment status.

//	@contact.name	Ledger API Support

//	@license.name	MIT
//	@license.url	https://opensource.org/licenses/MIT

//	@BasePath	/api/v1

//	@securityDefinitions.apikey	BearerAuth
//	@in							header
//	@name						Authorization
//	@description				Bearer token authentication. Format: "Bearer {token}". Required when JWT verification is enabled.

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

	ctx := context.Background()

	// Telemetry comes first so the bridged logger and meter reach everything below
	providers, err := telemetry.Setup(ctx, telemetry.Config{
		Enabled:           cfg.Telemetry.Enabled,
		CollectorEndpoint: cfg.Telemetry.CollectorEndpoint,
		Insecure:          cfg.Telemetry.Insecure,
		ServiceName:       cfg.Telemetry.ServiceName,
		ServiceVersion:    cfg.App.Version,
		SamplingRatio:     cfg.Telemetry.SamplingRatio,
		MetricsEnabled:    cfg.Telemetry.MetricsEnabled,
		MetricsInterval:   cfg.Telemetry.MetricsInterval,
		LogsEnabled:       cfg.Telemetry.LogsEnabled,
		SpanProfiles:      cfg.Telemetry.SpanProfiles,
	}, log)
	if err != nil {
		log.Fatal("Failed to initialize telemetry", zap.Error(err))
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := providers.Shutdown(shutdownCtx); err != nil {
			log.Error("Error shutting down telemetry", zap.Error(err))
		}
	}()

	if cfg.Telemetry.LogsEnabled {
		level, err := zapcore.ParseLevel(cfg.Telemetry.LogsLevel)
		if err != nil {
			level = zapcore.InfoLevel
		}
		log = telemetry.BridgeLogger(log, providers, cfg.Telemetry.ServiceName, level)
	}

	log.Info("Starting ledger",
		zap.String("app", cfg.App.Name),
		zap.String("env", cfg.App.Env),
		zap.String("port", cfg.App.Port),
		zap.String("version", cfg.App.Version),
	)

	profiler, err := telemetry.NewProfiler(telemetry.ProfilerConfig{
		Enabled:           cfg.Telemetry.ProfilingEnabled,
		ServerAddress:     cfg.Telemetry.PyroscopeAddress,
		ApplicationName:   cfg.Telemetry.ServiceName,
		BasicAuthUser:     cfg.Telemetry.PyroscopeUser,
		BasicAuthPassword: cfg.Telemetry.PyroscopePassword,
		MutexProfiling:    cfg.Telemetry.MutexProfiling,
	}, log)
	if err != nil {
		log.Fatal("Failed to start profiler", zap.Error(err))
	}
	defer func() {
		if err := profiler.Stop(); err != nil {
			log.Error("Error stopping profiler", zap.Error(err))
		}
	}()

	meter := providers.Meter("github.com/erp/ledger")
	ledgerMetrics, err := telemetry.NewLedgerMetrics(meter)
	if err != nil {
		log.Fatal("Failed to create ledger metrics", zap.Error(err))
	}

	// Initialize database connection
	db, err := persistence.NewDatabase(ctx, &cfg.Database, log)
	if err != nil {
		log.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Error("Error closing database", zap.Error(err))
		}
	}()
	log.Info("Database connected successfully")

	if err := telemetry.InstrumentDB(db.DB, telemetry.DBConfig{
		Tracing:          cfg.Telemetry.Enabled && cfg.Telemetry.DBTraceEnabled,
		IncludeQueryVars: cfg.Telemetry.DBLogFullSQL,
	}, meter); err != nil {
		log.Fatal("Failed to instrument database", zap.Error(err))
	}

	if err := migrateSchema(cfg.Database.DSN(), log); err != nil {
		log.Fatal("Failed to migrate database", zap.Error(err))
	}

	// Counter and idempotency backends
	stores, err := cache.NewStores(ctx, cfg.Redis, persistence.NewSettingsCounter(db.DB),
		cache.WithLogger(log),
		cache.WithSeedKeys(
			invoicing.CounterKey(invoicing.KindInvoice),
			invoicing.CounterKey(invoicing.KindQuote),
			invoicing.CounterKey(invoicing.KindPayment),
		),
	)
	if err != nil {
		log.Fatal("Failed to initialize counter store", zap.Error(err))
	}
	defer func() {
		if err := stores.Close(); err != nil {
			log.Error("Error closing counter store", zap.Error(err))
		}
	}()

	artifactStore, err := storage.NewArtifactStore(ctx, cfg.Storage, !cfg.IsProduction(), log)
	if err != nil {
		log.Fatal("Failed to initialize artifact storage", zap.Error(err))
	}

	// Initialize repositories
	invoiceRepo, quoteRepo, paymentRepo := db.Repositories()
	txScope := persistence.NewGormTransactionScope(db.DB)

	// Initialize event bus and handlers
	eventBus := event.NewInMemoryEventBus(log)
	auditHandler := appinv.NewPaymentStatusAuditHandler(log)
	eventBus.Subscribe(auditHandler)
	log.Info("Event handlers registered", zap.Strings("audit_events", auditHandler.EventTypes()))

	if err := eventBus.Start(ctx); err != nil {
		log.Fatal("Failed to start event bus", zap.Error(err))
	}
	defer func() {
		if err := eventBus.Stop(context.Background()); err != nil {
			log.Error("Error stopping event bus", zap.Error(err))
		}
	}()

	// Initialize application services
	documentService := appinv.NewDocumentService(invoiceRepo, quoteRepo, txScope, stores.Counter, log)
	documentService.SetEventPublisher(eventBus)
	documentService.SetMetrics(ledgerMetrics)

	paymentService := appinv.NewPaymentService(paymentRepo, txScope, stores.Counter, log)
	paymentService.SetEventPublisher(eventBus)
	paymentService.SetMetrics(ledgerMetrics)

	reconcileService := appinv.NewReconcileService(txScope, log)

	summaryService := appinv.NewSummaryService(invoiceRepo, quoteRepo, paymentRepo)
	summaryService.SetExporter(export.NewXLSXExporter(log))

	artifactService := appinv.NewArtifactService(invoiceRepo, quoteRepo, paymentRepo, artifactStore, cfg.Storage.URLExpiry)

	// Initialize HTTP handlers
	handlers := router.Handlers{
		Invoices: handler.NewInvoiceHandler(documentService, summaryService, reconcileService, artifactService),
		Quotes:   handler.NewQuoteHandler(documentService, summaryService, artifactService),
		Payments: handler.NewPaymentHandler(paymentService, summaryService, artifactService),
		System: handler.NewSystemHandler(cfg.App.Name, cfg.App.Version, map[string]handler.HealthCheck{
			"database": db.Ping,
		}),
	}

	// Set Gin mode based on environment
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	// Setup validation
	middleware.SetupValidator()

	identity := middleware.IdentityConfig{Logger: log}
	if cfg.JWT.Enabled {
		identity.Verifier = auth.NewTokenVerifier(cfg.JWT)
	} else {
		log.Warn("JWT verification disabled, trusting tenant headers from the gateway")
	}

	corsConfig := middleware.DefaultCORSConfig()
	corsConfig.AllowOrigins = cfg.HTTP.CORSAllowOrigins

	engine, err := router.NewEngine(router.EngineConfig{
		Logger:         log,
		ServiceName:    cfg.Telemetry.ServiceName,
		TrustedProxies: cfg.HTTP.TrustedProxies,
		Tracing:        providers.TracingEnabled(),
		Security:       middleware.DefaultSecurityConfig(),
		CORS:           corsConfig,
		MaxBodySize:    cfg.HTTP.MaxBodySize,
		Identity:       identity,
		Idempotency: middleware.IdempotencyConfig{
			Store:  stores.Idempotency,
			TTL:    cfg.Ledger.IdempotencyTTL,
			Logger: log,
		},
		Metrics:   ledgerMetrics,
		Profiling: cfg.Telemetry.ProfilingEnabled,
		Swagger:   cfg.Swagger.Enabled,
		Handlers:  handlers,
	})
	if err != nil {
		log.Fatal("Failed to build HTTP engine", zap.Error(err))
	}

	// Create HTTP server with config
	srv := &http.Server{
		Addr:           ":" + cfg.App.Port,
		Handler:        engine,
		ReadTimeout:    cfg.HTTP.ReadTimeout,
		WriteTimeout:   cfg.HTTP.WriteTimeout,
		IdleTimeout:    cfg.HTTP.IdleTimeout,
		MaxHeaderBytes: cfg.HTTP.MaxHeaderBytes,
	}

	// Start server in goroutine
	go func() {
		log.Info("Server starting", zap.String("addr", srv.Addr), zap.String("counter_backend", stores.Backend))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("Server forced to shutdown", zap.Error(err))
		return
	}

	log.Info("Server exited gracefully")
}

// migrateSchema applies the embedded migrations on a dedicated connection
// so closing the migrator leaves the pool alone
func migrateSchema(dsn string, log *zap.Logger) error {
	m, err := migration.NewFromURL(dsn, nil, log)
	if err != nil {
		return err
	}
	defer func() {
		if err := m.Close(); err != nil {
			log.Warn("Error closing migrator", zap.Error(err))
		}
	}()
	return m.Up()
}
