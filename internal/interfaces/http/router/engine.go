package router

import (
	"net/http"
	"strings"

	"github.com/erp/ledger/internal/infrastructure/logger"
	"github.com/erp/ledger/internal/interfaces/http/handler"
	"github.com/erp/ledger/internal/interfaces/http/middleware"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
	"go.uber.org/zap"
)

// Handlers are the HTTP endpoints served by the ledger API
type Handlers struct {
	Invoices *handler.InvoiceHandler
	Quotes   *handler.QuoteHandler
	Payments *handler.PaymentHandler
	System   *handler.SystemHandler
}

// EngineConfig assembles the middleware stack around the ledger routes
type EngineConfig struct {
	Logger         *zap.Logger
	ServiceName    string
	TrustedProxies []string
	Tracing        bool
	Security       middleware.SecurityConfig
	CORS           middleware.CORSConfig
	MaxBodySize    int64
	Identity       middleware.IdentityConfig
	// Idempotency is applied to POST /invoices and POST /payments when Store is set
	Idempotency middleware.IdempotencyConfig
	Metrics     middleware.RequestRecorder
	Profiling   bool
	Swagger     bool
	Handlers    Handlers
}

// NewEngine builds the gin engine. Middleware order:
// RequestID, Recovery, request logging, tracing, security headers, CORS,
// body limit, then identity and idempotency on the API group.
func NewEngine(cfg EngineConfig) (*gin.Engine, error) {
	log := cfg.Logger
	if log == nil {
		log = zap.NewNop()
	}

	engine := gin.New()
	if len(cfg.TrustedProxies) > 0 {
		if err := engine.SetTrustedProxies(cfg.TrustedProxies); err != nil {
			return nil, err
		}
	}

	engine.Use(middleware.RequestID())
	engine.Use(logger.Recovery(log))
	engine.Use(logger.GinMiddleware(log))
	if cfg.Tracing {
		engine.Use(otelgin.Middleware(cfg.ServiceName, otelgin.WithFilter(traceable)))
	}
	engine.Use(middleware.SecureWithConfig(cfg.Security))
	engine.Use(middleware.CORSWithConfig(cfg.CORS))
	engine.Use(middleware.BodyLimit(cfg.MaxBodySize))
	engine.Use(middleware.RequestMetrics(cfg.Metrics))
	engine.Use(middleware.Profiling(cfg.Profiling))

	if cfg.Handlers.System != nil {
		engine.GET("/health", cfg.Handlers.System.Health)
	}
	if cfg.Swagger {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	r := NewRouter(engine, WithAPIVersion("v1"))
	r.Use(middleware.Identity(cfg.Identity))

	var idempotent []gin.HandlerFunc
	if cfg.Idempotency.Store != nil {
		idempotent = append(idempotent, middleware.Idempotency(cfg.Idempotency))
	}
	for _, g := range LedgerRoutes(cfg.Handlers, idempotent...) {
		r.Register(g)
	}
	api := r.Setup()

	// ping sits beside the identity protected groups
	if cfg.Handlers.System != nil {
		engine.GET(api.BasePath()+"/ping", cfg.Handlers.System.Ping)
	}

	engine.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{
			"success": false,
			"error": gin.H{
				"code":       "ERR_NOT_FOUND",
				"message":    "Route not found",
				"request_id": middleware.GetRequestID(c),
			},
		})
	})
	return engine, nil
}

// LedgerRoutes returns the invoice, quote and payment groups. idempotent runs
// in front of the two create endpoints that move money: invoices and payments.
func LedgerRoutes(h Handlers, idempotent ...gin.HandlerFunc) []*DomainGroup {
	var groups []*DomainGroup

	if h.Invoices != nil {
		invoices := NewDomainGroup("invoices", "/invoices")
		invoices.POST("", withLeading(idempotent, h.Invoices.Create)...)
		invoices.GET("/summary", h.Invoices.Summary)
		invoices.GET("/summary/export", h.Invoices.ExportSummary)
		invoices.GET("/:id", h.Invoices.Get)
		invoices.PUT("/:id", h.Invoices.Update)
		invoices.DELETE("/:id", h.Invoices.Delete)
		invoices.POST("/:id/reconcile", h.Invoices.Reconcile)
		invoices.GET("/:id/artifact", h.Invoices.Artifact)
		groups = append(groups, invoices)
	}

	if h.Quotes != nil {
		quotes := NewDomainGroup("quotes", "/quotes")
		quotes.POST("", h.Quotes.Create)
		quotes.GET("/summary", h.Quotes.Summary)
		quotes.GET("/:id", h.Quotes.Get)
		quotes.PUT("/:id", h.Quotes.Update)
		quotes.DELETE("/:id", h.Quotes.Delete)
		quotes.POST("/:id/convert", h.Quotes.Convert)
		quotes.GET("/:id/artifact", h.Quotes.Artifact)
		groups = append(groups, quotes)
	}

	if h.Payments != nil {
		payments := NewDomainGroup("payments", "/payments")
		payments.POST("", withLeading(idempotent, h.Payments.Create)...)
		payments.GET("/summary", h.Payments.Summary)
		payments.GET("/:id", h.Payments.Get)
		payments.PUT("/:id", h.Payments.Update)
		payments.DELETE("/:id", h.Payments.Delete)
		payments.GET("/:id/artifact", h.Payments.Artifact)
		groups = append(groups, payments)
	}

	return groups
}

func withLeading(leading []gin.HandlerFunc, last gin.HandlerFunc) []gin.HandlerFunc {
	chain := make([]gin.HandlerFunc, 0, len(leading)+1)
	chain = append(chain, leading...)
	return append(chain, last)
}

// traceable keeps health probes and the docs UI out of traces
func traceable(r *http.Request) bool {
	return r.URL.Path != "/health" && !strings.HasPrefix(r.URL.Path, "/swagger")
}
