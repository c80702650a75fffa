package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"
	echoSwagger "github.com/swaggo/echo-swagger"

	_ "github.com/hrc-navate/worklog/docs"
	"github.com/hrc-navate/worklog/internal/api/handler"
	"github.com/hrc-navate/worklog/internal/api/middleware"
	"github.com/hrc-navate/worklog/internal/core/ports"
)

const defaultBodyLimit = "12M"

// Deps holds everything the HTTP layer needs. Services are built by the caller.
type Deps struct {
	Logger    zerolog.Logger
	JWTSecret string
	// BodyLimit caps request bodies (echo size syntax, e.g. "12M").
	BodyLimit string

	Auth      ports.AuthService
	Revoked   middleware.RevocationChecker
	Users     ports.UserService
	Projects  ports.ProjectService
	Entries   ports.EntryService
	Documents ports.DocumentService
	Reports   handler.ReportService
	Checks    map[string]handler.Check

	// Registry receives the HTTP metrics. Defaults to the global registry.
	Registry *prometheus.Registry
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(d Deps) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(d.Logger)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(requestLogger(d.Logger))
	e.Use(echoprometheus.NewMiddlewareWithConfig(metricsConfig(d.Registry)))
	limit := d.BodyLimit
	if limit == "" {
		limit = defaultBodyLimit
	}
	e.Use(echomiddleware.BodyLimit(limit))

	authHandler := handler.NewAuthHandler(d.Auth)
	userHandler := handler.NewUserHandler(d.Users)
	projectHandler := handler.NewProjectHandler(d.Projects)
	entryHandler := handler.NewEntryHandler(d.Entries)
	reportHandler := handler.NewReportHandler(d.Reports)
	documentHandler := handler.NewDocumentHandler(d.Documents)
	healthHandler := handler.NewHealthHandler(d.Checks)

	authenticated := middleware.Auth(d.JWTSecret, d.Revoked)
	adminOnly := middleware.AdminOnly()

	// --- Auth routes ---
	e.POST("/auth/login", authHandler.Login)
	e.POST("/auth/logout", authHandler.Logout, authenticated)

	v1 := e.Group("/v1", authenticated)
	v1.GET("/me", authHandler.Me)

	// --- Users ---
	v1.GET("/users", userHandler.List, adminOnly)
	v1.POST("/users", userHandler.Create, adminOnly)
	v1.GET("/users/:id", userHandler.Get)
	v1.DELETE("/users/:id", userHandler.Delete, adminOnly)
	v1.PUT("/users/:id/password", userHandler.ResetPassword)

	// --- Projects ---
	v1.GET("/projects", projectHandler.List)
	v1.POST("/projects", projectHandler.Create, adminOnly)
	v1.PUT("/projects/:id", projectHandler.Update, adminOnly)
	v1.DELETE("/projects/:id", projectHandler.Delete, adminOnly)
	v1.GET("/projects/:id/entries", projectHandler.Entries, adminOnly)

	// --- Entries ---
	v1.GET("/entries", entryHandler.List)
	v1.POST("/entries", entryHandler.Create)
	v1.PUT("/entries/:id", entryHandler.Update)
	v1.DELETE("/entries/:id", entryHandler.Delete)

	// --- Reports ---
	v1.GET("/reports/dashboard", reportHandler.Dashboard)
	v1.GET("/reports/export.pdf", reportHandler.ExportPDF)
	v1.GET("/reports/export.xlsx", reportHandler.ExportXLSX)

	// --- Documents ---
	v1.GET("/documents", documentHandler.List)
	v1.POST("/documents", documentHandler.Upload)
	v1.DELETE("/documents/:id", documentHandler.Delete)

	// --- Ops (no auth required) ---
	e.GET("/health", healthHandler.Liveness)        // liveness  – is the process alive?
	e.GET("/health/ready", healthHandler.Readiness) // readiness – are dependencies up?
	e.GET("/metrics", echoprometheus.NewHandlerWithConfig(handlerConfig(d.Registry)))
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	return e
}

func requestLogger(log zerolog.Logger) echo.MiddlewareFunc {
	return echomiddleware.RequestLoggerWithConfig(echomiddleware.RequestLoggerConfig{
		LogMethod:    true,
		LogURI:       true,
		LogStatus:    true,
		LogLatency:   true,
		LogRequestID: true,
		LogError:     true,
		HandleError:  true,
		LogValuesFunc: func(_ echo.Context, v echomiddleware.RequestLoggerValues) error {
			ev := log.Info()
			if v.Error != nil {
				ev = log.Warn().Err(v.Error)
			}
			ev.Str("method", v.Method).
				Str("uri", v.URI).
				Int("status", v.Status).
				Dur("latency", v.Latency).
				Str("request_id", v.RequestID).
				Msg("request")
			return nil
		},
	})
}

func metricsConfig(reg *prometheus.Registry) echoprometheus.MiddlewareConfig {
	cfg := echoprometheus.MiddlewareConfig{
		Subsystem: "http",
		Skipper: func(c echo.Context) bool {
			switch c.Path() {
			case "/metrics", "/health", "/health/ready":
				return true
			}
			return false
		},
	}
	if reg != nil {
		cfg.Registerer = reg
	}
	return cfg
}

func handlerConfig(reg *prometheus.Registry) echoprometheus.HandlerConfig {
	if reg == nil {
		return echoprometheus.HandlerConfig{}
	}
	return echoprometheus.HandlerConfig{Gatherer: reg}
}
