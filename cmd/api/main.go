package main

import (
	"context"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gofiber/contrib/otelfiber"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/swagger"
	_ "github.com/joho/godotenv/autoload"
	"github.com/prometheus/client_golang/prometheus"
	"golang.org/x/sync/errgroup"

	"docadmin/docs"
	"docadmin/internal/auth"
	"docadmin/internal/config"
	"docadmin/internal/database"
	"docadmin/internal/database/migration"
	handlers "docadmin/internal/http/handler"
	"docadmin/internal/http/middleware"
	"docadmin/internal/ingest"
	"docadmin/internal/logger"
	"docadmin/internal/metrics"
	"docadmin/internal/otel"
	"docadmin/internal/repository/postgres"
	"docadmin/internal/service"
	"docadmin/internal/storage"
)

// @title Document Admin API
// @version 1.0
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	// Load configuration from environment variables (.env auto-loaded if present)
	cfg := config.Load()

	log, err := logger.New(cfg.Log.Mode, cfg.Log.Level)
	if err != nil {
		panic(err)
	}
	defer log.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	shutdownTracing, err := otel.Init(ctx, log)
	if err != nil {
		log.Fatal("failed to initialize tracing", "error", err)
	}

	db, err := database.NewPostgres(ctx, cfg.Database)
	if err != nil {
		log.Fatal("failed to connect to database", "error", err)
	}
	defer db.Close()

	if err := migration.EnsureMigrated(ctx, db, log, cfg.Database.Host); err != nil {
		log.Fatal("failed to migrate database", "error", err)
	}

	// Export bundles live in object storage; the document payloads stay in Postgres.
	objStore, err := storage.NewMinIO(ctx, cfg.MinIO)
	if err != nil {
		log.Fatal("failed to initialize object storage", "error", err)
	}

	var sessions auth.SessionStore
	if cfg.Redis.Addr != "" {
		sessions, err = auth.NewRedisSessionStore(ctx, cfg.Redis)
		if err != nil {
			log.Fatal("failed to connect to redis", "error", err)
		}
	} else {
		log.Warn("REDIS_ADDR not set, revoked tokens are kept in memory")
		sessions = auth.NewMemorySessionStore()
	}

	authProvider, err := auth.NewJWTProvider(cfg.Auth, sessions, log)
	if err != nil {
		log.Fatal("failed to initialize auth", "error", err)
	}
	unsubscribe := authProvider.OnAuthStateChange(func(ev auth.Event) {
		log.Info("auth state changed", "user_id", ev.User.ID, "signed_in", ev.SignedIn)
	})
	defer unsubscribe()

	ingestMetrics, err := metrics.NewIngest(prometheus.DefaultRegisterer)
	if err != nil {
		log.Fatal("failed to register ingest metrics", "error", err)
	}
	httpMetrics, err := middleware.NewPrometheusMiddleware(prometheus.DefaultRegisterer)
	if err != nil {
		log.Fatal("failed to register http metrics", "error", err)
	}

	// Initialize repositories and services
	docSvc := service.NewDocumentService(postgres.NewDocumentPostgres(db), ingestMetrics, log)
	exportSvc := service.NewExportService(docSvc, objStore, cfg.MinIO.PresignTTL, log)
	stateSvc := service.NewAppStateService(postgres.NewAppStatePostgres(db), log)

	app := fiber.New(fiber.Config{
		ErrorHandler: handlers.ErrorHandler(),
		// multipart overhead on top of the largest accepted PDF
		BodyLimit:             int(ingest.MaxSize) + 1<<20,
		DisableStartupMessage: true,
	})

	app.Use(otelfiber.Middleware())
	app.Use(middleware.RequestID())
	app.Use(middleware.Logger(log))
	app.Use(httpMetrics.Handler())

	handlers.RegisterRoutes(app, handlers.Dependencies{
		DB:        db,
		Documents: docSvc,
		Exports:   exportSvc,
		AppState:  stateSvc,
		Auth:      authProvider,
		Gatherer:  prometheus.DefaultGatherer,
		Log:       log,
	})

	// Swagger UI with dynamic host and scheme
	app.Get("/swagger/*", func(c *fiber.Ctx) error {
		scheme := c.Protocol()
		if proto := c.Get("X-Forwarded-Proto"); proto != "" {
			scheme = strings.Split(proto, ",")[0]
		}

		docs.SwaggerInfo.Host = c.Get("Host")
		docs.SwaggerInfo.Schemes = []string{scheme}

		return swagger.HandlerDefault(c)
	})

	addr := ":" + cfg.Port
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		log.Info("http server listening", "addr", addr)
		return app.Listen(addr)
	})
	g.Go(func() error {
		<-gctx.Done()
		log.Info("shutting down")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := app.ShutdownWithContext(shutdownCtx); err != nil {
			log.Error("http shutdown", "error", err)
		}
		return shutdownTracing(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		log.Error("server stopped", "error", err)
	}
}
