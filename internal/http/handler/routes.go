package handler

import (
	"database/sql"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"docadmin/internal/auth"
	"docadmin/internal/http/middleware"
	"docadmin/internal/logger"
	"docadmin/internal/service"
)

// Dependencies are the collaborators the HTTP surface is wired to.
// Gatherer may be nil, which leaves /metrics unregistered.
type Dependencies struct {
	DB        *sql.DB
	Documents service.DocumentService
	Exports   service.ExportService
	AppState  service.AppStateService
	Auth      auth.Provider
	Gatherer  prometheus.Gatherer
	Log       *logger.Logger
}

// RegisterRoutes attaches HTTP routes to the provided Fiber app.
func RegisterRoutes(app *fiber.App, d Dependencies) {
	log := d.Log
	if log == nil {
		log = logger.Nop()
	}

	app.Get("/health", HealthCheck(d.DB))
	app.Get("/healthz", LivenessProbe())
	if d.Gatherer != nil {
		app.Get("/metrics", adaptor.HTTPHandler(promhttp.HandlerFor(d.Gatherer, promhttp.HandlerOpts{})))
	}

	requireAuth := middleware.RequireAuth(d.Auth)

	app.Post("/auth/login", Login(d.Auth))
	app.Post("/auth/logout", requireAuth, Logout(d.Auth))
	app.Get("/auth/me", requireAuth, CurrentUser())

	docs := app.Group("/documents", requireAuth)
	docs.Get("/", ListDocuments(d.Documents))
	docs.Post("/", UploadDocument(d.Documents, log))
	docs.Delete("/", DeleteAllDocuments(d.Documents))
	// registered before /:id so "export" is not taken for an id
	docs.Get("/export", ExportAllDocuments(d.Documents))
	docs.Get("/:id", GetDocument(d.Documents))
	docs.Patch("/:id", UpdateDocument(d.Documents))
	docs.Delete("/:id", DeleteDocument(d.Documents))
	docs.Get("/:id/content", ExportDocumentContent(d.Documents))
	docs.Get("/:id/pages", DocumentPages(d.Documents))

	exports := app.Group("/exports", requireAuth)
	exports.Post("/", PublishExport(d.Exports))
	exports.Get("/:id", OpenExport(d.Exports))
	exports.Delete("/:id", RemoveExport(d.Exports))

	state := app.Group("/app-state", requireAuth)
	state.Get("/", LoadAppState(d.AppState))
	state.Put("/", SaveAppState(d.AppState))
	state.Delete("/", ClearAppState(d.AppState))
}
