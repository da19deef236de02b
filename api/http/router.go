package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/resumekit/resumekit/api/http/handlers"
)

// Register wires all HTTP routes onto given Fiber app.
func Register(app *fiber.App, auth *handlers.AuthHandler, health *handlers.HealthHandler, imp *handlers.ImportHandler, drafts *handlers.DraftsHandler, authMW fiber.Handler) {
	api := app.Group("/api")
	v1 := api.Group("/v1")

	// Health and readiness endpoints for probes/monitoring
	v1.Get("/health", health.Health)
	v1.Get("/ready", health.Ready)

	a := v1.Group("/auth")
	a.Post("/register", auth.Register)
	a.Post("/login", auth.Login)

	// Resume import
	ig := v1.Group("/import", authMW)
	ig.Post("/", imp.Import)
	ig.Get("/history", imp.History)

	// Resume drafts
	dg := v1.Group("/drafts", authMW)
	dg.Post("/", drafts.Create)
	dg.Get("/", drafts.List)
	dg.Get("/:id", drafts.Get)
	dg.Put("/:id", drafts.Update)
	dg.Delete("/:id", drafts.Delete)
	dg.Get("/:id/export/word", drafts.ExportWord)
}
