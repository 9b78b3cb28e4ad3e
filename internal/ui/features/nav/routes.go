package nav

import (
	"log/slog"

	"github.com/go-chi/chi/v5"
	"github.com/gorilla/sessions"

	"github.com/docnav-labs/docnav/internal/ui/features/common"
)

// SetupRoutes registers sidebar routes on the router.
func SetupRoutes(router chi.Router, source *common.TreeSource, sessionStore sessions.Store, logger *slog.Logger) {
	handlers := NewHandlers(source, sessionStore, logger)

	router.Route("/api/nav", func(r chi.Router) {
		r.Get("/tree", handlers.TreeRows)
		r.Post("/toggle/*", handlers.Toggle)
	})
	router.Get("/api/site", handlers.Site)
}
