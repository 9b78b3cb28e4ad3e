package document

import (
	"log/slog"

	"github.com/go-chi/chi/v5"
	"github.com/gorilla/sessions"

	"github.com/docnav-labs/docnav/internal/content"
	"github.com/docnav-labs/docnav/internal/ui/features/common"
)

// SetupRoutes registers document routes on the router.
func SetupRoutes(router chi.Router, source *common.TreeSource, store *content.Store, sessionStore sessions.Store, logger *slog.Logger, isDev bool) {
	handlers := NewHandlers(source, store, sessionStore, logger, isDev)

	router.Get("/", handlers.Home)
	router.Get("/docs/*", handlers.Page)
	router.Get("/api/docs/*", handlers.API)
}
